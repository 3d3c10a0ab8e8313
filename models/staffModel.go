package models

import "gorm.io/gorm"

type StaffUser struct {
	gorm.Model
	Fullname string `json:"fullname"`
	Username string `json:"username" gorm:"uniqueIndex;size:60"`
	Email    string `json:"email" gorm:"uniqueIndex;size:120"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginData struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
