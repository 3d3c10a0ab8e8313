package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string     `json:"name" binding:"required" gorm:"uniqueIndex;size:100"`
	Description string     `json:"description"`
	MenuItems   []MenuItem `json:"menuItems,omitempty" gorm:"foreignKey:CategoryID"`
}

type MenuItem struct {
	gorm.Model
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Price       float64        `json:"price" binding:"required,gt=0"`
	IsAvailable bool           `json:"isAvailable" gorm:"default:true"`
	CategoryID  int            `json:"categoryId" binding:"required"`
	ImageUrl    string         `json:"imageUrl"`
	DietaryTags datatypes.JSON `json:"dietaryTags"`
}
