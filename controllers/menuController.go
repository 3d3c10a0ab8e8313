package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/FariaSara/Restaurent-Management-Suit/initializers"
	"github.com/FariaSara/Restaurent-Management-Suit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GetMenu returns available menu items grouped by category.
func GetMenu(ctx *gin.Context) {
	var categories []models.Category
	err := initializers.DB.
		Preload("MenuItems", "is_available = ?", true).
		Find(&categories).Error
	if err != nil {
		logrus.Errorf("Failed to fetch menu: %v", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	menu := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		if len(category.MenuItems) > 0 {
			menu = append(menu, category)
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"menu": menu})
}

// SearchMenu returns a flat, paginated list of available items matching the
// query against name or description.
func SearchMenu(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := initializers.DB.Where("is_available = ?", true)
	if search := ctx.Query("q"); search != "" {
		query = query.Where("name LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var items []models.MenuItem
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		logrus.Errorf("Menu search failed: %v", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.MenuItem{}).Where("is_available = ?", true)
	if search := ctx.Query("q"); search != "" {
		countQuery = countQuery.Where("name LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	countQuery.Count(&count)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items": items,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetMenuItem returns a single menu item by id.
func GetMenuItem(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	var item models.MenuItem
	if err := initializers.DB.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Menu item not found")
		} else {
			logrus.Errorf("Failed to fetch menu item %d: %v", itemID, err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// CreateCategory adds a menu category (staff only).
func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		logrus.Errorf("Failed to create category: %v", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// CreateMenuItem adds a menu item (staff only).
func CreateMenuItem(ctx *gin.Context) {
	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, item.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			logrus.Errorf("Failed to validate category: %v", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if err := initializers.DB.Create(&item).Error; err != nil {
		logrus.Errorf("Failed to create menu item: %v", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// UpdateMenuItem changes a menu item's details, price or availability
// (staff only). Existing carts pick up price changes on their next read;
// placed orders keep their snapshotted prices.
func UpdateMenuItem(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	var input struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		IsAvailable *bool    `json:"isAvailable"`
		ImageUrl    *string  `json:"imageUrl"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	var item models.MenuItem
	if err := initializers.DB.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Menu item not found")
		} else {
			logrus.Errorf("Failed to fetch menu item %d: %v", itemID, err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Price must be positive")
			return
		}
		updates["price"] = *input.Price
	}
	if input.IsAvailable != nil {
		updates["is_available"] = *input.IsAvailable
	}
	if input.ImageUrl != nil {
		updates["image_url"] = *input.ImageUrl
	}

	if len(updates) > 0 {
		if err := initializers.DB.Model(&item).Updates(updates).Error; err != nil {
			logrus.Errorf("Failed to update menu item %d: %v", itemID, err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}

	ctx.JSON(http.StatusOK, item)
}

// getAWSUploader returns a configured S3 uploader.
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadMenuItemImage uploads a menu item photo to S3 and stores its URL on
// the item (staff only).
func UploadMenuItemImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "No file uploaded")
		return
	}

	itemIDStr := ctx.PostForm("menuItemId")
	itemID, err := strconv.Atoi(itemIDStr)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid menuItemId")
		return
	}

	var item models.MenuItem
	if err := initializers.DB.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Menu item not found")
		} else {
			logrus.Errorf("Failed to validate menu item: %v", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		logrus.Errorf("Failed to configure AWS: %v", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	f, err := file.Open()
	if err != nil {
		logrus.Errorf("Error opening file %s: %v", file.Filename, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	defer f.Close()

	bucket := os.Getenv("S3_BUCKET")
	uniqueFilename := fmt.Sprintf("menu/%d-%s-%s", itemID, time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(uniqueFilename),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		logrus.Errorf("Error uploading file %s: %v", file.Filename, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	if err := initializers.DB.Model(&item).Update("image_url", result.Location).Error; err != nil {
		logrus.Errorf("Error saving image URL to database: %v", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Image uploaded",
		"url":     result.Location,
	})
}
