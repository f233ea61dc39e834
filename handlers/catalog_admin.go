package handlers

import (
	"net/http"
	"strings"

	"restaurant-orders-api/cache"
	"restaurant-orders-api/config"
	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FoodItemRequest struct {
	Name        string              `json:"name" binding:"required"`
	Category    models.FoodCategory `json:"category" binding:"required"`
	Price       string              `json:"price" binding:"required"`
	Description string              `json:"description"`
	ImagePath   string              `json:"image_path"`
}

// storedImagePath assigns a stable name for an uploaded image reference.
// Actual blob storage lives outside this service.
func storedImagePath(dir, provided string) string {
	if provided != "" {
		return provided
	}
	return dir + "/" + uuid.NewString()
}

// AddFood creates a menu item — admin only
func AddFood(c *gin.Context) {
	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Must be: veg, non-veg, drinks or dessert"})
		return
	}
	price, err := decimal.NewFromString(strings.ReplaceAll(req.Price, ",", ""))
	if err != nil || price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price format."})
		return
	}

	item := models.FoodItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       price,
		Description: req.Description,
		ImagePath:   storedImagePath("food_images", req.ImagePath),
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add food item"})
		return
	}

	cache.Del(catalogCacheKey) //nolint:errcheck

	c.JSON(http.StatusCreated, gin.H{"message": "Food item added successfully!", "item": item})
}

// EditFood updates a menu item — admin only. Pending orders referencing it
// immediately reflect the new price.
func EditFood(c *gin.Context) {
	var item models.FoodItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}

	var req FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Must be: veg, non-veg, drinks or dessert"})
		return
	}
	price, err := decimal.NewFromString(strings.ReplaceAll(req.Price, ",", ""))
	if err != nil || price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price format."})
		return
	}

	item.Name = req.Name
	item.Category = req.Category
	item.Price = price
	item.Description = req.Description
	if req.ImagePath != "" {
		item.ImagePath = req.ImagePath
	}
	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update food item"})
		return
	}

	cache.Del(catalogCacheKey) //nolint:errcheck

	c.JSON(http.StatusOK, gin.H{"message": "Food item updated successfully!", "item": item})
}

// DeleteFood removes a menu item and cascades to every order row that
// references it, in one transaction.
func DeleteFood(c *gin.Context) {
	var item models.FoodItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", item.ID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete food item"})
		return
	}

	cache.Del(catalogCacheKey) //nolint:errcheck

	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted successfully"})
}

type GalleryImageRequest struct {
	Caption   string `json:"caption" binding:"required"`
	Price     string `json:"price" binding:"required"`
	ImagePath string `json:"image_path"`
}

// AddGallery creates a purchasable gallery image — admin only
func AddGallery(c *gin.Context) {
	var req GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both image and caption are required."})
		return
	}

	price, err := decimal.NewFromString(strings.ReplaceAll(req.Price, ",", ""))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price format."})
		return
	}
	if price.IsNegative() || price.GreaterThan(models.MaxGalleryPrice) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be between 0 and 999,999.99."})
		return
	}

	image := models.GalleryImage{
		Caption:   req.Caption,
		Price:     price,
		ImagePath: storedImagePath("gallery", req.ImagePath),
	}
	if err := config.DB.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}

	cache.Del(catalogCacheKey) //nolint:errcheck

	c.JSON(http.StatusCreated, gin.H{"message": "Image added successfully", "image": image})
}

// DeleteGallery removes a gallery image and its order rows
func DeleteGallery(c *gin.Context) {
	var image models.GalleryImage
	if err := config.DB.First(&image, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", image.ID).Delete(&models.GalleryOrder{}).Error; err != nil {
			return err
		}
		return tx.Delete(&image).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}

	cache.Del(catalogCacheKey) //nolint:errcheck

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
