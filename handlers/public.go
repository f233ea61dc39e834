package handlers

import (
	"net/http"
	"net/url"
	"time"

	"restaurant-orders-api/cache"
	"restaurant-orders-api/config"
	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
)

const catalogCacheKey = "catalog:listing"

// redirectWithNotice sends the browser back with a non-fatal message.
// Empty carts, access denials and the like all land here; they are
// informational conditions, not errors.
func redirectWithNotice(c *gin.Context, location, notice string) {
	c.Redirect(http.StatusSeeOther, location+"?notice="+url.QueryEscape(notice))
}

type catalogListing struct {
	FoodItems     []models.FoodItem     `json:"food_items"`
	GalleryImages []models.GalleryImage `json:"gallery_images"`
}

// MainPage returns the food catalog plus the gallery (public).
// The unfiltered listing is served from cache when Redis is around.
func MainPage(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")
	filtered := category != "" || search != ""

	if !filtered {
		var cached catalogListing
		if cache.Get(catalogCacheKey, &cached) {
			c.JSON(http.StatusOK, gin.H{
				"count":          len(cached.FoodItems) + len(cached.GalleryImages),
				"food_items":     cached.FoodItems,
				"gallery_images": cached.GalleryImages,
			})
			return
		}
	}

	var listing catalogListing
	query := config.DB
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	query.Find(&listing.FoodItems)
	config.DB.Find(&listing.GalleryImages)

	if !filtered {
		cache.Set(catalogCacheKey, listing, 5*time.Minute) //nolint:errcheck
	}

	c.JSON(http.StatusOK, gin.H{
		"count":          len(listing.FoodItems) + len(listing.GalleryImages),
		"food_items":     listing.FoodItems,
		"gallery_images": listing.GalleryImages,
	})
}

// AboutPage is a static description of the restaurant
func AboutPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Restaurant Orders",
		"description": "Browse the menu and the gallery, order, and pay online.",
	})
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Contact captures an anonymous message from the contact form
func Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := config.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Your message was sent successfully"})
}

// GetLifecycleInfo documents the order lifecycle (great for docs/Postman)
func GetLifecycleInfo(c *gin.Context) {
	info := []gin.H{
		{"from": "Pending", "to": "Completed", "actor": "admin"},
		{"from": "Pending", "to": "Completed", "actor": "payment"},
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{"Completed"},
		"description":     "Order Lifecycle State Machine",
	})
}
