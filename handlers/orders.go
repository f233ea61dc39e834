package handlers

import (
	"net/http"
	"strconv"

	"restaurant-orders-api/config"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
)

type placeOrderRequest struct {
	Quantity string `json:"quantity"`
}

// parseQuantity applies the lenient quantity rule: anything that is not a
// number of at least 1 ("0", "-3", "abc", missing) becomes 1. No error
// is surfaced.
func parseQuantity(raw string) int {
	qty, err := strconv.Atoi(raw)
	if err != nil || qty < 1 {
		return 1
	}
	return qty
}

// PlaceOrder creates a Pending food order for the authenticated user.
// Repeated calls pile up extra rows; there is no uniqueness rule, a user
// can have several pending orders for the same dish.
func PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var item models.FoodItem
	if err := config.DB.First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}

	var req placeOrderRequest
	_ = c.ShouldBindJSON(&req) // bad or missing body falls through to the clamp

	order := models.Order{
		UserID:   userID,
		ItemID:   item.ID,
		Quantity: parseQuantity(req.Quantity),
		Status:   models.StatusPending,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	config.DB.Preload("Item").First(&order, order.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
		"total":   order.TotalPrice(),
		"next":    "/checkout",
	})
}

// PlaceGalleryOrder is the same contract against the gallery ledger
func PlaceGalleryOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var item models.GalleryImage
	if err := config.DB.First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
		return
	}

	var req placeOrderRequest
	_ = c.ShouldBindJSON(&req)

	order := models.GalleryOrder{
		UserID:   userID,
		ItemID:   item.ID,
		Quantity: parseQuantity(req.Quantity),
		Status:   models.StatusPending,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	config.DB.Preload("Item").First(&order, order.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your gallery order has been placed successfully",
		"order":   order,
		"total":   order.TotalPrice(),
		"next":    "/checkout",
	})
}
