package handlers

import (
	"net/http"

	"restaurant-orders-api/config"
	"restaurant-orders-api/models"
	"restaurant-orders-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminDashboard aggregates everything the staff sees in one view.
// total_revenue intentionally sums every order of both kinds regardless of
// status; Pending rows count too, matching the site's historical figure.
// completed_revenue carries the paid-only number alongside it.
func AdminDashboard(c *gin.Context) {
	var foodItems []models.FoodItem
	var galleryImages []models.GalleryImage
	var orders []models.Order
	var galleryOrders []models.GalleryOrder
	var contactMessages []models.ContactMessage
	var payments []models.Payment
	var feedbacks []models.Feedback

	config.DB.Find(&foodItems)
	config.DB.Find(&galleryImages)
	config.DB.Preload("Item").Preload("User").Order("ordered_at desc").Find(&orders)
	config.DB.Preload("Item").Preload("User").Order("ordered_at desc").Find(&galleryOrders)
	config.DB.Order("sent_at desc").Find(&contactMessages)
	config.DB.Preload("User").Order("created_at desc").Find(&payments)
	config.DB.Preload("User").Order("created_at desc").Find(&feedbacks)

	var totalUsers int64
	config.DB.Model(&models.User{}).Count(&totalUsers)

	summary := map[string]int{}
	totalRevenue := decimal.Zero
	completedRevenue := decimal.Zero
	for i := range orders {
		summary[string(orders[i].Status)]++
		totalRevenue = totalRevenue.Add(orders[i].TotalPrice())
		if orders[i].Status == models.StatusCompleted {
			completedRevenue = completedRevenue.Add(orders[i].TotalPrice())
		}
	}
	for i := range galleryOrders {
		summary[string(galleryOrders[i].Status)]++
		totalRevenue = totalRevenue.Add(galleryOrders[i].TotalPrice())
		if galleryOrders[i].Status == models.StatusCompleted {
			completedRevenue = completedRevenue.Add(galleryOrders[i].TotalPrice())
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_users":          totalUsers,
		"total_food_orders":    len(orders),
		"total_gallery_orders": len(galleryOrders),
		"order_summary":        summary,
		"total_revenue":        totalRevenue,
		"completed_revenue":    completedRevenue,
		"food_items":           foodItems,
		"gallery_images":       galleryImages,
		"orders":               orders,
		"gallery_orders":       galleryOrders,
		"contact_messages":     contactMessages,
		"payments":             payments,
		"feedbacks":            feedbacks,
	})
}

func completeFoodOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("orderId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if statemachine.AlreadyThere(order.Status, models.StatusCompleted) {
		c.JSON(http.StatusOK, gin.H{"message": "Order already completed", "order_id": order.ID})
		return
	}
	if err := statemachine.CanTransition(order.Status, models.StatusCompleted, "admin"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	config.DB.Model(&order).Update("status", models.StatusCompleted)
	c.JSON(http.StatusOK, gin.H{"message": "Order marked as completed", "order_id": order.ID})
}

// MarkDone flips a food order to Completed — admin only
func MarkDone(c *gin.Context) {
	completeFoodOrder(c)
}

// MarkOrderCompleted is the second door to the same flip. The original site
// exposed both routes and existing integrations call both, so both stay.
func MarkOrderCompleted(c *gin.Context) {
	completeFoodOrder(c)
}

// MarkGalleryDone flips a gallery order to Completed — admin only
func MarkGalleryDone(c *gin.Context) {
	var order models.GalleryOrder
	if err := config.DB.First(&order, c.Param("orderId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery order not found"})
		return
	}

	if statemachine.AlreadyThere(order.Status, models.StatusCompleted) {
		c.JSON(http.StatusOK, gin.H{"message": "Gallery order already completed", "order_id": order.ID})
		return
	}
	if err := statemachine.CanTransition(order.Status, models.StatusCompleted, "admin"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	config.DB.Model(&order).Update("status", models.StatusCompleted)
	c.JSON(http.StatusOK, gin.H{"message": "Gallery order marked as completed", "order_id": order.ID})
}
