package handlers

import (
	"net/http"

	"restaurant-orders-api/config"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
)

type FeedbackRequest struct {
	Message string `json:"message" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// ListFeedback returns the caller's own feedback entries, newest first
func ListFeedback(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var feedbacks []models.Feedback
	config.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&feedbacks)
	c.JSON(http.StatusOK, gin.H{"count": len(feedbacks), "feedbacks": feedbacks})
}

// SubmitFeedback appends one feedback entry for the caller
func SubmitFeedback(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb := models.Feedback{
		UserID:  userID,
		Message: req.Message,
		Rating:  req.Rating,
	}
	if err := config.DB.Create(&fb).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thank you for your feedback"})
}
