package handlers

import (
	"errors"
	"net/http"

	"restaurant-orders-api/config"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"
	"restaurant-orders-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// errNoIntent means the payment step was reached without a confirmed
// checkout, or the intent was already consumed by an earlier submission.
var errNoIntent = errors.New("no unconsumed checkout intent")

func pendingOrders(userID uint) ([]models.Order, []models.GalleryOrder) {
	var foodOrders []models.Order
	var galleryOrders []models.GalleryOrder
	config.DB.Preload("Item").
		Where("user_id = ? AND status = ?", userID, models.StatusPending).
		Find(&foodOrders)
	config.DB.Preload("Item").
		Where("user_id = ? AND status = ?", userID, models.StatusPending).
		Find(&galleryOrders)
	return foodOrders, galleryOrders
}

// checkoutTotal sums both pending sets at the items' current prices.
// Prices are never snapshotted, so an admin price change moves the total
// of orders that are still pending.
func checkoutTotal(foodOrders []models.Order, galleryOrders []models.GalleryOrder) decimal.Decimal {
	total := decimal.Zero
	for i := range foodOrders {
		total = total.Add(foodOrders[i].TotalPrice())
	}
	for i := range galleryOrders {
		total = total.Add(galleryOrders[i].TotalPrice())
	}
	return total
}

// Checkout aggregates everything the user has pending. GET only views;
// reloading the page writes nothing. POST confirms and persists a
// CheckoutIntent holding the agreed total and a snapshot of the covered
// order IDs, which the payment step consumes.
func Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)

	foodOrders, galleryOrders := pendingOrders(userID)
	if len(foodOrders) == 0 && len(galleryOrders) == 0 {
		redirectWithNotice(c, "/", "Your cart is empty.")
		return
	}

	total := checkoutTotal(foodOrders, galleryOrders)

	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{
			"food_orders":    foodOrders,
			"gallery_orders": galleryOrders,
			"total":          total,
		})
		return
	}

	orderIDs := make([]uint, 0, len(foodOrders))
	for i := range foodOrders {
		orderIDs = append(orderIDs, foodOrders[i].ID)
	}
	galleryOrderIDs := make([]uint, 0, len(galleryOrders))
	for i := range galleryOrders {
		galleryOrderIDs = append(galleryOrderIDs, galleryOrders[i].ID)
	}

	intent := models.CheckoutIntent{UserID: userID, Total: total}
	if err := intent.SetSnapshot(orderIDs, galleryOrderIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record checkout"})
		return
	}
	if err := config.DB.Create(&intent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record checkout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout confirmed",
		"total":   total,
		"next":    "/payment",
	})
}

type PaymentRequest struct {
	FirstName     string               `json:"first_name" binding:"required"`
	LastName      string               `json:"last_name" binding:"required"`
	Address       string               `json:"address" binding:"required"`
	Country       string               `json:"country" binding:"required"`
	State         string               `json:"state" binding:"required"`
	PinCode       string               `json:"pin_code" binding:"required"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`

	// Card fields are optional: a upi payment legitimately leaves them empty.
	NameOnCard     string `json:"name_on_card"`
	CardNumber     string `json:"card_number"`
	ExpirationDate string `json:"expiration_date"`
	CVV            string `json:"cvv"`
}

func latestUnconsumedIntent(tx *gorm.DB, userID uint) (*models.CheckoutIntent, error) {
	var intent models.CheckoutIntent
	err := tx.Where("user_id = ? AND consumed = ?", userID, false).
		Order("id desc").
		First(&intent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errNoIntent
	}
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

// PaymentView shows the amount due from the latest confirmed checkout
func PaymentView(c *gin.Context) {
	userID := middleware.GetUserID(c)

	foodOrders, galleryOrders := pendingOrders(userID)
	if len(foodOrders) == 0 && len(galleryOrders) == 0 {
		redirectWithNotice(c, "/", "No items to pay for.")
		return
	}

	intent, err := latestUnconsumedIntent(config.DB, userID)
	if errors.Is(err, errNoIntent) {
		redirectWithNotice(c, "/checkout", "Please confirm checkout before paying.")
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checkout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"amount_due":      intent.Total,
		"payment_methods": []models.PaymentMethod{models.MethodCredit, models.MethodDebit, models.MethodUPI},
	})
}

// SubmitPayment records one Payment for the agreed total and settles the
// ledger. The payment row, the Pending-to-Completed flips and the intent
// consumption happen in a single transaction, so a concurrent duplicate
// submission finds the intent already consumed and creates nothing.
// The amount charged is the intent's total, never a recomputation.
func SubmitPayment(c *gin.Context) {
	userID := middleware.GetUserID(c)

	foodOrders, galleryOrders := pendingOrders(userID)
	if len(foodOrders) == 0 && len(galleryOrders) == 0 {
		redirectWithNotice(c, "/", "No items to pay for.")
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method. Must be: credit, debit or upi"})
		return
	}

	for i := range foodOrders {
		if err := statemachine.CanTransition(foodOrders[i].Status, models.StatusCompleted, "payment"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	for i := range galleryOrders {
		if err := statemachine.CanTransition(galleryOrders[i].Status, models.StatusCompleted, "payment"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	var payment models.Payment
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		intent, err := latestUnconsumedIntent(tx, userID)
		if err != nil {
			return err
		}

		// Consume first: zero rows affected means another submission won.
		res := tx.Model(&models.CheckoutIntent{}).
			Where("id = ? AND consumed = ?", intent.ID, false).
			Update("consumed", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errNoIntent
		}

		payment = models.Payment{
			UserID:         &userID,
			Reference:      uuid.NewString(),
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Address:        req.Address,
			Country:        req.Country,
			State:          req.State,
			PinCode:        req.PinCode,
			Method:         req.PaymentMethod,
			NameOnCard:     req.NameOnCard,
			CardNumber:     req.CardNumber,
			ExpirationDate: req.ExpirationDate,
			CVV:            req.CVV,
			Amount:         intent.Total,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		food := tx.Model(&models.Order{}).Where("user_id = ? AND status = ?", userID, models.StatusPending)
		gallery := tx.Model(&models.GalleryOrder{}).Where("user_id = ? AND status = ?", userID, models.StatusPending)
		if config.C.CheckoutScope == config.ScopeItemized {
			orderIDs, galleryOrderIDs, err := intent.Snapshot()
			if err != nil {
				return err
			}
			food = food.Where("id IN ?", orderIDs)
			gallery = gallery.Where("id IN ?", galleryOrderIDs)
		}
		if err := food.Update("status", models.StatusCompleted).Error; err != nil {
			return err
		}
		return gallery.Update("status", models.StatusCompleted).Error
	})
	if errors.Is(err, errNoIntent) {
		redirectWithNotice(c, "/checkout", "Please confirm checkout before paying.")
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Payment successful! Your order is now complete.",
		"reference": payment.Reference,
		"amount":    payment.Amount,
		"next":      "/order_success",
	})
}

// OrderSuccess is the terminal confirmation page
func OrderSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Payment successful! Your order is now complete."})
}
