package routes

import (
	"restaurant-orders-api/handlers"
	"restaurant-orders-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	{
		r.GET("/", handlers.MainPage)
		r.GET("/about", handlers.AboutPage)
		r.POST("/contact", handlers.Contact)
		r.POST("/register", handlers.Register)
		r.POST("/login", handlers.Login)
		r.GET("/state-machine", handlers.GetLifecycleInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		auth.POST("/order/:itemId", handlers.PlaceOrder)
		auth.POST("/gallery_order/:itemId", handlers.PlaceGalleryOrder)

		auth.GET("/checkout", handlers.Checkout)
		auth.POST("/checkout", handlers.Checkout)
		auth.GET("/payment", handlers.PaymentView)
		auth.POST("/payment", handlers.SubmitPayment)
		auth.GET("/order_success", handlers.OrderSuccess)

		auth.GET("/feedback", handlers.ListFeedback)
		auth.POST("/feedback", handlers.SubmitFeedback)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/admin_dashboard", handlers.AdminDashboard)

		admin.POST("/add_food", handlers.AddFood)
		admin.POST("/edit_food/:id", handlers.EditFood)
		admin.POST("/delete_food/:id", handlers.DeleteFood)

		admin.POST("/add_gallery", handlers.AddGallery)
		admin.POST("/delete_gallery/:id", handlers.DeleteGallery)

		// Two routes flip a food order; both predate this service and
		// existing integrations call both. The second one lives under
		// /orders/ because /order/:itemId already claims that segment
		// with a wildcard.
		admin.POST("/mark_done/:orderId", handlers.MarkDone)
		admin.POST("/orders/mark_completed/:orderId", handlers.MarkOrderCompleted)
		admin.POST("/mark_gallery_done/:orderId", handlers.MarkGalleryDone)
	}
}
