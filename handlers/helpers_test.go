package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-orders-api/config"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"
	"restaurant-orders-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest wires the real router against a fresh in-memory database.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Load()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// the in-memory database is per-connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createUser(t *testing.T, username string, role models.UserRole) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return user, token
}

func createFood(t *testing.T, name, price string) models.FoodItem {
	t.Helper()
	item := models.FoodItem{
		Name:      name,
		Category:  models.CategoryVeg,
		Price:     decimal.RequireFromString(price),
		ImagePath: "food_images/" + name,
	}
	require.NoError(t, config.DB.Create(&item).Error)
	return item
}

func createGallery(t *testing.T, caption, price string) models.GalleryImage {
	t.Helper()
	image := models.GalleryImage{
		Caption:   caption,
		Price:     decimal.RequireFromString(price),
		ImagePath: "gallery/" + caption,
	}
	require.NoError(t, config.DB.Create(&image).Error)
	return image
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func bodyDecimal(t *testing.T, w *httptest.ResponseRecorder, key string) decimal.Decimal {
	t.Helper()
	m := decodeBody(t, w)
	require.Contains(t, m, key)
	return decimal.RequireFromString(fmt.Sprint(m[key]))
}

func validBilling(method models.PaymentMethod) gin.H {
	return gin.H{
		"first_name":     "Ada",
		"last_name":      "Lovelace",
		"address":        "12 Analytical St",
		"country":        "UK",
		"state":          "London",
		"pin_code":       "E1 6AN",
		"payment_method": method,
	}
}

func requireRedirect(t *testing.T, w *httptest.ResponseRecorder, locationPrefix string) {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Contains(t, w.Header().Get("Location"), locationPrefix)
}
