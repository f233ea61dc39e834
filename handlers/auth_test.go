package handlers_test

import (
	"net/http"
	"testing"

	"restaurant-orders-api/config"
	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"username":         "alice",
		"email":            "alice@example.com",
		"password":         "secret123",
		"confirm_password": "secret123",
		"role":             "user",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["token"])

	w = doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"username": "alice",
		"password": "secret123",
		"role":     "user",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "/", body["next"])
}

func TestRegisterPasswordMismatch(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"username":         "bob",
		"email":            "bob@example.com",
		"password":         "secret123",
		"confirm_password": "different",
		"role":             "user",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	config.DB.Model(&models.User{}).Count(&count)
	assert.Zero(t, count, "no partial write on validation failure")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r := setupTest(t)
	createUser(t, "carol", models.RoleUser)

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"username":         "carol",
		"email":            "other@example.com",
		"password":         "secret123",
		"confirm_password": "secret123",
		"role":             "user",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupTest(t)
	createUser(t, "dave", models.RoleUser)

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"username":         "dave2",
		"email":            "dave@example.com",
		"password":         "secret123",
		"confirm_password": "secret123",
		"role":             "user",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

// A stored "user" picking the admin door at login is rejected outright,
// not silently downgraded.
func TestLoginRoleMismatch(t *testing.T) {
	r := setupTest(t)
	createUser(t, "erin", models.RoleUser)

	w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"username": "erin",
		"password": "password123",
		"role":     "admin",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	body := decodeBody(t, w)
	assert.NotContains(t, body, "token")
	assert.Contains(t, body["error"], "You must login as user")
}

func TestLoginAdminGetsDashboardNext(t *testing.T) {
	r := setupTest(t)
	createUser(t, "frank", models.RoleAdmin)

	w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"username": "frank",
		"password": "password123",
		"role":     "admin",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/admin_dashboard", decodeBody(t, w)["next"])
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupTest(t)
	createUser(t, "gina", models.RoleUser)

	w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"username": "gina",
		"password": "nope",
		"role":     "user",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresAuth(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodGet, "/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	_, token := createUser(t, "hank", models.RoleUser)
	w = doJSON(t, r, http.MethodGet, "/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
