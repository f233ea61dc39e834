package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"restaurant-orders-api/config"
	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Default scope: payment settles everything pending, including orders placed
// after the checkout was confirmed.
func TestPayAllScopeSettlesEverythingPending(t *testing.T) {
	r := setupTest(t)
	user, token := createUser(t, "diner", models.RoleUser)
	item := createFood(t, "Pasta", "9.50")

	doJSON(t, r, http.MethodPost, fmt.Sprintf("/order/%d", item.ID), token, gin.H{"quantity": "1"})
	doJSON(t, r, http.MethodPost, "/checkout", token, nil)

	// placed after checkout, still swept up by the pay-all flip
	doJSON(t, r, http.MethodPost, fmt.Sprintf("/order/%d", item.ID), token, gin.H{"quantity": "1"})

	w := doJSON(t, r, http.MethodPost, "/payment", token, validBilling(models.MethodUPI))
	require.Equal(t, http.StatusCreated, w.Code)

	var pending int64
	config.DB.Model(&models.Order{}).
		Where("user_id = ? AND status = ?", user.ID, models.StatusPending).Count(&pending)
	assert.Zero(t, pending)
}

// Itemized scope: only the rows snapshotted into the intent are settled.
func TestItemizedScopeSettlesOnlySnapshot(t *testing.T) {
	r := setupTest(t)
	prev := config.C.CheckoutScope
	config.C.CheckoutScope = config.ScopeItemized
	t.Cleanup(func() { config.C.CheckoutScope = prev })

	user, token := createUser(t, "diner", models.RoleUser)
	item := createFood(t, "Pasta", "9.50")

	doJSON(t, r, http.MethodPost, fmt.Sprintf("/order/%d", item.ID), token, gin.H{"quantity": "1"})
	doJSON(t, r, http.MethodPost, "/checkout", token, nil)

	doJSON(t, r, http.MethodPost, fmt.Sprintf("/order/%d", item.ID), token, gin.H{"quantity": "1"})

	w := doJSON(t, r, http.MethodPost, "/payment", token, validBilling(models.MethodUPI))
	require.Equal(t, http.StatusCreated, w.Code)

	var pending, completed int64
	config.DB.Model(&models.Order{}).
		Where("user_id = ? AND status = ?", user.ID, models.StatusPending).Count(&pending)
	config.DB.Model(&models.Order{}).
		Where("user_id = ? AND status = ?", user.ID, models.StatusCompleted).Count(&completed)
	assert.EqualValues(t, 1, pending, "the post-checkout order is untouched")
	assert.EqualValues(t, 1, completed)
}
