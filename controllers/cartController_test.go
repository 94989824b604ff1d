package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fabihanawal/98hns/initializers"
	"github.com/fabihanawal/98hns/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.PATCH("/cart/items", UpdateCartLine)
	return server
}

func patchCartLine(t *testing.T, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, sessionID)
	w := httptest.NewRecorder()
	cartRouter().ServeHTTP(w, req)
	return w
}

func lineQuantity(t *testing.T, cartID uint, itemID uint, optionLabel string) int {
	t.Helper()
	var line models.CartLine
	require.NoError(t, initializers.DB.
		Where("cart_id = ? AND item_id = ? AND selected_option_label = ?", cartID, itemID, optionLabel).
		First(&line).Error)
	return line.Quantity
}

func TestUpdateCartLineAcceptsZeroDelta(t *testing.T) {
	initializers.DB = testDB(t)
	cart := seedCartWithLines(t, initializers.DB, "sess-zero-delta")

	w := patchCartLine(t, cart.SessionID, `{"itemId":1,"delta":0}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, lineQuantity(t, cart.ID, 1, ""))
}

func TestUpdateCartLineClampsDecrementAtOne(t *testing.T) {
	initializers.DB = testDB(t)
	cart := seedCartWithLines(t, initializers.DB, "sess-clamp")

	w := patchCartLine(t, cart.SessionID, `{"itemId":8,"optionLabel":"ফুল","delta":-5}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, lineQuantity(t, cart.ID, 8, "ফুল"))
}
