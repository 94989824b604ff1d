package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fabihanawal/98hns/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNotifyNewBookingPostsSummary(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	t.Setenv("BOOKING_WEBHOOK_URL", server.URL)

	order := models.Order{
		Model:         gorm.Model{ID: 7},
		CustomerName:  "রাহিম",
		Phone:         "01712345678",
		Address:       "বাসা নং: ১২, ঠিকানা: রোড ৫, খুলনা",
		Timing:        "রাত ৮টা",
		PaymentMethod: "Nagad",
		Total:         250,
		Status:        models.OrderStatusPending,
		OrderItems:    []models.OrderItem{{ItemID: 1, Quantity: 1}},
	}
	NotifyNewBooking(order)

	require.NotNil(t, received)
	assert.Equal(t, float64(7), received["bookingId"])
	assert.Equal(t, "রাহিম", received["customerName"])
	assert.Equal(t, "01712345678", received["phone"])
	assert.Equal(t, 250.0, received["total"])
	assert.Equal(t, 1.0, received["itemCount"])
}

func TestNotifyNewBookingSkipsWhenUnconfigured(t *testing.T) {
	t.Setenv("BOOKING_WEBHOOK_URL", "")
	NotifyNewBooking(models.Order{})
}
