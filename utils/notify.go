package utils

import (
	"log"
	"os"
	"time"

	"github.com/fabihanawal/98hns/models"
	"github.com/go-resty/resty/v2"
)

// NotifyNewBooking posts a short booking summary to the webhook set in
// BOOKING_WEBHOOK_URL so the admin can call the customer back quickly.
// It runs after the booking is committed and is strictly best effort:
// failures are logged and never surface to the shopper.
func NotifyNewBooking(order models.Order) {
	webhookURL := os.Getenv("BOOKING_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}

	payload := map[string]any{
		"bookingId":     order.ID,
		"customerName":  order.CustomerName,
		"phone":         order.Phone,
		"address":       order.Address,
		"timing":        order.Timing,
		"paymentMethod": order.PaymentMethod,
		"total":         order.Total,
		"itemCount":     len(order.OrderItems),
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(payload).
		Post(webhookURL)

	if err != nil {
		log.Printf("Booking webhook error: %v", err)
		return
	}

	if resp.StatusCode() >= 300 {
		log.Printf("Booking webhook returned status %d: %s", resp.StatusCode(), resp.Body())
	}
}
