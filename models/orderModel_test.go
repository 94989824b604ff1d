package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingDetails() BookingDetails {
	return BookingDetails{
		CustomerName:  "রাহিম",
		Phone:         "01712345678",
		HouseNumber:   "১২",
		Address:       "রোড ৫, খুলনা",
		Timing:        "রাত ৮টা",
		PaymentMethod: "Nagad",
	}
}

func TestNewOrderFromCartSnapshotsLines(t *testing.T) {
	cart := Cart{Lines: []CartLine{
		{ItemID: 1, Name: "কম্বো-০১", FinalPrice: 150, Quantity: 1},
		{ItemID: 8, Name: "নাচোস", SelectedOptionLabel: "ফুল", FinalPrice: 50, Quantity: 2},
	}}

	order, err := NewOrderFromCart(bookingDetails(), cart)
	require.NoError(t, err)

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, 250.0, order.Total)
	assert.Equal(t, "Nagad", order.PaymentMethod)
	require.Len(t, order.OrderItems, 2)
	assert.Equal(t, uint(8), order.OrderItems[1].ItemID)
	assert.Equal(t, "ফুল", order.OrderItems[1].SelectedOptionLabel)
	assert.Equal(t, 2, order.OrderItems[1].Quantity)
}

func TestNewOrderFromCartIsIsolatedFromLaterCartMutation(t *testing.T) {
	cart := Cart{Lines: []CartLine{
		{ItemID: 1, Name: "কম্বো-০১", FinalPrice: 150, Quantity: 1},
	}}

	order, err := NewOrderFromCart(bookingDetails(), cart)
	require.NoError(t, err)

	cart.Lines[0].Quantity = 99
	cart.Lines[0].FinalPrice = 1
	cart.Clear()

	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 1, order.OrderItems[0].Quantity)
	assert.Equal(t, 150.0, order.OrderItems[0].FinalPrice)
	assert.Equal(t, 150.0, order.Total)
}

func TestNewOrderFromCartRejectsEmptyCart(t *testing.T) {
	_, err := NewOrderFromCart(bookingDetails(), Cart{})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestNewOrderFromCartDefaultsPaymentMethod(t *testing.T) {
	details := bookingDetails()
	details.PaymentMethod = ""
	cart := Cart{Lines: []CartLine{{ItemID: 1, FinalPrice: 100, Quantity: 1}}}

	order, err := NewOrderFromCart(details, cart)
	require.NoError(t, err)
	assert.Equal(t, "bKash", order.PaymentMethod)
}

func TestComposeAddressKeepsBothSegments(t *testing.T) {
	address := ComposeAddress("১২", "রোড ৫, খুলনা")
	assert.Contains(t, address, "১২")
	assert.Contains(t, address, "রোড ৫, খুলনা")
}

func TestConfirmIsIdempotent(t *testing.T) {
	order := Order{Status: OrderStatusPending}

	assert.True(t, order.Confirm())
	assert.Equal(t, OrderStatusConfirmed, order.Status)

	assert.True(t, order.Confirm())
	assert.Equal(t, OrderStatusConfirmed, order.Status)
}

func TestConfirmNeverRestoresCancelled(t *testing.T) {
	order := Order{Status: OrderStatusCancelled}

	assert.False(t, order.Confirm())
	assert.Equal(t, OrderStatusCancelled, order.Status)
}

func TestCancelTransitions(t *testing.T) {
	pending := Order{Status: OrderStatusPending}
	assert.True(t, pending.Cancel())
	assert.Equal(t, OrderStatusCancelled, pending.Status)
	assert.True(t, pending.Cancel())

	confirmed := Order{Status: OrderStatusConfirmed}
	assert.False(t, confirmed.Cancel())
	assert.Equal(t, OrderStatusConfirmed, confirmed.Status)
}
