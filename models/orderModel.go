package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

// PaymentMethods is the suggested set shown to the shopper. The chosen
// value is stored as a free-text label and never validated against it.
var PaymentMethods = []string{"bKash", "Nagad", "mCash", "Islami Bank"}

var ErrEmptyCart = errors.New("cart has no lines")

type Order struct {
	gorm.Model
	CustomerName  string      `json:"customerName"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	Timing        string      `json:"timing"`
	PaymentMethod string      `json:"paymentMethod"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	OrderItems    []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is a snapshot of a cart line taken at submission time. It
// shares no storage with the live cart, so later cart or catalog
// mutation cannot alter a submitted booking.
type OrderItem struct {
	gorm.Model
	OrderID             int     `json:"orderId"`
	ItemID              uint    `json:"itemId"`
	Name                string  `json:"name"`
	SelectedOptionLabel string  `json:"selectedOptionLabel"`
	FinalPrice          float64 `json:"finalPrice"`
	Quantity            int     `json:"quantity"`
}

// BookingDetails is the delivery form input. Required fields are
// enforced by gin binding before the submission pipeline runs.
type BookingDetails struct {
	CustomerName  string `json:"customerName" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	HouseNumber   string `json:"houseNumber" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Timing        string `json:"timing" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
}

// ComposeAddress joins the house number and the free-text address into
// the single delivery address stored on the booking. Both segments stay
// readable in the result.
func ComposeAddress(houseNumber, address string) string {
	return fmt.Sprintf("বাসা নং: %s, ঠিকানা: %s", houseNumber, address)
}

// NewOrderFromCart builds a pending booking from the delivery details
// and the current cart. Lines are value-copied into OrderItems and the
// total is computed once here and stored, never recomputed later.
func NewOrderFromCart(details BookingDetails, cart Cart) (Order, error) {
	if len(cart.Lines) == 0 {
		return Order{}, ErrEmptyCart
	}

	paymentMethod := details.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = PaymentMethods[0]
	}

	items := make([]OrderItem, 0, len(cart.Lines))
	var total float64
	for _, line := range cart.Lines {
		items = append(items, OrderItem{
			ItemID:              line.ItemID,
			Name:                line.Name,
			SelectedOptionLabel: line.SelectedOptionLabel,
			FinalPrice:          line.FinalPrice,
			Quantity:            line.Quantity,
		})
		total += line.FinalPrice * float64(line.Quantity)
	}

	return Order{
		CustomerName:  details.CustomerName,
		Phone:         details.Phone,
		Address:       ComposeAddress(details.HouseNumber, details.Address),
		Timing:        details.Timing,
		PaymentMethod: paymentMethod,
		Total:         total,
		Status:        OrderStatusPending,
		OrderItems:    items,
	}, nil
}

// Confirm moves a pending booking to confirmed. Confirming an already
// confirmed booking is a successful no-op; a cancelled booking is never
// restored. Returns whether the booking is confirmed afterwards.
func (o *Order) Confirm() bool {
	switch o.Status {
	case OrderStatusPending:
		o.Status = OrderStatusConfirmed
		return true
	case OrderStatusConfirmed:
		return true
	default:
		return false
	}
}

// Cancel moves a pending booking to cancelled. Cancelling an already
// cancelled booking is a no-op; confirmed bookings can only be deleted,
// not cancelled. Returns whether the booking is cancelled afterwards.
func (o *Order) Cancel() bool {
	switch o.Status {
	case OrderStatusPending:
		o.Status = OrderStatusCancelled
		return true
	case OrderStatusCancelled:
		return true
	default:
		return false
	}
}
