package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/fabihanawal/98hns/initializers"
	"github.com/fabihanawal/98hns/models"
	"github.com/fabihanawal/98hns/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateBooking turns the session cart plus the delivery form into a
// persisted pending booking. Snapshotting the lines, storing the order
// and clearing the cart happen in one transaction, so a persistence
// failure leaves the cart intact and is reported to the shopper instead
// of silently losing the booking.
func CreateBooking(ctx *gin.Context) {
	var details models.BookingDetails
	if err := ctx.ShouldBindJSON(&details); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cart, ok := loadSessionCart(ctx, false)
	if !ok {
		return
	}

	order, err := models.NewOrderFromCart(details, cart)
	if err != nil {
		if errors.Is(err, models.ErrEmptyCart) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
		} else {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to build booking")
		}
		return
	}

	if err := submitBooking(initializers.DB, &order, cart.ID); err != nil {
		log.Println("Booking persist error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save booking")
		return
	}

	// Best effort: a slow or failed notification never delays or
	// fails the booking.
	go utils.NotifyNewBooking(order)

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":   "Booking submitted successfully.",
		"bookingId": order.ID,
		"total":     order.Total,
		"status":    order.Status,
	})
}

// submitBooking stores the order and clears the cart as one atomic
// unit. A failed persist rolls everything back, leaving the cart lines
// intact; the cart is only ever emptied by a committed booking.
func submitBooking(db *gorm.DB, order *models.Order, cartID uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartLine{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// GetBookings lists bookings for the admin panel, newest first.
func GetBookings(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("OrderItems")
	countQuery := initializers.DB.Model(&models.Order{})

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
		countQuery = countQuery.Where("status = ?", status)
	}

	result := query.Order("created_at " + sortOrder).Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch bookings")
		return
	}

	var count int64
	countQuery.Count(&count)

	totalPages := math.Ceil(float64(count) / float64(limit))

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"bookings": orders,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

func GetBooking(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("bookingId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse bookingId")
		return
	}

	var order models.Order
	if err := initializers.DB.Preload("OrderItems").First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Booking not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch booking")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"booking": order})
}

// transitionBooking loads a booking, applies the transition and saves
// the new status when it applies. Unknown ids are 404s; transitions
// that do not apply to the current status are reported as no-ops.
func transitionBooking(ctx *gin.Context, transition func(*models.Order) bool, appliedMsg, refusedMsg string) {
	orderId, err := strconv.Atoi(ctx.Param("bookingId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse bookingId")
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Booking not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch booking")
		}
		return
	}

	if !transition(&order) {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": refusedMsg,
			"status":  order.Status,
		})
		return
	}

	if err := initializers.DB.Model(&order).Update("status", order.Status).Error; err != nil {
		log.Println("Status update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update booking status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": appliedMsg,
		"status":  order.Status,
	})
}

// ConfirmBooking marks a pending booking confirmed. Confirming twice is
// a successful no-op; a cancelled booking stays cancelled.
func ConfirmBooking(ctx *gin.Context) {
	transitionBooking(ctx, (*models.Order).Confirm,
		"Booking confirmed.",
		"Cancelled bookings cannot be confirmed.")
}

// CancelBooking marks a pending booking cancelled. Confirmed bookings
// can only be deleted, not cancelled.
func CancelBooking(ctx *gin.Context) {
	transitionBooking(ctx, (*models.Order).Cancel,
		"Booking cancelled.",
		"Confirmed bookings cannot be cancelled.")
}

// DeleteBooking removes a booking unconditionally, whatever its status.
func DeleteBooking(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("bookingId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse bookingId")
		return
	}

	if result := initializers.DB.Delete(&models.Order{}, orderId); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Booking deleted successfully."})
}

// GetPendingBookingCount backs the admin badge showing how many
// bookings still await a confirmation call.
func GetPendingBookingCount(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&count)

	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to count pending bookings")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"pendingBookingCount": count})
}
