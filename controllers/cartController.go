package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/fabihanawal/98hns/initializers"
	"github.com/fabihanawal/98hns/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sessionHeader carries the guest session token that keys the cart.
// The server mints one on first contact and echoes it on every cart
// response so the storefront can store and resend it.
const sessionHeader = "X-Session-Id"

func preloadLines(db *gorm.DB) *gorm.DB {
	return db.Order("cart_lines.id ASC")
}

// loadSessionCart fetches the cart for the request's session token with
// its lines in insertion order. With createMissing it mints a session
// and an empty cart when none exists yet. On failure it writes the
// error response and returns false.
func loadSessionCart(ctx *gin.Context, createMissing bool) (models.Cart, bool) {
	sessionID := ctx.GetHeader(sessionHeader)
	if sessionID == "" {
		if !createMissing {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
			return models.Cart{}, false
		}
		sessionID = uuid.NewString()
	}

	var cart models.Cart
	err := initializers.DB.Where("session_id = ?", sessionID).Preload("Lines", preloadLines).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if !createMissing {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
			return models.Cart{}, false
		}
		cart = models.Cart{SessionID: sessionID}
		if err := initializers.DB.Create(&cart).Error; err != nil {
			log.Println("Cart creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create cart")
			return models.Cart{}, false
		}
	} else if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return models.Cart{}, false
	}

	ctx.Header(sessionHeader, cart.SessionID)
	return cart, true
}

func GetCart(ctx *gin.Context) {
	cart, ok := loadSessionCart(ctx, true)
	if !ok {
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"sessionId": cart.SessionID,
		"cart":      cart,
		"totals":    cart.Totals(),
	})
}

// AddCartItem puts one unit of a menu item into the session cart. The
// unit price is resolved here, once, from the current catalog; the line
// keeps it for good.
func AddCartItem(ctx *gin.Context) {
	var body struct {
		ItemID      uint   `json:"itemId" binding:"required"`
		OptionLabel string `json:"optionLabel"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var item models.MenuItem
	if err := initializers.DB.First(&item, body.ItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Menu item not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch menu item")
		}
		return
	}

	cart, ok := loadSessionCart(ctx, true)
	if !ok {
		return
	}

	line, err := cart.AddLine(item, body.OptionLabel)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	if err := initializers.DB.Save(line).Error; err != nil {
		log.Println("Cart line save error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":   item.Name + " added to cart",
		"sessionId": cart.SessionID,
		"line":      line,
		"totals":    cart.Totals(),
	})
}

// UpdateCartLine shifts the quantity of one line by delta, never below
// one. A missing line is silently ignored.
func UpdateCartLine(ctx *gin.Context) {
	var body struct {
		ItemID      uint   `json:"itemId" binding:"required"`
		OptionLabel string `json:"optionLabel"`
		Delta       int    `json:"delta"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cart, ok := loadSessionCart(ctx, false)
	if !ok {
		return
	}

	line := cart.AdjustQuantity(body.ItemID, body.OptionLabel, body.Delta)
	if line == nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "No matching cart line",
			"totals":  cart.Totals(),
		})
		return
	}

	if err := initializers.DB.Model(line).Update("quantity", line.Quantity).Error; err != nil {
		log.Println("Cart line update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"line":   line,
		"totals": cart.Totals(),
	})
}

// RemoveCartLine deletes one line outright, whatever its quantity. A
// missing line is silently ignored.
func RemoveCartLine(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Query("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid itemId")
		return
	}
	optionLabel := ctx.Query("optionLabel")

	cart, ok := loadSessionCart(ctx, false)
	if !ok {
		return
	}

	removed := cart.RemoveLine(uint(itemID), optionLabel)
	if removed == nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "No matching cart line",
			"totals":  cart.Totals(),
		})
		return
	}

	if err := initializers.DB.Delete(&models.CartLine{}, removed.ID).Error; err != nil {
		log.Println("Cart line delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": removed.Name + " removed from cart",
		"totals":  cart.Totals(),
	})
}
