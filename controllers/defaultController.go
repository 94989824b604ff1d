package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the 98 Hot & Spicy ordering API.

The following are the endpoints for this API:

AUTH
- POST "/auth/login" - Admin login

MENU
- GET "/menu" - List menu items (?category=, ?search=)
- GET "/menu/{id}" - Get menu item by ID
- POST "/menu" - Create menu item (admin)
- PUT "/menu/{id}" - Update menu item (admin)
- DELETE "/menu/{id}" - Delete menu item (admin)

CATEGORY
- GET "/category" - List categories
- POST "/category" - Create category (admin)
- DELETE "/category/{id}" - Delete category (admin)

HERO IMAGES
- GET "/hero-images" - List hero slides
- POST "/hero-images" - Add slide by URL (admin)
- POST "/hero-images/upload" - Upload slide files (admin)
- DELETE "/hero-images/{id}" - Delete slide (admin)

CART (session via X-Session-Id header)
- GET "/cart" - Get or start the session cart
- POST "/cart/items" - Add one unit of an item
- PATCH "/cart/items" - Adjust a line quantity
- DELETE "/cart/items" - Remove a line

BOOKING
- POST "/booking" - Submit the cart as a delivery booking
- GET "/bookings" - List bookings (admin)
- GET "/bookings/pending-count" - Count pending bookings (admin)
- GET "/booking/{bookingId}" - Get booking by ID (admin)
- PATCH "/booking/{bookingId}/confirm" - Confirm booking (admin)
- PATCH "/booking/{bookingId}/cancel" - Cancel booking (admin)
- DELETE "/booking/{bookingId}" - Delete booking (admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
