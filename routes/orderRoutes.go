package routes

import (
	"github.com/fabihanawal/98hns/controllers"
	"github.com/fabihanawal/98hns/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/booking", controllers.CreateBooking)

	admin := server.Group("", middlewares.RequireAdmin())
	{
		admin.GET("/bookings", controllers.GetBookings)
		admin.GET("/bookings/pending-count", controllers.GetPendingBookingCount)
		admin.GET("/booking/:bookingId", controllers.GetBooking)
		admin.PATCH("/booking/:bookingId/confirm", controllers.ConfirmBooking)
		admin.PATCH("/booking/:bookingId/cancel", controllers.CancelBooking)
		admin.DELETE("/booking/:bookingId", controllers.DeleteBooking)
	}
}
