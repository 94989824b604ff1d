package routes

import (
	"github.com/fabihanawal/98hns/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	server.GET("/cart", controllers.GetCart)
	server.POST("/cart/items", controllers.AddCartItem)
	server.PATCH("/cart/items", controllers.UpdateCartLine)
	server.DELETE("/cart/items", controllers.RemoveCartLine)
}
