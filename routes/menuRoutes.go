package routes

import (
	"github.com/fabihanawal/98hns/controllers"
	"github.com/fabihanawal/98hns/middlewares"
	"github.com/gin-gonic/gin"
)

func MenuRoutes(server *gin.Engine) {
	server.GET("/menu", controllers.GetMenu)
	server.GET("/menu/:id", controllers.GetMenuItem)

	admin := server.Group("/menu", middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateMenuItem)
		admin.PUT("/:id", controllers.UpdateMenuItem)
		admin.DELETE("/:id", controllers.DeleteMenuItem)
	}
}
