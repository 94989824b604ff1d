package routes

import (
	"github.com/fabihanawal/98hns/controllers"
	"github.com/fabihanawal/98hns/middlewares"
	"github.com/gin-gonic/gin"
)

func CategoryRoutes(server *gin.Engine) {
	server.GET("/category", controllers.GetCategories)

	admin := server.Group("/category", middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateCategory)
		admin.DELETE("/:id", controllers.DeleteCategory)
	}
}
