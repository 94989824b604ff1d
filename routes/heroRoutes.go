package routes

import (
	"github.com/fabihanawal/98hns/controllers"
	"github.com/fabihanawal/98hns/middlewares"
	"github.com/gin-gonic/gin"
)

func HeroRoutes(server *gin.Engine) {
	server.GET("/hero-images", controllers.GetHeroImages)

	admin := server.Group("/hero-images", middlewares.RequireAdmin())
	{
		admin.POST("", controllers.AddHeroImage)
		admin.POST("/upload", controllers.UploadHeroImages)
		admin.DELETE("/:id", controllers.DeleteHeroImage)
	}
}
