package routes

import (
	"github.com/fabihanawal/98hns/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
	}
}
