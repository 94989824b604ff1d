package routes

import (
	"github.com/fabihanawal/98hns/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
