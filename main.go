package main

import (
	"os"
	"strings"
	"time"

	"github.com/fabihanawal/98hns/initializers"
	"github.com/fabihanawal/98hns/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
	initializers.SeedDefaults()
}

func allowedOrigins() []string {
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"http://localhost:5173"}
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-Id"},
		ExposeHeaders:    []string{"Content-Length", "X-Session-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.MenuRoutes(server)
	routes.CategoryRoutes(server)
	routes.HeroRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server)
	server.Run()
}
