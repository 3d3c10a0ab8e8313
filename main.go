package main

import (
	"time"

	"github.com/FariaSara/Restaurent-Management-Suit/initializers"
	"github.com/FariaSara/Restaurent-Management-Suit/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func init() {
	initializers.LoadEnv()
	initializers.ConfigureLogger()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
	initializers.SeedSampleMenu()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.MenuRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server)
	if err := server.Run(); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
