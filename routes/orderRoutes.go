package routes

import (
	"github.com/FariaSara/Restaurent-Management-Suit/controllers"
	"github.com/FariaSara/Restaurent-Management-Suit/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/checkout", controllers.Checkout)
	server.GET("/order/:orderNumber", controllers.GetOrderTracking)
	server.GET("/api/order/:orderNumber/status", controllers.GetOrderStatus)

	staff := server.Group("/", middlewares.ValidateToken(), middlewares.RequireStaff())
	{
		staff.GET("/order", controllers.GetOrders)
		staff.PATCH("/order/:orderNumber/status", controllers.UpdateOrderStatus)
	}
}
