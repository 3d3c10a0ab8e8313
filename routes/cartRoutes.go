package routes

import (
	"github.com/FariaSara/Restaurent-Management-Suit/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	server.GET("/cart", controllers.GetCart)
	server.POST("/cart/items", controllers.AddCartItem)
	server.POST("/cart/items/:itemId", controllers.UpdateCartItem)
	server.DELETE("/cart/items/:itemId", controllers.RemoveCartItem)
	server.POST("/cart/items/:itemId/remove", controllers.RemoveCartItem)
	server.GET("/cart/items/:itemId/remove", controllers.RemoveCartItem)
}
