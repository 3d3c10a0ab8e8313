package routes

import (
	"github.com/FariaSara/Restaurent-Management-Suit/controllers"
	"github.com/FariaSara/Restaurent-Management-Suit/middlewares"
	"github.com/gin-gonic/gin"
)

func MenuRoutes(server *gin.Engine) {
	server.GET("/menu", controllers.GetMenu)
	server.GET("/menu/search", controllers.SearchMenu)
	server.GET("/menu/:id", controllers.GetMenuItem)

	staff := server.Group("/", middlewares.ValidateToken(), middlewares.RequireStaff())
	{
		staff.POST("/menu", controllers.CreateMenuItem)
		staff.PUT("/menu/:id", controllers.UpdateMenuItem)
		staff.POST("/menu-images", controllers.UploadMenuItemImage)
		staff.POST("/categories", controllers.CreateCategory)
	}
}
