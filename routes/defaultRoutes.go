package routes

import (
	"github.com/FariaSara/Restaurent-Management-Suit/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
