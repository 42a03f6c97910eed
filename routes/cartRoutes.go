package routes

import (
	"github.com/buyolex/buyolex-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	server.POST("/cart", controllers.AddCartItem)
	server.GET("/cart/:token", controllers.GetCart)
}
