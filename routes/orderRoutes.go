package routes

import (
	"github.com/buyolex/buyolex-api/controllers"
	"github.com/buyolex/buyolex-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/order", controllers.CreateOrder)
	server.GET("/order/:orderId", controllers.GetOrderByID)
	server.GET("/user/:userId/orders", middlewares.RequireAuth(), controllers.GetOrdersByCustomer)

	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/order", controllers.GetOrders)
		admin.PATCH("/order/:orderId", controllers.UpdateOrderStatus)
		admin.DELETE("/order/:orderId", controllers.DeleteOrder)
		admin.GET("/order-stats", controllers.GetOrderStats)
	}
}
