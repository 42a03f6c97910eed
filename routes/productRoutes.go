package routes

import (
	"github.com/buyolex/buyolex-api/controllers"
	"github.com/buyolex/buyolex-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/:id", controllers.GetProduct)
	server.GET("/product-by-slug/:slug", controllers.GetProductBySlug)
	server.GET("/category", controllers.GetCategories)
	server.GET("/category/:id", controllers.GetCategory)
	server.GET("/brand", controllers.GetBrands)

	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/product", controllers.CreateProduct)
		admin.PATCH("/product/:id", controllers.UpdateProduct)
		admin.DELETE("/product/:id", controllers.DeleteProduct)
		admin.POST("/product-variant", controllers.CreateProductVariant)
		admin.POST("/product-media", controllers.UploadProductMedia)
		admin.POST("/category", controllers.CreateCategory)
		admin.DELETE("/category/:id", controllers.DeleteCategory)
		admin.POST("/brand", controllers.CreateBrand)
	}
}
