package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Buyolex API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/verify-email/:activationToken" - Activate user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password

CATALOG
- POST "/product" - Create new product
- GET "/product" - Get all products
- GET "/product/:id" - Get product by ID
- GET "/product-by-slug/:slug" - Get product by slug
- POST "/product-variant" - Add a product variant
- POST "/product-media" - Upload product media
- POST "/category" - Create category
- GET "/category" - Get all categories
- POST "/brand" - Create brand
- GET "/brand" - Get all brands

CART
- POST "/cart" - Add item to cart
- GET "/cart/:token" - Get cart by token

ORDER
- POST "/order" - Create a new order (checkout)
- GET "/order" - Retrieve all orders
- GET "/order/:orderId" - Get order by ID with totals
- GET "/user/:userId/orders" - Get orders for a specific customer
- PATCH "/order/:orderId" - Update order status
- DELETE "/order/:orderId" - Delete order by ID
- GET "/order-stats" - Dashboard order counters

SITE
- GET "/api/site-settings" - Storefront settings
- GET "/landing-page" - Active home landing page`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
