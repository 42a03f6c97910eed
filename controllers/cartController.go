package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/buyolex/buyolex-api/initializers"
	"github.com/buyolex/buyolex-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type cartItemRequest struct {
	Token     string `json:"token"`
	ProductID uint   `json:"productId" binding:"required"`
	VariantID *uint  `json:"variantId"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// AddCartItem puts a product into the cart identified by token, creating the
// cart on first use. Adding the same variant again merges quantities.
func AddCartItem(ctx *gin.Context) {
	var req cartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, models.ErrProductNotFound.Error())
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	var cart models.Cart
	if req.Token != "" {
		err := initializers.DB.Where("token = ?", req.Token).First(&cart).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}
	if cart.ID == 0 {
		cart = models.Cart{Token: req.Token}
		if err := initializers.DB.Create(&cart).Error; err != nil {
			log.Println("Cart creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}

	query := initializers.DB.Where("cart_id = ? AND product_id = ?", cart.ID, req.ProductID)
	if req.VariantID != nil {
		query = query.Where("variant_id = ?", *req.VariantID)
	} else {
		query = query.Where("variant_id IS NULL")
	}

	var existing models.CartItem
	err := query.First(&existing).Error
	if err == nil {
		existing.Quantity += req.Quantity
		if err := initializers.DB.Save(&existing).Error; err != nil {
			log.Println("Update error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Unable to update cart item quantity.")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Cart item quantity updated",
			"id":      existing.ID,
			"token":   cart.Token,
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch cart item")
		return
	}

	item := models.CartItem{
		CartID:    cart.ID,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
		PriceSnapshot: datatypes.JSONMap{
			"price":          product.Price.StringFixed(2),
			"discount_price": product.DiscountPrice.StringFixed(2),
		},
	}
	if err := initializers.DB.Create(&item).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to create cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": product.Title + " added to cart",
		"id":      item.ID,
		"token":   cart.Token,
	})
}

func GetCart(ctx *gin.Context) {
	token := ctx.Param("token")

	var cart models.Cart
	result := initializers.DB.
		Where("token = ?", token).
		Preload("Items").
		First(&cart)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}
