package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/buyolex/buyolex-api/initializers"
	"github.com/buyolex/buyolex-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetSiteSettings returns the first settings row, as the storefront expects.
func GetSiteSettings(ctx *gin.Context) {
	var settings models.SiteSettings
	result := initializers.DB.First(&settings)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Site settings not configured")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch site settings")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"status": true, "data": settings})
}

// UpdateSiteSettings upserts the single settings row (admin).
func UpdateSiteSettings(ctx *gin.Context) {
	var payload models.SiteSettings
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var settings models.SiteSettings
	err := initializers.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := initializers.DB.Create(&payload).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to create site settings", err)
			return
		}
		ctx.JSON(http.StatusCreated, payload)
		return
	} else if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch site settings", err)
		return
	}

	if err := initializers.DB.Model(&settings).Updates(payload).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update site settings", err)
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// GetLandingPage assembles the active home landing page: the promoted product
// with its hero media plus the marketing content blocks.
func GetLandingPage(ctx *gin.Context) {
	var landing models.HomePageLandingPage
	result := initializers.DB.
		Where("is_active = ?", true).
		Preload("Product.Media").
		Preload("Product.Variants").
		First(&landing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "No active landing page")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch landing page")
		}
		return
	}

	var why models.WhyBuyolex
	initializers.DB.First(&why)
	var policy models.DeliveryReturnPolicy
	initializers.DB.First(&policy)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"landingPage":          landing,
		"hero":                 landing.HeroMedia(),
		"whyBuyolex":           why,
		"deliveryReturnPolicy": policy,
	})
}
