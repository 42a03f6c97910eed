package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/buyolex/buyolex-api/initializers"
	"github.com/buyolex/buyolex-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	query := initializers.DB.Order("sort_order asc")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if result := query.Find(&categories); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

func GetCategory(ctx *gin.Context) {
	categoryID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var category models.Category
	if result := initializers.DB.First(&category, categoryID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func DeleteCategory(ctx *gin.Context) {
	categoryID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.Category{}, categoryID); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete category", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Category deleted successfully."})
}

func CreateBrand(ctx *gin.Context) {
	var brand models.Brand
	if err := ctx.ShouldBindJSON(&brand); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&brand).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create brand", err)
		return
	}

	ctx.JSON(http.StatusCreated, brand)
}

func GetBrands(ctx *gin.Context) {
	var brands []models.Brand
	if result := initializers.DB.Find(&brands); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch brands", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"brands": brands})
}
