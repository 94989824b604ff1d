package controllers

import (
	"net/http"
	"strconv"

	"github.com/fabihanawal/98hns/initializers"
	"github.com/fabihanawal/98hns/models"
	"github.com/gin-gonic/gin"
)

func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	if result := initializers.DB.Order("id ASC").Find(&categories); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

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

// DeleteCategory removes a category only. Items that referenced it keep
// their category string and simply stop showing in the filter bar.
func DeleteCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.Category{}, categoryId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete category", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
