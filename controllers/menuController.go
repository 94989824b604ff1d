package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fabihanawal/98hns/initializers"
	"github.com/fabihanawal/98hns/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// validateItemPricing enforces the catalog invariant: an item is priced
// either through a single scalar price or through its option list,
// never both and never neither.
func validateItemPricing(item models.MenuItem) error {
	if item.HasOptions() {
		if item.Price != nil {
			return errors.New("an item with options cannot also have a scalar price")
		}
		return nil
	}
	if item.Price == nil {
		return errors.New("an item without options must have a price")
	}
	return nil
}

func CreateMenuItem(ctx *gin.Context) {
	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := validateItemPricing(item); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid item pricing", err)
		return
	}

	if err := initializers.DB.Create(&item).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create menu item", err)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

func GetMenu(ctx *gin.Context) {
	var items []models.MenuItem

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	offset := (page - 1) * limit

	query := initializers.DB.Model(&models.MenuItem{})
	countQuery := initializers.DB.Model(&models.MenuItem{})

	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
		countQuery = countQuery.Where("category = ?", category)
	}

	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
		countQuery = countQuery.Where("name LIKE ?", "%"+search+"%")
	}

	result := query.Order("id ASC").Limit(limit).Offset(offset).Find(&items)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch menu", result.Error)
		return
	}

	var count int64
	countQuery.Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"items": items,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetMenuItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var item models.MenuItem
	result := initializers.DB.First(&item, itemId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// UpdateMenuItem replaces the editable fields of an item. Cart lines
// already holding the item keep their resolved price untouched.
func UpdateMenuItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var item models.MenuItem
	if err := initializers.DB.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", err)
		}
		return
	}

	var update models.MenuItem
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := validateItemPricing(update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid item pricing", err)
		return
	}

	item.Name = update.Name
	item.Description = update.Description
	item.Category = update.Category
	item.Price = update.Price
	item.DisplayPrice = update.DisplayPrice
	item.Options = update.Options
	item.Image = update.Image
	item.IsSpicy = update.IsSpicy
	item.IsBestSeller = update.IsBestSeller

	if err := initializers.DB.Save(&item).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update menu item", err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func DeleteMenuItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	if result := initializers.DB.Delete(&models.MenuItem{}, itemId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete menu item", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
