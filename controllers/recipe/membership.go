package recipeControllers

import (
	"net/http"
	"strconv"

	"github.com/Vladimir-Samoilov/TastyHub/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func recipeIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
		return 0, false
	}
	return uint(id), true
}

// POST /recipes/:id/favorite
func AddFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		recipeID, ok := recipeIDParam(c)
		if !ok {
			return
		}

		recipe, err := services.AddFavorite(db, userID, recipeID)
		if err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}
		c.JSON(http.StatusCreated, services.ToShortRecipeView(recipe))
	}
}

// DELETE /recipes/:id/favorite
func RemoveFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		recipeID, ok := recipeIDParam(c)
		if !ok {
			return
		}

		if err := services.RemoveFavorite(db, userID, recipeID); err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// POST /recipes/:id/shopping_cart
func AddToShoppingCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		recipeID, ok := recipeIDParam(c)
		if !ok {
			return
		}

		recipe, err := services.AddToShoppingCart(db, userID, recipeID)
		if err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}
		c.JSON(http.StatusCreated, services.ToShortRecipeView(recipe))
	}
}

// DELETE /recipes/:id/shopping_cart
func RemoveFromShoppingCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		recipeID, ok := recipeIDParam(c)
		if !ok {
			return
		}

		if err := services.RemoveFromShoppingCart(db, userID, recipeID); err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}
		c.Status(http.StatusNoContent)
	}
}
