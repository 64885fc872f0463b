package ingredientControllers

import (
	"net/http"
	"strings"

	"github.com/Vladimir-Samoilov/TastyHub/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /ingredients?name=<prefix>
// The name filter is a case-insensitive prefix match.
func GetIngredients(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Ingredient{})

		if name := c.Query("name"); name != "" {
			likePattern := strings.ToLower(name) + "%"
			query = query.Where("LOWER(name) LIKE ?", likePattern)
		}

		var ingredients []models.Ingredient
		if err := query.Order("name").Find(&ingredients).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients"})
			return
		}
		c.JSON(http.StatusOK, ingredients)
	}
}

// GET /ingredients/:id
func GetIngredientByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ingredient models.Ingredient
		if err := db.First(&ingredient, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
			return
		}
		c.JSON(http.StatusOK, ingredient)
	}
}
