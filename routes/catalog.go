package routes

import (
	ingredientControllers "github.com/Vladimir-Samoilov/TastyHub/controllers/ingredient"
	tagControllers "github.com/Vladimir-Samoilov/TastyHub/controllers/tag"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the read-only reference catalogs.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/tags", tagControllers.GetTags(db))           // GET /tags
	r.GET("/tags/:id", tagControllers.GetTagByID(db))    // GET /tags/:id

	r.GET("/ingredients", ingredientControllers.GetIngredients(db))        // GET /ingredients?name=...
	r.GET("/ingredients/:id", ingredientControllers.GetIngredientByID(db)) // GET /ingredients/:id
}
