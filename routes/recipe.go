package routes

import (
	recipeControllers "github.com/Vladimir-Samoilov/TastyHub/controllers/recipe"
	"github.com/Vladimir-Samoilov/TastyHub/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRecipeRoutes registers all "/recipes/*" endpoints.
func SetupRecipeRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Public reads (viewer-aware when a token is sent) ────────────────
	readGroup := r.Group("/recipes")
	readGroup.Use(middleware.OptionalToken)
	{
		readGroup.GET("", recipeControllers.GetRecipes(db))              // GET /recipes
		readGroup.GET("/:id", recipeControllers.GetRecipeByID(db))       // GET /recipes/:id
		readGroup.GET("/:id/get-link", recipeControllers.GetLink(db))    // GET /recipes/:id/get-link
		readGroup.GET("/:id/image", recipeControllers.GetRecipeImage(db)) // GET /recipes/:id/image
	}

	// ──────────────── Authenticated writes and memberships ────────────────
	writeGroup := r.Group("/recipes")
	writeGroup.Use(middleware.ValidateToken)
	{
		writeGroup.POST("", recipeControllers.CreateRecipe(db))       // POST /recipes
		writeGroup.PATCH("/:id", recipeControllers.UpdateRecipe(db))  // PATCH /recipes/:id
		writeGroup.DELETE("/:id", recipeControllers.DeleteRecipe(db)) // DELETE /recipes/:id

		writeGroup.PUT("/:id/image", recipeControllers.UpdateRecipeImage(db))    // PUT /recipes/:id/image
		writeGroup.DELETE("/:id/image", recipeControllers.DeleteRecipeImage(db)) // DELETE /recipes/:id/image

		writeGroup.POST("/:id/favorite", recipeControllers.AddFavorite(db))      // POST /recipes/:id/favorite
		writeGroup.DELETE("/:id/favorite", recipeControllers.RemoveFavorite(db)) // DELETE /recipes/:id/favorite

		writeGroup.POST("/:id/shopping_cart", recipeControllers.AddToShoppingCart(db))        // POST /recipes/:id/shopping_cart
		writeGroup.DELETE("/:id/shopping_cart", recipeControllers.RemoveFromShoppingCart(db)) // DELETE /recipes/:id/shopping_cart

		writeGroup.GET("/download_shopping_cart", recipeControllers.DownloadShoppingCart(db)) // GET /recipes/download_shopping_cart
	}
}
