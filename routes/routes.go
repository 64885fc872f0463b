package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, Catalog,
// Recipe, and User route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Reference catalogs (public, read-only)
	SetupCatalogRoutes(r, db)

	// 3️⃣ Recipes: public reads, JWT-protected writes and memberships
	SetupRecipeRoutes(r, db)

	// 4️⃣ User profiles and subscriptions
	SetupUserRoutes(r, db)
}
