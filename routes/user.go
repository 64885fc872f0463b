package routes

import (
	userControllers "github.com/Vladimir-Samoilov/TastyHub/controllers/user"
	"github.com/Vladimir-Samoilov/TastyHub/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/users/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Public profiles ────────────────
	publicGroup := r.Group("/users")
	publicGroup.Use(middleware.OptionalToken)
	{
		publicGroup.GET("", userControllers.GetUsers(db))        // GET /users
		publicGroup.GET("/:id", userControllers.GetUserByID(db)) // GET /users/:id
	}

	// ──────────────── Own profile + subscriptions ────────────────
	privateGroup := r.Group("/users")
	privateGroup.Use(middleware.ValidateToken)
	{
		privateGroup.GET("/me", userControllers.GetMe(db))                  // GET /users/me
		privateGroup.PUT("/me/avatar", userControllers.UpdateAvatar(db))    // PUT /users/me/avatar
		privateGroup.DELETE("/me/avatar", userControllers.DeleteAvatar(db)) // DELETE /users/me/avatar

		privateGroup.GET("/subscriptions", userControllers.GetSubscriptions(db)) // GET /users/subscriptions
		privateGroup.POST("/:id/subscribe", userControllers.Subscribe(db))       // POST /users/:id/subscribe
		privateGroup.DELETE("/:id/subscribe", userControllers.Unsubscribe(db))   // DELETE /users/:id/subscribe
	}
}
