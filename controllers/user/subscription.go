package userControllers

import (
	"net/http"
	"strconv"

	"github.com/Vladimir-Samoilov/TastyHub/models"
	"github.com/Vladimir-Samoilov/TastyHub/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// subscriptionView is an author profile extended with their recipes, for
// the subscriptions feed.
type subscriptionView struct {
	services.UserView
	Recipes      []services.ShortRecipeView `json:"recipes"`
	RecipesCount int64                      `json:"recipes_count"`
}

func buildSubscriptionView(db *gorm.DB, author *models.User, viewerID uint, recipesLimit int) (subscriptionView, error) {
	view := subscriptionView{UserView: services.ToUserView(db, author, viewerID)}

	if err := db.Model(&models.Recipe{}).Where("author_id = ?", author.ID).Count(&view.RecipesCount).Error; err != nil {
		return view, err
	}

	query := db.Where("author_id = ?", author.ID).Order("id DESC")
	if recipesLimit > 0 {
		query = query.Limit(recipesLimit)
	}
	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return view, err
	}

	view.Recipes = make([]services.ShortRecipeView, 0, len(recipes))
	for i := range recipes {
		view.Recipes = append(view.Recipes, services.ToShortRecipeView(&recipes[i]))
	}
	return view, nil
}

func recipesLimitParam(c *gin.Context) int {
	if raw := c.Query("recipes_limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

// POST /users/:id/subscribe
func Subscribe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		authorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}

		author, err := services.Subscribe(db, userID, uint(authorID))
		if err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}

		view, err := buildSubscriptionView(db, author, userID, recipesLimitParam(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build subscription"})
			return
		}
		c.JSON(http.StatusCreated, view)
	}
}

// DELETE /users/:id/subscribe
func Unsubscribe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		authorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}

		if err := services.Unsubscribe(db, userID, uint(authorID)); err != nil {
			c.JSON(services.ErrorResponse(err))
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// GET /users/subscriptions
func GetSubscriptions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		recipesLimit := recipesLimitParam(c)

		var authors []models.User
		err := db.
			Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
			Where("subscriptions.user_id = ?", userID).
			Order("users.id").
			Find(&authors).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscriptions"})
			return
		}

		results := make([]subscriptionView, 0, len(authors))
		for i := range authors {
			view, err := buildSubscriptionView(db, &authors[i], userID, recipesLimit)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build subscriptions"})
				return
			}
			results = append(results, view)
		}

		c.JSON(http.StatusOK, gin.H{"count": len(results), "results": results})
	}
}
