package services

import (
	"github.com/Vladimir-Samoilov/TastyHub/models"
	"gorm.io/gorm"
)

// Read projections. The write shape is validated separately (RecipeInput);
// the read shape always carries the nested tag list, the line items with
// the ingredient's reference data, the author's public profile and the
// viewer-dependent booleans. viewerID 0 means anonymous.

type UserView struct {
	ID           uint    `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	IsSubscribed bool    `json:"is_subscribed"`
	Avatar       *string `json:"avatar"`
}

type IngredientLineView struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type RecipeView struct {
	ID               uint                 `json:"id"`
	Author           UserView             `json:"author"`
	Name             string               `json:"name"`
	Image            string               `json:"image"`
	Text             string               `json:"text"`
	CookingTime      int                  `json:"cooking_time"`
	Ingredients      []IngredientLineView `json:"ingredients"`
	Tags             []models.Tag         `json:"tags"`
	IsFavorited      bool                 `json:"is_favorited"`
	IsInShoppingCart bool                 `json:"is_in_shopping_cart"`
}

// ShortRecipeView is the compact shape returned by membership actions and
// subscription listings.
type ShortRecipeView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func ToUserView(db *gorm.DB, user *models.User, viewerID uint) UserView {
	view := UserView{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if user.Avatar != "" {
		avatar := user.Avatar
		view.Avatar = &avatar
	}
	if viewerID != 0 && viewerID != user.ID {
		var count int64
		db.Model(&models.Subscription{}).
			Where("user_id = ? AND author_id = ?", viewerID, user.ID).
			Count(&count)
		view.IsSubscribed = count > 0
	}
	return view
}

func ToShortRecipeView(recipe *models.Recipe) ShortRecipeView {
	return ShortRecipeView{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}

// ToRecipeView renders the full read projection of a recipe for a given
// viewer. The recipe must be loaded with Author, Tags and
// Ingredients.Ingredient preloaded.
func ToRecipeView(db *gorm.DB, recipe *models.Recipe, viewerID uint) RecipeView {
	lines := make([]IngredientLineView, 0, len(recipe.Ingredients))
	for _, item := range recipe.Ingredients {
		lines = append(lines, IngredientLineView{
			ID:              item.IngredientID,
			Name:            item.Ingredient.Name,
			MeasurementUnit: item.Ingredient.MeasurementUnit,
			Amount:          item.Amount,
		})
	}

	tags := recipe.Tags
	if tags == nil {
		tags = []models.Tag{}
	}

	view := RecipeView{
		ID:          recipe.ID,
		Author:      ToUserView(db, &recipe.Author, viewerID),
		Name:        recipe.Name,
		Image:       recipe.Image,
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
		Ingredients: lines,
		Tags:        tags,
	}

	if viewerID != 0 {
		var count int64
		db.Model(&models.Favorite{}).
			Where("user_id = ? AND recipe_id = ?", viewerID, recipe.ID).
			Count(&count)
		view.IsFavorited = count > 0

		db.Model(&models.ShoppingCart{}).
			Where("user_id = ? AND recipe_id = ?", viewerID, recipe.ID).
			Count(&count)
		view.IsInShoppingCart = count > 0
	}

	return view
}
