package services

import (
	"github.com/Vladimir-Samoilov/TastyHub/models"
	"gorm.io/gorm"
)

// RecipeFilter is the listing filter surface. Tag slugs combine with OR
// semantics; the membership filters are meaningful only for authenticated
// viewers.
type RecipeFilter struct {
	TagSlugs         []string
	AuthorID         uint
	IsFavorited      bool
	IsInShoppingCart bool
	Page             int
	Limit            int
}

// ListRecipes returns the filtered recipe page plus the total match count.
// An anonymous viewer asking for favorited / in-cart recipes gets an empty
// result set: those filters reference a membership the viewer doesn't have.
func ListRecipes(db *gorm.DB, filter RecipeFilter, viewerID uint) ([]models.Recipe, int64, error) {
	if viewerID == 0 && (filter.IsFavorited || filter.IsInShoppingCart) {
		return []models.Recipe{}, 0, nil
	}

	query := db.Model(&models.Recipe{})

	if len(filter.TagSlugs) > 0 {
		// Subquery instead of a join: a recipe carrying several of the
		// requested tags must still count and list once.
		tagged := db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
		query = query.Where("recipes.id IN (?)", tagged)
	}
	if filter.AuthorID != 0 {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if filter.IsFavorited {
		query = query.
			Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
			Where("favorites.user_id = ?", viewerID)
	}
	if filter.IsInShoppingCart {
		query = query.
			Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipes.id").
			Where("shopping_carts.user_id = ?", viewerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
		if filter.Page > 1 {
			query = query.Offset((filter.Page - 1) * filter.Limit)
		}
	}

	var recipes []models.Recipe
	err := query.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("recipes.id DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}
