package services

import (
	"errors"

	"github.com/Vladimir-Samoilov/TastyHub/models"
	"gorm.io/gorm"
)

// Membership sets (favorites, shopping cart, subscriptions) share the same
// shape: an insert guarded by the pair's unique index, so concurrent
// duplicate adds resolve to exactly one created row and the rest observe
// a conflict. Removal reports "not in list" when no row matched.

func findRecipe(db *gorm.DB, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := db.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{What: "Recipe"}
		}
		return nil, err
	}
	return &recipe, nil
}

func AddFavorite(db *gorm.DB, userID, recipeID uint) (*models.Recipe, error) {
	recipe, err := findRecipe(db, recipeID)
	if err != nil {
		return nil, err
	}
	entry := models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Already added."}
		}
		return nil, err
	}
	return recipe, nil
}

func RemoveFavorite(db *gorm.DB, userID, recipeID uint) error {
	result := db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{What: "Favorite entry"}
	}
	return nil
}

func AddToShoppingCart(db *gorm.DB, userID, recipeID uint) (*models.Recipe, error) {
	recipe, err := findRecipe(db, recipeID)
	if err != nil {
		return nil, err
	}
	entry := models.ShoppingCart{UserID: userID, RecipeID: recipeID}
	if err := db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Already added."}
		}
		return nil, err
	}
	return recipe, nil
}

func RemoveFromShoppingCart(db *gorm.DB, userID, recipeID uint) error {
	result := db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.ShoppingCart{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{What: "Shopping cart entry"}
	}
	return nil
}

// Subscribe rejects self-subscription before any existence check.
func Subscribe(db *gorm.DB, userID, authorID uint) (*models.User, error) {
	if userID == authorID {
		return nil, &FieldError{Field: "author", Message: "Cannot subscribe to yourself."}
	}
	var author models.User
	if err := db.First(&author, authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{What: "User"}
		}
		return nil, err
	}
	entry := models.Subscription{UserID: userID, AuthorID: authorID}
	if err := db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Already subscribed."}
		}
		return nil, err
	}
	return &author, nil
}

func Unsubscribe(db *gorm.DB, userID, authorID uint) error {
	result := db.Where("user_id = ? AND author_id = ?", userID, authorID).Delete(&models.Subscription{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{What: "Subscription"}
	}
	return nil
}
