package services

import (
	"errors"

	"github.com/Vladimir-Samoilov/TastyHub/models"
	"gorm.io/gorm"
)

const (
	MinCookingTime      = 1
	MinIngredientAmount = 1
)

type IngredientLine struct {
	IngredientID uint
	Amount       int
}

// RecipeInput carries the validated write shape of a recipe. Image is an
// opaque reference URL resolved by the caller before composition.
type RecipeInput struct {
	Name        string
	Text        string
	Image       string
	CookingTime int
	TagIDs      []uint
	Ingredients []IngredientLine
}

func validateRecipeInput(in RecipeInput) error {
	if in.CookingTime < MinCookingTime {
		return &FieldError{Field: "cooking_time", Message: "Cooking time must be at least 1."}
	}
	if len(in.Ingredients) == 0 {
		return &FieldError{Field: "ingredients", Message: "Ingredients must not be empty."}
	}
	seenIngredients := make(map[uint]bool, len(in.Ingredients))
	for _, line := range in.Ingredients {
		if seenIngredients[line.IngredientID] {
			return &FieldError{Field: "ingredients", Message: "Duplicate ingredients are not allowed."}
		}
		seenIngredients[line.IngredientID] = true
		if line.Amount < MinIngredientAmount {
			return &FieldError{Field: "amount", Message: "Amount must be at least 1."}
		}
	}
	if len(in.TagIDs) == 0 {
		return &FieldError{Field: "tags", Message: "Tags must not be empty."}
	}
	seenTags := make(map[uint]bool, len(in.TagIDs))
	for _, id := range in.TagIDs {
		if seenTags[id] {
			return &FieldError{Field: "tags", Message: "Duplicate tags are not allowed."}
		}
		seenTags[id] = true
	}
	return nil
}

// loadTags resolves tag IDs inside the current transaction. Any missing ID
// fails the whole lookup.
func loadTags(tx *gorm.DB, ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	if err := tx.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, &NotFoundError{What: "Tag"}
	}
	return tags, nil
}

func checkIngredientsExist(tx *gorm.DB, lines []IngredientLine) error {
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.IngredientID)
	}
	var count int64
	if err := tx.Model(&models.Ingredient{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return &NotFoundError{What: "Ingredient"}
	}
	return nil
}

// CreateRecipe persists the recipe row, its tag links and its ingredient
// line items as one atomic unit.
func CreateRecipe(db *gorm.DB, authorID uint, in RecipeInput) (*models.Recipe, error) {
	if err := validateRecipeInput(in); err != nil {
		return nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	tags, err := loadTags(tx, in.TagIDs)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := checkIngredientsExist(tx, in.Ingredients); err != nil {
		tx.Rollback()
		return nil, err
	}

	recipe := models.Recipe{
		AuthorID:    authorID,
		Name:        in.Name,
		Text:        in.Text,
		Image:       in.Image,
		CookingTime: in.CookingTime,
		Tags:        tags,
	}
	if err := tx.Create(&recipe).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, line := range in.Ingredients {
		item := models.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: line.IngredientID,
			Amount:       line.Amount,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return GetRecipe(db, recipe.ID)
}

// UpdateRecipe is author-only and uses replacement semantics: the old tag
// links and line items are discarded in full and the new sets inserted,
// in the same transaction as the scalar-field updates.
func UpdateRecipe(db *gorm.DB, recipeID, requesterID uint, in RecipeInput) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := db.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{What: "Recipe"}
		}
		return nil, err
	}
	if recipe.AuthorID != requesterID {
		return nil, &ForbiddenError{Message: "Only the author can edit this recipe"}
	}
	if err := validateRecipeInput(in); err != nil {
		return nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	tags, err := loadTags(tx, in.TagIDs)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := checkIngredientsExist(tx, in.Ingredients); err != nil {
		tx.Rollback()
		return nil, err
	}

	updates := map[string]interface{}{
		"name":         in.Name,
		"text":         in.Text,
		"cooking_time": in.CookingTime,
	}
	if in.Image != "" {
		updates["image"] = in.Image
	}
	if err := tx.Model(&recipe).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&recipe).Association("Tags").Replace(tags); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, line := range in.Ingredients {
		item := models.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: line.IngredientID,
			Amount:       line.Amount,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return GetRecipe(db, recipe.ID)
}

// DeleteRecipe is author-only. Dependent rows are removed in the same
// transaction so cascading never depends on the backing store enforcing
// the FK constraints.
func DeleteRecipe(db *gorm.DB, recipeID, requesterID uint) error {
	var recipe models.Recipe
	if err := db.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{What: "Recipe"}
		}
		return err
	}
	if recipe.AuthorID != requesterID {
		return &ForbiddenError{Message: "Only the author can delete this recipe"}
	}

	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Favorite{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.ShoppingCart{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&recipe).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// GetRecipe loads a recipe with its tags and line items (ingredient
// reference data included).
func GetRecipe(db *gorm.DB, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := db.Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&recipe, recipeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{What: "Recipe"}
		}
		return nil, err
	}
	return &recipe, nil
}
