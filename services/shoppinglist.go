package services

import (
	"fmt"
	"strings"

	"github.com/Vladimir-Samoilov/TastyHub/models"
	"gorm.io/gorm"
)

// ShoppingListItem is one aggregated group of the shopping list: an
// ingredient identity with the summed amount across every recipe in the
// user's cart.
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	TotalAmount     int    `json:"total_amount"`
}

// BuildShoppingList collects every line item across the recipes in the
// user's cart, groups them by the ingredient's identity (name, unit) and
// sums the amounts. Ordering is ascending by name, then unit, so repeated
// calls over the same data come back in the same order.
func BuildShoppingList(db *gorm.DB, userID uint) ([]ShoppingListItem, error) {
	var items []ShoppingListItem
	err := db.Model(&models.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total_amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name, ingredients.measurement_unit").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []ShoppingListItem{}
	}
	return items, nil
}

// RenderShoppingList formats the aggregated list as plain text, one line
// per group. Output is byte-identical for identical input.
func RenderShoppingList(items []ShoppingListItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s (%s) — %d", item.Name, item.MeasurementUnit, item.TotalAmount))
	}
	return strings.Join(lines, "\n")
}
