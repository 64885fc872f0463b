package models

// Ingredient is immutable reference data. Identity is the (name, unit) pair:
// "sugar (g)" and "sugar (tbsp)" are distinct ingredients.
type Ingredient struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:200;not null;uniqueIndex:idx_ingredient_identity" json:"name"`
	MeasurementUnit string `gorm:"size:200;not null;uniqueIndex:idx_ingredient_identity" json:"measurement_unit"`
}
