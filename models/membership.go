package models

import "time"

// Favorite and ShoppingCart are pure membership markers: one row per
// (user, recipe) pair, no payload. The composite unique indexes make
// duplicate adds fail at the storage layer instead of racing a
// check-then-insert.

type Favorite struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_favorite_pair" json:"user_id"`
	RecipeID uint `gorm:"not null;uniqueIndex:idx_favorite_pair" json:"recipe_id"`

	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe    Recipe    `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"-"`
}

type ShoppingCart struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_shopping_cart_pair" json:"user_id"`
	RecipeID uint `gorm:"not null;uniqueIndex:idx_shopping_cart_pair" json:"recipe_id"`

	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe    Recipe    `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"-"`
}
