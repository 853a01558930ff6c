package models

import "gorm.io/gorm"

// FoodItem is one catalog entry. Nutrition values are per single serving;
// meal entries copy them scaled by quantity at log time, so edits to the
// catalog never rewrite history.
type FoodItem struct {
	gorm.Model
	Name     string `gorm:"not null;index"`
	Category string
	Image    string
	Barcode  string `gorm:"index"`
	Source   string `gorm:"size:32"` // "manual" | "openfoodfacts"

	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
	Fiber    float64
	Sugar    float64
}
