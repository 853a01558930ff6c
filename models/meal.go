package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal types a user can log against.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealEntry is one logged instance of a food. FoodID stays stable across
// repeated logs of the same food; EntryID identifies this particular log and
// is the handle used for deletion. Name/Category/Image and the nutrition
// fields are snapshots taken from the catalog, already scaled by Quantity.
// An entry never changes after creation, updates are delete + recreate.
type MealEntry struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	EntryID string `gorm:"type:varchar(36);uniqueIndex;not null"`
	FoodID  uint   `gorm:"index"`

	Name     string
	Category string
	Image    string

	MealType string    `gorm:"size:16;not null"`
	Quantity float64   `gorm:"not null"`
	LoggedAt time.Time `gorm:"index;not null"`

	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
	Fiber    float64
	Sugar    float64
}

func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}
