package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyProgress is the per-day totals snapshot, upserted whenever a day's
// meal log changes or its progress is read. The insights summary endpoint
// range-queries this table instead of re-summing raw entries.
type DailyProgress struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`

	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
	Fiber    float64
	Sugar    float64
}
