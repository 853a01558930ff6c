// Package insights is the pure computation layer behind the dashboard:
// daily totals, the history series, the logging streak, achievements, macro
// balance and food suggestions. Every function here is a plain fold over the
// snapshot it is handed: no clock reads (callers pass "now"), no storage,
// no retained references. Malformed numbers degrade to zero instead of
// propagating NaN, so these functions never fail.
package insights

import (
	"math"

	"github.com/harsha-legends/nutri-vision-sub000/models"
)

// Nutrition is the six-field vector every aggregate in this package speaks.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

// Sum reduces a set of meal entries into day totals. An empty slice yields
// the zero vector, never an error, so callers need no "no meals" special case.
func Sum(entries []models.MealEntry) Nutrition {
	var n Nutrition
	for _, e := range entries {
		n.Calories += nz(e.Calories)
		n.Protein += nz(e.Protein)
		n.Carbs += nz(e.Carbs)
		n.Fats += nz(e.Fats)
		n.Fiber += nz(e.Fiber)
		n.Sugar += nz(e.Sugar)
	}
	return n
}

// nz treats NaN/Inf as zero so one corrupted record cannot poison a sum.
func nz(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
