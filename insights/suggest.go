package insights

import (
	"math"
	"sort"

	"github.com/harsha-legends/nutri-vision-sub000/models"
)

// Suggestion tuning: the calorie window around the remaining budget, its
// floor, the protein bar that triggers protein-first picking, and the
// maximum list length.
const (
	suggestWindowBelow  = 200
	suggestWindowAbove  = 100
	suggestCalorieFloor = 100
	proteinGapTrigger   = 20
	highProteinBar      = 15
	maxSuggestions      = 3
)

// Suggest picks up to three catalog foods that fit what is left of the day's
// budget. Selection is greedy and two-phase: when the user is still short on
// protein, high-protein items come first (most protein leading), then the
// list is filled with the closest calorie matches. A tight budget or a thin
// catalog simply yields a shorter list.
func Suggest(remainingCalories, remainingProtein float64, catalog []models.FoodItem) []models.FoodItem {
	if remainingCalories <= 0 || len(catalog) == 0 {
		return []models.FoodItem{}
	}

	low := math.Max(remainingCalories-suggestWindowBelow, suggestCalorieFloor)
	high := remainingCalories + suggestWindowAbove

	fits := make([]models.FoodItem, 0, len(catalog))
	for _, f := range catalog {
		if f.Calories >= low && f.Calories <= high {
			fits = append(fits, f)
		}
	}
	if len(fits) == 0 {
		return []models.FoodItem{}
	}

	picked := make([]models.FoodItem, 0, maxSuggestions)
	chosen := make(map[uint]struct{}, maxSuggestions)

	if remainingProtein > proteinGapTrigger {
		protein := make([]models.FoodItem, 0, len(fits))
		for _, f := range fits {
			if f.Protein >= highProteinBar {
				protein = append(protein, f)
			}
		}
		sort.SliceStable(protein, func(i, j int) bool {
			return protein[i].Protein > protein[j].Protein
		})
		for _, f := range protein {
			if len(picked) == maxSuggestions {
				break
			}
			if _, dup := chosen[f.ID]; dup {
				continue
			}
			picked = append(picked, f)
			chosen[f.ID] = struct{}{}
		}
	}

	if len(picked) < maxSuggestions {
		rest := make([]models.FoodItem, 0, len(fits))
		for _, f := range fits {
			if _, dup := chosen[f.ID]; !dup {
				rest = append(rest, f)
			}
		}
		sort.SliceStable(rest, func(i, j int) bool {
			return math.Abs(rest[i].Calories-remainingCalories) < math.Abs(rest[j].Calories-remainingCalories)
		})
		for _, f := range rest {
			if len(picked) == maxSuggestions {
				break
			}
			picked = append(picked, f)
			chosen[f.ID] = struct{}{}
		}
	}

	return picked
}
