package insights

import "github.com/harsha-legends/nutri-vision-sub000/models"

// Achievement is a derived badge. There is no earned-state persistence: every
// evaluation recomputes the full set from current inputs, so a badge can
// appear and disappear within the same day as totals change. That is the
// contract, not a bug. Sticky badges belong to a caller that wants them.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// Streak thresholds and the meals-per-day bar for the logging badges.
const (
	weekStreakDays    = 7
	monthStreakDays   = 30
	consistentLogBar  = 5
	balanceProteinMin = 25
	balanceProteinMax = 35
	balanceCarbsMin   = 40
	balanceCarbsMax   = 50
	balanceFatsMin    = 20
	balanceFatsMax    = 30
)

// Evaluate runs the fixed badge checks in order. Checks are independent, not
// mutually exclusive: once the streak passes 30 days both Week Warrior and
// Monthly Master fire together.
func Evaluate(totals Nutrition, goals models.DailyGoal, streak, mealsToday int) []Achievement {
	earned := []Achievement{}

	if goals.Calories > 0 && totals.Calories >= goals.Calories {
		earned = append(earned, Achievement{
			ID:          "calorie-champion",
			Title:       "Calorie Champion",
			Description: "Hit your daily calorie goal",
			Icon:        "local_fire_department",
			Color:       "#ff7043",
		})
	}
	if goals.Protein > 0 && totals.Protein >= goals.Protein {
		earned = append(earned, Achievement{
			ID:          "protein-power",
			Title:       "Protein Power",
			Description: "Reached your protein target",
			Icon:        "fitness_center",
			Color:       "#5c6bc0",
		})
	}
	if streak >= weekStreakDays {
		earned = append(earned, Achievement{
			ID:          "week-warrior",
			Title:       "Week Warrior",
			Description: "Logged meals 7 days in a row",
			Icon:        "calendar_month",
			Color:       "#26a69a",
		})
	}
	if streak >= monthStreakDays {
		earned = append(earned, Achievement{
			ID:          "monthly-master",
			Title:       "Monthly Master",
			Description: "A full month of daily logging",
			Icon:        "military_tech",
			Color:       "#ffca28",
		})
	}
	// Balance Master needs calories on the board; with zero calories the
	// percentages are all zero and the bands cannot be satisfied anyway.
	if totals.Calories > 0 {
		b := Balance(totals)
		if b.Protein >= balanceProteinMin && b.Protein <= balanceProteinMax &&
			b.Carbs >= balanceCarbsMin && b.Carbs <= balanceCarbsMax &&
			b.Fats >= balanceFatsMin && b.Fats <= balanceFatsMax {
			earned = append(earned, Achievement{
				ID:          "balance-master",
				Title:       "Balance Master",
				Description: "Macros landed inside the ideal split",
				Icon:        "balance",
				Color:       "#66bb6a",
			})
		}
	}
	if mealsToday >= consistentLogBar {
		earned = append(earned, Achievement{
			ID:          "consistent-logger",
			Title:       "Consistent Logger",
			Description: "Logged 5 or more meals today",
			Icon:        "edit_note",
			Color:       "#8d6e63",
		})
	}

	return earned
}
