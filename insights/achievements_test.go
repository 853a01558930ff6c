package insights_test

import (
	"testing"

	"github.com/harsha-legends/nutri-vision-sub000/insights"
	"github.com/harsha-legends/nutri-vision-sub000/models"
)

func ids(achievements []insights.Achievement) map[string]bool {
	out := make(map[string]bool, len(achievements))
	for _, a := range achievements {
		out[a.ID] = true
	}
	return out
}

func TestEvaluateTypicalGoodDay(t *testing.T) {
	t.Parallel()

	totals := insights.Nutrition{Calories: 2000, Protein: 55, Carbs: 220, Fats: 60}
	goals := models.DailyGoal{Calories: 2000, Protein: 50, Carbs: 250, Fats: 70}

	got := ids(insights.Evaluate(totals, goals, 10, 6))
	for _, want := range []string{"calorie-champion", "protein-power", "week-warrior", "consistent-logger"} {
		if !got[want] {
			t.Fatalf("missing %s in %v", want, got)
		}
	}
	if got["monthly-master"] {
		t.Fatalf("monthly-master should not fire at streak 10")
	}
}

func TestEvaluateStreakBadgesStack(t *testing.T) {
	t.Parallel()

	got := ids(insights.Evaluate(insights.Nutrition{}, models.DailyGoal{}, 30, 0))
	if !got["week-warrior"] || !got["monthly-master"] {
		t.Fatalf("streak 30 should earn both streak badges, got %v", got)
	}
}

func TestEvaluateBalanceMaster(t *testing.T) {
	t.Parallel()

	// 2000 kcal: 150g protein (30%), 225g carbs (45%), 55.6g fats (25%)
	totals := insights.Nutrition{Calories: 2000, Protein: 150, Carbs: 225, Fats: 55.6}
	got := ids(insights.Evaluate(totals, models.DailyGoal{}, 0, 0))
	if !got["balance-master"] {
		t.Fatalf("ideal split should earn balance-master, got %v", got)
	}

	// skewed: nearly all carbs
	skewed := insights.Nutrition{Calories: 2000, Protein: 20, Carbs: 450, Fats: 10}
	if ids(insights.Evaluate(skewed, models.DailyGoal{}, 0, 0))["balance-master"] {
		t.Fatalf("skewed split must not earn balance-master")
	}
}

func TestEvaluateBalanceMasterSkippedAtZeroCalories(t *testing.T) {
	t.Parallel()

	got := insights.Evaluate(insights.Nutrition{}, models.DailyGoal{}, 0, 0)
	if len(got) != 0 {
		t.Fatalf("zero day should earn nothing, got %v", got)
	}
}

func TestEvaluateCrossingCalorieGoalOnlyAddsBadge(t *testing.T) {
	t.Parallel()

	goals := models.DailyGoal{Calories: 2000, Protein: 150}
	under := insights.Nutrition{Calories: 1900, Protein: 160, Carbs: 100, Fats: 40}
	over := insights.Nutrition{Calories: 2100, Protein: 160, Carbs: 100, Fats: 40}

	before := ids(insights.Evaluate(under, goals, 8, 3))
	after := ids(insights.Evaluate(over, goals, 8, 3))

	if before["calorie-champion"] {
		t.Fatalf("under goal should not earn calorie-champion")
	}
	if !after["calorie-champion"] {
		t.Fatalf("over goal should earn calorie-champion")
	}
	// unrelated badges survive the crossing
	for _, id := range []string{"protein-power", "week-warrior"} {
		if before[id] != after[id] {
			t.Fatalf("unrelated badge %s changed: %v -> %v", id, before[id], after[id])
		}
	}
}

func TestEvaluateOutputOrderIsFixed(t *testing.T) {
	t.Parallel()

	totals := insights.Nutrition{Calories: 2500, Protein: 200, Carbs: 200, Fats: 70}
	goals := models.DailyGoal{Calories: 2000, Protein: 150}
	got := insights.Evaluate(totals, goals, 31, 6)

	var prev int = -1
	order := map[string]int{
		"calorie-champion": 0, "protein-power": 1, "week-warrior": 2,
		"monthly-master": 3, "balance-master": 4, "consistent-logger": 5,
	}
	for _, a := range got {
		pos, ok := order[a.ID]
		if !ok {
			t.Fatalf("unknown badge %s", a.ID)
		}
		if pos <= prev {
			t.Fatalf("badge %s out of order", a.ID)
		}
		prev = pos
	}
}
