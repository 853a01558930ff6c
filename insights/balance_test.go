package insights_test

import (
	"testing"

	"github.com/harsha-legends/nutri-vision-sub000/insights"
)

func TestBalanceZeroCaloriesYieldsZeroShares(t *testing.T) {
	t.Parallel()

	got := insights.Balance(insights.Nutrition{Protein: 50, Carbs: 100, Fats: 30})
	if got != (insights.MacroBalance{}) {
		t.Fatalf("zero-calorie balance = %+v, want all zero", got)
	}
}

func TestBalanceUsesMacroCalorieFactors(t *testing.T) {
	t.Parallel()

	// 100g protein (400 kcal), 100g carbs (400 kcal), 22.2g fats (~200 kcal)
	totals := insights.Nutrition{Calories: 1000, Protein: 100, Carbs: 100, Fats: 22.2}
	got := insights.Balance(totals)
	if got.Protein != 40 || got.Carbs != 40 || got.Fats != 20 {
		t.Fatalf("balance = %+v, want 40/40/20", got)
	}
}

func TestBalanceAdviceFiresPerMacro(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		balance insights.MacroBalance
		want    int
	}{
		{"on target", insights.MacroBalance{Protein: 30, Carbs: 40, Fats: 30}, 0},
		{"low protein", insights.MacroBalance{Protein: 20, Carbs: 42, Fats: 28}, 1},
		{"high carbs low fats", insights.MacroBalance{Protein: 28, Carbs: 55, Fats: 17}, 2},
		{"everything off", insights.MacroBalance{Protein: 10, Carbs: 70, Fats: 20}, 3},
		{"just inside the drift", insights.MacroBalance{Protein: 26, Carbs: 44, Fats: 26}, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := insights.BalanceAdvice(tc.balance)
			if len(got) != tc.want {
				t.Fatalf("advice count = %d (%v), want %d", len(got), got, tc.want)
			}
		})
	}
}
