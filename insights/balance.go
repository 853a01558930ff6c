package insights

import "math"

// kcal per gram of each macro.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFats    = 9
)

// Ideal macro split and the drift (in percentage points) before advice fires.
const (
	idealProteinPct = 30
	idealCarbsPct   = 40
	idealFatsPct    = 30
	adviceDriftPct  = 5
)

// MacroBalance is the share of calories contributed by each macro, rounded
// to the nearest whole percent.
type MacroBalance struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// Balance converts gram totals into calorie-share percentages. With zero
// calories every share is zero, never NaN.
func Balance(totals Nutrition) MacroBalance {
	if totals.Calories <= 0 {
		return MacroBalance{}
	}
	return MacroBalance{
		Protein: int(math.Round(totals.Protein * kcalPerGramProtein / totals.Calories * 100)),
		Carbs:   int(math.Round(totals.Carbs * kcalPerGramCarbs / totals.Calories * 100)),
		Fats:    int(math.Round(totals.Fats * kcalPerGramFats / totals.Calories * 100)),
	}
}

// BalanceAdvice returns textual nudges for each macro drifting at least
// adviceDriftPct points from the ideal split. The checks are independent;
// any subset may fire, and a balanced day yields none.
func BalanceAdvice(b MacroBalance) []string {
	advice := []string{}
	if b.Protein <= idealProteinPct-adviceDriftPct {
		advice = append(advice, "Add more protein to your meals: lean meat, fish, eggs or legumes.")
	}
	if b.Carbs >= idealCarbsPct+adviceDriftPct {
		advice = append(advice, "Carbs are running high today, try swapping refined carbs for vegetables.")
	}
	if b.Fats <= idealFatsPct-adviceDriftPct {
		advice = append(advice, "Room for healthy fats: nuts, avocado or olive oil round out the day.")
	}
	return advice
}
