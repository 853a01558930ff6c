package insights_test

import (
	"testing"

	"github.com/harsha-legends/nutri-vision-sub000/insights"
	"github.com/harsha-legends/nutri-vision-sub000/models"
	"gorm.io/gorm"
)

func food(id uint, name string, calories, protein float64) models.FoodItem {
	return models.FoodItem{
		Model:    gorm.Model{ID: id},
		Name:     name,
		Calories: calories,
		Protein:  protein,
	}
}

func TestSuggestEmptyOnSpentBudget(t *testing.T) {
	t.Parallel()

	catalog := []models.FoodItem{food(1, "Oats", 300, 10)}
	if got := insights.Suggest(0, 30, catalog); len(got) != 0 {
		t.Fatalf("spent budget should yield no suggestions, got %v", got)
	}
	if got := insights.Suggest(-200, 30, catalog); len(got) != 0 {
		t.Fatalf("negative budget should yield no suggestions, got %v", got)
	}
	if got := insights.Suggest(500, 30, nil); len(got) != 0 {
		t.Fatalf("empty catalog should yield no suggestions, got %v", got)
	}
}

func TestSuggestProteinFirstThenProximity(t *testing.T) {
	t.Parallel()

	catalog := []models.FoodItem{
		food(1, "Chicken Bowl", 380, 30),
		food(2, "Pasta Plate", 420, 5),
		food(3, "Rice Cake", 50, 1), // outside [200, 500]
	}

	got := insights.Suggest(400, 25, catalog)
	if len(got) != 2 {
		t.Fatalf("suggestions = %d, want 2 (rice cake excluded)", len(got))
	}
	if got[0].Name != "Chicken Bowl" {
		t.Fatalf("high-protein item should lead, got %s", got[0].Name)
	}
	if got[1].Name != "Pasta Plate" {
		t.Fatalf("proximity fill should follow, got %s", got[1].Name)
	}
}

func TestSuggestCalorieWindowFloor(t *testing.T) {
	t.Parallel()

	// remaining 150 → window [100, 250], not [−50, 250]
	catalog := []models.FoodItem{
		food(1, "Apple", 80, 0),
		food(2, "Yogurt", 120, 10),
	}
	got := insights.Suggest(150, 0, catalog)
	if len(got) != 1 || got[0].Name != "Yogurt" {
		t.Fatalf("floor at 100 kcal not applied: %v", got)
	}
}

func TestSuggestSkipsProteinPhaseWhenProteinCovered(t *testing.T) {
	t.Parallel()

	catalog := []models.FoodItem{
		food(1, "Steak", 450, 40),
		food(2, "Soup", 390, 6),
	}
	// protein already covered → pure proximity ordering
	got := insights.Suggest(400, 5, catalog)
	if len(got) != 2 || got[0].Name != "Soup" {
		t.Fatalf("expected proximity-first ordering, got %v", got)
	}
}

func TestSuggestCapsAtThreeWithoutDuplicates(t *testing.T) {
	t.Parallel()

	catalog := []models.FoodItem{
		food(1, "Salmon", 410, 35),
		food(2, "Tofu Stir-fry", 380, 25),
		food(3, "Protein Shake", 350, 20),
		food(4, "Turkey Wrap", 420, 18),
		food(5, "Granola", 390, 8),
	}

	got := insights.Suggest(400, 40, catalog)
	if len(got) != 3 {
		t.Fatalf("suggestions = %d, want 3", len(got))
	}
	if got[0].Name != "Salmon" || got[1].Name != "Tofu Stir-fry" || got[2].Name != "Protein Shake" {
		t.Fatalf("protein ordering wrong: %v", []string{got[0].Name, got[1].Name, got[2].Name})
	}
	seen := map[uint]bool{}
	for _, f := range got {
		if seen[f.ID] {
			t.Fatalf("duplicate suggestion %s", f.Name)
		}
		seen[f.ID] = true
	}
}
