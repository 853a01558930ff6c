package insights_test

import (
	"math"
	"testing"
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/insights"
	"github.com/harsha-legends/nutri-vision-sub000/models"
)

func entry(loggedAt time.Time, calories, protein, carbs, fats, fiber, sugar float64) models.MealEntry {
	return models.MealEntry{
		LoggedAt: loggedAt,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fats:     fats,
		Fiber:    fiber,
		Sugar:    sugar,
	}
}

func TestSumAddsEveryField(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	entries := []models.MealEntry{
		entry(now, 300, 20, 30, 10, 2, 5),
		entry(now, 200, 10, 20, 5, 1, 3),
	}

	got := insights.Sum(entries)
	want := insights.Nutrition{Calories: 500, Protein: 30, Carbs: 50, Fats: 15, Fiber: 3, Sugar: 8}
	if got != want {
		t.Fatalf("Sum = %+v, want %+v", got, want)
	}
}

func TestSumEmptyIsZeroVector(t *testing.T) {
	t.Parallel()

	if got := insights.Sum(nil); got != (insights.Nutrition{}) {
		t.Fatalf("Sum(nil) = %+v, want zero vector", got)
	}
	if got := insights.Sum([]models.MealEntry{}); got != (insights.Nutrition{}) {
		t.Fatalf("Sum(empty) = %+v, want zero vector", got)
	}
}

func TestSumIgnoresNaNFields(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	entries := []models.MealEntry{
		entry(now, 250, math.NaN(), 25, math.Inf(1), 0, 0),
		entry(now, 100, 8, 10, 4, 1, 1),
	}

	got := insights.Sum(entries)
	if got.Calories != 350 || got.Protein != 8 || got.Fats != 4 {
		t.Fatalf("corrupted fields leaked into sum: %+v", got)
	}
	if math.IsNaN(got.Protein) || math.IsInf(got.Fats, 0) {
		t.Fatalf("sum produced NaN/Inf: %+v", got)
	}
}

func TestSumIsIdempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	entries := []models.MealEntry{entry(now, 400, 25, 40, 12, 3, 6)}

	first := insights.Sum(entries)
	second := insights.Sum(entries)
	if first != second {
		t.Fatalf("repeated Sum differed: %+v vs %+v", first, second)
	}
}
