package insights_test

import (
	"testing"
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/insights"
	"github.com/harsha-legends/nutri-vision-sub000/models"
)

func TestHistoricalSeriesAlwaysReturnsRequestedLength(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
	history := map[string][]models.MealEntry{
		"2026-03-15": {entry(now, 500, 30, 50, 15, 3, 8)},
		// one sparse mid-week day only
		"2026-03-12": {entry(now.AddDate(0, 0, -3), 700, 40, 70, 20, 5, 10)},
	}

	series := insights.HistoricalSeries(history, 7, now)
	if len(series) != 7 {
		t.Fatalf("series length = %d, want 7", len(series))
	}
	if series[len(series)-1].Date != "2026-03-15" {
		t.Fatalf("last bucket date = %s, want today", series[len(series)-1].Date)
	}
	if series[0].Date != "2026-03-09" {
		t.Fatalf("first bucket date = %s, want 2026-03-09", series[0].Date)
	}
}

func TestHistoricalSeriesZeroFillsMissingDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	series := insights.HistoricalSeries(map[string][]models.MealEntry{}, 3, now)

	for _, b := range series {
		if b.Nutrition != (insights.Nutrition{}) {
			t.Fatalf("empty day %s has non-zero totals: %+v", b.Date, b.Nutrition)
		}
		if b.Meals == nil || len(b.Meals) != 0 {
			t.Fatalf("empty day %s should carry an empty meal list, got %v", b.Date, b.Meals)
		}
	}
}

func TestHistoricalSeriesOrderedOldestToNewest(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	series := insights.HistoricalSeries(nil, 5, now)

	for i := 1; i < len(series); i++ {
		if series[i-1].Date >= series[i].Date {
			t.Fatalf("series out of order at %d: %s then %s", i, series[i-1].Date, series[i].Date)
		}
	}
}

func TestHistoricalSeriesSumsPerDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	history := map[string][]models.MealEntry{
		"2026-03-14": {
			entry(now.AddDate(0, 0, -1), 300, 20, 30, 10, 2, 5),
			entry(now.AddDate(0, 0, -1), 200, 10, 20, 5, 1, 3),
		},
	}

	series := insights.HistoricalSeries(history, 2, now)
	yesterday := series[0]
	if yesterday.Date != "2026-03-14" {
		t.Fatalf("bucket date = %s, want 2026-03-14", yesterday.Date)
	}
	if yesterday.Calories != 500 || yesterday.Protein != 30 {
		t.Fatalf("bucket totals = %+v", yesterday.Nutrition)
	}
	if len(yesterday.Meals) != 2 {
		t.Fatalf("bucket meals = %d, want 2", len(yesterday.Meals))
	}
}

func TestHistoricalSeriesNonPositiveDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	if got := insights.HistoricalSeries(nil, 0, now); got != nil {
		t.Fatalf("days=0 should yield nil, got %v", got)
	}
}
