package insights_test

import (
	"testing"
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/insights"
	"github.com/harsha-legends/nutri-vision-sub000/models"
)

func entriesOnDays(now time.Time, dayOffsets ...int) []models.MealEntry {
	out := make([]models.MealEntry, 0, len(dayOffsets))
	for _, off := range dayOffsets {
		out = append(out, entry(now.AddDate(0, 0, off), 300, 20, 30, 10, 1, 2))
	}
	return out
}

func TestCalculateStreakEmptyHistory(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC)
	if got := insights.CalculateStreak(nil, now); got != 0 {
		t.Fatalf("streak = %d, want 0", got)
	}
}

func TestCalculateStreakBreaksWhenTodayEmpty(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC)
	// yesterday and the day before, nothing today
	history := entriesOnDays(now, -1, -2)
	if got := insights.CalculateStreak(history, now); got != 0 {
		t.Fatalf("streak = %d, want 0 when today has no entry", got)
	}
}

func TestCalculateStreakCountsConsecutiveDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC)
	// today plus 3 prior days, then a gap, then an older island
	history := entriesOnDays(now, 0, -1, -2, -3, -5, -6)
	if got := insights.CalculateStreak(history, now); got != 4 {
		t.Fatalf("streak = %d, want 4", got)
	}
}

func TestCalculateStreakIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC)
	history := []models.MealEntry{
		entry(time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC), 200, 10, 20, 5, 1, 1),
		entry(time.Date(2026, 3, 14, 0, 1, 0, 0, time.UTC), 200, 10, 20, 5, 1, 1),
	}
	if got := insights.CalculateStreak(history, now); got != 2 {
		t.Fatalf("streak = %d, want 2", got)
	}
}

func TestCalculateStreakMultipleEntriesPerDayCountOnce(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC)
	history := entriesOnDays(now, 0, 0, 0, -1)
	if got := insights.CalculateStreak(history, now); got != 2 {
		t.Fatalf("streak = %d, want 2", got)
	}
}
