package services

import (
	"context"
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/insights"
	"github.com/harsha-legends/nutri-vision-sub000/models"
	"github.com/harsha-legends/nutri-vision-sub000/utils"

	"gorm.io/gorm"
)

// InsightService assembles the dashboard from the pure insights package. It
// only gathers snapshots and hands them over; all derivation lives in
// insights, recomputed from scratch on every call.
type InsightService struct {
	db      *gorm.DB
	meals   *MealService
	goals   *GoalService
	catalog *CatalogService
	hub     *RealtimeHub
}

func NewInsightService(db *gorm.DB, meals *MealService, goals *GoalService, catalog *CatalogService, hub *RealtimeHub) *InsightService {
	return &InsightService{db: db, meals: meals, goals: goals, catalog: catalog, hub: hub}
}

type Dashboard struct {
	Greeting     string                      `json:"greeting"`
	Quote        insights.Quote              `json:"quote"`
	Totals       insights.Nutrition          `json:"totals"`
	Progress     map[string]NutrientProgress `json:"progress"`
	Streak       int                         `json:"streak"`
	Achievements []insights.Achievement      `json:"achievements"`
	Balance      insights.MacroBalance       `json:"balance"`
	Advice       []string                    `json:"advice"`
	Suggestions  []models.FoodItem           `json:"suggestions"`
	MealsToday   int                         `json:"meals_today"`
}

// BuildDashboard computes the full insight set for the moment "now".
func (s *InsightService) BuildDashboard(ctx context.Context, userID uint, now time.Time) (*Dashboard, error) {
	goal, progress, totals, err := s.goals.Progress(userID, now)
	if err != nil {
		return nil, err
	}

	todays, err := s.meals.ListDay(userID, now)
	if err != nil {
		return nil, err
	}

	history, err := s.meals.ListAll(userID)
	if err != nil {
		return nil, err
	}
	streak := insights.CalculateStreak(history, now)

	balance := insights.Balance(totals)

	catalog, err := s.catalog.List()
	if err != nil {
		return nil, err
	}
	remainingCalories := goal.Calories - totals.Calories
	remainingProtein := goal.Protein - totals.Protein

	return &Dashboard{
		Greeting:     insights.Greeting(now.Hour()),
		Quote:        insights.QuoteOfDay(now.Day()),
		Totals:       totals,
		Progress:     progress,
		Streak:       streak,
		Achievements: insights.Evaluate(totals, *goal, streak, len(todays)),
		Balance:      balance,
		Advice:       insights.BalanceAdvice(balance),
		Suggestions:  insights.Suggest(remainingCalories, remainingProtein, catalog),
		MealsToday:   len(todays),
	}, nil
}

// Series returns the last days of day buckets ending today.
func (s *InsightService) Series(userID uint, days int, now time.Time) ([]insights.DayBucket, error) {
	history, err := s.meals.HistoryByDay(userID, days, now)
	if err != nil {
		return nil, err
	}
	return insights.HistoricalSeries(history, days, now), nil
}

// Summary returns the last days of stored DailyProgress snapshots ending
// today, zero-filled for days without one. Unlike Series this never touches
// raw meal rows.
func (s *InsightService) Summary(userID uint, days int, now time.Time) ([]insights.DaySummary, error) {
	start := insights.DayStart(now).AddDate(0, 0, -(days - 1))
	rows, err := s.goals.SnapshotsRange(userID, start, insights.DayStart(now).Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	return insights.ProgressSeries(rows, days, now), nil
}

func (s *InsightService) Streak(userID uint, now time.Time) (int, error) {
	history, err := s.meals.ListAll(userID)
	if err != nil {
		return 0, err
	}
	return insights.CalculateStreak(history, now), nil
}

// NotifyChanged refreshes the DailyProgress snapshot of each touched day,
// then recomputes the dashboard and pushes it to the user's live websocket
// sessions. Best-effort: a failed snapshot or rebuild only logs, the
// mutation itself already succeeded.
func (s *InsightService) NotifyChanged(ctx context.Context, userID uint, days ...time.Time) {
	seen := make(map[string]struct{}, len(days))
	for _, d := range days {
		key := d.Format(insights.DateKey)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, err := s.goals.SnapshotDay(userID, d); err != nil {
			utils.Sugar.Warnf("daily progress snapshot failed user=%d day=%s: %v", userID, key, err)
		}
	}

	if s.hub == nil {
		return
	}
	dash, err := s.BuildDashboard(ctx, userID, time.Now())
	if err != nil {
		utils.Sugar.Warnf("dashboard rebuild for broadcast failed user=%d: %v", userID, err)
		return
	}
	s.hub.Broadcast(userID, map[string]any{
		"kind":      "dashboard.updated",
		"dashboard": dash,
	})
}
