package services

import (
	"errors"
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/insights"
	"github.com/harsha-legends/nutri-vision-sub000/models"

	"gorm.io/gorm"
)

type GoalService struct {
	db    *gorm.DB
	meals *MealService
}

func NewGoalService(db *gorm.DB, meals *MealService) *GoalService {
	return &GoalService{db: db, meals: meals}
}

// NutrientProgress pairs consumed against goal for one nutrient; Percent is
// capped at 1 for the UI's progress rings.
type NutrientProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

func (s *GoalService) Get(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.DailyGoal{UserID: userID}, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) Upsert(userID uint, calories, protein, carbs, fats float64) error {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:   userID,
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fats:     fats,
		}
		return s.db.Create(&goal).Error
	}
	if err != nil {
		return err
	}

	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fats = fats
	return s.db.Save(&goal).Error
}

// SnapshotDay re-sums the day's entries and upserts the DailyProgress row
// the summary endpoint reads. Called after every meal mutation and whenever
// today's progress is requested.
func (s *GoalService) SnapshotDay(userID uint, day time.Time) (insights.Nutrition, error) {
	entries, err := s.meals.ListDay(userID, day)
	if err != nil {
		return insights.Nutrition{}, err
	}
	totals := insights.Sum(entries)

	start := insights.DayStart(day)
	dp := models.DailyProgress{UserID: userID, Date: start}
	// map assign so zeroed totals still overwrite a stale snapshot
	err = s.db.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(map[string]interface{}{
			"calories": totals.Calories,
			"protein":  totals.Protein,
			"carbs":    totals.Carbs,
			"fats":     totals.Fats,
			"fiber":    totals.Fiber,
			"sugar":    totals.Sugar,
		}).
		FirstOrCreate(&dp).Error
	return totals, err
}

// SnapshotsRange loads the DailyProgress rows with from <= date < to,
// oldest first.
func (s *GoalService) SnapshotsRange(userID uint, from, to time.Time) ([]models.DailyProgress, error) {
	var rows []models.DailyProgress
	err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

// Progress sums the day's entries against the user's goals, refreshing the
// day's DailyProgress snapshot on the way.
func (s *GoalService) Progress(userID uint, now time.Time) (*models.DailyGoal, map[string]NutrientProgress, insights.Nutrition, error) {
	goal, err := s.Get(userID)
	if err != nil {
		return nil, nil, insights.Nutrition{}, err
	}

	totals, err := s.SnapshotDay(userID, now)
	if err != nil {
		return goal, nil, insights.Nutrition{}, err
	}

	progress := map[string]NutrientProgress{
		"calories": {Consumed: totals.Calories, Goal: goal.Calories, Percent: pct(totals.Calories, goal.Calories)},
		"protein":  {Consumed: totals.Protein, Goal: goal.Protein, Percent: pct(totals.Protein, goal.Protein)},
		"carbs":    {Consumed: totals.Carbs, Goal: goal.Carbs, Percent: pct(totals.Carbs, goal.Carbs)},
		"fats":     {Consumed: totals.Fats, Goal: goal.Fats, Percent: pct(totals.Fats, goal.Fats)},
	}
	return goal, progress, totals, nil
}

func pct(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		return 1
	}
	return p
}
