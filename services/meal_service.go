package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/insights"
	"github.com/harsha-legends/nutri-vision-sub000/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type LogMealRequest struct {
	FoodID   uint      `json:"food_id" binding:"required"`
	MealType string    `json:"meal_type" binding:"required"`
	Quantity float64   `json:"quantity"`
	LoggedAt time.Time `json:"logged_at"`
	Image    string    `json:"image"` // optional photo URL overriding the catalog image
}

// LogMeal snapshots the catalog food into a new immutable entry. Nutrition is
// copied scaled by quantity so later catalog edits never rewrite history.
func (s *MealService) LogMeal(userID uint, req LogMealRequest) (*models.MealEntry, error) {
	return s.logMeal(s.db, userID, req)
}

func (s *MealService) logMeal(tx *gorm.DB, userID uint, req LogMealRequest) (*models.MealEntry, error) {
	if !models.ValidMealType(req.MealType) {
		return nil, fmt.Errorf("invalid meal type %q", req.MealType)
	}
	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}
	loggedAt := req.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}

	var food models.FoodItem
	if err := tx.First(&food, req.FoodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("food %d not in catalog", req.FoodID)
		}
		return nil, err
	}

	image := food.Image
	if req.Image != "" {
		image = req.Image
	}

	entry := &models.MealEntry{
		UserID:   userID,
		EntryID:  uuid.NewString(),
		FoodID:   food.ID,
		Name:     food.Name,
		Category: food.Category,
		Image:    image,
		MealType: req.MealType,
		Quantity: qty,
		LoggedAt: loggedAt,
		Calories: food.Calories * qty,
		Protein:  food.Protein * qty,
		Carbs:    food.Carbs * qty,
		Fats:     food.Fats * qty,
		Fiber:    food.Fiber * qty,
		Sugar:    food.Sugar * qty,
	}
	if err := tx.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// GetEntry loads one entry by its public entry id.
func (s *MealService) GetEntry(userID uint, entryID string) (*models.MealEntry, error) {
	var entry models.MealEntry
	if err := s.db.
		Where("entry_id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry replaces a logged entry. Entries are immutable, so this is a
// delete followed by a fresh log with a new entry id and snapshot, run in
// one transaction so a failed recreate leaves the original in place.
func (s *MealService) UpdateEntry(userID uint, entryID string, req LogMealRequest) (*models.MealEntry, error) {
	var created *models.MealEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var old models.MealEntry
		if err := tx.
			Where("entry_id = ? AND user_id = ?", entryID, userID).
			First(&old).Error; err != nil {
			return err
		}
		if req.LoggedAt.IsZero() {
			req.LoggedAt = old.LoggedAt
		}
		if err := tx.Delete(&old).Error; err != nil {
			return err
		}
		entry, err := s.logMeal(tx, userID, req)
		if err != nil {
			return err
		}
		created = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteEntry removes an entry and returns the removed record so callers can
// refresh the snapshot of the day it belonged to.
func (s *MealService) DeleteEntry(userID uint, entryID string) (*models.MealEntry, error) {
	var entry models.MealEntry
	if err := s.db.
		Where("entry_id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	if err := s.db.Delete(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *MealService) ListByDateRange(userID uint, from, to time.Time) ([]models.MealEntry, error) {
	var entries []models.MealEntry
	err := s.db.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, from, to).
		Order("logged_at ASC").
		Find(&entries).Error
	return entries, err
}

// ListDay returns the entries logged on the calendar day of t.
func (s *MealService) ListDay(userID uint, t time.Time) ([]models.MealEntry, error) {
	start := insights.DayStart(t)
	return s.ListByDateRange(userID, start, start.Add(24*time.Hour))
}

// HistoryByDay loads the last days of entries grouped under the date key the
// insights package expects.
func (s *MealService) HistoryByDay(userID uint, days int, now time.Time) (map[string][]models.MealEntry, error) {
	if days <= 0 {
		return map[string][]models.MealEntry{}, nil
	}
	start := insights.DayStart(now).AddDate(0, 0, -(days - 1))
	entries, err := s.ListByDateRange(userID, start, insights.DayStart(now).Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	history := make(map[string][]models.MealEntry, days)
	for _, e := range entries {
		key := e.LoggedAt.Format(insights.DateKey)
		history[key] = append(history[key], e)
	}
	return history, nil
}

// ListAll returns the user's full meal history, oldest first. The streak walk
// runs over this.
func (s *MealService) ListAll(userID uint) ([]models.MealEntry, error) {
	var entries []models.MealEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("logged_at ASC").
		Find(&entries).Error
	return entries, err
}
