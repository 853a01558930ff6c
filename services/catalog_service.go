package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/models"
	"github.com/harsha-legends/nutri-vision-sub000/utils"

	"gorm.io/gorm"
)

const catalogCacheTTL = time.Hour

// CatalogService owns the food catalog: local CRUD plus imports from
// Open Food Facts (by barcode or search) and photo recognition.
type CatalogService struct {
	db  *gorm.DB
	off *OpenFoodFactsService
	rek *RekognitionService
}

func NewCatalogService(db *gorm.DB, off *OpenFoodFactsService, rek *RekognitionService) *CatalogService {
	return &CatalogService{db: db, off: off, rek: rek}
}

func (s *CatalogService) List() ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := s.db.Order("name ASC").Find(&items).Error
	return items, err
}

func (s *CatalogService) Get(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CatalogService) Create(item *models.FoodItem) error {
	if item.Name == "" {
		return fmt.Errorf("food name is required")
	}
	if item.Source == "" {
		item.Source = "manual"
	}
	return s.db.Create(item).Error
}

// Search looks in the local catalog first and falls through to Open Food
// Facts, persisting remote hits so repeat searches stay local.
func (s *CatalogService) Search(ctx context.Context, query string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.db.
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Limit(20).
		Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}

	remote, err := s.off.Search(ctx, query, 10)
	if err != nil {
		return nil, err
	}
	for i := range remote {
		if err := s.upsertByBarcode(&remote[i]); err != nil {
			utils.Sugar.Warnf("catalog upsert failed for %q: %v", remote[i].Name, err)
		}
	}
	return remote, nil
}

// LookupBarcode resolves a barcode to a catalog item: local catalog, then the
// Redis cache, then Open Food Facts.
func (s *CatalogService) LookupBarcode(ctx context.Context, barcode string) (*models.FoodItem, error) {
	var item models.FoodItem
	err := s.db.Where("barcode = ?", barcode).First(&item).Error
	if err == nil {
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cacheKey := "off:barcode:" + barcode
	var cached models.FoodItem
	if utils.CacheGetJSON(cacheKey, &cached) {
		if err := s.upsertByBarcode(&cached); err != nil {
			return nil, err
		}
		return &cached, nil
	}

	remote, err := s.off.LookupBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if err := s.upsertByBarcode(remote); err != nil {
		return nil, err
	}
	utils.CacheSetJSON(cacheKey, remote, catalogCacheTTL)
	return remote, nil
}

// RecognizePhoto turns a plate photo into catalog candidates: Rekognition
// labels feed an Open Food Facts search on the best label.
func (s *CatalogService) RecognizePhoto(ctx context.Context, dataURI string) ([]models.FoodItem, error) {
	if s.rek == nil {
		return nil, fmt.Errorf("photo recognition not configured")
	}
	labels, err := s.rek.RecognizeLabels(ctx, dataURI)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no food detected in photo")
	}
	return s.Search(ctx, labels[0])
}

func (s *CatalogService) upsertByBarcode(item *models.FoodItem) error {
	if item.Barcode == "" {
		return s.db.Create(item).Error
	}
	var existing models.FoodItem
	err := s.db.Where("barcode = ?", item.Barcode).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(item).Error
	}
	if err != nil {
		return err
	}
	item.ID = existing.ID
	return s.db.Model(&existing).Updates(item).Error
}

// SeedDefaults installs a small starter catalog on an empty database so the
// suggestion engine has something to rank before any imports happen.
func (s *CatalogService) SeedDefaults() error {
	var count int64
	if err := s.db.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	defaults := []models.FoodItem{
		{Name: "Grilled Chicken Breast", Category: "Protein", Source: "manual", Calories: 280, Protein: 35, Carbs: 0, Fats: 6},
		{Name: "Salmon Fillet", Category: "Protein", Source: "manual", Calories: 360, Protein: 34, Carbs: 0, Fats: 22},
		{Name: "Greek Yogurt", Category: "Dairy", Source: "manual", Calories: 150, Protein: 17, Carbs: 8, Fats: 4, Sugar: 6},
		{Name: "Oatmeal Bowl", Category: "Grains", Source: "manual", Calories: 300, Protein: 10, Carbs: 54, Fats: 5, Fiber: 8, Sugar: 1},
		{Name: "Quinoa Salad", Category: "Grains", Source: "manual", Calories: 340, Protein: 12, Carbs: 48, Fats: 10, Fiber: 6},
		{Name: "Protein Shake", Category: "Drinks", Source: "manual", Calories: 220, Protein: 30, Carbs: 12, Fats: 4, Sugar: 4},
		{Name: "Apple", Category: "Fruit", Source: "manual", Calories: 95, Protein: 0.5, Carbs: 25, Fats: 0.3, Fiber: 4, Sugar: 19},
		{Name: "Mixed Nuts", Category: "Snacks", Source: "manual", Calories: 170, Protein: 6, Carbs: 6, Fats: 15, Fiber: 3, Sugar: 1},
		{Name: "Turkey Wrap", Category: "Lunch", Source: "manual", Calories: 420, Protein: 28, Carbs: 40, Fats: 14, Fiber: 4, Sugar: 5},
		{Name: "Veggie Stir-fry", Category: "Dinner", Source: "manual", Calories: 380, Protein: 14, Carbs: 45, Fats: 16, Fiber: 7, Sugar: 9},
	}
	return s.db.Create(&defaults).Error
}
