package config

import (
	"fmt"
	"os"

	"github.com/harsha-legends/nutri-vision-sub000/models"
	"github.com/harsha-legends/nutri-vision-sub000/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// LoadEnv reads .env when present; a missing file is fine in deployments
// where the environment is set externally.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && utils.Sugar != nil {
		utils.Sugar.Debugf(".env not loaded: %v", err)
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		utils.Sugar.Fatalf("failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.MealEntry{},
		&models.DailyGoal{},
		&models.DailyProgress{},
	)
	if err != nil {
		utils.Sugar.Fatalf("AutoMigrate failed: %v", err)
	}
}
