package routes

import (
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/config"
	"github.com/harsha-legends/nutri-vision-sub000/controllers"
	"github.com/harsha-legends/nutri-vision-sub000/middlewares"
	"github.com/harsha-legends/nutri-vision-sub000/services"
	"github.com/harsha-legends/nutri-vision-sub000/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		MaxAge:           12 * time.Hour,
	}))

	// service graph
	mealSvc := services.NewMealService(config.DB)
	goalSvc := services.NewGoalService(config.DB, mealSvc)
	offSvc := services.NewOpenFoodFactsService()
	rekSvc, err := services.NewRekognitionService()
	if err != nil {
		utils.Sugar.Warnf("photo recognition disabled: %v", err)
		rekSvc = nil
	}
	catalogSvc := services.NewCatalogService(config.DB, offSvc, rekSvc)
	hub := services.NewRealtimeHub()
	insightSvc := services.NewInsightService(config.DB, mealSvc, goalSvc, catalogSvc, hub)

	if err := catalogSvc.SeedDefaults(); err != nil {
		utils.Sugar.Warnf("catalog seed failed: %v", err)
	}

	mealCtl := controllers.NewMealController(mealSvc, insightSvc)
	goalCtl := controllers.NewGoalController(goalSvc)
	catalogCtl := controllers.NewCatalogController(catalogSvc)
	insightCtl := controllers.NewInsightController(insightSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.POST("/meals", mealCtl.LogMeal)
		api.GET("/meals", mealCtl.ListMeals)
		api.PUT("/meals/:entryId", mealCtl.UpdateMeal)
		api.DELETE("/meals/:entryId", mealCtl.DeleteMeal)

		api.GET("/goals", goalCtl.GetGoals)
		api.PUT("/goals", goalCtl.UpdateGoals)

		api.GET("/catalog", catalogCtl.ListFoods)
		api.POST("/catalog", catalogCtl.CreateFood)
		api.GET("/catalog/search", catalogCtl.SearchFoods)
		api.GET("/catalog/barcode/:code", catalogCtl.LookupBarcode)
		api.POST("/catalog/recognize", catalogCtl.RecognizeFood)

		api.GET("/insights/dashboard", insightCtl.GetDashboard)
		api.GET("/insights/series", insightCtl.GetSeries)
		api.GET("/insights/summary", insightCtl.GetSummary)
		api.GET("/insights/streak", insightCtl.GetStreak)
		api.GET("/insights/achievements", insightCtl.GetAchievements)
		api.GET("/insights/suggestions", insightCtl.GetSuggestions)

		api.POST("/images", controllers.UploadMealImage)
		api.GET("/ws/dashboard", realtimeCtl.DashboardWS)
	}

	return r
}
