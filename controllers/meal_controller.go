package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals    *services.MealService
	Insights *services.InsightService
}

func NewMealController(meals *services.MealService, ins *services.InsightService) *MealController {
	return &MealController{Meals: meals, Insights: ins}
}

func (h *MealController) LogMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	var req services.LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Meals.LogMeal(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	go h.Insights.NotifyChanged(context.Background(), userID, entry.LoggedAt)
	c.JSON(http.StatusCreated, entry)
}

// ListMeals returns a day of entries; ?date=YYYY-MM-DD, default today.
func (h *MealController) ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	day := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	entries, err := h.Meals.ListDay(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *MealController) UpdateMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	entryID := c.Param("entryId")

	var req services.LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// the old entry's day needs a snapshot refresh too when the edit moves it
	old, err := h.Meals.GetEntry(userID, entryID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal entry not found"})
		return
	}

	entry, err := h.Meals.UpdateEntry(userID, entryID, req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	go h.Insights.NotifyChanged(context.Background(), userID, entry.LoggedAt, old.LoggedAt)
	c.JSON(http.StatusOK, entry)
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	entryID := c.Param("entryId")

	entry, err := h.Meals.DeleteEntry(userID, entryID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal entry not found"})
		return
	}

	go h.Insights.NotifyChanged(context.Background(), userID, entry.LoggedAt)
	c.Status(http.StatusNoContent)
}
