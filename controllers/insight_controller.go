package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/services"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	Svc *services.InsightService
}

func NewInsightController(svc *services.InsightService) *InsightController {
	return &InsightController{Svc: svc}
}

func (h *InsightController) GetDashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	dash, err := h.Svc.BuildDashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dash)
}

// GetSeries returns the per-day history buckets; ?days=7, max 90.
func (h *InsightController) GetSeries(c *gin.Context) {
	userID := c.GetUint("userID")

	days := 7
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = n
	}
	if days > 90 {
		days = 90
	}

	series, err := h.Svc.Series(userID, days, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "series": series})
}

// GetSummary returns the per-day DailyProgress snapshots; ?days=7, max 90.
func (h *InsightController) GetSummary(c *gin.Context) {
	userID := c.GetUint("userID")

	days := 7
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = n
	}
	if days > 90 {
		days = 90
	}

	summary, err := h.Svc.Summary(userID, days, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "summary": summary})
}

func (h *InsightController) GetStreak(c *gin.Context) {
	userID := c.GetUint("userID")

	streak, err := h.Svc.Streak(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak": streak})
}

func (h *InsightController) GetAchievements(c *gin.Context) {
	userID := c.GetUint("userID")

	dash, err := h.Svc.BuildDashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": dash.Achievements})
}

func (h *InsightController) GetSuggestions(c *gin.Context) {
	userID := c.GetUint("userID")

	dash, err := h.Svc.BuildDashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"suggestions": dash.Suggestions,
		"balance":     dash.Balance,
		"advice":      dash.Advice,
	})
}
