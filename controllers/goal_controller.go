package controllers

import (
	"net/http"
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

// GetGoals returns the user's targets plus today's consumed/goal/percent.
func (h *GoalController) GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, progress, _, err := h.Goals.Progress(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goal, "progress": progress})
}

func (h *GoalController) UpdateGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	var req struct {
		Calories float64 `json:"calories" binding:"required,gt=0"`
		Protein  float64 `json:"protein" binding:"required,gt=0"`
		Carbs    float64 `json:"carbs" binding:"required,gt=0"`
		Fats     float64 `json:"fats" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Goals.Upsert(userID, req.Calories, req.Protein, req.Carbs, req.Fats); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
