package controllers

import (
	"net/http"

	"DayflowGo/models"
	"DayflowGo/services"

	"github.com/gin-gonic/gin"
)

// AIController exposes the holistic schedule proposal. The engine only
// supplies the snapshot and de-duplicates the reply; the suggestion itself
// comes from the model.
type AIController struct {
	schedule *services.ScheduleService
}

func NewAIController(schedule *services.ScheduleService) *AIController {
	return &AIController{schedule: schedule}
}

// ProposeSchedule asks the model for a full-day schedule suggestion.
func (ac *AIController) ProposeSchedule(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	var req struct {
		Date         string `json:"date" binding:"required"`
		LanguageHint string `json:"languageHint"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := loadSnapshot(uid.(string), req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Planned = tasks already carrying a fixed time; the model schedules
	// around them instead of moving them.
	var planned []models.Task
	var open []models.Task
	for _, t := range snapshot.Tasks {
		if t.IsCompleted {
			continue
		}
		if t.FixedTime != nil {
			planned = append(planned, t)
		} else {
			open = append(open, t)
		}
	}
	snapshot.Tasks = open

	proposal, err := ac.schedule.ProposeSchedule(c.Request.Context(), snapshot, planned, req.LanguageHint)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "schedule proposal failed"})
		return
	}

	c.JSON(http.StatusOK, proposal)
}
