package controllers

import (
	"net/http"
	"time"

	"DayflowGo/config"
	"DayflowGo/models"
	"DayflowGo/services"

	"github.com/gin-gonic/gin"
)

// RecurringController manages recurrence rules and their generated instances.
type RecurringController struct {
	recurring *services.RecurringService
}

func NewRecurringController() *RecurringController {
	return &RecurringController{recurring: &services.RecurringService{}}
}

// SyncForDate materializes every instance due on a date for the caller.
// Generation is idempotent: re-running the same date creates nothing new.
func (rc *RecurringController) SyncForDate(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format(models.DateLayout)
	}

	generated, err := rc.recurring.SyncForDate(date, uid.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "generated": generated})
}

// DeleteRule soft-deletes a recurrence rule and removes its still-future
// generated instances.
func (rc *RecurringController) DeleteRule(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	var rule models.RecurringTask
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).
		First(&rule).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "rule not found"})
		return
	}

	if err := config.DB.Model(&rule).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	fromDate := time.Now().UTC().Format(models.DateLayout)
	removed, err := rc.recurring.DeleteFutureGeneratedTasks(rule.ID, fromDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ruleId": rule.ID, "removedInstances": removed})
}

// NextOccurrence answers when a rule fires next, within the scan horizon.
func (rc *RecurringController) NextOccurrence(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	var rule models.RecurringTask
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).
		First(&rule).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "rule not found"})
		return
	}

	next := services.NextOccurrence(rule.Recurrence, time.Now().UTC())
	if next == nil {
		c.JSON(http.StatusOK, gin.H{"ruleId": rule.ID, "next": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ruleId": rule.ID, "next": next.Format(models.DateLayout)})
}
