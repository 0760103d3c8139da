package controllers

import (
	"net/http"
	"time"

	"DayflowGo/config"
	"DayflowGo/models"
	"DayflowGo/services"

	"github.com/gin-gonic/gin"
)

// ScheduleController answers read-only planning queries for one date.
type ScheduleController struct {
	scheduler *services.Scheduler
	layout    *services.Layout
}

func NewScheduleController() *ScheduleController {
	return &ScheduleController{
		scheduler: services.NewScheduler(),
		layout:    services.NewLayout(),
	}
}

// GetSlots returns the free gaps of a date's working window.
func (sc *ScheduleController) GetSlots(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	snapshot, err := loadSnapshot(uid.(string), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slots := sc.scheduler.FindAvailableSlots(snapshot.Events, snapshot.Tasks)
	c.JSON(http.StatusOK, gin.H{
		"date":         snapshot.Date,
		"slots":        slots,
		"totalMinutes": services.SumSlotMinutes(slots),
	})
}

// GetConflicts reports each open fixed-time task overlapping an event.
func (sc *ScheduleController) GetConflicts(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	snapshot, err := loadSnapshot(uid.(string), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      snapshot.Date,
		"conflicts": services.FindConflicts(snapshot.Tasks, snapshot.Events),
	})
}

// GetLayout returns the date's events positioned for the day view.
func (sc *ScheduleController) GetLayout(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	snapshot, err := loadSnapshot(uid.(string), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     snapshot.Date,
		"schedule": sc.layout.DayView(snapshot.Events, snapshot.Date),
	})
}

// GetTimeBlocks returns the blocks active on a date, with exceptions
// applied. With taskId given, it also picks the first block still available
// for that task right now.
func (sc *ScheduleController) GetTimeBlocks(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}
	userID := uid.(string)

	date := c.Query("date")
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	var blocks []models.TimeBlock
	if err := config.DB.Where("user_id = ? AND is_active = ?", userID, true).
		Find(&blocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load time blocks"})
		return
	}
	var exceptions []models.TimeBlockException
	if err := config.DB.Where("date = ?", date).Find(&exceptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load time blocks"})
		return
	}

	active := services.ActiveBlocksFor(blocks, exceptions, day)
	resp := gin.H{"date": date, "blocks": active}

	if taskID := c.Query("taskId"); taskID != "" {
		var task models.Task
		if err := config.DB.Where("id = ? AND user_id = ?", taskID, userID).
			First(&task).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		now := time.Now().Format(models.ClockLayout)
		resp["firstAvailable"] = services.FirstAvailableBlock(task, active, now)
	}

	c.JSON(http.StatusOK, resp)
}

// ExportICS serves the date's schedule and the user's recurring definitions
// as an iCalendar feed.
func (sc *ScheduleController) ExportICS(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	snapshot, err := loadSnapshot(uid.(string), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feed, err := services.ExportDay(snapshot, snapshot.RecurringRules)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="dayflow.ics"`)
	c.Data(http.StatusOK, "text/calendar", []byte(feed))
}
