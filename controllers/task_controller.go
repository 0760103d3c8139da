package controllers

import (
	"errors"
	"net/http"
	"time"

	"DayflowGo/config"
	"DayflowGo/models"
	"DayflowGo/services"
	"DayflowGo/utils"

	"github.com/gin-gonic/gin"
)

// TaskController covers single-task operations: completion, splitting an
// oversized task into parts, and merging parts back.
type TaskController struct {
	recurring *services.RecurringService
	scheduler *services.Scheduler
}

func NewTaskController() *TaskController {
	return &TaskController{
		recurring: &services.RecurringService{},
		scheduler: services.NewScheduler(),
	}
}

// CompleteTask marks a task done. For tasks linked to a recurrence rule the
// next instance is generated immediately and the rule's high-water mark
// advances with it.
func (tc *TaskController) CompleteTask(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	var task models.Task
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).
		First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	task.IsCompleted = true
	task.LastModified = time.Now().UTC()
	if err := config.DB.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete task"})
		return
	}

	next, err := tc.recurring.HandleCompletion(&task)
	if err != nil {
		config.Logger.Errorw("completion side effect failed", "error", err, "taskID", task.ID)
	}

	resp := gin.H{"task": task}
	if next != nil {
		resp["nextInstance"] = next
	}
	c.JSON(http.StatusOK, resp)
}

// SplitTask proposes how to break an oversized task into parts placed in
// free gaps, spilling into the next day when today cannot hold it. With
// apply=true a viable proposal is persisted.
func (tc *TaskController) SplitTask(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}
	userID := uid.(string)

	var req models.SplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var task models.Task
	if err := config.DB.Preload("Parts").
		Where("id = ? AND user_id = ?", req.TaskID, userID).
		First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	today, err := loadSnapshot(userID, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tomorrowDate, err := nextDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tomorrow, err := loadSnapshot(userID, tomorrowDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}

	proposal := tc.scheduler.ProposeSplit(task, today, tomorrow)
	if !req.Apply || !proposal.CanSplit {
		c.JSON(http.StatusOK, gin.H{"proposal": proposal, "applied": false})
		return
	}

	children, err := services.SplitTask(&task, proposal.Parts)
	if err != nil {
		if errors.Is(err, services.ErrAlreadySplit) || errors.Is(err, services.ErrNoParts) ||
			errors.Is(err, services.ErrInvalidPart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "split failed"})
		return
	}

	tx := config.DB.Begin()
	for i := range children {
		day, err := services.EnsureDay(tx, userID, *children[i].DueDate)
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "split failed"})
			return
		}
		children[i].DayID = day.ID
		if err := tx.Create(&children[i]).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "split failed"})
			return
		}
	}
	if err := tx.Model(&models.Task{}).Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"fixed_time":    nil,
			"last_modified": task.LastModified,
		}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "split failed"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "split failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"proposal": proposal, "applied": true, "parts": children})
}

// MergeSubtasks folds a split task's parts back into it.
func (tc *TaskController) MergeSubtasks(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	var task models.Task
	if err := config.DB.Preload("Parts").
		Where("id = ? AND user_id = ?", c.Param("id"), uid).
		First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	detached := services.MergeSubtasks(&task)
	if len(detached) == 0 {
		c.JSON(http.StatusOK, gin.H{"task": task, "merged": 0})
		return
	}

	tx := config.DB.Begin()
	for _, part := range detached {
		if err := tx.Delete(&models.Task{}, "id = ?", part.ID).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "merge failed"})
			return
		}
	}
	if err := tx.Save(&task).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "merge failed"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "merge failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task, "merged": len(detached)})
}

// RecordFocusSession stores actual time spent on a task.
func (tc *TaskController) RecordFocusSession(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	var req models.FocusSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ConvertToUTC()

	session := models.FocusSession{
		ID:           req.ID,
		UserID:       uid.(string),
		TaskID:       req.TaskID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		LastModified: time.Now().UTC(),
	}
	if session.ID == "" {
		session.ID = utils.GenerateID()
	}
	if err := config.DB.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}
