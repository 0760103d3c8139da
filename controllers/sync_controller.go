package controllers

import (
	"net/http"
	"time"

	"DayflowGo/config"
	"DayflowGo/models"
	"DayflowGo/services"
	"DayflowGo/utils"

	"github.com/gin-gonic/gin"
)

// SyncController merges client-side changes. Conflicts resolve by
// LastModified, last writer wins, the same policy for every payload.
type SyncController struct{}

// SyncTasks upserts a batch of tasks. New tasks whose normalized title
// already exists on the same day are dropped as duplicates; that is how
// externally-extracted items get merged without piling up.
func (sc *SyncController) SyncTasks(c *gin.Context) {
	var reqs []models.SyncTasksRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}
	userID := uid.(string)

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	skipped := 0
	for _, req := range reqs {
		req.ConvertToUTC()

		task := models.Task{
			ID:                   req.ID,
			UserID:               userID,
			Title:                req.Title,
			IsCompleted:          req.IsCompleted,
			DueDate:              req.DueDate,
			Category:             req.Category,
			FixedTime:            req.FixedTime,
			EstimatedMinutes:     req.EstimatedMinutes,
			CanCombineWithEvents: req.CanCombineWithEvents,
			NeedsFullFocus:       req.NeedsFullFocus,
			Tags:                 req.Tags,
			LastModified:         req.LastModified,
		}

		var existing models.Task
		if err := tx.Where("id = ?", task.ID).First(&existing).Error; err == nil {
			if task.LastModified.After(existing.LastModified) {
				task.DayID = existing.DayID
				task.RecurringTaskID = existing.RecurringTaskID
				task.ParentTaskID = existing.ParentTaskID
				task.IsPart = existing.IsPart
				task.PartNumber = existing.PartNumber
				task.LastModified = time.Now().UTC()
				if err := tx.Save(&task).Error; err != nil {
					tx.Rollback()
					c.JSON(http.StatusInternalServerError, gin.H{"error": "task sync failed"})
					return
				}
			}
			continue
		}

		if task.DueDate != nil {
			var sameDay []models.Task
			if err := tx.Where("user_id = ? AND due_date = ?", userID, *task.DueDate).
				Find(&sameDay).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "task sync failed"})
				return
			}
			if services.IsDuplicateTask(task.Title, sameDay) {
				skipped++
				continue
			}
			day, err := services.EnsureDay(tx, userID, *task.DueDate)
			if err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "task sync failed"})
				return
			}
			task.DayID = day.ID
		}
		if task.ID == "" {
			task.ID = utils.GenerateID()
		}
		task.LastModified = time.Now().UTC()
		if err := tx.Create(&task).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "task sync failed"})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "task sync failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "tasks synced", "duplicatesSkipped": skipped})
}

// SyncEvents upserts a batch of events, skipping duplicates: a normalized
// title match plus overlapping time range on the same date.
func (sc *SyncController) SyncEvents(c *gin.Context) {
	var reqs []models.SyncEventsRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}
	userID := uid.(string)

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	skipped := 0
	for _, req := range reqs {
		req.ConvertToUTC()

		event := models.Event{
			ID:           req.ID,
			UserID:       userID,
			Title:        req.Title,
			Date:         req.Date,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			AllowOverlap: req.AllowOverlap,
			LastModified: req.LastModified,
		}

		var existing models.Event
		if err := tx.Where("id = ?", event.ID).First(&existing).Error; err == nil {
			if event.LastModified.After(existing.LastModified) {
				event.DayID = existing.DayID
				event.LastModified = time.Now().UTC()
				if err := tx.Save(&event).Error; err != nil {
					tx.Rollback()
					c.JSON(http.StatusInternalServerError, gin.H{"error": "event sync failed"})
					return
				}
			}
			continue
		}

		var sameDay []models.Event
		if err := tx.Where("user_id = ? AND date = ?", userID, event.Date).
			Find(&sameDay).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "event sync failed"})
			return
		}
		if services.IsDuplicateEvent(event, sameDay) {
			skipped++
			continue
		}

		day, err := services.EnsureDay(tx, userID, event.Date)
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "event sync failed"})
			return
		}
		event.DayID = day.ID
		if event.ID == "" {
			event.ID = utils.GenerateID()
		}
		event.LastModified = time.Now().UTC()
		if err := tx.Create(&event).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "event sync failed"})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "event sync failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "events synced", "duplicatesSkipped": skipped})
}

// SyncTimeBlocks upserts time block definitions. A block arriving without an
// anchor date gets today: every recurring entity carries an explicit anchor.
func (sc *SyncController) SyncTimeBlocks(c *gin.Context) {
	var reqs []models.SyncTimeBlocksRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}
	userID := uid.(string)

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, req := range reqs {
		req.ConvertToUTC()

		anchor := req.AnchorDate
		if anchor == "" {
			anchor = time.Now().UTC().Format(models.DateLayout)
		}
		block := models.TimeBlock{
			ID:        req.ID,
			UserID:    userID,
			Name:      req.Name,
			Color:     req.Color,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Recurrence: models.Recurrence{
				Type:       req.RecurrenceType,
				Days:       req.RecurrenceDays,
				AnchorDate: anchor,
			},
			Tags:         req.Tags,
			IsActive:     req.IsActive,
			LastModified: req.LastModified,
		}

		var existing models.TimeBlock
		if err := tx.Where("id = ?", block.ID).First(&existing).Error; err == nil {
			if block.LastModified.After(existing.LastModified) {
				// The anchor never changes after creation.
				block.AnchorDate = existing.AnchorDate
				block.LastModified = time.Now().UTC()
				if err := tx.Save(&block).Error; err != nil {
					tx.Rollback()
					c.JSON(http.StatusInternalServerError, gin.H{"error": "time block sync failed"})
					return
				}
			}
			continue
		}

		if block.ID == "" {
			block.ID = utils.GenerateID()
		}
		block.LastModified = time.Now().UTC()
		if err := tx.Create(&block).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "time block sync failed"})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "time block sync failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "time blocks synced"})
}

// GetUpdates returns everything changed since the client's last sync.
func (sc *SyncController) GetUpdates(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	lastSyncDateStr := c.Query("lastSyncDate")
	var lastSyncDate time.Time
	var err error

	if lastSyncDateStr != "" {
		lastSyncDate, err = time.Parse(time.RFC3339, lastSyncDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time format"})
			return
		}
	} else {
		lastSyncDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	var tasks []models.Task
	if err := config.DB.Where("user_id = ? AND last_modified > ?", uid, lastSyncDate).
		Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch task updates"})
		return
	}

	var events []models.Event
	if err := config.DB.Where("user_id = ? AND last_modified > ?", uid, lastSyncDate).
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event updates"})
		return
	}

	var blocks []models.TimeBlock
	if err := config.DB.Where("user_id = ? AND last_modified > ?", uid, lastSyncDate).
		Find(&blocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch time block updates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":      tasks,
		"events":     events,
		"timeBlocks": blocks,
	})
}
