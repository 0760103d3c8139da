package services

import (
	"fmt"
	"time"

	"DayflowGo/config"
	"DayflowGo/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShouldGenerate decides whether a rule is due to materialize an instance on
// the given date. It refuses dates before the anchor or past the end date,
// dates at or before the generation high-water mark, and rules that still
// have an open (incomplete) instance outstanding. Only then does the
// recurrence pattern get a say. ISO date strings compare correctly as
// strings, so the calendar-day comparisons are plain string comparisons.
func ShouldGenerate(rule models.RecurringTask, date time.Time, existing []models.Task) bool {
	day := dateString(date)
	if day < rule.AnchorDate {
		return false
	}
	if rule.EndDate != nil && day > *rule.EndDate {
		return false
	}
	if rule.LastGeneratedDate != nil && day <= *rule.LastGeneratedDate {
		return false
	}
	for _, t := range existing {
		if t.RecurringTaskID != nil && *t.RecurringTaskID == rule.ID && !t.IsCompleted {
			return false
		}
	}
	return Matches(rule.Recurrence, date)
}

// GenerateTask materializes one instance of a rule for a date. If an
// instance for (rule, date) already exists among the given tasks it returns
// nil, so calling twice creates at most one task. It deliberately does not
// advance the rule's high-water mark: the caller advances it once it accepts
// the result, which allows speculative generation.
func GenerateTask(rule models.RecurringTask, date time.Time, existing []models.Task) *models.Task {
	day := dateString(date)
	for _, t := range existing {
		if t.RecurringTaskID != nil && *t.RecurringTaskID == rule.ID &&
			t.DueDate != nil && *t.DueDate == day {
			return nil
		}
	}

	ruleID := rule.ID
	task := models.Task{
		ID:              uuid.New().String(),
		UserID:          rule.UserID,
		Title:           rule.Title,
		Category:        rule.Category,
		DueDate:         &day,
		RecurringTaskID: &ruleID,
		LastModified:    time.Now().UTC(),
	}
	if rule.EstimatedMinutes != nil {
		est := *rule.EstimatedMinutes
		task.EstimatedMinutes = &est
	}
	if rule.FixedTime != nil {
		ft := *rule.FixedTime
		task.FixedTime = &ft
	}
	return &task
}

// RecurringService runs the generation workflow against the database.
type RecurringService struct{}

// EnsureDay finds or creates the per-(user, date) container.
func EnsureDay(db *gorm.DB, userID, date string) (models.Day, error) {
	var day models.Day
	err := db.Where("user_id = ? AND date = ?", userID, date).First(&day).Error
	if err == nil {
		return day, nil
	}
	if err != gorm.ErrRecordNotFound {
		return day, err
	}
	day = models.Day{
		ID:           uuid.New().String(),
		UserID:       userID,
		Date:         date,
		LastModified: time.Now().UTC(),
	}
	if err := db.Create(&day).Error; err != nil {
		return day, err
	}
	return day, nil
}

// SyncForDate generates due instances for every active rule, optionally
// scoped to one user, and advances each rule's high-water mark for every
// instance actually created. Returns the generated tasks.
func (rs *RecurringService) SyncForDate(date string, userID string) ([]models.Task, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	query := config.DB.Where("is_active = ?", true)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	var rules []models.RecurringTask
	if err := query.Find(&rules).Error; err != nil {
		return nil, err
	}

	var generated []models.Task
	for i := range rules {
		rule := rules[i]

		var existing []models.Task
		if err := config.DB.Where("recurring_task_id = ?", rule.ID).Find(&existing).Error; err != nil {
			return generated, err
		}
		if !ShouldGenerate(rule, day, existing) {
			continue
		}
		task := GenerateTask(rule, day, existing)
		if task == nil {
			continue
		}

		container, err := EnsureDay(config.DB, rule.UserID, date)
		if err != nil {
			return generated, err
		}
		task.DayID = container.ID
		if err := config.DB.Create(task).Error; err != nil {
			// The unique (rule, date) index closes the race the in-memory
			// check cannot; a duplicate insert is an idempotency skip.
			config.Logger.Warnw("recurring instance insert skipped",
				"ruleID", rule.ID, "date", date, "error", err)
			continue
		}

		if err := config.DB.Model(&models.RecurringTask{}).
			Where("id = ?", rule.ID).
			Update("last_generated_date", date).Error; err != nil {
			return generated, err
		}
		generated = append(generated, *task)
	}
	return generated, nil
}

// DeleteFutureGeneratedTasks removes every instance linked to a rule from
// fromDate onward and reports how many were removed. Used when a recurrence
// rule itself is deleted.
func (rs *RecurringService) DeleteFutureGeneratedTasks(ruleID string, fromDate string) (int64, error) {
	result := config.DB.Where("recurring_task_id = ? AND due_date >= ?", ruleID, fromDate).
		Delete(&models.Task{})
	return result.RowsAffected, result.Error
}

// HandleCompletion is the completion side effect for a linked task: find the
// rule's next occurrence, generate the instance there, and advance the
// high-water mark on success. Returns the newly generated task, if any.
func (rs *RecurringService) HandleCompletion(task *models.Task) (*models.Task, error) {
	if task.RecurringTaskID == nil {
		return nil, nil
	}

	var rule models.RecurringTask
	if err := config.DB.Where("id = ?", *task.RecurringTaskID).First(&rule).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	if !rule.IsActive {
		return nil, nil
	}

	next := NextOccurrence(rule.Recurrence, time.Now().UTC())
	if next == nil {
		return nil, nil
	}

	var existing []models.Task
	if err := config.DB.Where("recurring_task_id = ?", rule.ID).Find(&existing).Error; err != nil {
		return nil, err
	}
	generated := GenerateTask(rule, *next, existing)
	if generated == nil {
		return nil, nil
	}

	nextDay := dateString(*next)
	container, err := EnsureDay(config.DB, rule.UserID, nextDay)
	if err != nil {
		return nil, err
	}
	generated.DayID = container.ID
	if err := config.DB.Create(generated).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.RecurringTask{}).
		Where("id = ?", rule.ID).
		Update("last_generated_date", nextDay).Error; err != nil {
		return generated, err
	}
	return generated, nil
}
