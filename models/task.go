package models

import "time"

// Task categories.
const (
	CategoryToday     = "today"
	CategoryScheduled = "scheduled"
	CategorySomeday   = "someday"
)

// DefaultEstimateMinutes is assumed when a task has no estimate but an
// algorithm needs a duration.
const DefaultEstimateMinutes = 30

// Task is a single to-do owned by a Day container. A task may be a split
// part of a larger task (ParentTaskID set), or carry parts itself; parts
// never nest. The unique index on (recurring_task_id, due_date) lets the
// database enforce at most one generated instance per rule and date.
type Task struct {
	ID                   string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	DayID                string     `gorm:"type:varchar(50);index" json:"day_id"`
	UserID               string     `gorm:"type:varchar(50);index" json:"user_id"`
	Title                string     `gorm:"type:varchar(200)" json:"title"`
	IsCompleted          bool       `json:"isCompleted"`
	DueDate              *string    `gorm:"type:varchar(10);index:idx_tasks_rule_date,unique" json:"dueDate,omitempty"`
	Category             string     `gorm:"type:varchar(20);default:today" json:"category"`
	FixedTime            *string    `gorm:"type:varchar(5)" json:"fixedTime,omitempty"`
	EstimatedMinutes     *int       `json:"estimatedMinutes,omitempty"`
	CanCombineWithEvents []string   `gorm:"serializer:json" json:"canCombineWithEvents,omitempty"`
	NeedsFullFocus       bool       `json:"needsFullFocus"`
	Tags                 []string   `gorm:"serializer:json" json:"tags,omitempty"`
	RecurringTaskID      *string    `gorm:"type:varchar(50);index:idx_tasks_rule_date,unique" json:"recurringTaskId,omitempty"`
	ParentTaskID         *string    `gorm:"type:varchar(50);index" json:"parentTaskId,omitempty"`
	IsPart               bool       `json:"isPart"`
	PartNumber           int        `json:"partNumber,omitempty"`
	Parts                []Task     `gorm:"foreignKey:ParentTaskID" json:"-"`
	LastModified         time.Time  `json:"lastModified"`
}

// HasSubtasks reports whether the task has been split into parts.
// Parts must be preloaded or assembled by the caller.
func (t *Task) HasSubtasks() bool {
	return len(t.Parts) > 0
}

// EstimateOrDefault returns the estimate in minutes, or the 30 minute default.
func (t *Task) EstimateOrDefault() int {
	if t.EstimatedMinutes != nil {
		return *t.EstimatedMinutes
	}
	return DefaultEstimateMinutes
}

// HasTag reports whether the task carries the given tag id.
func (t *Task) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}
