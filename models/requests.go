package models

import "time"

// SyncTasksRequest mirrors Task for client sync. Last-writer-wins by
// LastModified, like every sync payload.
type SyncTasksRequest struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	IsCompleted          bool      `json:"isCompleted"`
	DueDate              *string   `json:"dueDate"`
	Category             string    `json:"category"`
	FixedTime            *string   `json:"fixedTime"`
	EstimatedMinutes     *int      `json:"estimatedMinutes"`
	CanCombineWithEvents []string  `json:"canCombineWithEvents"`
	NeedsFullFocus       bool      `json:"needsFullFocus"`
	Tags                 []string  `json:"tags"`
	LastModified         time.Time `json:"lastModified"`
}

func (r *SyncTasksRequest) ConvertToUTC() {
	r.LastModified = r.LastModified.UTC()
}

// SyncEventsRequest mirrors Event for client sync.
type SyncEventsRequest struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      *string   `json:"endTime"`
	AllowOverlap bool      `json:"allowOverlap"`
	LastModified time.Time `json:"lastModified"`
}

func (r *SyncEventsRequest) ConvertToUTC() {
	r.LastModified = r.LastModified.UTC()
}

// SyncTimeBlocksRequest mirrors TimeBlock for client sync. AnchorDate may be
// empty on creation; the server fills it with the creation date.
type SyncTimeBlocksRequest struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	RecurrenceType string    `json:"recurrenceType"`
	RecurrenceDays []int     `json:"recurrenceDays"`
	AnchorDate     string    `json:"anchorDate"`
	Tags           []string  `json:"tags"`
	IsActive       bool      `json:"isActive"`
	LastModified   time.Time `json:"lastModified"`
}

func (r *SyncTimeBlocksRequest) ConvertToUTC() {
	r.LastModified = r.LastModified.UTC()
}

// SplitRequest asks for a split proposal for one task on one date.
// When Apply is set and the proposal is viable, the parts are persisted.
type SplitRequest struct {
	TaskID string `json:"taskId" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Apply  bool   `json:"apply"`
}

// FocusSessionRequest records time spent on a task.
type FocusSessionRequest struct {
	ID           string    `json:"id"`
	TaskID       string    `json:"taskId" binding:"required"`
	StartTime    time.Time `json:"startTime" binding:"required"`
	EndTime      time.Time `json:"endTime" binding:"required"`
	LastModified time.Time `json:"lastModified"`
}

func (r *FocusSessionRequest) ConvertToUTC() {
	r.StartTime = r.StartTime.UTC()
	r.EndTime = r.EndTime.UTC()
	r.LastModified = r.LastModified.UTC()
}
