package models

import "time"

// FocusSession records actual time spent on a task.
type FocusSession struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID       string    `gorm:"type:varchar(50);index:idx_focus_user_start" json:"user_id"`
	TaskID       string    `gorm:"type:varchar(50);index:idx_focus_task" json:"taskId"`
	StartTime    time.Time `gorm:"index:idx_focus_user_start" json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	LastModified time.Time `json:"lastModified"`
}

func (FocusSession) TableName() string {
	return "focus_sessions"
}
