package models

import "time"

// DefaultEventMinutes is assumed for events without an end time.
const DefaultEventMinutes = 60

// Event is a calendar entry with a fixed start. A missing end time is
// treated as one hour for all overlap math. AllowOverlap is advisory only;
// the conflict detector still reports overlaps and the caller decides.
type Event struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	DayID        string    `gorm:"type:varchar(50);index" json:"day_id"`
	UserID       string    `gorm:"type:varchar(50);index" json:"user_id"`
	Title        string    `gorm:"type:varchar(200)" json:"title"`
	Date         string    `gorm:"type:varchar(10);index" json:"date"`
	StartTime    string    `gorm:"type:varchar(5)" json:"startTime"`
	EndTime      *string   `gorm:"type:varchar(5)" json:"endTime,omitempty"`
	AllowOverlap bool      `json:"allowOverlap"`
	LastModified time.Time `json:"lastModified"`
}
