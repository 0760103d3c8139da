package models

import "time"

// Date and clock layouts used everywhere at the API boundary.
// Dates are "YYYY-MM-DD", times of day are zero-padded "HH:MM" so they
// compare correctly as strings.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Day is the per-(user, date) container that owns a day's tasks and events.
type Day struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID       string    `gorm:"type:varchar(50);index:idx_days_user_date,unique" json:"user_id"`
	Date         string    `gorm:"type:varchar(10);index:idx_days_user_date,unique" json:"date"`
	LastModified time.Time `json:"lastModified"`
}
