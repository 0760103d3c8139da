package models

import "time"

// TimeBlock is a recurring availability window ("focus mornings", "gym")
// matched against tasks by shared tags. Its Recurrence carries an explicit
// AnchorDate like every other recurring entity; the controller fills it with
// the creation date when the client does not send one.
type TimeBlock struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID       string    `gorm:"type:varchar(50);index" json:"user_id"`
	Name         string    `gorm:"type:varchar(100)" json:"name"`
	Color        string    `gorm:"type:varchar(20)" json:"color"`
	StartTime    string    `gorm:"type:varchar(5)" json:"startTime"`
	EndTime      string    `gorm:"type:varchar(5)" json:"endTime"`
	Recurrence   `gorm:"embedded"`
	Tags         []string  `gorm:"serializer:json" json:"tags,omitempty"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	LastModified time.Time `json:"lastModified"`
}

// TimeBlockException overrides one block on one date: either skip it
// entirely, or replace its start/end for that date only.
type TimeBlockException struct {
	ID          string  `gorm:"type:varchar(50);primaryKey" json:"id"`
	TimeBlockID string  `gorm:"type:varchar(50);index:idx_block_exceptions,unique" json:"timeBlockId"`
	Date        string  `gorm:"type:varchar(10);index:idx_block_exceptions,unique" json:"date"`
	Skip        bool    `json:"skip"`
	StartTime   *string `gorm:"type:varchar(5)" json:"startTime,omitempty"`
	EndTime     *string `gorm:"type:varchar(5)" json:"endTime,omitempty"`
}
