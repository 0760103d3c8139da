package models

import "time"

// RecurringTask is a rule that materializes concrete task instances.
// LastGeneratedDate is a high-water mark: once set it only moves forward,
// and no instance is generated for a date at or before it. IsActive is a
// soft delete.
type RecurringTask struct {
	ID                string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID            string    `gorm:"type:varchar(50);index" json:"user_id"`
	Title             string    `gorm:"type:varchar(200)" json:"title"`
	Recurrence        `gorm:"embedded"`
	LastGeneratedDate *string   `gorm:"type:varchar(10)" json:"lastGeneratedDate,omitempty"`
	Category          string    `gorm:"type:varchar(20);default:today" json:"category"`
	EstimatedMinutes  *int      `json:"estimatedMinutes,omitempty"`
	FixedTime         *string   `gorm:"type:varchar(5)" json:"fixedTime,omitempty"`
	IsActive          bool      `gorm:"default:true" json:"isActive"`
	LastModified      time.Time `json:"lastModified"`
}
