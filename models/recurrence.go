package models

// Recurrence types. Custom uses the Days set, the others ignore it.
const (
	RecurrenceDaily    = "daily"
	RecurrenceWeekly   = "weekly"
	RecurrenceWeekdays = "weekdays"
	RecurrenceMonthly  = "monthly"
	RecurrenceCustom   = "custom"
)

// Recurrence is the one rule shape shared by recurring tasks and time blocks.
// Every recurring entity carries an explicit AnchorDate; weekly rules match
// the anchor's weekday, monthly rules the anchor's day of month. Days holds
// weekday numbers 0-6 (Sunday=0) and is only consulted by custom rules.
type Recurrence struct {
	Type       string  `gorm:"type:varchar(20)" json:"recurrenceType"`
	Days       []int   `gorm:"serializer:json" json:"recurrenceDays,omitempty"`
	AnchorDate string  `gorm:"type:varchar(10)" json:"anchorDate"`
	EndDate    *string `gorm:"type:varchar(10)" json:"endDate,omitempty"`
}
