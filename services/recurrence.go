package services

import (
	"time"

	"DayflowGo/models"
)

// NextOccurrenceHorizonDays bounds the forward scan for the next date a
// rule matches.
const NextOccurrenceHorizonDays = 365

// Matches reports whether a recurrence rule applies on the given date.
//
// Rule shapes:
//   - daily: every date.
//   - weekly: same weekday as the anchor date.
//   - weekdays: Monday through Friday.
//   - monthly: same day of month as the anchor; months without that day
//     simply never match (no forward or backward adjustment).
//   - custom: weekday is in the rule's day set; an empty set never matches.
func Matches(rule models.Recurrence, date time.Time) bool {
	switch rule.Type {
	case models.RecurrenceDaily:
		return true
	case models.RecurrenceWeekly:
		anchor, err := parseDate(rule.AnchorDate)
		if err != nil {
			return false
		}
		return date.Weekday() == anchor.Weekday()
	case models.RecurrenceWeekdays:
		wd := date.Weekday()
		return wd >= time.Monday && wd <= time.Friday
	case models.RecurrenceMonthly:
		anchor, err := parseDate(rule.AnchorDate)
		if err != nil {
			return false
		}
		return date.Day() == anchor.Day()
	case models.RecurrenceCustom:
		for _, d := range rule.Days {
			if d == int(date.Weekday()) {
				return true
			}
		}
		return false
	}
	return false
}

// NextOccurrence scans dates strictly after the given day, one per day, and
// returns the first the rule matches. Returns nil once a candidate's calendar
// day is past the rule's end date (the end date itself still counts) or when
// the horizon is exhausted. The cutoff compares calendar days, not instants,
// so callers may pass a mid-day "now".
func NextOccurrence(rule models.Recurrence, after time.Time) *time.Time {
	for i := 1; i <= NextOccurrenceHorizonDays; i++ {
		candidate := after.AddDate(0, 0, i)
		if rule.EndDate != nil && dateString(candidate) > *rule.EndDate {
			return nil
		}
		if Matches(rule, candidate) {
			return &candidate
		}
	}
	return nil
}
