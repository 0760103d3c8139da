package services

import (
	"fmt"
	"time"

	"DayflowGo/models"
)

// parseClock converts "HH:MM" to minutes from midnight. Malformed values
// report ok=false and are treated as absent by callers.
func parseClock(hhmm string) (int, bool) {
	t, err := time.Parse(models.ClockLayout, hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// formatClock renders minutes from midnight as zero-padded "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// parseDate parses a "YYYY-MM-DD" calendar date in UTC.
func parseDate(s string) (time.Time, error) {
	return time.Parse(models.DateLayout, s)
}

// dateString renders a calendar date as "YYYY-MM-DD".
func dateString(d time.Time) string {
	return d.Format(models.DateLayout)
}
