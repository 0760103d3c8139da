package services

import (
	"fmt"
	"time"

	"DayflowGo/models"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
)

// ExportDay renders a snapshot's events and fixed-time tasks, plus the
// user's recurring definitions, as an iCalendar feed. Recurring definitions
// become RRULE-based VEVENTs so external calendars expand them themselves.
func ExportDay(snapshot models.Snapshot, rules []models.RecurringTask) (string, error) {
	day, err := parseDate(snapshot.Date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", snapshot.Date, err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Dayflow//Day Export//EN")
	now := time.Now().UTC()

	for _, ev := range snapshot.Events {
		start, end, ok := eventWindow(ev)
		if !ok {
			continue
		}
		entry := cal.AddEvent(fmt.Sprintf("%s@dayflow", ev.ID))
		entry.SetDtStampTime(now)
		entry.SetSummary(ev.Title)
		entry.SetStartAt(clockOn(day, start))
		entry.SetEndAt(clockOn(day, end))
	}

	for _, task := range snapshot.Tasks {
		start, end, ok := taskWindow(task)
		if !ok {
			continue
		}
		entry := cal.AddEvent(fmt.Sprintf("%s@dayflow", task.ID))
		entry.SetDtStampTime(now)
		entry.SetSummary(task.Title)
		entry.SetStartAt(clockOn(day, start))
		entry.SetEndAt(clockOn(day, end))
	}

	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		rruleValue, err := recurrenceRRule(rule.Recurrence)
		if err != nil {
			// Rules the RFC cannot express (e.g. empty custom sets) are
			// left out of the feed rather than failing the export.
			continue
		}
		anchor, err := parseDate(rule.AnchorDate)
		if err != nil {
			continue
		}
		startMin := 0
		if rule.FixedTime != nil {
			if m, ok := parseClock(*rule.FixedTime); ok {
				startMin = m
			}
		}
		duration := models.DefaultEstimateMinutes
		if rule.EstimatedMinutes != nil && *rule.EstimatedMinutes > 0 {
			duration = *rule.EstimatedMinutes
		}

		entry := cal.AddEvent(fmt.Sprintf("%s@dayflow", rule.ID))
		entry.SetDtStampTime(now)
		entry.SetSummary(rule.Title)
		entry.SetStartAt(clockOn(anchor, startMin))
		entry.SetEndAt(clockOn(anchor, startMin+duration))
		entry.AddRrule(rruleValue)
	}

	return cal.Serialize(), nil
}

// clockOn places minutes-from-midnight on a calendar date, in UTC.
func clockOn(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, time.UTC)
}

// rfcWeekdays maps our weekday numbers (Sunday=0) onto RFC 5545 weekdays.
var rfcWeekdays = []rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// recurrenceRRule expresses one of our recurrence rules as an RRULE value.
// Note the semantics are not identical: RFC monthly recurrence can clamp to
// shorter months while ours skips them, which is acceptable for an export.
func recurrenceRRule(rec models.Recurrence) (string, error) {
	anchor, err := parseDate(rec.AnchorDate)
	if err != nil {
		return "", fmt.Errorf("invalid anchor date %q: %w", rec.AnchorDate, err)
	}

	opt := rrule.ROption{Dtstart: anchor}
	switch rec.Type {
	case models.RecurrenceDaily:
		opt.Freq = rrule.DAILY
	case models.RecurrenceWeekly:
		opt.Freq = rrule.WEEKLY
	case models.RecurrenceWeekdays:
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}
	case models.RecurrenceMonthly:
		opt.Freq = rrule.MONTHLY
	case models.RecurrenceCustom:
		if len(rec.Days) == 0 {
			return "", fmt.Errorf("custom rule without days")
		}
		opt.Freq = rrule.WEEKLY
		for _, d := range rec.Days {
			if d < 0 || d > 6 {
				return "", fmt.Errorf("weekday %d out of range", d)
			}
			opt.Byweekday = append(opt.Byweekday, rfcWeekdays[d])
		}
	default:
		return "", fmt.Errorf("unknown recurrence type %q", rec.Type)
	}

	if rec.EndDate != nil {
		until, err := parseDate(*rec.EndDate)
		if err == nil {
			opt.Until = until
		}
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return "", err
	}
	return r.OrigOptions.RRuleString(), nil
}
