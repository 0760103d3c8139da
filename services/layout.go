package services

import (
	"sort"

	"DayflowGo/config"
	"DayflowGo/models"
)

// MinVisualMinutes is the floor of visual height: shorter entries still
// render as 30 minutes so they stay clickable.
const MinVisualMinutes = 30

// Layout converts absolute times into normalized percent positions within
// the fixed display window of the day view.
type Layout struct {
	Window config.ScheduleWindow
}

// NewLayout returns a layout calculator bound to the active schedule window.
func NewLayout() *Layout {
	return &Layout{Window: config.Schedule}
}

// TopPercent maps a clock time to its vertical offset in the display window.
// The hour component clamps to the top of the window; minutes always add
// their fraction.
func (l *Layout) TopPercent(clock string) float64 {
	minutes, ok := parseClock(clock)
	if !ok {
		return 0
	}
	hours := float64(minutes/60 - l.Window.DisplayStartHour)
	if hours < 0 {
		hours = 0
	}
	offset := hours + float64(minutes%60)/60
	return offset / float64(l.Window.DisplayHours) * 100
}

// HeightPercent maps a time range to its visual height. A missing bound
// yields the fixed minimum of one hour-fraction; anything shorter than 30
// minutes still renders at 30 minutes.
func (l *Layout) HeightPercent(start, end string) float64 {
	totalHours := float64(l.Window.DisplayHours)
	if start == "" || end == "" {
		return 1 / totalHours * 100
	}
	startMin, okS := parseClock(start)
	endMin, okE := parseClock(end)
	if !okS || !okE {
		return 1 / totalHours * 100
	}
	duration := endMin - startMin
	if duration < MinVisualMinutes {
		duration = MinVisualMinutes
	}
	return float64(duration) / 60 / totalHours * 100
}

// DayView positions a date's events for display, sorted by start time.
func (l *Layout) DayView(events []models.Event, date string) []models.ScheduleItem {
	var visible []models.Event
	for _, ev := range events {
		if ev.Date == date {
			visible = append(visible, ev)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].StartTime < visible[j].StartTime
	})

	items := make([]models.ScheduleItem, 0, len(visible))
	for _, ev := range visible {
		end := ""
		if ev.EndTime != nil {
			end = *ev.EndTime
		}
		items = append(items, models.ScheduleItem{
			Event:         ev,
			TopPercent:    l.TopPercent(ev.StartTime),
			HeightPercent: l.HeightPercent(ev.StartTime, end),
		})
	}
	return items
}
