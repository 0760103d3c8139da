package config

// ScheduleWindow is the single source of truth for the planning window.
// The slot finder and the visual layout calculator both consume it, so the
// working hours and the minimum usable gap are never defined twice.
type ScheduleWindow struct {
	StartHour      int // first plannable hour, inclusive
	EndHour        int // last plannable hour, exclusive
	MinSlotMinutes int // gaps shorter than this are not offered as slots

	DisplayStartHour int // first hour of the visible day view
	DisplayHours     int // height of the visible day view, in hours
}

// DefaultScheduleWindow matches the product defaults: plan between 06:00 and
// 22:00, ignore gaps under 30 minutes, render a 16 hour day view.
var DefaultScheduleWindow = ScheduleWindow{
	StartHour:        6,
	EndHour:          22,
	MinSlotMinutes:   30,
	DisplayStartHour: 6,
	DisplayHours:     16,
}

// Schedule is the active window, set from config at startup.
var Schedule = DefaultScheduleWindow

// InitSchedule applies any overrides from the loaded config.
func InitSchedule(c Config) {
	w := DefaultScheduleWindow
	if c.ScheduleStartHour > 0 {
		w.StartHour = c.ScheduleStartHour
	}
	if c.ScheduleEndHour > 0 {
		w.EndHour = c.ScheduleEndHour
	}
	if c.ScheduleMinSlotMin > 0 {
		w.MinSlotMinutes = c.ScheduleMinSlotMin
	}
	if c.ScheduleDisplayStart > 0 {
		w.DisplayStartHour = c.ScheduleDisplayStart
	}
	if c.ScheduleDisplayHours > 0 {
		w.DisplayHours = c.ScheduleDisplayHours
	}
	Schedule = w
}

// WindowStartMinutes returns the plannable window start in minutes from midnight.
func (w ScheduleWindow) WindowStartMinutes() int { return w.StartHour * 60 }

// WindowEndMinutes returns the plannable window end in minutes from midnight.
func (w ScheduleWindow) WindowEndMinutes() int { return w.EndHour * 60 }
