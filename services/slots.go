package services

import (
	"sort"

	"DayflowGo/config"
	"DayflowGo/models"
)

// Scheduler computes free slots and split placements within the configured
// schedule window.
type Scheduler struct {
	Window config.ScheduleWindow
}

// NewScheduler returns a scheduler bound to the active schedule window.
func NewScheduler() *Scheduler {
	return &Scheduler{Window: config.Schedule}
}

type interval struct {
	start int
	end   int
}

// FindAvailableSlots sweeps the working window and returns the free gaps of
// at least the minimum slot length, ordered by start time. Events and
// fixed-time tasks both occupy time; an event without an end time occupies
// one hour, a task without an estimate occupies 30 minutes.
func (s *Scheduler) FindAvailableSlots(events []models.Event, plannedTasks []models.Task) []models.Slot {
	occupied := make([]interval, 0, len(events)+len(plannedTasks))

	for _, ev := range events {
		if start, end, ok := eventWindow(ev); ok {
			occupied = append(occupied, interval{start, end})
		}
	}
	for _, task := range plannedTasks {
		if start, end, ok := taskWindow(task); ok {
			occupied = append(occupied, interval{start, end})
		}
	}

	sort.Slice(occupied, func(i, j int) bool { return occupied[i].start < occupied[j].start })

	windowStart := s.Window.WindowStartMinutes()
	windowEnd := s.Window.WindowEndMinutes()

	slots := make([]models.Slot, 0)
	cursor := windowStart

	emit := func(from, to int) {
		if to > windowEnd {
			to = windowEnd
		}
		if to-from >= s.Window.MinSlotMinutes {
			slots = append(slots, models.Slot{
				StartTime:       formatClock(from),
				EndTime:         formatClock(to),
				DurationMinutes: to - from,
			})
		}
	}

	for _, iv := range occupied {
		if cursor >= windowEnd {
			break
		}
		if iv.start > cursor {
			emit(cursor, iv.start)
		}
		if iv.end > cursor {
			cursor = iv.end
		}
	}
	if cursor < windowEnd {
		emit(cursor, windowEnd)
	}

	return slots
}

// FillSlots greedily assigns the remaining duration left-to-right across the
// given slots (already time-ordered) for the given date. A slot that would
// only take a fragment shorter than the minimum while a full minimum still
// remains is skipped rather than stranding a sliver. Returns the parts and
// the unplaced shortfall; shortfall zero means the duration was fully placed.
func (s *Scheduler) FillSlots(slots []models.Slot, remaining int, date string) ([]models.SplitPart, int) {
	var parts []models.SplitPart
	for _, slot := range slots {
		if remaining <= 0 {
			break
		}
		use := slot.DurationMinutes
		if use > remaining {
			use = remaining
		}
		if use < s.Window.MinSlotMinutes && remaining >= s.Window.MinSlotMinutes {
			continue
		}
		parts = append(parts, models.SplitPart{
			StartTime:       slot.StartTime,
			DurationMinutes: use,
			Date:            date,
		})
		remaining -= use
	}
	if remaining < 0 {
		remaining = 0
	}
	return parts, remaining
}

// SumSlotMinutes totals the free time across a slot list.
func SumSlotMinutes(slots []models.Slot) int {
	total := 0
	for _, s := range slots {
		total += s.DurationMinutes
	}
	return total
}
