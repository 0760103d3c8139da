package services

import (
	"DayflowGo/models"
)

// taskWindow returns a fixed-time task's occupied interval in minutes from
// midnight, half-open. ok is false for tasks without a parseable fixed time.
func taskWindow(task models.Task) (start, end int, ok bool) {
	if task.FixedTime == nil {
		return 0, 0, false
	}
	start, ok = parseClock(*task.FixedTime)
	if !ok {
		return 0, 0, false
	}
	return start, start + task.EstimateOrDefault(), true
}

// eventWindow returns an event's occupied interval; a missing end time means
// one hour.
func eventWindow(event models.Event) (start, end int, ok bool) {
	start, ok = parseClock(event.StartTime)
	if !ok {
		return 0, 0, false
	}
	end = start + models.DefaultEventMinutes
	if event.EndTime != nil {
		if e, ok := parseClock(*event.EndTime); ok {
			end = e
		}
	}
	return start, end, true
}

// Conflicts reports whether a fixed-time task overlaps an event. Intervals
// are half-open, so touching endpoints do not conflict.
func Conflicts(task models.Task, event models.Event) bool {
	ts, te, ok := taskWindow(task)
	if !ok {
		return false
	}
	es, ee, ok := eventWindow(event)
	if !ok {
		return false
	}
	return ts < ee && te > es
}

// FindConflicts tests every open fixed-time task against the day's events
// and records the first conflicting event per task.
func FindConflicts(tasks []models.Task, events []models.Event) []models.Conflict {
	var conflicts []models.Conflict
	for _, task := range tasks {
		if task.IsCompleted || task.FixedTime == nil {
			continue
		}
		for _, event := range events {
			if Conflicts(task, event) {
				conflicts = append(conflicts, models.Conflict{Task: task, ConflictingEvent: event})
				break
			}
		}
	}
	return conflicts
}
