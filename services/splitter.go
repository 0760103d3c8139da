package services

import (
	"errors"
	"fmt"
	"time"

	"DayflowGo/models"

	"github.com/google/uuid"
)

// Splitter errors. These are caller mistakes, not scheduling outcomes;
// "cannot split" outcomes are returned as a SplitProposal instead.
var (
	ErrNoParts      = errors.New("split requires at least one part")
	ErrInvalidPart  = errors.New("split part missing start time, duration or date")
	ErrAlreadySplit = errors.New("task already has parts")
)

// ProposeSplit works out how to place an oversized task. It never errors:
// the outcome is always a structured proposal the caller can present.
//
//   - No usable duration: cannot split.
//   - A single free slot already fits the task: cannot split, with the slot
//     suggested so the caller just assigns the fixed time there.
//   - Not enough free time today: fill today fully, then spill the rest into
//     tomorrow's slots; if the two days together still fall short, cannot
//     split with an availability summary.
//   - Enough time today but no single slot big enough: split across today.
func (s *Scheduler) ProposeSplit(task models.Task, today models.Snapshot, tomorrow models.Snapshot) models.SplitProposal {
	if task.EstimatedMinutes == nil || *task.EstimatedMinutes <= 0 {
		return models.SplitProposal{CanSplit: false, Reason: "no duration"}
	}
	need := *task.EstimatedMinutes

	// The subject task may already sit in the snapshot with a fixed time;
	// its own placement must not occupy the slots it is being split into.
	todaySlots := s.FindAvailableSlots(today.Events, otherTasks(today.Tasks, task.ID))
	for i := range todaySlots {
		if todaySlots[i].DurationMinutes >= need {
			return models.SplitProposal{
				CanSplit:      false,
				Reason:        "fits in a single slot",
				SuggestedSlot: &todaySlots[i],
			}
		}
	}

	totalToday := SumSlotMinutes(todaySlots)
	if totalToday < need {
		tomorrowSlots := s.FindAvailableSlots(tomorrow.Events, otherTasks(tomorrow.Tasks, task.ID))
		totalTomorrow := SumSlotMinutes(tomorrowSlots)

		parts, shortfall := s.FillSlots(todaySlots, need, today.Date)
		if shortfall > 0 {
			more, rest := s.FillSlots(tomorrowSlots, shortfall, tomorrow.Date)
			parts = append(parts, more...)
			shortfall = rest
		}
		if shortfall > 0 {
			return models.SplitProposal{
				CanSplit: false,
				Reason:   fmt.Sprintf("%d min needed vs %d+%d min available", need, totalToday, totalTomorrow),
			}
		}
		return models.SplitProposal{CanSplit: true, OverflowToNextDay: true, Parts: parts}
	}

	parts, _ := s.FillSlots(todaySlots, need, today.Date)
	return models.SplitProposal{CanSplit: true, Parts: parts}
}

// otherTasks drops the task with the given id from a snapshot's task list.
func otherTasks(tasks []models.Task, id string) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if id != "" && t.ID == id {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SplitTask materializes the proposed parts as child tasks. Each part gets
// its own fixed time, duration and date; the parent's fixed time is cleared
// since the parts now carry the times. The children's DayID is left for the
// caller to bind to each part's daily container.
func SplitTask(task *models.Task, parts []models.SplitPart) ([]models.Task, error) {
	if len(parts) == 0 {
		return nil, ErrNoParts
	}
	if task.HasSubtasks() {
		return nil, ErrAlreadySplit
	}
	for _, p := range parts {
		if p.StartTime == "" || p.DurationMinutes <= 0 || p.Date == "" {
			return nil, ErrInvalidPart
		}
	}

	now := time.Now().UTC()
	children := make([]models.Task, 0, len(parts))
	for i, p := range parts {
		duration := p.DurationMinutes
		start := p.StartTime
		date := p.Date
		children = append(children, models.Task{
			ID:               uuid.New().String(),
			UserID:           task.UserID,
			Title:            fmt.Sprintf("%s (part %d)", task.Title, i+1),
			Category:         task.Category,
			DueDate:          &date,
			FixedTime:        &start,
			EstimatedMinutes: &duration,
			Tags:             append([]string(nil), task.Tags...),
			ParentTaskID:     &task.ID,
			IsPart:           true,
			PartNumber:       i + 1,
			LastModified:     now,
		})
	}

	task.FixedTime = nil
	task.Parts = children
	task.LastModified = now
	return children, nil
}

// MergeSubtasks folds a task's parts back into it: the parent's estimate
// becomes the sum of the parts' durations (when positive) and the parts are
// detached. Returns the detached parts for the caller to discard; a task
// without parts is a no-op.
func MergeSubtasks(parent *models.Task) []models.Task {
	if len(parent.Parts) == 0 {
		return nil
	}

	total := 0
	for _, p := range parent.Parts {
		if p.EstimatedMinutes != nil {
			total += *p.EstimatedMinutes
		}
	}
	if total > 0 {
		parent.EstimatedMinutes = &total
	}

	detached := parent.Parts
	parent.Parts = nil
	parent.LastModified = time.Now().UTC()
	return detached
}
