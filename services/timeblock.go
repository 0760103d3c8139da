package services

import (
	"sort"
	"time"

	"DayflowGo/models"
)

// BlockActiveOn reports whether a time block applies on the given date.
// Blocks use the same rule shapes as recurring tasks, matched against the
// block's own anchor date.
func BlockActiveOn(block models.TimeBlock, date time.Time) bool {
	if !block.IsActive {
		return false
	}
	return Matches(block.Recurrence, date)
}

// ActiveBlocksFor filters the blocks that apply on a date, applies any
// per-date exceptions (a skip removes the block, an override replaces the
// bounds it sets), and returns them sorted by start time.
func ActiveBlocksFor(blocks []models.TimeBlock, exceptions []models.TimeBlockException, date time.Time) []models.TimeBlock {
	day := dateString(date)

	excByBlock := make(map[string]models.TimeBlockException)
	for _, exc := range exceptions {
		if exc.Date == day {
			excByBlock[exc.TimeBlockID] = exc
		}
	}

	active := make([]models.TimeBlock, 0, len(blocks))
	for _, b := range blocks {
		if !BlockActiveOn(b, date) {
			continue
		}
		if exc, ok := excByBlock[b.ID]; ok {
			if exc.Skip {
				continue
			}
			if exc.StartTime != nil {
				b.StartTime = *exc.StartTime
			}
			if exc.EndTime != nil {
				b.EndTime = *exc.EndTime
			}
		}
		active = append(active, b)
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].StartTime < active[j].StartTime
	})
	return active
}

// MatchingBlocks returns the blocks sharing at least one tag with the task,
// preserving input order. A task without tags matches nothing.
func MatchingBlocks(task models.Task, blocks []models.TimeBlock) []models.TimeBlock {
	if len(task.Tags) == 0 {
		return nil
	}
	var matched []models.TimeBlock
	for _, b := range blocks {
		for _, tag := range b.Tags {
			if task.HasTag(tag) {
				matched = append(matched, b)
				break
			}
		}
	}
	return matched
}

// FirstAvailableBlock picks the earliest matching block that has not ended
// yet. Zero-padded "HH:MM" strings compare correctly lexicographically.
func FirstAvailableBlock(task models.Task, blocks []models.TimeBlock, now string) *models.TimeBlock {
	matched := MatchingBlocks(task, blocks)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].StartTime < matched[j].StartTime
	})
	for i := range matched {
		if matched[i].EndTime > now {
			return &matched[i]
		}
	}
	return nil
}
