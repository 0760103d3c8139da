package services

import (
	"errors"
	"strings"
	"testing"

	"DayflowGo/models"
)

// busyExcept returns events occupying the whole working window except the
// given free gaps, so FindAvailableSlots yields exactly those gaps.
func busyExcept(gaps ...[2]string) []models.Event {
	events := make([]models.Event, 0, len(gaps)+1)
	cursor := "06:00"
	for _, g := range gaps {
		if g[0] > cursor {
			events = append(events, timedEvent(cursor, g[0]))
		}
		cursor = g[1]
	}
	if cursor < "22:00" {
		events = append(events, timedEvent(cursor, "22:00"))
	}
	return events
}

func TestProposeSplitNoDuration(t *testing.T) {
	task := models.Task{Title: "vague"}
	proposal := testScheduler().ProposeSplit(task, models.Snapshot{Date: "2025-03-10"}, models.Snapshot{Date: "2025-03-11"})
	if proposal.CanSplit {
		t.Error("a task without an estimate cannot be split")
	}
	if proposal.Reason != "no duration" {
		t.Errorf("reason = %q, want %q", proposal.Reason, "no duration")
	}
}

func TestProposeSplitFitsSingleSlot(t *testing.T) {
	task := fixedlessTask(60)
	today := models.Snapshot{Date: "2025-03-10"}
	proposal := testScheduler().ProposeSplit(task, today, models.Snapshot{Date: "2025-03-11"})

	if proposal.CanSplit {
		t.Error("a task fitting one slot must not be split")
	}
	if proposal.SuggestedSlot == nil {
		t.Fatal("expected a suggested slot")
	}
	if proposal.SuggestedSlot.StartTime != "06:00" {
		t.Errorf("suggested slot starts %s, want 06:00", proposal.SuggestedSlot.StartTime)
	}
}

func TestProposeSplitOverflowToNextDay(t *testing.T) {
	task := fixedlessTask(90)
	today := models.Snapshot{
		Date:   "2025-03-10",
		Events: busyExcept([2]string{"09:00", "09:40"}, [2]string{"14:00", "14:30"}),
	}
	tomorrow := models.Snapshot{Date: "2025-03-11"}

	proposal := testScheduler().ProposeSplit(task, today, tomorrow)
	if !proposal.CanSplit {
		t.Fatalf("expected a split, got reason %q", proposal.Reason)
	}
	if !proposal.OverflowToNextDay {
		t.Error("expected overflow into the next day")
	}
	if len(proposal.Parts) != 3 {
		t.Fatalf("expected 3 parts, got %+v", proposal.Parts)
	}

	p := proposal.Parts
	if p[0].StartTime != "09:00" || p[0].DurationMinutes != 40 || p[0].Date != "2025-03-10" {
		t.Errorf("part 0 = %+v, want 40 min at 09:00 today", p[0])
	}
	if p[1].StartTime != "14:00" || p[1].DurationMinutes != 30 || p[1].Date != "2025-03-10" {
		t.Errorf("part 1 = %+v, want 30 min at 14:00 today", p[1])
	}
	if p[2].DurationMinutes != 20 || p[2].Date != "2025-03-11" {
		t.Errorf("part 2 = %+v, want the 20-min remainder tomorrow", p[2])
	}

	total := 0
	for _, part := range p {
		total += part.DurationMinutes
	}
	if total != 90 {
		t.Errorf("parts sum to %d min, want 90", total)
	}
}

func TestProposeSplitInsufficientAcrossBothDays(t *testing.T) {
	task := fixedlessTask(90)
	today := models.Snapshot{
		Date:   "2025-03-10",
		Events: busyExcept([2]string{"09:00", "09:40"}, [2]string{"14:00", "14:30"}),
	}
	tomorrow := models.Snapshot{
		Date:   "2025-03-11",
		Events: busyExcept(), // fully booked
	}

	proposal := testScheduler().ProposeSplit(task, today, tomorrow)
	if proposal.CanSplit {
		t.Error("expected refusal when both days lack capacity")
	}
	if !strings.Contains(proposal.Reason, "90 min needed") {
		t.Errorf("reason %q should state the required duration", proposal.Reason)
	}
	if !strings.Contains(proposal.Reason, "70+0") {
		t.Errorf("reason %q should state the per-day availability", proposal.Reason)
	}
}

func TestProposeSplitSameDay(t *testing.T) {
	task := fixedlessTask(100)
	today := models.Snapshot{
		Date:   "2025-03-10",
		Events: busyExcept([2]string{"09:00", "10:00"}, [2]string{"14:00", "15:00"}),
	}

	proposal := testScheduler().ProposeSplit(task, today, models.Snapshot{Date: "2025-03-11"})
	if !proposal.CanSplit {
		t.Fatalf("expected a same-day split, got reason %q", proposal.Reason)
	}
	if proposal.OverflowToNextDay {
		t.Error("no overflow expected; today holds the whole task")
	}
	if len(proposal.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %+v", proposal.Parts)
	}
	if proposal.Parts[0].DurationMinutes != 60 || proposal.Parts[1].DurationMinutes != 40 {
		t.Errorf("parts = %+v, want 60 then 40 minutes", proposal.Parts)
	}
}

func TestProposeSplitIgnoresSubjectTaskOwnPlacement(t *testing.T) {
	// The subject sits in the snapshot at 09:00 filling the day's only gap.
	// Its own window must not count as occupied when splitting it.
	task := fixedlessTask(100)
	task.FixedTime = strPtr("09:00")
	today := models.Snapshot{
		Date:   "2025-03-10",
		Events: busyExcept([2]string{"09:00", "10:40"}),
		Tasks:  []models.Task{task},
	}

	proposal := testScheduler().ProposeSplit(task, today, models.Snapshot{Date: "2025-03-11"})
	if proposal.CanSplit {
		t.Fatalf("the task fits its own slot; no split expected, got %+v", proposal)
	}
	if proposal.SuggestedSlot == nil || proposal.SuggestedSlot.StartTime != "09:00" {
		t.Errorf("suggested slot = %+v, want the freed 09:00 gap", proposal.SuggestedSlot)
	}
}

func fixedlessTask(minutes int) models.Task {
	return models.Task{ID: "t1", UserID: "u1", Title: "deep work", EstimatedMinutes: intPtr(minutes)}
}

func TestSplitTaskCreatesParts(t *testing.T) {
	fixed := "13:00"
	task := fixedlessTask(90)
	task.FixedTime = &fixed
	task.Tags = []string{"focus"}

	parts := []models.SplitPart{
		{StartTime: "09:00", DurationMinutes: 40, Date: "2025-03-10"},
		{StartTime: "14:00", DurationMinutes: 50, Date: "2025-03-11"},
	}
	children, err := SplitTask(&task, parts)
	if err != nil {
		t.Fatalf("SplitTask: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}

	if children[0].Title != "deep work (part 1)" || children[1].Title != "deep work (part 2)" {
		t.Errorf("child titles = %q, %q", children[0].Title, children[1].Title)
	}
	if children[0].ParentTaskID == nil || *children[0].ParentTaskID != "t1" {
		t.Error("children must reference the parent")
	}
	if children[1].DueDate == nil || *children[1].DueDate != "2025-03-11" {
		t.Error("each part carries its own date")
	}
	if children[0].FixedTime == nil || *children[0].FixedTime != "09:00" {
		t.Error("each part carries its own fixed time")
	}
	if !children[0].IsPart || children[1].PartNumber != 2 {
		t.Error("part markers not set")
	}
	if task.FixedTime != nil {
		t.Error("parent fixed time must be cleared after splitting")
	}
}

func TestSplitTaskRejectsBadInput(t *testing.T) {
	task := fixedlessTask(60)

	if _, err := SplitTask(&task, nil); !errors.Is(err, ErrNoParts) {
		t.Errorf("empty parts: err = %v, want ErrNoParts", err)
	}

	bad := []models.SplitPart{{StartTime: "", DurationMinutes: 30, Date: "2025-03-10"}}
	if _, err := SplitTask(&task, bad); !errors.Is(err, ErrInvalidPart) {
		t.Errorf("missing start time: err = %v, want ErrInvalidPart", err)
	}

	task.Parts = []models.Task{{ID: "c1"}}
	ok := []models.SplitPart{{StartTime: "09:00", DurationMinutes: 30, Date: "2025-03-10"}}
	if _, err := SplitTask(&task, ok); !errors.Is(err, ErrAlreadySplit) {
		t.Errorf("already split: err = %v, want ErrAlreadySplit", err)
	}
}

func TestMergeSubtasksSumsDurations(t *testing.T) {
	parent := fixedlessTask(90)
	parent.Parts = []models.Task{
		{ID: "c1", EstimatedMinutes: intPtr(30)},
		{ID: "c2", EstimatedMinutes: intPtr(45)},
	}

	detached := MergeSubtasks(&parent)
	if len(detached) != 2 {
		t.Fatalf("expected 2 detached parts, got %d", len(detached))
	}
	if parent.EstimatedMinutes == nil || *parent.EstimatedMinutes != 75 {
		t.Errorf("parent estimate = %v, want 75", parent.EstimatedMinutes)
	}
	if len(parent.Parts) != 0 {
		t.Error("parent must hold no parts after merging")
	}
}

func TestMergeSubtasksNoPartsIsNoop(t *testing.T) {
	parent := fixedlessTask(90)
	if detached := MergeSubtasks(&parent); detached != nil {
		t.Errorf("expected nil for a task without parts, got %+v", detached)
	}
	if *parent.EstimatedMinutes != 90 {
		t.Error("estimate must be untouched")
	}
}
