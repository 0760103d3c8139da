package services

import (
	"testing"

	"DayflowGo/models"
)

func intPtr(i int) *int { return &i }

func fixedTask(start string, minutes int) models.Task {
	return models.Task{Title: "task", FixedTime: &start, EstimatedMinutes: intPtr(minutes)}
}

func timedEvent(start, end string) models.Event {
	return models.Event{Title: "event", StartTime: start, EndTime: &end}
}

func TestConflictsAdjacentIntervalsDoNotTouch(t *testing.T) {
	task := fixedTask("10:00", 60)
	event := timedEvent("11:00", "12:00")
	if Conflicts(task, event) {
		t.Error("adjacent intervals must not conflict")
	}
}

func TestConflictsOverlapping(t *testing.T) {
	task := fixedTask("10:00", 60)
	event := timedEvent("10:30", "11:30")
	if !Conflicts(task, event) {
		t.Error("overlapping intervals must conflict")
	}
}

func TestConflictsDefaultDurations(t *testing.T) {
	// Task without estimate occupies 30 minutes, event without end one hour.
	start := "10:00"
	task := models.Task{FixedTime: &start}
	event := models.Event{StartTime: "10:15"}
	if !Conflicts(task, event) {
		t.Error("expected conflict with default durations")
	}

	event2 := models.Event{StartTime: "10:30"}
	if Conflicts(task, event2) {
		t.Error("task ends exactly when the event starts; no conflict")
	}
}

func TestConflictsRequiresFixedTime(t *testing.T) {
	task := models.Task{EstimatedMinutes: intPtr(60)}
	event := timedEvent("00:00", "23:59")
	if Conflicts(task, event) {
		t.Error("a task without a fixed time cannot conflict")
	}
}

func TestFindConflictsFirstEventOnlyAndSkipsDone(t *testing.T) {
	tasks := []models.Task{
		fixedTask("10:00", 120),
		fixedTask("10:00", 60),
	}
	tasks[1].IsCompleted = true
	events := []models.Event{
		timedEvent("10:30", "11:00"),
		timedEvent("11:00", "12:00"),
	}

	conflicts := FindConflicts(tasks, events)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	if conflicts[0].ConflictingEvent.StartTime != "10:30" {
		t.Errorf("expected the first conflicting event to be recorded, got %s",
			conflicts[0].ConflictingEvent.StartTime)
	}
}
