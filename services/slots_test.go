package services

import (
	"testing"

	"DayflowGo/config"
	"DayflowGo/models"
)

func testScheduler() *Scheduler {
	return &Scheduler{Window: config.DefaultScheduleWindow}
}

func TestFindAvailableSlotsEmptyDay(t *testing.T) {
	slots := testScheduler().FindAvailableSlots(nil, nil)
	if len(slots) != 1 {
		t.Fatalf("expected a single slot, got %d", len(slots))
	}
	got := slots[0]
	if got.StartTime != "06:00" || got.EndTime != "22:00" || got.DurationMinutes != 960 {
		t.Errorf("empty day slot = %+v, want 06:00-22:00 (960 min)", got)
	}
}

func TestFindAvailableSlotsSplitsAroundEvents(t *testing.T) {
	events := []models.Event{
		timedEvent("09:00", "10:00"),
		timedEvent("13:00", "14:30"),
	}
	slots := testScheduler().FindAvailableSlots(events, nil)

	want := []models.Slot{
		{StartTime: "06:00", EndTime: "09:00", DurationMinutes: 180},
		{StartTime: "10:00", EndTime: "13:00", DurationMinutes: 180},
		{StartTime: "14:30", EndTime: "22:00", DurationMinutes: 450},
	}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d: %+v", len(slots), len(want), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d = %+v, want %+v", i, slots[i], want[i])
		}
	}
}

func TestFindAvailableSlotsDropsGapsBelowMinimum(t *testing.T) {
	// 09:00-09:20 gap between the two events is under 30 minutes.
	events := []models.Event{
		timedEvent("06:00", "09:00"),
		timedEvent("09:20", "22:00"),
	}
	slots := testScheduler().FindAvailableSlots(events, nil)
	if len(slots) != 0 {
		t.Errorf("expected no slots, got %+v", slots)
	}
}

func TestFindAvailableSlotsCountsFixedTasks(t *testing.T) {
	tasks := []models.Task{fixedTask("06:00", 600)} // 06:00-16:00
	slots := testScheduler().FindAvailableSlots(nil, tasks)
	if len(slots) != 1 {
		t.Fatalf("expected a single slot, got %d", len(slots))
	}
	if slots[0].StartTime != "16:00" || slots[0].DurationMinutes != 360 {
		t.Errorf("slot = %+v, want 16:00-22:00", slots[0])
	}
}

func TestFindAvailableSlotsMergesOverlappingBusyTime(t *testing.T) {
	events := []models.Event{
		timedEvent("06:00", "12:00"),
		timedEvent("11:00", "13:00"),
	}
	slots := testScheduler().FindAvailableSlots(events, nil)
	if len(slots) != 1 {
		t.Fatalf("expected a single slot, got %+v", slots)
	}
	if slots[0].StartTime != "13:00" || slots[0].EndTime != "22:00" {
		t.Errorf("slot = %+v, want 13:00-22:00", slots[0])
	}
}

func TestFindAvailableSlotsClampsToWindowEnd(t *testing.T) {
	// An event running past 22:00 must not produce a late slot.
	events := []models.Event{timedEvent("21:00", "23:00")}
	slots := testScheduler().FindAvailableSlots(events, nil)
	if len(slots) != 1 {
		t.Fatalf("expected a single slot, got %+v", slots)
	}
	if slots[0].EndTime != "21:00" {
		t.Errorf("slot end = %s, want 21:00", slots[0].EndTime)
	}
}

func TestFillSlotsPartialUse(t *testing.T) {
	slots := []models.Slot{{StartTime: "09:00", EndTime: "09:45", DurationMinutes: 45}}
	parts, shortfall := testScheduler().FillSlots(slots, 60, "2025-03-10")

	if len(parts) != 1 {
		t.Fatalf("expected one part, got %+v", parts)
	}
	if parts[0].StartTime != "09:00" || parts[0].DurationMinutes != 45 || parts[0].Date != "2025-03-10" {
		t.Errorf("part = %+v, want 45 min at 09:00 on 2025-03-10", parts[0])
	}
	if shortfall != 15 {
		t.Errorf("shortfall = %d, want 15", shortfall)
	}
}

func TestFillSlotsSkipsTinyFragment(t *testing.T) {
	slots := []models.Slot{
		{StartTime: "09:00", EndTime: "09:20", DurationMinutes: 20},
		{StartTime: "11:00", EndTime: "13:00", DurationMinutes: 120},
	}
	parts, shortfall := testScheduler().FillSlots(slots, 100, "2025-03-10")

	if len(parts) != 1 {
		t.Fatalf("expected one part (20-min slot skipped), got %+v", parts)
	}
	if parts[0].StartTime != "11:00" || parts[0].DurationMinutes != 100 {
		t.Errorf("part = %+v, want 100 min at 11:00", parts[0])
	}
	if shortfall != 0 {
		t.Errorf("shortfall = %d, want 0", shortfall)
	}
}

func TestFillSlotsAcceptsSmallTail(t *testing.T) {
	// With only 20 minutes left, a 20-minute slot is allowed.
	slots := []models.Slot{
		{StartTime: "09:00", EndTime: "10:00", DurationMinutes: 60},
		{StartTime: "12:00", EndTime: "12:20", DurationMinutes: 20},
	}
	parts, shortfall := testScheduler().FillSlots(slots, 80, "2025-03-10")

	if len(parts) != 2 {
		t.Fatalf("expected two parts, got %+v", parts)
	}
	if parts[1].StartTime != "12:00" || parts[1].DurationMinutes != 20 {
		t.Errorf("tail part = %+v, want 20 min at 12:00", parts[1])
	}
	if shortfall != 0 {
		t.Errorf("shortfall = %d, want 0", shortfall)
	}
}

func TestSumSlotMinutes(t *testing.T) {
	slots := []models.Slot{
		{DurationMinutes: 40},
		{DurationMinutes: 30},
	}
	if got := SumSlotMinutes(slots); got != 70 {
		t.Errorf("SumSlotMinutes = %d, want 70", got)
	}
	if got := SumSlotMinutes(nil); got != 0 {
		t.Errorf("SumSlotMinutes(nil) = %d, want 0", got)
	}
}
