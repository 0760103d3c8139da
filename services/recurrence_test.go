package services

import (
	"testing"
	"time"

	"DayflowGo/models"
)

func date(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func TestMatchesDaily(t *testing.T) {
	rule := models.Recurrence{Type: models.RecurrenceDaily, AnchorDate: "2025-01-01"}
	for _, d := range []string{"2025-01-01", "2025-02-28", "2026-07-19"} {
		if !Matches(rule, date(d)) {
			t.Errorf("daily rule should match %s", d)
		}
	}
}

func TestMatchesWeeklyOnlyAnchorWeekday(t *testing.T) {
	// 2025-01-06 is a Monday.
	rule := models.Recurrence{Type: models.RecurrenceWeekly, AnchorDate: "2025-01-06"}

	if !Matches(rule, date("2025-01-13")) {
		t.Error("expected match one week after the anchor")
	}
	// Far future, a multiple of 7 days away.
	if !Matches(rule, date("2026-01-05")) {
		t.Error("expected match on a far-future Monday")
	}
	for _, d := range []string{"2025-01-07", "2025-01-12", "2025-01-10"} {
		if Matches(rule, date(d)) {
			t.Errorf("weekly Monday rule must not match %s", d)
		}
	}
}

func TestMatchesWeekdays(t *testing.T) {
	rule := models.Recurrence{Type: models.RecurrenceWeekdays, AnchorDate: "2025-01-01"}

	if !Matches(rule, date("2025-01-06")) { // Monday
		t.Error("expected match on Monday")
	}
	if !Matches(rule, date("2025-01-10")) { // Friday
		t.Error("expected match on Friday")
	}
	if Matches(rule, date("2025-01-11")) { // Saturday
		t.Error("must not match Saturday")
	}
	if Matches(rule, date("2025-01-12")) { // Sunday
		t.Error("must not match Sunday")
	}
}

func TestMatchesMonthlyNoClamping(t *testing.T) {
	rule := models.Recurrence{Type: models.RecurrenceMonthly, AnchorDate: "2025-01-31"}

	if !Matches(rule, date("2025-03-31")) {
		t.Error("expected match on the 31st of March")
	}
	// April has 30 days; February 28 in 2025. Neither month ever matches.
	aprils := []string{"2025-04-30", "2025-04-01"}
	febs := []string{"2025-02-28", "2025-02-01"}
	for _, d := range append(aprils, febs...) {
		if Matches(rule, date(d)) {
			t.Errorf("monthly rule anchored on the 31st must not match %s", d)
		}
	}
}

func TestMatchesCustomDays(t *testing.T) {
	// Sunday=0; rule fires Tuesday and Thursday.
	rule := models.Recurrence{Type: models.RecurrenceCustom, Days: []int{2, 4}, AnchorDate: "2025-01-01"}

	if !Matches(rule, date("2025-01-07")) { // Tuesday
		t.Error("expected match on Tuesday")
	}
	if !Matches(rule, date("2025-01-09")) { // Thursday
		t.Error("expected match on Thursday")
	}
	if Matches(rule, date("2025-01-08")) { // Wednesday
		t.Error("must not match Wednesday")
	}
}

func TestMatchesCustomEmptySetNeverMatches(t *testing.T) {
	empty := models.Recurrence{Type: models.RecurrenceCustom, AnchorDate: "2025-01-01"}
	d := date("2025-01-01")
	for i := 0; i < 14; i++ {
		if Matches(empty, d.AddDate(0, 0, i)) {
			t.Fatalf("custom rule with no days matched %s", d.AddDate(0, 0, i))
		}
	}
}

func TestMatchesIsPure(t *testing.T) {
	rule := models.Recurrence{Type: models.RecurrenceWeekly, AnchorDate: "2025-01-06"}
	d := date("2025-06-02")
	first := Matches(rule, d)
	for i := 0; i < 10; i++ {
		if Matches(rule, d) != first {
			t.Fatal("Matches changed its answer for identical inputs")
		}
	}
}

func TestNextOccurrenceFindsNextMatch(t *testing.T) {
	// Weekly Monday anchor; asking on a Wednesday finds the coming Monday.
	rule := models.Recurrence{Type: models.RecurrenceWeekly, AnchorDate: "2025-01-06"}
	next := NextOccurrence(rule, date("2025-01-08"))
	if next == nil {
		t.Fatal("expected a next occurrence")
	}
	if got := next.Format(models.DateLayout); got != "2025-01-13" {
		t.Errorf("next occurrence = %s, want 2025-01-13", got)
	}
}

func TestNextOccurrenceIsStrictlyAfter(t *testing.T) {
	rule := models.Recurrence{Type: models.RecurrenceDaily, AnchorDate: "2025-01-01"}
	next := NextOccurrence(rule, date("2025-01-10"))
	if next == nil {
		t.Fatal("expected a next occurrence")
	}
	if got := next.Format(models.DateLayout); got != "2025-01-11" {
		t.Errorf("next occurrence = %s, want 2025-01-11 (strictly after)", got)
	}
}

func TestNextOccurrenceIncludesEndDateItself(t *testing.T) {
	rule := models.Recurrence{
		Type:       models.RecurrenceDaily,
		AnchorDate: "2025-03-01",
		EndDate:    strPtr("2025-03-11"),
	}
	// A mid-day "now" must not push the end-date occurrence out of reach.
	afternoon := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	next := NextOccurrence(rule, afternoon)
	if next == nil {
		t.Fatal("expected the occurrence on the end date itself")
	}
	if got := next.Format(models.DateLayout); got != "2025-03-11" {
		t.Errorf("next occurrence = %s, want 2025-03-11", got)
	}
}

func TestNextOccurrenceStopsAtEndDate(t *testing.T) {
	rule := models.Recurrence{
		Type:       models.RecurrenceWeekly,
		AnchorDate: "2025-01-06",
		EndDate:    strPtr("2025-01-10"),
	}
	if next := NextOccurrence(rule, date("2025-01-08")); next != nil {
		t.Errorf("expected nil past the end date, got %s", next.Format(models.DateLayout))
	}
}

func TestNextOccurrenceExhaustsHorizon(t *testing.T) {
	rule := models.Recurrence{Type: models.RecurrenceCustom, AnchorDate: "2025-01-01"}
	if next := NextOccurrence(rule, date("2025-01-01")); next != nil {
		t.Errorf("empty custom rule should never occur, got %s", next.Format(models.DateLayout))
	}
}
