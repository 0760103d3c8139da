package services

import (
	"strings"

	"DayflowGo/models"

	"golang.org/x/text/cases"
)

// folder performs Unicode case folding, so "Straße" and "STRASSE" compare
// equal where a plain ToLower would miss.
var folder = cases.Fold()

// NormalizeText trims and case-folds a string for duplicate comparison.
func NormalizeText(s string) string {
	return folder.String(strings.TrimSpace(s))
}

// SameText reports whether two strings are equal after normalization.
func SameText(a, b string) bool {
	return NormalizeText(a) == NormalizeText(b)
}

// IsDuplicateTask reports whether a task title already exists in the list,
// compared after normalization. Used when merging externally-extracted items
// so re-imports do not pile up.
func IsDuplicateTask(title string, tasks []models.Task) bool {
	for _, t := range tasks {
		if SameText(title, t.Title) {
			return true
		}
	}
	return false
}

// IsDuplicateEvent reports whether the candidate duplicates an existing
// event: a normalized exact title match and overlapping time ranges, with
// the usual one-hour default for a missing end time.
func IsDuplicateEvent(candidate models.Event, existing []models.Event) bool {
	cs, ce, ok := eventWindow(candidate)
	if !ok {
		return false
	}
	for _, ev := range existing {
		if !SameText(candidate.Title, ev.Title) {
			continue
		}
		es, ee, ok := eventWindow(ev)
		if !ok {
			continue
		}
		if cs < ee && ce > es {
			return true
		}
	}
	return false
}

// KeepFirstByTask de-duplicates AI proposal items by task id, keeping the
// first occurrence. The proposal is otherwise passed through untouched.
func KeepFirstByTask(items []models.ProposalItem) []models.ProposalItem {
	seen := make(map[string]bool, len(items))
	out := make([]models.ProposalItem, 0, len(items))
	for _, item := range items {
		if seen[item.TaskID] {
			continue
		}
		seen[item.TaskID] = true
		out = append(out, item)
	}
	return out
}
