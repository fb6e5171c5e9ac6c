package services

import (
	"strings"

	"github.com/afrazja/bizanalysis-backend/models"
)

// SplitLines splits newline-joined list text into trimmed, non-empty items.
func SplitLines(text string) []string {
	items := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			items = append(items, line)
		}
	}
	return items
}

// containsEitherWay is the duplicate test: case-insensitive containment in
// either direction, so "Strong brand" swallows "strong brand recognition"
// and vice versa. Short items are deliberately not exempted.
func containsEitherWay(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// MergeLists appends suggested items that are not semantic duplicates of any
// existing item. Existing order is preserved; new items land at the end.
func MergeLists(existing, suggested []string) []string {
	merged := make([]string, 0, len(existing)+len(suggested))
	merged = append(merged, existing...)
	for _, item := range suggested {
		duplicate := false
		for _, have := range existing {
			if containsEitherWay(have, item) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			merged = append(merged, item)
		}
	}
	return merged
}

// MergeSuggestions is MergeLists over newline-joined textarea content.
func MergeSuggestions(existingText string, suggested []string) string {
	return strings.Join(MergeLists(SplitLines(existingText), suggested), "\n")
}

// MergeSWOT folds suggested items into each of the four lists.
func MergeSWOT(existing, suggested models.SWOTLists) models.SWOTLists {
	return models.SWOTLists{
		Strengths:     MergeLists(existing.Strengths, suggested.Strengths),
		Weaknesses:    MergeLists(existing.Weaknesses, suggested.Weaknesses),
		Opportunities: MergeLists(existing.Opportunities, suggested.Opportunities),
		Threats:       MergeLists(existing.Threats, suggested.Threats),
	}
}
