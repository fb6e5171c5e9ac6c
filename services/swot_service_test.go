package services

import (
	"testing"

	"github.com/afrazja/bizanalysis-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestMergeSuggestions(t *testing.T) {
	got := MergeSuggestions("Strong brand\nLow cost base", []string{"strong brand recognition", "New market"})
	assert.Equal(t, "Strong brand\nLow cost base\nNew market", got)
}

func TestMergeSuggestionsContainmentBothDirections(t *testing.T) {
	// Existing item contains the suggestion.
	got := MergeLists([]string{"Strong brand recognition"}, []string{"strong brand"})
	assert.Equal(t, []string{"Strong brand recognition"}, got)

	// Suggestion contains the existing item.
	got = MergeLists([]string{"Strong brand"}, []string{"strong brand recognition"})
	assert.Equal(t, []string{"Strong brand"}, got)
}

func TestMergeListsShortItemsAreNotExempted(t *testing.T) {
	// "AI" is a substring of the existing item, and the rule has no length
	// carve-out, so the short suggestion is dropped even though it may be a
	// distinct idea. Pinned: a change here is a behavior change.
	got := MergeLists([]string{"AI-driven churn in SMB"}, []string{"AI"})
	assert.Equal(t, []string{"AI-driven churn in SMB"}, got)
}

func TestMergeListsPreservesOrderAndAppends(t *testing.T) {
	got := MergeLists([]string{"b", "a"}, []string{"zz", "yy"})
	assert.Equal(t, []string{"b", "a", "zz", "yy"}, got)
}

func TestMergeListsEmptyExisting(t *testing.T) {
	got := MergeLists(nil, []string{"One", "Two"})
	assert.Equal(t, []string{"One", "Two"}, got)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitLines(" a \n\n b \n"))
	assert.Empty(t, SplitLines("\n \n"))
}

func TestMergeSWOT(t *testing.T) {
	existing := models.SWOTLists{
		Strengths:  []string{"Strong brand", "Low cost base"},
		Weaknesses: []string{"Churn in SMB"},
	}
	suggested := models.SWOTLists{
		Strengths:     []string{"strong brand recognition", "New market"},
		Opportunities: []string{"APAC demand growing"},
	}

	got := MergeSWOT(existing, suggested)
	assert.Equal(t, []string{"Strong brand", "Low cost base", "New market"}, got.Strengths)
	assert.Equal(t, []string{"Churn in SMB"}, got.Weaknesses)
	assert.Equal(t, []string{"APAC demand growing"}, got.Opportunities)
	assert.Empty(t, got.Threats)
}
