package models

// SWOTLists is the payload of a SWOT analysis: four ordered, user-editable
// free-text lists.
type SWOTLists struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// SuggestSWOTRequest carries the analysis context the suggestion service
// builds from.
type SuggestSWOTRequest struct {
	Company  string          `json:"company" example:"Acme"`
	Industry string          `json:"industry" example:"HR software"`
	Markets  []MarketIn      `json:"markets"`
	Products []ProductCreate `json:"products"`
	Points   []BCGPoint      `json:"points"`
}

// MergeSWOTRequest asks for suggested items folded into existing lists
// without semantic duplicates.
type MergeSWOTRequest struct {
	Existing  SWOTLists `json:"existing"`
	Suggested SWOTLists `json:"suggested"`
}
