// Package recommend projects budget-filtered layout options into the
// display form shown to the user.
package recommend

import (
	"roomplanner/pkg/features"
	"roomplanner/pkg/layout"
)

// Suggestion is one recommendation entry: the option's description,
// its cost and its key features.
type Suggestion struct {
	OptionID    int      `json:"option_id"`
	Description string   `json:"description"`
	Cost        int      `json:"cost"`
	Features    []string `json:"features"`
}

// Report bundles all suggestions with the optional photo context. The
// context is descriptive only; it never influences which suggestions
// appear.
type Report struct {
	Suggestions []Suggestion      `json:"suggestions"`
	Context     *features.Summary `json:"context,omitempty"`
}

// Build produces one suggestion per filtered option, preserving order.
// An empty options slice yields an empty (not nil) suggestion list so
// callers can render "no suggestions" directly.
func Build(options []layout.Option, ctx *features.Summary) *Report {
	suggestions := make([]Suggestion, 0, len(options))
	for _, opt := range options {
		suggestions = append(suggestions, Suggestion{
			OptionID:    opt.ID,
			Description: opt.Description,
			Cost:        opt.Cost,
			Features:    opt.Features,
		})
	}
	return &Report{Suggestions: suggestions, Context: ctx}
}
