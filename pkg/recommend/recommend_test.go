package recommend

import (
	"testing"

	"roomplanner/pkg/features"
	"roomplanner/pkg/layout"
)

func TestBuildProjectsOptions(t *testing.T) {
	options := []layout.Option{
		{ID: 2, Cost: 2400, Description: "first", Features: []string{"a", "b"}},
		{ID: 3, Cost: 3100, Description: "second", Features: []string{"c"}},
	}

	report := Build(options, nil)
	if len(report.Suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(report.Suggestions))
	}

	first := report.Suggestions[0]
	if first.OptionID != 2 || first.Cost != 2400 || first.Description != "first" {
		t.Errorf("first suggestion = %+v", first)
	}
	if len(first.Features) != 2 {
		t.Errorf("first suggestion features = %v", first.Features)
	}
	if report.Suggestions[1].OptionID != 3 {
		t.Error("suggestion order does not follow option order")
	}
	if report.Context != nil {
		t.Error("context should be nil when no summary is given")
	}
}

func TestBuildEmptyOptions(t *testing.T) {
	report := Build(nil, nil)
	if report.Suggestions == nil {
		t.Fatal("suggestions must be empty, not nil")
	}
	if len(report.Suggestions) != 0 {
		t.Errorf("got %d suggestions, want 0", len(report.Suggestions))
	}
}

func TestBuildAttachesContext(t *testing.T) {
	ctx := &features.Summary{Brightness: 180, SpaceScore: 0.9}
	report := Build([]layout.Option{{ID: 1}}, ctx)
	if report.Context != ctx {
		t.Error("context summary not attached")
	}
}
