package validation

import (
	"fmt"

	"roomplanner/pkg/spec"
)

// ValidateRoomSpec performs schema validation on a parsed RoomSpec.
// Nonsensical values (non-positive dimensions, an inverted budget
// range) are errors; values outside the usual application bounds and
// unknown room types or styles are warnings, since every downstream
// lookup has a documented default.
func ValidateRoomSpec(s *spec.RoomSpec) *Report {
	r := NewReport()

	validateDimensions(s, r)
	validateRoomType(s, r)
	validateStyle(s, r)
	validateBudget(s, r)

	return r
}

func validateDimensions(s *spec.RoomSpec, r *Report) {
	sides := []struct {
		name     string
		value    float64
		min, max float64
	}{
		{"room.length_m", s.Room.LengthM, spec.MinSideM, spec.MaxSideM},
		{"room.width_m", s.Room.WidthM, spec.MinSideM, spec.MaxSideM},
		{"room.height_m", s.Room.HeightM, spec.MinHeightM, spec.MaxHeightM},
	}

	for _, side := range sides {
		if side.value <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s must be greater than 0", side.name),
				SpecPath:    side.name,
				ActualValue: side.value,
				Expected:    "> 0",
			})
			continue
		}
		if side.value < side.min || side.value > side.max {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s is outside the usual range", side.name),
				SpecPath:    side.name,
				ActualValue: side.value,
				Expected:    fmt.Sprintf("%.0f-%.0f m", side.min, side.max),
			})
		}
	}
}

func validateRoomType(s *spec.RoomSpec, r *Report) {
	if s.Room.Type == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "room.type must be set",
			SpecPath: "room.type",
			Expected: "one of the supported room types",
		})
		return
	}
	if !spec.KnownRoomType(s.Room.Type) {
		r.AddWarning(Result{
			Level:       LevelCatalog,
			Message:     fmt.Sprintf("unknown room type %q has no furniture requirements; layout options will be empty", s.Room.Type),
			SpecPath:    "room.type",
			ActualValue: string(s.Room.Type),
			Expected:    "Living Room, Bedroom, Home Office, Dining Room or Kitchen",
		})
	}
}

func validateStyle(s *spec.RoomSpec, r *Report) {
	if s.Style != "" && !spec.KnownStyle(s.Style) {
		r.AddWarning(Result{
			Level:       LevelCatalog,
			Message:     fmt.Sprintf("unknown style %q; base prices and generic templates apply", s.Style),
			SpecPath:    "style",
			ActualValue: string(s.Style),
			Expected:    "Modern, Traditional, Minimalist, Scandinavian or Industrial",
		})
	}
}

func validateBudget(s *spec.RoomSpec, r *Report) {
	b := s.Budget

	if b.Min < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "budget.min must be non-negative",
			SpecPath:    "budget.min",
			ActualValue: b.Min,
			Expected:    ">= 0",
		})
	}
	if b.Max < b.Min {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("budget.max (%.0f) must be at least budget.min (%.0f)", b.Max, b.Min),
			SpecPath:    "budget",
			ActualValue: fmt.Sprintf("%.0f-%.0f", b.Min, b.Max),
			Expected:    "max >= min",
			Suggestions: []string{"Swap the budget bounds or widen the range"},
		})
		return
	}

	if b.Min > 0 && b.Min < spec.MinBudget {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "budget.min is below the usual range",
			SpecPath:    "budget.min",
			ActualValue: b.Min,
			Expected:    fmt.Sprintf(">= %.0f", spec.MinBudget),
		})
	}
	if b.Max > spec.MaxBudget {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "budget.max is above the usual range",
			SpecPath:    "budget.max",
			ActualValue: b.Max,
			Expected:    fmt.Sprintf("<= %.0f", spec.MaxBudget),
		})
	}
}
