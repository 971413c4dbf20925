package main

import (
	"fmt"

	"roomplanner/pkg/recommend"
	"roomplanner/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printSuggestions(report *recommend.Report) {
	if len(report.Suggestions) == 0 {
		fmt.Println("No layout options fit the budget. Widen the range or pick a different style.")
		return
	}

	fmt.Println("Design Recommendations")
	fmt.Println("======================")
	for i, s := range report.Suggestions {
		fmt.Printf("\nSuggestion %d (option %d)\n", i+1, s.OptionID)
		fmt.Printf("  %s\n", s.Description)
		fmt.Printf("  Estimated Cost: $%d\n", s.Cost)
		fmt.Println("  Key Features:")
		for _, f := range s.Features {
			fmt.Printf("    - %s\n", f)
		}
	}

	if ctx := report.Context; ctx != nil {
		fmt.Println("\nRoom Photo Analysis")
		fmt.Println("-------------------")
		fmt.Printf("  Brightness:  %.0f / 255\n", ctx.Brightness)
		fmt.Printf("  Space score: %.2f\n", ctx.SpaceScore)
		if len(ctx.DominantColors) > 0 {
			fmt.Printf("  Dominant colors: %v\n", ctx.DominantColors)
		}
		if len(ctx.Furniture) > 0 {
			fmt.Printf("  Detected furniture regions: %d\n", len(ctx.Furniture))
		}
	}
}
