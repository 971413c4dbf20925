package main

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"

	"roomplanner/pkg/catalog"
	"roomplanner/pkg/features"
	"roomplanner/pkg/layout"
	"roomplanner/pkg/recommend"
	"roomplanner/pkg/render"
	"roomplanner/pkg/scene2d"
	"roomplanner/pkg/spec"
	"roomplanner/pkg/validation"
)

// loadAndValidate loads the room spec and runs schema validation.
func loadAndValidate(projectPath string) (*spec.RoomSpec, *validation.Report, error) {
	roomSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	report := validation.ValidateRoomSpec(roomSpec)
	return roomSpec, report, nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runSuggest(projectPath, photoPath string) error {
	roomSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	var photoSummary *features.Summary
	if photoPath != "" {
		img, err := imaging.Open(photoPath)
		if err != nil {
			return fmt.Errorf("opening photo: %w", err)
		}
		photoSummary = features.Analyze(img)
	}

	cat := catalog.Default()
	archetypes := cat.RequirementsFor(roomSpec.Room.Type)
	options := layout.Generate(cat, roomSpec, archetypes)
	filtered := layout.FilterByBudget(options, roomSpec.Budget)

	printSuggestions(recommend.Build(filtered, photoSummary))

	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runRender(projectPath, outPath string, optionID int) error {
	roomSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	cat := catalog.Default()
	archetypes := cat.RequirementsFor(roomSpec.Room.Type)
	options := layout.Generate(cat, roomSpec, archetypes)
	filtered := layout.FilterByBudget(options, roomSpec.Budget)
	if len(filtered) == 0 {
		return fmt.Errorf("no layout option fits the budget %.0f-%.0f", roomSpec.Budget.Min, roomSpec.Budget.Max)
	}

	chosen := filtered[0]
	if optionID != 0 {
		found := false
		for _, opt := range filtered {
			if opt.ID == optionID {
				chosen = opt
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("option %d is not within budget", optionID)
		}
	}

	placement := layout.Place(chosen.Furniture, roomSpec.Room.LengthM, roomSpec.Room.WidthM)
	scene := scene2d.Assemble(roomSpec, chosen, placement, cat)

	if err := os.WriteFile(outPath, render.RenderSVG(scene), 0o644); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}

	fmt.Printf("Wrote %s (option %d, %d of %d pieces placed)\n",
		outPath, chosen.ID, len(placement.Placed), len(chosen.Furniture))
	for _, it := range placement.Unplaced {
		fmt.Printf("  could not place: %s\n", catalog.Label(it.Type))
	}
	return nil
}
