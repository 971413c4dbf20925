package scene2d

import (
	"testing"

	"roomplanner/pkg/catalog"
	"roomplanner/pkg/geo"
	"roomplanner/pkg/layout"
	"roomplanner/pkg/spec"
)

func sceneFixture() (*spec.RoomSpec, layout.Option, layout.Placement) {
	s := &spec.RoomSpec{
		Room:  spec.RoomDef{LengthM: 5, WidthM: 4, HeightM: 2.5, Type: spec.Bedroom},
		Style: spec.Modern,
	}
	opt := layout.Option{
		ID:   1,
		Cost: 1800,
		Furniture: []layout.Item{
			{Type: "bed", Price: 960, Style: spec.Modern, Dimensions: catalog.Dimensions{Length: 2.0, Width: 1.6}},
		},
	}
	placement := layout.Placement{
		Placed: []layout.PlacedItem{
			{
				Item:     layout.Item{Type: "bed", Price: 960, Style: spec.Modern, Dimensions: catalog.Dimensions{Length: 2.0, Width: 1.6}},
				Position: geo.Point2D{X: 0, Y: 0},
			},
			{
				Item:     layout.Item{Type: "tv_stand", Price: 360, Style: spec.Modern, Dimensions: catalog.Dimensions{Length: 1.5, Width: 0.5}},
				Position: geo.Point2D{X: 2.0, Y: 0},
			},
			{
				Item:     layout.Item{Type: "beanbag", Price: 360, Style: spec.Modern, Dimensions: catalog.Dimensions{Length: 1.0, Width: 1.0}},
				Position: geo.Point2D{X: 0, Y: 2.0},
			},
		},
		Unplaced: []layout.Item{
			{Type: "wardrobe", Price: 720, Style: spec.Modern, Dimensions: catalog.Dimensions{Length: 1.2, Width: 0.6}},
		},
	}
	return s, opt, placement
}

func TestAssembleScene(t *testing.T) {
	s, opt, placement := sceneFixture()
	scene := Assemble(s, opt, placement, catalog.Default())

	if scene.Metadata.RoomType != "Bedroom" || scene.Metadata.OptionID != 1 || scene.Metadata.OptionCost != 1800 {
		t.Errorf("metadata = %+v", scene.Metadata)
	}
	if scene.Metadata.SceneID == "" || scene.Metadata.GeneratedAt == "" {
		t.Error("scene ID and timestamp must be set")
	}
	if scene.Room.LengthM != 5 || scene.Room.WidthM != 4 {
		t.Errorf("room outline = %+v", scene.Room)
	}
	if len(scene.Furniture) != 3 {
		t.Fatalf("got %d furniture rects, want 3", len(scene.Furniture))
	}

	bed := scene.Furniture[0]
	if bed.Color != "#FF99CC" {
		t.Errorf("bed color = %q, want #FF99CC", bed.Color)
	}
	if bed.Label != "Bed" {
		t.Errorf("bed label = %q", bed.Label)
	}

	tv := scene.Furniture[1]
	if tv.Label != "Tv Stand" {
		t.Errorf("tv stand label = %q, want Tv Stand", tv.Label)
	}
	if tv.Position != [2]float64{2.0, 0} || tv.Dimensions != [2]float64{1.5, 0.5} {
		t.Errorf("tv stand geometry = %+v / %+v", tv.Position, tv.Dimensions)
	}

	// Unknown types fall back to the default color.
	if scene.Furniture[2].Color != catalog.DefaultColor {
		t.Errorf("beanbag color = %q, want fallback %q", scene.Furniture[2].Color, catalog.DefaultColor)
	}

	if len(scene.Legend) != 3 {
		t.Errorf("legend has %d entries, want 3 distinct types", len(scene.Legend))
	}
	if len(scene.Unplaced) != 1 || scene.Unplaced[0] != "wardrobe" {
		t.Errorf("unplaced = %v, want [wardrobe]", scene.Unplaced)
	}
}

func TestAssembleLegendDeduplicates(t *testing.T) {
	s, opt, placement := sceneFixture()
	placement.Placed = append(placement.Placed, placement.Placed[0]) // second bed
	placement.Unplaced = nil

	scene := Assemble(s, opt, placement, catalog.Default())
	if len(scene.Furniture) != 4 {
		t.Fatalf("got %d furniture rects, want 4", len(scene.Furniture))
	}
	if len(scene.Legend) != 3 {
		t.Errorf("legend has %d entries, want 3 (bed listed once)", len(scene.Legend))
	}
	if len(scene.Unplaced) != 0 {
		t.Errorf("unplaced = %v, want empty", scene.Unplaced)
	}
}
