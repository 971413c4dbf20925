package scene2d

import (
	"time"

	"github.com/google/uuid"

	"roomplanner/pkg/catalog"
	"roomplanner/pkg/layout"
	"roomplanner/pkg/spec"
)

// Assemble converts one placed layout option into a 2D scene suitable
// for floor-plan rendering. Every item gets a color from the catalog
// (with the fallback for unknown types) and a title-cased label; the
// legend covers each distinct placed type once, in placement order.
func Assemble(s *spec.RoomSpec, opt layout.Option, placement layout.Placement, cat *catalog.Catalog) *Scene2D {
	scene := &Scene2D{
		Metadata: Metadata{
			SceneID:     uuid.NewString(),
			RoomType:    string(s.Room.Type),
			Style:       string(s.Style),
			OptionID:    opt.ID,
			OptionCost:  opt.Cost,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Room: RoomOutline{
			LengthM: s.Room.LengthM,
			WidthM:  s.Room.WidthM,
		},
		Furniture: make([]FurnitureRect, 0, len(placement.Placed)),
	}

	seen := make(map[string]bool)
	for _, p := range placement.Placed {
		color := cat.Color(p.Type)
		label := catalog.Label(p.Type)

		scene.Furniture = append(scene.Furniture, FurnitureRect{
			Type:       p.Type,
			Label:      label,
			Color:      color,
			Position:   [2]float64{p.Position.X, p.Position.Y},
			Dimensions: [2]float64{p.Dimensions.Length, p.Dimensions.Width},
		})

		if !seen[p.Type] {
			seen[p.Type] = true
			scene.Legend = append(scene.Legend, LegendEntry{
				Type:  p.Type,
				Label: label,
				Color: color,
			})
		}
	}

	for _, it := range placement.Unplaced {
		scene.Unplaced = append(scene.Unplaced, it.Type)
	}

	return scene
}
