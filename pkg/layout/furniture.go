// Package layout implements the furniture selection and placement
// engine: candidate generation from the requirement catalog, budget
// filtering and grid-based placement within the room footprint.
package layout

import (
	"roomplanner/pkg/catalog"
	"roomplanner/pkg/spec"
)

// Item is a priced furniture instance derived from an archetype and a
// style preference.
type Item struct {
	Type       string             `json:"type"`
	Price      int                `json:"price"`
	Style      spec.Style         `json:"style"`
	Dimensions catalog.Dimensions `json:"dimensions"`
}

// Area returns the item's footprint area in square meters.
func (it Item) Area() float64 {
	return it.Dimensions.Area()
}

// Instantiate derives a priced item from an archetype. The price is
// the base price scaled by the style multiplier, truncated toward
// zero; dimensions come from the dimension table and do not depend on
// style. Unknown types and styles use the catalog defaults.
func Instantiate(cat *catalog.Catalog, a catalog.Archetype, style spec.Style) Item {
	price := int(float64(cat.BasePrice(a.Type)) * cat.StyleMultiplier(style))
	return Item{
		Type:       a.Type,
		Price:      price,
		Style:      style,
		Dimensions: cat.DimensionsFor(a.Type),
	}
}
