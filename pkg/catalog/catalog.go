// Package catalog holds the static furnishing tables: per-room-type
// furniture requirements, base prices, standard dimensions, style
// multipliers, render colors and description templates. All lookups
// are total; missing keys resolve to documented defaults instead of
// failing.
package catalog

import (
	"strings"

	"roomplanner/pkg/spec"
)

// Archetype is a required furniture category for a room type,
// independent of any priced instance. Priority 1 is most essential.
type Archetype struct {
	Type    string  `json:"type"`
	Priority int    `json:"priority"`
	MinArea float64 `json:"min_area"`
}

// Dimensions is a furniture footprint in meters.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// Area returns the footprint area in square meters.
func (d Dimensions) Area() float64 {
	return d.Length * d.Width
}

// Defaults applied when a lookup key is unknown.
const (
	DefaultBasePrice  = 300
	DefaultMultiplier = 1.0
	DefaultColor      = "#CCCCCC"
)

// DefaultDimensions is the footprint assumed for unknown furniture types.
var DefaultDimensions = Dimensions{Length: 1.0, Width: 1.0}

// Catalog bundles the immutable lookup tables. Construct it once with
// Default and pass it by reference; methods never mutate it.
type Catalog struct {
	requirements     map[spec.RoomType][]Archetype
	basePrices       map[string]int
	dimensions       map[string]Dimensions
	styleMultipliers map[spec.Style]float64
	colors           map[string]string
	descriptions     map[spec.Style]string
	styleFeatures    map[spec.Style][]string
}

// Default returns the standard catalog.
func Default() *Catalog {
	return &Catalog{
		requirements: map[spec.RoomType][]Archetype{
			spec.LivingRoom: {
				{Type: "sofa", Priority: 1, MinArea: 2.0},
				{Type: "coffee_table", Priority: 2, MinArea: 0.6},
				{Type: "tv_stand", Priority: 2, MinArea: 1.0},
				{Type: "armchair", Priority: 3, MinArea: 0.8},
			},
			spec.Bedroom: {
				{Type: "bed", Priority: 1, MinArea: 3.5},
				{Type: "wardrobe", Priority: 1, MinArea: 1.2},
				{Type: "nightstand", Priority: 2, MinArea: 0.2},
			},
			spec.HomeOffice: {
				{Type: "desk", Priority: 1, MinArea: 1.2},
				{Type: "office_chair", Priority: 1, MinArea: 0.4},
				{Type: "bookshelf", Priority: 2, MinArea: 0.8},
			},
			spec.DiningRoom: {
				{Type: "dining_table", Priority: 1, MinArea: 2.0},
				{Type: "chairs", Priority: 1, MinArea: 0.4},
				{Type: "sideboard", Priority: 2, MinArea: 1.0},
			},
			spec.Kitchen: {
				{Type: "counter", Priority: 1, MinArea: 2.0},
				{Type: "storage", Priority: 1, MinArea: 1.5},
				{Type: "dining_set", Priority: 2, MinArea: 1.2},
			},
		},
		basePrices: map[string]int{
			"sofa":         1000,
			"coffee_table": 200,
			"tv_stand":     300,
			"armchair":     400,
			"bed":          800,
			"wardrobe":     600,
			"nightstand":   100,
			"desk":         400,
			"office_chair": 200,
			"bookshelf":    300,
			"dining_table": 600,
			"chairs":       150,
			"sideboard":    400,
			"counter":      800,
			"storage":      500,
			"dining_set":   700,
		},
		dimensions: map[string]Dimensions{
			"sofa":         {Length: 2.0, Width: 0.9},
			"coffee_table": {Length: 0.9, Width: 0.6},
			"tv_stand":     {Length: 1.5, Width: 0.5},
			"armchair":     {Length: 0.8, Width: 0.8},
			"bed":          {Length: 2.0, Width: 1.6},
			"wardrobe":     {Length: 1.2, Width: 0.6},
			"nightstand":   {Length: 0.4, Width: 0.4},
			"desk":         {Length: 1.2, Width: 0.6},
			"office_chair": {Length: 0.6, Width: 0.6},
			"bookshelf":    {Length: 0.8, Width: 0.3},
			"dining_table": {Length: 1.6, Width: 0.9},
			"chairs":       {Length: 0.5, Width: 0.5},
			"sideboard":    {Length: 1.2, Width: 0.4},
			"counter":      {Length: 2.0, Width: 0.6},
			"storage":      {Length: 1.0, Width: 0.6},
			"dining_set":   {Length: 1.2, Width: 1.2},
		},
		styleMultipliers: map[spec.Style]float64{
			spec.Modern:       1.2,
			spec.Traditional:  1.1,
			spec.Minimalist:   1.0,
			spec.Scandinavian: 1.3,
			spec.Industrial:   1.15,
		},
		colors: map[string]string{
			"sofa":         "#FF9999",
			"coffee_table": "#66B2FF",
			"tv_stand":     "#99FF99",
			"armchair":     "#FFCC99",
			"bed":          "#FF99CC",
			"wardrobe":     "#99CCFF",
			"nightstand":   "#CCFFFF",
			"desk":         "#FFB366",
			"office_chair": "#B3B3FF",
			"bookshelf":    "#CCFF99",
			"dining_table": "#99FFCC",
			"chairs":       "#FFE699",
			"sideboard":    "#D9B38C",
			"counter":      "#FF99FF",
			"storage":      "#FFFF99",
			"dining_set":   "#99E6E6",
		},
		descriptions: map[spec.Style]string{
			spec.Modern:       "Clean lines and contemporary pieces create a sophisticated space",
			spec.Traditional:  "Classic furniture arrangement for timeless appeal",
			spec.Minimalist:   "Essential pieces arranged for maximum functionality",
			spec.Scandinavian: "Light and airy layout with functional Nordic design",
			spec.Industrial:   "Raw and refined elements combine for an urban feel",
		},
		styleFeatures: map[spec.Style][]string{
			spec.Modern:       {"Contemporary materials", "Minimal ornamentation", "Bold geometric shapes"},
			spec.Traditional:  {"Classic patterns", "Symmetrical arrangement", "Rich textures"},
			spec.Minimalist:   {"Clean spaces", "Functional design", "Neutral colors"},
			spec.Scandinavian: {"Light woods", "Natural materials", "Bright spaces"},
			spec.Industrial:   {"Raw materials", "Open layout", "Metallic accents"},
		},
	}
}

// RequirementsFor returns the furniture requirements for a room type
// in priority order. Unknown room types yield an empty list.
func (c *Catalog) RequirementsFor(roomType spec.RoomType) []Archetype {
	reqs := c.requirements[roomType]
	out := make([]Archetype, len(reqs))
	copy(out, reqs)
	return out
}

// BasePrice returns the unstyled price for a furniture type.
func (c *Catalog) BasePrice(furnitureType string) int {
	if p, ok := c.basePrices[furnitureType]; ok {
		return p
	}
	return DefaultBasePrice
}

// DimensionsFor returns the standard footprint for a furniture type.
func (c *Catalog) DimensionsFor(furnitureType string) Dimensions {
	if d, ok := c.dimensions[furnitureType]; ok {
		return d
	}
	return DefaultDimensions
}

// StyleMultiplier returns the price scalar for a style.
func (c *Catalog) StyleMultiplier(style spec.Style) float64 {
	if m, ok := c.styleMultipliers[style]; ok {
		return m
	}
	return DefaultMultiplier
}

// Color returns the render color for a furniture type.
func (c *Catalog) Color(furnitureType string) string {
	if col, ok := c.colors[furnitureType]; ok {
		return col
	}
	return DefaultColor
}

// DescriptionTemplate returns the style-keyed description sentence.
func (c *Catalog) DescriptionTemplate(style spec.Style) string {
	if d, ok := c.descriptions[style]; ok {
		return d
	}
	return "Balanced and functional layout"
}

// StyleFeatures returns the style-keyed feature list.
func (c *Catalog) StyleFeatures(style spec.Style) []string {
	feats, ok := c.styleFeatures[style]
	if !ok {
		feats = []string{"Balanced design", "Functional layout"}
	}
	out := make([]string, len(feats))
	copy(out, feats)
	return out
}

// Label turns a furniture type key into a display label: underscores
// become spaces and each word is title-cased ("tv_stand" -> "Tv Stand").
func Label(furnitureType string) string {
	words := strings.Split(furnitureType, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
