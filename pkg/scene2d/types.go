package scene2d

// Scene2D is the complete 2D floor-plan output for a rendering
// consumer. All coordinates are meters with the origin at the room's
// lower-left corner.
type Scene2D struct {
	Metadata  Metadata        `json:"metadata"`
	Room      RoomOutline     `json:"room"`
	Furniture []FurnitureRect `json:"furniture"`
	Legend    []LegendEntry   `json:"legend"`
	Unplaced  []string        `json:"unplaced,omitempty"`
}

// Metadata holds scene-level summary data.
type Metadata struct {
	SceneID     string `json:"scene_id"`
	RoomType    string `json:"room_type"`
	Style       string `json:"style"`
	OptionID    int    `json:"option_id"`
	OptionCost  int    `json:"option_cost"`
	GeneratedAt string `json:"generated_at"`
}

// RoomOutline is the room's footprint rectangle.
type RoomOutline struct {
	LengthM float64 `json:"length_m"`
	WidthM  float64 `json:"width_m"`
}

// FurnitureRect is one placed furniture piece ready to draw.
type FurnitureRect struct {
	Type       string     `json:"type"`
	Label      string     `json:"label"`
	Color      string     `json:"color"`
	Position   [2]float64 `json:"position"`   // lower-left corner [x, y]
	Dimensions [2]float64 `json:"dimensions"` // [length, width]
}

// LegendEntry maps a furniture type to its render color.
type LegendEntry struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Color string `json:"color"`
}
