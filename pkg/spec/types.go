package spec

// RoomType identifies the functional category of a room. The catalog
// keys its furniture requirements by this value.
type RoomType string

const (
	LivingRoom RoomType = "Living Room"
	Bedroom    RoomType = "Bedroom"
	HomeOffice RoomType = "Home Office"
	DiningRoom RoomType = "Dining Room"
	Kitchen    RoomType = "Kitchen"
)

// RoomTypes lists the supported room types in display order.
func RoomTypes() []RoomType {
	return []RoomType{LivingRoom, Bedroom, HomeOffice, DiningRoom, Kitchen}
}

// Style is a furnishing style preference. It scales furniture prices
// and selects description and feature templates.
type Style string

const (
	Modern       Style = "Modern"
	Traditional  Style = "Traditional"
	Minimalist   Style = "Minimalist"
	Scandinavian Style = "Scandinavian"
	Industrial   Style = "Industrial"
)

// Styles lists the supported styles in display order.
func Styles() []Style {
	return []Style{Modern, Traditional, Minimalist, Scandinavian, Industrial}
}

// Application-level input bounds. Values outside these ranges are
// flagged by schema validation; non-positive dimensions and inverted
// budget ranges are hard errors.
const (
	MinSideM   = 1.0
	MaxSideM   = 20.0
	MinHeightM = 1.0
	MaxHeightM = 5.0
	MinBudget  = 1000.0
	MaxBudget  = 10000.0
)

// RoomSpec is the top-level specification for one planning request.
type RoomSpec struct {
	SpecVersion string      `yaml:"spec_version" json:"spec_version"`
	Room        RoomDef     `yaml:"room" json:"room"`
	Style       Style       `yaml:"style" json:"style"`
	Budget      BudgetRange `yaml:"budget" json:"budget"`
}

// RoomDef holds the physical dimensions and category of the room.
type RoomDef struct {
	LengthM float64  `yaml:"length_m" json:"length_m"`
	WidthM  float64  `yaml:"width_m" json:"width_m"`
	HeightM float64  `yaml:"height_m" json:"height_m"`
	Type    RoomType `yaml:"type" json:"type"`
}

// Area returns the floor area in square meters.
func (r RoomDef) Area() float64 {
	return r.LengthM * r.WidthM
}

// BudgetRange is an inclusive cost window in currency units.
type BudgetRange struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Contains reports whether cost falls inside the range, both ends
// inclusive.
func (b BudgetRange) Contains(cost int) bool {
	c := float64(cost)
	return b.Min <= c && c <= b.Max
}

// KnownRoomType reports whether rt is one of the supported room types.
func KnownRoomType(rt RoomType) bool {
	for _, t := range RoomTypes() {
		if t == rt {
			return true
		}
	}
	return false
}

// KnownStyle reports whether s is one of the supported styles.
func KnownStyle(s Style) bool {
	for _, k := range Styles() {
		if k == s {
			return true
		}
	}
	return false
}
