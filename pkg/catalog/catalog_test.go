package catalog

import (
	"reflect"
	"testing"

	"roomplanner/pkg/spec"
)

func TestRequirementsLiteralCatalog(t *testing.T) {
	cat := Default()

	tests := []struct {
		roomType spec.RoomType
		want     []Archetype
	}{
		{spec.LivingRoom, []Archetype{
			{Type: "sofa", Priority: 1, MinArea: 2.0},
			{Type: "coffee_table", Priority: 2, MinArea: 0.6},
			{Type: "tv_stand", Priority: 2, MinArea: 1.0},
			{Type: "armchair", Priority: 3, MinArea: 0.8},
		}},
		{spec.Bedroom, []Archetype{
			{Type: "bed", Priority: 1, MinArea: 3.5},
			{Type: "wardrobe", Priority: 1, MinArea: 1.2},
			{Type: "nightstand", Priority: 2, MinArea: 0.2},
		}},
		{spec.HomeOffice, []Archetype{
			{Type: "desk", Priority: 1, MinArea: 1.2},
			{Type: "office_chair", Priority: 1, MinArea: 0.4},
			{Type: "bookshelf", Priority: 2, MinArea: 0.8},
		}},
		{spec.DiningRoom, []Archetype{
			{Type: "dining_table", Priority: 1, MinArea: 2.0},
			{Type: "chairs", Priority: 1, MinArea: 0.4},
			{Type: "sideboard", Priority: 2, MinArea: 1.0},
		}},
		{spec.Kitchen, []Archetype{
			{Type: "counter", Priority: 1, MinArea: 2.0},
			{Type: "storage", Priority: 1, MinArea: 1.5},
			{Type: "dining_set", Priority: 2, MinArea: 1.2},
		}},
	}

	for _, tt := range tests {
		got := cat.RequirementsFor(tt.roomType)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("RequirementsFor(%s) = %+v, want %+v", tt.roomType, got, tt.want)
		}
	}
}

func TestRequirementsUnknownRoomType(t *testing.T) {
	cat := Default()
	got := cat.RequirementsFor("Garage")
	if len(got) != 0 {
		t.Errorf("RequirementsFor(Garage) = %+v, want empty", got)
	}
}

func TestRequirementsReturnsCopy(t *testing.T) {
	cat := Default()
	first := cat.RequirementsFor(spec.Bedroom)
	first[0].Type = "mutated"

	second := cat.RequirementsFor(spec.Bedroom)
	if second[0].Type != "bed" {
		t.Error("mutating a returned requirements slice leaked into the catalog")
	}
}

func TestLookupDefaults(t *testing.T) {
	cat := Default()

	if got := cat.BasePrice("beanbag"); got != DefaultBasePrice {
		t.Errorf("BasePrice(beanbag) = %d, want %d", got, DefaultBasePrice)
	}
	if got := cat.DimensionsFor("beanbag"); got != DefaultDimensions {
		t.Errorf("DimensionsFor(beanbag) = %+v, want %+v", got, DefaultDimensions)
	}
	if got := cat.StyleMultiplier("Rustic"); got != DefaultMultiplier {
		t.Errorf("StyleMultiplier(Rustic) = %v, want %v", got, DefaultMultiplier)
	}
	if got := cat.Color("beanbag"); got != DefaultColor {
		t.Errorf("Color(beanbag) = %q, want %q", got, DefaultColor)
	}
	if got := cat.DescriptionTemplate("Rustic"); got != "Balanced and functional layout" {
		t.Errorf("DescriptionTemplate(Rustic) = %q", got)
	}
	if got := cat.StyleFeatures("Rustic"); !reflect.DeepEqual(got, []string{"Balanced design", "Functional layout"}) {
		t.Errorf("StyleFeatures(Rustic) = %v", got)
	}
}

func TestColorsCoverCatalogTypes(t *testing.T) {
	cat := Default()
	for _, rt := range spec.RoomTypes() {
		for _, a := range cat.RequirementsFor(rt) {
			if cat.Color(a.Type) == DefaultColor {
				t.Errorf("catalog type %q has no dedicated color", a.Type)
			}
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"sofa", "Sofa"},
		{"tv_stand", "Tv Stand"},
		{"coffee_table", "Coffee Table"},
		{"office_chair", "Office Chair"},
	}
	for _, tt := range tests {
		if got := Label(tt.in); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
