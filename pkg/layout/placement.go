package layout

import (
	"sort"

	"roomplanner/pkg/geo"
)

// GridSizeM is the occupancy grid cell size in meters.
const GridSizeM = 0.5

// PlacedItem is a furniture item with its assigned floor position.
// Position is the lower-left corner of the item's bounding rectangle.
type PlacedItem struct {
	Item
	Position geo.Point2D `json:"position"`
}

// Bounds returns the item's occupied rectangle on the floor plane.
func (p PlacedItem) Bounds() geo.Rect {
	return geo.Rect{
		Min:     p.Position,
		LengthM: p.Dimensions.Length,
		WidthM:  p.Dimensions.Width,
	}
}

// Placement is the result of packing one option's furniture into the
// room. Items that found no free block are reported in Unplaced rather
// than silently dropped; the caller decides whether that matters.
type Placement struct {
	Placed   []PlacedItem `json:"placed"`
	Unplaced []Item       `json:"unplaced,omitempty"`
}

// Place packs furniture into a room footprint using first-fit search
// over a 0.5 m occupancy grid. Items are tried largest footprint first
// (stable, so equal areas keep selection order); each item takes the
// first free block found scanning rows bottom-up, columns left to
// right. Item dimensions are floored to whole cells with a minimum of
// one cell per axis, so even pieces smaller than a cell reserve space.
func Place(items []Item, roomLengthM, roomWidthM float64) Placement {
	cols := int(roomLengthM / GridSizeM)
	rows := int(roomWidthM / GridSizeM)

	grid := newOccupancyGrid(rows, cols)

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Area() > sorted[j].Area()
	})

	var result Placement
	for _, item := range sorted {
		itemCols := cellSpan(item.Dimensions.Length)
		itemRows := cellSpan(item.Dimensions.Width)

		x, y, ok := grid.findFree(itemCols, itemRows)
		if !ok {
			result.Unplaced = append(result.Unplaced, item)
			continue
		}

		grid.occupy(x, y, itemCols, itemRows)
		result.Placed = append(result.Placed, PlacedItem{
			Item:     item,
			Position: geo.Point2D{X: float64(x) * GridSizeM, Y: float64(y) * GridSizeM},
		})
	}
	return result
}

// cellSpan converts a dimension in meters to whole grid cells.
// Dimensions below one cell still occupy one.
func cellSpan(meters float64) int {
	n := int(meters / GridSizeM)
	if n < 1 {
		return 1
	}
	return n
}

// occupancyGrid is a boolean map of the room footprint, true where a
// cell is taken. It lives for a single Place call.
type occupancyGrid struct {
	rows, cols int
	cells      []bool
}

func newOccupancyGrid(rows, cols int) *occupancyGrid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &occupancyGrid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

func (g *occupancyGrid) at(x, y int) bool {
	return g.cells[y*g.cols+x]
}

// findFree scans row-major (y outer, x inner) for the first top-left
// cell where a spanCols by spanRows block is entirely unoccupied and
// inside the grid.
func (g *occupancyGrid) findFree(spanCols, spanRows int) (x, y int, ok bool) {
	for y := 0; y+spanRows <= g.rows; y++ {
		for x := 0; x+spanCols <= g.cols; x++ {
			if g.blockFree(x, y, spanCols, spanRows) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func (g *occupancyGrid) blockFree(x, y, spanCols, spanRows int) bool {
	for dy := 0; dy < spanRows; dy++ {
		for dx := 0; dx < spanCols; dx++ {
			if g.at(x+dx, y+dy) {
				return false
			}
		}
	}
	return true
}

func (g *occupancyGrid) occupy(x, y, spanCols, spanRows int) {
	for dy := 0; dy < spanRows; dy++ {
		for dx := 0; dx < spanCols; dx++ {
			g.cells[(y+dy)*g.cols+x+dx] = true
		}
	}
}
