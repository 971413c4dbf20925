// Package geo provides the small planar primitives shared by the
// placement engine and the 2D scene assembly.
package geo

// Point2D is a point on the floor plane, in meters. X runs along the
// room length, Y along the room width; the origin is the lower-left
// corner of the room.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	Min     Point2D `json:"min"`
	LengthM float64 `json:"length_m"`
	WidthM  float64 `json:"width_m"`
}

// Area returns the rectangle's area in square meters.
func (r Rect) Area() float64 {
	return r.LengthM * r.WidthM
}

// Max returns the upper-right corner.
func (r Rect) Max() Point2D {
	return Point2D{X: r.Min.X + r.LengthM, Y: r.Min.Y + r.WidthM}
}

// Intersects reports whether the interiors of two rectangles overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X < other.Max().X && other.Min.X < r.Max().X &&
		r.Min.Y < other.Max().Y && other.Min.Y < r.Max().Y
}

// ContainsPoint reports whether p lies inside the rectangle or on its
// boundary.
func (r Rect) ContainsPoint(p Point2D) bool {
	m := r.Max()
	return p.X >= r.Min.X && p.X <= m.X && p.Y >= r.Min.Y && p.Y <= m.Y
}
