// Package render turns an assembled 2D scene into a standalone SVG
// floor plan.
package render

import (
	"bytes"
	"fmt"

	"roomplanner/pkg/scene2d"
)

const (
	defaultScalePx = 80.0 // pixels per meter
	marginPx       = 40.0
	legendWidthPx  = 180.0
	legendRowPx    = 24.0
)

// SVGOption configures the SVG renderer.
type SVGOption func(*svgRenderer)

// WithScale sets the pixels-per-meter scale.
func WithScale(pxPerMeter float64) SVGOption {
	return func(r *svgRenderer) { r.scale = pxPerMeter }
}

// WithoutGrid disables the background grid lines.
func WithoutGrid() SVGOption {
	return func(r *svgRenderer) { r.grid = false }
}

// WithoutLegend disables the legend column.
func WithoutLegend() SVGOption {
	return func(r *svgRenderer) { r.legend = false }
}

type svgRenderer struct {
	scale  float64
	grid   bool
	legend bool
}

// RenderSVG draws the scene as a top-down floor plan. The Y axis is
// flipped so the scene origin sits at the bottom-left of the drawing.
func RenderSVG(scene *scene2d.Scene2D, opts ...SVGOption) []byte {
	r := &svgRenderer{scale: defaultScalePx, grid: true, legend: true}
	for _, opt := range opts {
		opt(r)
	}

	roomW := scene.Room.LengthM * r.scale
	roomH := scene.Room.WidthM * r.scale

	width := roomW + 2*marginPx
	if r.legend && len(scene.Legend) > 0 {
		width += legendWidthPx
	}
	height := roomH + 2*marginPx

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="%.0f" height="%.0f" fill="#FFFFFF"/>`+"\n", width, height)

	title := fmt.Sprintf("%s Layout", scene.Metadata.RoomType)
	fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="16" font-weight="bold">%s</text>`+"\n",
		marginPx, marginPx-14, escape(title))

	if r.grid {
		r.drawGrid(&buf, scene)
	}

	// Room outline.
	fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#000000" stroke-width="2"/>`+"\n",
		marginPx, marginPx, roomW, roomH)

	for _, f := range scene.Furniture {
		r.drawFurniture(&buf, scene, f)
	}

	if r.legend && len(scene.Legend) > 0 {
		r.drawLegend(&buf, scene, roomW)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) drawGrid(buf *bytes.Buffer, scene *scene2d.Scene2D) {
	const step = 0.5 // meters, matches the placement grid
	roomW := scene.Room.LengthM * r.scale
	roomH := scene.Room.WidthM * r.scale

	for x := step; x < scene.Room.LengthM; x += step {
		px := marginPx + x*r.scale
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#DDDDDD" stroke-dasharray="4 4"/>`+"\n",
			px, marginPx, px, marginPx+roomH)
	}
	for y := step; y < scene.Room.WidthM; y += step {
		py := marginPx + y*r.scale
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#DDDDDD" stroke-dasharray="4 4"/>`+"\n",
			marginPx, py, marginPx+roomW, py)
	}
}

func (r *svgRenderer) drawFurniture(buf *bytes.Buffer, scene *scene2d.Scene2D, f scene2d.FurnitureRect) {
	w := f.Dimensions[0] * r.scale
	h := f.Dimensions[1] * r.scale
	x := marginPx + f.Position[0]*r.scale
	// Flip Y: scene origin is bottom-left, SVG origin is top-left.
	y := marginPx + (scene.Room.WidthM-f.Position[1]-f.Dimensions[1])*r.scale

	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.7" stroke="#555555"/>`+"\n",
		x, y, w, h, f.Color)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="10" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		x+w/2, y+h/2, escape(f.Label))
}

func (r *svgRenderer) drawLegend(buf *bytes.Buffer, scene *scene2d.Scene2D, roomW float64) {
	lx := marginPx + roomW + 30
	ly := marginPx

	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12" font-weight="bold">Legend</text>`+"\n",
		lx, ly)
	for i, entry := range scene.Legend {
		ry := ly + 12 + float64(i)*legendRowPx
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="16" height="16" fill="%s" fill-opacity="0.7" stroke="#555555"/>`+"\n",
			lx, ry, entry.Color)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11">%s</text>`+"\n",
			lx+22, ry+12, escape(entry.Label))
	}
}

func escape(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
