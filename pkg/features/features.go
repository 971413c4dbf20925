// Package features extracts a coarse descriptive summary from an
// uploaded room photo: overall brightness, dominant colors, an
// edge-density space score and rough furniture regions. The summary is
// context for recommendations only; layout generation and placement do
// not depend on it.
package features

import (
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"
)

// analysisWidth is the working width images are downscaled to before
// analysis. Heuristics here are density-based, so resolution beyond
// this adds nothing.
const analysisWidth = 128

// edgeThreshold is the minimum luma gradient (0-255 scale) for a pixel
// to count as an edge.
const edgeThreshold = 30

// Region is a coarse bounding box of a detected furniture-like area,
// in analysis-image pixels.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Area   int `json:"area"`
}

// Summary describes a room photo.
type Summary struct {
	Brightness     float64  `json:"brightness"`      // mean luma, 0-255
	SpaceScore     float64  `json:"space_score"`     // 1 - edge density
	Complexity     float64  `json:"complexity"`      // edge density
	DominantColors []string `json:"dominant_colors"` // hex, most frequent first
	Furniture      []Region `json:"furniture,omitempty"`
}

// Analyze computes the feature summary for a room photo.
func Analyze(img image.Image) *Summary {
	small := imaging.Resize(img, analysisWidth, 0, imaging.Lanczos)
	if small.Bounds().Dx() == 0 || small.Bounds().Dy() == 0 {
		return &Summary{SpaceScore: 1.0}
	}
	gray := imaging.Grayscale(small)

	luma := lumaGrid(gray)
	edges := edgeMask(luma)

	edgeCount := 0
	for _, e := range edges {
		for _, on := range e {
			if on {
				edgeCount++
			}
		}
	}
	total := len(luma) * len(luma[0])
	density := float64(edgeCount) / float64(total)

	return &Summary{
		Brightness:     meanLuma(luma),
		SpaceScore:     1.0 - density,
		Complexity:     density,
		DominantColors: dominantColors(small, 3),
		Furniture:      furnitureRegions(edges),
	}
}

// lumaGrid extracts per-pixel luma from a grayscale image as [y][x].
func lumaGrid(img *image.NRGBA) [][]float64 {
	b := img.Bounds()
	grid := make([][]float64, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := make([]float64, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			// Grayscale output has R=G=B.
			row[x] = float64(img.NRGBAAt(b.Min.X+x, b.Min.Y+y).R)
		}
		grid[y] = row
	}
	return grid
}

func meanLuma(luma [][]float64) float64 {
	sum := 0.0
	count := 0
	for _, row := range luma {
		for _, v := range row {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// edgeMask marks pixels whose horizontal or vertical luma gradient
// exceeds the edge threshold.
func edgeMask(luma [][]float64) [][]bool {
	h := len(luma)
	w := len(luma[0])
	mask := make([][]bool, h)
	for y := range mask {
		mask[y] = make([]bool, w)
	}
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := luma[y][x+1] - luma[y][x-1]
			gy := luma[y+1][x] - luma[y-1][x]
			if gx < 0 {
				gx = -gx
			}
			if gy < 0 {
				gy = -gy
			}
			if gx > edgeThreshold || gy > edgeThreshold {
				mask[y][x] = true
			}
		}
	}
	return mask
}

// dominantColors quantizes each channel to 4 bits and returns the n
// most frequent buckets as hex strings.
func dominantColors(img *image.NRGBA, n int) []string {
	type bucket struct {
		key   uint32
		count int
	}
	counts := make(map[uint32]int)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			key := uint32(c.R>>4)<<8 | uint32(c.G>>4)<<4 | uint32(c.B>>4)
			counts[key]++
		}
	}

	buckets := make([]bucket, 0, len(counts))
	for k, c := range counts {
		buckets = append(buckets, bucket{key: k, count: c})
	}
	// Count descending, key ascending for determinism.
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return buckets[i].key < buckets[j].key
	})

	if n > len(buckets) {
		n = len(buckets)
	}
	colors := make([]string, 0, n)
	for _, bk := range buckets[:n] {
		r := (bk.key >> 8 & 0xF) * 17
		g := (bk.key >> 4 & 0xF) * 17
		bl := (bk.key & 0xF) * 17
		colors = append(colors, fmt.Sprintf("#%02X%02X%02X", r, g, bl))
	}
	return colors
}

// furnitureRegions groups connected edge pixels into bounding boxes
// and keeps the larger ones, a stand-in for contour detection.
func furnitureRegions(edges [][]bool) []Region {
	const minRegionArea = 64

	h := len(edges)
	w := len(edges[0])
	visited := make([][]bool, h)
	for y := range visited {
		visited[y] = make([]bool, w)
	}

	var regions []Region
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !edges[y][x] || visited[y][x] {
				continue
			}
			minX, minY, maxX, maxY, count := floodFill(edges, visited, x, y)
			reg := Region{
				X:      minX,
				Y:      minY,
				Width:  maxX - minX + 1,
				Height: maxY - minY + 1,
			}
			reg.Area = reg.Width * reg.Height
			if reg.Area >= minRegionArea && count > reg.Area/8 {
				regions = append(regions, reg)
			}
		}
	}
	return regions
}

// floodFill visits the 4-connected component containing (x, y) and
// returns its bounding box and pixel count.
func floodFill(edges, visited [][]bool, x, y int) (minX, minY, maxX, maxY, count int) {
	h := len(edges)
	w := len(edges[0])
	minX, minY, maxX, maxY = x, y, x, y

	stack := [][2]int{{x, y}}
	visited[y][x] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		px, py := p[0], p[1]
		count++

		if px < minX {
			minX = px
		}
		if px > maxX {
			maxX = px
		}
		if py < minY {
			minY = py
		}
		if py > maxY {
			maxY = py
		}

		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := px+d[0], py+d[1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			if edges[ny][nx] && !visited[ny][nx] {
				visited[ny][nx] = true
				stack = append(stack, [2]int{nx, ny})
			}
		}
	}
	return minX, minY, maxX, maxY, count
}
