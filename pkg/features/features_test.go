package features

import (
	"image"
	"image/color"
	"testing"
)

func uniformImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestAnalyzeUniformImage(t *testing.T) {
	img := uniformImage(256, 192, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	sum := Analyze(img)

	if sum.Brightness < 195 || sum.Brightness > 205 {
		t.Errorf("brightness = %.1f, want ~200", sum.Brightness)
	}
	// No edges anywhere: the room looks maximally open.
	if sum.SpaceScore < 0.99 {
		t.Errorf("space score = %.3f, want ~1.0", sum.SpaceScore)
	}
	if sum.Complexity > 0.01 {
		t.Errorf("complexity = %.3f, want ~0", sum.Complexity)
	}
	if len(sum.DominantColors) == 0 || sum.DominantColors[0] != "#CCCCCC" {
		t.Errorf("dominant colors = %v, want #CCCCCC first", sum.DominantColors)
	}
	if len(sum.Furniture) != 0 {
		t.Errorf("furniture regions = %v, want none", sum.Furniture)
	}
}

func TestAnalyzeBrightnessOrdering(t *testing.T) {
	dark := Analyze(uniformImage(128, 96, color.NRGBA{R: 30, G: 30, B: 30, A: 255}))
	bright := Analyze(uniformImage(128, 96, color.NRGBA{R: 230, G: 230, B: 230, A: 255}))

	if dark.Brightness >= bright.Brightness {
		t.Errorf("dark %.1f should be below bright %.1f", dark.Brightness, bright.Brightness)
	}
}

func TestAnalyzeDetectsStructure(t *testing.T) {
	// Left half black, right half white: a strong vertical edge.
	img := image.NewNRGBA(image.Rect(0, 0, 256, 192))
	for y := 0; y < 192; y++ {
		for x := 0; x < 256; x++ {
			v := uint8(0)
			if x >= 128 {
				v = 255
			}
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}

	sum := Analyze(img)
	if sum.Complexity <= 0 {
		t.Error("edge between halves not detected")
	}
	if sum.SpaceScore >= 1.0 {
		t.Errorf("space score = %.3f, want < 1.0", sum.SpaceScore)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	img := uniformImage(200, 150, color.NRGBA{R: 120, G: 90, B: 60, A: 255})

	a := Analyze(img)
	b := Analyze(img)
	if a.Brightness != b.Brightness || a.SpaceScore != b.SpaceScore {
		t.Error("Analyze is not deterministic")
	}
	if len(a.DominantColors) != len(b.DominantColors) {
		t.Fatal("dominant color counts differ across runs")
	}
	for i := range a.DominantColors {
		if a.DominantColors[i] != b.DominantColors[i] {
			t.Errorf("dominant color %d differs: %s vs %s", i, a.DominantColors[i], b.DominantColors[i])
		}
	}
}
