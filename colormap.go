package main

import (
	"image"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	hueStart = 270.0
	hueSpan  = 80.0
)

// Colorize turns an escape grid into an opaque RGBA image. Hues are spread by
// the cumulative share of each escape time within this frame, so the same
// escape time can get a different color in a frame with another distribution.
// In-set pixels are black.
func Colorize(grid EscapeGrid) *image.RGBA {
	palette := histogramPalette(grid)
	img := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for i, n := range grid.Counts {
		c := color.RGBA{A: 255}
		if n < grid.MaxIterations {
			c = palette[n]
		}
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = c.A
	}
	return img
}

// histogramPalette assigns a color to every escape time present in grid.
func histogramPalette(grid EscapeGrid) map[int]color.RGBA {
	histogram := make(map[int]int)
	escaped := 0
	for _, n := range grid.Counts {
		if n < grid.MaxIterations {
			histogram[n]++
			escaped++
		}
	}
	palette := make(map[int]color.RGBA, len(histogram))
	if escaped == 0 {
		return palette
	}

	keys := make([]int, 0, len(histogram))
	for k := range histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	sum := 0
	for _, k := range keys {
		sum += histogram[k]
		hue := hueStart - (float64(sum)/float64(escaped))*hueSpan
		palette[k] = truncateRGB(colorful.Hsv(hue, 1, 1))
	}
	return palette
}

// truncateRGB scales each channel to a byte, dropping the fraction.
func truncateRGB(c colorful.Color) color.RGBA {
	return color.RGBA{R: uint8(c.R * 255), G: uint8(c.G * 255), B: uint8(c.B * 255), A: 255}
}
