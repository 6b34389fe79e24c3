package main

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridOf(width, height, maxIterations int, counts ...int) EscapeGrid {
	return EscapeGrid{Width: width, Height: height, MaxIterations: maxIterations, Counts: counts}
}

func rgbaAt(pix []uint8, i int) color.RGBA {
	return color.RGBA{R: pix[i*4], G: pix[i*4+1], B: pix[i*4+2], A: pix[i*4+3]}
}

func TestColorizeAllInSetIsBlack(t *testing.T) {
	grid := gridOf(3, 2, 200, 200, 200, 200, 200, 200, 200)
	img := Colorize(grid)
	require.Len(t, img.Pix, 3*2*4)
	for i := 0; i < 6; i++ {
		assert.Equal(t, color.RGBA{A: 255}, rgbaAt(img.Pix, i))
	}
}

func TestColorizeBufferLayout(t *testing.T) {
	grid := Sample(13, 7, DefaultArea, Mandelbrot{}, DefaultMaxIterations)
	img := Colorize(grid)
	require.Len(t, img.Pix, 13*7*4)
	assert.Equal(t, 13*4, img.Stride)
	for i, n := range grid.Counts {
		c := rgbaAt(img.Pix, i)
		assert.Equal(t, uint8(255), c.A)
		if n == DefaultMaxIterations {
			assert.Equal(t, color.RGBA{A: 255}, c)
		}
	}
}

func TestColorizeIsDeterministic(t *testing.T) {
	grid := Sample(24, 24, DefaultArea, Mandelbrot{}, DefaultMaxIterations)
	assert.Equal(t, Colorize(grid).Pix, Colorize(grid).Pix)
}

func TestHistogramPaletteHues(t *testing.T) {
	// Escape times 1 and 3 each hold half of the escaped pixels.
	grid := gridOf(5, 1, 10, 1, 3, 10, 1, 3)
	palette := histogramPalette(grid)
	require.Len(t, palette, 2)

	assert.Equal(t, truncateRGB(colorful.Hsv(230, 1, 1)), palette[1])
	assert.Equal(t, truncateRGB(colorful.Hsv(190, 1, 1)), palette[3])
	assert.NotContains(t, palette, 10)
}

func TestTruncateRGB(t *testing.T) {
	// Channels truncate toward zero: hue 230 has green 0.1667, i.e. 42.5.
	assert.Equal(t, color.RGBA{R: 0, G: 42, B: 255, A: 255}, truncateRGB(colorful.Hsv(230, 1, 1)))
	assert.Equal(t, color.RGBA{R: 0, G: 212, B: 255, A: 255}, truncateRGB(colorful.Hsv(190, 1, 1)))
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 0, A: 255}, truncateRGB(colorful.Color{R: 1}))
}

func TestHistogramPaletteAdaptsToDistribution(t *testing.T) {
	even := histogramPalette(gridOf(2, 1, 10, 1, 2))
	skewed := histogramPalette(gridOf(4, 1, 10, 1, 1, 1, 2))
	assert.NotEqual(t, even[1], skewed[1])
	// The highest escape time always closes the cumulative share.
	assert.Equal(t, even[2], skewed[2])
}

func TestHistogramPaletteEmpty(t *testing.T) {
	assert.Empty(t, histogramPalette(gridOf(2, 1, 5, 5, 5)))
}
