package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleGridShape(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		area          Area
		fractal       Fractal
	}{
		{"default mandelbrot", 32, 32, DefaultArea, Mandelbrot{}},
		{"wide grid", 17, 5, DefaultArea, Mandelbrot{}},
		{"julia", 12, 12, DefaultArea, DefaultJulia},
		{"deep zoom", 9, 9, Area{OriginX: -0.745, OriginY: 0.113, SideLength: 1e-6}, Mandelbrot{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := Sample(tt.width, tt.height, tt.area, tt.fractal, DefaultMaxIterations)
			require.Len(t, grid.Counts, tt.width*tt.height)
			assert.Equal(t, tt.width, grid.Width)
			assert.Equal(t, tt.height, grid.Height)
			for _, n := range grid.Counts {
				assert.GreaterOrEqual(t, n, 0)
				assert.LessOrEqual(t, n, DefaultMaxIterations)
			}
		})
	}
}

func TestSampleCenterIsInSet(t *testing.T) {
	grid := Sample(100, 100, DefaultArea, Mandelbrot{}, DefaultMaxIterations)
	assert.Equal(t, DefaultMaxIterations, grid.At(50, 50))

	odd := Sample(101, 101, DefaultArea, nil, DefaultMaxIterations)
	assert.Equal(t, DefaultMaxIterations, odd.At(50, 50))
}

func TestSampleFarPointEscapesImmediately(t *testing.T) {
	grid := Sample(1, 1, Area{OriginX: 3, OriginY: 3, SideLength: 1}, Mandelbrot{}, DefaultMaxIterations)
	assert.Equal(t, 0, grid.At(0, 0))
	assert.Equal(t, 0, escapeTime(complex(3, 3), complex(3, 3), DefaultMaxIterations))
}

func TestSampleHalfOpenSquare(t *testing.T) {
	// With side 4 and two pixels the samples are at re = -2 and re = 0;
	// re = 2 (the closed edge) is never sampled.
	grid := Sample(2, 1, Area{OriginX: -2, OriginY: 0, SideLength: 4}, Mandelbrot{}, DefaultMaxIterations)
	assert.Equal(t, escapeTime(complex(-2, 0), complex(-2, 0), DefaultMaxIterations), grid.At(0, 0))
	assert.Equal(t, DefaultMaxIterations, grid.At(1, 0))
}

func TestSampleJuliaUsesFixedConstant(t *testing.T) {
	// With c = 0 the Julia set is the unit disc: inside points never escape,
	// points outside radius 1 eventually do.
	j := Julia{C: 0}
	grid := Sample(2, 1, Area{OriginX: 0, OriginY: 0, SideLength: 3}, j, DefaultMaxIterations)
	assert.Equal(t, DefaultMaxIterations, grid.At(0, 0))
	assert.Less(t, grid.At(1, 0), DefaultMaxIterations)
}

func TestSampleRespectsIterationCap(t *testing.T) {
	grid := Sample(10, 10, DefaultArea, Mandelbrot{}, 5)
	assert.Equal(t, 5, grid.MaxIterations)
	for _, n := range grid.Counts {
		assert.LessOrEqual(t, n, 5)
	}
	assert.Equal(t, 5, grid.At(5, 5))
}
