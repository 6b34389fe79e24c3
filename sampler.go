package main

import "math/cmplx"

const escapeRadius = 2.0

// EscapeGrid holds one escape time per pixel, row-major.
// Values are in [0, MaxIterations]; MaxIterations marks an in-set pixel.
type EscapeGrid struct {
	Width         int
	Height        int
	MaxIterations int
	Counts        []int
}

// At returns the escape time of pixel (x, y).
func (g EscapeGrid) At(x, y int) int {
	return g.Counts[y*g.Width+x]
}

// Sample computes the escape time of every pixel of a width x height grid laid
// over area. Pixel (px, py) maps to origin + side*(px/width, py/height), so the
// grid covers the half-open square [origin, origin+side).
func Sample(width, height int, area Area, f Fractal, maxIterations int) EscapeGrid {
	f = fractalOrDefault(f)
	grid := EscapeGrid{
		Width:         width,
		Height:        height,
		MaxIterations: maxIterations,
		Counts:        make([]int, 0, width*height),
	}
	for py := 0; py < height; py++ {
		im := area.OriginY + area.SideLength*(float64(py)/float64(height))
		for px := 0; px < width; px++ {
			re := area.OriginX + area.SideLength*(float64(px)/float64(width))
			z0 := complex(re, im)
			grid.Counts = append(grid.Counts, escapeTime(z0, f.constant(z0), maxIterations))
		}
	}
	return grid
}

// escapeTime returns the first iteration index at which |z| exceeds the
// escape radius, or maxIterations if it never does.
func escapeTime(z, c complex128, maxIterations int) int {
	for i := 0; i <= maxIterations; i++ {
		if cmplx.Abs(z) > escapeRadius {
			return i
		}
		z = z*z + c
	}
	return maxIterations
}
