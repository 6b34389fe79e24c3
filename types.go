package main

import "image"

// pixelRect is a square on the terminal canvas, in pixels.
type pixelRect struct {
	X, Y, Side int
}

func (r pixelRect) selection() Selection {
	return Selection{X: float64(r.X), Y: float64(r.Y), SideLength: float64(r.Side)}
}

func (r pixelRect) onBorder(x, y int) bool {
	if x < r.X || y < r.Y || x >= r.X+r.Side || y >= r.Y+r.Side {
		return false
	}
	return x == r.X || y == r.Y || x == r.X+r.Side-1 || y == r.Y+r.Side-1
}

type model struct {
	width          int
	height         int
	canvasSize     int
	mode           Mode
	help           bool
	renderer       *Renderer
	fractal        Fractal
	julia          Julia
	frame          *image.RGBA
	cells          [][]string
	painter        *cellPainter
	selection      pixelRect
	dragging       bool
	dragX          int
	dragY          int
	filename       string
	confirmAction  ConfirmAction
	errorMessage   string
	successMessage string
	config         *Config
}
