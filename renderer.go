package main

import (
	"image"
	"log/slog"
	"sync"
)

// Renderer is one rendering session: a viewport history plus the sampling
// and coloring pipeline. Each operation holds the lock for the stack change
// and the render that follows it.
type Renderer struct {
	mu            sync.Mutex
	viewports     *ViewportStack
	maxIterations int
}

func NewRenderer(maxIterations int) *Renderer {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &Renderer{
		viewports:     NewViewportStack(),
		maxIterations: maxIterations,
	}
}

// Render draws the current viewport on a square canvas.
func (r *Renderer) Render(canvasSize int, f Fractal) *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renderLocked(canvasSize, f)
}

// Zoom pushes the selection and draws the new viewport.
func (r *Renderer) Zoom(sel Selection, canvasSize int, f Fractal) *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.viewports.Push(sel, canvasSize)
	return r.renderLocked(canvasSize, f)
}

// Jump pushes an explicit area and draws it.
func (r *Renderer) Jump(area Area, canvasSize int, f Fractal) *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.viewports.PushArea(area)
	return r.renderLocked(canvasSize, f)
}

// Undo goes back one viewport. It returns false and no image at the root.
func (r *Renderer) Undo(canvasSize int, f Fractal) (*image.RGBA, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.viewports.Pop() {
		return nil, false
	}
	return r.renderLocked(canvasSize, f), true
}

// Redo reapplies the last undone zoom, if any.
func (r *Renderer) Redo(canvasSize int, f Fractal) (*image.RGBA, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.viewports.Redo() {
		return nil, false
	}
	return r.renderLocked(canvasSize, f), true
}

// Reset returns to the root viewport and draws it.
func (r *Renderer) Reset(canvasSize int, f Fractal) *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.viewports.Reset()
	return r.renderLocked(canvasSize, f)
}

func (r *Renderer) Viewport() Area {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewports.Current()
}

func (r *Renderer) Depth() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewports.Depth()
}

// History lists the zoom history, root first.
func (r *Renderer) History() []Area {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewports.History()
}

func (r *Renderer) renderLocked(canvasSize int, f Fractal) *image.RGBA {
	area := r.viewports.Current()
	f = fractalOrDefault(f)
	slog.Debug("render", "size", canvasSize, "area", area.String(), "fractal", f.String(), "depth", r.viewports.Depth())
	grid := Sample(canvasSize, canvasSize, area, f, r.maxIterations)
	return Colorize(grid)
}
