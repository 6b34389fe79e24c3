package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

func (m *model) setFrame(img *image.RGBA) {
	m.frame = img
	m.cells = frameCells(img, m.painter)
}

func (m *model) renderCurrent() {
	m.setFrame(m.renderer.Render(m.canvasSize, m.fractal))
}

func (m *model) zoomToSelection() {
	m.setFrame(m.renderer.Zoom(m.selection.selection(), m.canvasSize, m.fractal))
	slog.Info("zoom", "area", m.renderer.Viewport().String(), "depth", m.renderer.Depth())
}

func (m *model) undo() {
	img, ok := m.renderer.Undo(m.canvasSize, m.fractal)
	if !ok {
		m.successMessage = "Already at the root view"
		return
	}
	m.setFrame(img)
}

func (m *model) redo() {
	img, ok := m.renderer.Redo(m.canvasSize, m.fractal)
	if !ok {
		m.successMessage = "Nothing to redo"
		return
	}
	m.setFrame(img)
}

func (m *model) reset() {
	m.setFrame(m.renderer.Reset(m.canvasSize, m.fractal))
}

func (m *model) toggleFractal() {
	if _, ok := m.fractal.(Julia); ok {
		m.fractal = Mandelbrot{}
	} else {
		m.fractal = m.julia
	}
	m.renderCurrent()
}

func (m *model) yankViewport() error {
	area := m.renderer.Viewport()
	if err := clipboard.WriteAll(area.String()); err != nil {
		return fmt.Errorf("copy viewport: %w", err)
	}
	return nil
}

func (m *model) pasteViewport() error {
	text, err := clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	area, err := ParseArea(text)
	if err != nil {
		return err
	}
	m.setFrame(m.renderer.Jump(area, m.canvasSize, m.fractal))
	return nil
}

func (m *model) exportName() string {
	name := m.filename
	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		name += ".png"
	}
	return name
}

func (m *model) exportPath() (string, error) {
	return m.config.GetSavePath(m.exportName())
}

func (m *model) exportPNG(path string) error {
	img := m.renderer.Render(m.config.ExportSize, m.fractal)
	caption := exportCaption(m.renderer.Viewport(), m.fractal, m.renderer.Depth())
	if err := ExportPNG(path, img, caption); err != nil {
		return err
	}
	slog.Info("exported", "file", path, "size", m.config.ExportSize)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func displayName(path string) string {
	return filepath.Base(path)
}
