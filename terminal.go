package main

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Each terminal cell shows two vertically stacked pixels: the upper half
// block takes the top pixel as foreground and the bottom one as background.
const halfBlock = "▀"

var selectionColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

type cellPainter struct {
	cache map[[2]color.RGBA]string
}

func newCellPainter() *cellPainter {
	return &cellPainter{cache: make(map[[2]color.RGBA]string)}
}

func (p *cellPainter) paint(top, bottom color.RGBA) string {
	key := [2]color.RGBA{top, bottom}
	if s, ok := p.cache[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor(top))).
		Background(lipgloss.Color(hexColor(bottom))).
		Render(halfBlock)
	p.cache[key] = s
	return s
}

func hexColor(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// canvasSizeFor picks the largest even square that fits the terminal,
// keeping one line for the status bar.
func canvasSizeFor(width, height int) int {
	size := min(width, 2*(height-1))
	size -= size % 2
	if size > MaxCanvasSize {
		size = MaxCanvasSize
	}
	return max(size, minSelectionSide)
}

func pixelAt(img *image.RGBA, x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return color.RGBA{A: 255}
	}
	return img.RGBAAt(x, y)
}

// frameCells paints every cell of img once, so that cursor moves only
// repaint the cells under the selection border.
func frameCells(img *image.RGBA, painter *cellPainter) [][]string {
	b := img.Bounds()
	rows := (b.Dy() + 1) / 2
	cells := make([][]string, rows)
	for row := range cells {
		cells[row] = make([]string, b.Dx())
		for x := range cells[row] {
			cells[row][x] = painter.paint(pixelAt(img, x, 2*row), pixelAt(img, x, 2*row+1))
		}
	}
	return cells
}

// renderCanvas joins the cached cells into lines, drawing sel on top when set.
func renderCanvas(cells [][]string, img *image.RGBA, sel *pixelRect, painter *cellPainter) []string {
	lines := make([]string, len(cells))
	var b strings.Builder
	for row, rowCells := range cells {
		b.Reset()
		for x, cell := range rowCells {
			if sel != nil && (sel.onBorder(x, 2*row) || sel.onBorder(x, 2*row+1)) {
				top, bottom := pixelAt(img, x, 2*row), pixelAt(img, x, 2*row+1)
				if sel.onBorder(x, 2*row) {
					top = selectionColor
				}
				if sel.onBorder(x, 2*row+1) {
					bottom = selectionColor
				}
				cell = painter.paint(top, bottom)
			}
			b.WriteString(cell)
		}
		lines[row] = b.String()
	}
	return lines
}
