package main

func (m *model) handleSelectionMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.selection.X -= speed
	case "l", "right", "L", "shift+right":
		m.selection.X += speed
	case "k", "up", "K", "shift+up":
		m.selection.Y -= 2 * speed
	case "j", "down", "J", "shift+down":
		m.selection.Y += 2 * speed
	}
	m.ensureSelectionInBounds()
}

func (m *model) handleSelectionResize(key string, speed int) {
	switch key {
	case "+", "=":
		m.selection.Side += 2 * speed
	case "-", "_":
		m.selection.Side -= 2 * speed
	}
	m.ensureSelectionInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return fastMoveSpeed
	default:
		return 1
	}
}

// ensureSelectionInBounds keeps the selection square inside the canvas.
func (m *model) ensureSelectionInBounds() {
	size := m.canvasSize
	if m.selection.Side > size {
		m.selection.Side = size
	}
	if m.selection.Side < minSelectionSide {
		m.selection.Side = minSelectionSide
	}
	m.selection.X = max(0, min(m.selection.X, size-m.selection.Side))
	m.selection.Y = max(0, min(m.selection.Y, size-m.selection.Side))
}

func defaultSelection(size int) pixelRect {
	side := max(size/2, minSelectionSide)
	return pixelRect{X: (size - side) / 2, Y: (size - side) / 2, Side: side}
}

// dragTo grows the selection from the drag anchor towards the pointer,
// keeping it square.
func (m *model) dragTo(x, y int) {
	side := max(abs(x-m.dragX), abs(y-m.dragY)) + 1
	m.selection = pixelRect{X: m.dragX, Y: m.dragY, Side: side}
	if x < m.dragX {
		m.selection.X = m.dragX - side + 1
	}
	if y < m.dragY {
		m.selection.Y = m.dragY - side + 1
	}
	m.ensureSelectionInBounds()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
