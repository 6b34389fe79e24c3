package main

// ViewportStack is the zoom history. The root view is held outside the slice,
// so the stack can never be empty and the root can never be popped.
type ViewportStack struct {
	root      Area
	zoomStack []Area
	redoStack []Area
}

func NewViewportStack() *ViewportStack {
	return &ViewportStack{root: DefaultArea}
}

// Current returns the top of the stack.
func (s *ViewportStack) Current() Area {
	if len(s.zoomStack) == 0 {
		return s.root
	}
	return s.zoomStack[len(s.zoomStack)-1]
}

// Depth counts the root, so it is always at least 1.
func (s *ViewportStack) Depth() int {
	return len(s.zoomStack) + 1
}

// Push derives a new area from a selection made on a canvasSize x canvasSize
// canvas showing the current area. The selection is not bounds checked.
func (s *ViewportStack) Push(sel Selection, canvasSize int) {
	top := s.Current()
	size := float64(canvasSize)
	xFrac := sel.X / size
	yFrac := sel.Y / size
	lenFrac := sel.SideLength / size
	s.PushArea(Area{
		OriginX:    top.OriginX + xFrac*top.SideLength,
		OriginY:    top.OriginY + yFrac*top.SideLength,
		SideLength: top.SideLength * lenFrac,
	})
}

// PushArea makes area the new top.
func (s *ViewportStack) PushArea(area Area) {
	s.zoomStack = append(s.zoomStack, area)
	s.redoStack = s.redoStack[:0]
}

// Pop drops the top. At the root it does nothing and reports false.
func (s *ViewportStack) Pop() bool {
	if len(s.zoomStack) == 0 {
		return false
	}
	last := len(s.zoomStack) - 1
	s.redoStack = append(s.redoStack, s.zoomStack[last])
	s.zoomStack = s.zoomStack[:last]
	return true
}

// Redo pushes back the area most recently removed by Pop.
func (s *ViewportStack) Redo() bool {
	if len(s.redoStack) == 0 {
		return false
	}
	last := len(s.redoStack) - 1
	s.zoomStack = append(s.zoomStack, s.redoStack[last])
	s.redoStack = s.redoStack[:last]
	return true
}

// Reset returns to the root view and forgets the redo list.
func (s *ViewportStack) Reset() bool {
	changed := len(s.zoomStack) > 0
	s.zoomStack = s.zoomStack[:0]
	s.redoStack = s.redoStack[:0]
	return changed
}

// History returns a copy of the stack, root first.
func (s *ViewportStack) History() []Area {
	out := make([]Area, 0, s.Depth())
	out = append(out, s.root)
	return append(out, s.zoomStack...)
}
