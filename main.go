package main

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

var (
	statusStyle = lipgloss.NewStyle().Reverse(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func initialModel(config *Config, fractal Fractal) model {
	return model{
		mode:     ModeExplore,
		renderer: NewRenderer(config.MaxIterations),
		fractal:  fractalOrDefault(fractal),
		julia:    config.Julia,
		painter:  newCellPainter(),
		filename: "frakt",
		config:   config,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		size := canvasSizeFor(msg.Width, msg.Height)
		if size != m.canvasSize || m.frame == nil {
			// The viewport is resolution independent, so a resize only
			// needs a fresh render of the same area.
			m.canvasSize = size
			m.renderCurrent()
			m.selection = defaultSelection(size)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			}
			return m, nil
		}
		switch m.mode {
		case ModeSelect:
			return m.updateSelect(msg), nil
		case ModeFileInput:
			return m.updateFileInput(msg), nil
		case ModeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateExplore(msg)
		}
	}
	return m, nil
}

func (m model) updateExplore(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.frame == nil {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}
	m.errorMessage = ""
	m.successMessage = ""
	switch msg.String() {
	case "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
	case "s", "enter", " ":
		m.mode = ModeSelect
		m.ensureSelectionInBounds()
	case "u", "backspace":
		m.undo()
	case "r", "ctrl+r":
		m.redo()
	case "0", "home":
		if m.renderer.Depth() > 1 && m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmReset
			return m, nil
		}
		m.reset()
	case "m":
		m.toggleFractal()
	case "e":
		m.mode = ModeFileInput
	case "y":
		if err := m.yankViewport(); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "Viewport copied"
		}
	case "p":
		if err := m.pasteViewport(); err != nil {
			m.errorMessage = err.Error()
		}
	}
	return m, nil
}

func (m model) updateSelect(msg tea.KeyMsg) tea.Model {
	key := msg.String()
	switch key {
	case "esc":
		m.mode = ModeExplore
	case "enter", " ":
		m.mode = ModeExplore
		m.zoomToSelection()
	case "+", "=", "-", "_":
		m.handleSelectionResize(key, m.getMoveSpeed(key))
	default:
		m.handleSelectionMove(key, m.getMoveSpeed(key))
	}
	return m
}

func (m model) updateFileInput(msg tea.KeyMsg) tea.Model {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeExplore
		m.errorMessage = ""
	case tea.KeyEnter:
		if strings.TrimSpace(m.filename) == "" {
			m.errorMessage = "Please enter a filename"
			return m
		}
		path, err := m.exportPath()
		if err != nil {
			m.errorMessage = err.Error()
			return m
		}
		if fileExists(path) && m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return m
		}
		m.finishExport(path)
	case tea.KeyBackspace:
		if len(m.filename) > 0 {
			runes := []rune(m.filename)
			m.filename = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes:
		m.filename += string(msg.Runes)
	}
	return m
}

func (m *model) finishExport(path string) {
	if err := m.exportPNG(path); err != nil {
		m.mode = ModeFileInput
		m.errorMessage = fmt.Sprintf("Error exporting PNG: %s", err.Error())
		return
	}
	m.mode = ModeExplore
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Exported %s", displayName(path))
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeExplore
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmReset:
			m.reset()
		case ConfirmOverwriteFile:
			path, err := m.exportPath()
			if err != nil {
				m.mode = ModeFileInput
				m.errorMessage = err.Error()
				return m, nil
			}
			m.finishExport(path)
		}
	case "n", "N", "esc":
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
		} else {
			m.mode = ModeExplore
		}
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) tea.Model {
	if m.frame == nil || m.mode == ModeFileInput || m.mode == ModeConfirm {
		return m
	}
	x, y := msg.X, msg.Y*2
	switch msg.Type {
	case tea.MouseLeft, tea.MouseMotion:
		if !m.dragging {
			if msg.Type != tea.MouseLeft || x >= m.canvasSize || y >= m.canvasSize {
				return m
			}
			m.dragging = true
			m.dragX, m.dragY = x, y
			m.mode = ModeSelect
		}
		m.dragTo(x, y)
	case tea.MouseRelease:
		if m.dragging {
			m.dragging = false
			m.mode = ModeExplore
			m.zoomToSelection()
		}
	}
	return m
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	if m.frame == nil {
		return "Rendering..."
	}

	var sel *pixelRect
	if m.mode == ModeSelect {
		sel = &m.selection
	}
	lines := renderCanvas(m.cells, m.frame, sel, m.painter)

	var result strings.Builder
	result.WriteString(strings.Join(lines, "\n"))
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	var status string
	switch m.mode {
	case ModeSelect:
		status = fmt.Sprintf("Mode: SELECT | (%d,%d) side %d | hjkl/arrows=move, +/-=resize, Enter=zoom, Esc=cancel",
			m.selection.X, m.selection.Y, m.selection.Side)
	case ModeFileInput:
		status = fmt.Sprintf("Mode: FILE | Export PNG filename: %s | Enter=confirm, Esc=cancel", m.filename)
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit frakt? (y/n)"
		case ConfirmReset:
			message = "Discard zoom history and return to the start view? (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.exportName())
		}
		status = fmt.Sprintf("Mode: CONFIRM | %s", message)
	default:
		status = fmt.Sprintf("Mode: %s | %s | depth %d | %s",
			m.modeString(), m.fractal, m.renderer.Depth(), m.renderer.Viewport())
		if m.successMessage != "" {
			status += fmt.Sprintf(" | %s", m.successMessage)
		} else if m.errorMessage == "" {
			status += " | ? for help | q to quit"
		}
	}
	line := statusStyle.Render(status)
	if m.errorMessage != "" {
		line += " " + errorStyle.Render("ERROR: "+m.errorMessage)
	}
	return line
}

func (m model) modeString() string {
	switch m.mode {
	case ModeExplore:
		return "EXPLORE"
	case ModeSelect:
		return "SELECT"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"frakt Help",
		"==========",
		"",
		"Explore:",
		"--------",
		"  s/Enter/Space    Start a zoom selection",
		"  mouse drag       Select a square and zoom on release",
		"  u/Backspace      Go back to the previous view",
		"  r/Ctrl+r         Redo a zoom that was undone",
		"  0/Home           Return to the start view",
		"  m                Toggle Mandelbrot / Julia",
		"  e                Export the current view as PNG",
		"  y                Copy the viewport to the clipboard",
		"  p                Jump to a viewport from the clipboard (x,y,side)",
		"",
		"Select:",
		"-------",
		"  h/←/j/↓/k/↑/l/→  Move the selection",
		"  Shift+h/j/k/l    Move faster",
		"  +/-              Grow / shrink the selection",
		"  Enter            Zoom into the selection",
		"  Esc              Cancel",
		"",
		"  ?/q/Esc          Close help",
	}
	return helpStyle.Render(strings.Join(helpLines, "\n"))
}
