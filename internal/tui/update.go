package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cw, ch := m.canvas()
		px, py := m.renderer.PixelsPerCell()
		m.app.Resize(cw*px, ch*py)
		m.status = fmt.Sprintf("canvas %dx%d", cw, ch)
		slog.Debug("Terminal resized", "cols", msg.Width, "rows", msg.Height)
		return m, nil
	case frameMsg:
		w, h := m.app.Size()
		if w > 0 && h > 0 {
			m.app.Frame()
			m.refreshHUD()
		}
		return m, m.tick()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			slog.Info("Quit", "frames", m.app.Frames())
			return m, tea.Quit
		}
	}
	return m, nil
}
