package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	cw, ch := m.canvas()
	contentWidth := max(minCanvasW, m.width)

	header := titleStyle.Render(" polycity ─ low-poly city flythrough ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	canvas := lipgloss.NewStyle().Width(cw).Height(ch).MaxHeight(ch).Render(m.renderer.String())
	body := canvas
	if m.hudVisible() {
		hud := boxStyle.Width(hudWidth).Render(m.tbl.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, canvas, " ", hud)
	}

	status := dimStyle.Render(fmt.Sprintf(" %s  frame %s ", m.status, humanize.Comma(int64(m.app.Frames()))))
	footer := lipgloss.JoinVertical(lipgloss.Left, status, " "+m.help.View(m.keys))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).MaxHeight(m.height).Render(ui)
}
