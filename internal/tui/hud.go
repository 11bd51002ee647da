package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"polycity/internal/scene"
)

func newHUDTable() table.Model {
	cols := []table.Column{
		{Title: "layer", Width: 10},
		{Title: "value", Width: hudWidth - 16},
	}
	s := table.DefaultStyles()
	s.Header = s.Header.Foreground(accentFg).Bold(true)
	s.Selected = lipgloss.NewStyle()
	t := table.New(table.WithColumns(cols), table.WithFocused(false), table.WithStyles(s), table.WithWidth(hudWidth-2))
	return t
}

// hudRows lists the scene contents followed by the camera state.
func (m Model) hudRows() []table.Row {
	w := m.app.World
	cam := m.app.Camera
	rows := []table.Row{
		{"ground", fmt.Sprintf("%d", w.Count(scene.KindGround))},
		{"roads", fmt.Sprintf("%d", w.Count(scene.KindRoad))},
		{"buildings", fmt.Sprintf("%d", w.Count(scene.KindBuilding))},
		{"trees", fmt.Sprintf("%d", w.Count(scene.KindTree))},
		{"cars", fmt.Sprintf("%d", w.Count(scene.KindCar))},
		{"time", fmt.Sprintf("%.4f", m.app.Controller.Time())},
		{"cam x", fmt.Sprintf("%.1f", cam.Position.X())},
		{"cam y", fmt.Sprintf("%.1f", cam.Position.Y())},
		{"cam z", fmt.Sprintf("%.1f", cam.Position.Z())},
		{"mode", m.renderer.Mode().String()},
	}
	return rows
}

// refreshHUD rebuilds the table rows from the current scene and camera.
func (m *Model) refreshHUD() {
	rows := m.hudRows()
	m.tbl.SetRows(rows)
	m.tbl.SetHeight(len(rows) + 2)
}
