// Package tui hosts the city flythrough in a terminal with bubbletea.
package tui

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"polycity/internal/app"
	"polycity/internal/config"
	"polycity/internal/render"
)

const (
	headerHeight = 1
	footerHeight = 2
	hudWidth     = 26
	hudGutter    = 3
	minCanvasW   = 10
	minCanvasH   = 4
)

type frameMsg time.Time

type Model struct {
	width  int
	height int

	app      *app.App
	renderer *render.Renderer
	interval time.Duration

	showHUD bool
	tbl     table.Model
	keys    keyMap
	help    help.Model

	status string
}

// New generates a city from cfg and rng and wraps it in a terminal model.
func New(cfg config.Config, rng *rand.Rand) (Model, error) {
	mode, err := render.ParseMode(cfg.Render.Mode)
	if err != nil {
		return Model{}, err
	}
	r := render.New(mode)
	m := Model{
		app:      app.New(cfg, rng, r),
		renderer: r,
		interval: time.Second / time.Duration(max(1, cfg.Render.FPS)),
		showHUD:  cfg.Render.HUD,
		keys:     newKeyMap(),
		help:     help.New(),
		status:   "polycity ready",
	}
	m.tbl = newHUDTable()
	m.refreshHUD()
	return m, nil
}

// App exposes the scene owner, mainly for tests.
func (m Model) App() *app.App { return m.app }

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// canvas returns the size in cells of the area the scene is drawn into.
func (m Model) canvas() (w, h int) {
	w = m.width
	if m.hudVisible() {
		w -= hudWidth + hudGutter
	}
	h = m.height - headerHeight - footerHeight
	return max(minCanvasW, w), max(minCanvasH, h)
}

// hudVisible reports whether the terminal is wide enough to fit the HUD
// next to a usable canvas.
func (m Model) hudVisible() bool {
	return m.showHUD && m.width-hudWidth-hudGutter >= minCanvasW
}
