package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/cubelife/internal/app"
	"github.com/san-kum/cubelife/internal/autoplay"
	"github.com/san-kum/cubelife/internal/config"
	"github.com/san-kum/cubelife/internal/rotation"
	"github.com/san-kum/cubelife/internal/viz"
)

const (
	frameInterval = 16 * time.Millisecond
	minInterval   = 50 * time.Millisecond
	maxInterval   = 4 * time.Second
)

type model struct {
	session *app.Session
	camera  *viz.Camera
	theme   viz.Theme
	layout  layout

	cellW, cellH float64
	zooming      bool

	width  int
	height int
}

// newApp builds the terminal front end for cfg. The viewport starts at a
// nominal 80x24 until the first window size arrives.
func newApp(cfg *config.Config) (*model, error) {
	m := &model{
		camera: viz.NewCamera(),
		theme:  viz.GetTheme(cfg.Theme),
		layout: newLayout(cfg.Width, cfg.Height),
		cellW:  cfg.Layout.CellWidthPx,
		cellH:  cfg.Layout.CellHeightPx,
		width:  80,
		height: 24,
	}
	s, err := app.NewSession(cfg, float64(m.width)*m.cellW)
	if err != nil {
		return nil, err
	}
	m.session = s
	s.Rotation().SetKnob(m.layout.knobRect(m.cellW, m.cellH))
	s.Rotation().Frame(m.camera.SetAngles)
	return m, nil
}

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m model) Init() tea.Cmd { return frame() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.session.Resize(float64(msg.Width) * m.cellW)
		return m, nil
	case autoplay.TickMsg:
		return m, m.session.HandleTick(msg)
	case frameMsg:
		m.session.Rotation().Frame(m.camera.SetAngles)
		return m, frame()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.session.Player().Stop()
		return m, tea.Quit
	case "t":
		m.theme = viz.NextTheme(m.theme)
	case "+", "=":
		m.camera.ZoomIn()
	case "-", "_":
		m.camera.ZoomOut()
	case "[":
		p := m.session.Player()
		p.SetInterval(min(p.Interval()*2, maxInterval))
	case "]":
		p := m.session.Player()
		p.SetInterval(max(p.Interval()/2, minInterval))
	default:
		return m.action(msg.String())
	}
	return m, nil
}

// action runs the board command bound to key, shared by keys and buttons.
func (m model) action(key string) (model, tea.Cmd) {
	switch key {
	case "s":
		m.session.StepOnce()
	case "c":
		m.session.Clear()
	case "r":
		m.session.Randomize()
	case "p", " ":
		return m, m.session.TogglePlay()
	case "o":
		m.session.ToggleColorize()
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (model, tea.Cmd) {
	p := rotation.Point{X: float64(msg.X) * m.cellW, Y: float64(msg.Y) * m.cellH}
	rot := m.session.Rotation()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if c, ok := m.layout.cellAt(msg.X, msg.Y); ok {
			m.session.ToggleCell(c)
			return m, nil
		}
		if i, ok := m.layout.buttonAt(msg.X, msg.Y); ok {
			return m.action(buttons[i].key)
		}
		if m.layout.onKnob(msg.X, msg.Y) {
			m.zooming = true
			m.camera.SetZoom(zoomAt(m.layout.knobPos(msg.X)))
			return m, nil
		}
		rot.Press(p)
	case tea.MouseActionMotion:
		if m.zooming {
			m.camera.SetZoom(zoomAt(m.layout.knobPos(msg.X)))
			return m, nil
		}
		rot.Move(p)
	case tea.MouseActionRelease:
		m.zooming = false
		rot.Release()
	}
	return m, nil
}

// Run starts the terminal front end and blocks until the user quits.
func Run(cfg *config.Config) error {
	m, err := newApp(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}
