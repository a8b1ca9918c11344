package gui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/cubelife/internal/app"
	"github.com/san-kum/cubelife/internal/config"
	"github.com/san-kum/cubelife/internal/rotation"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(255, 170, 34, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(40, 40, 40, 255)
	ColDead    = rl.NewColor(24, 24, 24, 255)
)

type App struct {
	Session  *app.Session
	Camera   rl.Camera3D
	Distance float64
	Font     rl.Font

	panel   panel
	zooming bool
}

func initWindow() {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "cubelife")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono from the system path, falling back to the
// raylib default font when it is missing.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp creates the window state for cfg. The window must already be open.
func NewApp(cfg *config.Config) (*App, error) {
	s, err := app.NewSession(cfg, float64(rl.GetScreenWidth()))
	if err != nil {
		return nil, err
	}
	a := &App{
		Session: s,
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, 20, 20),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			45.0,
			rl.CameraPerspective,
		),
		Distance: 1.8 * float64(max(cfg.Width, cfg.Height)),
		Font:     loadFont(),
		panel:    newPanel(s.Scene()),
	}
	a.Distance = min(max(a.Distance, minDistance), maxDistance)
	s.Rotation().SetKnob(a.panel.knobRect())
	return a, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	initWindow()
	defer rl.CloseWindow()
	a, err := NewApp(cfg)
	if err != nil {
		return err
	}
	a.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles one frame of input and returns true when the user quits.
func (a *App) Update() bool {
	s := a.Session
	if rl.IsKeyPressed(rl.KeyQ) {
		s.Player().Stop()
		return true
	}

	if s.Resize(float64(rl.GetScreenWidth())) {
		a.panel = newPanel(s.Scene())
		s.Rotation().SetKnob(a.panel.knobRect())
	}

	for _, b := range buttons {
		if rl.IsKeyPressed(b.key) {
			a.action(b.key)
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.action(rl.KeyP)
	}

	a.handleMouse()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.setDistance(min(max(a.Distance-float64(wheel)*2, minDistance), maxDistance))
	}

	s.Rotation().Frame(a.applyAngles)

	if s.Player().Due(time.Now()) {
		s.StepOnce()
	}
	return false
}

// action runs the board command bound to key, shared by keys and buttons.
func (a *App) action(key int32) {
	s := a.Session
	switch key {
	case rl.KeyS:
		s.StepOnce()
	case rl.KeyC:
		s.Clear()
	case rl.KeyR:
		s.Randomize()
	case rl.KeyP:
		// ticks come from Due, not from a command
		s.TogglePlay()
	case rl.KeyO:
		s.ToggleColorize()
	}
}

func (a *App) handleMouse() {
	s := a.Session
	rot := s.Rotation()
	v := rl.GetMousePosition()
	p := rotation.Point{X: float64(v.X), Y: float64(v.Y)}

	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		if c, ok := a.panel.cellAt(v); ok {
			s.ToggleCell(c)
			return
		}
		if i, ok := a.panel.buttonAt(v); ok {
			a.action(buttons[i].key)
			return
		}
		if !rot.Press(p) {
			a.zooming = true
			a.setDistance(distanceAt(a.panel.knobPos(v.X)))
		}
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		a.zooming = false
		rot.Release()
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		if a.zooming {
			a.setDistance(distanceAt(a.panel.knobPos(v.X)))
			return
		}
		rot.Drag(p)
	}
}

func (a *App) setDistance(d float64) {
	a.Distance = d
	a.applyAngles(a.Session.Rotation().Angles())
}

func (a *App) applyAngles(ang rotation.Angles) {
	a.Camera.Position = orbit(ang, a.Distance)
}
