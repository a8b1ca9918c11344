// Package app wires the simulator, the cube scene and the input controllers
// into one session owned by a front end's event loop.
package app

import (
	"fmt"
	"log"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/cubelife/internal/autoplay"
	"github.com/san-kum/cubelife/internal/config"
	"github.com/san-kum/cubelife/internal/life"
	"github.com/san-kum/cubelife/internal/metrics"
	"github.com/san-kum/cubelife/internal/rotation"
	"github.com/san-kum/cubelife/internal/scene"
	"github.com/san-kum/cubelife/internal/viewport"
)

const historyCapacity = 120

// Session owns every piece of mutable state of one board. It is not safe for
// concurrent use; the owning loop serialises all calls.
type Session struct {
	grid     *life.Grid
	scene    *scene.Scene
	player   *autoplay.Player
	rotation *rotation.Controller
	scaler   *viewport.Scaler
	rng      *rand.Rand

	metrics []metrics.Metric
	history *metrics.History
}

// NewSession builds a session from cfg for a window viewportWidth pixels wide.
func NewSession(cfg *config.Config, viewportWidth float64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("create grid: %w", err)
	}

	sc := scene.New(cfg.Width, cfg.Height, scene.Layout{
		Spacing:   cfg.Layout.Spacing,
		TopOffset: cfg.Layout.TopOffset,
	})
	sc.Bind(grid)

	s := &Session{
		grid:     grid,
		scene:    sc,
		player:   autoplay.New(cfg.Interval()),
		rotation: rotation.New(rotation.Angles{X: cfg.Rotation.X, Y: cfg.Rotation.Y, Z: cfg.Rotation.Z}),
		scaler:   viewport.New(viewportWidth, cfg.Layout.MobileThreshold),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		metrics:  metrics.Defaults(),
		history:  metrics.NewHistory(historyCapacity),
	}

	// offsets are laid out for desktop; start small on a narrow window
	if s.scaler.Mobile() {
		sc.Rescale(viewport.ShrinkRatio)
	}

	if err := s.Seed(cfg.Pattern, cfg.Seed, cfg.NoiseScale); err != nil {
		return nil, err
	}
	if cfg.Colorize {
		sc.Colorize(true, s.rng)
	}
	s.history.Add(float64(grid.Population()))
	return s, nil
}

// Seed stamps a starting board: "random", "noise", a pattern name, or nothing.
func (s *Session) Seed(pattern string, seed int64, noiseScale float64) error {
	switch pattern {
	case "", "none":
		return nil
	case "random":
		s.grid.Randomize(s.rng)
		return nil
	case "noise":
		s.grid.SeedNoise(seed, noiseScale)
		return nil
	}
	p, err := life.LookupPattern(pattern)
	if err != nil {
		return err
	}
	return s.grid.Apply(p, s.grid.Center(p))
}

// StepOnce advances one generation and returns the number of flipped cells.
func (s *Session) StepOnce() int {
	flipped := s.grid.Step()
	for _, m := range s.metrics {
		m.Observe(s.grid, flipped)
	}
	s.history.Add(float64(s.grid.Population()))
	return flipped
}

// Clear kills every cell, stops auto-play and turns colorize off.
func (s *Session) Clear() {
	s.grid.Clear()
	s.player.Stop()
	s.scene.Colorize(false, s.rng)
	for _, m := range s.metrics {
		m.Reset()
	}
	s.history.Reset()
	s.history.Add(0)
	log.Printf("clear: board reset, autoplay %s", s.player.State())
}

func (s *Session) Randomize() {
	s.grid.Randomize(s.rng)
	s.history.Add(float64(s.grid.Population()))
	log.Printf("randomize: population %d", s.grid.Population())
}

// TogglePlay starts or stops auto-play. The command must be handed back to
// the bubbletea runtime; frame loops can ignore it and poll Due instead.
func (s *Session) TogglePlay() tea.Cmd {
	cmd := s.player.Toggle()
	log.Printf("autoplay: %s every %v", s.player.State(), s.player.Interval())
	return cmd
}

// HandleTick steps the board for a live auto-play tick.
func (s *Session) HandleTick(msg autoplay.TickMsg) tea.Cmd {
	fire, next := s.player.Handle(msg)
	if !fire {
		return nil
	}
	s.StepOnce()
	return next
}

func (s *Session) ToggleColorize() {
	s.scene.ToggleColorize(s.rng)
	log.Printf("colorize: %v", s.scene.Colorized())
}

func (s *Session) ToggleCell(c life.Coord) { s.grid.Toggle(c) }

// Resize feeds a new window width to the scaler and rescales the scene when
// the layout flips between mobile and desktop.
func (s *Session) Resize(width float64) bool {
	ratio, changed := s.scaler.Resize(width)
	if !changed {
		return false
	}
	s.scene.Rescale(ratio)
	log.Printf("resize: width %.0f mobile=%v ratio %.3f", width, s.scaler.Mobile(), ratio)
	return true
}

// Metrics returns the current value of every metric by name.
func (s *Session) Metrics() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s *Session) Grid() *life.Grid               { return s.grid }
func (s *Session) Scene() *scene.Scene            { return s.scene }
func (s *Session) Player() *autoplay.Player       { return s.player }
func (s *Session) Rotation() *rotation.Controller { return s.rotation }
func (s *Session) Scaler() *viewport.Scaler       { return s.scaler }
func (s *Session) History() []float64             { return s.history.Values() }
