package app

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/cubelife/internal/autoplay"
	"github.com/san-kum/cubelife/internal/config"
	"github.com/san-kum/cubelife/internal/life"
	"github.com/san-kum/cubelife/internal/scene"
)

func newSession(t *testing.T, pattern string) *Session {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Pattern = pattern
	s, err := NewSession(cfg, 1024)
	if err != nil {
		t.Fatalf("new session failed: %v", err)
	}
	return s
}

func assertSynced(t *testing.T, s *Session) {
	t.Helper()
	for _, e := range s.Scene().Elements() {
		if e.Visible != (s.Grid().Status(e.Coord) == life.Alive) {
			t.Fatalf("element %v visible=%v out of sync", e.Coord, e.Visible)
		}
	}
}

func TestNewSessionInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Width = 0
	if _, err := NewSession(cfg, 1024); err == nil {
		t.Error("expected error for zero width")
	}

	cfg = config.DefaultConfig()
	cfg.Pattern = "nonexistent"
	if _, err := NewSession(cfg, 1024); !errors.Is(err, life.ErrUnknownPattern) {
		t.Errorf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestSeedPatterns(t *testing.T) {
	tests := []struct {
		pattern string
		check   func(*Session) bool
	}{
		{"", func(s *Session) bool { return s.Grid().Population() == 0 }},
		{"blinker", func(s *Session) bool { return s.Grid().Population() == 3 }},
		{"glider", func(s *Session) bool { return s.Grid().Population() == 5 }},
		{"noise", func(s *Session) bool { return s.Grid().Population() <= 100 }},
		{"random", func(s *Session) bool { return s.Grid().Population() <= 100 }},
	}

	for _, tt := range tests {
		s := newSession(t, tt.pattern)
		if !tt.check(s) {
			t.Errorf("pattern %q: unexpected population %d", tt.pattern, s.Grid().Population())
		}
		assertSynced(t, s)
	}
}

func TestStepOnceBlinker(t *testing.T) {
	s := newSession(t, "blinker")
	before := s.Grid().Cells()

	s.StepOnce()
	assertSynced(t, s)
	s.StepOnce()
	assertSynced(t, s)

	after := s.Grid().Cells()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("blinker did not return after two steps at %d", i)
		}
	}
	if len(s.History()) != 3 {
		t.Errorf("expected 3 history samples, got %d", len(s.History()))
	}
	if s.Metrics()["turnover"] != 4 {
		t.Errorf("expected turnover 4, got %f", s.Metrics()["turnover"])
	}
}

func TestClearStopsAutoplay(t *testing.T) {
	for _, running := range []bool{false, true} {
		s := newSession(t, "glider")
		if running {
			s.TogglePlay()
		}
		s.ToggleColorize()

		s.Clear()

		if s.Player().State() != autoplay.Stopped {
			t.Errorf("running=%v: expected stopped after clear", running)
		}
		if s.Grid().Population() != 0 {
			t.Errorf("expected empty grid after clear")
		}
		if s.Scene().Colorized() {
			t.Error("expected colorize off after clear")
		}
		for _, e := range s.Scene().Elements() {
			if e.Faces[scene.FaceTop] != scene.DefaultColor {
				t.Fatalf("expected default colour on %v", e.Coord)
			}
		}
		assertSynced(t, s)
	}
}

func TestHandleTick(t *testing.T) {
	s := newSession(t, "blinker")
	s.TogglePlay()

	if cmd := s.HandleTick(autoplay.TickMsg{Run: 1}); cmd == nil {
		t.Error("expected next tick command")
	}
	if s.Grid().Generation() != 1 {
		t.Errorf("expected generation 1, got %d", s.Grid().Generation())
	}

	s.TogglePlay()
	if cmd := s.HandleTick(autoplay.TickMsg{Run: 1}); cmd != nil {
		t.Error("expected no command after stop")
	}
	if s.Grid().Generation() != 1 {
		t.Errorf("stopped tick must not step, generation %d", s.Grid().Generation())
	}
}

func TestToggleCellAndRandomize(t *testing.T) {
	s := newSession(t, "")
	c := life.Coord{X: 2, Y: 7}

	s.ToggleCell(c)
	if e, _ := s.Scene().Element(c); !e.Visible {
		t.Error("expected toggled cell visible")
	}
	s.ToggleCell(c)
	if e, _ := s.Scene().Element(c); e.Visible {
		t.Error("expected cell hidden after second toggle")
	}

	s.Randomize()
	assertSynced(t, s)
}

func TestResizeRescalesScene(t *testing.T) {
	s := newSession(t, "")
	before := s.Scene().Elements()

	if s.Resize(900) {
		t.Error("desktop to desktop should not rescale")
	}
	if !s.Resize(400) {
		t.Fatal("expected rescale entering mobile")
	}
	shrunk := s.Scene().Elements()
	if math.Abs(shrunk[11].Left-before[11].Left*3/5) > 1e-9 {
		t.Errorf("expected left %f, got %f", before[11].Left*3/5, shrunk[11].Left)
	}

	s.Resize(1024)
	for i, e := range s.Scene().Elements() {
		if math.Abs(e.Top-before[i].Top) > 1e-9 {
			t.Fatalf("element %d top %f not restored to %f", i, e.Top, before[i].Top)
		}
	}
}

func TestNarrowStartShrinks(t *testing.T) {
	cfg := config.DefaultConfig()
	s, err := NewSession(cfg, 320)
	if err != nil {
		t.Fatal(err)
	}
	e, _ := s.Scene().Element(life.Coord{X: 1, Y: 0})
	if math.Abs(e.Left-cfg.Layout.Spacing*3/5) > 1e-9 {
		t.Errorf("expected shrunk left %f, got %f", cfg.Layout.Spacing*3/5, e.Left)
	}
}
