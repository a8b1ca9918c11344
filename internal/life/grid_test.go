package life

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := New(w, h)
	if err != nil {
		t.Fatalf("new grid failed: %v", err)
	}
	return g
}

func TestNewInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.w, tt.h)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("expected ErrInvalidSize, got %v", err)
			}
			if g != nil {
				t.Error("expected nil grid")
			}
		})
	}
}

func TestNewAllDead(t *testing.T) {
	g := mustGrid(t, 10, 10)
	if g.Population() != 0 {
		t.Errorf("expected empty grid, got population %d", g.Population())
	}
	if g.Width() != 10 || g.Height() != 10 {
		t.Errorf("expected 10x10, got %dx%d", g.Width(), g.Height())
	}
}

func TestOutOfRangeIgnored(t *testing.T) {
	g := mustGrid(t, 4, 4)
	calls := 0
	g.AddObserver(ObserverFunc(func(Coord, Status) { calls++ }))

	for _, c := range []Coord{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		g.SetStatus(c, Alive)
		g.Toggle(c)
		if g.Status(c) != Dead {
			t.Errorf("expected dead for %v", c)
		}
		if nb := g.Neighbors(c); nb != nil {
			t.Errorf("expected no neighbors for %v, got %v", c, nb)
		}
	}
	if calls != 0 {
		t.Errorf("expected no observer calls, got %d", calls)
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	g := mustGrid(t, 5, 5)
	g.SetStatus(Coord{1, 1}, Alive)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := Coord{x, y}
			before := g.Status(c)
			g.Toggle(c)
			if g.Status(c) == before {
				t.Fatalf("toggle did not flip %v", c)
			}
			g.Toggle(c)
			if g.Status(c) != before {
				t.Fatalf("double toggle changed %v", c)
			}
		}
	}
}

func TestNeighborsClipped(t *testing.T) {
	g := mustGrid(t, 10, 10)
	tests := []struct {
		c        Coord
		expected int
	}{
		{Coord{0, 0}, 3},
		{Coord{9, 9}, 3},
		{Coord{0, 5}, 5},
		{Coord{5, 0}, 5},
		{Coord{5, 5}, 8},
	}

	for _, tt := range tests {
		nb := g.Neighbors(tt.c)
		if len(nb) != tt.expected {
			t.Errorf("%v: expected %d neighbors, got %d", tt.c, tt.expected, len(nb))
		}
		for _, n := range nb {
			if n == tt.c {
				t.Errorf("%v listed as its own neighbor", tt.c)
			}
			if !g.InBounds(n) {
				t.Errorf("%v: neighbor %v out of bounds", tt.c, n)
			}
		}
	}
}

func TestCornerAliveNeighbors(t *testing.T) {
	g := mustGrid(t, 10, 10)
	g.Fill(func(c Coord) Status {
		if c == (Coord{0, 0}) {
			return Dead
		}
		return Alive
	})

	if n := g.AliveNeighbors(Coord{0, 0}); n != 3 {
		t.Errorf("expected 3 alive neighbors at corner, got %d", n)
	}
}

func TestStepEmptyStaysEmpty(t *testing.T) {
	g := mustGrid(t, 10, 10)
	for i := 0; i < 5; i++ {
		if flipped := g.Step(); flipped != 0 {
			t.Fatalf("step %d flipped %d cells on empty grid", i, flipped)
		}
	}
	if g.Population() != 0 {
		t.Errorf("expected empty grid, got population %d", g.Population())
	}
	if g.Generation() != 5 {
		t.Errorf("expected generation 5, got %d", g.Generation())
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustGrid(t, 10, 10)
	set := func(x, y int) { g.SetStatus(Coord{x, y}, Alive) }
	set(4, 3)
	set(4, 4)
	set(4, 5)
	original := g.Cells()

	g.Step()

	expects := map[Coord]bool{{3, 4}: true, {4, 4}: true, {5, 4}: true}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := Coord{x, y}
			alive := g.Status(c) == Alive
			if alive != expects[c] {
				t.Fatalf("cell %v alive=%v, expected %v", c, alive, expects[c])
			}
		}
	}

	g.Step()

	after := g.Cells()
	for i := range original {
		if original[i] != after[i] {
			t.Fatalf("after second step cell %d is %v, expected %v", i, after[i], original[i])
		}
	}
}

func TestTrominoBecomesBlock(t *testing.T) {
	g := mustGrid(t, 6, 6)
	g.SetStatus(Coord{1, 1}, Alive)
	g.SetStatus(Coord{2, 1}, Alive)
	g.SetStatus(Coord{1, 2}, Alive)

	if flipped := g.Step(); flipped != 1 {
		t.Errorf("expected 1 flip, got %d", flipped)
	}
	for _, c := range []Coord{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if g.Status(c) != Alive {
			t.Errorf("expected %v alive", c)
		}
	}
	if g.Population() != 4 {
		t.Errorf("expected population 4, got %d", g.Population())
	}
}

func TestGliderTranslates(t *testing.T) {
	g := mustGrid(t, 10, 10)
	p, err := LookupPattern("glider")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Apply(p, Coord{2, 2}); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < p.Period; i++ {
		g.Step()
	}

	if g.Population() != len(p.Cells) {
		t.Fatalf("expected population %d, got %d", len(p.Cells), g.Population())
	}
	for _, c := range p.Cells {
		moved := Coord{c.X + 3, c.Y + 3}
		if g.Status(moved) != Alive {
			t.Errorf("expected %v alive after one period", moved)
		}
	}
}

func TestObserverSeesEveryWrite(t *testing.T) {
	g := mustGrid(t, 10, 10)
	mirror := make(map[Coord]Status)
	g.AddObserver(ObserverFunc(func(c Coord, s Status) { mirror[c] = s }))

	g.Randomize(rand.New(rand.NewPCG(7, 0)))
	g.Step()
	g.Toggle(Coord{3, 3})

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := Coord{x, y}
			if mirror[c] != g.Status(c) {
				t.Fatalf("observer out of sync at %v: %v vs %v", c, mirror[c], g.Status(c))
			}
		}
	}

	g.Clear()
	for c, s := range mirror {
		if s != Dead {
			t.Fatalf("expected %v dead after clear", c)
		}
	}
	if g.Generation() != 0 {
		t.Errorf("expected generation reset, got %d", g.Generation())
	}
}

func TestRandomizeHalfAlive(t *testing.T) {
	g := mustGrid(t, 10, 10)
	r := rand.New(rand.NewPCG(42, 1))

	const trials = 200
	alive := 0
	for i := 0; i < trials; i++ {
		g.Randomize(r)
		alive += g.Population()
	}

	frac := float64(alive) / float64(trials*100)
	if math.Abs(frac-0.5) > 0.03 {
		t.Errorf("expected ~50%% alive, got %.3f", frac)
	}
}

func TestApplyOutOfBounds(t *testing.T) {
	g := mustGrid(t, 4, 4)
	p, _ := LookupPattern("lwss")
	if err := g.Apply(p, Coord{0, 0}); !errors.Is(err, ErrPatternBounds) {
		t.Errorf("expected ErrPatternBounds, got %v", err)
	}
	if g.Population() != 0 {
		t.Error("failed apply should not write cells")
	}
}

func TestLookupPatternUnknown(t *testing.T) {
	if _, err := LookupPattern("nonexistent"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("expected ErrUnknownPattern, got %v", err)
	}
	if len(PatternNames()) != len(Patterns) {
		t.Error("expected every pattern listed")
	}
}

func TestSeedNoiseDeterministic(t *testing.T) {
	a := mustGrid(t, 10, 10)
	b := mustGrid(t, 10, 10)
	a.SeedNoise(99, 0)
	b.SeedNoise(99, 0)

	ca, cb := a.Cells(), b.Cells()
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("cell %d differs for identical seed", i)
		}
	}
}

func TestString(t *testing.T) {
	g := mustGrid(t, 3, 2)
	g.SetStatus(Coord{1, 0}, Alive)
	if got := g.String(); got != ".#.\n...\n" {
		t.Errorf("unexpected board string %q", got)
	}
}
