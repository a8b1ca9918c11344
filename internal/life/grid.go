package life

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Status is the state of a single cell.
type Status uint8

const (
	Dead Status = iota
	Alive
)

func (s Status) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Flip returns the opposite status.
func (s Status) Flip() Status {
	if s == Alive {
		return Dead
	}
	return Alive
}

// Coord identifies a cell by column and row.
type Coord struct {
	X, Y int
}

func (c Coord) String() string { return fmt.Sprintf("%d-%d", c.X, c.Y) }

// Observer is notified after a cell's status has been written.
type Observer interface {
	OnStatus(c Coord, s Status)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(c Coord, s Status)

func (f ObserverFunc) OnStatus(c Coord, s Status) { f(c, s) }

// Grid is a bounded Game of Life board. Dimensions never change after New.
type Grid struct {
	w, h       int
	cells      []Status
	generation int
	observers  []Observer
}

// New returns a grid of the given size with every cell dead.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return &Grid{
		w:         width,
		h:         height,
		cells:     make([]Status, width*height),
		observers: make([]Observer, 0),
	}, nil
}

func (g *Grid) AddObserver(o Observer) { g.observers = append(g.observers, o) }

func (g *Grid) Width() int      { return g.w }
func (g *Grid) Height() int     { return g.h }
func (g *Grid) Generation() int { return g.generation }

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Status returns the status at c. Coordinates off the grid read as Dead.
func (g *Grid) Status(c Coord) Status {
	if !g.InBounds(c) {
		return Dead
	}
	return g.cells[c.Y*g.w+c.X]
}

// SetStatus writes s at c and notifies observers. Coordinates off the grid are ignored.
func (g *Grid) SetStatus(c Coord, s Status) {
	if !g.InBounds(c) {
		return
	}
	g.cells[c.Y*g.w+c.X] = s
	for _, o := range g.observers {
		o.OnStatus(c, s)
	}
}

// Toggle flips the cell at c.
func (g *Grid) Toggle(c Coord) {
	if !g.InBounds(c) {
		return
	}
	g.SetStatus(c, g.Status(c).Flip())
}

// Neighbors returns the in-bounds Moore neighbourhood of c in row-major order.
// Edge and corner cells have fewer than eight neighbours; there is no wraparound.
func (g *Grid) Neighbors(c Coord) []Coord {
	if !g.InBounds(c) {
		return nil
	}
	minX, maxX := max(0, c.X-1), min(g.w-1, c.X+1)
	minY, maxY := max(0, c.Y-1), min(g.h-1, c.Y+1)

	out := make([]Coord, 0, 8)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x == c.X && y == c.Y {
				continue
			}
			out = append(out, Coord{x, y})
		}
	}
	return out
}

// AliveNeighbors counts the live cells around c.
func (g *Grid) AliveNeighbors(c Coord) int {
	n := 0
	for _, nb := range g.Neighbors(c) {
		if g.Status(nb) == Alive {
			n++
		}
	}
	return n
}

// nextStatus applies the B3/S23 rule.
func nextStatus(s Status, neighbors int) Status {
	if s == Alive && (neighbors < 2 || neighbors > 3) {
		return Dead
	}
	if s == Dead && neighbors == 3 {
		return Alive
	}
	return s
}

// Step advances one generation and returns how many cells flipped.
func (g *Grid) Step() int {
	flips := make([]Coord, 0)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := Coord{x, y}
			s := g.Status(c)
			if nextStatus(s, g.AliveNeighbors(c)) != s {
				flips = append(flips, c)
			}
		}
	}
	for _, c := range flips {
		g.Toggle(c)
	}
	g.generation++
	return len(flips)
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	g.Fill(func(Coord) Status { return Dead })
	g.generation = 0
}

// Randomize sets each cell alive with probability 0.5, independently.
func (g *Grid) Randomize(r *rand.Rand) {
	g.Fill(func(Coord) Status {
		if r.IntN(2) == 1 {
			return Alive
		}
		return Dead
	})
}

// Fill writes f(c) to every cell in row-major order.
func (g *Grid) Fill(f func(c Coord) Status) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := Coord{x, y}
			g.SetStatus(c, f(c))
		}
	}
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, s := range g.cells {
		if s == Alive {
			n++
		}
	}
	return n
}

// Cells returns a copy of the board in row-major order.
func (g *Grid) Cells() []Status {
	out := make([]Status, len(g.cells))
	copy(out, g.cells)
	return out
}

func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.cells[y*g.w+x] == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
