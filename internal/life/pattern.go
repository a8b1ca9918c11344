package life

import (
	"fmt"
	"sort"
)

// Pattern is a named set of live cells relative to a top-left origin.
type Pattern struct {
	Name   string
	Period int
	Cells  []Coord
}

// Size returns the bounding box of the pattern.
func (p Pattern) Size() (w, h int) {
	for _, c := range p.Cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

var Patterns = map[string]Pattern{
	"blinker": {Name: "blinker", Period: 2, Cells: []Coord{{0, 1}, {1, 1}, {2, 1}}},
	"block":   {Name: "block", Period: 1, Cells: []Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	"toad":    {Name: "toad", Period: 2, Cells: []Coord{{1, 1}, {2, 1}, {3, 1}, {0, 2}, {1, 2}, {2, 2}}},
	"beacon":  {Name: "beacon", Period: 2, Cells: []Coord{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}}},
	"glider":  {Name: "glider", Period: 4, Cells: []Coord{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	"lwss": {Name: "lwss", Period: 4, Cells: []Coord{
		{1, 0}, {4, 0}, {0, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3},
	}},
}

// LookupPattern returns the registered pattern with the given name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := Patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPattern, name, PatternNames())
	}
	return p, nil
}

// PatternNames lists registered patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply sets the pattern's cells alive with their origin at `at`.
// Other cells are left untouched.
func (g *Grid) Apply(p Pattern, at Coord) error {
	w, h := p.Size()
	if !g.InBounds(at) || at.X+w > g.w || at.Y+h > g.h {
		return fmt.Errorf("%w: %s (%dx%d) at %v on %dx%d", ErrPatternBounds, p.Name, w, h, at, g.w, g.h)
	}
	for _, c := range p.Cells {
		g.SetStatus(Coord{at.X + c.X, at.Y + c.Y}, Alive)
	}
	return nil
}

// Center returns the origin that places p in the middle of the grid.
func (g *Grid) Center(p Pattern) Coord {
	w, h := p.Size()
	return Coord{X: max(0, (g.w-w)/2), Y: max(0, (g.h-h)/2)}
}
