package scene

import (
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/cubelife/internal/life"
)

// Cube faces, in the order their colours are derived.
const (
	FaceFront = iota
	FaceBack
	FaceRight
	FaceLeft
	FaceTop
	FaceBottom
	FaceCount
)

// Layout places elements on screen.
type Layout struct {
	Spacing   float64 // pixels between neighbouring cells
	TopOffset float64 // added to every cube's top offset
}

// DefaultLayout matches a 500px plane split into ten spaces.
func DefaultLayout() Layout {
	return Layout{Spacing: 50, TopOffset: -500}
}

// Element is the cube mirroring one cell.
type Element struct {
	Coord     life.Coord
	Left, Top float64
	Visible   bool
	Faces     [FaceCount]lipgloss.Color
}

// Space is the floor tile under a cell.
type Space struct {
	Coord     life.Coord
	Left, Top float64
}

// Scene holds one element and one space per grid cell.
type Scene struct {
	w, h      int
	spacing   float64
	offset    float64
	elements  []Element
	spaces    []Space
	colorized bool
}

func New(width, height int, layout Layout) *Scene {
	s := &Scene{
		w:        width,
		h:        height,
		spacing:  layout.Spacing,
		offset:   layout.TopOffset,
		elements: make([]Element, 0, width*height),
		spaces:   make([]Space, 0, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := life.Coord{X: x, Y: y}
			left, top := float64(x)*layout.Spacing, float64(y)*layout.Spacing
			e := Element{Coord: c, Left: left, Top: top + layout.TopOffset}
			for i := range e.Faces {
				e.Faces[i] = DefaultColor
			}
			s.elements = append(s.elements, e)
			s.spaces = append(s.spaces, Space{Coord: c, Left: left, Top: top})
		}
	}
	return s
}

// Bind registers the scene on g and copies g's current statuses.
func (s *Scene) Bind(g *life.Grid) {
	g.AddObserver(s)
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			c := life.Coord{X: x, Y: y}
			s.OnStatus(c, g.Status(c))
		}
	}
}

// OnStatus shows the cube for a live cell and hides it for a dead one.
func (s *Scene) OnStatus(c life.Coord, st life.Status) {
	i, ok := s.index(c)
	if !ok {
		return
	}
	s.elements[i].Visible = st == life.Alive
}

func (s *Scene) index(c life.Coord) (int, bool) {
	if c.X < 0 || c.X >= s.w || c.Y < 0 || c.Y >= s.h {
		return 0, false
	}
	return c.Y*s.w + c.X, true
}

// Colorize gives every cube a random base colour when enabled and resets all
// faces to DefaultColor otherwise. Hidden cubes are coloured too.
func (s *Scene) Colorize(enabled bool, r *rand.Rand) {
	s.colorized = enabled
	for i := range s.elements {
		e := &s.elements[i]
		if !enabled {
			for f := range e.Faces {
				e.Faces[f] = DefaultColor
			}
			continue
		}
		base := RandomColor(r)
		for f := range e.Faces {
			e.Faces[f] = ColorNeighbor(base, f)
		}
	}
}

func (s *Scene) ToggleColorize(r *rand.Rand) { s.Colorize(!s.colorized, r) }

func (s *Scene) Colorized() bool { return s.colorized }

// Rescale multiplies every stored offset by ratio.
func (s *Scene) Rescale(ratio float64) {
	s.spacing *= ratio
	s.offset *= ratio
	for i := range s.elements {
		s.elements[i].Left *= ratio
		s.elements[i].Top *= ratio
	}
	for i := range s.spaces {
		s.spaces[i].Left *= ratio
		s.spaces[i].Top *= ratio
	}
}

func (s *Scene) Element(c life.Coord) (Element, bool) {
	i, ok := s.index(c)
	if !ok {
		return Element{}, false
	}
	return s.elements[i], true
}

func (s *Scene) Elements() []Element {
	out := make([]Element, len(s.elements))
	copy(out, s.elements)
	return out
}

func (s *Scene) Spaces() []Space {
	out := make([]Space, len(s.spaces))
	copy(out, s.spaces)
	return out
}

func (s *Scene) VisibleCount() int {
	n := 0
	for _, e := range s.elements {
		if e.Visible {
			n++
		}
	}
	return n
}

// GridPos maps an element's stored offsets back to fractional board
// coordinates under the current scale.
func (s *Scene) GridPos(e Element) (col, row float64) {
	if s.spacing == 0 {
		return float64(e.Coord.X), float64(e.Coord.Y)
	}
	return e.Left / s.spacing, (e.Top - s.offset) / s.spacing
}

// Spacing is the current distance between neighbouring cells in pixels.
func (s *Scene) Spacing() float64 { return s.spacing }

func (s *Scene) Width() int  { return s.w }
func (s *Scene) Height() int { return s.h }
