// Package rotation turns pointer drags into scene rotation angles.
package rotation

import "fmt"

const (
	// PixelsPerDegree scales pointer displacement into rotation.
	PixelsPerDegree = 100.0

	MinX = 0.0
	MaxX = 89.0
)

// Angles are the scene rotation in degrees.
type Angles struct {
	X, Y, Z float64
}

// DefaultAngles is the isometric starting view.
func DefaultAngles() Angles { return Angles{X: 60, Y: 0, Z: 45} }

func (a Angles) Transform() string {
	return fmt.Sprintf("rotateX(%gdeg) rotateY(%gdeg) rotateZ(%gdeg)", a.X, a.Y, a.Z)
}

// Point is a pointer position in pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned screen region, Max exclusive.
type Rect struct {
	Min, Max Point
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

func (r Rect) Empty() bool { return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y }

// Controller tracks a single drag gesture. Mouse and touch input feed the
// same Press/Move/Release calls.
type Controller struct {
	angles   Angles
	knob     Rect
	start    Point
	last     Point
	dragging bool
	pending  bool
}

func New(initial Angles) *Controller {
	c := &Controller{angles: initial}
	c.angles.X = clamp(c.angles.X)
	c.pending = true
	return c
}

// SetKnob marks a region where presses never start a rotation.
func (c *Controller) SetKnob(r Rect) { c.knob = r }

// Press begins a drag at p unless p is on the knob.
func (c *Controller) Press(p Point) bool {
	if !c.knob.Empty() && c.knob.Contains(p) {
		return false
	}
	c.start = p
	c.last = p
	c.dragging = true
	return true
}

// Move updates the angles from the displacement since the drag started.
func (c *Controller) Move(p Point) {
	if !c.dragging {
		return
	}
	dx := p.X - c.start.X
	dy := p.Y - c.start.Y

	c.angles.X = clamp(c.angles.X - dy/PixelsPerDegree)
	c.angles.Z -= dx / PixelsPerDegree
	c.pending = true
}

// Drag is Move for frame loops that poll the pointer every frame. It only
// moves when p differs from the last position seen, so a pointer held still
// leaves the angles alone.
func (c *Controller) Drag(p Point) bool {
	if !c.dragging || p == c.last {
		return false
	}
	c.last = p
	c.Move(p)
	return true
}

// Release ends the drag. Safe to call without a drag in progress.
func (c *Controller) Release() { c.dragging = false }

// Frame hands the angles to apply if they changed since the last frame.
// Any number of moves between two frames produce a single apply.
func (c *Controller) Frame(apply func(Angles)) bool {
	if !c.pending {
		return false
	}
	c.pending = false
	apply(c.angles)
	return true
}

func (c *Controller) Angles() Angles    { return c.angles }
func (c *Controller) Dragging() bool    { return c.dragging }
func (c *Controller) Transform() string { return c.angles.Transform() }

func clamp(x float64) float64 {
	if x < MinX {
		return MinX
	}
	if x > MaxX {
		return MaxX
	}
	return x
}
