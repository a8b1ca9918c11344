package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/cubelife/internal/config"
	"github.com/san-kum/cubelife/internal/life"
	"github.com/san-kum/cubelife/internal/rotation"
	"github.com/san-kum/cubelife/internal/scene"
)

const (
	panelX      = 30
	panelY      = 80
	pxPerUnit   = 24.0 / config.DefaultSpacing
	buttonW     = 84
	buttonH     = 28
	buttonGap   = 8
	knobW       = 200
	knobH       = 16
	minDistance = 6.0
	maxDistance = 60.0
)

type button struct {
	label string
	key   int32
}

var buttons = []button{
	{"step", rl.KeyS},
	{"clear", rl.KeyC},
	{"random", rl.KeyR},
	{"play", rl.KeyP},
	{"color", rl.KeyO},
}

// panel is the left-hand board and controls in window pixels. The board
// cell size follows the scene spacing, so it shrinks on narrow windows.
type panel struct {
	cols, rows int
	cell       float32
}

func newPanel(sc *scene.Scene) panel {
	return panel{cols: sc.Width(), rows: sc.Height(), cell: float32(sc.Spacing() * pxPerUnit)}
}

func (p panel) board() rl.Rectangle {
	return rl.NewRectangle(panelX, panelY, float32(p.cols)*p.cell, float32(p.rows)*p.cell)
}

func (p panel) cellRect(c life.Coord) rl.Rectangle {
	return rl.NewRectangle(panelX+float32(c.X)*p.cell, panelY+float32(c.Y)*p.cell, p.cell-1, p.cell-1)
}

func (p panel) cellAt(v rl.Vector2) (life.Coord, bool) {
	if !rl.CheckCollisionPointRec(v, p.board()) {
		return life.Coord{}, false
	}
	return life.Coord{
		X: int((v.X - panelX) / p.cell),
		Y: int((v.Y - panelY) / p.cell),
	}, true
}

func (p panel) button(i int) rl.Rectangle {
	y := panelY + float32(p.rows)*p.cell + 16
	return rl.NewRectangle(panelX+float32(i*(buttonW+buttonGap)), y, buttonW, buttonH)
}

func (p panel) buttonAt(v rl.Vector2) (int, bool) {
	for i := range buttons {
		if rl.CheckCollisionPointRec(v, p.button(i)) {
			return i, true
		}
	}
	return 0, false
}

func (p panel) knob() rl.Rectangle {
	b := p.button(0)
	return rl.NewRectangle(panelX, b.Y+buttonH+24, knobW, knobH)
}

func (p panel) knobRect() rotation.Rect {
	k := p.knob()
	return rotation.Rect{
		Min: rotation.Point{X: float64(k.X), Y: float64(k.Y)},
		Max: rotation.Point{X: float64(k.X + k.Width), Y: float64(k.Y + k.Height)},
	}
}

// knobPos is the slider position in [0, 1] under x.
func (p panel) knobPos(x float32) float64 {
	k := p.knob()
	return math.Max(0, math.Min(1, float64((x-k.X)/k.Width)))
}

// distanceAt maps the knob onto camera distance, far on the left.
func distanceAt(pos float64) float64 {
	return maxDistance - pos*(maxDistance-minDistance)
}

func knobPosition(distance float64) float64 {
	return (maxDistance - distance) / (maxDistance - minDistance)
}

// orbit places a camera around the board centre for the given angles. X is
// the tilt away from straight down and Z spins the board.
func orbit(a rotation.Angles, distance float64) rl.Vector3 {
	tilt := math.Max(a.X, 0.5) * math.Pi / 180
	spin := a.Z * math.Pi / 180
	return rl.NewVector3(
		float32(distance*math.Sin(tilt)*math.Sin(spin)),
		float32(distance*math.Cos(tilt)),
		float32(distance*math.Sin(tilt)*math.Cos(spin)),
	)
}
