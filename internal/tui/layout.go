package tui

import (
	"math"

	"github.com/san-kum/cubelife/internal/life"
	"github.com/san-kum/cubelife/internal/rotation"
	"github.com/san-kum/cubelife/internal/viz"
)

const (
	marginLeft = 3
	headerRows = 3
	cellCols   = 2
	knobLabel  = "zoom "
	knobWidth  = 20
)

type button struct {
	label string
	key   string
}

// buttons map onto the same actions as their keys.
var buttons = []button{
	{"step", "s"},
	{"clear", "c"},
	{"random", "r"},
	{"play", "p"},
	{"color", "o"},
}

// layout holds the terminal cell positions of the clickable regions of the
// left panel. Everything else on screen is a rotation surface.
type layout struct {
	cols, rows int
}

func newLayout(cols, rows int) layout { return layout{cols: cols, rows: rows} }

func (l layout) boardWidth() int { return l.cols * cellCols }
func (l layout) buttonRow() int  { return headerRows + l.rows + 1 }
func (l layout) knobRow() int    { return headerRows + l.rows + 3 }
func (l layout) knobLeft() int   { return marginLeft + len(knobLabel) }

// cellAt maps a terminal position to the board cell under it.
func (l layout) cellAt(x, y int) (life.Coord, bool) {
	col := x - marginLeft
	row := y - headerRows
	if col < 0 || row < 0 || col >= l.boardWidth() || row >= l.rows {
		return life.Coord{}, false
	}
	return life.Coord{X: col / cellCols, Y: row}, true
}

// buttonAt returns the index into buttons under the position.
func (l layout) buttonAt(x, y int) (int, bool) {
	if y != l.buttonRow() {
		return 0, false
	}
	col := marginLeft
	for i, b := range buttons {
		w := len(b.label) + 2
		if x >= col && x < col+w {
			return i, true
		}
		col += w + 1
	}
	return 0, false
}

func (l layout) onKnob(x, y int) bool {
	return y == l.knobRow() && x >= l.knobLeft() && x < l.knobLeft()+knobWidth
}

// knobPos is the slider position in [0, 1] for a column on the knob row.
func (l layout) knobPos(x int) float64 {
	pos := float64(x-l.knobLeft()) / float64(knobWidth-1)
	return math.Max(0, math.Min(1, pos))
}

// knobRect is the knob in pointer pixels.
func (l layout) knobRect(cellW, cellH float64) rotation.Rect {
	return rotation.Rect{
		Min: rotation.Point{X: float64(l.knobLeft()) * cellW, Y: float64(l.knobRow()) * cellH},
		Max: rotation.Point{X: float64(l.knobLeft()+knobWidth) * cellW, Y: float64(l.knobRow()+1) * cellH},
	}
}

// zoomAt maps a knob position onto the camera zoom range, logarithmically.
func zoomAt(pos float64) float64 {
	return viz.MinZoom * math.Pow(viz.MaxZoom/viz.MinZoom, pos)
}

func knobPosition(zoom float64) float64 {
	return math.Log(zoom/viz.MinZoom) / math.Log(viz.MaxZoom/viz.MinZoom)
}
