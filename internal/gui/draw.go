package gui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/cubelife/internal/life"
	"github.com/san-kum/cubelife/internal/scene"
)

const (
	cubeSize = 0.9
	slab     = 0.02
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawScene()
	a.drawBoard()
	a.drawControls()
	a.DrawHUD()

	rl.EndDrawing()
}

// world converts a scene element position to world space, centred on the
// origin with one unit per cell.
func (a *App) world(col, row float64) rl.Vector3 {
	sc := a.Session.Scene()
	return rl.NewVector3(
		float32(col-float64(sc.Width())/2+0.5),
		cubeSize/2,
		float32(row-float64(sc.Height())/2+0.5),
	)
}

func (a *App) drawScene() {
	sc := a.Session.Scene()
	rl.BeginMode3D(a.Camera)

	hw, hh := float32(sc.Width())/2, float32(sc.Height())/2
	for i := -hw; i <= hw; i++ {
		rl.DrawLine3D(rl.NewVector3(i, 0, -hh), rl.NewVector3(i, 0, hh), ColGrid)
	}
	for j := -hh; j <= hh; j++ {
		rl.DrawLine3D(rl.NewVector3(-hw, 0, j), rl.NewVector3(hw, 0, j), ColGrid)
	}

	for _, e := range sc.Elements() {
		if !e.Visible {
			continue
		}
		pos := a.world(sc.GridPos(e))
		drawFaces(pos, e.Faces)
		rl.DrawCubeWires(pos, cubeSize, cubeSize, cubeSize, rl.ColorAlpha(ColBg, 0.6))
	}

	rl.EndMode3D()
}

// drawFaces paints each face of a cube as a thin slab in its own colour.
func drawFaces(pos rl.Vector3, faces [scene.FaceCount]lipgloss.Color) {
	h := float32(cubeSize / 2)
	type face struct {
		off  rl.Vector3
		size rl.Vector3
	}
	slabs := [scene.FaceCount]face{
		scene.FaceFront:  {rl.NewVector3(0, 0, h), rl.NewVector3(cubeSize, cubeSize, slab)},
		scene.FaceBack:   {rl.NewVector3(0, 0, -h), rl.NewVector3(cubeSize, cubeSize, slab)},
		scene.FaceRight:  {rl.NewVector3(h, 0, 0), rl.NewVector3(slab, cubeSize, cubeSize)},
		scene.FaceLeft:   {rl.NewVector3(-h, 0, 0), rl.NewVector3(slab, cubeSize, cubeSize)},
		scene.FaceTop:    {rl.NewVector3(0, h, 0), rl.NewVector3(cubeSize, slab, cubeSize)},
		scene.FaceBottom: {rl.NewVector3(0, -h, 0), rl.NewVector3(cubeSize, slab, cubeSize)},
	}
	for f, s := range slabs {
		rl.DrawCubeV(rl.Vector3Add(pos, s.off), s.size, color(faces[f]))
	}
}

func color(c lipgloss.Color) rl.Color {
	r, g, b := scene.RGB(c)
	return rl.NewColor(r, g, b, 255)
}

func (a *App) drawBoard() {
	g := a.Session.Grid()
	sc := a.Session.Scene()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := life.Coord{X: x, Y: y}
			col := ColDead
			if g.Status(c) == life.Alive {
				col = ColAccent
				if e, ok := sc.Element(c); ok && sc.Colorized() {
					col = color(e.Faces[scene.FaceTop])
				}
			}
			rl.DrawRectangleRec(a.panel.cellRect(c), col)
		}
	}
}

func (a *App) drawControls() {
	s := a.Session
	mouse := rl.GetMousePosition()
	for i, b := range buttons {
		r := a.panel.button(i)
		active := (b.key == rl.KeyP && s.Player().Running()) ||
			(b.key == rl.KeyO && s.Scene().Colorized())

		col := ColText
		if active {
			col = ColAccent
		} else if rl.CheckCollisionPointRec(mouse, r) {
			col = ColSelect
		}
		rl.DrawRectangleLinesEx(r, 1, col)
		a.drawText(b.label, int(r.X)+10, int(r.Y)+6, 16, col)
	}

	k := a.panel.knob()
	rl.DrawRectangleRec(rl.NewRectangle(k.X, k.Y+k.Height/2-1, k.Width, 2), ColTextDim)
	hx := k.X + float32(knobPosition(a.Distance))*k.Width
	rl.DrawCircle(int32(hx), int32(k.Y+k.Height/2), k.Height/2, ColAccent)
	a.drawText("perspective", int(k.X+k.Width)+12, int(k.Y), 14, ColText)
}

func (a *App) DrawHUD() {
	s := a.Session
	g := s.Grid()
	a.drawText("cubelife", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: gen %d  pop %d", g.Generation(), g.Population()), 160, 34, 16, ColText)

	status := "STOPPED"
	col := ColTextDim
	if s.Player().Running() {
		status = "RUNNING"
		col = ColSelect
	}
	w := int(rl.GetScreenWidth())
	h := int(rl.GetScreenHeight())
	a.drawText(status, w-130, 30, 16, col)

	a.drawHistory(30, h-110, 300, 50)

	ang := s.Rotation().Angles()
	a.drawText(fmt.Sprintf("x %.0f  z %.0f", ang.X, ang.Z), w-200, h-60, 14, ColTextDim)
	a.drawText("[S] STEP  [C] CLEAR  [R] RANDOM  [P] PLAY  [O] COLOR  [Q] QUIT", 30, h-40, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), w-100, h-40, 14, ColTextDim)
}

// drawHistory plots the population history as a line strip.
func (a *App) drawHistory(x, y, width, height int) {
	hist := a.Session.History()
	if len(hist) < 2 {
		return
	}
	hi := hist[0]
	for _, v := range hist {
		hi = max(hi, v)
	}
	if hi == 0 {
		hi = 1
	}
	points := make([]rl.Vector2, len(hist))
	for i, v := range hist {
		px := float32(x) + float32(i)/float32(len(hist)-1)*float32(width)
		py := float32(y+height) - float32(v/hi)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("pop %.0f", hist[len(hist)-1]), x+width+10, y+height-10, 14, ColText)
}

func (a *App) drawText(text string, x, y int, size int, tint rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, tint)
}
