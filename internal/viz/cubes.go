package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/cubelife/internal/scene"
)

// ScenePoint maps board coordinates onto world space. The board is centred on
// the origin and scaled to span one world unit; z is in cells.
func ScenePoint(sc *scene.Scene, col, row, z float64) Vec3 {
	cols, rows := float64(sc.Width()), float64(sc.Height())
	unit := 1 / max(cols, rows)
	return Vec3{X: (col - cols/2) * unit, Y: -(row - rows/2) * unit, Z: z * unit}
}

// CubeCorners returns the bottom four corners of an element's cube followed
// by the top four, in the same winding.
func CubeCorners(sc *scene.Scene, e scene.Element) [8]Vec3 {
	col, row := sc.GridPos(e)
	at := func(c, r, z float64) Vec3 { return ScenePoint(sc, c, r, z) }
	return [8]Vec3{
		at(col, row, 0), at(col+1, row, 0), at(col+1, row+1, 0), at(col, row+1, 0),
		at(col, row, 1), at(col+1, row, 1), at(col+1, row+1, 1), at(col, row+1, 1),
	}
}

// FaceCorners indexes CubeCorners for each face, wound around the face.
var FaceCorners = [scene.FaceCount][4]int{
	scene.FaceFront:  {2, 3, 7, 6},
	scene.FaceBack:   {0, 1, 5, 4},
	scene.FaceRight:  {1, 2, 6, 5},
	scene.FaceLeft:   {3, 0, 4, 7},
	scene.FaceTop:    {4, 5, 6, 7},
	scene.FaceBottom: {0, 1, 2, 3},
}

// SceneWireframe builds the floor grid and one cube per visible element.
func SceneWireframe(sc *scene.Scene, floor lipgloss.Color) *Wireframe {
	w := NewWireframe()
	cols, rows := float64(sc.Width()), float64(sc.Height())
	at := func(col, row, z float64) Vec3 { return ScenePoint(sc, col, row, z) }

	if floor != "" {
		for c := 0.0; c <= cols; c++ {
			w.AddEdge(at(c, 0, 0), at(c, rows, 0), floor)
		}
		for r := 0.0; r <= rows; r++ {
			w.AddEdge(at(0, r, 0), at(cols, r, 0), floor)
		}
	}

	for _, e := range sc.Elements() {
		if !e.Visible {
			continue
		}
		addCube(w, e.Faces, CubeCorners(sc, e))
	}
	return w
}

func addCube(w *Wireframe, faces [scene.FaceCount]lipgloss.Color, v [8]Vec3) {
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		w.AddEdge(v[i], v[j], faces[scene.FaceBottom])
	}
	sides := [4]int{scene.FaceBack, scene.FaceRight, scene.FaceFront, scene.FaceLeft}
	for i := 0; i < 4; i++ {
		w.AddEdge(v[i], v[i+4], faces[sides[i]])
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		w.AddEdge(v[i+4], v[j+4], faces[scene.FaceTop])
	}
}
