package export

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/san-kum/cubelife/internal/life"
	"github.com/san-kum/cubelife/internal/rotation"
	"github.com/san-kum/cubelife/internal/scene"
	"github.com/san-kum/cubelife/internal/viz"
)

func setup(t *testing.T, alive ...life.Coord) (*scene.Scene, *viz.Camera) {
	t.Helper()
	g, err := life.New(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	sc := scene.New(5, 5, scene.DefaultLayout())
	sc.Bind(g)
	for _, c := range alive {
		g.SetStatus(c, life.Alive)
	}
	cam := viz.NewCamera()
	cam.SetAngles(rotation.DefaultAngles())
	return sc, cam
}

func TestSceneToSVGNil(t *testing.T) {
	if SceneToSVG(nil, viz.NewCamera(), 100, 100, "") != "" {
		t.Error("expected empty output for nil scene")
	}
}

func TestSceneToSVGEmptyBoard(t *testing.T) {
	sc, cam := setup(t)
	out := SceneToSVG(sc, cam, 400, 300, "#333333")

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>") {
		t.Error("expected a complete svg document")
	}
	if strings.Contains(out, "<polygon") {
		t.Error("expected no cubes on an empty board")
	}
	if n := strings.Count(out, "<line"); n != 12 {
		t.Errorf("expected 12 floor lines, got %d", n)
	}
}

func TestSceneToSVGCubes(t *testing.T) {
	sc, cam := setup(t, life.Coord{X: 1, Y: 1}, life.Coord{X: 3, Y: 2})
	out := SceneToSVG(sc, cam, 400, 300, "")

	if n := strings.Count(out, "<polygon"); n != 12 {
		t.Errorf("expected 12 faces, got %d", n)
	}
	if !strings.Contains(out, string(scene.DefaultColor)) {
		t.Error("expected default face colour")
	}
	if strings.Contains(out, "<line") {
		t.Error("expected no floor without a floor colour")
	}
}

func TestSceneToSVGColorized(t *testing.T) {
	c := life.Coord{X: 2, Y: 2}
	sc, cam := setup(t, c)
	sc.Colorize(true, rand.New(rand.NewPCG(1, 2)))
	e, _ := sc.Element(c)

	out := SceneToSVG(sc, cam, 400, 300, "")
	if !strings.Contains(out, string(e.Faces[scene.FaceTop])) {
		t.Errorf("expected top face colour %s", e.Faces[scene.FaceTop])
	}
}

func TestOffscreenGeometrySkipped(t *testing.T) {
	sc, cam := setup(t, life.Coord{X: 0, Y: 0})
	cam.SetZoom(viz.MaxZoom)

	if polys := facePolygons(sc, cam, 400, 300); len(polys) != 0 {
		t.Errorf("expected corner cube to leave the frame at max zoom, got %d faces", len(polys))
	}
	out := SceneToSVG(sc, cam, 400, 300, "#333333")
	if n := strings.Count(out, "<line"); n >= 12 {
		t.Errorf("expected off-frame floor lines dropped, got %d", n)
	}
	if strings.Contains(out, "<polygon") {
		t.Error("expected no polygons")
	}
}

func TestFacesPaintedFarToNear(t *testing.T) {
	sc, cam := setup(t, life.Coord{X: 0, Y: 0}, life.Coord{X: 4, Y: 4})
	polys := facePolygons(sc, cam, 400, 300)
	for i := 1; i < len(polys); i++ {
		if polys[i].depth < polys[i-1].depth {
			t.Fatalf("expected ascending depth at %d", i)
		}
	}
}
