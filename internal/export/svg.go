package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/cubelife/internal/scene"
	"github.com/san-kum/cubelife/internal/viz"
)

type polygon struct {
	points [4][2]int
	depth  float64
	fill   lipgloss.Color
}

// SceneToSVG renders the visible cubes of sc as filled faces seen through cam,
// on a width×height image. Faces are painted far to near. Faces and floor
// lines with a corner off the image or behind the camera are left out.
func SceneToSVG(sc *scene.Scene, cam *viz.Camera, width, height int, floor lipgloss.Color) string {
	if sc == nil || cam == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if floor != "" {
		sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="1">`+"\n", floor))
		cols, rows := float64(sc.Width()), float64(sc.Height())
		line := func(a, b viz.Vec3) {
			x1, y1, _, v1 := cam.Project(a, width, height)
			x2, y2, _, v2 := cam.Project(b, width, height)
			if !v1 || !v2 {
				return
			}
			sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>`+"\n", x1, y1, x2, y2))
		}
		for c := 0.0; c <= cols; c++ {
			line(viz.ScenePoint(sc, c, 0, 0), viz.ScenePoint(sc, c, rows, 0))
		}
		for r := 0.0; r <= rows; r++ {
			line(viz.ScenePoint(sc, 0, r, 0), viz.ScenePoint(sc, cols, r, 0))
		}
		sb.WriteString("</g>\n")
	}

	polys := facePolygons(sc, cam, width, height)
	sb.WriteString(`<g stroke="#0a0a0a" stroke-width="1" stroke-linejoin="round">` + "\n")
	for _, p := range polys {
		pts := make([]string, len(p.points))
		for i, pt := range p.points {
			pts[i] = fmt.Sprintf("%d,%d", pt[0], pt[1])
		}
		sb.WriteString(fmt.Sprintf(`<polygon points="%s" fill="%s"/>`+"\n", strings.Join(pts, " "), p.fill))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func facePolygons(sc *scene.Scene, cam *viz.Camera, width, height int) []polygon {
	var polys []polygon
	for _, e := range sc.Elements() {
		if !e.Visible {
			continue
		}
		corners := viz.CubeCorners(sc, e)
	faces:
		for f, idx := range viz.FaceCorners {
			var p polygon
			for i, k := range idx {
				x, y, d, ok := cam.Project(corners[k], width, height)
				if !ok {
					continue faces
				}
				p.points[i] = [2]int{x, y}
				p.depth += d / 4
			}
			p.fill = e.Faces[f]
			polys = append(polys, p)
		}
	}
	sort.SliceStable(polys, func(i, j int) bool { return polys[i].depth < polys[j].depth })
	return polys
}
