package viz

import (
	"math"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/cubelife/internal/rotation"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

const (
	MinZoom = 0.2
	MaxZoom = 5.0
)

// Camera projects the scene onto a 2D plane. Rotations are in radians and are
// applied Z first, then Y, then X, matching a rotateX·rotateY·rotateZ transform.
type Camera struct {
	Distance         float64
	Near             float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, Near: 0.1, Zoom: 1.0}
}

// SetAngles points the camera the way the rotation controller says, in degrees.
// A positive X tilts the far edge of the board away from the viewer.
func (c *Camera) SetAngles(a rotation.Angles) {
	c.RotX = -a.X * math.Pi / 180
	c.RotY = a.Y * math.Pi / 180
	c.RotZ = a.Z * math.Pi / 180
}

func (c *Camera) ZoomIn()  { c.SetZoom(c.Zoom * 1.2) }
func (c *Camera) ZoomOut() { c.SetZoom(c.Zoom / 1.2) }

func (c *Camera) SetZoom(z float64) { c.Zoom = math.Max(MinZoom, math.Min(MaxZoom, z)) }

// RotatePoint rotates a point around the camera's axes.
func (c *Camera) RotatePoint(p Vec3) Vec3 {
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	return p
}

// Project converts world coordinates to sub-pixel screen coordinates on a
// sw×sh surface. Returns x, y, depth (larger is nearer) and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	dist := c.Distance
	if rot.Z >= dist-c.Near {
		return 0, 0, 0, false
	}
	scale := dist / (dist - rot.Z)
	minDim := float64(min(sw, sh))
	pScale := minDim / 1.6
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End Vec3
	Color      lipgloss.Color
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0)} }

func (w *Wireframe) AddEdge(s, e Vec3, c lipgloss.Color) { w.Edges = append(w.Edges, Edge{s, e, c}) }

type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	Depth          float64
	Color          lipgloss.Color
}

// Render3D draws the wireframe to the canvas using a painter's algorithm:
// far edges first, so nearer edges win shared cells.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.Width*2, c.Height*4
	proj := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if v1 || v2 {
			proj = append(proj, ProjectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Color})
		}
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].Depth < proj[j].Depth })
	for _, e := range proj {
		if e.X1 == e.X2 && e.Y1 == e.Y2 {
			c.SetColor(e.X1, e.Y1, e.Color)
		} else {
			c.DrawLineColor(e.X1, e.Y1, e.X2, e.Y2, e.Color)
		}
	}
}
