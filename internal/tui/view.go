package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/cubelife/internal/life"
	"github.com/san-kum/cubelife/internal/scene"
	"github.com/san-kum/cubelife/internal/viz"
)

func (m model) View() string {
	var b strings.Builder
	t := m.theme
	grid := m.session.Grid()

	title := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	dim := lipgloss.NewStyle().Foreground(t.Muted)

	status := viz.StatusPaused.Render("○ stopped")
	if m.session.Player().Running() {
		status = viz.StatusRunning.Render("● running")
	}
	b.WriteString(fmt.Sprintf("\n%s%s  %s  %s\n\n",
		pad(marginLeft), title.Render("cubelife"), status,
		dim.Render(fmt.Sprintf("gen %d  pop %d  every %v", grid.Generation(), grid.Population(), m.session.Player().Interval()))))

	left := m.viewPanel()
	right := m.viewScene()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))

	b.WriteString("\n\n" + viz.KeyHint.Render(pad(marginLeft)+"s step  c clear  r random  p play  [ ] speed  o color  t theme  ± zoom  drag rotate  q quit") + "\n")
	return b.String()
}

// viewPanel renders the board, the button bar, the zoom knob and metrics.
// Row positions must agree with layout.
func (m model) viewPanel() string {
	t := m.theme
	grid := m.session.Grid()
	sc := m.session.Scene()
	lines := make([]string, 0, grid.Height()+10)

	dead := lipgloss.NewStyle().Foreground(t.Dead)
	for y := 0; y < grid.Height(); y++ {
		var row strings.Builder
		row.WriteString(pad(marginLeft))
		for x := 0; x < grid.Width(); x++ {
			c := life.Coord{X: x, Y: y}
			if grid.Status(c) == life.Alive {
				color := t.Alive
				if e, ok := sc.Element(c); ok && sc.Colorized() {
					color = e.Faces[scene.FaceTop]
				}
				row.WriteString(lipgloss.NewStyle().Foreground(color).Render("██"))
			} else {
				row.WriteString(dead.Render("· "))
			}
		}
		lines = append(lines, row.String())
	}
	lines = append(lines, "")

	bar := make([]string, len(buttons))
	for i, btn := range buttons {
		active := (btn.key == "p" && m.session.Player().Running()) ||
			(btn.key == "o" && sc.Colorized())
		bar[i] = viz.Button(btn.label, active, t)
	}
	lines = append(lines, pad(marginLeft)+strings.Join(bar, " "), "")

	lines = append(lines, pad(marginLeft)+viz.MetricLabel.Render(knobLabel)+
		viz.Knob(knobPosition(m.camera.Zoom), knobWidth, t))
	lines = append(lines, "")

	metrics := m.session.Metrics()
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s%s %s", pad(marginLeft),
			viz.MetricLabel.Render(fmt.Sprintf("%-16s", name)),
			viz.MetricValue.Render(fmt.Sprintf("%.2f", metrics[name]))))
	}

	if hist := m.session.History(); len(hist) > 1 {
		lines = append(lines, "", pad(marginLeft)+viz.MetricLabel.Render("pop ")+
			viz.SparklineChart(hist, m.layout.boardWidth()+8))
	}
	return strings.Join(lines, "\n")
}

// viewScene draws the cube scene on a braille canvas sized to what is left of
// the window.
func (m model) viewScene() string {
	cw := max(m.width-marginLeft-m.layout.boardWidth()-12, 20)
	ch := max(m.height-8, 10)

	canvas := viz.NewCanvas(cw, ch)
	viz.Render3D(canvas, viz.SceneWireframe(m.session.Scene(), m.theme.Floor), m.camera)

	a := m.session.Rotation().Angles()
	caption := viz.Subtle.Render(fmt.Sprintf("x %.0f°  z %.0f°  zoom %.2f", a.X, a.Z, m.camera.Zoom))
	return viz.Panel.BorderForeground(m.theme.Muted).Render(canvas.Render(m.theme.Text)) + "\n" + caption
}

func pad(n int) string { return strings.Repeat(" ", n) }
