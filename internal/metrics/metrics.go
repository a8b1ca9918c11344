package metrics

import "github.com/san-kum/cubelife/internal/life"

// Metric accumulates a scalar over the generations of one run.
type Metric interface {
	Name() string
	Observe(g *life.Grid, flipped int)
	Value() float64
	Reset()
}

// Defaults returns the metrics reported by the run command and the TUI.
func Defaults() []Metric {
	return []Metric{NewPopulation(), NewPeak(), NewTurnover(), NewStillness()}
}
