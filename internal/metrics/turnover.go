package metrics

import "github.com/san-kum/cubelife/internal/life"

// Turnover is the mean number of cells flipped per generation.
type Turnover struct {
	name    string
	flips   int
	samples int
}

func NewTurnover() *Turnover {
	return &Turnover{name: "turnover"}
}

func (t *Turnover) Name() string { return t.name }

func (t *Turnover) Observe(g *life.Grid, flipped int) {
	t.flips += flipped
	t.samples++
}

func (t *Turnover) Value() float64 {
	if t.samples == 0 {
		return 0
	}
	return float64(t.flips) / float64(t.samples)
}

func (t *Turnover) Reset() {
	t.flips = 0
	t.samples = 0
}

// Stillness is the fraction of generations in which no cell changed.
type Stillness struct {
	name    string
	still   int
	samples int
}

func NewStillness() *Stillness {
	return &Stillness{name: "stillness"}
}

func (s *Stillness) Name() string { return s.name }

func (s *Stillness) Observe(g *life.Grid, flipped int) {
	s.samples++
	if flipped == 0 {
		s.still++
	}
}

func (s *Stillness) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.still) / float64(s.samples)
}

func (s *Stillness) Reset() {
	s.still = 0
	s.samples = 0
}
