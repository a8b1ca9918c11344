package metrics

import "github.com/san-kum/cubelife/internal/life"

// Population is the mean number of live cells per observed generation.
type Population struct {
	name    string
	total   int
	samples int
}

func NewPopulation() *Population {
	return &Population{name: "mean_population"}
}

func (p *Population) Name() string { return p.name }

func (p *Population) Observe(g *life.Grid, flipped int) {
	p.total += g.Population()
	p.samples++
}

func (p *Population) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return float64(p.total) / float64(p.samples)
}

func (p *Population) Reset() {
	p.total = 0
	p.samples = 0
}

// Peak is the largest population seen.
type Peak struct {
	name string
	max  int
}

func NewPeak() *Peak {
	return &Peak{name: "peak_population"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(g *life.Grid, flipped int) {
	p.max = max(p.max, g.Population())
}

func (p *Peak) Value() float64 { return float64(p.max) }

func (p *Peak) Reset() { p.max = 0 }
