package life

import perlin "github.com/aquilax/go-perlin"

const DefaultNoiseScale = 0.37

// SeedNoise fills the grid from 2D Perlin noise: a cell is alive where the
// noise is positive. The same seed and scale always give the same board.
func (g *Grid) SeedNoise(seed int64, scale float64) {
	if scale <= 0 {
		scale = DefaultNoiseScale
	}
	p := perlin.NewPerlin(2, 2, 3, seed)
	g.Fill(func(c Coord) Status {
		// offset keeps samples off the integer lattice where noise is zero
		if p.Noise2D(float64(c.X)*scale+0.5, float64(c.Y)*scale+0.5) > 0 {
			return Alive
		}
		return Dead
	})
}
