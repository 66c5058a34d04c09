package world

import (
	"github.com/ojrac/opensimplex-go"
)

// SimplexGenerator is an octave simplex height field over the same band as SineGenerator.
type SimplexGenerator struct {
	noise       opensimplex.Noise
	scale       float64
	octaves     int
	persistence float64
	lacunarity  float64
}

func NewSimplexGenerator(seed int64) *SimplexGenerator {
	return &SimplexGenerator{
		noise:       opensimplex.New(seed),
		scale:       1.0 / 96.0,
		octaves:     4,
		persistence: 0.5,
		lacunarity:  2.0,
	}
}

// Noise returns the normalised octave sum at world X,Z in [0,1].
func (g *SimplexGenerator) Noise(x, z float64) float64 {
	var sum, norm float64
	amp, freq := 1.0, g.scale
	for i := 0; i < g.octaves; i++ {
		sum += g.noise.Eval2(x*freq, z*freq) * amp
		norm += amp
		amp *= g.persistence
		freq *= g.lacunarity
	}
	// Eval2 is in [-1,1]
	return (sum/norm + 1.0) / 2.0
}

func (g *SimplexGenerator) HeightAt(worldX, worldZ int) int {
	n := g.Noise(float64(worldX), float64(worldZ))
	return clampHeight(baseHeight + int(n*heightRange))
}

func (g *SimplexGenerator) PopulateChunk(c *Chunk) {
	populateHeightField(c, g.HeightAt)
}
