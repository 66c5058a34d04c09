package world

// ValueGenerator is a hash-based value-noise height field. It needs no external
// noise library and produces blockier hills than SimplexGenerator.
type ValueGenerator struct {
	seed        int64
	scale       float64
	octaves     int
	persistence float64
	lacunarity  float64
}

func NewValueGenerator(seed int64) *ValueGenerator {
	return &ValueGenerator{
		seed:        seed,
		scale:       1.0 / 64.0,
		octaves:     4,
		persistence: 0.5,
		lacunarity:  2.0,
	}
}

func (g *ValueGenerator) HeightAt(worldX, worldZ int) int {
	x := float64(worldX) * g.scale
	z := float64(worldZ) * g.scale
	n := octaveNoise2D(x, z, g.seed, g.octaves, g.persistence, g.lacunarity)
	return clampHeight(baseHeight + int(n*heightRange))
}

func (g *ValueGenerator) PopulateChunk(c *Chunk) {
	populateHeightField(c, g.HeightAt)
}

// NewGenerator maps a generator name to a TerrainGenerator: "sine" (default),
// "simplex" or "value". ok is false for unknown names, which fall back to sine.
func NewGenerator(kind string, seed int64) (gen TerrainGenerator, ok bool) {
	switch kind {
	case "", "sine":
		return NewSineGenerator(seed), true
	case "simplex":
		return NewSimplexGenerator(seed), true
	case "value":
		return NewValueGenerator(seed), true
	default:
		return NewSineGenerator(seed), false
	}
}
