package world

import (
	"math"

	"mini-voxel/internal/block"
)

// TerrainGenerator defines the interface for height-field world generation.
type TerrainGenerator interface {
	// HeightAt returns the column height at world X,Z: blocks [0, height) are solid.
	HeightAt(worldX, worldZ int) int
	// PopulateChunk fills a fresh chunk.
	PopulateChunk(c *Chunk)
}

const (
	MinHeight = 5
	MaxHeight = ChunkSizeY - 1

	baseHeight  = 20
	heightRange = 60
	dirtDepth   = 2
)

// clampHeight keeps every column between bedrock and the chunk ceiling.
func clampHeight(h int) int {
	return min(max(h, MinHeight), MaxHeight)
}

// fillColumn lays out one column: stone, dirtDepth layers of dirt, a single grass cap at
// height-1, air from height up. The cap and dirt take priority over the stone floor, so a
// column always reads STONE* DIRT* GRASS AIR*.
func fillColumn(c *Chunk, lx, lz, height int) {
	for y := 0; y < ChunkSizeY; y++ {
		var t block.Type
		switch {
		case y >= height:
			t = block.Air
		case y == height-1:
			t = block.Grass
		case y >= height-1-dirtDepth:
			t = block.Dirt
		default:
			t = block.Stone
		}
		c.SetBlock(lx, y, lz, t)
	}
}

// populateHeightField fills every column of c from a height function.
func populateHeightField(c *Chunk, heightAt func(worldX, worldZ int) int) {
	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			worldX := c.X*ChunkSizeX + lx
			worldZ := c.Z*ChunkSizeZ + lz
			fillColumn(c, lx, lz, heightAt(worldX, worldZ))
		}
	}
}

// SineGenerator is the placeholder rolling-hills field: two crossed sine/cosine products
// shifted by the seed. Deterministic per seed, heights roughly 20..80.
type SineGenerator struct {
	seed float64
}

func NewSineGenerator(seed int64) *SineGenerator {
	return &SineGenerator{seed: float64(seed)}
}

// Noise returns the raw field value at world X,Z, roughly in [0,1].
func (g *SineGenerator) Noise(x, z float64) float64 {
	n := math.Sin(x*0.1+g.seed) * math.Cos(z*0.1+g.seed)
	n += math.Sin((x+z)*0.05) * math.Cos((x-z)*0.05)
	return (n + 2.0) / 4.0
}

func (g *SineGenerator) HeightAt(worldX, worldZ int) int {
	n := g.Noise(float64(worldX), float64(worldZ))
	return clampHeight(baseHeight + int(n*heightRange))
}

func (g *SineGenerator) PopulateChunk(c *Chunk) {
	populateHeightField(c, g.HeightAt)
}

// FlatGenerator produces a constant-height world. Useful for tests and debugging.
type FlatGenerator struct {
	height int
}

func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{height: clampHeight(height)}
}

func (g *FlatGenerator) HeightAt(worldX, worldZ int) int {
	return g.height
}

func (g *FlatGenerator) PopulateChunk(c *Chunk) {
	populateHeightField(c, g.HeightAt)
}
