package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// Benchmark streaming across chunk borders with a headless world.
func BenchmarkStreamAround(b *testing.B) {
	w := New(DefaultSeed, WithInitialRadius(0))
	defer w.Close()
	w.Update(mgl32.Vec3{0, 64, 0}, DefaultRenderDistance)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// one new row of chunks per iteration
		w.Update(mgl32.Vec3{0, 64, float32((i + 1) * ChunkSizeZ)}, DefaultRenderDistance)
	}
}

func BenchmarkGetOrCreateChunk(b *testing.B) {
	w := New(DefaultSeed, WithInitialRadius(0))
	defer w.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.GetOrCreateChunk(i+1, 0)
	}
}

func BenchmarkHeightAt(b *testing.B) {
	gens := map[string]TerrainGenerator{
		"sine":    NewSineGenerator(DefaultSeed),
		"simplex": NewSimplexGenerator(DefaultSeed),
		"value":   NewValueGenerator(DefaultSeed),
	}
	for name, g := range gens {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = g.HeightAt(i%1024, (i*31)%1024)
			}
		})
	}
}
