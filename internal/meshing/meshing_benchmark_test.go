package meshing

import (
	"testing"

	"mini-voxel/internal/block"
)

// terrainVolume is a 16x256x16 column filled up to a wavy surface.
func terrainVolume() *gridVolume {
	v := newGridVolume(16, 256, 16)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			h := 60 + (x*3+z*5)%9
			for y := 0; y < h; y++ {
				t := block.Stone
				if y == h-1 {
					t = block.Grass
				}
				v.set(x, y, z, t)
			}
		}
	}
	return v
}

func BenchmarkBuildFaceMeshTerrain(b *testing.B) {
	v := terrainVolume()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildFaceMesh(v, 0, 0, 0)
	}
}
