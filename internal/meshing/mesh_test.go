package meshing

import (
	"testing"

	"mini-voxel/internal/block"

	"github.com/go-gl/mathgl/mgl32"
)

// gridVolume is a small dense volume for tests.
type gridVolume struct {
	w, h, d int
	cells   []block.Type
}

func newGridVolume(w, h, d int) *gridVolume {
	return &gridVolume{w: w, h: h, d: d, cells: make([]block.Type, w*h*d)}
}

func (g *gridVolume) Dims() (int, int, int) { return g.w, g.h, g.d }

func (g *gridVolume) GetBlock(x, y, z int) block.Type {
	if x < 0 || x >= g.w || y < 0 || y >= g.h || z < 0 || z >= g.d {
		return block.Air
	}
	return g.cells[(y*g.d+z)*g.w+x]
}

func (g *gridVolume) set(x, y, z int, t block.Type) {
	g.cells[(y*g.d+z)*g.w+x] = t
}

func TestEmptyVolumeMesh(t *testing.T) {
	m := BuildFaceMesh(newGridVolume(4, 4, 4), 0, 0, 0)
	if !m.Empty() {
		t.Fatalf("empty volume: got %d faces, want 0", m.FaceCount())
	}
	if m.VertexCount() != 0 {
		t.Fatalf("empty volume: got %d vertices, want 0", m.VertexCount())
	}
}

func TestSingleBlockMesh(t *testing.T) {
	v := newGridVolume(3, 3, 3)
	v.set(1, 1, 1, block.Stone)
	m := BuildFaceMesh(v, 0, 0, 0)

	if got := m.FaceCount(); got != 6 {
		t.Fatalf("single block: got %d faces, want 6", got)
	}
	if got := m.VertexCount(); got != 6*VerticesPerFace {
		t.Fatalf("single block: got %d vertices, want %d", got, 6*VerticesPerFace)
	}
	if got := len(m.Indices); got != 6*IndicesPerFace {
		t.Fatalf("single block: got %d indices, want %d", got, 6*IndicesPerFace)
	}
}

func TestSingleBlockAtBorderIsFullyExposed(t *testing.T) {
	// Out-of-bounds neighbours count as air, so a corner block still emits six faces.
	v := newGridVolume(1, 1, 1)
	v.set(0, 0, 0, block.Dirt)
	if got := BuildFaceMesh(v, 0, 0, 0).FaceCount(); got != 6 {
		t.Fatalf("border block: got %d faces, want 6", got)
	}
}

func TestOccludedBlockEmitsNothing(t *testing.T) {
	v := newGridVolume(3, 3, 3)
	for i := range v.cells {
		v.cells[i] = block.Stone
	}
	m := BuildFaceMesh(v, 0, 0, 0)

	// Only the outer shell is visible: 9 faces per side.
	if got := m.FaceCount(); got != 6*9 {
		t.Fatalf("solid 3x3x3: got %d faces, want %d", got, 6*9)
	}

	// No vertex may belong to the centre block's own faces: the centre cube spans [0.5,1.5].
	for i := 0; i < len(m.Vertices); i += FloatsPerVertex {
		x, y, z := m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]
		if x > 0 && x < 2 && y > 0 && y < 2 && z > 0 && z < 2 {
			t.Fatalf("vertex (%v,%v,%v) lies inside the shell", x, y, z)
		}
	}
}

func TestAdjacentBlocksShareHiddenFace(t *testing.T) {
	v := newGridVolume(4, 1, 1)
	v.set(1, 0, 0, block.Grass)
	v.set(2, 0, 0, block.Grass)
	if got := BuildFaceMesh(v, 0, 0, 0).FaceCount(); got != 10 {
		t.Fatalf("two touching blocks: got %d faces, want 10", got)
	}
}

func TestWindingIsCounterClockwiseFromOutside(t *testing.T) {
	v := newGridVolume(1, 1, 1)
	v.set(0, 0, 0, block.Stone)
	m := BuildFaceMesh(v, 0, 0, 0)

	pos := func(i uint32) mgl32.Vec3 {
		o := int(i) * FloatsPerVertex
		return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
	}

	for tri := 0; tri < len(m.Indices); tri += 3 {
		a, b, c := pos(m.Indices[tri]), pos(m.Indices[tri+1]), pos(m.Indices[tri+2])
		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
		// The block is centred on the origin, so the outward direction is the centroid itself.
		if normal.Dot(centroid) <= 0 {
			t.Fatalf("triangle %d winds clockwise seen from outside", tri/3)
		}
	}
}

func TestVerticesUseOriginAndColor(t *testing.T) {
	v := newGridVolume(2, 2, 2)
	v.set(1, 0, 1, block.Grass)
	m := BuildFaceMesh(v, -32, 0, 16)

	want := block.Grass.Color()
	for i := 0; i < len(m.Vertices); i += FloatsPerVertex {
		x, y, z := m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]
		if x != -31.5 && x != -30.5 {
			t.Fatalf("x = %v, want -31.5 or -30.5", x)
		}
		if y != -0.5 && y != 0.5 {
			t.Fatalf("y = %v, want ±0.5", y)
		}
		if z != 16.5 && z != 17.5 {
			t.Fatalf("z = %v, want 16.5 or 17.5", z)
		}
		got := mgl32.Vec3{m.Vertices[i+3], m.Vertices[i+4], m.Vertices[i+5]}
		if got != want {
			t.Fatalf("colour = %v, want %v", got, want)
		}
	}
}

func TestIndicesReferenceOwnFace(t *testing.T) {
	v := newGridVolume(2, 2, 2)
	v.set(0, 0, 0, block.Stone)
	v.set(1, 1, 1, block.Dirt)
	m := BuildFaceMesh(v, 0, 0, 0)

	for f := 0; f < m.FaceCount(); f++ {
		base := uint32(f * VerticesPerFace)
		for _, idx := range m.Indices[f*IndicesPerFace : (f+1)*IndicesPerFace] {
			if idx < base || idx >= base+VerticesPerFace {
				t.Fatalf("face %d references vertex %d outside [%d,%d)", f, idx, base, base+VerticesPerFace)
			}
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	v := newGridVolume(4, 4, 4)
	v.set(0, 0, 0, block.Stone)
	v.set(1, 0, 0, block.Dirt)
	v.set(2, 3, 1, block.Grass)

	a := BuildFaceMesh(v, 0, 0, 0)
	b := BuildFaceMesh(v, 0, 0, 0)
	if len(a.Vertices) != len(b.Vertices) || len(a.Indices) != len(b.Indices) {
		t.Fatalf("rebuild changed sizes")
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex float %d differs between builds", i)
		}
	}
}

func BenchmarkBuildFaceMesh_Surface(b *testing.B) {
	v := newGridVolume(16, 64, 16)
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y := 0; y < 40+(x+z)%8; y++ {
				v.set(x, y, z, block.Stone)
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildFaceMesh(v, 0, 0, 0)
	}
}
