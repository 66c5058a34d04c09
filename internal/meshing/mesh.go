package meshing

import (
	"mini-voxel/internal/block"
	"mini-voxel/internal/profiling"
)

// Vertex layout: pos.xyz + color.rgb
const (
	FloatsPerVertex = 6
	VerticesPerFace = 4
	IndicesPerFace  = 6
)

// Volume is a dense block grid that can be meshed.
// GetBlock must return block.Air for coordinates outside Dims.
type Volume interface {
	Dims() (width, height, depth int)
	GetBlock(x, y, z int) block.Type
}

// Mesh holds interleaved vertex data and triangle indices for one volume.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices (not floats) in the mesh.
func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices) / FloatsPerVertex
}

// FaceCount returns the number of quads in the mesh.
func (m *Mesh) FaceCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / IndicesPerFace
}

// Empty reports whether the mesh has nothing to draw.
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Indices) == 0
}

type face struct {
	dx, dy, dz int
	// corners relative to block centre, counter-clockwise seen from outside
	corners [VerticesPerFace][3]float32
}

// Emission order: +Z, -Z, -X, +X, -Y, +Y
var faces = [6]face{
	{0, 0, 1, [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
	{0, 0, -1, [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
	{-1, 0, 0, [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
	{1, 0, 0, [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
	{0, -1, 0, [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	{0, 1, 0, [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
}

// quad index pattern: two triangles sharing the 0-2 diagonal
var quadIndices = [IndicesPerFace]uint32{0, 1, 2, 2, 3, 0}

// BuildFaceMesh emits one quad for every solid block face whose neighbour is not solid.
// Neighbours outside the volume count as air, so faces on the volume border are always
// emitted and adjacent volumes never show seams. origin is the world-space position of
// local cell (0,0,0); vertex positions are block centres in world space ±0.5.
func BuildFaceMesh(v Volume, originX, originY, originZ int) *Mesh {
	defer profiling.Track("meshing.BuildFaceMesh")()

	w, h, d := v.Dims()
	m := &Mesh{
		Vertices: make([]float32, 0, 4096),
		Indices:  make([]uint32, 0, 4096),
	}

	for y := 0; y < h; y++ {
		for z := 0; z < d; z++ {
			for x := 0; x < w; x++ {
				bt := v.GetBlock(x, y, z)
				if !bt.IsSolid() {
					continue
				}
				color := bt.Color()
				cx := float32(originX + x)
				cy := float32(originY + y)
				cz := float32(originZ + z)

				for i := range faces {
					f := &faces[i]
					if v.GetBlock(x+f.dx, y+f.dy, z+f.dz).IsSolid() {
						continue
					}
					base := uint32(len(m.Vertices) / FloatsPerVertex)
					for _, c := range f.corners {
						m.Vertices = append(m.Vertices,
							cx+c[0], cy+c[1], cz+c[2],
							color[0], color[1], color[2],
						)
					}
					for _, idx := range quadIndices {
						m.Indices = append(m.Indices, base+idx)
					}
				}
			}
		}
	}

	return m
}
