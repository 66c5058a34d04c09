package world

import (
	"mini-voxel/internal/block"
	"mini-voxel/internal/graphics"
	"mini-voxel/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// Chunk is a 16x256x16 column of blocks plus the mesh derived from it.
// The mesh is a cache: SetBlock does not touch it, GenerateMesh rebuilds it.
type Chunk struct {
	X, Z   int
	blocks []block.Type

	device graphics.Device // nil: CPU mesh only
	mesh   *meshing.Mesh
	gpu    graphics.MeshBuffer
}

// NewChunk creates an all-air chunk at the given chunk coordinates.
func NewChunk(chunkX, chunkZ int, dev graphics.Device) *Chunk {
	return &Chunk{
		X:      chunkX,
		Z:      chunkZ,
		blocks: make([]block.Type, ChunkVolume),
		device: dev,
	}
}

// y-major, then z, then x
func blockIndex(x, y, z int) int {
	return y*(ChunkSizeX*ChunkSizeZ) + z*ChunkSizeX + x
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// Dims returns the chunk size in blocks.
func (c *Chunk) Dims() (int, int, int) {
	return ChunkSizeX, ChunkSizeY, ChunkSizeZ
}

// GetBlock returns the block at local coordinates, or air when out of bounds.
func (c *Chunk) GetBlock(x, y, z int) block.Type {
	if !inBounds(x, y, z) {
		return block.Air
	}
	return c.blocks[blockIndex(x, y, z)]
}

// SetBlock overwrites the block at local coordinates. Out-of-bounds writes are ignored.
func (c *Chunk) SetBlock(x, y, z int, t block.Type) {
	if !inBounds(x, y, z) {
		return
	}
	c.blocks[blockIndex(x, y, z)] = t
}

// GenerateMesh discards the current mesh and rebuilds it from the block contents.
func (c *Chunk) GenerateMesh() {
	c.setMesh(meshing.BuildFaceMesh(c, c.X*ChunkSizeX, 0, c.Z*ChunkSizeZ))
}

// setMesh installs a mesh built elsewhere and uploads it. Must run on the GL thread.
func (c *Chunk) setMesh(m *meshing.Mesh) {
	c.Release()
	if m.Empty() {
		return
	}
	c.mesh = m
	if c.device != nil {
		c.gpu = c.device.UploadMesh(m.Vertices, m.Indices)
	}
}

// HasMesh reports whether the last GenerateMesh produced at least one face.
func (c *Chunk) HasMesh() bool {
	return !c.mesh.Empty()
}

// Mesh returns the CPU copy of the current mesh (nil when there is none). Do not modify it.
func (c *Chunk) Mesh() *meshing.Mesh {
	return c.mesh
}

// FaceCount returns the number of quads in the current mesh.
func (c *Chunk) FaceCount() int {
	return c.mesh.FaceCount()
}

// Render draws the chunk with the given program and model transform. No-op without a mesh.
func (c *Chunk) Render(program uint32, model mgl32.Mat4) {
	if !c.HasMesh() || c.gpu == nil {
		return
	}
	c.device.DrawMesh(program, model, c.gpu)
}

// Release frees the GPU buffer and drops the mesh.
func (c *Chunk) Release() {
	if c.gpu != nil {
		c.gpu.Release()
		c.gpu = nil
	}
	c.mesh = nil
}

// Key returns the store key for this chunk's coordinates.
func (c *Chunk) Key() ChunkKey { return EncodeChunkKey(c.X, c.Z) }

// WorldPosition returns the world-space corner of the chunk at y=0.
func (c *Chunk) WorldPosition() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X * ChunkSizeX), 0, float32(c.Z * ChunkSizeZ)}
}
