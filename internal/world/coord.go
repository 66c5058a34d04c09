package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 256
	ChunkSizeZ = 16

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// ChunkKey packs a chunk coordinate into one ordered map key:
// chunkX in the high 32 bits, chunkZ (as unsigned) in the low 32 bits.
type ChunkKey int64

// EncodeChunkKey is injective over the int32 coordinate range.
func EncodeChunkKey(chunkX, chunkZ int) ChunkKey {
	return ChunkKey(int64(int32(chunkX))<<32 | int64(uint32(int32(chunkZ))))
}

// DecodeChunkKey returns the chunk coordinate a key was built from.
func DecodeChunkKey(k ChunkKey) (chunkX, chunkZ int) {
	return int(int32(k >> 32)), int(int32(uint32(k)))
}

// ChunkCoordAt returns the chunk containing a world-space position.
// Uses floor division so negative positions land in negative chunks.
func ChunkCoordAt(pos mgl32.Vec3) (chunkX, chunkZ int) {
	bx := int(math.Floor(float64(pos.X())))
	bz := int(math.Floor(float64(pos.Z())))
	return floorDiv(bx, ChunkSizeX), floorDiv(bz, ChunkSizeZ)
}

// floorDiv performs floor division for integers (toward -inf)
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
