package physics

import (
	"math"

	"mini-voxel/internal/block"
	"mini-voxel/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 8.0

	stepSize = float32(0.02)
)

// BlockSource is anything that can answer block queries in world coordinates.
type BlockSource interface {
	BlockAt(x, y, z int) block.Type
}

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition      [3]int
	AdjacentPosition [3]int
	Block            block.Type
	Distance         float32
	Hit              bool
}

// blockContaining returns the block whose unit cube, centred on integer
// coordinates, contains p.
func blockContaining(p mgl32.Vec3) [3]int {
	return [3]int{
		int(math.Floor(float64(p.X()) + 0.5)),
		int(math.Floor(float64(p.Y()) + 0.5)),
		int(math.Floor(float64(p.Z()) + 0.5)),
	}
}

// Raycast marches from start along direction and reports the first solid block
// between minDist and maxDist. direction should be normalised.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, src BlockSource) RaycastResult {
	defer profiling.Track("physics.Raycast")()
	steps := int(maxDist / stepSize)

	lastEmptyPos := blockContaining(start)
	for i := 0; i <= steps; i++ {
		dist := float32(i) * stepSize
		if dist < minDist {
			continue
		}

		blockPos := blockContaining(start.Add(direction.Mul(dist)))
		if b := src.BlockAt(blockPos[0], blockPos[1], blockPos[2]); b.IsSolid() {
			return RaycastResult{
				HitPosition:      blockPos,
				AdjacentPosition: lastEmptyPos,
				Block:            b,
				Distance:         dist,
				Hit:              true,
			}
		}
		lastEmptyPos = blockPos
	}

	return RaycastResult{}
}
