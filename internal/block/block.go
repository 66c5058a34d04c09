package block

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Type identifies the kind of voxel stored in a chunk cell.
type Type uint8

const (
	Air Type = iota
	Stone
	Dirt
	Grass
	Count // Sentinel value for array sizing
)

var names = [Count]string{
	Air:   "air",
	Stone: "stone",
	Dirt:  "dirt",
	Grass: "grass",
}

// Solid colours used for mesh vertices, indexed by Type.
var colors = [Count]mgl32.Vec3{
	Air:   {1.0, 1.0, 1.0}, // never meshed
	Stone: {0.5, 0.5, 0.5},
	Dirt:  {0.55, 0.36, 0.23},
	Grass: {0.2, 0.8, 0.2},
}

// IsSolid reports whether the block occupies its cell. Everything except air is solid.
func (t Type) IsSolid() bool {
	return t != Air
}

// Color returns the RGB colour baked into mesh vertices for this block type.
func (t Type) Color() mgl32.Vec3 {
	if t >= Count {
		return colors[Air]
	}
	return colors[t]
}

func (t Type) String() string {
	if t >= Count {
		return "unknown"
	}
	return names[t]
}
