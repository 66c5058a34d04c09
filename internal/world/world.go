package world

import (
	"log"
	"runtime"

	"mini-voxel/internal/block"
	"mini-voxel/internal/config"
	"mini-voxel/internal/graphics"
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultSeed           = 12345
	DefaultRenderDistance = 4
	DefaultInitialRadius  = 2

	streamQueueSize = 256
	// caps GPU uploads per Update so a burst of finished chunks cannot stall a frame
	maxInstallsPerUpdate = 32
)

// World owns every loaded chunk and streams new ones in around the camera.
// All methods must be called from the thread that owns the GL context.
type World struct {
	store  *ChunkStore
	seed   int64
	gen    TerrainGenerator
	device graphics.Device

	centerX, centerZ int
	centered         bool

	initialRadius int
	workers       int // 0: synchronous streaming
	streamer      *Streamer
	backlog       []chunkCoord
}

// Option configures a World at construction.
type Option func(*World)

// WithDevice sets the GPU device chunk meshes are uploaded to. Without one the
// world is headless and chunks keep CPU meshes only.
func WithDevice(dev graphics.Device) Option {
	return func(w *World) { w.device = dev }
}

// WithGenerator replaces the default sine terrain.
func WithGenerator(gen TerrainGenerator) Option {
	return func(w *World) { w.gen = gen }
}

// WithInitialRadius sets how many chunks around the origin New builds up front.
func WithInitialRadius(r int) Option {
	return func(w *World) { w.initialRadius = max(r, 0) }
}

// WithAsyncStreaming moves chunk generation and meshing onto background workers.
// workers <= 0 uses one per CPU.
func WithAsyncStreaming(workers int) Option {
	return func(w *World) {
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		w.workers = max(workers, 1)
	}
}

// New creates a world for the given seed and synchronously builds the chunks
// within the initial radius of the origin.
func New(seed int64, opts ...Option) *World {
	w := &World{
		store:         NewChunkStore(),
		seed:          seed,
		initialRadius: DefaultInitialRadius,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.gen == nil {
		w.gen = NewSineGenerator(seed)
	}

	for _, c := range ringCoords(0, 0, w.initialRadius) {
		w.GetOrCreateChunk(c.X, c.Z)
	}

	if w.workers > 0 {
		w.streamer = NewStreamer(w.gen, w.device, w.workers, streamQueueSize)
	}
	return w
}

// GetOrCreateChunk returns the chunk at the given chunk coordinates, building,
// populating and meshing it first if it is not loaded. The World keeps ownership.
func (w *World) GetOrCreateChunk(chunkX, chunkZ int) *Chunk {
	if c := w.store.GetChunk(chunkX, chunkZ); c != nil {
		return c
	}
	c := NewChunk(chunkX, chunkZ, w.device)
	w.gen.PopulateChunk(c)
	c.GenerateMesh()
	w.store.AddChunk(c)
	return c
}

// Chunk looks up a loaded chunk without creating it.
func (w *World) Chunk(chunkX, chunkZ int) (*Chunk, bool) {
	c := w.store.GetChunk(chunkX, chunkZ)
	return c, c != nil
}

// BlockAt returns the block at world coordinates. Unloaded chunks read as air.
func (w *World) BlockAt(x, y, z int) block.Type {
	cx, cz := floorDiv(x, ChunkSizeX), floorDiv(z, ChunkSizeZ)
	c := w.store.GetChunk(cx, cz)
	if c == nil {
		return block.Air
	}
	return c.GetBlock(x-cx*ChunkSizeX, y, z-cz*ChunkSizeZ)
}

// Update recenters streaming on the chunk containing cameraPos. When the centre
// changes (or on the first call) every chunk in the square of side 2*renderDistance+1
// around it is made to exist. Chunks are never unloaded.
func (w *World) Update(cameraPos mgl32.Vec3, renderDistance int) {
	defer profiling.Track("world.Update")()

	if w.streamer != nil {
		w.installStreamed()
	}

	cx, cz := ChunkCoordAt(cameraPos)
	if w.centered && cx == w.centerX && cz == w.centerZ {
		if w.streamer != nil {
			w.flushBacklog()
		}
		return
	}
	w.centerX, w.centerZ, w.centered = cx, cz, true

	coords := ringCoords(cx, cz, max(renderDistance, 0))
	if w.streamer == nil {
		created := 0
		for _, c := range coords {
			if !w.store.HasChunk(c.X, c.Z) {
				w.GetOrCreateChunk(c.X, c.Z)
				created++
			}
		}
		w.logf("center (%d,%d): built %d chunks, %d loaded", cx, cz, created, w.store.Len())
		return
	}

	// The previous backlog belongs to the old centre; rebuild it nearest first.
	w.backlog = w.backlog[:0]
	for _, c := range coords {
		if !w.store.HasChunk(c.X, c.Z) && !w.streamer.IsPending(c.X, c.Z) {
			w.backlog = append(w.backlog, c)
		}
	}
	w.logf("center (%d,%d): queued %d chunks, %d in flight", cx, cz, len(w.backlog), w.streamer.Pending())
	w.flushBacklog()
}

// installStreamed uploads and registers chunks finished by the streamer.
func (w *World) installStreamed() {
	defer profiling.Track("world.installStreamed")()
	w.streamer.Drain(maxInstallsPerUpdate, func(c *Chunk, m *meshing.Mesh) {
		if w.store.HasChunk(c.X, c.Z) {
			// built synchronously in the meantime
			return
		}
		c.setMesh(m)
		w.store.AddChunk(c)
	})
}

// flushBacklog submits queued coordinates until the streamer's queue is full.
func (w *World) flushBacklog() {
	i := 0
	for ; i < len(w.backlog); i++ {
		c := w.backlog[i]
		if w.store.HasChunk(c.X, c.Z) {
			continue
		}
		if !w.streamer.Submit(c.X, c.Z) {
			break
		}
	}
	w.backlog = w.backlog[:copy(w.backlog, w.backlog[i:])]
}

// Render draws every chunk that has a mesh, in ascending key order, with an identity
// model matrix. Meshes are already in world space.
func (w *World) Render(program uint32) {
	defer profiling.Track("world.Render")()
	model := mgl32.Ident4()
	w.store.ForEach(func(c *Chunk) {
		if c.HasMesh() {
			c.Render(program, model)
		}
	})
}

// Len returns the number of loaded chunks.
func (w *World) Len() int { return w.store.Len() }

// Keys returns the loaded chunk keys in render order.
func (w *World) Keys() []ChunkKey { return w.store.Keys() }

// Center returns the chunk the camera was last seen in.
func (w *World) Center() (x, z int) { return w.centerX, w.centerZ }

func (w *World) Seed() int64 { return w.seed }

// Pending returns how many chunks are waiting to be streamed in. Always 0 in
// synchronous mode.
func (w *World) Pending() int {
	if w.streamer == nil {
		return 0
	}
	return w.streamer.Pending() + len(w.backlog)
}

// Queued returns how many submitted chunks are still waiting for a worker.
func (w *World) Queued() int {
	if w.streamer == nil {
		return 0
	}
	return w.streamer.QueueLength()
}

// FaceCount returns the total number of quads across all loaded meshes.
func (w *World) FaceCount() int {
	total := 0
	w.store.ForEach(func(c *Chunk) { total += c.FaceCount() })
	return total
}

// Close stops background streaming and releases every chunk. The World is empty
// afterwards and falls back to synchronous streaming if used again.
func (w *World) Close() {
	if w.streamer != nil {
		w.streamer.Close()
		w.streamer = nil
		w.backlog = nil
	}
	w.store.Clear()
	w.centered = false
}

func (w *World) logf(format string, args ...any) {
	if config.GetVerbose() {
		log.Printf("world: "+format, args...)
	}
}

// ringCoords lists the chunk square of the given radius around (cx, cz) ring by
// ring, nearest first.
func ringCoords(cx, cz, radius int) []chunkCoord {
	side := 2*radius + 1
	out := make([]chunkCoord, 0, side*side)
	out = append(out, chunkCoord{cx, cz})
	for r := 1; r <= radius; r++ {
		x0, x1 := cx-r, cx+r
		z0, z1 := cz-r, cz+r
		for x := x0; x <= x1; x++ {
			out = append(out, chunkCoord{x, z0})
		}
		for z := z0 + 1; z <= z1-1; z++ {
			out = append(out, chunkCoord{x1, z})
		}
		for x := x1; x >= x0; x-- {
			out = append(out, chunkCoord{x, z1})
		}
		for z := z1 - 1; z >= z0+1; z-- {
			out = append(out, chunkCoord{x0, z})
		}
	}
	return out
}
