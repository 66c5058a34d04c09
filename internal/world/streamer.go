package world

import (
	"context"
	"sync"

	"mini-voxel/internal/graphics"
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/profiling"
)

// chunkCoord is a chunk column position in chunk units.
type chunkCoord struct {
	X, Z int
}

func (c chunkCoord) key() ChunkKey { return EncodeChunkKey(c.X, c.Z) }

// streamResult is a fully populated chunk plus its CPU mesh, waiting for upload.
type streamResult struct {
	chunk *Chunk
	mesh  *meshing.Mesh
}

// Streamer builds chunks on background workers. Workers only touch the chunk they
// are building; GPU upload and registration happen on the caller's thread via Drain.
type Streamer struct {
	jobs    chan chunkCoord
	results chan streamResult

	pending   map[ChunkKey]struct{}
	pendingMu sync.Mutex

	gen    TerrainGenerator
	device graphics.Device

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStreamer starts workers goroutines pulling from a queue of queueSize jobs.
func NewStreamer(gen TerrainGenerator, dev graphics.Device, workers, queueSize int) *Streamer {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Streamer{
		jobs:    make(chan chunkCoord, queueSize),
		results: make(chan streamResult, queueSize),
		pending: make(map[ChunkKey]struct{}),
		gen:     gen,
		device:  dev,
		ctx:     ctx,
		cancel:  cancel,
	}

	for range max(workers, 1) {
		s.wg.Add(1)
		go s.worker()
	}
	return s
}

func (s *Streamer) worker() {
	defer s.wg.Done()
	for {
		select {
		case coord := <-s.jobs:
			res := s.build(coord)
			select {
			case s.results <- res:
			case <-s.ctx.Done():
				return
			}
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Streamer) build(coord chunkCoord) streamResult {
	defer profiling.Track("world.Streamer.build")()
	c := NewChunk(coord.X, coord.Z, s.device)
	s.gen.PopulateChunk(c)
	m := meshing.BuildFaceMesh(c, coord.X*ChunkSizeX, 0, coord.Z*ChunkSizeZ)
	return streamResult{chunk: c, mesh: m}
}

// Submit queues a chunk for background generation. It returns false only when the
// queue is full; a chunk that is already pending counts as submitted.
func (s *Streamer) Submit(x, z int) bool {
	coord := chunkCoord{X: x, Z: z}
	key := coord.key()

	s.pendingMu.Lock()
	if _, ok := s.pending[key]; ok {
		s.pendingMu.Unlock()
		return true
	}
	s.pending[key] = struct{}{}
	s.pendingMu.Unlock()

	select {
	case s.jobs <- coord:
		return true
	default:
		// queue full: rollback
		s.pendingMu.Lock()
		delete(s.pending, key)
		s.pendingMu.Unlock()
		return false
	}
}

// IsPending reports whether the chunk is queued, being built, or awaiting Drain.
func (s *Streamer) IsPending(x, z int) bool {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	_, ok := s.pending[EncodeChunkKey(x, z)]
	return ok
}

// Pending returns the number of chunks submitted but not yet drained.
func (s *Streamer) Pending() int {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	return len(s.pending)
}

// Drain hands up to limit finished chunks to fn without blocking. limit <= 0 drains
// everything currently available. Returns the number handed over.
func (s *Streamer) Drain(limit int, fn func(c *Chunk, m *meshing.Mesh)) int {
	n := 0
	for limit <= 0 || n < limit {
		select {
		case res := <-s.results:
			s.pendingMu.Lock()
			delete(s.pending, res.chunk.Key())
			s.pendingMu.Unlock()
			fn(res.chunk, res.mesh)
			n++
		default:
			return n
		}
	}
	return n
}

// QueueLength returns the number of jobs waiting for a worker.
func (s *Streamer) QueueLength() int {
	return len(s.jobs)
}

// Close stops the workers and waits for them to exit. Unconsumed results are dropped;
// they never reached the GPU so nothing needs releasing.
func (s *Streamer) Close() {
	s.cancel()
	s.wg.Wait()
}
