package world

import (
	"sync"

	"golang.org/x/exp/slices"
)

// ChunkStore is the sparse chunk map. Keys are also kept in a sorted slice so
// iteration is ascending by ChunkKey and stable across runs.
type ChunkStore struct {
	chunks   map[ChunkKey]*Chunk
	order    []ChunkKey
	mu       sync.RWMutex
	modCount uint64 // Increases on any chunk add/remove
}

// NewChunkStore creates an empty chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkKey]*Chunk),
	}
}

// GetChunk returns the chunk at the given chunk coordinates, or nil.
func (cs *ChunkStore) GetChunk(chunkX, chunkZ int) *Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.chunks[EncodeChunkKey(chunkX, chunkZ)]
}

// HasChunk checks if a chunk exists.
func (cs *ChunkStore) HasChunk(chunkX, chunkZ int) bool {
	return cs.GetChunk(chunkX, chunkZ) != nil
}

// AddChunk registers a chunk under its own key. The first chunk stored for a key
// wins; AddChunk returns false and leaves the store unchanged if the key is taken.
func (cs *ChunkStore) AddChunk(chunk *Chunk) bool {
	key := chunk.Key()
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, ok := cs.chunks[key]; ok {
		return false
	}
	cs.chunks[key] = chunk
	idx, _ := slices.BinarySearch(cs.order, key)
	cs.order = slices.Insert(cs.order, idx, key)
	cs.modCount++
	return true
}

// Len returns the number of stored chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// Keys returns a copy of the stored keys in ascending order.
func (cs *ChunkStore) Keys() []ChunkKey {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return slices.Clone(cs.order)
}

// ForEach calls fn for every chunk in ascending key order.
func (cs *ChunkStore) ForEach(fn func(*Chunk)) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	for _, k := range cs.order {
		fn(cs.chunks[k])
	}
}

// GetModCount returns the current modification count of the chunk map.
func (cs *ChunkStore) GetModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}

// Clear releases every chunk and empties the store.
func (cs *ChunkStore) Clear() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for _, k := range cs.order {
		cs.chunks[k].Release()
	}
	clear(cs.chunks)
	cs.order = cs.order[:0]
	cs.modCount++
}
