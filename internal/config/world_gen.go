package config

import "sync"

// WorldGenSettings holds world generation configuration
type WorldGenSettings struct {
	mu            sync.RWMutex
	seed          int64
	generator     string
	initialRadius int
	async         bool
	workers       int // 0: one per CPU
}

var globalWorldGenSettings = &WorldGenSettings{
	seed:          42,
	generator:     "sine",
	initialRadius: 2,
}

// GetSeed returns the world seed
func GetSeed() int64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.seed
}

// SetSeed sets the world seed
func SetSeed(seed int64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.seed = seed
}

// GetGenerator returns the terrain generator name ("sine", "simplex" or "value")
func GetGenerator() string {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.generator
}

// SetGenerator sets the terrain generator name. Validation happens when the
// world is built.
func SetGenerator(name string) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.generator = name
}

// GetInitialRadius returns how many chunks around the origin are built at startup
func GetInitialRadius() int {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.initialRadius
}

// SetInitialRadius sets the startup radius, clamped to [0, 8]
func SetInitialRadius(r int) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.initialRadius = min(max(r, 0), MaxInitialRadius)
}

// GetAsync returns whether chunks are generated on background workers
func GetAsync() bool {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.async
}

func SetAsync(enabled bool) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.async = enabled
}

// GetWorkers returns the background worker count; 0 means one per CPU
func GetWorkers() int {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.workers
}

func SetWorkers(n int) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.workers = max(n, 0)
}
