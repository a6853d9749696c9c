package world

import (
	"context"
	"fmt"
	"sync"
)

// Generator fills new chunks.
type Generator interface {
	GenerateChunk(ctx context.Context, coord ChunkCoord) (*Chunk, error)
}

// Manager caches generated chunks for a region, generating on first use.
type Manager struct {
	region    Region
	generator Generator

	mu     sync.RWMutex
	chunks map[ChunkCoord]*Chunk
}

func NewManager(region Region, generator Generator) *Manager {
	return &Manager{
		region:    region,
		generator: generator,
		chunks:    make(map[ChunkCoord]*Chunk),
	}
}

func (m *Manager) Region() Region {
	return m.region
}

// Chunk returns the cached chunk at coord, generating it on a miss. When
// two callers race on the same miss the first stored chunk wins.
func (m *Manager) Chunk(ctx context.Context, coord ChunkCoord) (*Chunk, error) {
	if !m.region.Contains(coord) {
		return nil, fmt.Errorf("chunk %v outside %v", coord, m.region)
	}

	m.mu.RLock()
	ch, ok := m.chunks[coord]
	m.mu.RUnlock()
	if ok {
		return ch, nil
	}

	ch, err := m.generator.GenerateChunk(ctx, coord)
	if err != nil {
		return nil, fmt.Errorf("generate chunk %v: %w", coord, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.chunks[coord]; ok {
		return existing, nil
	}
	m.chunks[coord] = ch
	return ch, nil
}

// BlockAt returns the block id at a global coordinate, generating the
// owning chunk if needed.
func (m *Manager) BlockAt(ctx context.Context, block BlockCoord) (uint16, error) {
	coord, local := LocateBlock(block)
	ch, err := m.Chunk(ctx, coord)
	if err != nil {
		return AirID, err
	}
	return ch.BlockID(local), nil
}

// Loaded reports how many chunks are cached.
func (m *Manager) Loaded() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.chunks)
}

// Evict drops a cached chunk so the next request regenerates it.
func (m *Manager) Evict(coord ChunkCoord) {
	m.mu.Lock()
	delete(m.chunks, coord)
	m.mu.Unlock()
}
