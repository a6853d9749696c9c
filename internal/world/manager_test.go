package world

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

type countingGenerator struct {
	calls atomic.Int32
	err   error
}

func (g *countingGenerator) GenerateChunk(ctx context.Context, coord ChunkCoord) (*Chunk, error) {
	g.calls.Add(1)
	if g.err != nil {
		return nil, g.err
	}
	chunk := NewChunk(coord, 16)
	chunk.SetBlockID(LocalPos{X: 1, Y: 2, Z: 3}, uint16(coord.X+10))
	return chunk, nil
}

func TestManagerCachesChunks(t *testing.T) {
	gen := &countingGenerator{}
	manager := NewManager(Region{Radius: 2}, gen)
	ctx := context.Background()

	first, err := manager.Chunk(ctx, ChunkCoord{X: 1, Z: 1})
	if err != nil {
		t.Fatalf("Chunk: %v", err)
	}
	second, err := manager.Chunk(ctx, ChunkCoord{X: 1, Z: 1})
	if err != nil {
		t.Fatalf("Chunk: %v", err)
	}
	if first != second {
		t.Fatalf("expected cached chunk instance")
	}
	if gen.calls.Load() != 1 || manager.Loaded() != 1 {
		t.Fatalf("expected one generation, got %d (loaded %d)", gen.calls.Load(), manager.Loaded())
	}

	manager.Evict(ChunkCoord{X: 1, Z: 1})
	if _, err := manager.Chunk(ctx, ChunkCoord{X: 1, Z: 1}); err != nil {
		t.Fatalf("Chunk after evict: %v", err)
	}
	if gen.calls.Load() != 2 {
		t.Fatalf("expected regeneration after evict, got %d calls", gen.calls.Load())
	}
}

func TestManagerConcurrentRequestsShareChunk(t *testing.T) {
	manager := NewManager(Region{Radius: 1}, &countingGenerator{})
	ctx := context.Background()

	var wg sync.WaitGroup
	chunks := make([]*Chunk, 16)
	for i := range chunks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ch, err := manager.Chunk(ctx, ChunkCoord{X: -1, Z: 0})
			if err != nil {
				t.Errorf("Chunk: %v", err)
				return
			}
			chunks[i] = ch
		}(i)
	}
	wg.Wait()

	for _, ch := range chunks[1:] {
		if ch != chunks[0] {
			t.Fatalf("concurrent callers received different chunks")
		}
	}
}

func TestManagerBlockAt(t *testing.T) {
	manager := NewManager(Region{Radius: 1}, &countingGenerator{})
	id, err := manager.BlockAt(context.Background(), BlockCoord{X: -15, Y: 2, Z: 3})
	if err != nil {
		t.Fatalf("BlockAt: %v", err)
	}
	if id != 9 {
		t.Fatalf("BlockAt = %d, want 9", id)
	}
}

func TestManagerErrors(t *testing.T) {
	boom := errors.New("boom")
	manager := NewManager(Region{Radius: 0}, &countingGenerator{err: boom})
	ctx := context.Background()

	if _, err := manager.Chunk(ctx, ChunkCoord{X: 1}); err == nil {
		t.Fatalf("expected error outside region")
	}
	if _, err := manager.Chunk(ctx, ChunkCoord{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped generator error, got %v", err)
	}
	if manager.Loaded() != 0 {
		t.Fatalf("failed chunk must not be cached")
	}
}
