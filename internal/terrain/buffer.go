package terrain

import (
	"fmt"

	"worldgen/internal/world"
)

// ChunkWriter is the destination of a generated chunk. *world.Chunk
// satisfies it.
type ChunkWriter interface {
	Height() int
	SetBlockID(pos world.LocalPos, id uint16) bool
	SetMetadata(pos world.LocalPos, value uint8) bool
	SetBiome(x, z uint8, biome world.Biome)
}

// column is the generated content of one (x, z) column. Volumetric columns
// carry one solid flag per voxel; height columns carry a fill height.
type column struct {
	localX int
	localZ int
	biome  world.Biome
	solid  []bool
	fill   int
}

// chunkWriteBuffer holds generated columns until every column of the chunk
// has succeeded, so a failed chunk never reaches the writer.
type chunkWriteBuffer struct {
	dst      ChunkWriter
	mode     Mode
	block    uint16
	metadata uint8
	columns  map[int]column
}

func newChunkWriteBuffer(dst ChunkWriter, mode Mode, m materials) *chunkWriteBuffer {
	return &chunkWriteBuffer{
		dst:      dst,
		mode:     mode,
		block:    m.block,
		metadata: m.metadata,
		columns:  make(map[int]column, world.Width*world.Depth),
	}
}

func (b *chunkWriteBuffer) index(localX, localZ int) int {
	return localZ*world.Width + localX
}

func (b *chunkWriteBuffer) Store(col column) error {
	if b == nil {
		return fmt.Errorf("chunk write buffer is nil")
	}
	if col.localX < 0 || col.localX >= world.Width || col.localZ < 0 || col.localZ >= world.Depth {
		return fmt.Errorf("column (%d,%d) outside chunk", col.localX, col.localZ)
	}
	idx := b.index(col.localX, col.localZ)
	if _, dup := b.columns[idx]; dup {
		return fmt.Errorf("column (%d,%d) generated twice", col.localX, col.localZ)
	}
	b.columns[idx] = col
	return nil
}

// Complete reports whether every column of the chunk is buffered.
func (b *chunkWriteBuffer) Complete() bool {
	return len(b.columns) == world.Width*world.Depth
}

// Flush writes every buffered column to the destination.
func (b *chunkWriteBuffer) Flush() error {
	if !b.Complete() {
		return fmt.Errorf("flush with %d of %d columns", len(b.columns), world.Width*world.Depth)
	}
	for _, col := range b.columns {
		if err := b.writeColumn(col); err != nil {
			return err
		}
	}
	b.columns = make(map[int]column)
	return nil
}

func (b *chunkWriteBuffer) writeColumn(col column) error {
	b.dst.SetBiome(uint8(col.localX), uint8(col.localZ), col.biome)

	switch b.mode {
	case ModeVolumetric:
		for y, solid := range col.solid {
			pos := world.LocalPos{X: col.localX, Y: y, Z: col.localZ}
			id, meta := world.AirID, uint8(0)
			if solid {
				id, meta = b.block, b.metadata
			}
			if !b.dst.SetBlockID(pos, id) || !b.dst.SetMetadata(pos, meta) {
				return fmt.Errorf("write voxel %v rejected", pos)
			}
		}
	default:
		for y := 0; y < col.fill; y++ {
			pos := world.LocalPos{X: col.localX, Y: y, Z: col.localZ}
			if !b.dst.SetBlockID(pos, b.block) || !b.dst.SetMetadata(pos, b.metadata) {
				return fmt.Errorf("write voxel %v rejected", pos)
			}
		}
	}
	return nil
}
