package world

import "sync"

const (
	// Width and Depth are fixed; Height is chosen per chunk.
	Width         = 16
	Depth         = 16
	DefaultHeight = 128

	// AirID is the block id of an empty voxel.
	AirID uint16 = 0
)

// Chunk stores a dense grid of block ids with nibble metadata, plus a biome
// and a height entry per column. Voxels are laid out Y-major, then Z, then X.
type Chunk struct {
	Coord ChunkCoord

	mu        sync.RWMutex
	height    int
	blocks    []uint16
	metadata  []byte
	biomes    [Width * Depth]Biome
	heightMap [Width * Depth]int
}

// NewChunk allocates an all-air chunk. A non-positive height uses
// DefaultHeight.
func NewChunk(coord ChunkCoord, height int) *Chunk {
	if height <= 0 {
		height = DefaultHeight
	}
	volume := Width * Depth * height
	return &Chunk{
		Coord:    coord,
		height:   height,
		blocks:   make([]uint16, volume),
		metadata: make([]byte, (volume+1)/2),
	}
}

func (c *Chunk) Height() int {
	return c.height
}

// Contains reports whether pos lies inside the chunk.
func (c *Chunk) Contains(pos LocalPos) bool {
	return pos.X >= 0 && pos.X < Width &&
		pos.Z >= 0 && pos.Z < Depth &&
		pos.Y >= 0 && pos.Y < c.height
}

func (c *Chunk) index(pos LocalPos) int {
	return (pos.Y*Depth+pos.Z)*Width + pos.X
}

func columnIndex(x, z int) int {
	return z*Width + x
}

// SetBlockID writes a block id. It returns false when pos is outside the
// chunk.
func (c *Chunk) SetBlockID(pos LocalPos, id uint16) bool {
	if !c.Contains(pos) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blocks[c.index(pos)] = id

	col := columnIndex(pos.X, pos.Z)
	switch {
	case id != AirID && pos.Y+1 > c.heightMap[col]:
		c.heightMap[col] = pos.Y + 1
	case id == AirID && pos.Y+1 == c.heightMap[col]:
		c.heightMap[col] = c.scanDown(pos.X, pos.Z, pos.Y)
	}
	return true
}

// scanDown finds the new column height below y after the top block was
// removed. Callers hold the write lock.
func (c *Chunk) scanDown(x, z, y int) int {
	for ; y > 0; y-- {
		if c.blocks[c.index(LocalPos{X: x, Y: y - 1, Z: z})] != AirID {
			return y
		}
	}
	return 0
}

// BlockID returns AirID outside the chunk.
func (c *Chunk) BlockID(pos LocalPos) uint16 {
	if !c.Contains(pos) {
		return AirID
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.blocks[c.index(pos)]
}

// SetMetadata stores the low four bits of value.
func (c *Chunk) SetMetadata(pos LocalPos, value uint8) bool {
	if !c.Contains(pos) {
		return false
	}
	idx := c.index(pos)
	c.mu.Lock()
	defer c.mu.Unlock()
	b := c.metadata[idx/2]
	if idx%2 == 0 {
		b = b&0xF0 | value&0x0F
	} else {
		b = b&0x0F | (value&0x0F)<<4
	}
	c.metadata[idx/2] = b
	return true
}

func (c *Chunk) Metadata(pos LocalPos) uint8 {
	if !c.Contains(pos) {
		return 0
	}
	idx := c.index(pos)
	c.mu.RLock()
	defer c.mu.RUnlock()
	b := c.metadata[idx/2]
	if idx%2 == 0 {
		return b & 0x0F
	}
	return b >> 4
}

// SetBiome records the biome of column (x, z). Out of range columns are
// ignored.
func (c *Chunk) SetBiome(x, z uint8, biome Biome) {
	if int(x) >= Width || int(z) >= Depth {
		return
	}
	c.mu.Lock()
	c.biomes[columnIndex(int(x), int(z))] = biome
	c.mu.Unlock()
}

func (c *Chunk) Biome(x, z uint8) Biome {
	if int(x) >= Width || int(z) >= Depth {
		return Ocean
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.biomes[columnIndex(int(x), int(z))]
}

// HeightAt is one above the highest non-air voxel of column (x, z), or 0
// for an empty column.
func (c *Chunk) HeightAt(x, z int) int {
	if x < 0 || x >= Width || z < 0 || z >= Depth {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.heightMap[columnIndex(x, z)]
}

// HeightMap returns a copy of the column heights indexed z*Width + x.
func (c *Chunk) HeightMap() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]int, len(c.heightMap))
	copy(out, c.heightMap[:])
	return out
}

// ForEachBlock calls fn for every non-air voxel until fn returns false.
func (c *Chunk) ForEachBlock(fn func(pos LocalPos, id uint16) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for y := 0; y < c.height; y++ {
		for z := 0; z < Depth; z++ {
			for x := 0; x < Width; x++ {
				pos := LocalPos{X: x, Y: y, Z: z}
				id := c.blocks[c.index(pos)]
				if id == AirID {
					continue
				}
				if !fn(pos, id) {
					return
				}
			}
		}
	}
}

// HasBlocks reports whether any voxel is non-air.
func (c *Chunk) HasBlocks() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, h := range c.heightMap {
		if h > 0 {
			return true
		}
	}
	return false
}
