package world

import "fmt"

// ChunkCoord identifies a chunk column in global chunk space.
type ChunkCoord struct {
	X int
	Z int
}

// BlockCoord describes a block position in global block space. Y is up.
type BlockCoord struct {
	X int
	Y int
	Z int
}

// LocalPos addresses a voxel inside a chunk.
type LocalPos struct {
	X int
	Y int
	Z int
}

// Origin returns the global block coordinate of the chunk's (0, 0, 0) voxel.
func (c ChunkCoord) Origin() BlockCoord {
	return BlockCoord{X: c.X * Width, Z: c.Z * Depth}
}

// Region is a square grid of chunks centred on Origin.
type Region struct {
	Origin ChunkCoord
	Radius int
}

// ChunksPerAxis is the edge length of the region in chunks.
func (r Region) ChunksPerAxis() int {
	if r.Radius < 0 {
		return 0
	}
	return 2*r.Radius + 1
}

func (r Region) Contains(coord ChunkCoord) bool {
	return coord.X >= r.Origin.X-r.Radius && coord.X <= r.Origin.X+r.Radius &&
		coord.Z >= r.Origin.Z-r.Radius && coord.Z <= r.Origin.Z+r.Radius
}

// Chunks lists every coordinate in the region, row by row.
func (r Region) Chunks() []ChunkCoord {
	n := r.ChunksPerAxis()
	coords := make([]ChunkCoord, 0, n*n)
	for z := r.Origin.Z - r.Radius; z <= r.Origin.Z+r.Radius; z++ {
		for x := r.Origin.X - r.Radius; x <= r.Origin.X+r.Radius; x++ {
			coords = append(coords, ChunkCoord{X: x, Z: z})
		}
	}
	return coords
}

// LocateBlock splits a global block coordinate into its chunk and the
// position inside that chunk.
func LocateBlock(block BlockCoord) (ChunkCoord, LocalPos) {
	chunk := ChunkCoord{
		X: floorDiv(block.X, Width),
		Z: floorDiv(block.Z, Depth),
	}
	origin := chunk.Origin()
	return chunk, LocalPos{X: block.X - origin.X, Y: block.Y, Z: block.Z - origin.Z}
}

func (r Region) String() string {
	return fmt.Sprintf("region %v r=%d", r.Origin, r.Radius)
}

func floorDiv(value, size int) int {
	if size <= 0 {
		return 0
	}
	if value >= 0 {
		return value / size
	}
	return -((-value - 1) / size) - 1
}
