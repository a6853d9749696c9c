package world

import "testing"

func TestChunkBlockRoundTrip(t *testing.T) {
	chunk := NewChunk(ChunkCoord{X: 3, Z: -2}, 0)
	if chunk.Height() != DefaultHeight {
		t.Fatalf("expected default height %d, got %d", DefaultHeight, chunk.Height())
	}
	if chunk.HasBlocks() {
		t.Fatalf("expected fresh chunk to be empty")
	}

	pos := LocalPos{X: 15, Y: 127, Z: 0}
	if !chunk.SetBlockID(pos, 1) {
		t.Fatalf("SetBlockID(%v) rejected", pos)
	}
	if got := chunk.BlockID(pos); got != 1 {
		t.Fatalf("BlockID(%v) = %d, want 1", pos, got)
	}
	if !chunk.HasBlocks() {
		t.Fatalf("expected chunk to report blocks")
	}

	outside := []LocalPos{
		{X: 16, Y: 0, Z: 0},
		{X: 0, Y: 128, Z: 0},
		{X: 0, Y: 0, Z: -1},
	}
	for _, p := range outside {
		if chunk.SetBlockID(p, 1) {
			t.Errorf("SetBlockID(%v) accepted out of range position", p)
		}
		if chunk.BlockID(p) != AirID {
			t.Errorf("BlockID(%v) outside chunk should be air", p)
		}
	}
}

func TestChunkMetadataNibbles(t *testing.T) {
	chunk := NewChunk(ChunkCoord{}, 4)
	even := LocalPos{X: 0, Y: 1, Z: 2}
	odd := LocalPos{X: 1, Y: 1, Z: 2}

	chunk.SetMetadata(even, 0x0A)
	chunk.SetMetadata(odd, 0xF5)

	if got := chunk.Metadata(even); got != 0x0A {
		t.Fatalf("even metadata = %#x, want 0xa", got)
	}
	if got := chunk.Metadata(odd); got != 0x05 {
		t.Fatalf("odd metadata = %#x, want 0x5 (high bits dropped)", got)
	}

	chunk.SetMetadata(even, 0)
	if got := chunk.Metadata(odd); got != 0x05 {
		t.Fatalf("clearing neighbour changed metadata to %#x", got)
	}
}

func TestChunkHeightMapTracksTopBlock(t *testing.T) {
	chunk := NewChunk(ChunkCoord{}, 32)
	chunk.SetBlockID(LocalPos{X: 2, Y: 0, Z: 3}, 1)
	chunk.SetBlockID(LocalPos{X: 2, Y: 10, Z: 3}, 1)
	chunk.SetBlockID(LocalPos{X: 2, Y: 4, Z: 3}, 1)

	if got := chunk.HeightAt(2, 3); got != 11 {
		t.Fatalf("height = %d, want 11", got)
	}

	chunk.SetBlockID(LocalPos{X: 2, Y: 10, Z: 3}, AirID)
	if got := chunk.HeightAt(2, 3); got != 5 {
		t.Fatalf("height after removing top = %d, want 5", got)
	}

	chunk.SetBlockID(LocalPos{X: 2, Y: 0, Z: 3}, AirID)
	chunk.SetBlockID(LocalPos{X: 2, Y: 4, Z: 3}, AirID)
	if got := chunk.HeightAt(2, 3); got != 0 {
		t.Fatalf("height of emptied column = %d, want 0", got)
	}

	heights := chunk.HeightMap()
	heights[0] = 99
	if chunk.HeightAt(0, 0) != 0 {
		t.Fatalf("HeightMap must return a copy")
	}
}

func TestChunkBiomes(t *testing.T) {
	chunk := NewChunk(ChunkCoord{}, 8)
	chunk.SetBiome(15, 15, Jungle)
	chunk.SetBiome(16, 0, Desert)

	if got := chunk.Biome(15, 15); got != Jungle {
		t.Fatalf("biome = %v, want jungle", got)
	}
	if got := chunk.Biome(0, 0); got != Ocean {
		t.Fatalf("default biome = %v, want ocean", got)
	}
}

func TestChunkForEachBlockStops(t *testing.T) {
	chunk := NewChunk(ChunkCoord{}, 8)
	for x := 0; x < 4; x++ {
		chunk.SetBlockID(LocalPos{X: x, Y: 1, Z: 1}, uint16(x+1))
	}

	var seen []uint16
	chunk.ForEachBlock(func(_ LocalPos, id uint16) bool {
		seen = append(seen, id)
		return len(seen) < 2
	})
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("ForEachBlock visited %v", seen)
	}
}

func TestBiomeNamesAndClassification(t *testing.T) {
	if ExtremeHills.String() != "extreme_hills" || uint8(ExtremeHills) != 3 {
		t.Fatalf("extreme hills = %q/%d", ExtremeHills.String(), uint8(ExtremeHills))
	}
	b, err := ParseBiome("jungle")
	if err != nil || b != Jungle {
		t.Fatalf("ParseBiome(jungle) = %v, %v", b, err)
	}
	if _, err := ParseBiome("moon"); err == nil {
		t.Fatalf("expected error for unknown biome")
	}

	tests := []struct {
		temp, rain float64
		want       Biome
	}{
		{-1, -1, IcePlains},
		{-1, 1, ColdTaiga},
		{0, -1, ExtremeHills},
		{0, 0, Forest},
		{0, 1, Swampland},
		{1, -1, Desert},
		{1, 1, Jungle},
		{5, 5, Jungle},
	}
	for _, tt := range tests {
		if got := ClassifyBiome(tt.temp, tt.rain); got != tt.want {
			t.Errorf("ClassifyBiome(%v, %v) = %v, want %v", tt.temp, tt.rain, got, tt.want)
		}
	}
}
