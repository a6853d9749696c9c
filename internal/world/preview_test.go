package world

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSavePreviewWritesPNG(t *testing.T) {
	chunk := NewChunk(ChunkCoord{X: 2, Z: -1}, 16)
	for x := 0; x < Width; x++ {
		chunk.SetBiome(uint8(x), 0, Plains)
		chunk.SetBlockID(LocalPos{X: x, Y: x % 16, Z: 0}, 1)
	}

	dir := filepath.Join(t.TempDir(), "preview")
	path, err := SavePreview(chunk, dir)
	if err != nil {
		t.Fatalf("SavePreview: %v", err)
	}
	if filepath.Base(path) != "chunk_2_-1.png" {
		t.Fatalf("unexpected preview name %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read preview: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != Width*previewScale || bounds.Dy() != Depth*previewScale {
		t.Fatalf("preview is %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Column 15 is taller than column 0, so it renders brighter.
	_, low, _, _ := img.At(0, 0).RGBA()
	_, high, _, _ := img.At(15*previewScale, 0).RGBA()
	if high <= low {
		t.Fatalf("expected taller column to be brighter: %d <= %d", high, low)
	}
}

func TestSavePreviewRejectsBadInput(t *testing.T) {
	if _, err := SavePreview(nil, t.TempDir()); err == nil {
		t.Fatalf("expected error for nil chunk")
	}
	if _, err := SavePreview(NewChunk(ChunkCoord{}, 4), ""); err == nil {
		t.Fatalf("expected error for empty output directory")
	}
}
