package world

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	previewScale        = 4
	previewAmbientLight = 0.35
)

// SavePreview renders a top-down PNG of chunk into outputDir: each column
// is drawn in its biome colour, brighter the taller it is. It returns the
// written path.
func SavePreview(chunk *Chunk, outputDir string) (string, error) {
	if chunk == nil {
		return "", fmt.Errorf("chunk is nil")
	}
	if err := ensurePreviewDir(outputDir); err != nil {
		return "", err
	}

	img := RenderPreview(chunk)
	path := filepath.Join(outputDir, fmt.Sprintf("chunk_%d_%d.png", chunk.Coord.X, chunk.Coord.Z))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create preview: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encode preview: %w", err)
	}
	return path, nil
}

// RenderPreview draws the preview image without touching the filesystem.
func RenderPreview(chunk *Chunk) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Width*previewScale, Depth*previewScale))
	heights := chunk.HeightMap()
	top := float64(chunk.Height())

	for z := 0; z < Depth; z++ {
		for x := 0; x < Width; x++ {
			h := heights[columnIndex(x, z)]
			base, ok := parseHexColor(chunk.Biome(uint8(x), uint8(z)).Color())
			if !ok {
				base = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
			}
			shade := previewAmbientLight + (1-previewAmbientLight)*float64(h)/top
			fillTile(img, x, z, applyLighting(base, shade))
		}
	}
	return img
}

func fillTile(img *image.NRGBA, x, z int, col color.NRGBA) {
	for dy := 0; dy < previewScale; dy++ {
		for dx := 0; dx < previewScale; dx++ {
			img.SetNRGBA(x*previewScale+dx, z*previewScale+dy, col)
		}
	}
}

func parseHexColor(value string) (color.NRGBA, bool) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(trimmed) != 6 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

func applyLighting(base color.NRGBA, factor float64) color.NRGBA {
	factor = clamp(factor, 0, 1)
	r := uint8(math.Round(float64(base.R) * factor))
	g := uint8(math.Round(float64(base.G) * factor))
	b := uint8(math.Round(float64(base.B) * factor))
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func ensurePreviewDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("output directory is empty")
	}
	return os.MkdirAll(dir, 0o755)
}
