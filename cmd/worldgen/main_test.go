package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"worldgen/internal/config"
	"worldgen/internal/terrain"
	"worldgen/internal/world"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	originalFlags := log.Flags()
	originalWriter := log.Writer()
	log.SetFlags(0)
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(originalWriter)
		log.SetFlags(originalFlags)
	})
	return &buf
}

func TestRunGeneratesRegionWithPreviews(t *testing.T) {
	logs := captureLogs(t)

	cfg := config.Default()
	cfg.Generator.Options = map[string]string{"preset": "hills", "basis": "opensimplex"}
	cfg.Region = config.RegionConfig{Origin: config.ChunkIndex{X: 4, Z: -1}, Radius: 1}
	cfg.Preview = config.PreviewConfig{Enabled: true, OutputDir: filepath.Join(t.TempDir(), "previews")}

	manager, err := run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if manager.Loaded() != 9 {
		t.Fatalf("loaded %d chunks, want 9", manager.Loaded())
	}

	for _, name := range []string{"chunk_3_-2.png", "chunk_4_-1.png", "chunk_5_0.png"} {
		if _, err := os.Stat(filepath.Join(cfg.Preview.OutputDir, name)); err != nil {
			t.Fatalf("expected preview %s: %v", name, err)
		}
	}
	if !strings.Contains(logs.String(), "chunk {5 0} ready (9/9)") {
		t.Fatalf("missing completion log:\n%s", logs.String())
	}
}

func TestRunDexRegionIsFlat(t *testing.T) {
	captureLogs(t)

	cfg := config.Default()
	cfg.Region.Radius = 0
	manager, err := run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	ctx := context.Background()
	for _, tt := range []struct {
		block world.BlockCoord
		want  uint16
	}{
		{world.BlockCoord{X: 3, Y: 63, Z: 9}, 1},
		{world.BlockCoord{X: 3, Y: 64, Z: 9}, world.AirID},
	} {
		got, err := manager.BlockAt(ctx, tt.block)
		if err != nil || got != tt.want {
			t.Fatalf("BlockAt(%v) = %d, %v; want %d", tt.block, got, err, tt.want)
		}
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	captureLogs(t)

	cfg := config.Default()
	cfg.Generator.Options = map[string]string{"preset": "nowhere"}
	if _, err := run(context.Background(), cfg); !errors.Is(err, terrain.ErrInvalidConfiguration) {
		t.Fatalf("run = %v, want ErrInvalidConfiguration", err)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	captureLogs(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	manager, err := run(ctx, config.Default())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("run = %v, want context.Canceled", err)
	}
	if manager.Loaded() != 0 {
		t.Fatalf("cancelled run cached %d chunks", manager.Loaded())
	}
}
