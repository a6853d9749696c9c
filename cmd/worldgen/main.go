package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"worldgen/internal/config"
	"worldgen/internal/terrain"
	"worldgen/internal/world"
)

func main() {
	var (
		cfgPath    string
		radius     int
		previewDir string
	)
	flag.StringVar(&cfgPath, "config", "", "path to worldgen configuration file (.json, .yaml)")
	flag.IntVar(&radius, "radius", -1, "chunks generated on each side of the region origin (overrides config)")
	flag.StringVar(&previewDir, "preview", "", "write PNG previews to this directory (overrides config)")
	flag.Parse()

	if wrote, err := writeConfigFromEnv(cfgPath); err != nil {
		log.Fatalf("sync config from environment: %v", err)
	} else if wrote {
		log.Printf("configuration written to %s from environment", cfgPath)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if radius >= 0 {
		cfg.Region.Radius = radius
	}
	if previewDir != "" {
		cfg.Preview.Enabled = true
		cfg.Preview.OutputDir = previewDir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("validate flags: %v", err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	if _, err := run(ctx, cfg); err != nil {
		log.Fatalf("generate region: %v", err)
	}
}

// run generates every chunk of the configured region and returns the
// manager holding them.
func run(ctx context.Context, cfg *config.Config) (*world.Manager, error) {
	gen := terrain.NewGenerator(terrain.Settings{
		Height:  cfg.Chunk.Height,
		Workers: cfg.Generator.Workers,
	})
	if err := gen.Initialize(cfg.Generator.Seed, terrain.Options(cfg.Generator.Options)); err != nil {
		return nil, fmt.Errorf("initialize terrain: %w", err)
	}

	region := world.Region{
		Origin: world.ChunkCoord{X: cfg.Region.Origin.X, Z: cfg.Region.Origin.Z},
		Radius: cfg.Region.Radius,
	}
	manager := world.NewManager(region, gen)

	coords := region.Chunks()
	start := time.Now()
	for i, coord := range coords {
		chunk, err := loadChunk(ctx, manager, coord, cfg.Generator.ChunkTimeout.Duration())
		if err != nil {
			return manager, err
		}
		if cfg.Preview.Enabled {
			path, err := world.SavePreview(chunk, cfg.Preview.OutputDir)
			if err != nil {
				return manager, fmt.Errorf("preview chunk %v: %w", coord, err)
			}
			log.Printf("chunk %v preview written to %s", coord, path)
		}
		log.Printf("chunk %v ready (%d/%d)", coord, i+1, len(coords))
	}

	log.Printf("%v generated: %d chunks in %s, spawn %v",
		region, len(coords), time.Since(start).Round(time.Millisecond), gen.SpawnPoint())
	return manager, nil
}

func loadChunk(ctx context.Context, manager *world.Manager, coord world.ChunkCoord, timeout time.Duration) (*world.Chunk, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return manager.Chunk(ctx, coord)
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}

		time.AfterFunc(10*time.Second, func() {
			log.Printf("forced shutdown after timeout")
			os.Exit(1)
		})
	}()

	return ctx, cancel
}
