// Package terrain turns noise pipelines into chunk contents.
package terrain

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"

	"worldgen/internal/mathx"
	"worldgen/internal/world"
)

// ErrNotInitialized is returned when a chunk is requested before
// Initialize succeeded.
var ErrNotInitialized = errors.New("terrain generator not initialized")

// Settings are fixed for the generator's lifetime.
type Settings struct {
	// Height is the chunk height in blocks. Zero uses world.DefaultHeight.
	Height int
	// Workers bounds the column worker pool. Zero uses GOMAXPROCS*2.
	Workers int
}

// level is everything Initialize derives from the seed and options. It is
// never modified once built.
type level struct {
	seed      int64
	preset    string
	pipeline  Pipeline
	materials materials
	spawn     mathx.Vector3
}

// Generator builds chunks from a pipeline assembled by Initialize. Once
// initialized it is safe for concurrent GenerateChunk calls.
type Generator struct {
	settings Settings

	mu    sync.RWMutex
	level *level
}

func NewGenerator(settings Settings) *Generator {
	if settings.Height <= 0 {
		settings.Height = world.DefaultHeight
	}
	return &Generator{settings: settings}
}

// Initialize builds the pipeline named by the preset option from seed and
// validates it. A failed Initialize leaves any previous level in place.
func (g *Generator) Initialize(seed int64, opts Options) error {
	p, err := buildPreset(seed, opts, g.settings.Height)
	if err != nil {
		return err
	}
	return g.install(seed, opts.String(OptPreset, PresetDex), p, opts)
}

// InitializePipeline installs a caller-built pipeline. Block and biome
// options apply as for Initialize. A nil Solid uses SentinelSolid.
func (g *Generator) InitializePipeline(seed int64, pipeline Pipeline, opts Options) error {
	if pipeline.Solid == nil {
		pipeline.Solid = SentinelSolid
	}
	return g.install(seed, "custom", preset{pipeline: pipeline}, opts)
}

func (g *Generator) install(seed int64, name string, p preset, opts Options) error {
	if err := p.pipeline.Validate(); err != nil {
		return err
	}
	m, err := opts.materials()
	if err != nil {
		return err
	}

	lvl := &level{
		seed:      seed,
		preset:    name,
		pipeline:  p.pipeline,
		materials: m,
	}
	if p.spawn != nil {
		lvl.spawn = *p.spawn
	} else {
		h, err := g.surface(lvl, 0, 0)
		if err != nil {
			return fmt.Errorf("locate spawn: %w", err)
		}
		lvl.spawn = mathx.Vec(0, float64(h+1), 0)
	}

	g.mu.Lock()
	g.level = lvl
	g.mu.Unlock()

	log.Printf("terrain initialized: preset=%s mode=%s seed=%d spawn=%v", name, p.pipeline.Mode(), seed, lvl.spawn)
	return nil
}

func (g *Generator) current() (*level, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.level == nil {
		return nil, ErrNotInitialized
	}
	return g.level, nil
}

// SpawnPoint is the zero vector before Initialize.
func (g *Generator) SpawnPoint() mathx.Vector3 {
	lvl, err := g.current()
	if err != nil {
		return mathx.Vector3{}
	}
	return lvl.spawn
}

// Pipeline returns the installed pipeline.
func (g *Generator) Pipeline() (Pipeline, error) {
	lvl, err := g.current()
	if err != nil {
		return Pipeline{}, err
	}
	return lvl.pipeline, nil
}

// HeightAt is the number of solid-filled voxels at the bottom of global
// column (x, z) for column pipelines, or one above the highest solid voxel
// for density pipelines.
func (g *Generator) HeightAt(x, z int) (int, error) {
	lvl, err := g.current()
	if err != nil {
		return 0, err
	}
	return g.surface(lvl, x, z)
}

func (g *Generator) surface(lvl *level, x, z int) (h int, err error) {
	defer recoverSample(&err)
	p := lvl.pipeline
	if p.Mode() == ModeColumn {
		return columnHeight(p.Height.Get2D(float64(x), float64(z)), g.settings.Height), nil
	}
	for y := g.settings.Height - 1; y >= 0; y-- {
		if p.Solid(p.Density.Get3D(float64(x), float64(y), float64(z))) {
			return y + 1, nil
		}
	}
	return 0, nil
}

func columnHeight(v float64, height int) int {
	h := int(v)
	if h < 0 {
		return 0
	}
	if h > height {
		return height
	}
	return h
}

// GenerateChunk builds a new chunk at coord.
func (g *Generator) GenerateChunk(ctx context.Context, coord world.ChunkCoord) (*world.Chunk, error) {
	chunk := world.NewChunk(coord, g.settings.Height)
	if err := g.GenerateInto(ctx, coord, chunk); err != nil {
		return nil, err
	}
	return chunk, nil
}

// GenerateInto generates the chunk at coord into dst. Columns are computed
// in parallel and buffered; dst is only written once every column has
// succeeded, so on error it is left untouched.
func (g *Generator) GenerateInto(ctx context.Context, coord world.ChunkCoord, dst ChunkWriter) error {
	lvl, err := g.current()
	if err != nil {
		return err
	}
	if dst == nil {
		return fmt.Errorf("chunk %v: nil destination", coord)
	}

	totalColumns := world.Width * world.Depth
	log.Printf("chunk %v generation progress: 0%%", coord)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	buffer := newChunkWriteBuffer(dst, lvl.pipeline.Mode(), lvl.materials)
	origin := coord.Origin()
	height := dst.Height()

	type columnTask struct {
		localX int
		localZ int
	}

	type columnResult struct {
		column column
		err    error
	}

	workers := g.workerCount(totalColumns)
	tasks := make(chan columnTask, workers)
	results := make(chan columnResult, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				if err := ctx.Err(); err != nil {
					select {
					case results <- columnResult{err: err}:
					default:
					}
					return
				}

				col, err := sampleColumn(lvl, origin, task.localX, task.localZ, height)
				select {
				case results <- columnResult{column: col, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(tasks)
		for x := 0; x < world.Width; x++ {
			for z := 0; z < world.Depth; z++ {
				select {
				case <-ctx.Done():
					return
				case tasks <- columnTask{localX: x, localZ: z}:
				}
			}
		}
	}()

	generatedColumns := 0
	nextLogPercent := 10

	for result := range results {
		if result.err != nil {
			cancel()
			return fmt.Errorf("chunk %v: %w", coord, result.err)
		}
		if err := buffer.Store(result.column); err != nil {
			cancel()
			return fmt.Errorf("chunk %v: %w", coord, err)
		}

		generatedColumns++
		progress := generatedColumns * 100 / totalColumns
		if progress >= nextLogPercent {
			log.Printf("chunk %v generation progress: %d%%", coord, progress)
			nextLogPercent = (progress/10 + 1) * 10
		}
	}

	// A cancelled context can close results before every column arrived.
	if !buffer.Complete() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("chunk %v: %w", coord, err)
		}
		return fmt.Errorf("chunk %v: generation stopped after %d of %d columns", coord, generatedColumns, totalColumns)
	}

	if err := buffer.Flush(); err != nil {
		return fmt.Errorf("chunk %v: %w", coord, err)
	}
	return nil
}

// sampleColumn evaluates one column. A panicking field becomes an error.
func sampleColumn(lvl *level, origin world.BlockCoord, localX, localZ, height int) (col column, err error) {
	defer recoverSample(&err)

	p := lvl.pipeline
	x := float64(origin.X + localX)
	z := float64(origin.Z + localZ)

	col = column{localX: localX, localZ: localZ, biome: lvl.materials.biome}
	if p.Temperature != nil {
		col.biome = world.ClassifyBiome(p.Temperature.Get2D(x, z), p.Rainfall.Get2D(x, z))
	}

	if p.Mode() == ModeColumn {
		col.fill = columnHeight(p.Height.Get2D(x, z), height)
		return col, nil
	}

	col.solid = make([]bool, height)
	for y := 0; y < height; y++ {
		col.solid[y] = p.Solid(p.Density.Get3D(x, float64(y), z))
	}
	return col, nil
}

func recoverSample(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok {
		*err = fmt.Errorf("sample panicked: %w", e)
		return
	}
	*err = fmt.Errorf("sample panicked: %v", r)
}

func (g *Generator) workerCount(totalColumns int) int {
	if totalColumns <= 0 {
		return 1
	}
	workers := g.settings.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0) * 2
	}
	if workers > totalColumns {
		workers = totalColumns
	}
	if workers <= 0 {
		workers = 1
	}
	return workers
}
