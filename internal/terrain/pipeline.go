package terrain

import (
	"fmt"

	"worldgen/internal/mathx"
	"worldgen/internal/noise"
)

// Mode is the generation strategy, decided by which pipeline root is set.
type Mode int

const (
	// ModeVolumetric samples Density at every voxel.
	ModeVolumetric Mode = iota
	// ModeColumn samples Height once per column and fills below it.
	ModeColumn
)

func (m Mode) String() string {
	if m == ModeColumn {
		return "column"
	}
	return "volumetric"
}

// SolidFunc decides whether a density sample is solid.
type SolidFunc func(v float64) bool

// SentinelSolid treats a sample that truncates to -1 as solid, which is how
// Select(-1, 1) density pipelines mark ground.
func SentinelSolid(v float64) bool {
	return int(v) == -1
}

// ThresholdSolid is solid at or above threshold.
func ThresholdSolid(threshold float64) SolidFunc {
	return func(v float64) bool { return v >= threshold }
}

// Pipeline is the set of field roots a level is generated from. Exactly one
// of Density and Height must be set. Temperature and Rainfall are optional
// 2D fields; when both are set they pick each column's biome.
type Pipeline struct {
	Density     noise.Field
	Height      noise.Field
	Temperature noise.Field
	Rainfall    noise.Field
	Solid       SolidFunc
}

func (p Pipeline) Mode() Mode {
	if p.Height != nil {
		return ModeColumn
	}
	return ModeVolumetric
}

// Validate checks the shape of the pipeline and every field's support for
// the dimension it will be sampled in. Nothing is sampled.
func (p Pipeline) Validate() error {
	switch {
	case p.Density == nil && p.Height == nil:
		return fmt.Errorf("pipeline has no density or height root: %w", ErrInvalidConfiguration)
	case p.Density != nil && p.Height != nil:
		return fmt.Errorf("pipeline has both density and height roots: %w", ErrInvalidConfiguration)
	case (p.Temperature == nil) != (p.Rainfall == nil):
		return fmt.Errorf("pipeline needs both temperature and rainfall or neither: %w", ErrInvalidConfiguration)
	}

	if p.Density != nil {
		if err := noise.Check(p.Density, noise.D3); err != nil {
			return fmt.Errorf("density: %w", err)
		}
	} else if err := noise.Check(p.Height, noise.D2); err != nil {
		return fmt.Errorf("height: %w", err)
	}

	if p.Temperature != nil {
		if err := noise.Check(p.Temperature, noise.D2); err != nil {
			return fmt.Errorf("temperature: %w", err)
		}
		if err := noise.Check(p.Rainfall, noise.D2); err != nil {
			return fmt.Errorf("rainfall: %w", err)
		}
	}
	return nil
}

// Preset names accepted by the preset option.
const (
	PresetDex     = "dex"
	PresetClassic = "classic"
	PresetHills   = "hills"
	PresetCaverns = "caverns"
	PresetCells   = "cells"
)

// Basis names accepted by the basis option of the hills preset.
const (
	BasisPerlin      = "perlin"
	BasisSimplex     = "simplex"
	BasisOpenSimplex = "opensimplex"
	BasisHarmonic    = "harmonic"
	BasisValue       = "value"
)

// preset is a built pipeline plus a fixed spawn point when the preset
// defines one.
type preset struct {
	pipeline Pipeline
	spawn    *mathx.Vector3
}

type presetBuilder func(seed int64, opts Options, height int) (preset, error)

var presets = map[string]presetBuilder{
	PresetDex:     buildDex,
	PresetClassic: buildClassic,
	PresetHills:   buildHills,
	PresetCaverns: buildCaverns,
	PresetCells:   buildCells,
}

func buildPreset(seed int64, opts Options, height int) (preset, error) {
	name := opts.String(OptPreset, PresetDex)
	build, ok := presets[name]
	if !ok {
		return preset{}, fmt.Errorf("unknown preset %q: %w", name, ErrInvalidConfiguration)
	}
	p, err := build(seed, opts, height)
	if err != nil {
		return preset{}, fmt.Errorf("preset %s: %w", name, err)
	}

	if p.pipeline.Solid == nil {
		p.pipeline.Solid = SentinelSolid
	}
	if _, ok := opts.lookup(OptDensityThreshold); ok {
		threshold, err := opts.Float(OptDensityThreshold, 0)
		if err != nil {
			return preset{}, err
		}
		p.pipeline.Solid = ThresholdSolid(threshold)
	}
	return p, nil
}

// buildDex is a flat density world: everything below y=64 is ground.
func buildDex(_ int64, _ Options, _ int) (preset, error) {
	gradient, err := noise.NewGradient(mathx.Vec(0, 0, 0), mathx.Vec(0, 128, 0), noise.Linear)
	if err != nil {
		return preset{}, err
	}
	spawn := mathx.Vec(0, 129, 0)
	return preset{
		pipeline: Pipeline{Density: noise.SelectConstant(gradient, -1, 1, 0, 0)},
		spawn:    &spawn,
	}, nil
}

// buildClassic is smoothed value noise summed over octaves, folded with Abs
// and lifted above sea level.
func buildClassic(seed int64, opts Options, _ int) (preset, error) {
	octaves, err := opts.Int(OptOctaves, 2)
	if err != nil {
		return preset{}, err
	}
	frequency, err := opts.Float(OptFrequency, 0.01)
	if err != nil {
		return preset{}, err
	}
	amplitude, err := opts.Float(OptHeightAmplitude, 80)
	if err != nil {
		return preset{}, err
	}
	base, err := opts.Float(OptHeightBase, 40)
	if err != nil {
		return preset{}, err
	}

	source := noise.NewValue(noise.NewSmooth3x3(noise.NewWhite(int32(seed))), noise.Cosine)
	fbm, err := noise.NewFBM(source, octaves, frequency, amplitude, noise.DefaultLacunarity, 1)
	if err != nil {
		return preset{}, err
	}
	return preset{pipeline: Pipeline{Height: noise.AddConstant(noise.NewAbs(fbm), base)}}, nil
}

// buildHills is fractal noise over a selectable basis with climate driven
// biomes.
func buildHills(seed int64, opts Options, _ int) (preset, error) {
	octaves, err := opts.Int(OptOctaves, 4)
	if err != nil {
		return preset{}, err
	}
	frequency, err := opts.Float(OptFrequency, 1.0/128)
	if err != nil {
		return preset{}, err
	}
	amplitude, err := opts.Float(OptHeightAmplitude, 24)
	if err != nil {
		return preset{}, err
	}
	base, err := opts.Float(OptHeightBase, 64)
	if err != nil {
		return preset{}, err
	}

	basis, err := newBasis(opts.String(OptBasis, BasisPerlin), seed)
	if err != nil {
		return preset{}, err
	}
	fbm, err := noise.NewFBM(basis, octaves, frequency, amplitude, noise.DefaultLacunarity, noise.DefaultPersistence)
	if err != nil {
		return preset{}, err
	}

	temperature, err := climate(seed, 1)
	if err != nil {
		return preset{}, err
	}
	rainfall, err := climate(seed, 2)
	if err != nil {
		return preset{}, err
	}
	return preset{pipeline: Pipeline{
		Height:      noise.AddConstant(fbm, base),
		Temperature: temperature,
		Rainfall:    rainfall,
	}}, nil
}

// buildCaverns is a density world: a vertical gradient bent by Perlin
// noise decides the ground, and Worley feature points hollow out pockets.
func buildCaverns(seed int64, opts Options, height int) (preset, error) {
	octaves, err := opts.Int(OptOctaves, 3)
	if err != nil {
		return preset{}, err
	}
	frequency, err := opts.Float(OptFrequency, 1.0/64)
	if err != nil {
		return preset{}, err
	}

	gradient, err := noise.NewGradient(mathx.Vec(0, 0, 0), mathx.Vec(0, float64(height), 0), noise.Linear)
	if err != nil {
		return preset{}, err
	}
	perlin, err := noise.NewPerlin(mathx.NewLegacyRandom(int32(seed)))
	if err != nil {
		return preset{}, err
	}
	warp, err := noise.NewFBM(noise.NewScale(perlin, mathx.Vec(1, 0.5, 1)), octaves, frequency, 0.6, noise.DefaultLacunarity, noise.DefaultPersistence)
	if err != nil {
		return preset{}, err
	}
	ground := noise.SelectConstant(noise.NewAdd(gradient, warp), -1, 1, 0, 0.05)

	worley, err := noise.NewWorley(noise.D3, int32(seed)+7, 1, noise.EuclideanSquared, nil, noise.F1)
	if err != nil {
		return preset{}, err
	}
	pockets := noise.NewUniformScale(worley, 1.0/12)
	density := noise.NewSelect(pockets, noise.Constant(1), ground, noise.Constant(0.04), noise.Constant(0), nil)
	return preset{pipeline: Pipeline{Density: density}}, nil
}

// buildCells is flat Voronoi plateaus with Worley ridge lines along the
// cell borders.
func buildCells(seed int64, opts Options, _ int) (preset, error) {
	frequency, err := opts.Float(OptFrequency, 1.0/32)
	if err != nil {
		return preset{}, err
	}
	amplitude, err := opts.Float(OptHeightAmplitude, 32)
	if err != nil {
		return preset{}, err
	}
	base, err := opts.Float(OptHeightBase, 56)
	if err != nil {
		return preset{}, err
	}

	s := int32(seed)
	seeds := []noise.Field{noise.NewAbs(noise.NewWhite(s + 1)), noise.NewAbs(noise.NewWhite(s + 2))}
	plateaus, err := noise.NewVoronoi(noise.D2, seeds, noise.EuclideanSquared, noise.ReduceCellValue(noise.NewWhite(s+3)))
	if err != nil {
		return preset{}, err
	}
	ridges, err := noise.NewWorley(noise.D2, s, 2, noise.Euclidean, nil, noise.F2MinusF1)
	if err != nil {
		return preset{}, err
	}
	shape := noise.NewAdd(noise.MultiplyConstant(plateaus, 0.7), noise.MultiplyConstant(ridges, 0.3))
	height := noise.AddConstant(noise.MultiplyConstant(noise.NewUniformScale(shape, frequency), amplitude), base)
	return preset{pipeline: Pipeline{Height: height}}, nil
}

func newBasis(name string, seed int64) (noise.Field, error) {
	s := int32(seed)
	switch name {
	case BasisPerlin:
		return noise.NewPerlin(mathx.NewLegacyRandom(s))
	case BasisSimplex:
		return noise.NewSimplex(mathx.NewLegacyRandom(s))
	case BasisOpenSimplex:
		return noise.NewOpenSimplex(seed), nil
	case BasisHarmonic:
		return noise.NewHarmonic(2, 2, 3, seed)
	case BasisValue:
		return noise.NewValue(noise.NewWhite(s), noise.Cosine), nil
	default:
		return nil, fmt.Errorf("unknown basis %q: %w", name, ErrInvalidConfiguration)
	}
}

// climate is a low frequency Perlin field for biome selection, offset from
// the terrain seed by salt.
func climate(seed int64, salt int32) (noise.Field, error) {
	perlin, err := noise.NewPerlin(mathx.NewLegacyRandom(int32(seed) + salt))
	if err != nil {
		return nil, err
	}
	return noise.NewUniformScale(perlin, 1.0/512), nil
}
