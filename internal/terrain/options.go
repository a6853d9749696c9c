package terrain

import (
	"fmt"
	"strconv"
	"strings"

	"worldgen/internal/noise"
	"worldgen/internal/world"
)

// Option keys understood by Initialize. Unknown keys are ignored.
const (
	OptPreset           = "preset"
	OptBasis            = "basis"
	OptSolidBlock       = "block.solid"
	OptSolidMetadata    = "block.metadata"
	OptBiome            = "biome"
	OptDensityThreshold = "density.threshold"
	OptHeightBase       = "height.base"
	OptHeightAmplitude  = "height.amplitude"
	OptFrequency        = "frequency"
	OptOctaves          = "octaves"
)

// ErrInvalidConfiguration is the noise package sentinel, so errors from
// option parsing and from field construction match the same target.
var ErrInvalidConfiguration = noise.ErrInvalidConfiguration

// Options are the opaque level options passed to Initialize.
type Options map[string]string

func (o Options) lookup(key string) (string, bool) {
	v, ok := o[key]
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (o Options) String(key, def string) string {
	if v, ok := o.lookup(key); ok {
		return strings.ToLower(v)
	}
	return def
}

func (o Options) Int(key string, def int) (int, error) {
	v, ok := o.lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, optionError(key, v, err)
	}
	return n, nil
}

func (o Options) Float(key string, def float64) (float64, error) {
	v, ok := o.lookup(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, optionError(key, v, err)
	}
	return f, nil
}

// materials resolves the block and biome options shared by every preset.
func (o Options) materials() (materials, error) {
	m := materials{block: 1, biome: world.ExtremeHills}

	if v, ok := o.lookup(OptSolidBlock); ok {
		id, err := strconv.ParseUint(v, 10, 16)
		if err != nil || id == uint64(world.AirID) {
			return m, optionError(OptSolidBlock, v, err)
		}
		m.block = uint16(id)
	}
	if v, ok := o.lookup(OptSolidMetadata); ok {
		meta, err := strconv.ParseUint(v, 10, 8)
		if err != nil || meta > 15 {
			return m, optionError(OptSolidMetadata, v, err)
		}
		m.metadata = uint8(meta)
	}
	if v, ok := o.lookup(OptBiome); ok {
		b, err := parseBiome(v)
		if err != nil {
			return m, optionError(OptBiome, v, err)
		}
		m.biome = b
	}
	return m, nil
}

func parseBiome(v string) (world.Biome, error) {
	if id, err := strconv.ParseUint(v, 10, 8); err == nil {
		return world.Biome(id), nil
	}
	return world.ParseBiome(strings.ToLower(v))
}

func optionError(key, value string, cause error) error {
	if cause != nil {
		return fmt.Errorf("option %s=%q: %v: %w", key, value, cause, ErrInvalidConfiguration)
	}
	return fmt.Errorf("option %s=%q: %w", key, value, ErrInvalidConfiguration)
}

type materials struct {
	block    uint16
	metadata uint8
	biome    world.Biome
}
