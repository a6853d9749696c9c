package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so configuration files can use strings such
// as "30s". Numbers are read as nanoseconds.
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON accepts a duration string, a number of nanoseconds or null.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("duration: empty value")
	}
	if string(b) == "null" {
		*d = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("duration: decode string: %w", err)
		}
		return d.parse(s)
	}
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		*d = Duration(n)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*d = Duration(time.Duration(f))
		return nil
	}
	return fmt.Errorf("duration: invalid value %s", string(b))
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration: line %d: expected a scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*d = 0
		return nil
	case "!!int":
		n, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return fmt.Errorf("duration: line %d: %w", node.Line, err)
		}
		*d = Duration(n)
		return nil
	}
	return d.parse(node.Value)
}

func (d *Duration) parse(s string) error {
	if s == "" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration: parse %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config captures everything the worldgen command needs to generate a
// region.
type Config struct {
	Generator GeneratorConfig `json:"generator" yaml:"generator"`
	Chunk     ChunkConfig     `json:"chunk" yaml:"chunk"`
	Region    RegionConfig    `json:"region" yaml:"region"`
	Preview   PreviewConfig   `json:"preview" yaml:"preview"`
}

type GeneratorConfig struct {
	Seed         int64             `json:"seed" yaml:"seed"`
	Options      map[string]string `json:"options" yaml:"options"`           // preset, basis, block.solid, ...
	Workers      int               `json:"workers" yaml:"workers"`           // column workers per chunk, 0 = GOMAXPROCS*2
	ChunkTimeout Duration          `json:"chunkTimeout" yaml:"chunkTimeout"` // 0 disables the per chunk deadline
}

type ChunkConfig struct {
	Height int `json:"height" yaml:"height"`
}

type RegionConfig struct {
	Origin ChunkIndex `json:"origin" yaml:"origin"`
	Radius int        `json:"radius" yaml:"radius"` // chunks on each side of the origin
}

type ChunkIndex struct {
	X int `json:"x" yaml:"x"`
	Z int `json:"z" yaml:"z"`
}

type PreviewConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	OutputDir string `json:"outputDir" yaml:"outputDir"`
}

// MaxRegionRadius bounds region.radius; a radius r generates (2r+1)^2 chunks.
const MaxRegionRadius = 64

// Load reads configuration from a JSON or YAML file, chosen by extension,
// over the defaults. An empty path returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := Decode(data, isYAML(path), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg, keeping the values of fields data does
// not mention.
func Decode(data []byte, asYAML bool, cfg *Config) error {
	if asYAML {
		return yaml.Unmarshal(data, cfg)
	}
	return json.Unmarshal(data, cfg)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Seed:         1337,
			Options:      map[string]string{"preset": "dex"},
			Workers:      0,
			ChunkTimeout: Duration(30 * time.Second),
		},
		Chunk: ChunkConfig{
			Height: 128,
		},
		Region: RegionConfig{
			Origin: ChunkIndex{X: 0, Z: 0},
			Radius: 2,
		},
		Preview: PreviewConfig{
			Enabled:   false,
			OutputDir: "previews",
		},
	}
}

func (c *Config) Validate() error {
	if c.Chunk.Height <= 0 {
		return errors.New("chunk.height must be positive")
	}
	if c.Generator.Workers < 0 {
		return errors.New("generator.workers cannot be negative")
	}
	if c.Generator.ChunkTimeout < 0 {
		return errors.New("generator.chunkTimeout cannot be negative")
	}
	if c.Region.Radius < 0 || c.Region.Radius > MaxRegionRadius {
		return fmt.Errorf("region.radius must be between 0 and %d", MaxRegionRadius)
	}
	for key := range c.Generator.Options {
		if strings.TrimSpace(key) == "" {
			return errors.New("generator.options keys must not be empty")
		}
	}
	if c.Preview.Enabled && c.Preview.OutputDir == "" {
		return errors.New("preview.outputDir must be set when previews are enabled")
	}
	return nil
}
