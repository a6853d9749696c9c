package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestValidateDefaultConfig(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration should be valid: %v", err)
	}
}

func TestValidateDetectsInvalidConfigurations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name: "non positive chunk height",
			mutate: func(cfg *Config) {
				cfg.Chunk.Height = 0
			},
			wantErr: "chunk.height must be positive",
		},
		{
			name: "negative workers",
			mutate: func(cfg *Config) {
				cfg.Generator.Workers = -1
			},
			wantErr: "generator.workers cannot be negative",
		},
		{
			name: "negative chunk timeout",
			mutate: func(cfg *Config) {
				cfg.Generator.ChunkTimeout = Duration(-time.Second)
			},
			wantErr: "generator.chunkTimeout cannot be negative",
		},
		{
			name: "negative radius",
			mutate: func(cfg *Config) {
				cfg.Region.Radius = -1
			},
			wantErr: "region.radius must be between 0 and 64",
		},
		{
			name: "oversized radius",
			mutate: func(cfg *Config) {
				cfg.Region.Radius = MaxRegionRadius + 1
			},
			wantErr: "region.radius must be between 0 and 64",
		},
		{
			name: "blank option key",
			mutate: func(cfg *Config) {
				cfg.Generator.Options[" "] = "x"
			},
			wantErr: "generator.options keys must not be empty",
		},
		{
			name: "preview without directory",
			mutate: func(cfg *Config) {
				cfg.Preview.Enabled = true
				cfg.Preview.OutputDir = ""
			},
			wantErr: "preview.outputDir must be set when previews are enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected an error, got nil")
			}
			if err.Error() != tt.wantErr {
				t.Fatalf("unexpected error: got %q want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}
	if want := Default(); !reflect.DeepEqual(cfg, want) {
		t.Fatalf("default configuration mismatch:\nwant: %#v\n got: %#v", want, cfg)
	}
}

func TestLoadReadsJSONAndYAML(t *testing.T) {
	cfg := Default()
	cfg.Generator.Seed = -42
	cfg.Generator.Options["basis"] = "simplex"
	cfg.Generator.ChunkTimeout = Duration(1500 * time.Millisecond)
	cfg.Region = RegionConfig{Origin: ChunkIndex{X: -3, Z: 8}, Radius: 1}
	cfg.Preview = PreviewConfig{Enabled: true, OutputDir: "out"}

	jsonData, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}

	tests := []struct {
		file string
		data []byte
	}{
		{"config.json", jsonData},
		{"config.yaml", yamlData},
		{"config.YML", yamlData},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, tt.data, 0o600); err != nil {
				t.Fatalf("write config: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("load config: %v", err)
			}
			if !reflect.DeepEqual(got, cfg) {
				t.Fatalf("loaded configuration mismatch:\nwant: %#v\n got: %#v", cfg, got)
			}
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "generator:\n  seed: 9\n  options:\n    preset: hills\n  chunkTimeout: 2s\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Generator.Seed != 9 || cfg.Generator.Options["preset"] != "hills" {
		t.Fatalf("generator = %#v", cfg.Generator)
	}
	if cfg.Generator.ChunkTimeout.Duration() != 2*time.Second {
		t.Fatalf("chunkTimeout = %v", cfg.Generator.ChunkTimeout.Duration())
	}
	if cfg.Chunk.Height != Default().Chunk.Height || cfg.Region.Radius != Default().Region.Radius {
		t.Fatalf("defaults lost: %#v", cfg)
	}
}

func TestLoadInvalidConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Chunk.Height = 0

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err = Load(path)
	if err == nil {
		t.Fatalf("expected load to fail")
	}
	if !strings.Contains(err.Error(), "validate config: chunk.height must be positive") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDurationDecoding(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		yaml    string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", json: `"250ms"`, yaml: `250ms`, want: 250 * time.Millisecond},
		{name: "nanoseconds", json: `1000`, yaml: `1000`, want: time.Microsecond},
		{name: "null", json: `null`, yaml: `null`, want: 0},
		{name: "empty string", json: `""`, yaml: `""`, want: 0},
		{name: "garbage", json: `"soon"`, yaml: `soon`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromJSON Duration
			err := json.Unmarshal([]byte(tt.json), &fromJSON)
			if tt.wantErr != (err != nil) {
				t.Fatalf("json %s: err = %v", tt.json, err)
			}

			var wrapper struct {
				D Duration `yaml:"d"`
			}
			err = yaml.Unmarshal([]byte("d: "+tt.yaml), &wrapper)
			if tt.wantErr != (err != nil) {
				t.Fatalf("yaml %s: err = %v", tt.yaml, err)
			}
			if tt.wantErr {
				return
			}
			if fromJSON.Duration() != tt.want || wrapper.D.Duration() != tt.want {
				t.Fatalf("decoded json %v yaml %v, want %v", fromJSON.Duration(), wrapper.D.Duration(), tt.want)
			}
		})
	}
}
