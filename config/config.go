// Package config provides configuration loading and access for the
// simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all run parameters.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Run       RunConfig       `yaml:"run"`
	Engine    EngineConfig    `yaml:"engine"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// GridConfig holds board dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// RunConfig holds generation-loop parameters.
type RunConfig struct {
	Steps       int    `yaml:"steps"`        // generations to attempt (>= 0)
	FinalOnly   bool   `yaml:"final_only"`   // render only the last generation reached
	DetectCycle bool   `yaml:"detect_cycle"` // stop on repeated states instead of static/empty
	Seed        uint64 `yaml:"seed"`         // RNG seed (0 = time-based)
}

// EngineConfig holds transition evaluator parameters.
type EngineConfig struct {
	Workers int `yaml:"workers"` // step worker count (0 = GOMAXPROCS)
}

// TelemetryConfig holds telemetry output parameters.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"` // directory for CSV log and config snapshot (empty = disabled)
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// Validate reports the first invalid parameter, if any. A failing config
// is fatal before the simulation starts.
func (c *Config) Validate() error {
	if c.Grid.Rows <= 0 {
		return fmt.Errorf("config: rows must be > 0, got %d", c.Grid.Rows)
	}
	if c.Grid.Cols <= 0 {
		return fmt.Errorf("config: cols must be > 0, got %d", c.Grid.Cols)
	}
	if c.Run.Steps < 0 {
		return fmt.Errorf("config: steps must be >= 0, got %d", c.Run.Steps)
	}
	if c.Engine.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", c.Engine.Workers)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
