// Package config loads run settings from YAML or JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/maze"
)

// World holds the generation parameters.
type World struct {
	Width           int     `yaml:"width" json:"width"`
	Height          int     `yaml:"height" json:"height"`
	WallProbability float64 `yaml:"wall_probability" json:"wall_probability"`
	CostProbability float64 `yaml:"cost_probability" json:"cost_probability"`
	ExtraCost       float64 `yaml:"extra_cost" json:"extra_cost"`
}

// Log selects the slog level and handler.
type Log struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Config is the full set of CLI settings.
type Config struct {
	World   World         `yaml:"world" json:"world"`
	Seed    int64         `yaml:"seed" json:"seed"` // 0 derives a seed from the clock
	Tick    time.Duration `yaml:"tick" json:"tick"`
	Workers int           `yaml:"workers" json:"workers"` // 0 uses every CPU
	Log     Log           `yaml:"log" json:"log"`
}

func Default() Config {
	opts := maze.DefaultGenerateOptions()
	return Config{
		World: World{
			Width:           opts.Width,
			Height:          opts.Height,
			WallProbability: opts.WallProbability,
			CostProbability: opts.CostProbability,
			ExtraCost:       opts.ExtraCost,
		},
		Tick: 16 * time.Millisecond,
		Log:  Log{Level: "info", Format: "text"},
	}
}

// GenerateOptions converts w for maze.Generate.
func (w World) GenerateOptions() maze.GenerateOptions {
	return maze.GenerateOptions{
		Width:           w.Width,
		Height:          w.Height,
		WallProbability: w.WallProbability,
		CostProbability: w.CostProbability,
		ExtraCost:       w.ExtraCost,
	}
}

func (c Config) Validate() error {
	var errs []error
	if err := c.World.GenerateOptions().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("world: %w", err))
	}
	if c.Tick < 0 {
		errs = append(errs, fmt.Errorf("tick %v is negative", c.Tick))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d is negative", c.Workers))
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format %q is not text or json", c.Log.Format))
	}
	return errors.Join(errs...)
}

// LoadFromPath reads a config file (YAML or JSON) on top of Default.
// Format is detected by extension (.yaml/.yml → YAML, .json → JSON) or by content.
func LoadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses data on top of Default. ext is a format hint; empty = detect from content.
func Load(data []byte, ext string) (Config, error) {
	cfg := Default()
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" && strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		ext = ".json"
	}

	if ext == ".json" {
		var raw jsonConfig
		raw.fill(cfg)
		if err := json.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config json: %w", err)
		}
		cfg, err := raw.config()
		if err != nil {
			return Config{}, fmt.Errorf("parse config json: %w", err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config yaml: %w", err)
	}
	return cfg, nil
}

// jsonConfig carries the tick as a duration string, as YAML does.
type jsonConfig struct {
	World   World  `json:"world"`
	Seed    int64  `json:"seed"`
	Tick    string `json:"tick"`
	Workers int    `json:"workers"`
	Log     Log    `json:"log"`
}

func (j *jsonConfig) fill(c Config) {
	j.World, j.Seed, j.Tick, j.Workers, j.Log = c.World, c.Seed, c.Tick.String(), c.Workers, c.Log
}

func (j jsonConfig) config() (Config, error) {
	tick, err := time.ParseDuration(j.Tick)
	if err != nil {
		return Config{}, fmt.Errorf("tick: %w", err)
	}
	return Config{World: j.World, Seed: j.Seed, Tick: tick, Workers: j.Workers, Log: j.Log}, nil
}
