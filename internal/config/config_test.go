package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/pdrpinto/maze"
)

func TestDefault_MatchesGenerator(t *testing.T) {
	cfg := Default()
	if diff := cmp.Diff(maze.DefaultGenerateOptions(), cfg.World.GenerateOptions()); diff != "" {
		t.Errorf("default world mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate(Default()) = %v", err)
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	data := []byte(`
world:
  width: 30
  extra_cost: 9
seed: 1234
tick: 50ms
log:
  level: debug
`)
	cfg, err := Load(data, ".yml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.World.Width = 30
	want.World.ExtraCost = 9
	want.Seed = 1234
	want.Tick = 50 * time.Millisecond
	want.Log.Level = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_JSONDetectedFromContent(t *testing.T) {
	data := []byte(`{"world": {"height": 12}, "tick": "1s", "workers": 3}`)
	cfg, err := Load(data, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.World.Height = 12
	want.Tick = time.Second
	want.Workers = 3
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]struct {
		data string
		ext  string
	}{
		"bad yaml":      {"world: [", ".yaml"},
		"bad json":      {"{", ".json"},
		"bad json tick": {`{"tick": "soon"}`, ".json"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load([]byte(tt.data), tt.ext); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	if err := os.WriteFile(path, []byte("workers: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}

	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.World.Width = 2
	cfg.Tick = -time.Second
	cfg.Log.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}
