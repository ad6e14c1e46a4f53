package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with defaults failed: %v", err)
	}

	if cfg.Sim.InfluenceRadius != 12.0 {
		t.Errorf("expected influence_radius 12.0, got %g", cfg.Sim.InfluenceRadius)
	}
	if cfg.Seed.Count != 100 {
		t.Errorf("expected seed count 100, got %d", cfg.Seed.Count)
	}
	if cfg.Split.NeighborThreshold != 16 {
		t.Errorf("expected neighbor_threshold 16, got %d", cfg.Split.NeighborThreshold)
	}
	if !cfg.Split.Enabled {
		t.Error("expected splitting enabled by default")
	}
	if cfg.Seed.Wobble != "sine" {
		t.Errorf("expected sine wobble, got %q", cfg.Seed.Wobble)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	user := "sim:\n  attraction_gain: 0.5\nseed:\n  count: 8\n  radius: 40.0\n  wobble: none\n"
	if err := os.WriteFile(path, []byte(user), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Overridden fields
	if cfg.Sim.AttractionGain != 0.5 {
		t.Errorf("expected attraction_gain 0.5, got %g", cfg.Sim.AttractionGain)
	}
	if cfg.Seed.Count != 8 {
		t.Errorf("expected seed count 8, got %d", cfg.Seed.Count)
	}
	// Defaults still in place
	if cfg.Sim.PressureGain != 0.2 {
		t.Errorf("expected default pressure_gain 0.2, got %g", cfg.Sim.PressureGain)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"count too small", "seed:\n  count: 2\n", "seed.count"},
		{"zero radius", "seed:\n  radius: 0\n", "seed.radius"},
		{"bad wobble", "seed:\n  wobble: wave\n", "seed.wobble"},
		{"bad probability", "split:\n  probability: 1.5\n", "split.probability"},
		{"zero influence radius", "sim:\n  influence_radius: 0\n", "influence_radius"},
	}

	dir := t.TempDir()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestDerivedDT(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	want := 1.0 / 60.0
	if cfg.Derived.DT != want {
		t.Errorf("expected DT %g, got %g", want, cfg.Derived.DT)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config failed: %v", err)
	}
	if loaded.Sim.InfluenceRadius != cfg.Sim.InfluenceRadius {
		t.Errorf("influence_radius mismatch: got %g, want %g",
			loaded.Sim.InfluenceRadius, cfg.Sim.InfluenceRadius)
	}
}
