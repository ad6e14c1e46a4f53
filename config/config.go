// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sim       SimConfig       `yaml:"sim"`
	Seed      SeedConfig      `yaml:"seed"`
	Split     SplitConfig     `yaml:"split"`
	Effects   EffectsConfig   `yaml:"effects"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimConfig holds the core force-integration parameters.
type SimConfig struct {
	InfluenceRadius float64 `yaml:"influence_radius"` // Repulsion range for non-linked particles
	ParticleRadius  float64 `yaml:"particle_radius"`  // Draw radius (no physical effect)
	AttractionGain  float64 `yaml:"attraction_gain"`  // Fraction of link-midpoint pull applied per step
	AttractionLimit float64 `yaml:"attraction_limit"` // Max attraction magnitude (0 = unlimited)
	PressureGain    float64 `yaml:"pressure_gain"`    // Fraction of repulsion applied per step
	PressureScale   float64 `yaml:"pressure_scale"`   // Repulsion divisor k in (influence_radius * k)
	PressureLimit   float64 `yaml:"pressure_limit"`   // Max pressure magnitude (0 = unlimited)
	GridCellSize    float64 `yaml:"grid_cell_size"`   // Neighbor grid cell size (0 = influence radius)
}

// SeedConfig holds initial ring seeding parameters.
type SeedConfig struct {
	Count           int     `yaml:"count"`            // Initial particle count (>= 3)
	Radius          float64 `yaml:"radius"`           // Seed circle radius (> 0)
	Wobble          string  `yaml:"wobble"`           // Radial wobble mode: sine | noise | none
	WobbleAmplitude float64 `yaml:"wobble_amplitude"` // Wobble offset amplitude
	WobbleFrequency float64 `yaml:"wobble_frequency"` // Wobble cycles around the circle
}

// SplitConfig holds edge-splitting parameters.
type SplitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	NeighborThreshold int     `yaml:"neighbor_threshold"` // Split when n(p0)+n(p1) is below this
	Probability       float64 `yaml:"probability"`        // Per qualifying edge per step
}

// EffectsConfig holds split-burst spark parameters.
type EffectsConfig struct {
	Enabled   bool `yaml:"enabled"`
	MaxSparks int  `yaml:"max_sparks"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds of sim time per stats window
	PerfWindow  int     `yaml:"perf_window"`  // Ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	DT        float64 // Seconds per tick, from target FPS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the core cannot run with.
func (c *Config) validate() error {
	if c.Seed.Count < 3 {
		return fmt.Errorf("config: seed.count must be >= 3, got %d", c.Seed.Count)
	}
	if c.Seed.Radius <= 0 {
		return fmt.Errorf("config: seed.radius must be > 0, got %g", c.Seed.Radius)
	}
	if c.Sim.InfluenceRadius <= 0 {
		return fmt.Errorf("config: sim.influence_radius must be > 0, got %g", c.Sim.InfluenceRadius)
	}
	if c.Sim.PressureScale <= 0 {
		return fmt.Errorf("config: sim.pressure_scale must be > 0, got %g", c.Sim.PressureScale)
	}
	switch c.Seed.Wobble {
	case "sine", "noise", "none":
	default:
		return fmt.Errorf("config: seed.wobble must be sine, noise or none, got %q", c.Seed.Wobble)
	}
	if c.Split.Probability < 0 || c.Split.Probability > 1 {
		return fmt.Errorf("config: split.probability must be in [0,1], got %g", c.Split.Probability)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.DT = 1.0 / float64(fps)
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
