// Package game hosts the ring simulation: it owns the particle system, the
// camera, the spark layer and telemetry, and drives them from the main loop.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/filament/camera"
	"github.com/pthm-cable/filament/config"
	"github.com/pthm-cable/filament/effects"
	"github.com/pthm-cable/filament/ring"
	"github.com/pthm-cable/filament/telemetry"
	"github.com/pthm-cable/filament/ui"
)

// Options configures game creation.
type Options struct {
	Seed           int64 // RNG seed for the ring and spark layer
	Headless       bool  // Skip all rendering state
	LogStats       bool  // Emit window stats via slog
	StatsWindowSec float64
	OutputDir      string // CSV/chart output directory (empty = disabled)
	StepsPerUpdate int    // Simulation ticks per update call
}

// Game holds the complete simulation state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	ring   *ring.System
	sparks *effects.System
	camera *camera.Camera
	hud    *ui.HUD

	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager

	tick           int32
	paused         bool
	stepsPerUpdate int
	logStats       bool
	rngSeed        int64
	headless       bool

	// View state
	showVectors bool
	followRing  bool

	screenWidth, screenHeight float32
}

// NewGame creates a game from the global config and the given options.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	params, err := paramsFromConfig(cfg, opts.Seed)
	if err != nil {
		return nil, err
	}

	sys := ring.New(params, rng)
	if err := sys.Spawn(cfg.Seed.Count, float32(cfg.Seed.Radius)); err != nil {
		return nil, fmt.Errorf("seeding ring: %w", err)
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		cfg:            cfg,
		rng:            rng,
		ring:           sys,
		collector:      telemetry.NewCollector(statsWindow, cfg.Derived.DT),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		stepsPerUpdate: opts.StepsPerUpdate,
		logStats:       opts.LogStats,
		rngSeed:        opts.Seed,
		headless:       opts.Headless,
		followRing:     true,
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
	}

	if cfg.Effects.Enabled {
		g.sparks = effects.NewSystem(rng, cfg.Effects.MaxSparks)
	}

	if !opts.Headless {
		g.camera = camera.New(g.screenWidth, g.screenHeight)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	slog.Info("ring seeded",
		"particles", sys.Count(),
		"seed", opts.Seed,
		"stats_window", statsWindow,
	)

	return g, nil
}

// paramsFromConfig maps the loaded config onto ring tuning.
func paramsFromConfig(cfg *config.Config, seed int64) (ring.Params, error) {
	var wobble ring.WobbleFunc
	switch cfg.Seed.Wobble {
	case "sine":
		wobble = ring.SineWobble(float32(cfg.Seed.WobbleAmplitude), float32(cfg.Seed.WobbleFrequency))
	case "noise":
		wobble = ring.NoiseWobble(float32(cfg.Seed.WobbleAmplitude), seed)
	case "none":
		wobble = nil
	default:
		return ring.Params{}, fmt.Errorf("%w: wobble mode %q", ring.ErrInvalidArgument, cfg.Seed.Wobble)
	}

	return ring.Params{
		InfluenceRadius:   float32(cfg.Sim.InfluenceRadius),
		ParticleRadius:    float32(cfg.Sim.ParticleRadius),
		AttractionGain:    float32(cfg.Sim.AttractionGain),
		AttractionLimit:   float32(cfg.Sim.AttractionLimit),
		PressureGain:      float32(cfg.Sim.PressureGain),
		PressureScale:     float32(cfg.Sim.PressureScale),
		PressureLimit:     float32(cfg.Sim.PressureLimit),
		SplitEnabled:      cfg.Split.Enabled,
		NeighborThreshold: cfg.Split.NeighborThreshold,
		SplitProbability:  float32(cfg.Split.Probability),
		GridCellSize:      float32(cfg.Sim.GridCellSize),
		Wobble:            wobble,
	}, nil
}

// Ring exposes the particle system for tools and tests.
func (g *Game) Ring() *ring.System {
	return g.ring
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload flushes telemetry output and logs a final summary.
func (g *Game) Unload() {
	g.logWorldState()

	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
