// Package catch implements the cat catching arcade game.
// Cats fall from the sky; the player moves a bucket to catch them.
// Missed cats agitate the sky until a giant crying cat ends the session.
package catch

import (
	"github.com/vovakirdan/cat-catch/internal/config"
	"github.com/vovakirdan/cat-catch/internal/core"
	"github.com/vovakirdan/cat-catch/internal/registry"
)

// Registered game IDs.
const (
	GameID         = "catch"
	HardcoreGameID = "catch_hardcore"
)

// hardcoreCeiling is the agitation ceiling of the hardcore mode.
const hardcoreCeiling = 5

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config as loaded.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game adapts a Simulation to the fixed-tick registry contract.
type Game struct {
	hardcore bool
	sim      *Simulation
	rng      *LCG
	runtime  core.RuntimeConfig
	cfg      config.CatchConfig
	paused   bool
	ticks    int
	loadErr  error
}

// New creates a new catch game instance.
func New() *Game {
	return &Game{}
}

// NewHardcore creates a catch game with a short fuse.
func NewHardcore() *Game {
	return &Game{hardcore: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.hardcore {
		return HardcoreGameID
	}
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.hardcore {
		return "Cat Catch: Hardcore"
	}
	return "Cat Catch"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCatch(configPath)
	g.loadErr = err
	if err != nil {
		cfg = config.DefaultCatchConfig()
	}

	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if g.hardcore {
		config.ApplyPreset(&cfg, config.DifficultyHard)
		cfg.Escalation.Ceiling = hardcoreCeiling
	}
	g.cfg = cfg

	g.sim = NewSimulation(float64(runtime.ScreenW), float64(runtime.ScreenH), cfg.Escalation.Ceiling, cfg)
	g.rng = NewRNG(runtime.Seed)
	g.paused = false
	g.ticks = 0
}

// ConfigError returns the error from the last config load, if the custom file was rejected.
func (g *Game) ConfigError() error {
	return g.loadErr
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim.GameOver() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.sim.Update(g.rng, in, g.runtime.DeltaTime(), float64(g.runtime.ScreenW), float64(g.runtime.ScreenH))

	events := g.sim.Events()
	result := core.StepResult{State: g.State()}
	if len(events) > 0 {
		result.Events = make([]string, len(events))
		for i, e := range events {
			result.Events[i] = e.String()
		}
	}
	return result
}

// Resize keeps the session running at a new screen size.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.sim != nil {
		g.sim.Resize(float64(width), float64(height))
	}
}

// Simulation exposes the running session.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.GameOver(),
		Paused:   g.paused,
	}
}

// Register both modes with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(HardcoreGameID, func() registry.Game {
		return NewHardcore()
	})
}
