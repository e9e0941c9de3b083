// Package registry keeps the game modes the platform can launch.
// Modes register themselves in init() functions so the CLI, the TUI menu
// and the SSH server can instantiate them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/cat-catch/internal/core"
)

// Game is the fixed-tick contract between a game mode and the platform.
// Implementations hold pure logic; the platform owns timing, input mapping and output.
type Game interface {
	// ID returns the mode identifier used by the CLI and the leaderboard (e.g. "catch").
	ID() string

	// Title returns the human-readable name shown in menus.
	Title() string

	// Reset starts a fresh session for the given screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by one tick of 1/TickRate seconds.
	Step(in core.InputFrame) core.StepResult

	// Render draws the session into a pre-sized screen buffer.
	Render(dst *core.Screen)

	// State returns score, pause and game over flags.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a mode.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a mode factory.
// Panics if the ID is empty or already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty game id")
	}
	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(), nil
}

// Exists reports whether a mode is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
