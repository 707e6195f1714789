// Package registry maps game IDs to factories. Games register themselves
// in init(), so the CLI and the SSH server only need a blank import.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-mappy/internal/core"
)

// Game is the interface the terminal front-end drives. Implementations are
// pure simulations: no Bubble Tea, no audio, no I/O besides an optional
// core.Store attached through core.Persistent.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "mappy").
	// Used for CLI commands, logger prefixes and screenshot names.
	ID() string

	// Title returns a human-readable name for display (e.g., "Mappy").
	Title() string

	// Reset initializes the game state and seeds its RNG from cfg.
	// Called once before the first Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick. The result carries the
	// state plus the sound cues and music flag for the audio player.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer,
	// scaled to whatever size the buffer has.
	Render(dst *core.Screen)

	// State returns the current game state (score, round, lives, scene).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
