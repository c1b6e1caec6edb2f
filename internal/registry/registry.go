// Package registry is the seam between the platform and game logic. Games
// register a factory in init(); the platform discovers and instantiates
// them without a hardcoded dependency.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ddrozdov/twocars/internal/core"
)

// Game is the interface the platform drives. Implementations contain pure
// simulation logic; input mapping, timing and terminal output belong to the
// platform.
type Game interface {
	// ID returns a unique identifier, used for CLI commands and score
	// storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or fully resets the game. Called once at start;
	// the RuntimeConfig provides terminal dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick, consuming the input
	// accumulated since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current platform-visible state.
	State() core.GameState
}

// Info contains metadata about a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry. Typically called from a
// game package's init(). Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
