// Package registry maps game IDs to factories so the frontends (local
// terminal, SSH sessions, headless simulator) can build a fresh game per
// session without importing the game packages directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/hoop-runner/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("unknown game")

// Game is the contract between a simulation and the platform.
// Games own no terminal, clock or network; the platform maps keys to
// actions, drives Step at a fixed rate and presents the Screen.
type Game interface {
	// ID returns a stable identifier used on the command line.
	ID() string

	// Title returns a display name.
	Title() string

	// Reset builds a fresh run. Runs with the same Seed are reproducible.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State returns the score/level/phase summary.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, un-reset game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory. Called from init; a duplicate ID is a
// programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id, title := range titles {
		result = append(result, GameInfo{ID: id, Title: title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// NewRun creates the game registered under id and resets it with cfg.
func NewRun(id string, cfg core.RuntimeConfig) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	g.Reset(cfg)
	return g, nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
