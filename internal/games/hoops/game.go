// Package hoops implements Hoop Runner, a side-scrolling basketball runner.
// The player jumps and double-jumps to collect basketballs, stomps or dodges
// obstacles, avoids flying hazards and grabs powerups while the court speeds
// up level by level.
package hoops

import (
	"github.com/vovakirdan/hoop-runner/internal/core"
	"github.com/vovakirdan/hoop-runner/internal/registry"
)

// GameID is the registry identifier for Hoop Runner.
const GameID = "hoops"

// Game adapts a Simulation to the platform's registry.Game interface.
type Game struct {
	sim     *Simulation
	runtime core.RuntimeConfig
}

// New creates a new Hoop Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hoop Runner"
}

// Reset builds a fresh simulation seeded from the runtime config.
// Decor gets its own stream so cosmetic rolls never shift gameplay spawns.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.sim = NewSimulation(NewRand(runtime.Seed), NewRand(runtime.Seed^0x5eed))
}

// Simulation exposes the underlying world for the autopilot and tests.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Step applies this frame's input and advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.applyInput(in)
	events := g.sim.Tick()
	return core.StepResult{State: g.State(), Events: events}
}

// applyInput routes actions to the one input channel live in each phase.
func (g *Game) applyInput(in core.InputFrame) {
	switch g.sim.Run.Phase {
	case PhaseStart:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.sim.Start()
		}
	case PhasePlaying:
		if in.Has(core.ActionJump) {
			g.sim.Jump()
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.sim.Restart()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Run.Score,
		Level:    g.sim.Run.Level,
		Started:  g.sim.Run.Phase != PhaseStart,
		GameOver: g.sim.Run.Phase == PhaseGameOver,
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
