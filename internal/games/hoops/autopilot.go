package hoops

import "github.com/vovakirdan/hoop-runner/internal/core"

// Autopilot is a simple scripted player used by the headless simulator.
// It is deliberately imperfect: it only looks at the nearest threat.
type Autopilot struct {
	// JumpWindow is how many frames ahead of impact the pilot jumps.
	JumpWindow float64
	// HazardWindow is how many frames ahead a hazard blocks jumping.
	HazardWindow float64
}

// NewAutopilot returns a pilot tuned for the default jump arc.
func NewAutopilot() Autopilot {
	return Autopilot{
		JumpWindow:   14,
		HazardWindow: 30,
	}
}

// Decide returns the input for the next frame.
func (a Autopilot) Decide(s *Simulation) core.InputFrame {
	in := core.NewInputFrame()

	switch s.Run.Phase {
	case PhaseStart:
		in.Set(core.ActionConfirm)
	case PhasePlaying:
		if a.shouldJump(s) {
			in.Set(core.ActionJump)
		}
	}
	return in
}

func (a Autopilot) shouldJump(s *Simulation) bool {
	if !s.Player.OnGround {
		return false
	}

	front := s.Player.X + s.Player.W
	speed := s.Run.GameSpeed

	// A hazard passing overhead makes jumping more dangerous than waiting.
	for i := range s.Hazards {
		h := &s.Hazards[i]
		d := h.Hitbox().X - front
		if d > -s.Player.W-HazardHitboxW && d < speed*a.HazardWindow {
			return false
		}
	}

	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		d := o.X - front
		if d >= 0 && d <= speed*a.JumpWindow {
			return true
		}
	}
	return false
}
