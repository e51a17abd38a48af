package hoops

import "github.com/vovakirdan/hoop-runner/internal/core"

// scriptRand replays a fixed sequence of draws, cycling when exhausted.
type scriptRand struct {
	vals []float64
	i    int
}

func newScriptRand(vals ...float64) *scriptRand {
	return &scriptRand{vals: vals}
}

func (r *scriptRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// newPlaying returns a simulation already in the playing phase with quiet
// decor and no pending events.
func newPlaying() *Simulation {
	s := NewSimulation(newScriptRand(0.99), newScriptRand(0.99))
	s.Start()
	s.flush()
	return s
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
