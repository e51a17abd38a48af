// Package audio plays short synthesized sound cues for gameplay events.
// Sounds are generated on the fly with beep; there are no asset files.
package audio

import "github.com/vovakirdan/hoop-runner/internal/core"

// Cue is a named sound effect.
type Cue int

const (
	CueJump Cue = iota
	CueDoubleJump
	CueCollect
	CueStomp
	CuePowerup
	CueLevelUp
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueDoubleJump:
		return "double_jump"
	case CueCollect:
		return "collect"
	case CueStomp:
		return "stomp"
	case CuePowerup:
		return "powerup"
	case CueLevelUp:
		return "level_up"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CueFor maps a gameplay event to its sound. Events without a sound
// (start, restart) return false.
func CueFor(kind core.EventKind) (Cue, bool) {
	switch kind {
	case core.EventJump:
		return CueJump, true
	case core.EventDoubleJump:
		return CueDoubleJump, true
	case core.EventCollect:
		return CueCollect, true
	case core.EventStomp:
		return CueStomp, true
	case core.EventPowerup:
		return CuePowerup, true
	case core.EventLevelUp:
		return CueLevelUp, true
	case core.EventGameOver:
		return CueGameOver, true
	default:
		return 0, false
	}
}
