package hoops

import "github.com/vovakirdan/hoop-runner/internal/core"

// Phase is the game state machine.
type Phase uint8

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// RunState is the global state of one run. Only the simulation loop
// mutates it.
type RunState struct {
	Difficulty

	Phase              Phase
	Score              int
	Invincible         bool
	InvincibilityTimer int
	Frame              int    // engine frame counter, advances in every phase
	Cause              string // what ended the run, e.g. "obstacle:cone"
}

// Simulation owns the world and advances it one fixed tick at a time.
// It is not safe for concurrent use; each session owns its own.
type Simulation struct {
	Run         RunState
	Player      Player
	Basketballs []Entity
	Obstacles   []Entity
	Hazards     []Entity
	Powerups    []Entity
	Popups      []ScorePopup
	Decor       Decor

	rng      Rand // gameplay spawns
	decorRng Rand // clouds and court features
	events   []core.Event
}

// NewSimulation creates a simulation in the start phase. decorRng may be
// nil, in which case decor draws from rng.
func NewSimulation(rng, decorRng Rand) *Simulation {
	if decorRng == nil {
		decorRng = rng
	}
	s := &Simulation{rng: rng, decorRng: decorRng}
	s.Reset()
	return s
}

// Reset restores every piece of run state to its defaults, clears all
// collections, seeds fresh decor and returns to the start phase.
func (s *Simulation) Reset() {
	s.Run = RunState{
		Difficulty: NewDifficulty(),
		Phase:      PhaseStart,
	}
	s.Player = NewPlayer()
	s.Basketballs = s.Basketballs[:0]
	s.Obstacles = s.Obstacles[:0]
	s.Hazards = s.Hazards[:0]
	s.Powerups = s.Powerups[:0]
	s.Popups = s.Popups[:0]
	s.Decor.seed(s.decorRng, s.Run.GameSpeed)
	s.events = nil
}

// Start begins a run. Only valid on the title screen.
func (s *Simulation) Start() bool {
	if s.Run.Phase != PhaseStart {
		return false
	}
	s.Run.Phase = PhasePlaying
	s.emit(core.EventStart, 0)
	return true
}

// Jump forwards a jump request to the player. Only valid while playing.
func (s *Simulation) Jump() bool {
	if s.Run.Phase != PhasePlaying {
		return false
	}
	grounded := s.Player.OnGround
	if !s.Player.Jump() {
		return false
	}
	if grounded {
		s.emit(core.EventJump, 0)
	} else {
		s.emit(core.EventDoubleJump, 0)
	}
	return true
}

// Restart resets the world after a game over and lands on the title screen.
func (s *Simulation) Restart() bool {
	if s.Run.Phase != PhaseGameOver {
		return false
	}
	s.Reset()
	s.emit(core.EventRestart, 0)
	return true
}

// Tick advances the world by one frame and returns the events raised since
// the previous tick, including those from input calls in between.
func (s *Simulation) Tick() []core.Event {
	s.Run.Frame++
	s.Decor.update()

	if s.Run.Phase != PhasePlaying {
		return s.flush()
	}

	s.Decor.maybeSpawn(s.decorRng, s.Run.GameSpeed)
	s.decayInvincibility()
	s.Player.Update()

	if s.Run.Frame%s.Run.SpawnInterval() == 0 {
		s.spawn()
		s.Run.Ramp()
	}

	s.Hazards = s.stepEntities(s.Hazards)
	s.Powerups = s.stepEntities(s.Powerups)
	s.Basketballs = s.stepEntities(s.Basketballs)
	s.Obstacles = s.stepEntities(s.Obstacles)

	if s.Run.Phase == PhasePlaying {
		s.updatePopups()
	}
	return s.flush()
}

func (s *Simulation) decayInvincibility() {
	if !s.Run.Invincible {
		return
	}
	s.Run.InvincibilityTimer--
	if s.Run.InvincibilityTimer <= 0 {
		s.Run.InvincibilityTimer = 0
		s.Run.Invincible = false
	}
}

// stepEntities moves, collides and culls one collection. Traversal is in
// reverse so removal does not disturb the indices still to be visited.
// A game over stops the traversal and freezes the remaining entities.
func (s *Simulation) stepEntities(items []Entity) []Entity {
	for i := len(items) - 1; i >= 0; i-- {
		if s.Run.Phase != PhasePlaying {
			break
		}
		e := &items[i]
		e.Speed = s.Run.SpeedFor(e.Kind)
		e.Update()

		if s.resolve(e) || e.OffScreen() {
			items = append(items[:i], items[i+1:]...)
		}
	}
	return items
}

// resolve handles a collision between e and the player, if any.
// Returns true when e should be removed.
func (s *Simulation) resolve(e *Entity) bool {
	if !e.Collides(&s.Player) {
		return false
	}

	switch e.Kind {
	case KindBasketball:
		s.award(BasketballPoints, e.X, e.Y)
		s.emit(core.EventCollect, BasketballPoints)
		return true

	case KindPowerup:
		s.activate(e.Powerup)
		s.emit(core.EventPowerup, int(e.Powerup))
		return true

	case KindHazard:
		if !s.Run.Invincible {
			s.gameOver(KindHazard.String())
		}
		return false

	case KindObstacle:
		if s.Run.Invincible {
			return false
		}
		if s.canStomp(e) {
			s.Player.Bounce()
			s.award(StompPoints, e.X+e.W/2, e.Y)
			s.emit(core.EventStomp, StompPoints)
			return true
		}
		s.gameOver(KindObstacle.String() + ":" + e.Obstacle.String())
		return false
	}
	return false
}

// canStomp checks the landing band: a falling player whose feet are within
// the top half of a stompable obstacle. Near frame boundaries a fast fall
// can carry the feet past the band in one step; that case is fatal.
func (s *Simulation) canStomp(e *Entity) bool {
	return e.Stompable &&
		s.Player.Falling() &&
		s.Player.Feet() <= e.Y+e.H*StompBand
}

func (s *Simulation) activate(typ PowerupType) {
	switch typ {
	case PowerupInvincibility:
		s.Run.Invincible = true
		s.Run.InvincibilityTimer = InvincibilityDuration
	}
}

// award adds points, shows a popup and applies any level-ups they unlock.
func (s *Simulation) award(points int, x, y float64) {
	s.Run.Score += points
	s.Popups = append(s.Popups, newScorePopup(x, y, points))

	for s.Run.CanLevelUp(s.Run.Score) {
		s.Run.LevelUp()
		s.Popups = append(s.Popups, newLevelUpPopup(s.Run.Level))
		s.emit(core.EventLevelUp, s.Run.Level)
	}
}

func (s *Simulation) gameOver(cause string) {
	s.Run.Phase = PhaseGameOver
	s.Run.Cause = cause
	s.emit(core.EventGameOver, s.Run.Score)
}

func (s *Simulation) updatePopups() {
	for i := len(s.Popups) - 1; i >= 0; i-- {
		if !s.Popups[i].Update() {
			s.Popups = append(s.Popups[:i], s.Popups[i+1:]...)
		}
	}
}

func (s *Simulation) emit(kind core.EventKind, value int) {
	s.events = append(s.events, core.Event{Kind: kind, Value: value})
}

func (s *Simulation) flush() []core.Event {
	events := s.events
	s.events = nil
	return events
}
