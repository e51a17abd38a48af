package hoops

import "github.com/vovakirdan/hoop-runner/internal/core"

// Kind tags the gameplay entity variant.
type Kind uint8

const (
	KindBasketball Kind = iota
	KindObstacle
	KindHazard
	KindPowerup
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBasketball:
		return "basketball"
	case KindObstacle:
		return "obstacle"
	case KindHazard:
		return "hazard"
	case KindPowerup:
		return "powerup"
	default:
		return "unknown"
	}
}

// ObstacleType is the kind of ground obstacle.
type ObstacleType uint8

const (
	ObstacleCone ObstacleType = iota
	ObstacleBottle
	ObstacleRack
	ObstacleHand
)

var obstacleTypes = []ObstacleType{ObstacleCone, ObstacleBottle, ObstacleRack, ObstacleHand}

// String returns the obstacle type name.
func (t ObstacleType) String() string {
	switch t {
	case ObstacleCone:
		return "cone"
	case ObstacleBottle:
		return "bottle"
	case ObstacleRack:
		return "rack"
	case ObstacleHand:
		return "hand"
	default:
		return "unknown"
	}
}

// Stompable reports whether the player can land on this obstacle.
// A hand reaches up and grabs, so it is always fatal.
func (t ObstacleType) Stompable() bool {
	return t != ObstacleHand
}

// PowerupType is the effect a powerup grants.
type PowerupType uint8

const (
	PowerupInvincibility PowerupType = iota
)

// String returns the powerup type name.
func (t PowerupType) String() string {
	switch t {
	case PowerupInvincibility:
		return "invincibility"
	default:
		return "unknown"
	}
}

// Entity is a scrolling gameplay object. The shared fields mean different
// things per kind:
//
//   - Basketball, Powerup: (X, Y) is the center, W = H = diameter.
//   - Obstacle: (X, Y) is the top-left corner, bottom rests on the ground.
//   - Hazard: (X, Y) is the top-center anchor, W = H = visual size; the
//     hitbox is wider than tall.
type Entity struct {
	Kind  Kind
	X, Y  float64
	W, H  float64
	Speed float64

	Obstacle  ObstacleType
	Stompable bool
	Powerup   PowerupType
}

// NewBasketball creates a basketball centered at (x, y).
func NewBasketball(x, y float64) Entity {
	return Entity{Kind: KindBasketball, X: x, Y: y, W: BasketballSize, H: BasketballSize}
}

// NewObstacle creates an obstacle standing on the ground at x.
func NewObstacle(x, height float64, typ ObstacleType) Entity {
	return Entity{
		Kind:      KindObstacle,
		X:         x,
		Y:         GroundY - height,
		W:         ObstacleWidth,
		H:         height,
		Obstacle:  typ,
		Stompable: typ.Stompable(),
	}
}

// NewHazard creates a flying hazard anchored at (x, y).
func NewHazard(x, y float64) Entity {
	return Entity{Kind: KindHazard, X: x, Y: y, W: HazardSize, H: HazardSize}
}

// NewPowerup creates a powerup centered at (x, y).
func NewPowerup(x, y float64, typ PowerupType) Entity {
	return Entity{Kind: KindPowerup, X: x, Y: y, W: PowerupSize, H: PowerupSize, Powerup: typ}
}

// Update moves the entity left by its current speed.
func (e *Entity) Update() {
	e.X -= e.Speed
}

// Radius returns the collision radius of circular kinds.
func (e *Entity) Radius() float64 {
	return e.W / 2
}

// Hitbox returns the AABB used for obstacle and hazard collisions.
func (e *Entity) Hitbox() core.Box {
	if e.Kind == KindHazard {
		return core.NewBox(e.X-HazardHitboxW/2, e.Y, HazardHitboxW, HazardHitboxH)
	}
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Collides tests the entity against the player using the shape appropriate
// to its kind.
func (e *Entity) Collides(p *Player) bool {
	switch e.Kind {
	case KindBasketball, KindPowerup:
		return p.Box().IntersectsCircle(e.X, e.Y, e.Radius())
	case KindObstacle, KindHazard:
		return p.CollidesWithRect(e.Hitbox())
	default:
		return false
	}
}

// OffScreen reports whether the entity has fully left the field on the left.
func (e *Entity) OffScreen() bool {
	return e.X < -e.W
}
