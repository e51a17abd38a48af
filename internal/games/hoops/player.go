package hoops

import "github.com/vovakirdan/hoop-runner/internal/core"

// Player is the runner. X never changes; Y integrates under gravity and is
// clamped to the ground line.
type Player struct {
	X, Y          float64
	W, H          float64
	VelocityY     float64
	OnGround      bool
	CanDoubleJump bool
}

// NewPlayer returns a player standing on the ground.
func NewPlayer() Player {
	return Player{
		X:        PlayerX,
		Y:        GroundY - PlayerHeight,
		W:        PlayerWidth,
		H:        PlayerHeight,
		OnGround: true,
	}
}

// Update applies gravity, integrates position and handles landing.
func (p *Player) Update() {
	p.VelocityY += Gravity
	p.Y += p.VelocityY

	floor := GroundY - p.H
	if p.Y >= floor {
		p.Y = floor
		p.VelocityY = 0
		p.OnGround = true
		p.CanDoubleJump = false
	} else {
		p.OnGround = false
	}
}

// Jump performs a ground jump or, once airborne, a single double jump.
// Returns false when neither is available.
func (p *Player) Jump() bool {
	switch {
	case p.OnGround:
		p.VelocityY = JumpLift
		p.OnGround = false
		p.CanDoubleJump = true
		return true
	case p.CanDoubleJump:
		p.VelocityY = JumpLift
		p.CanDoubleJump = false
		return true
	default:
		return false
	}
}

// Bounce launches the player off a stomped obstacle and restores the
// double jump.
func (p *Player) Bounce() {
	p.VelocityY = JumpLift * StompBounceFactor
	p.OnGround = false
	p.CanDoubleJump = true
}

// Falling reports whether the player is moving downward.
func (p *Player) Falling() bool {
	return p.VelocityY > 0
}

// Feet returns the y-coordinate of the bottom of the player.
func (p *Player) Feet() float64 {
	return p.Y + p.H
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// CollidesWithRect is an exact AABB overlap test against any box.
func (p *Player) CollidesWithRect(b core.Box) bool {
	return p.Box().Intersects(b)
}
