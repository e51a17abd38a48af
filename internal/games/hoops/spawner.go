package hoops

import "math"

// SpawnChoice is the outcome of the weighted spawn roll.
type SpawnChoice uint8

const (
	SpawnNone SpawnChoice = iota
	SpawnPowerup
	SpawnHazard
	SpawnObstacle
	SpawnBasketball
)

// String returns the choice name.
func (c SpawnChoice) String() string {
	switch c {
	case SpawnPowerup:
		return "powerup"
	case SpawnHazard:
		return "hazard"
	case SpawnObstacle:
		return "obstacle"
	case SpawnBasketball:
		return "basketball"
	default:
		return "none"
	}
}

// Choose maps a uniform draw in [0,1) to a spawn category by walking the
// cumulative chances in a fixed order. Draws landing in the gap right
// after the obstacle band spawn nothing.
func (c SpawnChances) Choose(r float64) SpawnChoice {
	cumulative := c.Powerup
	if r < cumulative {
		return SpawnPowerup
	}
	cumulative += c.Hazard
	if r < cumulative {
		return SpawnHazard
	}
	cumulative += c.Obstacle
	if r < cumulative {
		return SpawnObstacle
	}
	if r > cumulative+c.Gap {
		return SpawnBasketball
	}
	return SpawnNone
}

// SafeSpawnDistance is the free space required between the right edge of
// the field and the rightmost live entity. It shrinks with level.
func SafeSpawnDistance(level int) float64 {
	d := FieldWidth * (SpawnSpacing - float64(level-1)*SpawnSpacingPerLevel)
	return math.Max(d, FieldWidth*MinSpawnSpacing)
}

// MaxHazards returns the hazard population cap at level.
func MaxHazards(level int) int {
	return min(BaseMaxHazards+level/2, HazardCap)
}

// MaxObstacles returns the obstacle population cap at level.
func MaxObstacles(level int) int {
	return min(BaseMaxObstacles+level, ObstacleCap)
}

// rightmostX returns the largest X across all gameplay collections, or
// -Inf when the field is empty.
func (s *Simulation) rightmostX() float64 {
	x := math.Inf(-1)
	for _, list := range [][]Entity{s.Basketballs, s.Obstacles, s.Powerups, s.Hazards} {
		for i := range list {
			x = math.Max(x, list[i].X)
		}
	}
	return x
}

// spawn runs one spawn attempt and returns what was actually created.
func (s *Simulation) spawn() SpawnChoice {
	choice := s.Run.Chances.Choose(s.rng.Float64())
	if choice == SpawnNone {
		return SpawnNone
	}
	if FieldWidth-s.rightmostX() <= SafeSpawnDistance(s.Run.Level) {
		return SpawnNone
	}

	switch choice {
	case SpawnPowerup:
		if len(s.Powerups) >= MaxPowerups {
			return SpawnNone
		}
		y := between(s.rng, FieldHeight*0.4, GroundY-60)
		s.Powerups = append(s.Powerups, s.withSpeed(NewPowerup(FieldWidth+30, y, PowerupInvincibility)))
	case SpawnHazard:
		if len(s.Hazards) >= MaxHazards(s.Run.Level) {
			return SpawnNone
		}
		y := between(s.rng, 50, FieldHeight*0.5-HazardSize)
		s.Hazards = append(s.Hazards, s.withSpeed(NewHazard(FieldWidth+HazardSize, y)))
	case SpawnObstacle:
		if len(s.Obstacles) >= MaxObstacles(s.Run.Level) {
			return SpawnNone
		}
		h := between(s.rng, ObstacleMinH, ObstacleMaxH)
		typ := obstacleTypes[pick(s.rng, len(obstacleTypes))]
		s.Obstacles = append(s.Obstacles, s.withSpeed(NewObstacle(FieldWidth+ObstacleWidth, h, typ)))
	case SpawnBasketball:
		y := between(s.rng, FieldHeight*0.5, GroundY-BasketballSize-20)
		s.Basketballs = append(s.Basketballs, s.withSpeed(NewBasketball(FieldWidth+BasketballSize, y)))
	}
	return choice
}

func (s *Simulation) withSpeed(e Entity) Entity {
	e.Speed = s.Run.SpeedFor(e.Kind)
	return e
}
