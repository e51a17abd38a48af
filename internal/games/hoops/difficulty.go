package hoops

import "math"

// SpawnChances are the per-category probabilities for the weighted spawn
// roll. Whatever mass is left above Powerup+Hazard+Obstacle+Gap goes to
// basketballs.
type SpawnChances struct {
	Powerup  float64
	Hazard   float64
	Obstacle float64
	Gap      float64
}

// DefaultSpawnChances returns the chances a run starts with.
func DefaultSpawnChances() SpawnChances {
	return SpawnChances{
		Powerup:  InitialPowerupChance,
		Hazard:   InitialHazardChance,
		Obstacle: InitialObstacleChance,
		Gap:      NoSpawnGap,
	}
}

// Difficulty tracks level, pacing and spawn chances for a run.
type Difficulty struct {
	Level          int
	NextLevelScore int
	GameSpeed      float64
	SpawnRate      float64
	Chances        SpawnChances
}

// NewDifficulty returns level-1 difficulty.
func NewDifficulty() Difficulty {
	return Difficulty{
		Level:          1,
		NextLevelScore: ScoreForLevel(2),
		GameSpeed:      InitialGameSpeed,
		SpawnRate:      InitialSpawnRate,
		Chances:        DefaultSpawnChances(),
	}
}

// ScoreForLevel returns the cumulative score needed to reach level.
// Grows quadratically: 40, 60, 85, 115, 150, ...
func ScoreForLevel(level int) int {
	return 10 + 15*level + 5*(level-1)*(level-2)/2
}

// SpawnInterval returns the floored spawn rate, never below one frame.
func (d *Difficulty) SpawnInterval() int {
	n := int(math.Floor(d.SpawnRate))
	if n < 1 {
		return 1
	}
	return n
}

// Ramp applies the per-spawn-tick pacing increase.
func (d *Difficulty) Ramp() {
	if d.SpawnRate > MinSpawnRate {
		d.SpawnRate = math.Max(d.SpawnRate-SpawnRateDecrement, MinSpawnRate)
	}
	if d.GameSpeed < MaxGameSpeed {
		d.GameSpeed = math.Min(d.GameSpeed+GameSpeedIncrement, MaxGameSpeed)
	}
}

// CanLevelUp reports whether score has reached the next threshold.
func (d *Difficulty) CanLevelUp(score int) bool {
	return score >= d.NextLevelScore && d.Level < MaxDifficultyLevel
}

// LevelUp advances one level. This is the only place spawn chances change.
func (d *Difficulty) LevelUp() {
	d.Level++
	d.NextLevelScore = ScoreForLevel(d.Level + 1)
	d.GameSpeed = math.Min(d.GameSpeed+LevelUpSpeedBoost, MaxGameSpeed)

	d.Chances.Obstacle = math.Min(d.Chances.Obstacle+ObstacleChanceStep, MaxObstacleChance)
	d.Chances.Hazard = math.Min(d.Chances.Hazard+HazardChanceStep, MaxHazardChance)
	d.Chances.Powerup = math.Max(d.Chances.Powerup-PowerupChanceStep, MinPowerupChance)
}

// SpeedFor returns the horizontal speed of an entity kind at the current
// game speed and level.
func (d *Difficulty) SpeedFor(kind Kind) float64 {
	switch kind {
	case KindPowerup:
		return d.GameSpeed * PowerupSpeedFactor
	case KindHazard:
		factor := HazardSpeedFactor + float64(d.Level-1)*HazardSpeedPerLevel
		return d.GameSpeed * math.Min(factor, MaxHazardSpeedFactor)
	default:
		return d.GameSpeed
	}
}
