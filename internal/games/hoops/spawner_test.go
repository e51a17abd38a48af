package hoops

import "testing"

func TestSpawnChancesChoose(t *testing.T) {
	c := DefaultSpawnChances() // 0.05 / 0.15 / 0.30, gap 0.10

	tests := []struct {
		r    float64
		want SpawnChoice
	}{
		{0, SpawnPowerup},
		{0.049, SpawnPowerup},
		{0.05, SpawnHazard},
		{0.19, SpawnHazard},
		{0.21, SpawnObstacle},
		{0.49, SpawnObstacle},
		{0.51, SpawnNone},
		{0.55, SpawnNone},
		{0.59, SpawnNone},
		{0.61, SpawnBasketball},
		{0.999, SpawnBasketball},
	}

	for _, tt := range tests {
		if got := c.Choose(tt.r); got != tt.want {
			t.Errorf("Choose(%v) = %s, expected %s", tt.r, got, tt.want)
		}
	}
}

func TestSpawnCreatesEntity(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		want SpawnChoice
		len  func(*Simulation) int
	}{
		{"powerup", 0.01, SpawnPowerup, func(s *Simulation) int { return len(s.Powerups) }},
		{"hazard", 0.1, SpawnHazard, func(s *Simulation) int { return len(s.Hazards) }},
		{"obstacle", 0.3, SpawnObstacle, func(s *Simulation) int { return len(s.Obstacles) }},
		{"basketball", 0.9, SpawnBasketball, func(s *Simulation) int { return len(s.Basketballs) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPlaying()
			s.rng = newScriptRand(tt.roll, 0.5)

			if got := s.spawn(); got != tt.want {
				t.Fatalf("spawn() = %s, expected %s", got, tt.want)
			}
			if n := tt.len(s); n != 1 {
				t.Fatalf("collection size = %d, expected 1", n)
			}
			if x := s.rightmostX(); x <= FieldWidth {
				t.Errorf("spawned at X=%v, expected off the right edge", x)
			}
		})
	}
}

func TestSpawnObstacleBounds(t *testing.T) {
	s := newPlaying()
	s.rng = newScriptRand(0.3, 0.999, 0.999)
	s.spawn()

	o := s.Obstacles[0]
	if o.H < ObstacleMinH || o.H > ObstacleMaxH {
		t.Errorf("obstacle height %v out of range", o.H)
	}
	if o.Obstacle != ObstacleHand {
		t.Errorf("type = %s, expected hand for top draw", o.Obstacle)
	}
	if o.Y+o.H != GroundY {
		t.Error("obstacle not on the ground")
	}
}

func TestSpawnRespectsSpacing(t *testing.T) {
	s := newPlaying()
	s.rng = newScriptRand(0.9, 0.5)
	s.Obstacles = append(s.Obstacles, NewObstacle(FieldWidth-SafeSpawnDistance(1)+1, 40, ObstacleCone))

	if got := s.spawn(); got != SpawnNone {
		t.Errorf("spawn() = %s with crowded right edge", got)
	}
	if len(s.Basketballs) != 0 {
		t.Error("basketball spawned despite spacing rule")
	}
}

func TestSpawnRespectsCaps(t *testing.T) {
	s := newPlaying()
	s.Powerups = append(s.Powerups, NewPowerup(100, 200, PowerupInvincibility))
	s.rng = newScriptRand(0.01, 0.5)
	if got := s.spawn(); got != SpawnNone {
		t.Errorf("powerup spawned over cap: %s", got)
	}

	s = newPlaying()
	for i := 0; i < MaxHazards(1); i++ {
		s.Hazards = append(s.Hazards, NewHazard(50, 60))
	}
	s.rng = newScriptRand(0.1, 0.5)
	if got := s.spawn(); got != SpawnNone {
		t.Errorf("hazard spawned over cap: %s", got)
	}

	s = newPlaying()
	for i := 0; i < MaxObstacles(1); i++ {
		s.Obstacles = append(s.Obstacles, NewObstacle(50, 40, ObstacleCone))
	}
	s.rng = newScriptRand(0.3, 0.5)
	if got := s.spawn(); got != SpawnNone {
		t.Errorf("obstacle spawned over cap: %s", got)
	}
}

func TestPopulationCaps(t *testing.T) {
	tests := []struct {
		level     int
		hazards   int
		obstacles int
	}{
		{1, 2, 4},
		{2, 3, 5},
		{5, 4, 8},
		{6, 5, 8},
		{10, 5, 8},
	}
	for _, tt := range tests {
		if got := MaxHazards(tt.level); got != tt.hazards {
			t.Errorf("MaxHazards(%d) = %d, expected %d", tt.level, got, tt.hazards)
		}
		if got := MaxObstacles(tt.level); got != tt.obstacles {
			t.Errorf("MaxObstacles(%d) = %d, expected %d", tt.level, got, tt.obstacles)
		}
	}

	if SafeSpawnDistance(10) >= SafeSpawnDistance(1) {
		t.Error("spawn spacing should shrink with level")
	}
	if SafeSpawnDistance(1000) != FieldWidth*MinSpawnSpacing {
		t.Error("spawn spacing should floor at the minimum")
	}
}
