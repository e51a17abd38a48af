package hoops

// Field geometry, in world units. The renderer scales these to whatever
// terminal size the platform hands us.
const (
	FieldWidth   = 600.0
	FieldHeight  = 400.0
	GroundHeight = 50.0
	GroundY      = FieldHeight - GroundHeight
	Gravity      = 0.5
)

// Player tunables.
const (
	PlayerX      = 100.0
	PlayerWidth  = 40.0
	PlayerHeight = 60.0
	JumpLift     = -13.0

	// StompBounceFactor scales JumpLift for the bounce after a stomp.
	StompBounceFactor = 0.7
	// StompBand is the fraction of an obstacle's height, measured from its
	// top, that the player's feet must be within for a stomp.
	StompBand = 0.5
)

// Speed and spawn pacing.
const (
	InitialGameSpeed   = 4.0
	MaxGameSpeed       = 10.0
	GameSpeedIncrement = 0.02
	LevelUpSpeedBoost  = 0.5

	InitialSpawnRate   = 90.0 // frames between spawn attempts
	MinSpawnRate       = 40.0
	SpawnRateDecrement = 0.2
)

// Spawn chances and their level-up adjustments.
const (
	InitialPowerupChance  = 0.05
	InitialHazardChance   = 0.15
	InitialObstacleChance = 0.30
	NoSpawnGap            = 0.10

	ObstacleChanceStep = 0.04
	MaxObstacleChance  = 0.6
	HazardChanceStep   = 0.02
	MaxHazardChance    = 0.35
	PowerupChanceStep  = 0.005
	MinPowerupChance   = 0.02
)

// Spacing between consecutive spawns, as fractions of FieldWidth.
const (
	SpawnSpacing          = 0.2
	SpawnSpacingPerLevel  = 0.005
	MinSpawnSpacing       = 0.1
	MaxPowerups           = 1
	BaseMaxHazards        = 2
	HazardCap             = 5
	BaseMaxObstacles      = 3
	ObstacleCap           = 8
	MaxDifficultyLevel    = 10
	InvincibilityDuration = 300 // 5 seconds at 60fps
)

// Entity dimensions and per-kind speed multipliers.
const (
	BasketballSize = 30.0
	ObstacleWidth  = 30.0
	ObstacleMinH   = 40.0
	ObstacleMaxH   = 60.0
	HazardSize     = 20.0
	HazardHitboxW  = HazardSize * 1.5
	HazardHitboxH  = HazardSize * 0.8
	PowerupSize    = 25.0

	PowerupSpeedFactor   = 0.8
	HazardSpeedFactor    = 1.1
	HazardSpeedPerLevel  = 0.05
	MaxHazardSpeedFactor = 1.6
	CourtFeatureParallax = 0.7
	BasketballPoints     = 1
	StompPoints          = 2
	PopupLife            = 60
	LevelUpPopupLife     = 90
	LevelUpPopupSize     = 30
	PopupFadePerTick     = 4
	PopupRisePerTick     = 1.0
	DecorOffscreenMargin = 100.0
	CloudSpawnChance     = 0.005
	MaxClouds            = 5
	CourtFeatureChance   = 0.003
	MaxCourtFeatures     = 2
	InitialClouds        = 3
	InitialCourtFeatures = 1
)
