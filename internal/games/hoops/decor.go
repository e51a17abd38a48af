package hoops

// CourtFeatureType is a piece of background court scenery.
type CourtFeatureType uint8

const (
	FeatureScoreboard CourtFeatureType = iota
	FeatureCrowd
	FeatureBench
)

// Puff is one circle of a cloud, relative to the cloud origin.
type Puff struct {
	DX, DY float64
	R      float64
}

// Cloud drifts across the sky independent of game speed.
type Cloud struct {
	X, Y  float64
	Speed float64
	Puffs []Puff
}

// CourtFeature scrolls behind the action for parallax.
type CourtFeature struct {
	Type  CourtFeatureType
	X, Y  float64
	Speed float64
}

// Decor holds the decorative collections. None of it affects gameplay.
type Decor struct {
	Clouds   []Cloud
	Features []CourtFeature
}

func newCloud(rng Rand, x float64) Cloud {
	c := Cloud{
		X:     x,
		Y:     between(rng, 20, FieldHeight*0.3),
		Speed: between(rng, 0.3, 0.8),
	}
	n := 3 + pick(rng, 3)
	c.Puffs = make([]Puff, n)
	for i := range c.Puffs {
		c.Puffs[i] = Puff{
			DX: float64(i)*18 + between(rng, 0, 8),
			DY: between(rng, -8, 8),
			R:  between(rng, 12, 22),
		}
	}
	return c
}

func newCourtFeature(rng Rand, x, gameSpeed float64) CourtFeature {
	f := CourtFeature{
		Type:  CourtFeatureType(pick(rng, 3)),
		X:     x,
		Speed: gameSpeed * CourtFeatureParallax,
	}
	switch f.Type {
	case FeatureScoreboard:
		f.Y = between(rng, FieldHeight*0.1, FieldHeight*0.3)
	case FeatureCrowd:
		f.Y = FieldHeight * 0.2
	case FeatureBench:
		f.Y = GroundY - 20
	}
	return f
}

// seed places the initial decor for a fresh run.
func (d *Decor) seed(rng Rand, gameSpeed float64) {
	d.Clouds = d.Clouds[:0]
	d.Features = d.Features[:0]
	for i := 0; i < InitialClouds; i++ {
		d.Clouds = append(d.Clouds, newCloud(rng, between(rng, 0, FieldWidth)))
	}
	for i := 0; i < InitialCourtFeatures; i++ {
		d.Features = append(d.Features, newCourtFeature(rng, between(rng, FieldWidth*0.5, FieldWidth), gameSpeed))
	}
}

// update moves decor left and drops anything past the left margin.
func (d *Decor) update() {
	for i := len(d.Clouds) - 1; i >= 0; i-- {
		d.Clouds[i].X -= d.Clouds[i].Speed
		if d.Clouds[i].X < -DecorOffscreenMargin {
			d.Clouds = append(d.Clouds[:i], d.Clouds[i+1:]...)
		}
	}
	for i := len(d.Features) - 1; i >= 0; i-- {
		d.Features[i].X -= d.Features[i].Speed
		if d.Features[i].X < -DecorOffscreenMargin {
			d.Features = append(d.Features[:i], d.Features[i+1:]...)
		}
	}
}

// maybeSpawn rolls for new decor. Clouds and features have their own
// caps and ignore the gameplay spacing rule.
func (d *Decor) maybeSpawn(rng Rand, gameSpeed float64) {
	if rng.Float64() < CloudSpawnChance && len(d.Clouds) < MaxClouds {
		d.Clouds = append(d.Clouds, newCloud(rng, FieldWidth+between(rng, 0, 50)))
	}
	if rng.Float64() < CourtFeatureChance && len(d.Features) < MaxCourtFeatures {
		d.Features = append(d.Features, newCourtFeature(rng, FieldWidth+between(rng, 50, 150), gameSpeed))
	}
}
