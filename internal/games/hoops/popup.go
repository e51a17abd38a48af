package hoops

import "fmt"

// ScorePopup is floating feedback text. Purely presentational.
type ScorePopup struct {
	X, Y  float64
	Text  string
	Alpha int
	Life  int
	Size  int // 0 means the renderer's default
}

func newScorePopup(x, y float64, points int) ScorePopup {
	return ScorePopup{
		X:     x,
		Y:     y,
		Text:  fmt.Sprintf("+%d", points),
		Alpha: 255,
		Life:  PopupLife,
	}
}

func newLevelUpPopup(level int) ScorePopup {
	return ScorePopup{
		X:     FieldWidth / 2,
		Y:     FieldHeight / 2,
		Text:  fmt.Sprintf("LEVEL %d!", level),
		Alpha: 255,
		Life:  LevelUpPopupLife,
		Size:  LevelUpPopupSize,
	}
}

// Update floats the popup upward and fades it.
// Returns false once the popup has expired.
func (p *ScorePopup) Update() bool {
	p.Y -= PopupRisePerTick
	p.Alpha -= PopupFadePerTick
	if p.Alpha < 0 {
		p.Alpha = 0
	}
	p.Life--
	return p.Life > 0
}
