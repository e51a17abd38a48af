package hoops

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hoop-runner/internal/core"
)

// Visual characters for rendering
const (
	GroundChar     = '═'
	CourtChar      = '▒'
	PlayerChar     = '█'
	PlayerFlash    = '▓'
	BasketballChar = '●'
	PowerupChar    = '★'
	HazardChar     = '▼'
	CloudChar      = '░'
)

var obstacleGlyphs = map[ObstacleType]struct {
	r rune
	c core.Color
}{
	ObstacleCone:   {'▲', core.ColorOrange},
	ObstacleBottle: {'▮', core.ColorCyan},
	ObstacleRack:   {'#', core.ColorGray},
	ObstacleHand:   {'Ψ', core.ColorYellow},
}

// viewport maps world units to screen cells. Row 0 is the HUD.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / FieldWidth,
		sy: float64(dst.Height()-1) / FieldHeight,
	}
}

func (v viewport) x(wx float64) int { return int(wx * v.sx) }
func (v viewport) y(wy float64) int { return 1 + int(wy*v.sy) }

// rect converts a world box to cells, at least one cell in each dimension.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.x(b.X), v.y(b.Y)
	x1, y1 := v.x(b.Right()), v.y(b.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	s := g.sim
	v := newViewport(dst)

	g.drawDecor(dst, v)

	// Court
	groundRow := v.y(GroundY)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorOrange)
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), CourtChar, core.ColorBrown)
	}

	for i := range s.Basketballs {
		b := &s.Basketballs[i]
		dst.SetColored(v.x(b.X), v.y(b.Y), BasketballChar, core.ColorOrange)
	}
	for i := range s.Powerups {
		p := &s.Powerups[i]
		dst.SetColored(v.x(p.X), v.y(p.Y), PowerupChar, core.ColorBrightYellow)
	}
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		glyph := obstacleGlyphs[o.Obstacle]
		dst.DrawRect(v.rect(o.Hitbox()), glyph.r, glyph.c)
	}
	for i := range s.Hazards {
		h := &s.Hazards[i]
		dst.DrawRect(v.rect(h.Hitbox()), HazardChar, core.ColorRed)
	}

	g.drawPlayer(dst, v)

	for i := range s.Popups {
		p := &s.Popups[i]
		if p.Alpha == 0 {
			continue
		}
		color := core.ColorBrightYellow
		if p.Size > 0 {
			color = core.ColorBrightMagenta
		}
		text := p.Text
		dst.DrawTextColored(v.x(p.X)-len(text)/2, v.y(p.Y), text, color)
	}

	g.drawHUD(dst)

	switch s.Run.Phase {
	case PhaseStart:
		drawCenteredMessage(dst, "HOOP RUNNER", "Press SPACE to start")
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Level %d  |  Press R to restart", s.Run.Score, s.Run.Level))
	}
}

func (g *Game) drawDecor(dst *core.Screen, v viewport) {
	for _, c := range g.sim.Decor.Clouds {
		for _, p := range c.Puffs {
			cx := v.x(c.X + p.DX)
			half := core.Max(int(p.R*v.sx), 1)
			dst.DrawHLine(cx-half, v.y(c.Y+p.DY), half*2, CloudChar, core.ColorGray)
		}
	}

	for _, f := range g.sim.Decor.Features {
		x, y := v.x(f.X), v.y(f.Y)
		switch f.Type {
		case FeatureScoreboard:
			dst.DrawTextColored(x, y, "[SCORE]", core.ColorRed)
		case FeatureCrowd:
			dst.DrawTextColored(x, y, "o o o o o", core.ColorGray)
		case FeatureBench:
			dst.DrawTextColored(x, y, "╤══╤", core.ColorBrown)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	s := g.sim
	r := v.rect(s.Player.Box())

	glyph, color := PlayerChar, core.ColorPink
	if s.Run.Invincible && s.Run.Frame%10 < 5 {
		glyph, color = PlayerFlash, core.ColorBrightWhite
	}
	dst.DrawRect(r, glyph, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.sim
	hud := fmt.Sprintf(" Score: %d  Level: %d  Speed: %.1f ", s.Run.Score, s.Run.Level, s.Run.GameSpeed)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	if s.Run.Invincible {
		const barW = 10
		filled := s.Run.InvincibilityTimer * barW / InvincibilityDuration
		bar := " INV " + strings.Repeat("■", filled) + strings.Repeat("·", barW-filled) + " "
		dst.DrawTextColored(dst.Width()-len([]rune(bar))-1, 0, bar, core.ColorBrightYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorWhite)
}
