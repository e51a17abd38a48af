package hoops

import (
	"testing"

	"github.com/vovakirdan/hoop-runner/internal/core"
)

func TestEntityCollides(t *testing.T) {
	player := NewPlayer() // 100..140 x 290..350

	tests := []struct {
		name string
		e    Entity
		want bool
	}{
		{"ball overlapping", NewBasketball(120, 300), true},
		{"ball near corner", NewBasketball(152, 278), false},
		{"ball edge inside radius", NewBasketball(154, 320), true},
		{"ball far above", NewBasketball(120, 200), false},
		{"powerup overlapping", NewPowerup(130, 330, PowerupInvincibility), true},
		{"obstacle overlapping", NewObstacle(130, 40, ObstacleCone), true},
		{"obstacle behind", NewObstacle(60, 40, ObstacleCone), false},
		{"obstacle edge touching", NewObstacle(140, 40, ObstacleCone), false},
		{"hazard uses wide hitbox", NewHazard(150, 300), true},
		{"hazard above head", NewHazard(120, 270), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Collides(&player); got != tt.want {
				t.Errorf("Collides() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestHazardHitbox(t *testing.T) {
	h := NewHazard(200, 80)
	box := h.Hitbox()
	want := core.NewBox(200-HazardHitboxW/2, 80, HazardHitboxW, HazardHitboxH)
	if box != want {
		t.Errorf("Hitbox() = %+v, expected %+v", box, want)
	}
	if box.W <= box.H {
		t.Error("hazard hitbox should be wider than tall")
	}
}

func TestObstacleRestsOnGround(t *testing.T) {
	for _, typ := range obstacleTypes {
		o := NewObstacle(300, 45, typ)
		if o.Y+o.H != GroundY {
			t.Errorf("%s bottom = %v, expected %v", typ, o.Y+o.H, GroundY)
		}
		if o.Stompable != (typ != ObstacleHand) {
			t.Errorf("%s Stompable = %v", typ, o.Stompable)
		}
	}
}

func TestEntityOffScreen(t *testing.T) {
	e := NewBasketball(-20, 100)
	e.Speed = 5
	if e.OffScreen() {
		t.Fatal("entity still partially visible")
	}
	e.Update()
	e.Update()
	e.Update()
	if !e.OffScreen() {
		t.Errorf("entity at X=%v should be off screen", e.X)
	}
}

func TestPopupExpires(t *testing.T) {
	p := newScorePopup(10, 100, 2)
	if p.Text != "+2" {
		t.Errorf("Text = %q, expected +2", p.Text)
	}

	alive := 0
	for p.Update() {
		alive++
	}
	if alive != PopupLife-1 {
		t.Errorf("popup lived %d ticks, expected %d", alive, PopupLife-1)
	}
	if p.Alpha < 0 {
		t.Errorf("Alpha = %d, should not go negative", p.Alpha)
	}
	if p.Y >= 100 {
		t.Error("popup should float upward")
	}
}
