package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestBall_BounceWallsInvertsAndClamps(t *testing.T) {
	tests := []struct {
		name   string
		y, vy  float64
		wantY  float64
		wantVY float64
	}{
		{"top", 5, -4, 9, 4},
		{"bottom", 537, 4, 531, -4},
		{"no contact", 270, 4, 270, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Ball{X: 450, Y: tt.y, VX: 5, VY: tt.vy, Multiplier: 1}
			b.BounceWalls(540, 9)

			if b.Y != tt.wantY {
				t.Errorf("Y = %f, want %f", b.Y, tt.wantY)
			}
			if b.VY != tt.wantVY {
				t.Errorf("VY = %f, want %f", b.VY, tt.wantVY)
			}
			if b.Y-9 < 0 || b.Y+9 > 540 {
				t.Errorf("ball edge beyond wall: Y=%f", b.Y)
			}
		})
	}
}

func TestBall_BounceOffPaddleAngleWithinLimit(t *testing.T) {
	maxAngle := math.Pi / 3

	// Varre a face inteira, inclusive além das bordas (clamp).
	for _, relative := range []float64{-1.5, -1, -0.5, 0, 0.5, 1, 1.5} {
		b := Ball{X: 29, Y: 270 + relative*50, VX: -5, VY: 0, Multiplier: 1}
		b.BounceOffPaddle(270, 100, maxAngle, 1.03, true)

		if b.VX <= 0 {
			t.Errorf("relative %f: expected rightward VX, got %f", relative, b.VX)
		}
		angle := math.Atan2(b.VY, b.VX)
		if math.Abs(angle) > maxAngle+1e-9 {
			t.Errorf("relative %f: bounce angle %f exceeds limit", relative, angle)
		}
	}
}

func TestBall_BounceOffPaddleAwayFromRightPaddle(t *testing.T) {
	b := Ball{X: 871, Y: 270, VX: 5, VY: 2, Multiplier: 1}
	b.BounceOffPaddle(270, 100, math.Pi/3, 1.03, false)

	if b.VX >= 0 {
		t.Errorf("expected leftward VX after right paddle bounce, got %f", b.VX)
	}
}

func TestBall_BounceOffPaddleSpeedsUp(t *testing.T) {
	b := Ball{X: 29, Y: 270, VX: -5, VY: 0, Multiplier: 1}
	before := b.Speed()

	b.BounceOffPaddle(270, 100, math.Pi/3, 1.03, true)

	want := before * 1.03
	if math.Abs(b.Speed()-want) > 1e-9 {
		t.Errorf("speed after bounce = %f, want %f", b.Speed(), want)
	}
}

func TestBall_ServeResetsAndLaunches(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, toRight := range []bool{true, false} {
		b := Ball{X: 100, Y: 100, VX: 9, VY: 9, Multiplier: 1.8}
		b.Serve(450, 270, 5, math.Pi/8, toRight, rng)

		if b.X != 450 || b.Y != 270 {
			t.Errorf("serve did not center ball: (%f, %f)", b.X, b.Y)
		}
		if b.Multiplier != 1 {
			t.Errorf("serve did not reset multiplier: %f", b.Multiplier)
		}
		if toRight && b.VX <= 0 || !toRight && b.VX >= 0 {
			t.Errorf("serve toRight=%v launched with VX=%f", toRight, b.VX)
		}
		angle := math.Atan2(math.Abs(b.VY), math.Abs(b.VX))
		if angle > math.Pi/8+1e-9 {
			t.Errorf("serve angle %f beyond spread", angle)
		}
		if math.Abs(b.Speed()-5) > 1e-9 {
			t.Errorf("serve speed = %f, want 5", b.Speed())
		}
	}
}
