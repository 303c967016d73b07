package systems

import (
	"testing"

	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/game"
)

func TestPaddleSystem_Update(t *testing.T) {
	// 速度 250，dt 0.2 → 每帧移动 50
	tests := []struct {
		name  string
		x     float64
		input Input
		wantX float64
	}{
		{"no input", 300, Input{}, 300},
		{"right", 300, Input{Right: true}, 350},
		{"left", 300, Input{Left: true}, 250},
		{"right has priority", 300, Input{Left: true, Right: true}, 350},
		{"right reaches edge exactly", 650, Input{Right: true}, 700},
		{"right blocked", 660, Input{Right: true}, 660},
		{"right blocked falls back to left", 660, Input{Left: true, Right: true}, 610},
		{"left reaches zero exactly", 50, Input{Left: true}, 0},
		{"left blocked", 40, Input{Left: true}, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			ctx, _ := newTestContext()
			paddle := newTestPaddle(em, tt.x, 580, 100, 20)

			NewPaddleSystem(em, ctx, paddle.ID).Update(0.2, tt.input)

			if paddle.X() != tt.wantX {
				t.Errorf("X = %v, want %v", paddle.X(), tt.wantX)
			}
		})
	}
}

func TestPaddleSystem_FitViewport(t *testing.T) {
	em := ecs.NewEntityManager()
	ctx, _ := newTestContext()
	paddle := newTestPaddle(em, 650, 580, 100, 20)
	ps := NewPaddleSystem(em, ctx, paddle.ID)

	ctx.Viewport = game.Viewport{Width: 640, Height: 480}
	ps.FitViewport()

	if paddle.X() != 540 || paddle.Y() != 460 {
		t.Errorf("Paddle = (%v, %v), want (540, 460)", paddle.X(), paddle.Y())
	}

	// 变宽时 X 不变
	ctx.Viewport = game.Viewport{Width: 1024, Height: 768}
	ps.FitViewport()
	if paddle.X() != 540 || paddle.Y() != 748 {
		t.Errorf("Paddle = (%v, %v), want (540, 748)", paddle.X(), paddle.Y())
	}
}
