package systems

import (
	"testing"

	"github.com/decker502/breakout/pkg/collision"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/game"
)

func TestResolveScreenEdges(t *testing.T) {
	// 800x600，球 20x20：maxX = 780，maxY = 580
	tests := []struct {
		name           string
		x, y           float64
		vx, vy         float64
		want           EdgeResult
		wantX, wantY   float64
		wantVX, wantVY float64
	}{
		{"right edge", 781, 100, 150, 150, EdgeRight, 780, 100, -150, 150},
		{"left edge", -3, 100, -150, 150, EdgeLeft, 0, 100, 150, 150},
		{"top edge", 100, -2, 150, -150, EdgeTop, 100, 0, 150, 150},
		{"right wins over top", 790, -5, 150, -150, EdgeRight, 780, -5, -150, -150},
		{"exactly at maxX is inside", 780, 580, 150, 150, EdgeNone, 780, 580, 150, 150},
		{"inside", 400, 300, 150, 150, EdgeNone, 400, 300, 150, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			ctx, sounds := newTestContext()
			ball := newTestBall(em, tt.x, tt.y, tt.vx, tt.vy)

			got := ResolveScreenEdges(ctx, ball)
			if got != tt.want {
				t.Errorf("ResolveScreenEdges = %v, want %v", got, tt.want)
			}
			if ball.X() != tt.wantX || ball.Y() != tt.wantY {
				t.Errorf("Position = (%v, %v), want (%v, %v)", ball.X(), ball.Y(), tt.wantX, tt.wantY)
			}
			if ball.Velocity.VX != tt.wantVX || ball.Velocity.VY != tt.wantVY {
				t.Errorf("Velocity = (%v, %v), want (%v, %v)",
					ball.Velocity.VX, ball.Velocity.VY, tt.wantVX, tt.wantVY)
			}
			if len(sounds.played) != 0 {
				t.Errorf("Unexpected sounds %v", sounds.played)
			}
		})
	}
}

func TestResolveScreenEdges_Bottom(t *testing.T) {
	em := ecs.NewEntityManager()
	ctx, sounds := newTestContext()
	ball := newTestBall(em, 400, 581, -240, 240)

	if got := ResolveScreenEdges(ctx, ball); got != EdgeBottom {
		t.Fatalf("ResolveScreenEdges = %v, want bottom", got)
	}
	if ball.State.Enabled {
		t.Error("Ball should be disabled after falling out")
	}
	if ball.Y() != 300 || ball.X() != 400 {
		t.Errorf("Ball should be reset to start height, got (%v, %v)", ball.X(), ball.Y())
	}
	if ball.Velocity.VX != 150 || ball.Velocity.VY != 150 {
		t.Errorf("Ball speed should be reset to defaults, got (%v, %v)", ball.Velocity.VX, ball.Velocity.VY)
	}
	if sounds.count(game.SoundCrash) != 1 {
		t.Errorf("Expected one crash sound, got %v", sounds.played)
	}
}

func TestResolveBallPaddle(t *testing.T) {
	// 挡板 X=350，宽 100
	tests := []struct {
		name           string
		ballX          float64
		vx             float64
		wantVX, wantVY float64
	}{
		// 中点 400
		{"dead center", 390, 150, 165, -165},
		{"dead center moving left", 390, -150, -165, -165},
		// 中点 340 < 350，向右运动
		{"left of paddle moving right", 330, 150, -165, -165},
		// 中点 340 < 350，但已经向左运动
		{"left of paddle moving left", 330, -150, -165, -165},
		// 中点 460 > 450，向左运动
		{"right of paddle moving left", 450, -150, 165, -165},
		{"right of paddle moving right", 450, 150, 165, -165},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			ball := newTestBall(em, tt.ballX, 565, tt.vx, 150)
			paddle := newTestPaddle(em, 350, 580, 100, 20)

			ResolveBallPaddle(ball, paddle)

			if ball.Velocity.VX != tt.wantVX || ball.Velocity.VY != tt.wantVY {
				t.Errorf("Velocity = (%v, %v), want (%v, %v)",
					ball.Velocity.VX, ball.Velocity.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestResolveBallBrick(t *testing.T) {
	// 砖块 (100, 50)，50x20：上沿 50，下沿 70
	tests := []struct {
		name           string
		colY           float64
		ballY          float64
		vx, vy         float64
		want           BrickHit
		wantVX, wantVY float64
	}{
		{"bottom row", 69, 65, 150, -150, BrickHitVertical, 150, 150},
		{"below bottom row", 69.5, 65, 150, -150, BrickHitVertical, 150, 150},
		{"top edge", 50, 35, 150, 150, BrickHitVertical, 150, -150},
		// 中点 71 > 70 且向上
		{"corner from below", 60, 61, 150, -150, BrickHitCorner, -150, 150},
		// 中点 71 > 70 但向下：侧面
		{"below but moving down", 60, 61, 150, 150, BrickHitSide, -150, 150},
		// 中点 50 不低于砖块
		{"side", 60, 40, 150, -150, BrickHitSide, -150, -150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			ball := newTestBall(em, 120, tt.ballY, tt.vx, tt.vy)
			brick := newTestBrick(em, 0, 0, 100, 50, 50, 20)

			got := ResolveBallBrick(ball, collision.Point{X: 110, Y: tt.colY}, brick)
			if got != tt.want {
				t.Errorf("ResolveBallBrick = %v, want %v", got, tt.want)
			}
			if ball.Velocity.VX != tt.wantVX || ball.Velocity.VY != tt.wantVY {
				t.Errorf("Velocity = (%v, %v), want (%v, %v)",
					ball.Velocity.VX, ball.Velocity.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}
