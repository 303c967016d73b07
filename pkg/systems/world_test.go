package systems

import (
	"testing"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/decker502/breakout/pkg/game"
)

func newTestWorld(t *testing.T) (*World, *recordingSounds) {
	t.Helper()
	ctx, sounds := newTestContext()
	w, err := NewWorld(ctx, config.DefaultBreakoutConfig(), testSpriteSet())
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w, sounds
}

func TestNewWorld(t *testing.T) {
	w, _ := newTestWorld(t)

	if w.RemainingBricks() != 48 || len(w.Bricks()) != 48 {
		t.Errorf("Expected 48 bricks, got %d/%d", w.RemainingBricks(), len(w.Bricks()))
	}

	ball := w.Ball()
	if ball.State.Enabled {
		t.Error("Ball should start disabled")
	}
	if ball.Width() != 20 || ball.Height() != 20 {
		t.Errorf("Ball size = %dx%d, want 20x20", ball.Width(), ball.Height())
	}

	paddle := w.Paddle()
	if paddle.X() != 350 || paddle.Y() != 580 {
		t.Errorf("Paddle = (%v, %v), want (350, 580)", paddle.X(), paddle.Y())
	}

	if w.Round().Phase != components.RoundPreDelay {
		t.Errorf("Round phase = %v, want pre-delay", w.Round().Phase)
	}
}

func TestNewWorld_Errors(t *testing.T) {
	ctx, _ := newTestContext()
	cfg := config.DefaultBreakoutConfig()

	if _, err := NewWorld(nil, cfg, testSpriteSet()); err == nil {
		t.Error("Expected error for nil context")
	}
	if _, err := NewWorld(ctx, nil, testSpriteSet()); err == nil {
		t.Error("Expected error for nil config")
	}
	if _, err := NewWorld(ctx, cfg, entities.SpriteSet{}); err == nil {
		t.Error("Expected error for empty sprite set")
	}
}

func TestWorld_BallWaitsForDelay(t *testing.T) {
	w, _ := newTestWorld(t)

	for i := 0; i < 4; i++ {
		w.Update(0.25, Input{})
	}
	ball := w.Ball()
	if ball.State.Enabled || ball.X() != 20 || ball.Y() != 300 {
		t.Fatalf("Ball moved before delay: enabled=%v pos=(%v, %v)", ball.State.Enabled, ball.X(), ball.Y())
	}

	w.Update(0.25, Input{})
	ball = w.Ball()
	if !ball.State.Enabled {
		t.Fatal("Ball should be enabled after the delay")
	}
	// 启用当帧即移动：150 * 0.25
	if ball.X() != 57.5 || ball.Y() != 337.5 {
		t.Errorf("Ball = (%v, %v), want (57.5, 337.5)", ball.X(), ball.Y())
	}
	if w.Context().Clock.Frames != 5 {
		t.Errorf("Frames = %d, want 5", w.Context().Clock.Frames)
	}
}

func TestWorld_PaddleInput(t *testing.T) {
	w, _ := newTestWorld(t)

	w.Update(0.2, Input{Left: true})
	if got := w.Paddle().X(); got != 300 {
		t.Errorf("Paddle X = %v, want 300", got)
	}
}

func TestWorld_Resize(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Paddle().Position.X = 700

	w.Resize(640, 480)

	if w.Context().Viewport != (game.Viewport{Width: 640, Height: 480}) {
		t.Errorf("Viewport = %+v", w.Context().Viewport)
	}
	paddle := w.Paddle()
	if paddle.X() != 540 || paddle.Y() != 460 {
		t.Errorf("Paddle = (%v, %v), want (540, 460)", paddle.X(), paddle.Y())
	}

	// 非法尺寸忽略
	w.Resize(0, 100)
	if w.Context().Viewport.Width != 640 {
		t.Error("Zero width resize should be ignored")
	}
}

// TestWorld_LongRun 长时间模拟：砖块只减不增，球始终在屏幕内或已重置
func TestWorld_LongRun(t *testing.T) {
	w, _ := newTestWorld(t)

	prev := w.RemainingBricks()
	broken := 0
	lost := 0
	for frame := 0; frame < 60*120; frame++ {
		// 挡板追着球走
		input := Input{}
		ballMid := w.Ball().MidX()
		paddleMid := w.Paddle().X() + float64(w.Paddle().Width())/2
		if ballMid > paddleMid+5 {
			input.Right = true
		} else if ballMid < paddleMid-5 {
			input.Left = true
		}

		outcome := w.Update(1.0/60, input)
		switch outcome {
		case FrameBrick:
			broken++
		case FrameRoundLost:
			lost++
			if w.Ball().State.Enabled {
				t.Fatalf("Frame %d: ball enabled right after round loss", frame)
			}
		}

		remaining := w.RemainingBricks()
		if remaining > prev {
			t.Fatalf("Frame %d: bricks increased from %d to %d", frame, prev, remaining)
		}
		if prev-remaining > 1 {
			t.Fatalf("Frame %d: more than one brick removed in a frame", frame)
		}
		prev = remaining
	}

	if broken != 48-w.RemainingBricks() {
		t.Errorf("Brick outcomes %d disagree with removed bricks %d", broken, 48-w.RemainingBricks())
	}
	if w.Round().RoundsLost != lost {
		t.Errorf("RoundsLost = %d, want %d", w.Round().RoundsLost, lost)
	}
	if broken == 0 {
		t.Error("Expected at least one brick to be broken in two minutes of play")
	}
}
