package entities

import (
	"math"
	"testing"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/ecs"
)

func TestNewPaddleEntity_Centered(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultBreakoutConfig()

	// 505x100 缩放 0.2 → 101x20
	id, err := NewPaddleEntity(em, cfg.Paddle, cfg.Viewport, solidSprite(505, 100))
	if err != nil {
		t.Fatalf("NewPaddleEntity failed: %v", err)
	}
	paddle, ok := PaddleOf(em, id)
	if !ok {
		t.Fatal("PaddleOf failed")
	}

	if paddle.Width() != 101 || paddle.Height() != 20 {
		t.Fatalf("Paddle size = %dx%d, want 101x20", paddle.Width(), paddle.Height())
	}
	// (800-101)/2 = 349（整数除法）
	if paddle.X() != 349 || paddle.Y() != 580 {
		t.Errorf("Paddle position = (%v, %v), want (349, 580)", paddle.X(), paddle.Y())
	}
	if paddle.State.Speed != 250 {
		t.Errorf("Paddle speed = %v, want 250", paddle.State.Speed)
	}
}

func brickSprites(w, h int) map[string]components.SpriteComponent {
	sprites := make(map[string]components.SpriteComponent)
	for _, c := range []string{"red", "blue", "yellow", "green"} {
		sprites[c] = solidSprite(w, h)
	}
	return sprites
}

func TestNewBrickGrid_Layout(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultBreakoutConfig().Bricks

	gridID, err := NewBrickGrid(em, cfg, 800, brickSprites(100, 100))
	if err != nil {
		t.Fatalf("NewBrickGrid failed: %v", err)
	}
	grid, ok := ecs.GetComponent[*components.BrickGridComponent](em, gridID)
	if !ok {
		t.Fatal("Grid entity has no BrickGridComponent")
	}
	if len(grid.Rows) != 4 || grid.Remaining() != 48 {
		t.Fatalf("Expected 4 rows / 48 bricks, got %d / %d", len(grid.Rows), grid.Remaining())
	}

	wantColors := []components.BrickColor{
		components.BrickRed, components.BrickBlue, components.BrickYellow, components.BrickGreen,
	}
	for row, ids := range grid.Rows {
		if len(ids) != 12 {
			t.Fatalf("Row %d has %d bricks, want 12", row, len(ids))
		}
		for col, id := range ids {
			brick, ok := BrickOf(em, id)
			if !ok {
				t.Fatalf("Brick (%d,%d) lookup failed", row, col)
			}
			if brick.State.Row != row || brick.State.Column != col {
				t.Errorf("Brick (%d,%d) stored as (%d,%d)", row, col, brick.State.Row, brick.State.Column)
			}
			if brick.State.Color != wantColors[row] {
				t.Errorf("Row %d color = %v, want %v", row, brick.State.Color, wantColors[row])
			}

			// 高度 100*0.2 = 20；Y = 5*(row+1) + 20*row
			wantY := float64(5*(row+1) + 20*row)
			if brick.Y() != wantY {
				t.Errorf("Brick (%d,%d) Y = %v, want %v", row, col, brick.Y(), wantY)
			}
			wantX := 61 * (float64(col) + 0.6)
			if math.Abs(brick.X()-wantX) > 1e-9 {
				t.Errorf("Brick (%d,%d) X = %v, want %v", row, col, brick.X(), wantX)
			}
		}
	}

	// 横向缩放：(800/12)/100*0.8
	first, _ := BrickOf(em, grid.Rows[0][0])
	wantScale := 800.0 / 12.0 / 100.0 * 0.8
	if math.Abs(first.Scale.ScaleX-wantScale) > 1e-9 || first.Scale.ScaleY != 0.2 {
		t.Errorf("Brick scale = (%v, %v), want (%v, 0.2)", first.Scale.ScaleX, first.Scale.ScaleY, wantScale)
	}
}

func TestNewBrickGrid_MissingSprite(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultBreakoutConfig().Bricks
	sprites := brickSprites(10, 10)
	delete(sprites, "green")

	if _, err := NewBrickGrid(em, cfg, 800, sprites); err == nil {
		t.Error("Expected error for missing green sprite")
	}
}

func TestNewBrickGrid_UnknownColor(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultBreakoutConfig().Bricks
	cfg.Colors = []string{"purple"}

	if _, err := NewBrickGrid(em, cfg, 800, brickSprites(10, 10)); err == nil {
		t.Error("Expected error for unknown color")
	}
}

func TestNewRoundEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewRoundEntity(em, 1.5)

	round, ok := ecs.GetComponent[*components.RoundComponent](em, id)
	if !ok || round.Phase != components.RoundPreDelay {
		t.Fatalf("Expected round in pre-delay phase, got %+v", round)
	}
	timer, ok := ecs.GetComponent[*components.TimerComponent](em, id)
	if !ok || timer.Name != RoundTimerName || timer.TargetTime != 1.5 {
		t.Errorf("Unexpected round timer %+v", timer)
	}
}

func TestSpriteSetValidate(t *testing.T) {
	set := SpriteSet{
		Ball:   solidSprite(2, 2),
		Paddle: solidSprite(4, 1),
		Bricks: brickSprites(3, 1),
	}
	if err := set.Validate([]string{"red", "blue"}); err != nil {
		t.Errorf("Expected valid sprite set, got %v", err)
	}
	if err := set.Validate([]string{"pink"}); err == nil {
		t.Error("Expected error for missing pink brick")
	}
	set.Ball = components.SpriteComponent{}
	if err := set.Validate(nil); err == nil {
		t.Error("Expected error for missing ball mask")
	}
}
