package entities

import (
	"fmt"
	"log"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/ecs"
)

// RoundTimerName 回合等待计时器名称
const RoundTimerName = "round_delay"

// NewBallEntity 创建球实体
//
// 球在起始位置创建，初始处于禁用状态，等待回合计时结束后才开始运动。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 球的配置（速度、缩放、起始位置）
//   - sprite: 球的精灵与蒙板
func NewBallEntity(em *ecs.EntityManager, cfg config.BallConfig, sprite components.SpriteComponent) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if sprite.Mask == nil {
		return 0, fmt.Errorf("ball sprite mask cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: cfg.StartX, Y: cfg.StartY})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: cfg.DefaultSpeedX, VY: cfg.DefaultSpeedY})
	ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: cfg.Scale, ScaleY: cfg.Scale})
	spriteComp := sprite
	ecs.AddComponent(em, id, &spriteComp)
	ecs.AddComponent(em, id, &components.BallComponent{
		Enabled:        false,
		StartX:         cfg.StartX,
		StartY:         cfg.StartY,
		DefaultSpeedX:  cfg.DefaultSpeedX,
		DefaultSpeedY:  cfg.DefaultSpeedY,
		SpeedIncrement: cfg.SpeedIncrement,
	})

	log.Printf("[BallFactory] Created ball %d at (%.1f, %.1f)", id, cfg.StartX, cfg.StartY)
	return id, nil
}

// NewPaddleEntity 创建挡板实体，水平居中贴住屏幕底边
func NewPaddleEntity(em *ecs.EntityManager, cfg config.PaddleConfig, viewport config.ViewportConfig, sprite components.SpriteComponent) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if sprite.Mask == nil {
		return 0, fmt.Errorf("paddle sprite mask cannot be nil")
	}

	w := int(float64(sprite.Mask.Width()) * cfg.Scale)
	h := int(float64(sprite.Mask.Height()) * cfg.Scale)

	id := em.CreateEntity()
	// 整数除法，与像素网格对齐
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: float64((viewport.Width - w) / 2),
		Y: float64(viewport.Height - h),
	})
	ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: cfg.Scale, ScaleY: cfg.Scale})
	spriteComp := sprite
	ecs.AddComponent(em, id, &spriteComp)
	ecs.AddComponent(em, id, &components.PaddleComponent{Speed: cfg.Speed})

	return id, nil
}

// NewBrickGrid 创建砖块网格
//
// 每行使用同一颜色（按配置的颜色列表循环），
// X 按视口宽度等分为 columns+1 份，Y 按行间距与砖块高度累加。
// 砖块横向缩放使一行砖块占满 widthFill 比例的宽度。
//
// 返回:
//   - ecs.EntityID: 持有 BrickGridComponent 的网格实体
//   - error: 缺少某种颜色的精灵时返回错误
func NewBrickGrid(em *ecs.EntityManager, cfg config.BricksConfig, viewportWidth int, sprites map[string]components.SpriteComponent) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	grid := &components.BrickGridComponent{Rows: make([][]ecs.EntityID, cfg.Rows)}

	for row := 0; row < cfg.Rows; row++ {
		colorName := cfg.BrickColorName(row)
		color, ok := components.ParseBrickColor(colorName)
		if !ok {
			return 0, fmt.Errorf("unknown brick color %q in row %d", colorName, row)
		}
		sprite, ok := sprites[colorName]
		if !ok || sprite.Mask == nil {
			return 0, fmt.Errorf("missing brick sprite for color %q", colorName)
		}

		scaleX := float64(viewportWidth) / float64(cfg.Columns) / float64(sprite.Mask.Width()) * cfg.WidthFill
		scaleY := cfg.HeightScale
		brickH := int(float64(sprite.Mask.Height()) * scaleY)
		y := config.BrickY(cfg.Gap, brickH, row)

		grid.Rows[row] = make([]ecs.EntityID, 0, cfg.Columns)
		for col := 0; col < cfg.Columns; col++ {
			id := em.CreateEntity()
			ecs.AddComponent(em, id, &components.PositionComponent{
				X: config.BrickX(viewportWidth, cfg.Columns, col),
				Y: y,
			})
			ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: scaleX, ScaleY: scaleY})
			spriteComp := sprite
			ecs.AddComponent(em, id, &spriteComp)
			ecs.AddComponent(em, id, &components.BrickComponent{Row: row, Column: col, Color: color})
			grid.Rows[row] = append(grid.Rows[row], id)
		}
	}

	gridID := em.CreateEntity()
	ecs.AddComponent(em, gridID, grid)

	log.Printf("[BrickFactory] Created %dx%d brick grid (%d bricks)", cfg.Rows, cfg.Columns, grid.Remaining())
	return gridID, nil
}

// NewRoundEntity 创建回合状态实体（回合状态 + 等待计时器）
func NewRoundEntity(em *ecs.EntityManager, delay float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.RoundComponent{Phase: components.RoundPreDelay})
	ecs.AddComponent(em, id, &components.TimerComponent{
		Name:       RoundTimerName,
		TargetTime: delay,
	})
	return id
}
