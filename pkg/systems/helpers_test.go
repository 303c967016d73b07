package systems

import (
	"github.com/decker502/breakout/pkg/collision"
	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/decker502/breakout/pkg/game"
)

// recordingSounds 记录播放过的音效
type recordingSounds struct {
	played []string
}

func (r *recordingSounds) PlaySound(id string) bool {
	r.played = append(r.played, id)
	return true
}

func (r *recordingSounds) count(id string) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

// newTestContext 创建 800x600 的上下文
func newTestContext() (*game.GameContext, *recordingSounds) {
	sounds := &recordingSounds{}
	return game.NewGameContext(800, 600, sounds), sounds
}

// solidSprite 全不透明的 w×h 精灵
func solidSprite(w, h int) components.SpriteComponent {
	pix := make([]byte, w*h*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xff
	}
	return components.SpriteComponent{Mask: collision.MaskFromRGBA(pix, w, h)}
}

// addBody 添加位置、缩放为 1 的精灵组件
func addBody(em *ecs.EntityManager, id ecs.EntityID, x, y float64, w, h int) {
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	sp := solidSprite(w, h)
	ecs.AddComponent(em, id, &sp)
}

// newTestBall 20x20 的球（默认速度 150/150，增量 15，起始 Y 300）
func newTestBall(em *ecs.EntityManager, x, y, vx, vy float64) entities.Ball {
	id := em.CreateEntity()
	addBody(em, id, x, y, 20, 20)
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.BallComponent{
		Enabled:        true,
		StartX:         20,
		StartY:         300,
		DefaultSpeedX:  150,
		DefaultSpeedY:  150,
		SpeedIncrement: 15,
	})
	ball, _ := entities.BallOf(em, id)
	return ball
}

// newTestPaddle w×h 的挡板，速度 250
func newTestPaddle(em *ecs.EntityManager, x, y float64, w, h int) entities.Paddle {
	id := em.CreateEntity()
	addBody(em, id, x, y, w, h)
	ecs.AddComponent(em, id, &components.PaddleComponent{Speed: 250})
	paddle, _ := entities.PaddleOf(em, id)
	return paddle
}

// newTestBrick w×h 的砖块
func newTestBrick(em *ecs.EntityManager, row, col int, x, y float64, w, h int) entities.Brick {
	id := em.CreateEntity()
	addBody(em, id, x, y, w, h)
	ecs.AddComponent(em, id, &components.BrickComponent{Row: row, Column: col})
	brick, _ := entities.BrickOf(em, id)
	return brick
}

// newTestGrid 用给定的砖块行创建网格实体
func newTestGrid(em *ecs.EntityManager, rows ...[]entities.Brick) ecs.EntityID {
	grid := &components.BrickGridComponent{Rows: make([][]ecs.EntityID, len(rows))}
	for r, row := range rows {
		for _, b := range row {
			grid.Rows[r] = append(grid.Rows[r], b.ID)
		}
	}
	id := em.CreateEntity()
	ecs.AddComponent(em, id, grid)
	return id
}

// testSpriteSet 与真实素材尺寸相近的全不透明精灵
func testSpriteSet() entities.SpriteSet {
	set := entities.SpriteSet{
		Ball:   solidSprite(100, 100),
		Paddle: solidSprite(500, 100),
		Bricks: make(map[string]components.SpriteComponent),
	}
	for _, c := range config.DefaultBreakoutConfig().Bricks.Colors {
		set.Bricks[c] = solidSprite(100, 100)
	}
	return set
}
