package systems

import (
	"log"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/entities"
)

// RoundSystem 回合状态机
//
// 回合开始（计时器为 0）时把球放到起始高度；计时超过等待时间后启用球。
// 球落出底边时由 PhysicsSystem 调用 MarkRoundLost 结束本回合，计时器归零。
type RoundSystem struct {
	em      *ecs.EntityManager
	roundID ecs.EntityID
	ballID  ecs.EntityID
}

// NewRoundSystem 创建回合系统
func NewRoundSystem(em *ecs.EntityManager, roundID, ballID ecs.EntityID) *RoundSystem {
	return &RoundSystem{em: em, roundID: roundID, ballID: ballID}
}

// Update 推进回合计时
func (rs *RoundSystem) Update(deltaTime float64) {
	round, timer, ok := rs.state()
	if !ok {
		return
	}
	ball, ok := entities.BallOf(rs.em, rs.ballID)
	if !ok {
		return
	}

	if round.Phase == components.RoundEnded {
		round.Phase = components.RoundPreDelay
	}

	if timer.CurrentTime == 0 {
		ball.Position.Y = ball.State.StartY
	}

	timer.CurrentTime += deltaTime
	// 严格大于：恰好等于等待时间时仍不启用
	if timer.CurrentTime > timer.TargetTime {
		ball.State.Enabled = true
		if round.Phase == components.RoundPreDelay {
			round.Phase = components.RoundActive
			timer.IsReady = true
			log.Printf("[RoundSystem] Round started after %.2fs delay", timer.CurrentTime)
		}
	}
}

// MarkRoundLost 结束本回合：计时器归零，下一帧重新进入等待
func (rs *RoundSystem) MarkRoundLost() {
	round, timer, ok := rs.state()
	if !ok {
		return
	}
	round.Phase = components.RoundEnded
	round.RoundsLost++
	timer.Reset()
	log.Printf("[RoundSystem] Round lost (%d so far)", round.RoundsLost)
}

func (rs *RoundSystem) state() (*components.RoundComponent, *components.TimerComponent, bool) {
	round, ok := ecs.GetComponent[*components.RoundComponent](rs.em, rs.roundID)
	if !ok {
		return nil, nil, false
	}
	timer, ok := ecs.GetComponent[*components.TimerComponent](rs.em, rs.roundID)
	if !ok {
		return nil, nil, false
	}
	return round, timer, true
}
