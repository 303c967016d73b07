package entities

import (
	"fmt"

	"github.com/decker502/breakout/pkg/components"
)

// SpriteSet 世界初始化所需的全部精灵
//
// 由 game.ResourceManager 加载（或在无窗口环境下程序生成），
// 每个精灵的蒙板只构建一次，所有同色砖块共享同一个蒙板。
type SpriteSet struct {
	Ball   components.SpriteComponent
	Paddle components.SpriteComponent
	// Bricks 颜色名 → 砖块精灵
	Bricks map[string]components.SpriteComponent
}

// Validate 检查蒙板是否齐全
func (s *SpriteSet) Validate(colors []string) error {
	if s.Ball.Mask == nil {
		return fmt.Errorf("ball sprite has no mask")
	}
	if s.Paddle.Mask == nil {
		return fmt.Errorf("paddle sprite has no mask")
	}
	for _, c := range colors {
		sp, ok := s.Bricks[c]
		if !ok || sp.Mask == nil {
			return fmt.Errorf("missing brick sprite for color %q", c)
		}
	}
	return nil
}
