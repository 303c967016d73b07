package components

import (
	"github.com/decker502/breakout/pkg/collision"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 存储实体的视觉表现和对应的像素蒙板
//
// Mask 在资源加载时构建一次，之后只读；
// Image 仅供 ebiten 渲染使用，无窗口运行（终端前端、验证工具）时为 nil
type SpriteComponent struct {
	Image *ebiten.Image
	Mask  *collision.Mask
}
