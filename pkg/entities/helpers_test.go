package entities

import (
	"github.com/decker502/breakout/pkg/collision"
	"github.com/decker502/breakout/pkg/components"
)

// solidSprite 创建全不透明的 w×h 精灵（无图像）
func solidSprite(w, h int) components.SpriteComponent {
	pix := make([]byte, w*h*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xff
	}
	return components.SpriteComponent{Mask: collision.MaskFromRGBA(pix, w, h)}
}
