package game

import (
	"image"
	"image/color"
	"math"
)

// 资源文件缺失时使用的程序生成精灵
// 尺寸按缩放前的原图设计：缩放 0.2 后球约 20 像素，挡板约 100x20

const (
	fallbackBallSize     = 100
	fallbackPaddleWidth  = 500
	fallbackPaddleHeight = 100
	fallbackBrickWidth   = 100
	fallbackBrickHeight  = 100
)

// brickPalette 砖块颜色名 → 填充色
var brickPalette = map[string]color.RGBA{
	"red":    {0xd0, 0x30, 0x30, 0xff},
	"blue":   {0x30, 0x60, 0xd0, 0xff},
	"yellow": {0xe0, 0xc0, 0x20, 0xff},
	"green":  {0x30, 0xa0, 0x40, 0xff},
	"grey":   {0x80, 0x80, 0x80, 0xff},
	"orange": {0xf0, 0x80, 0x20, 0xff},
	"pink":   {0xf0, 0x80, 0xc0, 0xff},
	"black":  {0x20, 0x20, 0x20, 0xff},
}

// BrickFillColor 返回砖块颜色名对应的填充色，未知颜色返回灰色
func BrickFillColor(name string) color.RGBA {
	if c, ok := brickPalette[name]; ok {
		return c
	}
	return brickPalette["grey"]
}

// GenerateBallImage 生成实心圆形的球（圆外透明）
func GenerateBallImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	fill := color.RGBA{0x10, 0x10, 0x10, 0xff}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}

// GeneratePaddleImage 生成圆角矩形挡板（四角透明）
func GeneratePaddleImage(width, height int) *image.RGBA {
	return roundedRect(width, height, float64(height)/2, color.RGBA{0xc0, 0x20, 0x20, 0xff})
}

// GenerateBrickImage 生成指定颜色的砖块
func GenerateBrickImage(width, height int, colorName string) *image.RGBA {
	return roundedRect(width, height, float64(min(width, height))/8, BrickFillColor(colorName))
}

func roundedRect(width, height int, radius float64, fill color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if insideRoundedRect(float64(x)+0.5, float64(y)+0.5, float64(width), float64(height), radius) {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}

func insideRoundedRect(px, py, w, h, r float64) bool {
	// 最近的圆角圆心
	cx := math.Max(r, math.Min(px, w-r))
	cy := math.Max(r, math.Min(py, h-r))
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}
