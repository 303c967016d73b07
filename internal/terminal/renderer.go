// Package terminal 终端版前端：把游戏世界绘制到 tcell 屏幕，并提供按键锁存与 beep 音效
package terminal

import (
	"math"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/decker502/breakout/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

const (
	ballRune  = '●'
	blockRune = '█'
)

var (
	ballStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	paddleStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	statusStyle = tcell.StyleDefault.Reverse(true)

	brickColors = map[components.BrickColor]tcell.Color{
		components.BrickRed:    tcell.ColorRed,
		components.BrickBlue:   tcell.ColorBlue,
		components.BrickYellow: tcell.ColorYellow,
		components.BrickGreen:  tcell.ColorGreen,
		components.BrickGrey:   tcell.ColorGray,
		components.BrickOrange: tcell.ColorOrange,
		components.BrickPink:   tcell.ColorPink,
		components.BrickBlack:  tcell.ColorBlack,
	}
)

// Cell 终端字符格坐标
type Cell struct {
	X, Y int
}

// Renderer 把世界坐标（像素）缩放到终端字符格
//
// 最后一行留给状态栏，其余行是游戏区域。
// 字符格是否点亮由格子中心对应的蒙板像素决定，与碰撞检测使用同一份蒙板。
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer 创建渲染器
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw 绘制一帧
func (r *Renderer) Draw(world *systems.World, status string) {
	r.screen.Clear()

	cols, rows := r.screen.Size()
	vp := world.Context().Viewport
	grid := newCellGrid(cols, rows-1, vp.Width, vp.Height)

	for _, brick := range world.Bricks() {
		style := tcell.StyleDefault.Foreground(brickColor(brick.State.Color))
		r.fill(grid.cellsOf(brick.Body), blockRune, style)
	}
	r.fill(grid.cellsOf(world.Paddle().Body), blockRune, paddleStyle)
	r.fill(grid.cellsOf(world.Ball().Body), ballRune, ballStyle)

	r.drawStatus(status, cols, rows)
	r.screen.Show()
}

func (r *Renderer) fill(cells []Cell, ch rune, style tcell.Style) {
	for _, c := range cells {
		r.screen.SetContent(c.X, c.Y, ch, nil, style)
	}
}

func (r *Renderer) drawStatus(status string, cols, rows int) {
	if rows <= 0 {
		return
	}
	y := rows - 1
	x := 0
	for _, ch := range status {
		if x >= cols {
			break
		}
		r.screen.SetContent(x, y, ch, nil, statusStyle)
		x++
	}
	for ; x < cols; x++ {
		r.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
}

func brickColor(c components.BrickColor) tcell.Color {
	if color, ok := brickColors[c]; ok {
		return color
	}
	return tcell.ColorWhite
}

// cellGrid 字符格与世界像素之间的比例
type cellGrid struct {
	cols, rows   int
	cellW, cellH float64
}

func newCellGrid(cols, rows, viewportWidth, viewportHeight int) cellGrid {
	g := cellGrid{cols: cols, rows: rows}
	if cols > 0 && rows > 0 {
		g.cellW = float64(viewportWidth) / float64(cols)
		g.cellH = float64(viewportHeight) / float64(rows)
	}
	return g
}

// cellsOf 返回物体占据的字符格
//
// 物体小于一个字符格时，任何格子中心都可能落不到不透明像素上，
// 此时退化为物体中心所在的格子，保证物体始终可见。
func (g cellGrid) cellsOf(body entities.Body) []Cell {
	if g.cols <= 0 || g.rows <= 0 {
		return nil
	}

	bounds := body.Boundary()
	x0 := g.clampCol(int(math.Floor(float64(bounds.Min.X) / g.cellW)))
	x1 := g.clampCol(int(math.Ceil(float64(bounds.Max.X)/g.cellW)) - 1)
	y0 := g.clampRow(int(math.Floor(float64(bounds.Min.Y) / g.cellH)))
	y1 := g.clampRow(int(math.Ceil(float64(bounds.Max.Y)/g.cellH)) - 1)

	toLocal := body.Transform().Inverse()
	mask := body.Mask()

	var cells []Cell
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			wx := (float64(cx) + 0.5) * g.cellW
			wy := (float64(cy) + 0.5) * g.cellH
			lx, ly := toLocal.Apply(wx, wy)
			if lx < 0 || ly < 0 {
				continue
			}
			if mask.Opaque(int(lx), int(ly)) {
				cells = append(cells, Cell{X: cx, Y: cy})
			}
		}
	}

	if len(cells) == 0 && mask.OpaqueCount() > 0 {
		midX := body.X() + float64(body.Width())/2
		midY := body.Y() + float64(body.Height())/2
		cells = append(cells, Cell{
			X: g.clampCol(int(midX / g.cellW)),
			Y: g.clampRow(int(midY / g.cellH)),
		})
	}
	return cells
}

func (g cellGrid) clampCol(x int) int {
	return clampInt(x, 0, g.cols-1)
}

func (g cellGrid) clampRow(y int) int {
	return clampInt(y, 0, g.rows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
