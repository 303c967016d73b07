package components

// PaddleComponent 挡板的专属状态
type PaddleComponent struct {
	// Speed 水平移动速度（像素/秒），由左右方向键驱动
	Speed float64
}
