package components

// ScaleComponent 存储实体级别的缩放因子
// 精灵绘制与碰撞检测使用同一缩放，保证蒙板与画面一致
//
// 球和挡板使用等比缩放（ScaleX == ScaleY）；
// 砖块按行宽独立计算 ScaleX，ScaleY 固定
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，0.2 = 20%）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小，0.2 = 20%）
	ScaleY float64
}
