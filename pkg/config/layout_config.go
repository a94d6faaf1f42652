package config

// 布局配置常量
// 本文件定义调试俯视图的窗口尺寸和绘制参数

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 960
	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 640

	// WindowTitle 窗口标题
	WindowTitle = "hunt3d"

	// PixelsPerUnit 俯视图中 1 个世界单位对应的像素数
	PixelsPerUnit = 14.0

	// HeadingTickLength 角色朝向短线的长度（世界单位）
	HeadingTickLength = 1.5

	// SpeedPlotX/Y/Width/Height 速度曲线面板的位置和尺寸（像素）
	SpeedPlotX      = 16
	SpeedPlotY      = GameWindowHeight - SpeedPlotHeight - 16
	SpeedPlotWidth  = 300
	SpeedPlotHeight = 120
)

// WorldToScreen 把世界 XZ 坐标转换为以 focus 为中心的屏幕坐标
// 世界 +X 向右，+Z 向下
func WorldToScreen(x, z, focusX, focusZ float64) (float64, float64) {
	sx := GameWindowWidth/2 + (x-focusX)*PixelsPerUnit
	sy := GameWindowHeight/2 + (z-focusZ)*PixelsPerUnit
	return sx, sy
}
