package components

// MovableComponent 可移动实体的运动状态
//
// Acceleration 和 Fast 由上游控制逻辑（玩家输入或追逐 AI）在每帧积分之前写入，
// Speed 由 MotionSystem 积分更新。
//
// 不变量：|Speed| <= MaxSpeed；Fast 为 false 时 |Speed| <= MaxSpeed/2
type MovableComponent struct {
	Acceleration    float64 // 当前加速度（沿 Heading 方向，单位/秒²）
	MaxAcceleration float64 // 玩家输入累加加速度时的上限
	Speed           float64 // 当前速度（单位/秒），负值表示后退
	MaxSpeed        float64 // 快速移动时的速度上限
	Fast            bool    // 是否允许达到 MaxSpeed（否则上限为一半）
}

// SpeedCap 返回当前允许的速度上限
func (m *MovableComponent) SpeedCap() float64 {
	if m.Fast {
		return m.MaxSpeed
	}
	return m.MaxSpeed / 2
}

// IsStopped 速度和加速度都精确为 0
func (m *MovableComponent) IsStopped() bool {
	return m.Speed == 0 && m.Acceleration == 0
}
