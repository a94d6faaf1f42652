package components

import "github.com/go-gl/mathgl/mgl64"

// KinematicControllerComponent 运动学角色控制器（物理模块的输入/输出槽）
//
// 生命周期（每帧）:
//  1. MotionSystem 写入 DesiredTranslation 并置 HasDesired = true
//  2. PhysicsSystem 读取后与静态碰撞体求解，写回 Grounded / EffectiveTranslation，
//     并清空输入槽
//
// Grounded 在下一帧被 MotionSystem 读取，用于决定是否叠加下落位移。
type KinematicControllerComponent struct {
	// ========== 输入 ==========

	// DesiredTranslation 本帧期望位移（世界坐标）
	DesiredTranslation mgl64.Vec3
	// HasDesired 输入槽是否有数据
	HasDesired bool

	// ========== 设置 ==========

	// Offset 与碰撞体之间保留的间隙
	Offset float64
	// AutostepHeight 可以直接跨上的台阶高度，0 表示不自动上台阶
	AutostepHeight float64
	// SnapToGround 向下吸附到地面的最大距离，0 表示不吸附
	SnapToGround float64

	// ========== 输出（上一次求解的结果） ==========

	// Grounded 是否站在支撑面上
	Grounded bool
	// EffectiveTranslation 碰撞求解后实际产生的位移
	EffectiveTranslation mgl64.Vec3
}

// SetDesired 写入本帧期望位移
func (k *KinematicControllerComponent) SetDesired(translation mgl64.Vec3) {
	k.DesiredTranslation = translation
	k.HasDesired = true
}
