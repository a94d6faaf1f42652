package components

import "github.com/go-gl/mathgl/mgl64"

// CameraComponent 跟随镜头
// 镜头每帧朝向玩家，并把位置向 玩家位置 + Offset 插值
type CameraComponent struct {
	// Offset 相对于跟随目标的期望偏移
	Offset mgl64.Vec3

	// LookAt 当前注视点（世界坐标）
	LookAt mgl64.Vec3
}
