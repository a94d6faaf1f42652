package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// 世界坐标系约定：Y 轴向上，角色模型局部坐标的"前方"为 -Z。
var (
	// WorldUp 世界坐标系的上方向
	WorldUp = mgl64.Vec3{0, 1, 0}
	// localForward 模型局部坐标中的 forward 方向
	localForward = mgl64.Vec3{0, 0, -1}
)

// TransformComponent 存储实体在世界中的位置、旋转和缩放
//
// 移动系统沿 -Forward()（即 Heading()）推进实体，
// 追逐系统通过 FaceTowards 只绕 Y 轴调整朝向。
type TransformComponent struct {
	// Translation 世界坐标位置
	Translation mgl64.Vec3

	// Rotation 世界旋转（单位四元数）
	Rotation mgl64.Quat

	// Scale 缩放，仅供渲染使用
	Scale mgl64.Vec3
}

// NewTransform 在指定位置创建一个无旋转、单位缩放的变换
func NewTransform(x, y, z float64) *TransformComponent {
	return &TransformComponent{
		Translation: mgl64.Vec3{x, y, z},
		Rotation:    mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

// Forward 返回旋转后的局部 -Z 方向
func (t *TransformComponent) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(localForward)
}

// Heading 返回实体实际前进的方向，等于 -Forward()
func (t *TransformComponent) Heading() mgl64.Vec3 {
	return t.Forward().Mul(-1)
}

// Yaw 返回 Heading 在 XZ 平面上的角度（弧度），0 表示朝向 +Z
func (t *TransformComponent) Yaw() float64 {
	h := t.Heading()
	return math.Atan2(h.X(), h.Z())
}

// SetYaw 直接设置绕 Y 轴的朝向，丢弃其余旋转分量
func (t *TransformComponent) SetYaw(yaw float64) {
	t.Rotation = mgl64.QuatRotate(yaw, WorldUp)
}

// RotateY 绕世界 Y 轴旋转 angle 弧度
func (t *TransformComponent) RotateY(angle float64) {
	t.Rotation = mgl64.QuatRotate(angle, WorldUp).Mul(t.Rotation).Normalize()
}

// FaceTowards 让 Heading 指向 target，只考虑水平分量（忽略 target 的 Y）
//
// 返回:
//   - bool: target 与当前位置水平重合时无法确定朝向，返回 false 且不修改旋转
func (t *TransformComponent) FaceTowards(target mgl64.Vec3) bool {
	dx := target.X() - t.Translation.X()
	dz := target.Z() - t.Translation.Z()
	if dx*dx+dz*dz < 1e-12 {
		return false
	}
	t.SetYaw(math.Atan2(dx, dz))
	return true
}

// PlanarDistance 计算两点在 XZ 平面上的距离
func PlanarDistance(a, b mgl64.Vec3) float64 {
	dx := a.X() - b.X()
	dz := a.Z() - b.Z()
	return math.Sqrt(dx*dx + dz*dz)
}
