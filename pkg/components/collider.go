package components

import "github.com/go-gl/mathgl/mgl64"

// BoxColliderComponent 静态轴对齐盒子碰撞体（关卡地面和方块）
// 盒子中心为实体 TransformComponent.Translation
type BoxColliderComponent struct {
	HalfExtents mgl64.Vec3
}

// BodyColliderComponent 角色身体的碰撞体积（竖直胶囊体）
// 物理系统在水平面上把它近似为边长 2*Radius 的正方形
type BodyColliderComponent struct {
	Radius     float64 // 胶囊半径
	HalfHeight float64 // 圆柱部分半高
	OffsetY    float64 // 胶囊中心相对于实体原点（脚底）的高度
}
