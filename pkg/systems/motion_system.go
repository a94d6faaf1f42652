package systems

import (
	"math"

	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// MotionSystem 运动积分系统
//
// 每帧对所有带 MovableComponent 的实体：
//  1. speed += acceleration*dt，并限制在 ±SpeedCap() 内
//  2. 失速吸附：|speed| < StallSpeed 且 |acceleration| < StallAcceleration 时两者都归零
//  3. 否则沿 Heading 计算位移：有角色控制器的写入控制器输入槽（未着地时叠加下落位移），
//     没有的直接修改 TransformComponent
//
// 加速度和 Fast 由 PlayerInputSystem / ChaseSystem 在本系统之前写入。
type MotionSystem struct {
	entityManager *ecs.EntityManager
	tuning        config.MotionTuning
}

// NewMotionSystem 创建运动积分系统
func NewMotionSystem(em *ecs.EntityManager, tuning config.MotionTuning) *MotionSystem {
	return &MotionSystem{
		entityManager: em,
		tuning:        tuning,
	}
}

// Update 积分一帧
func (s *MotionSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.MovableComponent, *components.TransformComponent](s.entityManager)
	for _, id := range entities {
		movable, _ := ecs.GetComponent[*components.MovableComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		if !s.Integrate(movable, deltaTime) {
			continue
		}

		displacement := transform.Heading().Mul(movable.Speed * deltaTime)

		if controller, ok := ecs.GetComponent[*components.KinematicControllerComponent](s.entityManager, id); ok {
			if !controller.Grounded {
				displacement = displacement.Add(mgl64.Vec3{0, -s.tuning.FallSpeed * deltaTime, 0})
			}
			controller.SetDesired(displacement)
			continue
		}

		transform.Translation = transform.Translation.Add(displacement)
	}
}

// Integrate 更新速度并执行失速吸附
//
// 返回 false 表示本帧被吸附为静止，不产生位移。
func (s *MotionSystem) Integrate(m *components.MovableComponent, deltaTime float64) bool {
	limit := m.SpeedCap()
	m.Speed = clamp(m.Speed+m.Acceleration*deltaTime, -limit, limit)

	if math.Abs(m.Speed) < s.tuning.StallSpeed && math.Abs(m.Acceleration) < s.tuning.StallAcceleration {
		m.Speed = 0
		m.Acceleration = 0
		return false
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
