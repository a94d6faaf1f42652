package systems

import (
	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// ChaseSystem 敌人追逐 AI
//
// 追逐目标是唯一的玩家实体（查询结果按实体ID排序，取第一个）。
// 没有玩家时本帧什么都不做。
//
// 距离分段（水平距离 d）:
//   - d > FarDistance:                   加速度 FarAcceleration，Fast = false
//   - NearDistance < d <= FarDistance:   加速度 NearAcceleration，Fast = true
//   - d <= NearDistance:                 加速度 = -speed（刹车）
type ChaseSystem struct {
	entityManager *ecs.EntityManager
	tuning        config.ChaseTuning
}

// NewChaseSystem 创建追逐系统
func NewChaseSystem(em *ecs.EntityManager, tuning config.ChaseTuning) *ChaseSystem {
	return &ChaseSystem{
		entityManager: em,
		tuning:        tuning,
	}
}

// Update 为每个追逐者设置朝向和加速度
func (s *ChaseSystem) Update(deltaTime float64) {
	target, ok := s.findTarget()
	if !ok {
		return
	}

	chasers := ecs.GetEntitiesWith3[*components.ChaseComponent, *components.TransformComponent, *components.MovableComponent](s.entityManager)
	for _, id := range chasers {
		chase, _ := ecs.GetComponent[*components.ChaseComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		movable, _ := ecs.GetComponent[*components.MovableComponent](s.entityManager, id)

		switch chase.Behavior {
		case components.ChaseFollowsTarget:
			transform.FaceTowards(target)
			s.Steer(movable, components.PlanarDistance(transform.Translation, target))
		case components.ChasePassive:
			// 原地不动，保留上一帧的加速度
		}
	}
}

// Steer 按距离分段设置加速度，是 d 的纯函数（刹车段依赖当前速度）
func (s *ChaseSystem) Steer(m *components.MovableComponent, distance float64) {
	switch {
	case distance > s.tuning.FarDistance:
		m.Acceleration = s.tuning.FarAcceleration
		m.Fast = false
	case distance > s.tuning.NearDistance:
		m.Acceleration = s.tuning.NearAcceleration
		m.Fast = true
	default:
		m.Acceleration = -m.Speed
	}
}

func (s *ChaseSystem) findTarget() (mgl64.Vec3, bool) {
	players := ecs.GetEntitiesWith2[*components.PlayerTag, *components.TransformComponent](s.entityManager)
	if len(players) == 0 {
		return mgl64.Vec3{}, false
	}
	transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, players[0])
	return transform.Translation, true
}
