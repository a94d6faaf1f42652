package systems

import (
	"math"

	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/ecs"
)

// CameraSystem 跟随镜头
// 镜头注视玩家，位置每帧以 dt 为插值系数向 玩家位置 + Offset 靠近。
type CameraSystem struct {
	entityManager *ecs.EntityManager
}

// NewCameraSystem 创建镜头系统
func NewCameraSystem(em *ecs.EntityManager) *CameraSystem {
	return &CameraSystem{entityManager: em}
}

// Update 更新所有镜头
func (cs *CameraSystem) Update(dt float64) {
	players := ecs.GetEntitiesWith2[*components.PlayerTag, *components.TransformComponent](cs.entityManager)
	if len(players) == 0 {
		return
	}
	player, _ := ecs.GetComponent[*components.TransformComponent](cs.entityManager, players[0])
	focus := player.Translation

	t := math.Min(dt, 1)
	cameras := ecs.GetEntitiesWith2[*components.CameraComponent, *components.TransformComponent](cs.entityManager)
	for _, id := range cameras {
		camera, _ := ecs.GetComponent[*components.CameraComponent](cs.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](cs.entityManager, id)

		target := focus.Add(camera.Offset)
		transform.Translation = transform.Translation.Add(target.Sub(transform.Translation).Mul(t))
		transform.FaceTowards(focus)
		camera.LookAt = focus
	}
}
