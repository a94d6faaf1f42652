package entities

import (
	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// NewCameraEntity 在 focus + 偏移处创建跟随镜头，初始朝向 focus
func NewCameraEntity(em *ecs.EntityManager, tuning config.CameraTuning, focus mgl64.Vec3) ecs.EntityID {
	offset := mgl64.Vec3{tuning.Distance, tuning.Height, tuning.Distance}
	pos := focus.Add(offset)

	transform := components.NewTransform(pos.X(), pos.Y(), pos.Z())
	transform.FaceTowards(focus)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.NameComponent{Name: "camera"})
	ecs.AddComponent(em, id, transform)
	ecs.AddComponent(em, id, &components.CameraComponent{Offset: offset, LookAt: focus})
	return id
}
