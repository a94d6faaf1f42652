package entities

import (
	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// NewLevelEntities 生成地面和静态方块，返回的第一个实体是地面
func NewLevelEntities(em *ecs.EntityManager, level *config.LevelConfig) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(level.Blocks)+1)

	// 地面以原点为中心，上表面在 y = HalfThickness
	half := level.Ground.Size / 2
	ids = append(ids, newBox(em, "ground", mgl64.Vec3{}, mgl64.Vec3{half, level.Ground.HalfThickness, half}))

	for _, block := range level.Blocks {
		ids = append(ids, newBox(em, "block",
			mgl64.Vec3{block.Center[0], block.Center[1], block.Center[2]},
			mgl64.Vec3{block.HalfExtents[0], block.HalfExtents[1], block.HalfExtents[2]},
		))
	}
	return ids
}

func newBox(em *ecs.EntityManager, name string, center, halfExtents mgl64.Vec3) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.NameComponent{Name: name})
	ecs.AddComponent(em, id, components.NewTransform(center.X(), center.Y(), center.Z()))
	ecs.AddComponent(em, id, &components.BoxColliderComponent{HalfExtents: halfExtents})
	return id
}
