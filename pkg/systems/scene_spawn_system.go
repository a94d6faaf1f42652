package systems

import (
	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/decker502/hunt3d/pkg/game"
	"github.com/decker502/hunt3d/pkg/logger"
)

// SceneSource 场景资源查询接口，由 game.ResourceManager 实现
type SceneSource interface {
	IsLoadedWithDependencies(h components.AssetHandle) bool
	Scene(h components.AssetHandle) (*game.SceneAsset, bool)
}

// SceneSpawnSystem 在场景资源加载完成后把节点树实例化为子实体
//
// 承载动画播放器的节点会得到 AnimationPlayerComponent，
// 它出现的时间晚于角色根实体，由 AnimationLinkSystem 随后建立链接。
type SceneSpawnSystem struct {
	entityManager *ecs.EntityManager
	scenes        SceneSource
}

// NewSceneSpawnSystem 创建场景实例化系统
func NewSceneSpawnSystem(em *ecs.EntityManager, scenes SceneSource) *SceneSpawnSystem {
	return &SceneSpawnSystem{
		entityManager: em,
		scenes:        scenes,
	}
}

// Update 实例化所有已就绪的场景
func (s *SceneSpawnSystem) Update(deltaTime float64) {
	roots := ecs.GetEntitiesWith2[*components.SceneInstanceComponent, *components.HierarchyComponent](s.entityManager)
	for _, root := range roots {
		instance, _ := ecs.GetComponent[*components.SceneInstanceComponent](s.entityManager, root)
		if instance.Spawned || !s.scenes.IsLoadedWithDependencies(instance.Scene) {
			continue
		}
		scene, ok := s.scenes.Scene(instance.Scene)
		if !ok {
			continue
		}

		count := s.spawn(root, scene)
		instance.Spawned = true
		logger.Log.WithField("entity", root).Debugf("[SceneSpawnSystem] 场景 %s 实例化完成: %d 个节点", scene.Character, count)
	}
}

func (s *SceneSpawnSystem) spawn(root ecs.EntityID, scene *game.SceneAsset) int {
	nodes := make(map[string]ecs.EntityID, len(scene.Nodes))
	for _, node := range scene.Nodes {
		parent := root
		if node.Parent != "" {
			if p, ok := nodes[node.Parent]; ok {
				parent = p
			}
		}

		id := s.entityManager.CreateEntity()
		ecs.AddComponent(s.entityManager, id, &components.SceneNodeComponent{Name: node.Name})
		ecs.AddComponent(s.entityManager, id, &components.HierarchyComponent{Parent: parent})
		if node.AnimationPlayer {
			ecs.AddComponent(s.entityManager, id, &components.AnimationPlayerComponent{Rate: 1})
		}
		nodes[node.Name] = id

		if h, ok := ecs.GetComponent[*components.HierarchyComponent](s.entityManager, parent); ok {
			h.Children = append(h.Children, id)
		}
	}
	return len(nodes)
}
