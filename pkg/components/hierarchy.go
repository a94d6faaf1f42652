package components

import "github.com/decker502/hunt3d/pkg/ecs"

// HierarchyComponent 父子关系
// 角色根实体的场景节点（骨骼根、动画播放器所在节点等）作为子实体挂在其下
type HierarchyComponent struct {
	Parent   ecs.EntityID
	Children []ecs.EntityID
}

// SceneInstanceComponent 待实例化的场景
// SceneSpawnSystem 在场景资源加载完成后生成节点树并置 Spawned = true
type SceneInstanceComponent struct {
	Scene   AssetHandle
	Spawned bool
}

// SceneNodeComponent 场景节点名称（来自角色描述文件）
type SceneNodeComponent struct {
	Name string
}
