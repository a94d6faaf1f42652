package components

import "github.com/decker502/hunt3d/pkg/ecs"

// AnimationLinkComponent 角色根实体到动画播放器实体的链接
//
// 场景节点树异步生成，播放器实体出现的时机晚于角色本身。
// AnimationLinkSystem 找到播放器后一次性添加本组件，之后不再修改；
// 组件存在即表示"已链接"。这是非拥有关系：播放器实体归场景节点树所有。
type AnimationLinkComponent struct {
	Player ecs.EntityID
}
