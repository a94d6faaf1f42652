package components

// AssetHandle 资源句柄，由 game.ResourceManager 分配
// 组件只保存句柄，资源本身（场景节点树、动画片段）由资源管理器持有
type AssetHandle uint32

// NoAsset 表示空句柄
const NoAsset AssetHandle = 0

// IsValid 句柄是否非空
func (h AssetHandle) IsValid() bool {
	return h != NoAsset
}
