package components

// PlayerTag 标记玩家角色（全局唯一）
type PlayerTag struct{}

// EnemyTag 标记敌人
type EnemyTag struct{}

// NameComponent 实体的显示名称，仅用于日志和调试绘制
type NameComponent struct {
	Name string
}
