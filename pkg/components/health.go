package components

// HealthComponent 存储实体的生命值信息
type HealthComponent struct {
	Current float64 // 当前生命值
	Max     float64 // 最大生命值
}

// IsDead 生命值是否耗尽
func (h *HealthComponent) IsDead() bool {
	return h.Current <= 0
}

// ContactDamageComponent 接触伤害
// 敌人与玩家的水平距离小于 Range 时，每秒对玩家造成 DamagePerSecond 点伤害
type ContactDamageComponent struct {
	Range           float64
	DamagePerSecond float64
}
