package components

// ChaseBehavior 敌人的追逐行为类型（封闭集合，由 ChaseSystem 用 switch 分派）
type ChaseBehavior int

const (
	// ChaseFollowsTarget 朝目标移动并在近距离刹车
	ChaseFollowsTarget ChaseBehavior = iota
	// ChasePassive 不做任何决策
	ChasePassive
)

// String 返回行为名称，与配置文件中的写法一致
func (b ChaseBehavior) String() string {
	switch b {
	case ChaseFollowsTarget:
		return "follow"
	case ChasePassive:
		return "passive"
	default:
		return "unknown"
	}
}

// ParseChaseBehavior 解析配置文件中的行为名称
func ParseChaseBehavior(s string) (ChaseBehavior, bool) {
	switch s {
	case "follow", "":
		return ChaseFollowsTarget, true
	case "passive", "none":
		return ChasePassive, true
	default:
		return ChasePassive, false
	}
}

// ChaseComponent 标记受 AI 控制的实体
type ChaseComponent struct {
	Behavior ChaseBehavior
}
