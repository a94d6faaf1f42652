package utils

// 缓动函数
//
// 输入进度 t 会先被截断到 [0, 1]，返回值同样在 [0, 1] 内。

// Clamp01 把 t 截断到 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseOutQuad 二次方缓出：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}
