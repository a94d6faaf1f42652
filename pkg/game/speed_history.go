package game

// SpeedHistory 玩家速度采样，用于调试曲线
//
// 每经过 interval 秒记录一个样本，最多保留 capacity 个，旧样本被挤出。
type SpeedHistory struct {
	samples   []float64
	capacity  int
	interval  float64
	sinceLast float64
}

// NewSpeedHistory 创建采样器
func NewSpeedHistory(capacity int, interval float64) *SpeedHistory {
	if capacity <= 0 {
		capacity = 1
	}
	return &SpeedHistory{
		samples:  make([]float64, 0, capacity),
		capacity: capacity,
		interval: interval,
	}
}

// Log 累计时间，超过采样间隔时记录 speed
func (h *SpeedHistory) Log(speed, dt float64) {
	if h.sinceLast <= h.interval {
		h.sinceLast += dt
		return
	}
	h.sinceLast = 0
	if len(h.samples) == h.capacity {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:len(h.samples)-1]
	}
	h.samples = append(h.samples, speed)
}

// Samples 返回样本（从旧到新），调用方不能修改
func (h *SpeedHistory) Samples() []float64 {
	return h.samples
}

// Capacity 返回最大样本数
func (h *SpeedHistory) Capacity() int {
	return h.capacity
}

// Reset 清空样本
func (h *SpeedHistory) Reset() {
	h.samples = h.samples[:0]
	h.sinceLast = 0
}
