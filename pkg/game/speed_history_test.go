package game

import "testing"

func TestSpeedHistory_Interval(t *testing.T) {
	h := NewSpeedHistory(100, 0.1)

	// 0.05 * 3 = 0.15 > 0.1，第四帧才记录
	for i := 0; i < 3; i++ {
		h.Log(1, 0.05)
	}
	if n := len(h.Samples()); n != 0 {
		t.Fatalf("samples after 3 short frames = %d, want 0", n)
	}
	h.Log(7, 0.05)
	if got := h.Samples(); len(got) != 1 || got[0] != 7 {
		t.Fatalf("samples = %v, want [7]", got)
	}
}

func TestSpeedHistory_Capacity(t *testing.T) {
	h := NewSpeedHistory(3, 0)
	// interval 0：每隔一帧记录一次（累计帧 + 记录帧）
	for i := 1; i <= 10; i++ {
		h.Log(float64(i), 1)
	}
	got := h.Samples()
	want := []float64{6, 8, 10}
	if len(got) != len(want) {
		t.Fatalf("samples = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("samples = %v, want %v", got, want)
			break
		}
	}

	h.Reset()
	if len(h.Samples()) != 0 {
		t.Error("Reset should drop all samples")
	}
}
