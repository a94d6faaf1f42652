package config

import "testing"

func TestWorldToScreen(t *testing.T) {
	tests := []struct {
		name         string
		x, z, fx, fz float64
		wantX, wantY float64
	}{
		{"焦点在屏幕中心", 5, -3, 5, -3, GameWindowWidth / 2, GameWindowHeight / 2},
		{"右下方", 1, 2, 0, 0, GameWindowWidth/2 + PixelsPerUnit, GameWindowHeight/2 + 2*PixelsPerUnit},
		{"左上方", -2, -1, 0, 0, GameWindowWidth/2 - 2*PixelsPerUnit, GameWindowHeight/2 - PixelsPerUnit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := WorldToScreen(tt.x, tt.z, tt.fx, tt.fz)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("WorldToScreen = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
