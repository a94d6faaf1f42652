package config

import (
	"errors"
	"testing"
)

func TestParseLevelConfig(t *testing.T) {
	cfg, err := ParseLevelConfig([]byte(`
name: test
ground:
  size: 40
blocks:
  - center: [1, 1, 1]
    halfExtents: [1, 1, 1]
playerSpawn: [0, 0, 0]
enemyGrid:
  archetype: skeleton
  rows: 2
  cols: 3
  spacing: 2
  origin: [5, 0, 5]
`))
	if err != nil {
		t.Fatalf("ParseLevelConfig: %v", err)
	}

	if cfg.Ground.HalfThickness != 0.1 {
		t.Errorf("default halfThickness = %v, want 0.1", cfg.Ground.HalfThickness)
	}
	if cfg.PlayerCharacter != "steve" {
		t.Errorf("default playerCharacter = %q, want steve", cfg.PlayerCharacter)
	}

	positions := cfg.EnemyGrid.Positions()
	if len(positions) != 6 {
		t.Fatalf("expected 6 spawn positions, got %d", len(positions))
	}
	// 行优先: 第二个位置沿 Z 方向偏移
	if positions[1] != [3]float64{5, 0, 7} {
		t.Errorf("positions[1] = %v, want [5 0 7]", positions[1])
	}
	if positions[5] != [3]float64{7, 0, 9} {
		t.Errorf("positions[5] = %v, want [7 0 9]", positions[5])
	}
}

func TestLevelConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing ground", "blocks: []"},
		{"flat block", "ground: {size: 10}\nblocks:\n  - center: [0,0,0]\n    halfExtents: [1,0,1]"},
		{"grid without archetype", "ground: {size: 10}\nenemyGrid: {rows: 1, cols: 1}"},
		{"spawn outside ground", "ground: {size: 10}\nplayerSpawn: [6, 0, 0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelConfig([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRepositoryLevelFile(t *testing.T) {
	cfg, err := LoadLevelConfig("../../data/level.yaml")
	if err != nil {
		t.Fatalf("data/level.yaml should load: %v", err)
	}
	if len(cfg.EnemyGrid.Positions()) != 25 {
		t.Errorf("expected a 5x5 enemy grid, got %d enemies", len(cfg.EnemyGrid.Positions()))
	}
	if len(cfg.Blocks) != 2 {
		t.Errorf("expected 2 blocks, got %d", len(cfg.Blocks))
	}
}
