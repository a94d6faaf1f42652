package config

import (
	"errors"
	"strings"
	"testing"
)

const validCharacterYAML = `
id: dummy
scene:
  nodes:
    - name: Root
    - name: Anim
      parent: Root
      animationPlayer: true
clips:
  - { name: Idle_A, duration: 1 }
  - { name: Idle_B, duration: 1 }
  - { name: Walk, duration: 1 }
  - { name: Run, duration: 0.5 }
roles:
  idle: Idle_B
  walk: Walk
  run: Run
  idleVariants: [Idle_A, Idle_B]
`

func TestParseCharacterConfig(t *testing.T) {
	cfg, err := ParseCharacterConfig([]byte(validCharacterYAML))
	if err != nil {
		t.Fatalf("ParseCharacterConfig: %v", err)
	}
	if got := cfg.ClipIndex("Run"); got != 3 {
		t.Errorf("ClipIndex(Run) = %d, want 3", got)
	}
	if got := cfg.ClipIndex("Jump"); got != -1 {
		t.Errorf("ClipIndex(Jump) = %d, want -1", got)
	}
	if got := cfg.AnimationPlayerNode(); got != "Anim" {
		t.Errorf("AnimationPlayerNode() = %q, want Anim", got)
	}
	if cfg.Body.Radius != 0.6 {
		t.Errorf("default body radius = %v, want 0.6", cfg.Body.Radius)
	}
}

func TestParseCharacterConfigDefaultsIdleVariants(t *testing.T) {
	yamlText := strings.Replace(validCharacterYAML, "  idleVariants: [Idle_A, Idle_B]\n", "", 1)
	cfg, err := ParseCharacterConfig([]byte(yamlText))
	if err != nil {
		t.Fatalf("ParseCharacterConfig: %v", err)
	}
	if len(cfg.Roles.IdleVariants) != 1 || cfg.Roles.IdleVariants[0] != "Idle_B" {
		t.Errorf("IdleVariants = %v, want [Idle_B]", cfg.Roles.IdleVariants)
	}
}

func TestCharacterConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
	}{
		{"unknown walk clip", [2]string{"walk: Walk", "walk: Stroll"}},
		{"idle not among variants", [2]string{"idleVariants: [Idle_A, Idle_B]", "idleVariants: [Idle_A]"}},
		{"no animation player", [2]string{"animationPlayer: true", "animationPlayer: false"}},
		{"unknown parent", [2]string{"parent: Root", "parent: Hips"}},
		{"zero duration", [2]string{"{ name: Run, duration: 0.5 }", "{ name: Run, duration: 0 }"}},
		{"missing id", [2]string{"id: dummy", "id: \"\""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yamlText := strings.Replace(validCharacterYAML, tt.replace[0], tt.replace[1], 1)
			_, err := ParseCharacterConfig([]byte(yamlText))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRepositoryCharacterFiles(t *testing.T) {
	for _, id := range []string{"steve", "skeleton", "demon"} {
		cfg, err := LoadCharacterConfig("../../data/characters/" + id + ".yaml")
		if err != nil {
			t.Errorf("%s: %v", id, err)
			continue
		}
		if cfg.ID != id {
			t.Errorf("%s: id field = %q", id, cfg.ID)
		}
	}
}
