package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name:        "empty document keeps defaults",
			yamlContent: ``,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Projectile.Speed != DefaultProjectileSpeed {
					t.Errorf("expected projectile speed %v, got %v", DefaultProjectileSpeed, cfg.Projectile.Speed)
				}
				if cfg.Wave.Next != DefaultWaveNext {
					t.Errorf("expected next %d, got %d", DefaultWaveNext, cfg.Wave.Next)
				}
				if !cfg.Simulation.RecycleShots || !cfg.Enemy.ReapEscaped {
					t.Error("expected boolean switches to default to true")
				}
			},
		},
		{
			name: "partial override",
			yamlContent: `
enemy:
  movementSpeed: 120
simulation:
  recycleShots: false
  seed: 99
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Enemy.MovementSpeed != 120 {
					t.Errorf("expected enemy speed 120, got %v", cfg.Enemy.MovementSpeed)
				}
				if cfg.Enemy.HalfWidth != DefaultEnemyHalfWidth {
					t.Errorf("untouched key should keep default, got %v", cfg.Enemy.HalfWidth)
				}
				if cfg.Simulation.RecycleShots {
					t.Error("expected recycleShots false")
				}
				if cfg.Simulation.Seed != 99 {
					t.Errorf("expected seed 99, got %d", cfg.Simulation.Seed)
				}
			},
		},
		{
			name: "explicit zero falls back to default",
			yamlContent: `
timeScale:
  normal: 0
simulation:
  maxDeltaTime: 0
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.TimeScale.Normal != DefaultTimeScaleNormal {
					t.Errorf("expected normal time scale %v, got %v", DefaultTimeScaleNormal, cfg.TimeScale.Normal)
				}
				if cfg.Simulation.MaxDeltaTime != DefaultMaxDeltaTime {
					t.Errorf("expected max delta %v, got %v", DefaultMaxDeltaTime, cfg.Simulation.MaxDeltaTime)
				}
			},
		},
		{
			name: "spawn buffer wider than viewport",
			yamlContent: `
viewport:
  width: 40
enemy:
  spawnBuffer: 50
`,
			wantErr:     true,
			errContains: "spawnBuffer",
		},
		{
			name: "slow faster than normal",
			yamlContent: `
timeScale:
  normal: 1
  slow: 2
`,
			wantErr:     true,
			errContains: "timeScale.slow",
		},
		{
			name: "negative counter",
			yamlContent: `
wave:
  next: -1
`,
			wantErr:     true,
			errContains: "wave.next",
		},
		{
			name: "curr above total",
			yamlContent: `
wave:
  totalEnemies: 2
  curr: 3
`,
			wantErr:     true,
			errContains: "wave.curr",
		},
		{
			name: "negative half size",
			yamlContent: `
projectile:
  halfWidth: -1
`,
			wantErr:     true,
			errContains: "projectile.halfWidth",
		},
		{
			name:        "malformed yaml",
			yamlContent: "viewport: [1, 2",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestDefaultGameConfigIsValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadGameConfigFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("wave:\n  transitionDelay: 1.5\n"), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if cfg.Wave.TransitionDelay != 1.5 {
		t.Errorf("expected transition delay 1.5, got %v", cfg.Wave.TransitionDelay)
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadShippedGameConfig(t *testing.T) {
	path := filepath.Join("..", "..", "data", "game.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("shipped config not found: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("shipped config should load: %v", err)
	}
	if cfg.Player.SpawnY != -300 || cfg.Player.ShotLimit != 3 {
		t.Errorf("unexpected player config %+v", cfg.Player)
	}
	if cfg.Wave.Prev != 1 || cfg.Wave.Curr != 1 || cfg.Wave.Next != 2 {
		t.Errorf("unexpected wave counters %+v", cfg.Wave)
	}
}
