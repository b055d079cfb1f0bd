package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default configuration: an 800x600 field
// with a 5x11 formation, four shields and ten levels.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        60,
			Height:       40,
			Speed:        4,
			BottomMargin: 20,
			Lives:        3,
			BulletSpeed:  12,
			MaxBullets:   3,
		},
		Formation: FormationConfig{
			Rows:         5,
			Cols:         11,
			EnemyWidth:   40,
			EnemyHeight:  40,
			SpacingH:     20,
			SpacingV:     15,
			OriginX:      100,
			OriginY:      80,
			MoveSpeed:    2,
			DropDistance: 20,
			BulletSpeed:  6,
			MaxBullets:   8,
			ShotAttempts: 50,
		},
		Cadence: CadenceConfig{
			MoveBase:  30,
			MoveStep:  2,
			MoveMin:   10,
			ShootBase: 60,
			ShootStep: 5,
			ShootMin:  20,
		},
		Shields: ShieldConfig{
			Count:     4,
			Width:     80,
			Height:    60,
			BlockSize: 8,
			TopOffset: 150,
			ArchTop:   0.6,
			ArchLeft:  0.3,
			ArchRight: 0.7,
		},
		Explosions: ExplosionConfig{
			Capacity:   20,
			Frames:     8,
			FrameTicks: 4,
		},
		Session: SessionConfig{
			MaxLevel:      10,
			GameOverTicks: 180, // 3 seconds at 60fps
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvadersYAML
}
