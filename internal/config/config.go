// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders game.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all tunable parameters of the simulation.
// Distances are in field pixels, durations in ticks.
type InvadersConfig struct {
	Field      FieldConfig     `yaml:"field"`
	Player     PlayerConfig    `yaml:"player"`
	Formation  FormationConfig `yaml:"formation"`
	Cadence    CadenceConfig   `yaml:"cadence"`
	Shields    ShieldConfig    `yaml:"shields"`
	Explosions ExplosionConfig `yaml:"explosions"`
	Session    SessionConfig   `yaml:"session"`
}

// FieldConfig defines the play-field size.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the defender and its bullets.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`         // Pixels per tick while a move is held
	BottomMargin int `yaml:"bottom_margin"` // Gap between defender and field bottom
	Lives        int `yaml:"lives"`
	BulletSpeed  int `yaml:"bullet_speed"`
	MaxBullets   int `yaml:"max_bullets"`
}

// FormationConfig defines the enemy grid, its movement and its bullets.
type FormationConfig struct {
	Rows         int `yaml:"rows"`
	Cols         int `yaml:"cols"`
	EnemyWidth   int `yaml:"enemy_width"`
	EnemyHeight  int `yaml:"enemy_height"`
	SpacingH     int `yaml:"spacing_h"`
	SpacingV     int `yaml:"spacing_v"`
	OriginX      int `yaml:"origin_x"`
	OriginY      int `yaml:"origin_y"`
	MoveSpeed    int `yaml:"move_speed"`
	DropDistance int `yaml:"drop_distance"`
	BulletSpeed  int `yaml:"bullet_speed"`
	MaxBullets   int `yaml:"max_bullets"`
	ShotAttempts int `yaml:"shot_attempts"` // Random picks per shooting cycle
}

// CadenceConfig defines how often the formation marches and shoots.
// Both delays shrink linearly with the level down to a floor.
type CadenceConfig struct {
	MoveBase  int `yaml:"move_base"`
	MoveStep  int `yaml:"move_step"`
	MoveMin   int `yaml:"move_min"`
	ShootBase int `yaml:"shoot_base"`
	ShootStep int `yaml:"shoot_step"`
	ShootMin  int `yaml:"shoot_min"`
}

// ShieldConfig defines the cover blocks and the arch carved into them.
type ShieldConfig struct {
	Count     int     `yaml:"count"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	BlockSize int     `yaml:"block_size"`
	TopOffset int     `yaml:"top_offset"` // Distance from the field bottom to the shield top
	ArchTop   float64 `yaml:"arch_top"`   // Rows strictly below this fraction may be carved
	ArchLeft  float64 `yaml:"arch_left"`
	ArchRight float64 `yaml:"arch_right"`
}

// ExplosionConfig defines the explosion pool and animation.
type ExplosionConfig struct {
	Capacity   int `yaml:"capacity"`
	Frames     int `yaml:"frames"`
	FrameTicks int `yaml:"frame_ticks"`
}

// SessionConfig defines level progression and the game-over screen.
type SessionConfig struct {
	MaxLevel      int `yaml:"max_level"`
	GameOverTicks int `yaml:"game_over_ticks"`
}

// BlockCols returns the number of block columns per shield.
func (s ShieldConfig) BlockCols() int {
	if s.BlockSize <= 0 {
		return 0
	}
	return s.Width / s.BlockSize
}

// BlockRows returns the number of block rows per shield.
func (s ShieldConfig) BlockRows() int {
	if s.BlockSize <= 0 {
		return 0
	}
	return s.Height / s.BlockSize
}

// PlayerY returns the defender's fixed top edge.
func (c InvadersConfig) PlayerY() int {
	return c.Field.Height - c.Player.Height - c.Player.BottomMargin
}

// Validate reports every parameter that would make the simulation unsound.
func (c InvadersConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.lives", c.Player.Lives)
	positive("player.bullet_speed", c.Player.BulletSpeed)
	positive("player.max_bullets", c.Player.MaxBullets)
	positive("formation.rows", c.Formation.Rows)
	positive("formation.cols", c.Formation.Cols)
	positive("formation.enemy_width", c.Formation.EnemyWidth)
	positive("formation.enemy_height", c.Formation.EnemyHeight)
	positive("formation.move_speed", c.Formation.MoveSpeed)
	positive("formation.bullet_speed", c.Formation.BulletSpeed)
	positive("formation.max_bullets", c.Formation.MaxBullets)
	positive("formation.shot_attempts", c.Formation.ShotAttempts)
	positive("cadence.move_min", c.Cadence.MoveMin)
	positive("cadence.shoot_min", c.Cadence.ShootMin)
	positive("shields.block_size", c.Shields.BlockSize)
	positive("explosions.capacity", c.Explosions.Capacity)
	positive("explosions.frames", c.Explosions.Frames)
	positive("explosions.frame_ticks", c.Explosions.FrameTicks)
	positive("session.max_level", c.Session.MaxLevel)

	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player.speed must not be negative, got %d", c.Player.Speed))
	}
	if c.Formation.DropDistance < 0 {
		errs = append(errs, fmt.Errorf("formation.drop_distance must not be negative, got %d", c.Formation.DropDistance))
	}
	if c.Shields.Count < 0 {
		errs = append(errs, fmt.Errorf("shields.count must not be negative, got %d", c.Shields.Count))
	}
	if c.Session.GameOverTicks < 0 {
		errs = append(errs, fmt.Errorf("session.game_over_ticks must not be negative, got %d", c.Session.GameOverTicks))
	}
	if c.Player.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("player.width %d exceeds field.width %d", c.Player.Width, c.Field.Width))
	}
	if c.Shields.ArchLeft > c.Shields.ArchRight {
		errs = append(errs, fmt.Errorf("shields.arch_left %.2f is right of arch_right %.2f", c.Shields.ArchLeft, c.Shields.ArchRight))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid invaders config: %w", errors.Join(errs...))
	}
	return nil
}
