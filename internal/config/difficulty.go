package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a flag value into a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// MoveDelay returns the ticks between formation steps at the given level.
func (c CadenceConfig) MoveDelay(level int) int {
	return stepDown(c.MoveBase, c.MoveStep, c.MoveMin, level)
}

// ShootDelay returns the ticks between enemy shooting cycles at the given level.
func (c CadenceConfig) ShootDelay(level int) int {
	return stepDown(c.ShootBase, c.ShootStep, c.ShootMin, level)
}

// stepDown computes max(min, base - step*level).
func stepDown(base, step, min, level int) int {
	v := base - step*level
	if v < min {
		return min
	}
	return v
}
