package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseInvaders(GetDefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultInvadersConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadInvadersFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadInvaders("")
	require.NoError(t, err)
	assert.Equal(t, DefaultInvadersConfig(), cfg)
}

func TestLoadInvadersUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "invaders.yaml"), "player:\n  lives: 7\n")

	cfg, err := LoadInvaders("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Player.Lives)
	assert.Equal(t, 800, cfg.Field.Width, "unset fields keep defaults")
}

func TestLoadInvadersSkipsInvalidUserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "invaders.yaml"), "formation:\n  rows: 0\n")

	cfg, err := LoadInvaders("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Formation.Rows)
}

func TestLoadInvadersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "formation:\n  rows: 2\n  cols: 3\nsession:\n  max_level: 4\n")

	cfg, err := LoadInvaders(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Formation.Rows)
	assert.Equal(t, 3, cfg.Formation.Cols)
	assert.Equal(t, 4, cfg.Session.MaxLevel)
	assert.Equal(t, 12, cfg.Player.BulletSpeed)
}

func TestLoadInvadersCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadInvaders(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "field: [not, a, map")
	_, err = LoadInvaders(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "field:\n  width: -1\nexplosions:\n  frames: 0\n")
	_, err = LoadInvaders(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field.width")
	assert.Contains(t, err.Error(), "explosions.frames")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*InvadersConfig)
		wantErr string
	}{
		{"defaults", func(*InvadersConfig) {}, ""},
		{"zero rows", func(c *InvadersConfig) { c.Formation.Rows = 0 }, "formation.rows"},
		{"negative speed", func(c *InvadersConfig) { c.Player.Speed = -1 }, "player.speed"},
		{"wide player", func(c *InvadersConfig) { c.Player.Width = 900 }, "player.width"},
		{"inverted arch", func(c *InvadersConfig) { c.Shields.ArchLeft = 0.8 }, "arch_left"},
		{"no shields is fine", func(c *InvadersConfig) { c.Shields.Count = 0 }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestDerivedGeometry(t *testing.T) {
	cfg := DefaultInvadersConfig()

	assert.Equal(t, 540, cfg.PlayerY())
	assert.Equal(t, 10, cfg.Shields.BlockCols())
	assert.Equal(t, 7, cfg.Shields.BlockRows())
}
