package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
	"github.com/philipparndt/orbitgizmo/pkg/interaction"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", fileName)

	cfg := Default()
	cfg.UpAxis = "z-up"
	cfg.InteractionMode = "snap-only"
	cfg.OrbitSpeed = 2.5
	cfg.Diameter = 96
	cfg.InitialView = "top"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), fileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"upAxis": "z-up"}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "z-up", cfg.UpAxis)
	assert.Equal(t, Default().OrbitSpeed, cfg.OrbitSpeed)
	assert.Equal(t, Default().Diameter, cfg.Diameter)
	assert.True(t, cfg.ConstrainPitch)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"upAxis": `), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse")

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"interactionMode": "spin"}`), 0o644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "invalid interaction mode")
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"up axis", func(c *Config) { c.UpAxis = "x-up" }},
		{"mode", func(c *Config) { c.InteractionMode = "" }},
		{"zero speed", func(c *Config) { c.OrbitSpeed = 0 }},
		{"negative speed", func(c *Config) { c.OrbitSpeed = -1 }},
		{"negative diameter", func(c *Config) { c.Diameter = -10 }},
		{"view", func(c *Config) { c.InitialView = "isometric" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
			assert.Error(t, cfg.Save(filepath.Join(t.TempDir(), fileName)))
		})
	}
}

func TestToEngine(t *testing.T) {
	cfg := Default()
	cfg.UpAxis = "z"
	cfg.InteractionMode = "Orbit-Only"
	cfg.Disabled = true

	e := cfg.ToEngine()
	assert.Equal(t, interaction.Config{
		UpAxis:         gizmo.ZUp,
		Mode:           interaction.ModeOrbitOnly,
		OrbitSpeed:     1,
		ConstrainPitch: true,
		Diameter:       DefaultDiameter,
		Disabled:       true,
	}, e)
}

func TestStartOrientation(t *testing.T) {
	cfg := Default()
	cfg.InitialView = "right"
	assert.Equal(t, gizmo.Orientation{Yaw: 90}, cfg.StartOrientation())

	cfg.InitialView = ""
	assert.Equal(t, gizmo.Orientation{}, cfg.StartOrientation())
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	assert.Equal(t, fileName, filepath.Base(p))
	assert.Equal(t, appDir, filepath.Base(filepath.Dir(p)))
}
