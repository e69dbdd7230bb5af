// Package config reads and writes the gizmo's JSON configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
	"github.com/philipparndt/orbitgizmo/pkg/interaction"
)

const (
	appDir   = "orbitgizmo"
	fileName = "gizmo.json"

	DefaultDiameter = 120.0
)

// Config is the on-disk representation of the widget settings
type Config struct {
	UpAxis          string  `json:"upAxis"`
	InteractionMode string  `json:"interactionMode"`
	OrbitSpeed      float64 `json:"orbitSpeed"`
	ConstrainPitch  bool    `json:"constrainPitch"`
	Diameter        float64 `json:"diameter"`
	Disabled        bool    `json:"disabled"`
	InitialView     string  `json:"initialView,omitempty"`
}

// Default returns the settings used when no file exists
func Default() Config {
	return Config{
		UpAxis:          string(gizmo.YUp),
		InteractionMode: string(interaction.ModeFull),
		OrbitSpeed:      1,
		ConstrainPitch:  true,
		Diameter:        DefaultDiameter,
		InitialView:     string(gizmo.ViewFront),
	}
}

// DefaultPath returns <user config dir>/orbitgizmo/gizmo.json
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, appDir, fileName)
}

// Load reads and validates a config file. Fields missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default()
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the config as indented JSON, creating the directory if needed
func (c Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Validate checks every field
func (c Config) Validate() error {
	if _, err := gizmo.ParseUpAxis(c.UpAxis); err != nil {
		return err
	}
	if _, err := interaction.ParseMode(c.InteractionMode); err != nil {
		return err
	}
	if c.OrbitSpeed <= 0 || math.IsNaN(c.OrbitSpeed) || math.IsInf(c.OrbitSpeed, 0) {
		return fmt.Errorf("orbitSpeed must be a positive number, got %v", c.OrbitSpeed)
	}
	if c.Diameter < 0 || math.IsNaN(c.Diameter) || math.IsInf(c.Diameter, 0) {
		return fmt.Errorf("diameter must be zero or positive, got %v", c.Diameter)
	}
	if c.InitialView != "" {
		if _, err := gizmo.ParsePresetView(c.InitialView); err != nil {
			return err
		}
	}
	return nil
}

// ToEngine converts the file settings into an interaction config. Call
// Validate first; unparsable values fall back to the engine defaults.
func (c Config) ToEngine() interaction.Config {
	up, _ := gizmo.ParseUpAxis(c.UpAxis)
	mode, _ := interaction.ParseMode(c.InteractionMode)
	return interaction.Config{
		UpAxis:         up,
		Mode:           mode,
		OrbitSpeed:     c.OrbitSpeed,
		ConstrainPitch: c.ConstrainPitch,
		Diameter:       c.Diameter,
		Disabled:       c.Disabled,
	}
}

// StartOrientation is the orientation a host shows before any input
func (c Config) StartOrientation() gizmo.Orientation {
	view, err := gizmo.ParsePresetView(c.InitialView)
	if err != nil {
		view = gizmo.ViewFront
	}
	up, _ := gizmo.ParseUpAxis(c.UpAxis)
	return gizmo.PresetViewToOrientation(view, up)
}
