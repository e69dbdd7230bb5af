package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/orbitgizmo/internal/logging"
	"github.com/philipparndt/orbitgizmo/pkg/config"
	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
	"github.com/philipparndt/orbitgizmo/version"
)

var (
	configPath   string
	flagUpAxis   string
	flagMode     string
	flagDiameter float64
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "gizmo",
	Short: "Inspect and exercise a 3D orientation gizmo",
	Long: `gizmo computes what an orientation gizmo shows for a camera orientation,
resolves screen points against it, renders it to PNG and replays input scripts
through the interaction engine.`,
	Version:      version.GetFullVersion(),
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the gizmo config file")
	rootCmd.PersistentFlags().StringVar(&flagUpAxis, "up-axis", "", "Up axis convention (y-up or z-up)")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Interaction mode (full, orbit-only, snap-only, display-only)")
	rootCmd.PersistentFlags().Float64Var(&flagDiameter, "diameter", 0, "Gizmo diameter in pixels")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings reads the config file (if present) and applies flag overrides
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("up-axis") {
		cfg.UpAxis = flagUpAxis
	}
	if flags.Changed("mode") {
		cfg.InteractionMode = flagMode
	}
	if flags.Changed("diameter") {
		cfg.Diameter = flagDiameter
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger() logging.Logger {
	return logging.New("gizmo", flagDebug)
}

// orientationFlags binds --yaw, --pitch, --roll and --view to o
type orientationFlags struct {
	o    gizmo.Orientation
	view string
}

func (f *orientationFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.o.Yaw, "yaw", 0, "Camera yaw in degrees")
	cmd.Flags().Float64Var(&f.o.Pitch, "pitch", 0, "Camera pitch in degrees")
	cmd.Flags().Float64Var(&f.o.Roll, "roll", 0, "Camera roll in degrees")
	cmd.Flags().StringVar(&f.view, "view", "", "Start from a preset view instead of yaw/pitch/roll")
}

func (f *orientationFlags) resolve(up gizmo.UpAxis) (gizmo.Orientation, error) {
	if f.view == "" {
		return f.o, nil
	}
	v, err := gizmo.ParsePresetView(f.view)
	if err != nil {
		return gizmo.Orientation{}, err
	}
	return gizmo.PresetViewToOrientation(v, up), nil
}

func upAxisOf(cfg config.Config) gizmo.UpAxis {
	up, _ := gizmo.ParseUpAxis(cfg.UpAxis)
	return up
}
