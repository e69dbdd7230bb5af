package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/philipparndt/orbitgizmo/pkg/geometry"
	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
)

var (
	hitOrientation orientationFlags
	hitTolerance   float64
)

var hitTestCmd = &cobra.Command{
	Use:   "hittest <x> <y>",
	Short: "Resolve a widget point to a gizmo region",
	Args:  cobra.ExactArgs(2),
	RunE:  runHitTest,
}

func init() {
	rootCmd.AddCommand(hitTestCmd)
	hitOrientation.register(hitTestCmd)
	hitTestCmd.Flags().Float64Var(&hitTolerance, "tolerance", gizmo.DefaultTolerance, "Hit tolerance in pixels")
}

func runHitTest(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid x %q: %w", args[0], err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid y %q: %w", args[1], err)
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	up := upAxisOf(cfg)
	o, err := hitOrientation.resolve(up)
	if err != nil {
		return err
	}

	layout := gizmo.LayoutForDiameter(cfg.Diameter, up)
	layout.Tolerance = hitTolerance
	hit := gizmo.HitTest(geometry.NewPoint2(x, y), o, layout)

	fmt.Printf("Point: (%.1f, %.1f)\n", x, y)
	fmt.Printf("Region: %s\n", hit.Type)
	if hit.IsAxis() {
		view, _ := gizmo.AxisToPresetView(hit.Axis, hit.Positive(), up)
		fmt.Printf("Axis: %s (%s), snaps to %s\n", hit.Axis, hit.Part, view)
	}
	if hit.Type != gizmo.RegionNone {
		fmt.Printf("Distance: %.2f px\n", hit.Distance)
	}
	return nil
}
