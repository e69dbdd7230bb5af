package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
)

var (
	viewAxis     string
	viewNegative bool
)

var viewCmd = &cobra.Command{
	Use:   "view [name]",
	Short: "Show preset view orientations",
	Long: `Without arguments, list every preset view. With a name, print its orientation.
With --axis, print the view a click on that axis arm snaps to.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVar(&viewAxis, "axis", "", "Axis arm (x, y or z)")
	viewCmd.Flags().BoolVar(&viewNegative, "negative", false, "Use the negative arm of --axis")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	up := upAxisOf(cfg)

	if viewAxis != "" {
		axis, err := gizmo.ParseAxis(viewAxis)
		if err != nil {
			return err
		}
		view, ok := gizmo.AxisToPresetView(axis, !viewNegative, up)
		if !ok {
			return fmt.Errorf("no preset view for axis %s", axis)
		}
		fmt.Printf("%s -> %s %s\n", axis, view, gizmo.PresetViewToOrientation(view, up))
		return nil
	}

	views := gizmo.PresetViews
	if len(args) == 1 {
		v, err := gizmo.ParsePresetView(args[0])
		if err != nil {
			return err
		}
		views = []gizmo.PresetView{v}
	}
	for _, v := range views {
		fmt.Printf("%-8s %s\n", v, gizmo.PresetViewToOrientation(v, up))
	}
	return nil
}
