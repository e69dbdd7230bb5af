package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
)

var projectOrientation orientationFlags

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Show where each axis arm lands on screen",
	Long:  "Project the six axis arms for an orientation and list them back to front, the order they are painted in.",
	Args:  cobra.NoArgs,
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectOrientation.register(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	up := upAxisOf(cfg)
	o, err := projectOrientation.resolve(up)
	if err != nil {
		return err
	}

	layout := gizmo.LayoutForDiameter(cfg.Diameter, up)
	arms := gizmo.ProjectAxes(o, layout.Center, layout.ArmLength, up)

	fmt.Printf("Orientation: %s (%s, diameter %.0f)\n\n", o, up, cfg.Diameter)
	fmt.Printf("%-6s %-10s %-10s %-10s %-8s %-8s\n", "Arm", "X", "Y", "Depth", "View", "Label")
	fmt.Println("-------------------------------------------------------")
	for _, arm := range arms {
		sign := "+"
		if !arm.Positive {
			sign = "-"
		}
		fmt.Printf("%-6s %-10.2f %-10.2f %-10.3f %-8s %-8s\n",
			sign+string(arm.Axis), arm.Tip.X, arm.Tip.Y, arm.Tip.Depth, arm.View, arm.Label)
	}
	return nil
}
