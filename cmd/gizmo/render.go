package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/spf13/cobra"

	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
	"github.com/philipparndt/orbitgizmo/pkg/render"
)

var (
	renderOrientation orientationFlags
	renderOutput      string
	renderScale       float64
	renderHover       string
	renderDragging    bool
	renderNoLabels    bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the gizmo to a PNG image",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderOrientation.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "gizmo.png", "Output PNG file")
	renderCmd.Flags().Float64Var(&renderScale, "scale", 1, "Pixel density multiplier")
	renderCmd.Flags().StringVar(&renderHover, "hover", "", "Highlight a region: origin, ring, or an arm such as +x or -z")
	renderCmd.Flags().BoolVar(&renderDragging, "dragging", false, "Draw the ring in its active state")
	renderCmd.Flags().BoolVar(&renderNoLabels, "no-labels", false, "Omit axis labels")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cfg.Diameter <= 0 {
		return fmt.Errorf("diameter must be positive to render")
	}
	if renderScale <= 0 {
		return fmt.Errorf("scale must be positive")
	}
	up := upAxisOf(cfg)
	o, err := renderOrientation.resolve(up)
	if err != nil {
		return err
	}
	hover, err := parseHover(renderHover)
	if err != nil {
		return err
	}

	style := render.DefaultStyle()
	style.ShowLabels = !renderNoLabels
	frame := render.BuildFrame(render.State{
		Orientation: o,
		Layout:      gizmo.LayoutForDiameter(cfg.Diameter, up),
		Hover:       hover,
		Dragging:    renderDragging,
		Style:       style,
	}).Scaled(renderScale)

	size := int(math.Ceil(frame.Width))
	painter := render.NewRasterPainter(size, size)
	if err := painter.Paint(frame); err != nil {
		return fmt.Errorf("failed to paint gizmo: %w", err)
	}
	if err := imgio.Save(renderOutput, painter.Image(), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOutput, err)
	}

	newLogger().Infof("wrote %dx%d gizmo for %s to %s", size, size, o, renderOutput)
	return nil
}

// parseHover turns "origin", "ring", "+x", "-y" or "z" into a region
func parseHover(s string) (gizmo.HitRegion, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none":
		return gizmo.NoHit, nil
	case "origin":
		return gizmo.HitRegion{Type: gizmo.RegionOrigin}, nil
	case "ring":
		return gizmo.HitRegion{Type: gizmo.RegionRing}, nil
	}

	region := gizmo.RegionAxisPositive
	switch {
	case strings.HasPrefix(s, "-"):
		region = gizmo.RegionAxisNegative
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	axis, err := gizmo.ParseAxis(s)
	if err != nil {
		return gizmo.NoHit, fmt.Errorf("invalid hover %q: %w", s, err)
	}
	return gizmo.HitRegion{Type: region, Axis: axis, Part: gizmo.PartTip}, nil
}
