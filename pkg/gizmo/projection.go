package gizmo

import (
	"sort"

	"github.com/philipparndt/orbitgizmo/pkg/geometry"
)

// NegativeArmScale shortens the negative arms relative to the positive ones
const NegativeArmScale = 0.4

// Projected is a 3D point mapped onto the widget. Depth is the view-space Z
// and is only meaningful for ordering.
type Projected struct {
	X, Y  float64
	Depth float64
}

// Point returns the screen position without depth
func (p Projected) Point() geometry.Point2 {
	return geometry.Point2{X: p.X, Y: p.Y}
}

// ProjectedArm is one signed half of an axis as it appears on screen
type ProjectedArm struct {
	Axis     Axis
	Positive bool
	Tip      Projected
	Length   float64    // arm length in pixels before projection
	View     PresetView // view a click on this arm snaps to
	Vertical bool       // arm lies on the convention's up axis
	Label    string     // empty for negative arms
}

// ProjectToCanvas projects a point orthographically onto the widget using the
// camera frame derived from o. Screen Y is flipped so that view-space up
// points toward the top of the widget.
func ProjectToCanvas(point geometry.Vector3, o Orientation, center geometry.Point2, scale float64) Projected {
	return projectWithBasis(point, o.Basis(), center, scale)
}

func projectWithBasis(point geometry.Vector3, basis geometry.Basis, center geometry.Point2, scale float64) Projected {
	view := basis.ToView(point)
	return Projected{
		X:     center.X + view.X*scale,
		Y:     center.Y - view.Y*scale,
		Depth: view.Z,
	}
}

// ProjectAxes projects the positive and negative arm of every axis and returns
// the six arms sorted by ascending depth, so painting them in order draws the
// farthest arm first.
func ProjectAxes(o Orientation, center geometry.Point2, armLength float64, up UpAxis) []ProjectedArm {
	basis := o.Basis()
	vertical := up.VerticalAxis()

	arms := make([]ProjectedArm, 0, 6)
	for _, axis := range Axes {
		unit := AxisUnit[axis]
		for _, positive := range []bool{true, false} {
			length := armLength
			dir := unit
			label := AxisLabel[axis]
			if !positive {
				length = armLength * NegativeArmScale
				dir = unit.Negate()
				label = ""
			}

			view, _ := AxisToPresetView(axis, positive, up)
			arms = append(arms, ProjectedArm{
				Axis:     axis,
				Positive: positive,
				Tip:      projectWithBasis(dir, basis, center, length),
				Length:   length,
				View:     view,
				Vertical: axis == vertical,
				Label:    label,
			})
		}
	}

	sort.SliceStable(arms, func(i, j int) bool {
		return arms[i].Tip.Depth < arms[j].Tip.Depth
	})
	return arms
}
