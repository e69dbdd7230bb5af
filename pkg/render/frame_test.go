package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
)

func frontState() State {
	return State{
		Orientation: gizmo.Orientation{},
		Layout:      gizmo.LayoutForDiameter(100, gizmo.YUp),
		Hover:       gizmo.NoHit,
		Style:       DefaultStyle(),
	}
}

func findArm(t *testing.T, f Frame, axis gizmo.Axis, positive bool) ArmStroke {
	t.Helper()
	for _, a := range f.Arms {
		if a.Arm.Axis == axis && a.Arm.Positive == positive {
			return a
		}
	}
	t.Fatalf("arm %s positive=%v not in frame", axis, positive)
	return ArmStroke{}
}

func TestBuildFrameFrontView(t *testing.T) {
	f := BuildFrame(frontState())

	assert.Equal(t, 100.0, f.Width)
	assert.Equal(t, 100.0, f.Height)
	require.Len(t, f.Arms, 6)

	x := findArm(t, f, gizmo.AxisX, true)
	assert.InDelta(t, 85.0, x.To.X, 1e-9)
	assert.InDelta(t, 50.0, x.To.Y, 1e-9)
	assert.Equal(t, "X", x.Label)
	assert.InDelta(t, 95.0, x.LabelAt.X, 1e-9)
	assert.False(t, x.Highlighted)

	negX := findArm(t, f, gizmo.AxisX, false)
	assert.Equal(t, DefaultStyle().NegativeAlpha, negX.Color.A)
	assert.Empty(t, negX.Label)

	// painter's order: farthest first
	for i := 1; i < len(f.Arms); i++ {
		assert.LessOrEqual(t, f.Arms[i-1].Arm.Tip.Depth, f.Arms[i].Arm.Tip.Depth)
	}
	assert.Equal(t, gizmo.AxisZ, f.Arms[len(f.Arms)-1].Arm.Axis)
}

func TestBuildFrameHighlightsHoveredArm(t *testing.T) {
	s := frontState()
	s.Hover = gizmo.HitRegion{Type: gizmo.RegionAxisNegative, Axis: gizmo.AxisY, Part: gizmo.PartTip}
	f := BuildFrame(s)

	negY := findArm(t, f, gizmo.AxisY, false)
	assert.True(t, negY.Highlighted)
	assert.Equal(t, uint8(255), negY.Color.A)
	assert.False(t, findArm(t, f, gizmo.AxisY, true).Highlighted)
}

func TestBuildFrameRingAndOrigin(t *testing.T) {
	s := frontState()
	style := s.Style

	f := BuildFrame(s)
	assert.Equal(t, style.RingColor, f.Ring.Color)
	assert.InDelta(t, 35*1.1, f.Ring.Radius, 1e-9)
	assert.Equal(t, style.OriginColor, f.Origin.Color)

	s.Dragging = true
	assert.Equal(t, style.RingActive, BuildFrame(s).Ring.Color)

	s.Dragging = false
	s.Hover = gizmo.HitRegion{Type: gizmo.RegionOrigin}
	assert.Equal(t, style.OriginActive, BuildFrame(s).Origin.Color)
}

func TestBuildFrameIsPure(t *testing.T) {
	s := frontState()
	s.Orientation = gizmo.NewOrientation(30, 20)
	assert.Equal(t, BuildFrame(s), BuildFrame(s))
}

func TestBuildFrameZeroStyleUsesDefaults(t *testing.T) {
	s := frontState()
	s.Style = Style{}
	f := BuildFrame(s)
	assert.Equal(t, DefaultStyle().AxisColors[gizmo.AxisX], findArm(t, f, gizmo.AxisX, true).Color)
}

func TestBuildFrameHidesLabels(t *testing.T) {
	s := frontState()
	s.Style.ShowLabels = false
	for _, a := range BuildFrame(s).Arms {
		assert.Empty(t, a.Label)
	}
}

func TestFrameScaled(t *testing.T) {
	f := BuildFrame(frontState())
	s := f.Scaled(2)

	assert.Equal(t, 200.0, s.Width)
	assert.InDelta(t, f.Ring.Radius*2, s.Ring.Radius, 1e-9)
	x := findArm(t, s, gizmo.AxisX, true)
	assert.InDelta(t, 170.0, x.To.X, 1e-9)
	assert.InDelta(t, DefaultStyle().TipRadius*2, x.TipRadius, 1e-9)

	// the projected arm follows the strokes
	orig := findArm(t, f, gizmo.AxisX, true)
	assert.InDelta(t, x.To.X, x.Arm.Tip.X, 1e-9)
	assert.InDelta(t, x.To.Y, x.Arm.Tip.Y, 1e-9)
	assert.InDelta(t, orig.Arm.Length*2, x.Arm.Length, 1e-9)
	assert.Equal(t, orig.Arm.Tip.Depth, x.Arm.Tip.Depth)

	// the original is untouched
	assert.InDelta(t, 85.0, findArm(t, f, gizmo.AxisX, true).To.X, 1e-9)
	assert.Equal(t, f, f.Scaled(1))
}
