// Package render describes what the gizmo looks like for a given state and
// schedules drawing it. BuildFrame is a pure function, so any backend (the
// raster painter here, raylib, fyne) can paint the same frame.
package render

import (
	"image/color"
	"math"

	"github.com/philipparndt/orbitgizmo/pkg/geometry"
	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
)

// Style holds the visual constants used to build a frame
type Style struct {
	AxisColors     map[gizmo.Axis]color.RGBA
	NegativeAlpha  uint8
	HighlightBoost uint8
	Background     color.RGBA
	RingColor      color.RGBA
	RingActive     color.RGBA
	OriginColor    color.RGBA
	OriginActive   color.RGBA
	LabelColor     color.RGBA
	LineWidth      float64
	TipRadius      float64
	RingWidth      float64
	LabelOffset    float64
	ShowLabels     bool
}

// DefaultStyle uses the usual red/green/blue axis colours
func DefaultStyle() Style {
	return Style{
		AxisColors: map[gizmo.Axis]color.RGBA{
			gizmo.AxisX: {R: 230, G: 70, B: 70, A: 255},
			gizmo.AxisY: {R: 90, G: 200, B: 90, A: 255},
			gizmo.AxisZ: {R: 80, G: 130, B: 240, A: 255},
		},
		NegativeAlpha:  110,
		HighlightBoost: 60,
		Background:     color.RGBA{},
		RingColor:      color.RGBA{R: 120, G: 120, B: 120, A: 90},
		RingActive:     color.RGBA{R: 200, G: 200, B: 200, A: 180},
		OriginColor:    color.RGBA{R: 200, G: 200, B: 200, A: 255},
		OriginActive:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		LabelColor:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		LineWidth:      2.5,
		TipRadius:      6,
		RingWidth:      1.5,
		LabelOffset:    10,
		ShowLabels:     true,
	}
}

// State is everything a frame depends on
type State struct {
	Orientation gizmo.Orientation
	Layout      gizmo.Layout
	Hover       gizmo.HitRegion
	Dragging    bool
	Style       Style
}

// ArmStroke is one arm ready to paint
type ArmStroke struct {
	Arm         gizmo.ProjectedArm
	From        geometry.Point2
	To          geometry.Point2
	Color       color.RGBA
	Width       float64
	TipRadius   float64
	Highlighted bool
	Label       string
	LabelAt     geometry.Point2
}

// Circle is a filled or stroked circle
type Circle struct {
	Center geometry.Point2
	Radius float64
	Width  float64 // stroke width; 0 means filled
	Color  color.RGBA
}

// Frame is a complete, backend-independent description of one gizmo image.
// Arms are in painter's order (farthest first).
type Frame struct {
	Width, Height float64
	Background    color.RGBA
	Ring          Circle
	Arms          []ArmStroke
	Origin        Circle
	LabelColor    color.RGBA
}

// BuildFrame computes the frame for a state. It has no side effects.
func BuildFrame(s State) Frame {
	style := s.Style
	if style.AxisColors == nil {
		style = DefaultStyle()
	}
	l := s.Layout
	hover := s.Hover

	ring := Circle{Center: l.Center, Radius: l.RingRadius(), Width: style.RingWidth, Color: style.RingColor}
	if s.Dragging || hover.Type == gizmo.RegionRing {
		ring.Color = style.RingActive
	}

	origin := Circle{Center: l.Center, Radius: gizmo.DefaultOriginRadius, Color: style.OriginColor}
	if l.OriginRadius > 0 {
		origin.Radius = l.OriginRadius
	}
	if hover.Type == gizmo.RegionOrigin {
		origin.Color = style.OriginActive
	}

	projected := gizmo.ProjectAxes(s.Orientation, l.Center, l.ArmLength, l.UpAxis)
	arms := make([]ArmStroke, 0, len(projected))
	for _, arm := range projected {
		c := style.AxisColors[arm.Axis]
		tipRadius := style.TipRadius
		if !arm.Positive {
			c.A = style.NegativeAlpha
			tipRadius *= 0.75
		}

		highlighted := hover.IsAxis() && hover.Axis == arm.Axis && hover.Positive() == arm.Positive
		if highlighted {
			c = brighten(c, style.HighlightBoost)
			c.A = 255
		}

		stroke := ArmStroke{
			Arm:         arm,
			From:        l.Center,
			To:          arm.Tip.Point(),
			Color:       c,
			Width:       style.LineWidth,
			TipRadius:   tipRadius,
			Highlighted: highlighted,
		}
		if style.ShowLabels && arm.Label != "" {
			stroke.Label = arm.Label
			stroke.LabelAt = labelPosition(l.Center, stroke.To, style.LabelOffset)
		}
		arms = append(arms, stroke)
	}

	return Frame{
		Width:      l.Center.X * 2,
		Height:     l.Center.Y * 2,
		Background: style.Background,
		Ring:       ring,
		Arms:       arms,
		Origin:     origin,
		LabelColor: style.LabelColor,
	}
}

// labelPosition pushes the label past the tip along the arm direction. Arms
// pointing at the viewer collapse to the centre and keep the label on the tip.
func labelPosition(center, tip geometry.Point2, offset float64) geometry.Point2 {
	d := tip.Sub(center)
	n := math.Hypot(d.X, d.Y)
	if n < 1e-6 {
		return tip
	}
	return geometry.Point2{X: tip.X + d.X/n*offset, Y: tip.Y + d.Y/n*offset}
}

func brighten(c color.RGBA, by uint8) color.RGBA {
	add := func(v uint8) uint8 {
		if int(v)+int(by) > 255 {
			return 255
		}
		return v + by
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}

// Scaled returns the frame with every length multiplied by k, for surfaces
// whose pixel density differs from the layout units. Arm depths are unit-less
// and stay as they are.
func (f Frame) Scaled(k float64) Frame {
	if k == 1 || k <= 0 {
		return f
	}
	pt := func(p geometry.Point2) geometry.Point2 { return geometry.Point2{X: p.X * k, Y: p.Y * k} }
	circle := func(c Circle) Circle {
		c.Center = pt(c.Center)
		c.Radius *= k
		c.Width *= k
		return c
	}

	out := f
	out.Width *= k
	out.Height *= k
	out.Ring = circle(f.Ring)
	out.Origin = circle(f.Origin)
	out.Arms = make([]ArmStroke, len(f.Arms))
	for i, a := range f.Arms {
		a.From = pt(a.From)
		a.To = pt(a.To)
		a.LabelAt = pt(a.LabelAt)
		a.Arm.Tip.X *= k
		a.Arm.Tip.Y *= k
		a.Arm.Length *= k
		a.Width *= k
		a.TipRadius *= k
		out.Arms[i] = a
	}
	return out
}
