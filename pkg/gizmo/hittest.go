package gizmo

import (
	"math"

	"github.com/philipparndt/orbitgizmo/pkg/geometry"
)

// Hit-test defaults in pixels
const (
	DefaultTolerance    = 12.0
	DefaultOriginRadius = 6.0

	shaftToleranceFactor = 0.7
	ringRadiusFactor     = 1.1
	ringToleranceFactor  = 0.5

	// armLengthFactor relates the arm length to the widget diameter so the
	// ring (at 1.1x the arm) stays inside the widget.
	armLengthFactor = 0.35
)

// RegionType classifies a screen point relative to the gizmo
type RegionType string

const (
	RegionNone         RegionType = "none"
	RegionOrigin       RegionType = "origin"
	RegionAxisPositive RegionType = "axis-positive"
	RegionAxisNegative RegionType = "axis-negative"
	RegionLabel        RegionType = "label" // reserved for hosts that hit-test their own label boxes
	RegionRing         RegionType = "ring"
)

// HitPart tells whether an axis hit landed on the tip or the shaft
type HitPart string

const (
	PartTip   HitPart = "tip"
	PartShaft HitPart = "shaft"
)

// HitRegion is the single region under a screen point
type HitRegion struct {
	Type     RegionType
	Axis     Axis    // set for axis regions
	Part     HitPart // set for axis regions
	Distance float64
}

// NoHit is the region reported when nothing is within tolerance
var NoHit = HitRegion{Type: RegionNone, Distance: math.Inf(1)}

// IsAxis reports whether the region is one of the axis arms
func (h HitRegion) IsAxis() bool {
	return h.Type == RegionAxisPositive || h.Type == RegionAxisNegative
}

// Positive reports the sign of an axis region
func (h HitRegion) Positive() bool {
	return h.Type == RegionAxisPositive
}

// Layout is the widget geometry used for projection and hit testing
type Layout struct {
	Center       geometry.Point2
	ArmLength    float64
	UpAxis       UpAxis
	Tolerance    float64 // 0 means DefaultTolerance
	OriginRadius float64 // 0 means DefaultOriginRadius
}

// LayoutForDiameter centres the gizmo in a square widget of the given size
func LayoutForDiameter(diameter float64, up UpAxis) Layout {
	return Layout{
		Center:    geometry.Point2{X: diameter / 2, Y: diameter / 2},
		ArmLength: diameter * armLengthFactor,
		UpAxis:    up,
	}
}

// RingRadius is the radius of the orbit ring
func (l Layout) RingRadius() float64 {
	return l.ArmLength * ringRadiusFactor
}

func (l Layout) withDefaults() Layout {
	if l.Tolerance == 0 {
		l.Tolerance = DefaultTolerance
	}
	if l.OriginRadius == 0 {
		l.OriginRadius = DefaultOriginRadius
	}
	return l
}

// HitTest resolves a screen point to the nearest gizmo region.
//
// A point on the origin handle always hits the origin: every shaft starts at
// the centre, so inside the handle a shaft would otherwise be nearer. Outside
// it the candidates are each arm (tip or shaft, whichever is nearer) and the
// orbit ring. The nearest candidate wins; on equal distance the earlier one in
// that order is kept.
func HitTest(p geometry.Point2, o Orientation, layout Layout) HitRegion {
	l := layout.withDefaults()

	if d := p.Distance(l.Center); d <= l.OriginRadius+l.Tolerance/2 {
		return HitRegion{Type: RegionOrigin, Distance: d}
	}

	best := NoHit
	consider := func(candidate HitRegion) {
		if candidate.Distance < best.Distance {
			best = candidate
		}
	}

	shaftTolerance := l.Tolerance * shaftToleranceFactor
	for _, arm := range ProjectAxes(o, l.Center, l.ArmLength, l.UpAxis) {
		regionType := RegionAxisNegative
		if arm.Positive {
			regionType = RegionAxisPositive
		}

		tip := arm.Tip.Point()
		armHit := NoHit
		if d := p.Distance(tip); d <= l.Tolerance {
			armHit = HitRegion{Type: regionType, Axis: arm.Axis, Part: PartTip, Distance: d}
		}
		if d := geometry.DistanceToSegment(p, l.Center, tip); d <= shaftTolerance && d < armHit.Distance {
			armHit = HitRegion{Type: regionType, Axis: arm.Axis, Part: PartShaft, Distance: d}
		}
		if armHit.Type != RegionNone {
			consider(armHit)
		}
	}

	if d := math.Abs(p.Distance(l.Center) - l.RingRadius()); d <= l.Tolerance*ringToleranceFactor {
		consider(HitRegion{Type: RegionRing, Distance: d})
	}

	return best
}
