package geometry

import "math"

// Point2 is a screen-space position in pixels. Y grows downward.
type Point2 struct {
	X, Y float64
}

// NewPoint2 creates a new screen point
func NewPoint2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// Sub returns the offset from other to p
func (p Point2) Sub(other Point2) Point2 {
	return Point2{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the Euclidean distance between two points
func (p Point2) Distance(other Point2) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// DistanceToSegment returns the distance from p to the closest point on the
// segment a-b. The projection parameter is clamped to [0,1]; a degenerate
// segment measures the distance to a.
func DistanceToSegment(p, a, b Point2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Distance(a)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	closest := Point2{X: a.X + t*dx, Y: a.Y + t*dy}
	return p.Distance(closest)
}
