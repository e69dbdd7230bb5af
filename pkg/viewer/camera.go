package viewer

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/philipparndt/orbitgizmo/pkg/geometry"
	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
	"github.com/philipparndt/orbitgizmo/pkg/interaction"
)

const (
	snapFrequency = 8.0
	snapDamping   = 1.0 // critically damped, no overshoot past the preset

	// snapEpsilon is how close (degrees, degrees/s) a snap must get before it
	// lands exactly on the goal
	snapEpsilon = 0.01

	minDistance = 0.1
	panSpeed    = 0.001
)

// OrbitCamera is a camera orbiting a target. The gizmo drives it: orbit
// deltas apply immediately, preset snaps animate with a spring.
type OrbitCamera struct {
	Target   geometry.Vector3
	Distance float64
	FOV      float64 // Field of view in radians

	orientation gizmo.Orientation
	goal        gizmo.Orientation
	velocity    gizmo.Orientation // degrees per second
	animating   bool

	spring   harmonica.Spring
	springDt float64
}

// NewOrbitCamera creates a camera looking at target from distance
func NewOrbitCamera(target geometry.Vector3, distance float64) *OrbitCamera {
	if distance < minDistance {
		distance = minDistance
	}
	return &OrbitCamera{
		Target:   target,
		Distance: distance,
		FOV:      math.Pi / 4, // 45 degrees
	}
}

// Orientation is the orientation currently rendered
func (c *OrbitCamera) Orientation() gizmo.Orientation {
	return c.orientation
}

// SetOrientation jumps to o, cancelling any snap in progress
func (c *OrbitCamera) SetOrientation(o gizmo.Orientation) {
	c.orientation = o
	c.goal = o
	c.velocity = gizmo.Orientation{}
	c.animating = false
}

// ApplyOrbit adds a gizmo drag delta. With constrain the pitch stays within
// [-90, 90]; otherwise both angles are wrapped.
func (c *OrbitCamera) ApplyOrbit(delta interaction.OrbitDelta, constrain bool) {
	o := c.orientation
	o.Yaw += delta.DeltaYaw
	o.Pitch += delta.DeltaPitch
	if constrain {
		o.Pitch = math.Max(-90, math.Min(90, o.Pitch))
	} else {
		o.Pitch = wrap(o.Pitch)
	}
	o.Yaw = wrap(o.Yaw)
	c.SetOrientation(o)
}

// SnapTo starts an animated transition to o along the shortest yaw path
func (c *OrbitCamera) SnapTo(o gizmo.Orientation) {
	o.Yaw = c.orientation.Yaw + wrap(o.Yaw-c.orientation.Yaw)
	o.Roll = c.orientation.Roll + wrap(o.Roll-c.orientation.Roll)
	c.goal = o
	c.animating = true
}

// Animating reports whether a snap is still in progress
func (c *OrbitCamera) Animating() bool {
	return c.animating
}

// Update advances a snap by dt seconds and reports whether the orientation
// changed
func (c *OrbitCamera) Update(dt float64) bool {
	if !c.animating || dt <= 0 {
		return false
	}
	if dt != c.springDt {
		c.spring = harmonica.NewSpring(dt, snapFrequency, snapDamping)
		c.springDt = dt
	}

	o, v := c.orientation, c.velocity
	o.Yaw, v.Yaw = c.spring.Update(o.Yaw, v.Yaw, c.goal.Yaw)
	o.Pitch, v.Pitch = c.spring.Update(o.Pitch, v.Pitch, c.goal.Pitch)
	o.Roll, v.Roll = c.spring.Update(o.Roll, v.Roll, c.goal.Roll)
	c.orientation, c.velocity = o, v

	if settled(o.Yaw-c.goal.Yaw, v.Yaw) && settled(o.Pitch-c.goal.Pitch, v.Pitch) && settled(o.Roll-c.goal.Roll, v.Roll) {
		goal := c.goal
		goal.Yaw = wrap(goal.Yaw)
		goal.Roll = wrap(goal.Roll)
		c.SetOrientation(goal)
	}
	return true
}

// Zoom changes the camera distance
func (c *OrbitCamera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
}

// Pan moves the target in the view plane. dx and dy are screen pixels; the
// speed scales with distance so panning feels the same at every zoom level.
func (c *OrbitCamera) Pan(dx, dy float64) {
	basis := c.orientation.Basis()
	speed := c.Distance * panSpeed
	c.Target = c.Target.Add(basis.Right.Mul(-dx * speed)).Add(basis.Up.Mul(dy * speed))
}

// Position is where the camera sits: Forward points from the target toward
// the viewer.
func (c *OrbitCamera) Position() geometry.Vector3 {
	return c.Target.Add(c.orientation.Basis().Forward.Mul(c.Distance))
}

// Project projects a 3D point to 2D screen coordinates. The returned depth is
// the distance in front of the camera.
func (c *OrbitCamera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	basis := c.orientation.Basis()

	// Transform to camera space
	relative := point.Sub(c.Position())
	x := relative.Dot(basis.Right)
	y := relative.Dot(basis.Up)
	z := -relative.Dot(basis.Forward)

	// Perspective projection
	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

func settled(offset, velocity float64) bool {
	return math.Abs(offset) < snapEpsilon && math.Abs(velocity) < snapEpsilon
}

// wrap maps an angle in degrees to (-180, 180]
func wrap(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
