package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Basis is the camera frame expressed in world coordinates.
// Forward points from the scene toward the viewer, so view-space depth grows
// toward the eye.
type Basis struct {
	Right   Vector3
	Up      Vector3
	Forward Vector3
}

// EulerToRotationMatrix builds the Y-X-Z intrinsic rotation for the given
// angles in degrees and returns its three columns.
//
// The composition is R = Ry(yaw) * Rx(-pitch) * Rz(roll): roll is applied
// first, then pitch, then yaw. Pitch is negated so that a positive pitch lifts
// the camera above the horizon (pitch 90 looks straight down).
// NaN inputs propagate into the result.
func EulerToRotationMatrix(yaw, pitch, roll float64) Basis {
	sy, cy := math.Sincos(mgl64.DegToRad(yaw))
	sp, cp := math.Sincos(mgl64.DegToRad(pitch))
	sr, cr := math.Sincos(mgl64.DegToRad(roll))

	return Basis{
		Right: Vector3{
			X: cy*cr - sy*sp*sr,
			Y: cp * sr,
			Z: -sy*cr - cy*sp*sr,
		},
		Up: Vector3{
			X: -cy*sr - sy*sp*cr,
			Y: cp * cr,
			Z: sy*sr - cy*sp*cr,
		},
		Forward: Vector3{
			X: sy * cp,
			Y: sp,
			Z: cy * cp,
		},
	}
}

// ToView expresses a world-space point in this basis (dot products against
// right, up and forward).
func (b Basis) ToView(p Vector3) Vector3 {
	return Vector3{X: p.Dot(b.Right), Y: p.Dot(b.Up), Z: p.Dot(b.Forward)}
}
