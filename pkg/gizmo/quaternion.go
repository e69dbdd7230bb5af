package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitgizmo/pkg/geometry"
	"gonum.org/v1/gonum/num/quat"
)

// gimbalThreshold is the |m23| above which pitch is treated as ±90°
const gimbalThreshold = 0.9999

// QuaternionToEuler decomposes a rotation quaternion into the Y-X-Z
// orientation used everywhere else in this package. The quaternion is
// normalised first; a zero quaternion yields the zero orientation.
//
// Near the pitch singularity yaw and roll are not separable, so roll is
// forced to 0 and the whole heading is reported as yaw.
func QuaternionToEuler(x, y, z, w float64) Orientation {
	n := math.Sqrt(x*x + y*y + z*z + w*w)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Orientation{}
	}
	x, y, z, w = x/n, y/n, z/n, w/n

	m11 := 1 - 2*(y*y+z*z)
	m13 := 2 * (x*z + y*w)
	m21 := 2 * (x*y + z*w)
	m22 := 1 - 2*(x*x+z*z)
	m23 := 2 * (y*z - x*w)
	m31 := 2 * (x*z - y*w)
	m33 := 1 - 2*(x*x+y*y)

	pitch := math.Asin(math.Max(-1, math.Min(1, m23)))

	var yaw, roll float64
	if math.Abs(m23) < gimbalThreshold {
		yaw = math.Atan2(m13, m33)
		roll = math.Atan2(m21, m22)
	} else {
		yaw = math.Atan2(-m31, m11)
		roll = 0
	}

	return Orientation{
		Yaw:   mgl64.RadToDeg(yaw),
		Pitch: mgl64.RadToDeg(pitch),
		Roll:  mgl64.RadToDeg(roll),
	}
}

// QuaternionFromEuler composes qYaw * qPitch * qRoll with the same axes and
// signs as geometry.EulerToRotationMatrix.
func QuaternionFromEuler(o Orientation) quat.Number {
	qy := axisAngle(geometry.UnitY, o.Yaw)
	qx := axisAngle(geometry.UnitX, -o.Pitch)
	qz := axisAngle(geometry.UnitZ, o.Roll)
	return quat.Mul(quat.Mul(qy, qx), qz)
}

func axisAngle(axis geometry.Vector3, deg float64) quat.Number {
	s, c := math.Sincos(mgl64.DegToRad(deg) / 2)
	return quat.Number{Real: c, Imag: axis.X * s, Jmag: axis.Y * s, Kmag: axis.Z * s}
}

// FromQuaternion is QuaternionToEuler for a gonum quaternion
func FromQuaternion(q quat.Number) Orientation {
	return QuaternionToEuler(q.Imag, q.Jmag, q.Kmag, q.Real)
}

// FromQuat32 ingests the camera rotation of a mathgl (float32) based host
func FromQuat32(q mgl32.Quat) Orientation {
	return QuaternionToEuler(float64(q.V[0]), float64(q.V[1]), float64(q.V[2]), float64(q.W))
}

// FromQuat64 ingests the camera rotation of a mathgl (float64) based host
func FromQuat64(q mgl64.Quat) Orientation {
	return QuaternionToEuler(q.V[0], q.V[1], q.V[2], q.W)
}

// RotateVector applies a unit quaternion to v (q * v * q⁻¹)
func RotateVector(q quat.Number, v geometry.Vector3) geometry.Vector3 {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return geometry.Vector3{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}
