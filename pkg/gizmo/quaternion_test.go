package gizmo

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitgizmo/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestQuaternionRoundTrip(t *testing.T) {
	for yaw := -175.0; yaw <= 180; yaw += 25 {
		for pitch := -85.0; pitch <= 85; pitch += 17 {
			o := Orientation{Yaw: yaw, Pitch: pitch}
			got := FromQuaternion(QuaternionFromEuler(o))

			if !scalar.EqualWithinAbs(got.Yaw, yaw, 1) {
				t.Errorf("yaw: expected %v, got %v (pitch %v)", yaw, got.Yaw, pitch)
			}
			if !scalar.EqualWithinAbs(got.Pitch, pitch, 1) {
				t.Errorf("pitch: expected %v, got %v (yaw %v)", pitch, got.Pitch, yaw)
			}
			if !scalar.EqualWithinAbs(got.Roll, 0, 1e-6) {
				t.Errorf("roll: expected 0, got %v", got.Roll)
			}
		}
	}
}

func TestQuaternionRoundTripWithRoll(t *testing.T) {
	o := Orientation{Yaw: 40, Pitch: -25, Roll: 70}
	got := FromQuaternion(QuaternionFromEuler(o))

	assert.InDelta(t, o.Yaw, got.Yaw, 1e-6)
	assert.InDelta(t, o.Pitch, got.Pitch, 1e-6)
	assert.InDelta(t, o.Roll, got.Roll, 1e-6)
}

func TestQuaternionMatchesRotationMatrix(t *testing.T) {
	o := Orientation{Yaw: -63, Pitch: 41, Roll: 12}
	q := QuaternionFromEuler(o)
	b := o.Basis()

	for _, c := range []struct {
		unit geometry.Vector3
		want geometry.Vector3
	}{
		{geometry.UnitX, b.Right},
		{geometry.UnitY, b.Up},
		{geometry.UnitZ, b.Forward},
	} {
		got := RotateVector(q, c.unit)
		assert.InDelta(t, 0, got.Sub(c.want).Length(), 1e-9)
	}
}

func TestQuaternionGimbalLock(t *testing.T) {
	got := FromQuaternion(QuaternionFromEuler(Orientation{Yaw: 30, Pitch: 90, Roll: 20}))

	assert.InDelta(t, 90, got.Pitch, 1e-4)
	assert.Equal(t, 0.0, got.Roll)
	// heading and roll collapse into yaw: the resulting frame must match
	want := Orientation{Yaw: 30, Pitch: 90, Roll: 20}.Basis()
	have := got.Basis()
	assert.InDelta(t, 0, have.Forward.Sub(want.Forward).Length(), 1e-6)
	assert.InDelta(t, 0, have.Up.Sub(want.Up).Length(), 1e-6)
}

func TestQuaternionToEulerClampsOvershoot(t *testing.T) {
	// unnormalised input pointing straight down; must not produce NaN
	s := math.Sin(-math.Pi / 4)
	got := QuaternionToEuler(s*1.0000001, 0, 0, math.Cos(-math.Pi/4)*1.0000001)

	assert.False(t, math.IsNaN(got.Pitch))
	assert.InDelta(t, 90, got.Pitch, 1e-4)
}

func TestQuaternionToEulerZero(t *testing.T) {
	assert.Equal(t, Orientation{}, QuaternionToEuler(0, 0, 0, 0))
}

func TestFromMathglQuaternions(t *testing.T) {
	yaw, pitch := 35.0, 20.0
	q64 := mgl64.QuatRotate(mgl64.DegToRad(yaw), mgl64.Vec3{0, 1, 0}).
		Mul(mgl64.QuatRotate(mgl64.DegToRad(-pitch), mgl64.Vec3{1, 0, 0}))

	got := FromQuat64(q64)
	assert.InDelta(t, yaw, got.Yaw, 1e-6)
	assert.InDelta(t, pitch, got.Pitch, 1e-6)

	q32 := mgl32.QuatRotate(mgl32.DegToRad(float32(yaw)), mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(float32(-pitch)), mgl32.Vec3{1, 0, 0}))

	got = FromQuat32(q32)
	assert.InDelta(t, yaw, got.Yaw, 1e-3)
	assert.InDelta(t, pitch, got.Pitch, 1e-3)
}
