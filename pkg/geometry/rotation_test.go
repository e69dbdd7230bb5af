package geometry

import (
	"math"
	"testing"
)

const basisTolerance = 1e-5

func TestEulerToRotationMatrixIdentity(t *testing.T) {
	b := EulerToRotationMatrix(0, 0, 0)

	if b.Right != UnitX {
		t.Errorf("right: expected %v, got %v", UnitX, b.Right)
	}
	if b.Up != UnitY {
		t.Errorf("up: expected %v, got %v", UnitY, b.Up)
	}
	if b.Forward != UnitZ {
		t.Errorf("forward: expected %v, got %v", UnitZ, b.Forward)
	}
}

func TestEulerToRotationMatrixOrthonormal(t *testing.T) {
	angles := []float64{-720, -270, -180, -135, -90, -45, -12.5, 0, 7, 30, 45, 89.9, 90, 123, 180, 360, 1000}

	for _, yaw := range angles {
		for _, pitch := range angles {
			for _, roll := range []float64{0, -33, 90, 211} {
				b := EulerToRotationMatrix(yaw, pitch, roll)

				if d := b.Right.Dot(b.Up); math.Abs(d) > basisTolerance {
					t.Fatalf("(%v,%v,%v) right·up = %v", yaw, pitch, roll, d)
				}
				if d := b.Right.Dot(b.Forward); math.Abs(d) > basisTolerance {
					t.Fatalf("(%v,%v,%v) right·forward = %v", yaw, pitch, roll, d)
				}
				if d := b.Up.Dot(b.Forward); math.Abs(d) > basisTolerance {
					t.Fatalf("(%v,%v,%v) up·forward = %v", yaw, pitch, roll, d)
				}
				for name, v := range map[string]Vector3{"right": b.Right, "up": b.Up, "forward": b.Forward} {
					if math.Abs(v.Length()-1) > basisTolerance {
						t.Fatalf("(%v,%v,%v) %s has length %v", yaw, pitch, roll, name, v.Length())
					}
				}
			}
		}
	}
}

func TestEulerToRotationMatrixRightHanded(t *testing.T) {
	b := EulerToRotationMatrix(37, -21, 64)
	cross := b.Right.Cross(b.Up)

	if cross.Sub(b.Forward).Length() > basisTolerance {
		t.Errorf("right × up should equal forward: got %v, forward %v", cross, b.Forward)
	}
}

func TestEulerToRotationMatrixTopView(t *testing.T) {
	// Looking straight down: world +Y points at the viewer
	b := EulerToRotationMatrix(0, 90, 0)

	if b.Forward.Sub(UnitY).Length() > basisTolerance {
		t.Errorf("forward: expected %v, got %v", UnitY, b.Forward)
	}
	if b.Up.Sub(UnitZ.Negate()).Length() > basisTolerance {
		t.Errorf("up: expected %v, got %v", UnitZ.Negate(), b.Up)
	}
}

func TestEulerToRotationMatrixNaN(t *testing.T) {
	b := EulerToRotationMatrix(math.NaN(), 0, 0)
	if !math.IsNaN(b.Right.X) {
		t.Errorf("expected NaN to propagate, got %v", b.Right)
	}
}
