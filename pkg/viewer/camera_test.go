package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/orbitgizmo/pkg/geometry"
	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
	"github.com/philipparndt/orbitgizmo/pkg/interaction"
)

func TestOrbitCameraPosition(t *testing.T) {
	c := NewOrbitCamera(geometry.Vector3{}, 10)

	p := c.Position()
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
	assert.InDelta(t, 10, p.Z, 1e-9)

	c.SetOrientation(gizmo.PresetViewToOrientation(gizmo.ViewTop, gizmo.YUp))
	p = c.Position()
	assert.InDelta(t, 10, p.Y, 1e-9)

	c.SetOrientation(gizmo.PresetViewToOrientation(gizmo.ViewRight, gizmo.YUp))
	p = c.Position()
	assert.InDelta(t, 10, p.X, 1e-9)
}

func TestOrbitCameraProjectsTargetToCenter(t *testing.T) {
	c := NewOrbitCamera(geometry.NewVector3(1, 2, 3), 5)
	c.SetOrientation(gizmo.NewOrientation(37, -20))

	x, y, z := c.Project(c.Target, 200, 100)
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)
	assert.InDelta(t, 5, z, 1e-9)
}

func TestOrbitCameraProjectOrientation(t *testing.T) {
	c := NewOrbitCamera(geometry.Vector3{}, 10)

	x, _, _ := c.Project(geometry.UnitX, 100, 100)
	assert.Greater(t, x, 50.0, "+X is on the right in the front view")

	_, y, _ := c.Project(geometry.UnitY, 100, 100)
	assert.Less(t, y, 50.0, "+Y is up in the front view")
}

func TestOrbitCameraApplyOrbit(t *testing.T) {
	c := NewOrbitCamera(geometry.Vector3{}, 10)

	c.ApplyOrbit(interaction.OrbitDelta{DeltaYaw: 10, DeltaPitch: 100}, true)
	assert.Equal(t, gizmo.Orientation{Yaw: 10, Pitch: 90}, c.Orientation())

	c.ApplyOrbit(interaction.OrbitDelta{DeltaYaw: 175}, true)
	assert.InDelta(t, -175, c.Orientation().Yaw, 1e-9)
}

func TestOrbitCameraApplyOrbitCancelsSnap(t *testing.T) {
	c := NewOrbitCamera(geometry.Vector3{}, 10)
	c.SnapTo(gizmo.Orientation{Yaw: 90})
	require.True(t, c.Animating())

	c.ApplyOrbit(interaction.OrbitDelta{DeltaYaw: 1}, true)
	assert.False(t, c.Animating())
	assert.Equal(t, 1.0, c.Orientation().Yaw)
}

func TestOrbitCameraSnapSettles(t *testing.T) {
	c := NewOrbitCamera(geometry.Vector3{}, 10)
	c.SnapTo(gizmo.PresetViewToOrientation(gizmo.ViewTop, gizmo.YUp))

	steps := 0
	for c.Animating() && steps < 1000 {
		assert.True(t, c.Update(1.0/60))
		steps++
	}

	assert.False(t, c.Animating())
	assert.Equal(t, gizmo.Orientation{Pitch: 90}, c.Orientation())
	assert.False(t, c.Update(1.0/60))
}

func TestOrbitCameraSnapTakesShortestYawPath(t *testing.T) {
	c := NewOrbitCamera(geometry.Vector3{}, 10)
	c.SetOrientation(gizmo.Orientation{Yaw: 170})
	c.SnapTo(gizmo.Orientation{Yaw: -170})

	c.Update(1.0 / 60)
	assert.Greater(t, c.Orientation().Yaw, 170.0)

	for i := 0; i < 1000 && c.Animating(); i++ {
		c.Update(1.0 / 60)
	}
	assert.InDelta(t, -170, c.Orientation().Yaw, 1e-9)
}

func TestOrbitCameraZoom(t *testing.T) {
	c := NewOrbitCamera(geometry.Vector3{}, 10)
	c.Zoom(0.5)
	assert.InDelta(t, 15, c.Distance, 1e-9)
	c.Zoom(-2)
	assert.Equal(t, minDistance, c.Distance)
}

func TestOrbitCameraPan(t *testing.T) {
	c := NewOrbitCamera(geometry.Vector3{}, 10)
	c.Pan(100, 50)
	assert.InDelta(t, -1, c.Target.X, 1e-9)
	assert.InDelta(t, 0.5, c.Target.Y, 1e-9)

	// the target stays centred on screen
	x, y, _ := c.Project(c.Target, 100, 100)
	assert.InDelta(t, 50, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)
}
