package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/orbitgizmo/pkg/interaction"
)

const (
	mousePointer = 0

	// sceneOrbitSpeed is degrees per pixel when dragging the scene itself
	sceneOrbitSpeed = 0.4
)

var raylibKeys = map[int32]interaction.Key{
	rl.KeyLeft:  interaction.KeyArrowLeft,
	rl.KeyRight: interaction.KeyArrowRight,
	rl.KeyUp:    interaction.KeyArrowUp,
	rl.KeyDown:  interaction.KeyArrowDown,
	rl.KeyHome:  interaction.KeyHome,
	rl.KeyOne:   interaction.Key1,
	rl.KeyThree: interaction.Key3,
	rl.KeyFive:  interaction.Key5,
	rl.KeySeven: interaction.Key7,
	rl.KeyKp1:   interaction.Key1,
	rl.KeyKp3:   interaction.Key3,
	rl.KeyKp5:   interaction.Key5,
	rl.KeyKp7:   interaction.Key7,
}

var raylibButtons = map[rl.MouseButton]interaction.Button{
	rl.MouseButtonLeft:   interaction.ButtonPrimary,
	rl.MouseButtonRight:  interaction.ButtonSecondary,
	rl.MouseButtonMiddle: interaction.ButtonMiddle,
}

// handleInput forwards raylib input to the engine in gizmo-local coordinates.
// Presses outside the gizmo orbit (left) or pan (right) the scene directly.
func (app *App) handleInput() {
	origin := app.gizmoOrigin()
	mouse := rl.GetMousePosition()
	ev := interaction.PointerEvent{
		PointerID: mousePointer,
		X:         float64(mouse.X - origin.X),
		Y:         float64(mouse.Y - origin.Y),
	}

	for button, b := range raylibButtons {
		if !rl.IsMouseButtonPressed(button) {
			continue
		}
		if app.insideGizmo(ev) {
			ev.Button = b
			if app.engine.PointerDown(ev) {
				app.mouseDownInGizmo = true
				app.loop.Invalidate()
			}
		} else if b == interaction.ButtonPrimary {
			app.sceneDragging = true
		} else if b == interaction.ButtonSecondary {
			app.scenePanning = true
		}
	}

	if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
		if app.scenePanning {
			app.camera.Pan(float64(delta.X), float64(delta.Y))
		} else if app.sceneDragging {
			app.camera.ApplyOrbit(interaction.OrbitDelta{
				DeltaYaw:   float64(delta.X) * sceneOrbitSpeed,
				DeltaPitch: float64(-delta.Y) * sceneOrbitSpeed,
			}, app.cfg.ConstrainPitch)
			app.syncOrientation()
		} else if app.engine.PointerMove(ev) || app.mouseDownInGizmo || app.insideGizmo(ev) {
			app.loop.Invalidate()
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		app.sceneDragging = false
		if app.mouseDownInGizmo {
			app.mouseDownInGizmo = false
			up := ev
			up.Button = interaction.ButtonPrimary
			app.engine.PointerUp(up)
			app.loop.Invalidate()
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseButtonRight) {
		app.scenePanning = false
	}

	if !rl.IsWindowFocused() && app.mouseDownInGizmo {
		app.mouseDownInGizmo = false
		app.engine.PointerCancel(ev)
		app.loop.Invalidate()
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.camera.Zoom(-float64(wheel) * 0.1)
	}

	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	for k, key := range raylibKeys {
		if rl.IsKeyPressed(k) || rl.IsKeyPressedRepeat(k) {
			if app.engine.KeyDown(interaction.KeyEvent{Key: key, Shift: shift, Ctrl: ctrl}) {
				app.loop.Invalidate()
			}
		}
	}
}

func (app *App) insideGizmo(ev interaction.PointerEvent) bool {
	d := app.cfg.Diameter
	return ev.X >= 0 && ev.Y >= 0 && ev.X <= d && ev.Y <= d
}
