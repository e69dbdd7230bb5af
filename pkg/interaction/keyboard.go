package interaction

import "github.com/philipparndt/orbitgizmo/pkg/gizmo"

// keyViews binds the numeric keys to a view and, with Ctrl, its opposite
var keyViews = map[Key][2]gizmo.PresetView{
	Key1: {gizmo.ViewFront, gizmo.ViewBack},
	Key3: {gizmo.ViewRight, gizmo.ViewLeft},
	Key7: {gizmo.ViewTop, gizmo.ViewBottom},
}

// arrowDirections maps arrow keys to a unit (yaw, pitch) step
var arrowDirections = map[Key][2]float64{
	KeyArrowLeft:  {-1, 0},
	KeyArrowRight: {1, 0},
	KeyArrowUp:    {0, 1},
	KeyArrowDown:  {0, -1},
}

// KeyDown handles a key press. It returns true when the key was handled and
// the host should suppress its default behaviour.
func (e *Engine) KeyDown(ev KeyEvent) bool {
	if !e.keyboardEnabled() {
		return false
	}

	if dir, ok := arrowDirections[ev.Key]; ok {
		if !e.cfg.Mode.allowsOrbit() {
			return false
		}
		step := keyStep
		if ev.Shift {
			step = keyStepShift
		}
		e.emitOrbit(dir[0]*step, dir[1]*step)
		return true
	}

	if views, ok := keyViews[ev.Key]; ok {
		if !e.cfg.Mode.allowsSnap() {
			return false
		}
		view := views[0]
		if ev.Ctrl {
			view = views[1]
		}
		e.logger.Debugf("key %s: snap to %s", ev.Key, view)
		e.snap(view)
		return true
	}

	if ev.Key == Key5 || ev.Key == KeyHome {
		if !e.cfg.Mode.allowsSnap() {
			return false
		}
		if e.cb.OnOriginClick != nil {
			e.cb.OnOriginClick()
		}
		return true
	}

	return false
}
