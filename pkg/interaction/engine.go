// Package interaction turns raw pointer and keyboard input into orbit deltas,
// axis clicks and preset-view snaps. The engine never owns the camera: the
// host supplies the orientation and applies what the engine emits.
package interaction

import (
	"math"

	"github.com/google/uuid"
	"github.com/philipparndt/orbitgizmo/internal/logging"
	"github.com/philipparndt/orbitgizmo/pkg/geometry"
	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
)

const (
	// dragSpeedFactor converts pixels into degrees before OrbitSpeed is applied
	dragSpeedFactor = 0.5

	keyStep      = 15.0
	keyStepShift = 5.0

	maxPitch = 90.0
)

// Config is the per-widget configuration. It is fixed for the lifetime of an
// Engine; hosts build a new engine when it changes.
type Config struct {
	UpAxis         gizmo.UpAxis
	Mode           Mode
	OrbitSpeed     float64
	ConstrainPitch bool
	Diameter       float64
	Disabled       bool
}

func (c Config) withDefaults() Config {
	if c.UpAxis == "" {
		c.UpAxis = gizmo.YUp
	}
	if c.Mode == "" {
		c.Mode = ModeFull
	}
	if c.OrbitSpeed == 0 {
		c.OrbitSpeed = 1
	}
	return c
}

// Callbacks receive the engine's outputs. Nil callbacks are skipped.
type Callbacks struct {
	OnOrbit       func(delta OrbitDelta)
	OnOrbitEnd    func(o gizmo.Orientation)
	OnSnapToView  func(view gizmo.PresetView)
	OnAxisClick   func(axis gizmo.Axis, positive bool)
	OnOriginClick func()
}

// Capturer routes all events of a pointer to the widget while a gesture is
// active. Hosts without pointer capture can omit it.
type Capturer interface {
	CapturePointer(pointerID int)
	ReleasePointer(pointerID int)
}

type Option func(*Engine)

func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger = logging.OrNop(l) }
}

func WithCapturer(c Capturer) Option {
	return func(e *Engine) { e.capturer = c }
}

// Engine is the gesture state machine: idle, pressed (below the drag
// threshold) and dragging. Hover is tracked only while idle.
// It is not safe for concurrent use; drive it from the host's UI goroutine.
type Engine struct {
	cfg      Config
	layout   gizmo.Layout
	cb       Callbacks
	capturer Capturer
	logger   logging.Logger

	orientation gizmo.Orientation
	session     *Session
	hover       gizmo.HitRegion
	pointer     *geometry.Point2 // last idle pointer position over the widget
}

// New creates an idle engine
func New(cfg Config, cb Callbacks, opts ...Option) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg:    cfg,
		layout: gizmo.LayoutForDiameter(cfg.Diameter, cfg.UpAxis),
		cb:     cb,
		logger: logging.Nop(),
		hover:  gizmo.NoHit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the effective configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Layout returns the widget geometry derived from the diameter
func (e *Engine) Layout() gizmo.Layout {
	return e.layout
}

// SetOrientation records the orientation the host is currently rendering
func (e *Engine) SetOrientation(o gizmo.Orientation) {
	e.orientation = o
}

func (e *Engine) Orientation() gizmo.Orientation {
	return e.orientation
}

// SetDisabled toggles input handling. Disabling mid-gesture cancels it.
func (e *Engine) SetDisabled(disabled bool) {
	e.cfg.Disabled = disabled
	if disabled {
		if e.session != nil {
			e.cancelSession()
		}
		e.clearHover()
	}
}

// Hover returns the region under the idle pointer
func (e *Engine) Hover() gizmo.HitRegion {
	return e.hover
}

// Dragging reports whether the active gesture has crossed the drag threshold
func (e *Engine) Dragging() bool {
	return e.session != nil && e.session.Dragging
}

// Session returns a copy of the active gesture, if any
func (e *Engine) Session() (Session, bool) {
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// HitTest resolves a widget position against the current orientation
func (e *Engine) HitTest(x, y float64) gizmo.HitRegion {
	return gizmo.HitTest(geometry.Point2{X: x, Y: y}, e.orientation, e.layout)
}

func (e *Engine) keyboardEnabled() bool {
	return !e.cfg.Disabled && e.cfg.Mode != ModeDisplayOnly
}

func (e *Engine) pointerEnabled() bool {
	return e.keyboardEnabled() && e.cfg.Diameter > 0
}

// PointerDown starts a gesture. It reports whether the event was consumed.
func (e *Engine) PointerDown(ev PointerEvent) bool {
	if !e.pointerEnabled() || ev.Button != ButtonPrimary || e.session != nil {
		return false
	}

	p := geometry.Point2{X: ev.X, Y: ev.Y}
	e.session = &Session{
		ID:        uuid.New(),
		PointerID: ev.PointerID,
		Button:    ev.Button,
		Start:     p,
		Last:      p,
		Hit:       e.HitTest(ev.X, ev.Y),
	}
	if e.capturer != nil {
		e.capturer.CapturePointer(ev.PointerID)
	}

	e.logger.Debugf("gesture %s: pointer %d down at (%.1f, %.1f) on %s",
		e.session.ID, ev.PointerID, ev.X, ev.Y, e.session.Hit.Type)
	return true
}

// PointerMove advances the active gesture, or updates hover when idle
func (e *Engine) PointerMove(ev PointerEvent) bool {
	if !e.pointerEnabled() {
		e.clearHover()
		return false
	}

	if e.session == nil {
		e.updateHover(ev.X, ev.Y)
		return false
	}
	if ev.PointerID != e.session.PointerID {
		return false
	}

	s := e.session
	p := geometry.Point2{X: ev.X, Y: ev.Y}
	if !s.Dragging && s.exceededThreshold(p) {
		s.Dragging = true
		e.logger.Debugf("gesture %s: drag started", s.ID)
	}

	if s.Dragging && e.cfg.Mode.allowsOrbit() {
		k := e.cfg.OrbitSpeed * dragSpeedFactor
		dx := p.X - s.Last.X
		up := s.Last.Y - p.Y // screen y grows downward
		e.emitOrbit(dx*k, up*k)
	}
	s.Last = p
	return true
}

// PointerUp ends the gesture: a drag emits orbit-end, anything shorter is a
// click resolved against the region hit on press. Releasing a button other
// than the one that started the gesture is ignored.
func (e *Engine) PointerUp(ev PointerEvent) bool {
	if e.session == nil || ev.PointerID != e.session.PointerID || ev.Button != e.session.Button {
		return false
	}

	s := e.endSession()
	if s.Dragging {
		if e.cfg.Mode.allowsOrbit() && e.cb.OnOrbitEnd != nil {
			e.cb.OnOrbitEnd(e.orientation)
		}
		e.logger.Debugf("gesture %s: drag ended at %s", s.ID, e.orientation)
	} else if e.cfg.Mode.allowsSnap() {
		e.resolveClick(s)
	}

	if e.pointerEnabled() {
		e.updateHover(ev.X, ev.Y)
	}
	return true
}

// PointerCancel terminates the gesture as if the pointer was released, but
// never resolves a click.
func (e *Engine) PointerCancel(ev PointerEvent) bool {
	if e.session == nil || ev.PointerID != e.session.PointerID {
		return false
	}
	e.cancelSession()
	e.clearHover()
	return true
}

// PointerLeave clears hover when the pointer leaves the widget while idle
func (e *Engine) PointerLeave() {
	if e.session == nil {
		e.clearHover()
	}
}

// Cursor is the affordance for the current hover/drag state
func (e *Engine) Cursor() Cursor {
	if !e.pointerEnabled() {
		return CursorDefault
	}
	if e.session != nil {
		if e.session.Dragging && e.cfg.Mode.allowsOrbit() {
			return CursorGrabbing
		}
		return CursorDefault
	}

	switch {
	case e.hover.Type == gizmo.RegionOrigin || e.hover.IsAxis():
		return CursorPointer
	case e.cfg.Mode.allowsOrbit() && e.pointerOverWidget():
		return CursorGrab
	}
	return CursorDefault
}

func (e *Engine) pointerOverWidget() bool {
	if e.hover.Type == gizmo.RegionRing {
		return true
	}
	return e.pointer != nil && e.pointer.Distance(e.layout.Center) <= e.cfg.Diameter/2
}

func (e *Engine) updateHover(x, y float64) {
	e.hover = e.HitTest(x, y)
	e.pointer = &geometry.Point2{X: x, Y: y}
}

func (e *Engine) clearHover() {
	e.hover = gizmo.NoHit
	e.pointer = nil
}

func (e *Engine) endSession() *Session {
	s := e.session
	e.session = nil
	if e.capturer != nil {
		e.capturer.ReleasePointer(s.PointerID)
	}
	return s
}

func (e *Engine) cancelSession() {
	s := e.endSession()
	if s.Dragging && e.cfg.Mode.allowsOrbit() && e.cb.OnOrbitEnd != nil {
		e.cb.OnOrbitEnd(e.orientation)
	}
	e.logger.Debugf("gesture %s: cancelled", s.ID)
}

func (e *Engine) resolveClick(s *Session) {
	hit := s.Hit
	switch {
	case hit.Type == gizmo.RegionOrigin:
		e.logger.Debugf("gesture %s: origin click", s.ID)
		if e.cb.OnOriginClick != nil {
			e.cb.OnOriginClick()
		}
	case hit.IsAxis():
		positive := hit.Positive()
		e.logger.Debugf("gesture %s: axis click %s positive=%v", s.ID, hit.Axis, positive)
		if e.cb.OnAxisClick != nil {
			e.cb.OnAxisClick(hit.Axis, positive)
		}
		if view, ok := gizmo.AxisToPresetView(hit.Axis, positive, e.cfg.UpAxis); ok {
			e.snap(view)
		}
	}
}

func (e *Engine) snap(view gizmo.PresetView) {
	if e.cb.OnSnapToView != nil {
		e.cb.OnSnapToView(view)
	}
}

// emitOrbit applies the pitch constraint to the delta, never to the
// orientation, and skips deltas that end up empty.
func (e *Engine) emitOrbit(deltaYaw, deltaPitch float64) {
	if e.cfg.ConstrainPitch {
		deltaPitch = clampPitchDelta(e.orientation.Pitch, deltaPitch)
	}
	if deltaYaw == 0 && deltaPitch == 0 {
		return
	}
	if e.cb.OnOrbit != nil {
		e.cb.OnOrbit(OrbitDelta{DeltaYaw: deltaYaw, DeltaPitch: deltaPitch})
	}
}

func clampPitchDelta(pitch, delta float64) float64 {
	target := math.Max(-maxPitch, math.Min(maxPitch, pitch+delta))
	return target - pitch
}
