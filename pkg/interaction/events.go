package interaction

import (
	"fmt"
	"strings"
)

// Button identifies the mouse button (or pen/touch equivalent) of a pointer event
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a pointer position in widget coordinates
type PointerEvent struct {
	PointerID int
	X, Y      float64
	Button    Button
}

// Key names follow the DOM KeyboardEvent.key values so hosts can forward them unchanged.
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyHome       Key = "Home"
	Key1          Key = "1"
	Key3          Key = "3"
	Key5          Key = "5"
	Key7          Key = "7"
)

// KeyEvent is a key press with its modifier state
type KeyEvent struct {
	Key   Key
	Shift bool
	Ctrl  bool
}

// OrbitDelta is an incremental camera change in degrees for the host to apply
type OrbitDelta struct {
	DeltaYaw   float64
	DeltaPitch float64
}

func (d OrbitDelta) String() string {
	return fmt.Sprintf("Δyaw=%.2f Δpitch=%.2f", d.DeltaYaw, d.DeltaPitch)
}

// Mode gates which outputs the engine may produce.
//
// In ModeSnapOnly a drag still ends the gesture but emits neither OnOrbit nor
// OnOrbitEnd; hosts must not wait for an orbit-end in that mode.
// ModeOrbitOnly never emits OnOriginClick, OnAxisClick or OnSnapToView.
type Mode string

const (
	ModeFull        Mode = "full"
	ModeOrbitOnly   Mode = "orbit-only"
	ModeSnapOnly    Mode = "snap-only"
	ModeDisplayOnly Mode = "display-only"
)

// ParseMode accepts one of the mode names in any case
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeFull, ModeOrbitOnly, ModeSnapOnly, ModeDisplayOnly:
		return m, nil
	}
	return "", fmt.Errorf("invalid interaction mode %q (must be full, orbit-only, snap-only or display-only)", s)
}

func (m Mode) allowsOrbit() bool {
	return m == ModeFull || m == ModeOrbitOnly
}

func (m Mode) allowsSnap() bool {
	return m == ModeFull || m == ModeSnapOnly
}

// Cursor is the pointer affordance the host should show
type Cursor string

const (
	CursorDefault  Cursor = "default"
	CursorPointer  Cursor = "pointer"
	CursorGrab     Cursor = "grab"
	CursorGrabbing Cursor = "grabbing"
)
