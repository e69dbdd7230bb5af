// Package gizmo holds the pure math behind the orientation gizmo: projection of
// the world axes onto the widget, hit testing, and the mapping between preset
// views, clicked axes, Euler angles and quaternions.
package gizmo

import (
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/orbitgizmo/pkg/geometry"
)

// Orientation is a camera attitude in degrees, composed Y-X-Z (yaw, pitch, roll).
// It is owned by the host; the gizmo only ever reads it.
type Orientation struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll,omitempty"`
}

// NewOrientation creates an orientation with zero roll
func NewOrientation(yaw, pitch float64) Orientation {
	return Orientation{Yaw: yaw, Pitch: pitch}
}

// Basis returns the camera frame for this orientation
func (o Orientation) Basis() geometry.Basis {
	return geometry.EulerToRotationMatrix(o.Yaw, o.Pitch, o.Roll)
}

// Normalized wraps yaw and roll into (-180, 180]. Pitch is left untouched.
func (o Orientation) Normalized() Orientation {
	return Orientation{Yaw: wrapDegrees(o.Yaw), Pitch: o.Pitch, Roll: wrapDegrees(o.Roll)}
}

func (o Orientation) String() string {
	return fmt.Sprintf("yaw=%.2f pitch=%.2f roll=%.2f", o.Yaw, o.Pitch, o.Roll)
}

func wrapDegrees(deg float64) float64 {
	w := math.Mod(deg, 360)
	if w <= -180 {
		w += 360
	} else if w > 180 {
		w -= 360
	}
	return w
}

// UpAxis selects which world axis is vertical. It only changes semantic
// labelling, never the vector math.
type UpAxis string

const (
	YUp UpAxis = "y-up"
	ZUp UpAxis = "z-up"
)

// ParseUpAxis accepts "y-up"/"z-up" as well as the bare axis letter
func ParseUpAxis(s string) (UpAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y-up", "y":
		return YUp, nil
	case "z-up", "z":
		return ZUp, nil
	}
	return "", fmt.Errorf("invalid up axis %q (must be y-up or z-up)", s)
}

// Axis names one of the three world axes
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Axes lists the world axes in drawing order before depth sorting
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// AxisUnit maps each axis to its positive unit vector
var AxisUnit = map[Axis]geometry.Vector3{
	AxisX: geometry.UnitX,
	AxisY: geometry.UnitY,
	AxisZ: geometry.UnitZ,
}

// AxisLabel is the text drawn next to each positive arm
var AxisLabel = map[Axis]string{
	AxisX: "X",
	AxisY: "Y",
	AxisZ: "Z",
}

// ParseAxis accepts x, y or z in either case
func ParseAxis(s string) (Axis, error) {
	a := Axis(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := AxisUnit[a]; !ok {
		return "", fmt.Errorf("invalid axis %q (must be x, y or z)", s)
	}
	return a, nil
}

// VerticalAxis returns the world axis treated as "up" under the convention
func (u UpAxis) VerticalAxis() Axis {
	if u == ZUp {
		return AxisZ
	}
	return AxisY
}

// PresetView is one of the six canonical camera directions
type PresetView string

const (
	ViewFront  PresetView = "front"
	ViewBack   PresetView = "back"
	ViewLeft   PresetView = "left"
	ViewRight  PresetView = "right"
	ViewTop    PresetView = "top"
	ViewBottom PresetView = "bottom"
)

// PresetViews lists every preset view
var PresetViews = []PresetView{ViewFront, ViewBack, ViewLeft, ViewRight, ViewTop, ViewBottom}

// ParsePresetView accepts a view name in any case
func ParsePresetView(s string) (PresetView, error) {
	v := PresetView(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range PresetViews {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid preset view %q", s)
}
