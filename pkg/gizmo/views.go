package gizmo

var presetAngles = map[UpAxis]map[PresetView]Orientation{
	YUp: {
		ViewFront:  {Yaw: 0, Pitch: 0},
		ViewBack:   {Yaw: 180, Pitch: 0},
		ViewRight:  {Yaw: 90, Pitch: 0},
		ViewLeft:   {Yaw: -90, Pitch: 0},
		ViewTop:    {Yaw: 0, Pitch: 90},
		ViewBottom: {Yaw: 0, Pitch: -90},
	},
	// Same angles as y-up; only the axis labelling differs between conventions.
	ZUp: {
		ViewFront:  {Yaw: 0, Pitch: 0},
		ViewBack:   {Yaw: 180, Pitch: 0},
		ViewRight:  {Yaw: 90, Pitch: 0},
		ViewLeft:   {Yaw: -90, Pitch: 0},
		ViewTop:    {Yaw: 0, Pitch: 90},
		ViewBottom: {Yaw: 0, Pitch: -90},
	},
}

// PresetViewToOrientation returns the camera orientation for a named view.
// Unknown views and conventions fall back to the front view.
func PresetViewToOrientation(view PresetView, up UpAxis) Orientation {
	table, ok := presetAngles[up]
	if !ok {
		table = presetAngles[YUp]
	}
	return table[view]
}

type axisSign struct {
	axis     Axis
	positive bool
}

var axisViews = map[UpAxis]map[axisSign]PresetView{
	YUp: {
		{AxisX, true}:  ViewRight,
		{AxisX, false}: ViewLeft,
		{AxisY, true}:  ViewTop,
		{AxisY, false}: ViewBottom,
		{AxisZ, true}:  ViewFront,
		{AxisZ, false}: ViewBack,
	},
	ZUp: {
		{AxisX, true}:  ViewRight,
		{AxisX, false}: ViewLeft,
		{AxisZ, true}:  ViewTop,
		{AxisZ, false}: ViewBottom,
		{AxisY, true}:  ViewFront,
		{AxisY, false}: ViewBack,
	},
}

// AxisToPresetView maps a clicked axis arm to the view looking down that arm.
// The second result is false for an unknown axis or convention.
func AxisToPresetView(axis Axis, positive bool, up UpAxis) (PresetView, bool) {
	table, ok := axisViews[up]
	if !ok {
		return "", false
	}
	view, ok := table[axisSign{axis: axis, positive: positive}]
	return view, ok
}
