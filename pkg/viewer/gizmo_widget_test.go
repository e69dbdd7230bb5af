package viewer

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
	"github.com/philipparndt/orbitgizmo/pkg/interaction"
	"github.com/philipparndt/orbitgizmo/pkg/render"
)

type recorded struct {
	orbits  []interaction.OrbitDelta
	ends    int
	views   []gizmo.PresetView
	origins int
}

func newTestWidget(t *testing.T, mode interaction.Mode) (*GizmoWidget, *recorded) {
	t.Helper()
	test.NewTempApp(t)

	rec := &recorded{}
	cb := interaction.Callbacks{
		OnOrbit:       func(d interaction.OrbitDelta) { rec.orbits = append(rec.orbits, d) },
		OnOrbitEnd:    func(gizmo.Orientation) { rec.ends++ },
		OnSnapToView:  func(v gizmo.PresetView) { rec.views = append(rec.views, v) },
		OnOriginClick: func() { rec.origins++ },
	}
	cfg := interaction.Config{Mode: mode, Diameter: 100, ConstrainPitch: true}
	w := NewGizmoWidget(cfg, cb, WithScheduler(render.SchedulerFunc(func(fn func()) { fn() })))
	w.Resize(fyne.NewSize(100, 100))
	return w, rec
}

func mouse(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestGizmoWidgetAxisClick(t *testing.T) {
	w, rec := newTestWidget(t, interaction.ModeFull)

	w.MouseDown(mouse(85, 50))
	w.MouseUp(mouse(85, 50))

	assert.Equal(t, []gizmo.PresetView{gizmo.ViewRight}, rec.views)
	assert.Empty(t, rec.orbits)
}

func TestGizmoWidgetDrag(t *testing.T) {
	w, rec := newTestWidget(t, interaction.ModeFull)

	w.MouseDown(mouse(50, 80))
	w.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 80)}})
	assert.True(t, w.Engine().Dragging())
	assert.Equal(t, desktop.CrosshairCursor, w.Cursor())
	w.DragEnd()

	require.Len(t, rec.orbits, 1)
	assert.InDelta(t, 5, rec.orbits[0].DeltaYaw, 1e-9)
	assert.Equal(t, 1, rec.ends)
	assert.Empty(t, rec.views)

	// a MouseUp after DragEnd is ignored
	w.MouseUp(mouse(60, 80))
	assert.Equal(t, 1, rec.ends)
}

func TestGizmoWidgetSecondaryReleaseKeepsDrag(t *testing.T) {
	w, rec := newTestWidget(t, interaction.ModeFull)

	w.MouseDown(mouse(50, 80))
	w.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 80)}})

	right := mouse(60, 80)
	right.Button = desktop.MouseButtonSecondary
	w.MouseUp(right)
	assert.True(t, w.Engine().Dragging())
	assert.Zero(t, rec.ends)

	w.MouseUp(mouse(60, 80))
	assert.False(t, w.Engine().Dragging())
	assert.Equal(t, 1, rec.ends)
}

func TestGizmoWidgetHoverCursor(t *testing.T) {
	w, _ := newTestWidget(t, interaction.ModeFull)

	w.MouseIn(mouse(85, 50))
	assert.Equal(t, desktop.PointerCursor, w.Cursor())

	w.MouseOut()
	assert.Equal(t, desktop.DefaultCursor, w.Cursor())
}

func TestGizmoWidgetKeyboard(t *testing.T) {
	w, rec := newTestWidget(t, interaction.ModeFull)

	w.TypedKey(&fyne.KeyEvent{Name: fyne.KeyHome})
	assert.Equal(t, 1, rec.origins)

	w.TypedKey(&fyne.KeyEvent{Name: fyne.Key7})
	w.TypedShortcut(&desktop.CustomShortcut{KeyName: fyne.Key1, Modifier: fyne.KeyModifierControl})
	assert.Equal(t, []gizmo.PresetView{gizmo.ViewTop, gizmo.ViewBack}, rec.views)

	w.KeyDown(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})
	w.TypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	w.KeyUp(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})
	w.TypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	require.Len(t, rec.orbits, 2)
	assert.Equal(t, 5.0, rec.orbits[0].DeltaYaw)
	assert.Equal(t, 15.0, rec.orbits[1].DeltaYaw)

	w.TypedKey(&fyne.KeyEvent{Name: fyne.KeyA})
	assert.Len(t, rec.orbits, 2)
}

func TestGizmoWidgetReconfigure(t *testing.T) {
	w, rec := newTestWidget(t, interaction.ModeFull)
	w.SetOrientation(gizmo.NewOrientation(30, 10))

	w.Reconfigure(interaction.Config{Mode: interaction.ModeDisplayOnly, Diameter: 100})
	assert.Equal(t, gizmo.NewOrientation(30, 10), w.Engine().Orientation())

	w.MouseDown(mouse(50, 50))
	w.MouseUp(mouse(50, 50))
	w.TypedKey(&fyne.KeyEvent{Name: fyne.KeyHome})
	assert.Zero(t, rec.origins)
}

func TestGizmoWidgetPaints(t *testing.T) {
	w, _ := newTestWidget(t, interaction.ModeFull)
	w.SetOrientation(gizmo.Orientation{})
	require.NotNil(t, w.frame)

	img := w.generate(200, 200)
	rgba, ok := img.(*image.RGBA)
	require.True(t, ok)

	// +X tip at (85, 50) in layout units, doubled on a 2x surface
	c := rgba.RGBAAt(170, 100)
	assert.Greater(t, c.R, c.B)
	assert.Equal(t, uint8(255), c.A)
}

func TestGizmoWidgetSkipsUnsizedSurface(t *testing.T) {
	test.NewTempApp(t)
	w := NewGizmoWidget(interaction.Config{Diameter: 100}, interaction.Callbacks{},
		WithScheduler(render.SchedulerFunc(func(fn func()) { fn() })))

	w.SetOrientation(gizmo.Orientation{})
	assert.Nil(t, w.frame)
	assert.Equal(t, 0, w.Loop().Painted())
}

func TestGizmoWidgetPausedWhileHidden(t *testing.T) {
	w, _ := newTestWidget(t, interaction.ModeFull)
	before := w.Loop().Painted()

	w.SetVisible(false)
	w.SetOrientation(gizmo.NewOrientation(10, 0))
	assert.Equal(t, before, w.Loop().Painted())

	w.SetVisible(true)
	assert.Equal(t, before+1, w.Loop().Painted())
}
