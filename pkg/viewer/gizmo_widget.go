package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/orbitgizmo/internal/logging"
	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
	"github.com/philipparndt/orbitgizmo/pkg/interaction"
	"github.com/philipparndt/orbitgizmo/pkg/render"
)

// mousePointer is the only pointer a desktop mouse has
const mousePointer = 0

var fyneKeys = map[fyne.KeyName]interaction.Key{
	fyne.KeyLeft:  interaction.KeyArrowLeft,
	fyne.KeyRight: interaction.KeyArrowRight,
	fyne.KeyUp:    interaction.KeyArrowUp,
	fyne.KeyDown:  interaction.KeyArrowDown,
	fyne.KeyHome:  interaction.KeyHome,
	fyne.Key1:     interaction.Key1,
	fyne.Key3:     interaction.Key3,
	fyne.Key5:     interaction.Key5,
	fyne.Key7:     interaction.Key7,
}

var fyneCursors = map[interaction.Cursor]desktop.Cursor{
	interaction.CursorDefault: desktop.DefaultCursor,
	interaction.CursorPointer: desktop.PointerCursor,
	// fyne has no grab cursor
	interaction.CursorGrab:     desktop.CrosshairCursor,
	interaction.CursorGrabbing: desktop.CrosshairCursor,
}

// fyneScheduler runs frames on the fyne main goroutine
type fyneScheduler struct{}

func (fyneScheduler) RequestFrame(fn func()) { fyne.Do(fn) }

// GizmoWidget is the orientation gizmo as a fyne widget. It forwards mouse and
// keyboard input to an interaction.Engine and paints through a render.Loop
// into a canvas.Raster.
type GizmoWidget struct {
	widget.BaseWidget

	cfg       interaction.Config
	callbacks interaction.Callbacks
	style     render.Style
	logger    logging.Logger

	engine    *interaction.Engine
	scheduler render.Scheduler
	loop      *render.Loop
	raster    *canvas.Raster
	painter   *render.RasterPainter
	frame     *render.Frame

	shift, ctrl bool
	lastDrag    fyne.Position
}

// GizmoOption customises a GizmoWidget
type GizmoOption func(*GizmoWidget)

// WithGizmoLogger sets the logger for the engine and the render loop
func WithGizmoLogger(l logging.Logger) GizmoOption {
	return func(g *GizmoWidget) { g.logger = logging.OrNop(l) }
}

// WithScheduler replaces the fyne.Do based frame scheduler
func WithScheduler(s render.Scheduler) GizmoOption {
	return func(g *GizmoWidget) { g.scheduler = s }
}

// WithStyle sets the visual style
func WithStyle(s render.Style) GizmoOption {
	return func(g *GizmoWidget) { g.style = s }
}

// NewGizmoWidget creates the widget. Callbacks are invoked on the fyne main
// goroutine.
func NewGizmoWidget(cfg interaction.Config, cb interaction.Callbacks, opts ...GizmoOption) *GizmoWidget {
	g := &GizmoWidget{
		cfg:       cfg,
		callbacks: cb,
		style:     render.DefaultStyle(),
		logger:    logging.Nop(),
		painter:   render.NewRasterPainter(0, 0),
		scheduler: fyneScheduler{},
	}
	g.raster = canvas.NewRaster(g.generate)
	for _, opt := range opts {
		opt(g)
	}
	g.loop = render.NewLoop(g.scheduler, g.state, render.PainterFunc(g.paint), g.logger)
	g.engine = interaction.New(cfg, cb, interaction.WithLogger(g.logger))
	g.ExtendBaseWidget(g)
	return g
}

// Engine exposes the interaction engine
func (g *GizmoWidget) Engine() *interaction.Engine {
	return g.engine
}

// Loop exposes the render loop
func (g *GizmoWidget) Loop() *render.Loop {
	return g.loop
}

// SetOrientation is called by the host whenever its camera changes
func (g *GizmoWidget) SetOrientation(o gizmo.Orientation) {
	g.engine.SetOrientation(o)
	g.loop.Invalidate()
}

// Reconfigure rebuilds the engine for a new configuration, keeping the
// current orientation. Any gesture in progress is cancelled.
func (g *GizmoWidget) Reconfigure(cfg interaction.Config) {
	o := g.engine.Orientation()
	g.engine.SetDisabled(true)

	g.cfg = cfg
	g.engine = interaction.New(cfg, g.callbacks, interaction.WithLogger(g.logger))
	g.engine.SetOrientation(o)
	g.Refresh()
	g.loop.Invalidate()
}

// SetVisible pauses painting while the widget is hidden
func (g *GizmoWidget) SetVisible(visible bool) {
	g.loop.SetPaused(!visible)
}

func (g *GizmoWidget) state() render.State {
	return render.State{
		Orientation: g.engine.Orientation(),
		Layout:      g.engine.Layout(),
		Hover:       g.engine.Hover(),
		Dragging:    g.engine.Dragging(),
		Style:       g.style,
	}
}

// paint hands the frame to the raster; fyne calls generate on refresh
func (g *GizmoWidget) paint(f render.Frame) error {
	if f.Width <= 0 || g.Size().Width <= 0 {
		return render.ErrNoSurface
	}
	g.frame = &f
	g.raster.Refresh()
	return nil
}

func (g *GizmoWidget) generate(w, h int) image.Image {
	g.painter.Resize(w, h)
	if g.frame == nil || w == 0 || h == 0 {
		return g.painter.Image()
	}
	if err := g.painter.Paint(g.frame.Scaled(float64(w) / g.frame.Width)); err != nil {
		g.logger.Debugf("gizmo raster skipped: %v", err)
	}
	return g.painter.Image()
}

// CreateRenderer implements fyne.Widget
func (g *GizmoWidget) CreateRenderer() fyne.WidgetRenderer {
	g.loop.Invalidate()
	return widget.NewSimpleRenderer(g.raster)
}

// MinSize is the configured diameter
func (g *GizmoWidget) MinSize() fyne.Size {
	d := float32(g.cfg.Diameter)
	return fyne.NewSize(d, d)
}

func pointerEvent(pos fyne.Position, button desktop.MouseButton) interaction.PointerEvent {
	b := interaction.ButtonPrimary
	switch button {
	case desktop.MouseButtonSecondary:
		b = interaction.ButtonSecondary
	case desktop.MouseButtonTertiary:
		b = interaction.ButtonMiddle
	}
	return interaction.PointerEvent{
		PointerID: mousePointer,
		X:         float64(pos.X),
		Y:         float64(pos.Y),
		Button:    b,
	}
}

// MouseDown implements desktop.Mouseable
func (g *GizmoWidget) MouseDown(ev *desktop.MouseEvent) {
	g.lastDrag = ev.Position
	g.engine.PointerDown(pointerEvent(ev.Position, ev.Button))
	g.loop.Invalidate()
}

// MouseUp implements desktop.Mouseable
func (g *GizmoWidget) MouseUp(ev *desktop.MouseEvent) {
	g.engine.PointerUp(pointerEvent(ev.Position, ev.Button))
	g.loop.Invalidate()
}

// MouseIn implements desktop.Hoverable
func (g *GizmoWidget) MouseIn(ev *desktop.MouseEvent) {
	g.MouseMoved(ev)
}

// MouseMoved implements desktop.Hoverable
func (g *GizmoWidget) MouseMoved(ev *desktop.MouseEvent) {
	g.engine.PointerMove(pointerEvent(ev.Position, desktop.MouseButtonPrimary))
	g.loop.Invalidate()
}

// MouseOut implements desktop.Hoverable
func (g *GizmoWidget) MouseOut() {
	g.engine.PointerLeave()
	g.loop.Invalidate()
}

// Dragged implements fyne.Draggable. fyne stops delivering MouseMoved during
// a drag, so drag positions feed the engine here.
func (g *GizmoWidget) Dragged(ev *fyne.DragEvent) {
	g.lastDrag = ev.Position
	g.engine.PointerMove(pointerEvent(ev.Position, desktop.MouseButtonPrimary))
	g.loop.Invalidate()
}

// DragEnd implements fyne.Draggable. It ends the gesture in case the release
// happened outside the widget and MouseUp never arrives.
func (g *GizmoWidget) DragEnd() {
	if _, active := g.engine.Session(); active {
		g.engine.PointerUp(pointerEvent(g.lastDrag, desktop.MouseButtonPrimary))
	}
	g.loop.Invalidate()
}

// Tapped takes keyboard focus
func (g *GizmoWidget) Tapped(*fyne.PointEvent) {
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(g); c != nil {
			c.Focus(g)
		}
	}
}

// Cursor implements desktop.Cursorable
func (g *GizmoWidget) Cursor() desktop.Cursor {
	return fyneCursors[g.engine.Cursor()]
}

// FocusGained implements fyne.Focusable
func (g *GizmoWidget) FocusGained() {}

// FocusLost drops modifier state and any gesture the focus change interrupted
func (g *GizmoWidget) FocusLost() {
	g.shift, g.ctrl = false, false
	g.engine.PointerCancel(interaction.PointerEvent{PointerID: mousePointer})
	g.loop.Invalidate()
}

// TypedRune implements fyne.Focusable. Digits arrive through TypedKey.
func (g *GizmoWidget) TypedRune(rune) {}

// TypedKey implements fyne.Focusable
func (g *GizmoWidget) TypedKey(ev *fyne.KeyEvent) {
	g.keyDown(ev.Name, g.ctrl)
}

// TypedShortcut receives Ctrl+digit, which fyne reports as a shortcut
func (g *GizmoWidget) TypedShortcut(s fyne.Shortcut) {
	custom, ok := s.(*desktop.CustomShortcut)
	if !ok {
		return
	}
	g.keyDown(custom.KeyName, custom.Modifier&fyne.KeyModifierControl != 0)
}

// KeyDown implements desktop.Keyable to track modifiers
func (g *GizmoWidget) KeyDown(ev *fyne.KeyEvent) {
	g.setModifier(ev.Name, true)
}

// KeyUp implements desktop.Keyable
func (g *GizmoWidget) KeyUp(ev *fyne.KeyEvent) {
	g.setModifier(ev.Name, false)
}

func (g *GizmoWidget) setModifier(name fyne.KeyName, down bool) {
	switch name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		g.shift = down
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		g.ctrl = down
	}
}

func (g *GizmoWidget) keyDown(name fyne.KeyName, ctrl bool) {
	key, ok := fyneKeys[name]
	if !ok {
		return
	}
	if g.engine.KeyDown(interaction.KeyEvent{Key: key, Shift: g.shift, Ctrl: ctrl}) {
		g.loop.Invalidate()
	}
}

var (
	_ fyne.Widget        = (*GizmoWidget)(nil)
	_ desktop.Mouseable  = (*GizmoWidget)(nil)
	_ desktop.Hoverable  = (*GizmoWidget)(nil)
	_ desktop.Cursorable = (*GizmoWidget)(nil)
	_ desktop.Keyable    = (*GizmoWidget)(nil)
	_ fyne.Draggable     = (*GizmoWidget)(nil)
	_ fyne.Tappable      = (*GizmoWidget)(nil)
	_ fyne.Shortcutable  = (*GizmoWidget)(nil)
)
