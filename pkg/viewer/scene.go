package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/orbitgizmo/pkg/geometry"
	"github.com/philipparndt/orbitgizmo/pkg/interaction"
)

// Edge is one line of a wireframe
type Edge struct {
	From, To geometry.Vector3
	Color    color.RGBA
}

// CubeWireframe returns the edges of an axis-aligned cube centred on the
// origin, with its three edges at the minimum corner coloured like the axes.
func CubeWireframe(size float64) []Edge {
	h := size / 2
	corners := [8]geometry.Vector3{}
	for i := range corners {
		corners[i] = geometry.NewVector3(
			float64((i&1)*2-1)*h,
			float64(((i>>1)&1)*2-1)*h,
			float64(((i>>2)&1)*2-1)*h,
		)
	}

	grey := color.RGBA{R: 180, G: 180, B: 180, A: 255}
	axisColors := map[int]color.RGBA{
		1: {R: 230, G: 70, B: 70, A: 255},
		2: {R: 90, G: 200, B: 90, A: 255},
		4: {R: 80, G: 130, B: 240, A: 255},
	}

	edges := make([]Edge, 0, 12)
	for i := range corners {
		for _, bit := range []int{1, 2, 4} {
			if i&bit != 0 {
				continue
			}
			c := grey
			if i == 0 {
				c = axisColors[bit]
			}
			edges = append(edges, Edge{From: corners[i], To: corners[i|bit], Color: c})
		}
	}
	return edges
}

// SceneView draws a wireframe through an OrbitCamera. It is the 3D view the
// gizmo controls in the GUI host; dragging the scene orbits it directly and
// scrolling zooms.
type SceneView struct {
	widget.BaseWidget
	camera     *OrbitCamera
	edges      []Edge
	lines      []*canvas.Line
	dragStart  *fyne.Position
	width      float64
	height     float64
	onOrbit    func(delta interaction.OrbitDelta)
	orbitSpeed float64
}

// NewSceneView creates a scene view for the given edges
func NewSceneView(camera *OrbitCamera, edges []Edge) *SceneView {
	s := &SceneView{
		camera:     camera,
		edges:      edges,
		orbitSpeed: 0.5,
	}
	s.ExtendBaseWidget(s)
	return s
}

// SetOnOrbit is called after the scene was orbited by dragging it
func (s *SceneView) SetOnOrbit(callback func(delta interaction.OrbitDelta)) {
	s.onOrbit = callback
}

// Camera returns the scene camera
func (s *SceneView) Camera() *OrbitCamera {
	return s.camera
}

// CreateRenderer creates the renderer for the widget
func (s *SceneView) CreateRenderer() fyne.WidgetRenderer {
	return &sceneRenderer{scene: s}
}

// Render rebuilds the projected lines for the given size
func (s *SceneView) Render(width, height float64) {
	s.width = width
	s.height = height
	if width <= 0 || height <= 0 {
		s.lines = nil
		return
	}

	s.lines = make([]*canvas.Line, 0, len(s.edges))
	for _, e := range s.edges {
		x1, y1, z1 := s.camera.Project(e.From, width, height)
		x2, y2, z2 := s.camera.Project(e.To, width, height)

		// Simple depth-based fade
		fade := math.Max(0.35, math.Min(1, 2*s.camera.Distance/(z1+z2)))
		c := e.Color
		c.A = uint8(float64(c.A) * fade)

		line := canvas.NewLine(c)
		line.StrokeWidth = 1.5
		line.Position1 = fyne.NewPos(float32(x1), float32(y1))
		line.Position2 = fyne.NewPos(float32(x2), float32(y2))
		s.lines = append(s.lines, line)
	}
}

// Redraw re-projects the scene after the camera changed
func (s *SceneView) Redraw() {
	s.Render(s.width, s.height)
	s.Refresh()
}

// Dragged orbits the camera like the gizmo does
func (s *SceneView) Dragged(event *fyne.DragEvent) {
	if s.dragStart != nil {
		delta := interaction.OrbitDelta{
			DeltaYaw:   float64(event.Position.X-s.dragStart.X) * s.orbitSpeed,
			DeltaPitch: -float64(event.Position.Y-s.dragStart.Y) * s.orbitSpeed,
		}
		s.camera.ApplyOrbit(delta, true)
		s.Redraw()
		if s.onOrbit != nil {
			s.onOrbit(delta)
		}
	}
	pos := event.Position
	s.dragStart = &pos
}

// DragEnd handles the end of a drag event
func (s *SceneView) DragEnd() {
	s.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (s *SceneView) Scrolled(event *fyne.ScrollEvent) {
	s.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	s.Redraw()
}

type sceneRenderer struct {
	scene   *SceneView
	objects []fyne.CanvasObject
}

func (r *sceneRenderer) Layout(size fyne.Size) {
	r.scene.Render(float64(size.Width), float64(size.Height))
	r.Refresh()
}

func (r *sceneRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *sceneRenderer) Refresh() {
	r.objects = make([]fyne.CanvasObject, 0, len(r.scene.lines))
	for _, line := range r.scene.lines {
		r.objects = append(r.objects, line)
	}
	canvas.Refresh(r.scene)
}

func (r *sceneRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *sceneRenderer) Destroy() {}
