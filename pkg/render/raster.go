package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/philipparndt/orbitgizmo/pkg/geometry"
)

// circleSegments is the polygon resolution used for tips, origin and ring
const circleSegments = 48

// RasterPainter paints frames into an in-memory RGBA image. It backs the
// render command and any host that blits an image (fyne's canvas.Raster).
type RasterPainter struct {
	img  *image.RGBA
	z    *vector.Rasterizer
	face font.Face
}

// NewRasterPainter creates a painter with a surface of the given size. A zero
// size is allowed; Paint then reports ErrNoSurface until Resize is called.
func NewRasterPainter(width, height int) *RasterPainter {
	p := &RasterPainter{
		z:    vector.NewRasterizer(0, 0),
		face: basicfont.Face7x13,
	}
	p.Resize(width, height)
	return p
}

// Resize replaces the surface when the size changed
func (p *RasterPainter) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if p.img != nil && p.img.Bounds().Dx() == width && p.img.Bounds().Dy() == height {
		return
	}
	p.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Image returns the surface. It is reused across frames.
func (p *RasterPainter) Image() *image.RGBA {
	return p.img
}

// Paint draws a frame: background, ring, arms back to front, origin, labels
func (p *RasterPainter) Paint(f Frame) error {
	b := p.img.Bounds()
	if b.Empty() {
		return ErrNoSurface
	}

	draw.Draw(p.img, b, image.NewUniform(f.Background), image.Point{}, draw.Src)

	p.circle(f.Ring)
	for _, arm := range f.Arms {
		p.line(arm.From, arm.To, arm.Width, arm.Color)
		p.circle(Circle{Center: arm.To, Radius: arm.TipRadius, Color: arm.Color})
	}
	p.circle(f.Origin)

	for _, arm := range f.Arms {
		if arm.Label == "" || !arm.Arm.Positive {
			continue
		}
		p.label(arm.Label, arm.LabelAt, f.LabelColor)
	}
	return nil
}

func (p *RasterPainter) fill(col color.RGBA) {
	p.z.Draw(p.img, p.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (p *RasterPainter) reset() {
	b := p.img.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
}

// line strokes a segment as a quad
func (p *RasterPainter) line(a, b geometry.Point2, width float64, col color.RGBA) {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := math.Hypot(dx, dy)
	if n < 1e-6 || width <= 0 {
		return
	}
	ox, oy := -dy/n*width/2, dx/n*width/2

	p.reset()
	p.z.MoveTo(float32(a.X+ox), float32(a.Y+oy))
	p.z.LineTo(float32(b.X+ox), float32(b.Y+oy))
	p.z.LineTo(float32(b.X-ox), float32(b.Y-oy))
	p.z.LineTo(float32(a.X-ox), float32(a.Y-oy))
	p.z.ClosePath()
	p.fill(col)
}

// circle fills a disc, or strokes an annulus when c.Width > 0. The inner
// contour winds the other way so the hole cancels out.
func (p *RasterPainter) circle(c Circle) {
	if c.Radius <= 0 || c.Color.A == 0 {
		return
	}
	p.reset()
	if c.Width <= 0 {
		p.contour(c.Center, c.Radius, false)
	} else {
		p.contour(c.Center, c.Radius+c.Width/2, false)
		p.contour(c.Center, math.Max(0, c.Radius-c.Width/2), true)
	}
	p.fill(c.Color)
}

func (p *RasterPainter) contour(center geometry.Point2, r float64, reverse bool) {
	if r <= 0 {
		return
	}
	for i := 0; i <= circleSegments; i++ {
		t := 2 * math.Pi * float64(i) / circleSegments
		if reverse {
			t = -t
		}
		x := float32(center.X + r*math.Cos(t))
		y := float32(center.Y + r*math.Sin(t))
		if i == 0 {
			p.z.MoveTo(x, y)
		} else {
			p.z.LineTo(x, y)
		}
	}
	p.z.ClosePath()
}

// label draws text centred on at
func (p *RasterPainter) label(text string, at geometry.Point2, col color.RGBA) {
	d := &font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(col),
		Face: p.face,
	}
	width := d.MeasureString(text)
	m := p.face.Metrics()
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(at.X*64) - width/2,
		Y: fixed.Int26_6(at.Y*64) + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(text)
}
