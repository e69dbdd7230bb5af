package main

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/orbitgizmo/pkg/geometry"
	"github.com/philipparndt/orbitgizmo/pkg/render"
)

const (
	ringSegments  = 64
	labelFontSize = 14
)

// frameQueue is the render.Scheduler for an immediate-mode loop: requests
// are queued and run once per frame inside the draw pass
type frameQueue struct {
	pending []func()
}

func (q *frameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

func (q *frameQueue) flush() {
	pending := q.pending
	q.pending = nil
	for _, fn := range pending {
		fn()
	}
}

// raylibPainter keeps the last built frame; raylib redraws the whole window
// every frame, so the frame is replayed until the loop replaces it
type raylibPainter struct {
	frame *render.Frame
}

func (p *raylibPainter) Paint(f render.Frame) error {
	if !rl.IsWindowReady() || rl.IsWindowMinimized() {
		return render.ErrNoSurface
	}
	p.frame = &f
	return nil
}

// draw replays the frame with its top-left corner at origin
func (p *raylibPainter) draw(origin rl.Vector2) {
	if p.frame == nil {
		return
	}
	f := p.frame
	at := func(pt geometry.Point2) rl.Vector2 {
		return rl.Vector2{X: origin.X + float32(pt.X), Y: origin.Y + float32(pt.Y)}
	}

	if f.Background.A > 0 {
		rl.DrawCircleV(at(f.Ring.Center), float32(f.Ring.Radius), f.Background)
	}

	ring := f.Ring
	half := float32(ring.Width / 2)
	rl.DrawRing(at(ring.Center), float32(ring.Radius)-half, float32(ring.Radius)+half, 0, 360, ringSegments, ring.Color)

	for _, arm := range f.Arms {
		from, to := at(arm.From), at(arm.To)
		rl.DrawLineEx(from, shorten(from, to, float32(arm.TipRadius)*0.5), float32(arm.Width), arm.Color)
		rl.DrawCircleV(to, float32(arm.TipRadius), arm.Color)
		if arm.Highlighted {
			rl.DrawCircleLinesV(to, float32(arm.TipRadius)+1.5, rl.RayWhite)
		}
	}

	rl.DrawCircleV(at(f.Origin.Center), float32(f.Origin.Radius), f.Origin.Color)

	font := rl.GetFontDefault()
	for _, arm := range f.Arms {
		if arm.Label == "" {
			continue
		}
		size := rl.MeasureTextEx(font, arm.Label, labelFontSize, 1)
		pos := at(arm.LabelAt)
		pos.X -= size.X / 2
		pos.Y -= size.Y / 2
		rl.DrawTextEx(font, arm.Label, pos, labelFontSize, 1, f.LabelColor)
	}
}

// shorten pulls the end of a segment back by d so the shaft stops inside the
// tip disc instead of poking through its antialiased edge
func shorten(from, to rl.Vector2, d float32) rl.Vector2 {
	dx, dy := to.X-from.X, to.Y-from.Y
	n := math32.Hypot(dx, dy)
	if n <= d {
		return from
	}
	k := (n - d) / n
	return rl.Vector2{X: from.X + dx*k, Y: from.Y + dy*k}
}
