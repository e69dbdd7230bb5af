package render

import (
	"errors"

	"github.com/philipparndt/orbitgizmo/internal/logging"
)

// ErrNoSurface is returned by painters that have nothing to draw on yet.
// The loop skips such frames silently.
var ErrNoSurface = errors.New("render: no drawing surface")

// Scheduler is the host's animation-frame primitive: run fn once, on the UI
// goroutine, before the next frame is presented.
type Scheduler interface {
	RequestFrame(fn func())
}

// SchedulerFunc adapts a function to Scheduler
type SchedulerFunc func(fn func())

func (f SchedulerFunc) RequestFrame(fn func()) { f(fn) }

// Painter draws a frame onto a backend surface
type Painter interface {
	Paint(f Frame) error
}

// PainterFunc adapts a function to Painter
type PainterFunc func(f Frame) error

func (f PainterFunc) Paint(frame Frame) error { return f(frame) }

// Loop redraws the gizmo on demand. It keeps no timer: every redraw is a
// single request to the host scheduler, and at most one request is pending.
// The frame is built from the state source when the request runs, so
// coalesced invalidations always paint the latest state.
type Loop struct {
	scheduler Scheduler
	source    func() State
	painter   Painter
	logger    logging.Logger

	paused  bool
	pending bool
	dirty   bool // invalidated while paused
	painted int
}

// NewLoop creates a loop; logger may be nil
func NewLoop(scheduler Scheduler, source func() State, painter Painter, logger logging.Logger) *Loop {
	return &Loop{
		scheduler: scheduler,
		source:    source,
		painter:   painter,
		logger:    logging.OrNop(logger),
	}
}

// Invalidate asks for a redraw of the current state
func (l *Loop) Invalidate() {
	if l.paused {
		l.dirty = true
		return
	}
	if l.pending {
		return
	}
	l.pending = true
	l.scheduler.RequestFrame(l.run)
}

// SetPaused stops or resumes scheduling. Resuming repaints if anything was
// invalidated in the meantime.
func (l *Loop) SetPaused(paused bool) {
	l.paused = paused
	if !paused && l.dirty {
		l.dirty = false
		l.Invalidate()
	}
}

func (l *Loop) Paused() bool { return l.paused }

// Pending reports whether a frame request is outstanding
func (l *Loop) Pending() bool { return l.pending }

// Painted counts frames that reached the painter successfully
func (l *Loop) Painted() int { return l.painted }

func (l *Loop) run() {
	l.pending = false
	if l.paused {
		l.dirty = true
		return
	}

	frame := BuildFrame(l.source())
	if err := l.painter.Paint(frame); err != nil {
		if !errors.Is(err, ErrNoSurface) {
			l.logger.Warnf("gizmo frame not painted: %v", err)
		}
		return
	}
	l.painted++
}
