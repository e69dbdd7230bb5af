package interaction

import (
	"github.com/google/uuid"
	"github.com/philipparndt/orbitgizmo/pkg/geometry"
	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
)

// DragThreshold is the distance in pixels the pointer must travel from the
// press point before a press becomes a drag
const DragThreshold = 3.0

// Session is the state of one pointer-down..pointer-up gesture
type Session struct {
	ID        uuid.UUID
	PointerID int
	Button    Button // button that started the gesture; only its release ends it
	Start     geometry.Point2
	Last      geometry.Point2
	Dragging  bool
	Hit       gizmo.HitRegion // region under the press point, used to resolve clicks
}

// exceededThreshold reports whether p is far enough from the press point to
// count as a drag
func (s *Session) exceededThreshold(p geometry.Point2) bool {
	return p.Distance(s.Start) > DragThreshold
}
