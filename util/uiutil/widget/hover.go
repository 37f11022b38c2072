package widget

import (
	"image"

	"github.com/roundui/roundui/util/uiutil/event"
)

// Tracks whether the pointer is over a rectangle. Widgets compose it and feed it their events.
type Hover struct {
	hovered bool
}

func (h *Hover) Hovered() bool {
	return h.hovered
}

// Updates the hover flag from events carrying a pointer position. Other events leave it unchanged.
func (h *Hover) Check(ev interface{}, r image.Rectangle) {
	p, ok := event.PointerPoint(ev)
	if !ok {
		return
	}
	h.hovered = IsHovered(p, r)
}

func IsHovered(p image.Point, r image.Rectangle) bool {
	return p.In(r)
}
