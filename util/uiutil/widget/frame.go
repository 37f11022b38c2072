package widget

import (
	"time"

	"github.com/roundui/roundui/util/uiutil/event"
)

// Container running the per-frame calls on its childs in insertion order. Doesn't layout or paint.
type Frame struct {
	EmbedNode
	childs []Widget
}

func NewFrame(width, height int) *Frame {
	return &Frame{EmbedNode: NewEmbedNode(width, height)}
}

func (f *Frame) Append(ws ...Widget) {
	for _, w := range ws {
		we := w.Embed()
		if we == &f.EmbedNode {
			panic("inserting into itself")
		}
		if we.Parent != nil {
			panic("element already has a parent")
		}
		we.Parent = &f.EmbedNode
		f.childs = append(f.childs, w)
	}
}

func (f *Frame) Childs() []Widget {
	return f.childs
}

//----------

func (f *Frame) HandleEvent(ev interface{}) {
	for _, c := range f.childs {
		c.HandleEvent(ev)
	}
}

func (f *Frame) Update(dt time.Duration) {
	for _, c := range f.childs {
		c.Update(dt)
	}
}

// Stops at the first child that fails.
func (f *Frame) Draw(c Canvas) error {
	for _, w := range f.childs {
		if err := w.Draw(c); err != nil {
			return err
		}
	}
	return nil
}

// One frame: handle all pending events, update, then draw. Runs of mouse moves are reduced to their last move.
func (f *Frame) RunFrame(events []interface{}, dt time.Duration, c Canvas) error {
	for _, ev := range event.FilterMouseMoves(events) {
		f.HandleEvent(ev)
	}
	f.Update(dt)
	return f.Draw(c)
}
