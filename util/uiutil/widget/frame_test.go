package widget

import (
	"image"
	"testing"
	"time"

	"github.com/roundui/roundui/util/uiutil/event"
)

func TestFrameRunFrame(t *testing.T) {
	fr := NewFrame(300, 100)
	th := newStubTheme()
	l1, err := NewLabel(fr, th, 100, 40, "one")
	if err != nil {
		t.Fatal(err)
	}
	l2, err := NewLabel(fr, th, 100, 40, "two")
	if err != nil {
		t.Fatal(err)
	}
	l2.Place(150, 0)

	evs := []interface{}{
		mouseAt(160, 10), // over l2
		&event.KeyDown{Rune: 'x'},
	}
	rc := &recCanvas{}
	if err := fr.RunFrame(evs, time.Second/60, rc); err != nil {
		t.Fatal(err)
	}
	if l1.State() != StateNormal || l2.State() != StateHovered {
		t.Fatal(l1.State(), l2.State())
	}

	// childs drawn in insertion order
	if rc.names() != "fill,stroke,text,fill,stroke,text" {
		t.Fatal(rc.names())
	}
	if rc.ops[2].Text != "one" || rc.ops[5].Text != "two" {
		t.Fatal(rc.ops[2].Text, rc.ops[5].Text)
	}
	if rc.ops[3].Color != cHoverBg {
		t.Fatal(rc.ops[3].Color)
	}
}

func TestFrameDrawStops(t *testing.T) {
	fr := NewFrame(300, 100)
	th := newStubTheme()
	for i := 0; i < 2; i++ {
		if _, err := NewLabel(fr, th, 10, 10, "x"); err != nil {
			t.Fatal(err)
		}
	}
	rc := &recCanvas{failOn: "text"}
	if err := fr.Draw(rc); err == nil {
		t.Fatal("expecting error")
	}
	if rc.names() != "fill,stroke,text" {
		t.Fatal(rc.names())
	}
}

func TestFrameNested(t *testing.T) {
	root := NewFrame(100, 100)
	sub := NewFrame(100, 100)
	root.Append(sub)
	l, err := NewLabel(sub, newStubTheme(), 10, 10, "x")
	if err != nil {
		t.Fatal(err)
	}
	root.HandleEvent(&event.MouseDown{Point: image.Point{5, 5}})
	root.Update(0)
	if l.State() != StateHovered {
		t.Fatal(l.State())
	}
}

func TestFrameAppendTwice(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expecting panic")
		}
	}()
	fr1, fr2 := NewFrame(10, 10), NewFrame(10, 10)
	l, err := NewLabel(fr1, newStubTheme(), 10, 10, "x")
	if err != nil {
		t.Fatal(err)
	}
	fr2.Append(l)
}
