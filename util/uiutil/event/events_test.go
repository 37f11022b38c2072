package event

import (
	"image"
	"testing"
)

func TestPointerPoint(t *testing.T) {
	p0 := image.Point{3, 4}
	evs := []interface{}{
		&MouseMove{Point: p0},
		&MouseDown{Point: p0, Button: ButtonLeft},
		&MouseUp{Point: p0, Button: ButtonLeft},
		&MouseDragMove{Point: p0, Buttons: MouseButtons(ButtonLeft)},
		&WindowInput{Point: p0, Event: &KeyDown{Rune: 'a'}},
	}
	for _, ev := range evs {
		p, ok := PointerPoint(ev)
		if !ok || p != p0 {
			t.Fatalf("%T: %v %v", ev, p, ok)
		}
	}

	for _, ev := range []interface{}{nil, &KeyDown{}, &KeyUp{}, &WindowClose{}, struct{}{}} {
		if _, ok := PointerPoint(ev); ok {
			t.Fatalf("%T", ev)
		}
	}
}

func TestMouseButtons(t *testing.T) {
	mb := MouseButtons(ButtonLeft | ButtonRight)
	if !mb.Has(ButtonLeft) || mb.Has(ButtonMiddle) {
		t.Fatal(mb)
	}
}

func TestKeyDown(t *testing.T) {
	kd := &KeyDown{Rune: 'A', Mods: ModShift | ModCtrl}
	if kd.LowerRune() != 'a' {
		t.Fatal(kd.LowerRune())
	}
	if !kd.Mods.HasAny(ModCtrl) || kd.Mods.HasAny(ModLock|Mod1) {
		t.Fatal(kd.Mods)
	}
}

func TestFilterMouseMoves(t *testing.T) {
	m1 := &MouseMove{Point: image.Point{1, 1}}
	m2 := &WindowInput{Event: &MouseMove{Point: image.Point{2, 2}}}
	m3 := &MouseMove{Point: image.Point{3, 3}}
	kd := &KeyDown{Rune: 'a'}
	md := &MouseDown{Button: ButtonLeft}

	evs := FilterMouseMoves([]interface{}{m1, m2, kd, m3, md, m1})
	w := []interface{}{m2, kd, m3, md, m1}
	if len(evs) != len(w) {
		t.Fatal(evs)
	}
	for i := range w {
		if evs[i] != w[i] {
			t.Fatalf("%v: %v", i, evs[i])
		}
	}
	if len(FilterMouseMoves(nil)) != 0 {
		t.Fatal()
	}
}
