package event

import (
	"image"
	"unicode"
)

//----------

type WindowClose struct{}
type WindowExpose struct{}
type WindowInput struct {
	Point image.Point
	Event interface{}
}

//----------

type MouseDown struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseUp struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseDragMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}

// Pointer position carried by the event, if any.
func PointerPoint(ev interface{}) (image.Point, bool) {
	switch t := ev.(type) {
	case *MouseMove:
		return t.Point, true
	case *MouseDown:
		return t.Point, true
	case *MouseUp:
		return t.Point, true
	case *MouseDragMove:
		return t.Point, true
	case *WindowInput:
		return t.Point, true
	}
	return image.Point{}, false
}

//----------

type MouseButton int32

const (
	ButtonNone MouseButton = iota
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

type MouseButtons int32

func (mb MouseButtons) Has(b MouseButton) bool {
	return int32(mb)&int32(b) > 0
}

//----------

type KeyDown struct {
	Mods KeyModifiers
	Rune rune
}

func (kd *KeyDown) LowerRune() rune {
	return unicode.ToLower(kd.Rune)
}

type KeyUp struct {
	Mods KeyModifiers
	Rune rune
}

//----------

type KeyModifiers uint32

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}

const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << (iota - 1)
	ModLock               // caps
	ModCtrl
	Mod1 // ~ alt
)
