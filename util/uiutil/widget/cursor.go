package widget

import "fmt"

type Cursor int

const (
	NoneCursor Cursor = iota // none means not set
	DefaultCursor
	PointerCursor
	BeamCursor // text cursor
	WaitCursor // watch cursor
	MoveCursor
)

var cursorNames = [...]string{
	NoneCursor:    "none",
	DefaultCursor: "default",
	PointerCursor: "pointer",
	BeamCursor:    "beam",
	WaitCursor:    "wait",
	MoveCursor:    "move",
}

func (c Cursor) String() string {
	if c >= 0 && int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return fmt.Sprintf("cursor(%d)", int(c))
}

func ParseCursor(s string) (Cursor, error) {
	for i, name := range cursorNames {
		if name == s {
			return Cursor(i), nil
		}
	}
	return NoneCursor, fmt.Errorf("unknown cursor: %q", s)
}
