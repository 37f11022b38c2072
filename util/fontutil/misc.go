package fontutil

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Top-left of the text box that has its center at c.
func CenteredOrigin(f *Font, s string, c image.Point) image.Point {
	m := f.Measure(s)
	return image.Point{c.X - m.X/2, c.Y - m.Y/2}
}

// Draws a single line with the text box centered at c. Glyph masks are anti-aliased by the face.
func DrawCentered(dst draw.Image, f *Font, s string, c image.Point, fg color.Color) error {
	if f == nil {
		return ErrNilFont
	}
	o := CenteredOrigin(f, s, c)
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: f.Face(),
		Dot:  fixed.P(o.X, o.Y+f.Ascent()),
	}
	d.DrawString(s)
	return nil
}
