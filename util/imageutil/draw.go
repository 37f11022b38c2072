package imageutil

import (
	"image"
	"image/color"
	"image/draw"
	"reflect"
)

func DrawUniformMask(
	dst draw.Image,
	r *image.Rectangle,
	c color.Color,
	mask image.Image, mp image.Point,
	op draw.Op,
) {
	if c == nil {
		return
	}
	src := image.NewUniform(c)
	draw.DrawMask(dst, *r, src, image.Point{}, mask, mp, op)
}

func DrawUniform(dst draw.Image, r *image.Rectangle, c color.Color, op draw.Op) {
	DrawUniformMask(dst, r, c, nil, image.Point{}, op)
}

// Draws src with its bounds origin at p, blending over dst.
func DrawOver(dst draw.Image, src image.Image, p image.Point) {
	sb := src.Bounds()
	r := sb.Sub(sb.Min).Add(p)
	draw.Draw(dst, r, src, sb.Min, draw.Over)
}

//----------

func FillRectangle(img draw.Image, r *image.Rectangle, c color.Color) {
	DrawUniform(img, r, c, draw.Over)
}

func BorderRectangle(img draw.Image, r *image.Rectangle, c color.Color, size int) {
	var sr [4]image.Rectangle
	// top
	sr[0] = *r
	sr[0].Max.Y = r.Min.Y + size
	// bottom
	sr[1] = *r
	sr[1].Min.Y = r.Max.Y - size
	// left
	sr[2] = *r
	sr[2].Max.X = r.Min.X + size
	sr[2].Min.Y = r.Min.Y + size
	sr[2].Max.Y = r.Max.Y - size
	// right
	sr[3] = *r
	sr[3].Min.X = r.Max.X - size
	sr[3].Min.Y = r.Min.Y + size
	sr[3].Max.Y = r.Max.Y - size

	for _, r2 := range sr {
		r2 = r2.Intersect(*r)
		if r2.Empty() {
			continue
		}
		DrawUniform(img, &r2, c, draw.Over)
	}
}

//----------

// True for a nil interface or an interface holding a nil pointer.
func IsNilImage(img image.Image) bool {
	if img == nil {
		return true
	}
	v := reflect.ValueOf(img)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
