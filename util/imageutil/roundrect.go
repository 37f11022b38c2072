package imageutil

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// bezier control distance for a quarter circle
const kappa = 0.5522847498307936

// Radius limited to half of the smallest side.
func ClampRadius(r image.Rectangle, radius int) int {
	m := r.Dx()
	if r.Dy() < m {
		m = r.Dy()
	}
	if radius > m/2 {
		radius = m / 2
	}
	if radius < 0 {
		radius = 0
	}
	return radius
}

//----------

func FillRoundRectangle(img draw.Image, r *image.Rectangle, radius int, c color.Color) {
	if c == nil || r.Empty() {
		return
	}
	radius = ClampRadius(*r, radius)
	if radius == 0 {
		FillRectangle(img, r, c)
		return
	}

	size := r.Size()
	z := vector.NewRasterizer(size.X, size.Y)
	rect := image.Rect(0, 0, size.X, size.Y)
	roundRectPath(z, rect, float32(radius), false)
	drawRasterizer(img, r, z, c)
}

// The stroke grows inward from r, as wide as size.
func StrokeRoundRectangle(img draw.Image, r *image.Rectangle, radius, size int, c color.Color) {
	if c == nil || r.Empty() || size <= 0 {
		return
	}
	radius = ClampRadius(*r, radius)

	// the stroke covers everything
	if 2*size >= r.Dx() || 2*size >= r.Dy() {
		FillRoundRectangle(img, r, radius, c)
		return
	}
	if radius == 0 {
		BorderRectangle(img, r, c, size)
		return
	}

	sz := r.Size()
	z := vector.NewRasterizer(sz.X, sz.Y)
	outer := image.Rect(0, 0, sz.X, sz.Y)
	roundRectPath(z, outer, float32(radius), false)

	// opposite winding cuts the hole
	inner := outer.Inset(size)
	iradius := radius - size
	if iradius < 0 {
		iradius = 0
	}
	roundRectPath(z, inner, float32(iradius), true)

	drawRasterizer(img, r, z, c)
}

//----------

func drawRasterizer(img draw.Image, r *image.Rectangle, z *vector.Rasterizer, c color.Color) {
	mask := image.NewAlpha(z.Bounds())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	DrawUniformMask(img, r, c, mask, image.Point{}, draw.Over)
}

func roundRectPath(z *vector.Rasterizer, r image.Rectangle, rad float32, reverse bool) {
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	k := rad * (1 - kappa)

	if !reverse {
		z.MoveTo(x0+rad, y0)
		z.LineTo(x1-rad, y0)
		z.CubeTo(x1-k, y0, x1, y0+k, x1, y0+rad)
		z.LineTo(x1, y1-rad)
		z.CubeTo(x1, y1-k, x1-k, y1, x1-rad, y1)
		z.LineTo(x0+rad, y1)
		z.CubeTo(x0+k, y1, x0, y1-k, x0, y1-rad)
		z.LineTo(x0, y0+rad)
		z.CubeTo(x0, y0+k, x0+k, y0, x0+rad, y0)
	} else {
		z.MoveTo(x0+rad, y0)
		z.CubeTo(x0+k, y0, x0, y0+k, x0, y0+rad)
		z.LineTo(x0, y1-rad)
		z.CubeTo(x0, y1-k, x0+k, y1, x0+rad, y1)
		z.LineTo(x1-rad, y1)
		z.CubeTo(x1-k, y1, x1, y1-k, x1, y1-rad)
		z.LineTo(x1, y0+rad)
		z.CubeTo(x1, y0+k, x1-k, y0, x1-rad, y0)
	}
	z.ClosePath()
}
