package testutil

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"
)

func ClearImg(img draw.Image) {
	ClearImg2(img, colornames.Lightgray)
}
func ClearImg2(img draw.Image, c color.Color) {
	r := img.Bounds()
	src := image.NewUniform(c)
	draw.DrawMask(img, r, src, image.Point{}, nil, image.Point{}, draw.Src)
}

func NewImg(w, h int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ClearImg2(img, bg)
	return img
}

//----------

func CompareImgs(img1, img2 image.Image) error {
	if img1.Bounds() != img2.Bounds() {
		return fmt.Errorf("bounds: %v %v", img1.Bounds(), img2.Bounds())
	}
	b1 := img1.Bounds()
	nFails := 0
	firstFail := image.Point{}
	for y := b1.Min.Y; y < b1.Max.Y; y++ {
		for x := b1.Min.X; x < b1.Max.X; x++ {
			c1 := color.RGBAModel.Convert(img1.At(x, y))
			c2 := color.RGBAModel.Convert(img2.At(x, y))
			if c1 != c2 {
				nFails++
				if nFails == 1 {
					firstFail = image.Point{x, y}
				}
			}
		}
	}
	if nFails > 0 {
		x, y := firstFail.X, firstFail.Y
		c1 := color.RGBAModel.Convert(img1.At(x, y))
		c2 := color.RGBAModel.Convert(img2.At(x, y))
		return fmt.Errorf("colors: xy=(%v,%v): %v %v (nfails: %v)", x, y, c1, c2, nFails)
	}
	return nil
}

//----------

// Compares the pixel at p with c, allowing tol difference per channel.
func CheckColorAt(img image.Image, p image.Point, c color.Color, tol uint8) error {
	c1 := color.RGBAModel.Convert(img.At(p.X, p.Y)).(color.RGBA)
	c2 := color.RGBAModel.Convert(c).(color.RGBA)
	diff := func(a, b uint8) uint8 {
		if a > b {
			return a - b
		}
		return b - a
	}
	if diff(c1.R, c2.R) > tol || diff(c1.G, c2.G) > tol ||
		diff(c1.B, c2.B) > tol || diff(c1.A, c2.A) > tol {
		return fmt.Errorf("color at %v: got %v, expected %v", p, c1, c2)
	}
	return nil
}

func CountColor(img image.Image, c color.Color) int {
	c2 := color.RGBAModel.Convert(c)
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) == c2 {
				n++
			}
		}
	}
	return n
}
