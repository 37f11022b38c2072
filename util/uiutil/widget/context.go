package widget

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/roundui/roundui/util/fontutil"
	"github.com/roundui/roundui/util/imageutil"
)

// Drawing primitives used by widgets when painting. Later calls paint over earlier ones.
type Canvas interface {
	FillRoundRect(r image.Rectangle, radius int, c color.Color) error
	// Stroke grows inward from r. A zero width draws nothing.
	StrokeRoundRect(r image.Rectangle, radius, width int, c color.Color) error
	// Single line of text with its box centered at center.
	DrawText(f *fontutil.Font, s string, center image.Point, c color.Color) error
	// Image top-left at p.
	DrawImage(img image.Image, p image.Point) error
}

//----------

// Canvas on a raster image.
type ImageCanvas struct {
	img draw.Image
}

func NewImageCanvas(img draw.Image) *ImageCanvas {
	return &ImageCanvas{img: img}
}

func (ic *ImageCanvas) Image() draw.Image {
	return ic.img
}

func (ic *ImageCanvas) FillRoundRect(r image.Rectangle, radius int, c color.Color) error {
	imageutil.FillRoundRectangle(ic.img, &r, radius, c)
	return nil
}

func (ic *ImageCanvas) StrokeRoundRect(r image.Rectangle, radius, width int, c color.Color) error {
	imageutil.StrokeRoundRectangle(ic.img, &r, radius, width, c)
	return nil
}

func (ic *ImageCanvas) DrawText(f *fontutil.Font, s string, center image.Point, c color.Color) error {
	return fontutil.DrawCentered(ic.img, f, s, center, c)
}

func (ic *ImageCanvas) DrawImage(img image.Image, p image.Point) error {
	if imageutil.IsNilImage(img) {
		return nil
	}
	imageutil.DrawOver(ic.img, img, p)
	return nil
}
