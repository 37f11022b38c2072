// Canvas backed by a gg vector context.
package ggcanvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/roundui/roundui/util/fontutil"
	"github.com/roundui/roundui/util/imageutil"
	"github.com/roundui/roundui/util/uiutil/widget"
)

var _ widget.Canvas = (*Canvas)(nil)

type Canvas struct {
	dc    *gg.Context
	faces map[*fontutil.Font]*cachedFace
}

type cachedFace struct {
	src  *text.FontSource
	face text.Face
}

func New(width, height int) *Canvas {
	return newCanvas(gg.NewContext(width, height))
}

// Starts with the contents of img. The result is read back with Image().
func NewForImage(img image.Image) *Canvas {
	return newCanvas(gg.NewContextForImage(img))
}

func newCanvas(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc, faces: map[*fontutil.Font]*cachedFace{}}
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) Clear(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

func (c *Canvas) Close() error {
	var err error
	for f, fc := range c.faces {
		if err2 := fc.src.Close(); err2 != nil && err == nil {
			err = err2
		}
		delete(c.faces, f)
	}
	if err2 := c.dc.Close(); err2 != nil && err == nil {
		err = err2
	}
	return err
}

//----------

func (c *Canvas) FillRoundRect(r image.Rectangle, radius int, col color.Color) error {
	if r.Empty() {
		return nil
	}
	radius = imageutil.ClampRadius(r, radius)
	c.dc.SetColor(col)
	c.dc.DrawRoundedRectangle(
		float64(r.Min.X), float64(r.Min.Y),
		float64(r.Dx()), float64(r.Dy()),
		float64(radius))
	return c.dc.Fill()
}

// The gg stroke is centered on the path, so the path is inset by half the width to keep the stroke inside r.
func (c *Canvas) StrokeRoundRect(r image.Rectangle, radius, width int, col color.Color) error {
	if width <= 0 || r.Empty() {
		return nil
	}
	if 2*width >= r.Dx() || 2*width >= r.Dy() {
		return c.FillRoundRect(r, radius, col)
	}
	radius = imageutil.ClampRadius(r, radius)
	w := float64(width)
	rad := float64(radius) - w/2
	if rad < 0 {
		rad = 0
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(w)
	c.dc.DrawRoundedRectangle(
		float64(r.Min.X)+w/2, float64(r.Min.Y)+w/2,
		float64(r.Dx())-w, float64(r.Dy())-w,
		rad)
	return c.dc.Stroke()
}

func (c *Canvas) DrawText(f *fontutil.Font, s string, center image.Point, col color.Color) error {
	if f == nil {
		return fontutil.ErrNilFont
	}
	if s == "" {
		return nil
	}
	fc, err := c.face(f)
	if err != nil {
		return err
	}
	c.dc.SetFont(fc)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, float64(center.X), float64(center.Y), 0.5, 0.5)
	return nil
}

func (c *Canvas) DrawImage(img image.Image, p image.Point) error {
	if imageutil.IsNilImage(img) || img.Bounds().Empty() {
		return nil
	}
	buf := gg.ImageBufFromImage(img)
	if buf == nil {
		return fmt.Errorf("ggcanvas: unsupported image %T", img)
	}
	c.dc.DrawImage(buf, float64(p.X), float64(p.Y))
	return nil
}

//----------

func (c *Canvas) face(f *fontutil.Font) (text.Face, error) {
	if fc, ok := c.faces[f]; ok {
		return fc.face, nil
	}
	src, err := text.NewFontSource(f.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggcanvas: font source: %w", err)
	}
	fc := &cachedFace{src: src, face: src.Face(f.Size)}
	c.faces[f] = fc
	return fc.face, nil
}
