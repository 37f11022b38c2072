package core

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/roundui/roundui/util/imageutil"
	"github.com/roundui/roundui/util/uiutil/event"
	"github.com/roundui/roundui/util/uiutil/ggcanvas"
	"github.com/roundui/roundui/util/uiutil/widget"
)

// Drawing backends.
const (
	ImageBackend = "image"
	GGBackend    = "gg"
)

const FrameDuration = time.Second / 60

type Renderer struct {
	Scene  *Scene
	Frame  *widget.Frame
	Labels []*widget.Label
}

func NewRenderer(s *Scene) (*Renderer, error) {
	fr, labels, err := s.Build(s.Theme())
	if err != nil {
		return nil, err
	}
	return &Renderer{Scene: s, Frame: fr, Labels: labels}, nil
}

// Events for the first frame.
func (r *Renderer) initialEvents() []interface{} {
	if r.Scene.Pointer == nil {
		return nil
	}
	return []interface{}{&event.MouseMove{Point: r.Scene.Pointer.ImagePoint()}}
}

// Runs n frames (at least one) on the canvas. Only the first frame receives events.
func (r *Renderer) Run(c widget.Canvas, n int) error {
	if n < 1 {
		n = 1
	}
	evs := r.initialEvents()
	for i := 0; i < n; i++ {
		if err := r.Frame.RunFrame(evs, FrameDuration, c); err != nil {
			return fmt.Errorf("frame %v: %w", i, err)
		}
		evs = nil
	}
	return nil
}

// Runs n frames into a new image with the scene background.
func (r *Renderer) RenderImage(backend string, n int) (image.Image, error) {
	bg, err := r.Scene.BackgroundColor()
	if err != nil {
		return nil, err
	}
	switch backend {
	case ImageBackend, "":
		img := image.NewRGBA(r.Scene.Bounds())
		rect := img.Bounds()
		imageutil.FillRectangle(img, &rect, bg)
		if err := r.Run(widget.NewImageCanvas(img), n); err != nil {
			return nil, err
		}
		return img, nil
	case GGBackend:
		c := ggcanvas.New(r.Scene.Width, r.Scene.Height)
		defer c.Close()
		c.Clear(bg)
		if err := r.Run(c, n); err != nil {
			return nil, err
		}
		return c.Image(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

//----------

func WritePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
