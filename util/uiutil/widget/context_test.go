package widget

import (
	"image"
	"image/color"
	"testing"

	"github.com/roundui/roundui/util/testutil"
	"golang.org/x/image/colornames"
)

func TestImageCanvasLabel(t *testing.T) {
	th := DefaultTheme()
	l, err := NewLabel(nil, th, 100, 40, "Hi", WithBorderWidth(2))
	if err != nil {
		t.Fatal(err)
	}
	n, _ := th.Resolve(LabelType, NormalStyle)
	h, _ := th.Resolve(LabelType, HoveredStyle)

	img := testutil.NewImg(100, 40, colornames.White)
	if err := l.Draw(NewImageCanvas(img)); err != nil {
		t.Fatal(err)
	}
	// rounded corner keeps the canvas color
	if err := testutil.CheckColorAt(img, image.Point{0, 0}, colornames.White, 0); err != nil {
		t.Fatal(err)
	}
	// border on the edge, background inside
	if err := testutil.CheckColorAt(img, image.Point{50, 0}, n.BorderColor, 0); err != nil {
		t.Fatal(err)
	}
	if err := testutil.CheckColorAt(img, image.Point{5, 20}, n.Background, 0); err != nil {
		t.Fatal(err)
	}
	// some text pixels in the foreground color
	if testutil.CountColor(img, n.Foreground) == 0 {
		t.Fatal("no text")
	}

	l.HandleEvent(mouseAt(50, 20))
	l.Update(0)
	if err := l.Draw(NewImageCanvas(img)); err != nil {
		t.Fatal(err)
	}
	if err := testutil.CheckColorAt(img, image.Point{5, 20}, h.Background, 0); err != nil {
		t.Fatal(err)
	}
}

func TestImageCanvasImage(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	icon := testutil.NewImg(6, 4, red)

	th := DefaultTheme()
	l, err := NewLabel(nil, th, 100, 40, "", WithImage(icon))
	if err != nil {
		t.Fatal(err)
	}
	img := testutil.NewImg(100, 40, colornames.White)
	if err := l.Draw(NewImageCanvas(img)); err != nil {
		t.Fatal(err)
	}
	if n := testutil.CountColor(img, red); n != 6*4 {
		t.Fatal(n)
	}
	if err := testutil.CheckColorAt(img, image.Point{8, 18}, red, 0); err != nil {
		t.Fatal(err)
	}
	if err := testutil.CheckColorAt(img, image.Point{13, 21}, red, 0); err != nil {
		t.Fatal(err)
	}
}
