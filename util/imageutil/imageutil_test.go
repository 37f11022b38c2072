package imageutil

import (
	"image"
	"image/color"
	"testing"

	"github.com/roundui/roundui/util/testutil"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func TestClampRadius(t *testing.T) {
	r := image.Rect(0, 0, 100, 40)
	if v := ClampRadius(r, 8); v != 8 {
		t.Fatal(v)
	}
	if v := ClampRadius(r, 50); v != 20 {
		t.Fatal(v)
	}
	if v := ClampRadius(r, -3); v != 0 {
		t.Fatal(v)
	}
}

func TestFillRoundRectangle1(t *testing.T) {
	img := testutil.NewImg(100, 40, white)
	r := img.Bounds()
	FillRoundRectangle(img, &r, 10, red)

	// center filled
	if err := testutil.CheckColorAt(img, image.Point{50, 20}, red, 0); err != nil {
		t.Fatal(err)
	}
	// straight edge filled
	if err := testutil.CheckColorAt(img, image.Point{50, 0}, red, 0); err != nil {
		t.Fatal(err)
	}
	// corner left untouched
	if err := testutil.CheckColorAt(img, image.Point{0, 0}, white, 0); err != nil {
		t.Fatal(err)
	}
	if err := testutil.CheckColorAt(img, image.Point{99, 39}, white, 0); err != nil {
		t.Fatal(err)
	}
}

func TestFillRoundRectangle2(t *testing.T) {
	// zero radius fills the whole rectangle
	img := testutil.NewImg(20, 20, white)
	r := image.Rect(5, 5, 15, 15)
	FillRoundRectangle(img, &r, 0, blue)
	if n := testutil.CountColor(img, blue); n != 100 {
		t.Fatal(n)
	}
	if err := testutil.CheckColorAt(img, image.Point{4, 4}, white, 0); err != nil {
		t.Fatal(err)
	}
}

func TestStrokeRoundRectangle1(t *testing.T) {
	img := testutil.NewImg(100, 40, white)
	r := img.Bounds()
	StrokeRoundRectangle(img, &r, 8, 2, blue)

	// hole is untouched
	if err := testutil.CheckColorAt(img, image.Point{50, 20}, white, 0); err != nil {
		t.Fatal(err)
	}
	// stroke on the top edge
	if err := testutil.CheckColorAt(img, image.Point{50, 0}, blue, 0); err != nil {
		t.Fatal(err)
	}
	if err := testutil.CheckColorAt(img, image.Point{50, 1}, blue, 0); err != nil {
		t.Fatal(err)
	}
	if err := testutil.CheckColorAt(img, image.Point{50, 3}, white, 0); err != nil {
		t.Fatal(err)
	}
}

func TestStrokeRoundRectangle2(t *testing.T) {
	// zero width draws nothing
	img := testutil.NewImg(30, 30, white)
	r := img.Bounds()
	StrokeRoundRectangle(img, &r, 4, 0, blue)
	if n := testutil.CountColor(img, white); n != 30*30 {
		t.Fatal(n)
	}
}

func TestStrokeRoundRectangle3(t *testing.T) {
	// square corners use the border rectangle
	img := testutil.NewImg(10, 10, white)
	r := img.Bounds()
	StrokeRoundRectangle(img, &r, 0, 1, red)
	if n := testutil.CountColor(img, red); n != 36 {
		t.Fatal(n)
	}
}

func TestIsNilImage(t *testing.T) {
	var rgba *image.RGBA
	if !IsNilImage(nil) || !IsNilImage(rgba) {
		t.Fatal("expecting nil")
	}
	if IsNilImage(image.NewRGBA(image.Rect(0, 0, 1, 1))) {
		t.Fatal("not nil")
	}
}

func TestTintOrShade(t *testing.T) {
	c := TintOrShade(color.RGBA{0, 0, 0, 255}, 0.5)
	if SprintRgb(c) != "#7f7f7f" {
		t.Fatal(SprintRgb(c))
	}
	c = TintOrShade(white, 0.5)
	if SprintRgb(c) != "#7f7f7f" {
		t.Fatal(SprintRgb(c))
	}
}

//----------

var drawRect = image.Rect(0, 0, 400, 400)

func BenchmarkFillRoundRect(b *testing.B) {
	img := image.NewRGBA(drawRect)
	bounds := img.Bounds()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FillRoundRectangle(img, &bounds, 12, white)
	}
}
func BenchmarkStrokeRoundRect(b *testing.B) {
	img := image.NewRGBA(drawRect)
	bounds := img.Bounds()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		StrokeRoundRectangle(img, &bounds, 12, 3, white)
	}
}
