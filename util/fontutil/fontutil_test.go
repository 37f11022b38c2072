package fontutil

import (
	"image"
	"image/color"
	"testing"

	"github.com/roundui/roundui/util/testutil"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFontsManagerCache(t *testing.T) {
	fm := NewFontsManager()
	f1, err := fm.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := fm.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if f1 != f2 {
		t.Fatal("expecting cached font")
	}
}

func TestNewFontBadData(t *testing.T) {
	_, err := NewFont([]byte("not a font"), 12)
	if err == nil {
		t.Fatal("expecting error")
	}
}

func TestMeasure(t *testing.T) {
	f := DefaultFont()
	if f.Size != DefaultSize {
		t.Fatal(f.Size)
	}
	m0 := f.Measure("")
	if m0.X != 0 || m0.Y != f.LineHeight() {
		t.Fatal(m0)
	}
	m1 := f.Measure("Hi")
	m2 := f.Measure("Hi there")
	if !(m1.X > 0 && m2.X > m1.X) {
		t.Fatal(m1, m2)
	}

	// bigger size, wider text
	m3 := f.WithSize(36).Measure("Hi")
	if m3.X <= m1.X {
		t.Fatal(m1, m3)
	}
}

func TestMeasureTab(t *testing.T) {
	f := DefaultFont()
	a := f.Measure("\t")
	b := f.Measure("    ")
	if a.X != b.X {
		t.Fatal(a, b)
	}
}

func TestDrawCentered(t *testing.T) {
	bg := color.RGBA{255, 255, 255, 255}
	img := testutil.NewImg(100, 40, bg)
	f := DefaultFont()
	if err := DrawCentered(img, f, "Hi", image.Point{50, 20}, color.Black); err != nil {
		t.Fatal(err)
	}
	if n := testutil.CountColor(img, bg); n == 100*40 {
		t.Fatal("nothing was drawn")
	}

	// glyphs stay around the center
	o := CenteredOrigin(f, "Hi", image.Point{50, 20})
	m := f.Measure("Hi")
	r := image.Rectangle{o, o.Add(m)}
	if img.At(2, 2) != bg || !r.In(img.Bounds()) {
		t.Fatal(r)
	}
}

func TestDrawCenteredNilFont(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if err := DrawCentered(img, nil, "x", image.Point{}, color.Black); err != ErrNilFont {
		t.Fatal(err)
	}
}
