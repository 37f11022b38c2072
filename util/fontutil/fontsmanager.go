package fontutil

import (
	"errors"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var ErrNilFont = errors.New("nil font")

// Used when a font is created without a size.
const DefaultSize = 18

func DefaultFont() *Font {
	f, err := NewFont(goregular.TTF, DefaultSize)
	if err != nil {
		panic(err)
	}
	return f
}

//----------

var FontsMan = NewFontsManager()

// Caches parsed fonts by their ttf bytes. Not safe for concurrent use, meant for the ui loop.
type FontsManager struct {
	fontsCache map[string]*truetype.Font
}

func NewFontsManager() *FontsManager {
	fm := &FontsManager{}
	fm.ClearFontsCache()
	return fm
}

func (fm *FontsManager) ClearFontsCache() {
	fm.fontsCache = map[string]*truetype.Font{}
}

func (fm *FontsManager) Parse(ttf []byte) (*truetype.Font, error) {
	f, ok := fm.fontsCache[string(ttf)]
	if ok {
		return f, nil
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	fm.fontsCache[string(ttf)] = f
	return f, nil
}

//----------

// Font source bytes plus a size. Other drawing backends can build their own faces from TTF.
type Font struct {
	TTF  []byte
	Size float64 // in points, readonly

	ttfont *truetype.Font
	face   font.Face
}

func NewFont(ttf []byte, size float64) (*Font, error) {
	ttfont, err := FontsMan.Parse(ttf)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultSize
	}
	return &Font{TTF: ttf, Size: size, ttfont: ttfont}, nil
}

func (f *Font) WithSize(size float64) *Font {
	if size <= 0 {
		size = DefaultSize
	}
	return &Font{TTF: f.TTF, Size: size, ttfont: f.ttfont}
}

func (f *Font) Face() font.Face {
	if f.face == nil {
		opt := &truetype.Options{
			Size:    f.Size,
			DPI:     72,
			Hinting: font.HintingFull,
		}
		f.face = NewFaceRunes(truetype.NewFace(f.ttfont, opt))
	}
	return f.face
}

func (f *Font) LineHeight() int {
	m := f.Face().Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

func (f *Font) Ascent() int {
	return f.Face().Metrics().Ascent.Ceil()
}

// Size of the single line text box: advance width by line height.
func (f *Font) Measure(s string) image.Point {
	w := font.MeasureString(f.Face(), s)
	return image.Point{w.Ceil(), f.LineHeight()}
}
