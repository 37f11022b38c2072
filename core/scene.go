package core

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/roundui/roundui/util/fontutil"
	"github.com/roundui/roundui/util/uiutil/widget"
	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"gopkg.in/yaml.v3"
)

type Scene struct {
	Width      int     `toml:"width" yaml:"width"`
	Height     int     `toml:"height" yaml:"height"`
	Background string  `toml:"background" yaml:"background"`
	FontSize   float64 `toml:"font_size" yaml:"font_size"`

	// Delivered as a mouse move before the first frame.
	Pointer *Point `toml:"pointer" yaml:"pointer"`

	Labels []*LabelSpec `toml:"labels" yaml:"labels"`

	dir string // relative image paths are resolved here
}

type Point struct {
	X int `toml:"x" yaml:"x"`
	Y int `toml:"y" yaml:"y"`
}

func (p *Point) ImagePoint() image.Point {
	return image.Point{p.X, p.Y}
}

// Empty and nil fields fall back to the theme defaults.
type LabelSpec struct {
	X      int    `toml:"x" yaml:"x"`
	Y      int    `toml:"y" yaml:"y"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Text   string `toml:"text" yaml:"text"`

	FontSize float64 `toml:"font_size" yaml:"font_size"`
	Image    string  `toml:"image" yaml:"image"`
	IconSize int     `toml:"icon_size" yaml:"icon_size"` // max side, zero keeps the image size

	Foreground      string `toml:"foreground" yaml:"foreground"`
	Background      string `toml:"background" yaml:"background"`
	HoverForeground string `toml:"hovercolor" yaml:"hovercolor"`
	HoverBackground string `toml:"hoverbackground" yaml:"hoverbackground"`
	BorderColor     string `toml:"bordercolor" yaml:"bordercolor"`

	BorderRadius *int `toml:"border_radius" yaml:"border_radius"`
	BorderWidth  *int `toml:"borderwidth" yaml:"borderwidth"`

	State     string `toml:"state" yaml:"state"`
	Cursor    string `toml:"cursor" yaml:"cursor"`
	Underline *bool  `toml:"underline" yaml:"underline"`
	Wrap      *bool  `toml:"wrap" yaml:"wrap"`
}

//----------

// Format is chosen by the file extension: ".toml", ".yaml" or ".yml".
func LoadScene(filename string) (*Scene, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s, err := ParseScene(b, format)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	s.dir = filepath.Dir(filename)
	return s, nil
}

// Unknown keys are an error in both formats.
func ParseScene(b []byte, format string) (*Scene, error) {
	s := &Scene{}
	switch format {
	case "toml":
		md, err := toml.Decode(string(b), s)
		if err != nil {
			return nil, err
		}
		if u := md.Undecoded(); len(u) > 0 {
			return nil, fmt.Errorf("unknown keys: %v", u)
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported scene format: %q", format)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("bad scene size: %vx%v", s.Width, s.Height)
	}
	for i, ls := range s.Labels {
		if ls == nil {
			return fmt.Errorf("label %v: empty", i)
		}
		if ls.Width <= 0 || ls.Height <= 0 {
			return fmt.Errorf("label %v: bad size: %vx%v", i, ls.Width, ls.Height)
		}
	}
	return nil
}

func (s *Scene) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

func (s *Scene) BackgroundColor() (color.Color, error) {
	if s.Background == "" {
		return color.Black, nil
	}
	return ParseColor(s.Background)
}

func (s *Scene) Theme() *widget.Theme {
	th := widget.DefaultTheme()
	if s.FontSize > 0 {
		th.Font = fontutil.DefaultFont().WithSize(s.FontSize)
	}
	return th
}

//----------

// Builds the labels into a new frame with the scene size, in the order given.
func (s *Scene) Build(theme widget.StyleResolver) (*widget.Frame, []*widget.Label, error) {
	fr := widget.NewFrame(s.Width, s.Height)
	labels := []*widget.Label{}
	for i, ls := range s.Labels {
		opts, err := ls.options(s.dir)
		if err != nil {
			return nil, nil, fmt.Errorf("label %v: %w", i, err)
		}
		l, err := widget.NewLabel(fr, theme, ls.Width, ls.Height, ls.Text, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("label %v: %w", i, err)
		}
		l.Place(ls.X, ls.Y)
		labels = append(labels, l)
	}
	return fr, labels, nil
}

func (ls *LabelSpec) options(dir string) ([]widget.LabelOption, error) {
	opts := []widget.LabelOption{}

	colors := []struct {
		s  string
		fn func(color.Color) widget.LabelOption
	}{
		{ls.Foreground, widget.WithForeground},
		{ls.Background, widget.WithBackground},
		{ls.HoverForeground, widget.WithHoverForeground},
		{ls.HoverBackground, widget.WithHoverBackground},
		{ls.BorderColor, widget.WithBorderColor},
	}
	for _, u := range colors {
		if u.s == "" {
			continue
		}
		c, err := ParseColor(u.s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, u.fn(c))
	}

	if ls.FontSize > 0 {
		opts = append(opts, widget.WithFont(fontutil.DefaultFont().WithSize(ls.FontSize)))
	}
	if ls.Image != "" {
		filename := ls.Image
		if !filepath.IsAbs(filename) && dir != "" {
			filename = filepath.Join(dir, filename)
		}
		img, err := LoadIcon(filename, ls.IconSize)
		if err != nil {
			return nil, err
		}
		opts = append(opts, widget.WithImage(img))
	}
	if ls.BorderRadius != nil {
		opts = append(opts, widget.WithBorderRadius(*ls.BorderRadius))
	}
	if ls.BorderWidth != nil {
		opts = append(opts, widget.WithBorderWidth(*ls.BorderWidth))
	}
	if ls.State != "" {
		st, err := widget.ParseState(ls.State)
		if err != nil {
			return nil, err
		}
		opts = append(opts, widget.WithState(st))
	}
	if ls.Cursor != "" {
		c, err := widget.ParseCursor(ls.Cursor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, widget.WithCursor(c))
	}
	if ls.Underline != nil {
		opts = append(opts, widget.WithUnderline(*ls.Underline))
	}
	if ls.Wrap != nil {
		opts = append(opts, widget.WithWrap(*ls.Wrap))
	}
	return opts, nil
}

//----------

// Accepts "#rrggbb", "#rgb" or an SVG color name.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return widget.HexColor(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color: %q", s)
}

// Decodes a png, jpeg or webp image. A positive size scales the image to fit a size x size box.
func LoadIcon(filename string, size int) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	if size > 0 {
		img = ScaleToFit(img, size)
	}
	return img, nil
}

func ScaleToFit(img image.Image, size int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 || (w <= size && h <= size) {
		return img
	}
	if w >= h {
		w, h = size, max(1, h*size/w)
	} else {
		w, h = max(1, w*size/h), size
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
