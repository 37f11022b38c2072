package widget

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/roundui/roundui/util/fontutil"
	"github.com/roundui/roundui/util/imageutil"
)

// Style state names.
const (
	NormalStyle  = "normal"
	HoveredStyle = "hovered"
)

var ErrThemeKey = errors.New("theme: missing key")

//----------

// Default style values for one widget type in one state.
type StyleDefaults struct {
	BorderRadius int
	BorderWidth  int
	Foreground   color.Color
	Background   color.Color
	BorderColor  color.Color
}

type StyleResolver interface {
	Resolve(widgetType, state string) (StyleDefaults, error)
}

// Optionally implemented by a StyleResolver to provide the default font.
type FontResolver interface {
	DefaultFont() *fontutil.Font
}

//----------

// nil is a valid receiver.
type Palette map[string]color.Color

func (pal Palette) Copy() Palette {
	pal2 := make(Palette, len(pal))
	for k, v := range pal {
		pal2[k] = v
	}
	return pal2
}

//----------

type WidgetStyle struct {
	BorderRadius int
	BorderWidth  int
	BorderColor  color.Color
	States       map[string]Palette // state name -> "fg","bg"
}

func (ws *WidgetStyle) Copy() *WidgetStyle {
	u := *ws
	u.States = make(map[string]Palette, len(ws.States))
	for k, p := range ws.States {
		u.States[k] = p.Copy()
	}
	return &u
}

//----------

// Style registry keyed by widget type name. Meant to be set up before the frame loop starts.
type Theme struct {
	Font    *fontutil.Font
	Widgets map[string]*WidgetStyle
}

func (t *Theme) Copy() *Theme {
	u := &Theme{Font: t.Font, Widgets: make(map[string]*WidgetStyle, len(t.Widgets))}
	for k, ws := range t.Widgets {
		u.Widgets[k] = ws.Copy()
	}
	return u
}

func (t *Theme) Resolve(widgetType, state string) (StyleDefaults, error) {
	ws, ok := t.Widgets[widgetType]
	if !ok || ws == nil {
		return StyleDefaults{}, fmt.Errorf("%w: %q", ErrThemeKey, widgetType)
	}
	pal, ok := ws.States[state]
	if !ok {
		return StyleDefaults{}, fmt.Errorf("%w: %q: %q", ErrThemeKey, widgetType, state)
	}
	sd := StyleDefaults{
		BorderRadius: ws.BorderRadius,
		BorderWidth:  ws.BorderWidth,
		BorderColor:  ws.BorderColor,
		Foreground:   pal["fg"],
		Background:   pal["bg"],
	}
	if sd.Foreground == nil {
		return StyleDefaults{}, fmt.Errorf("%w: %q: %q: fg", ErrThemeKey, widgetType, state)
	}
	if sd.Background == nil {
		return StyleDefaults{}, fmt.Errorf("%w: %q: %q: bg", ErrThemeKey, widgetType, state)
	}
	if sd.BorderColor == nil {
		return StyleDefaults{}, fmt.Errorf("%w: %q: bordercolor", ErrThemeKey, widgetType)
	}
	return sd, nil
}

func (t *Theme) DefaultFont() *fontutil.Font {
	if t.Font != nil {
		return t.Font
	}
	return defaultThemeFont()
}

//----------

func DefaultTheme() *Theme {
	fg := MustHexColor("#F5F7FA")
	bg := MustHexColor("#22304A")
	return &Theme{
		Widgets: map[string]*WidgetStyle{
			LabelType: {
				BorderRadius: 8,
				BorderWidth:  0,
				BorderColor:  MustHexColor("#339CFF"),
				States: map[string]Palette{
					NormalStyle:  {"fg": fg, "bg": bg},
					HoveredStyle: {"fg": fg, "bg": imageutil.TintOrShade(bg, 0.10)},
				},
			},
		},
	}
}

//----------

func HexColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

func MustHexColor(s string) color.Color {
	c, err := HexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

//----------

var _dft *fontutil.Font

func defaultThemeFont() *fontutil.Font {
	if _dft == nil {
		_dft = fontutil.DefaultFont()
	}
	return _dft
}
