package widget

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/roundui/roundui/util/fontutil"
	"github.com/roundui/roundui/util/imageutil"
)

// Theme key of the label styles.
const LabelType = "Label"

// Gap between the label left edge and its image.
const LabelImagePad = 8

// Names owned by Label. Other names go to EmbedNode.
const (
	ConfigText            = "text"
	ConfigFont            = "font"
	ConfigImage           = "image"
	ConfigState           = "state"
	ConfigUnderline       = "underline"
	ConfigWrap            = "wrap"
	ConfigForeground      = "foreground"
	ConfigBackground      = "background"
	ConfigHoverForeground = "hovercolor"
	ConfigHoverBackground = "hoverbackground"
	ConfigBorderColor     = "bordercolor"
	ConfigBorderWidth     = "borderwidth"
	ConfigBorderRadius    = "border_radius"
)

//----------

type State int

const (
	StateNormal State = iota
	StateHovered
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return NormalStyle
	case StateHovered:
		return HoveredStyle
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func ParseState(s string) (State, error) {
	switch s {
	case NormalStyle:
		return StateNormal, nil
	case HoveredStyle:
		return StateHovered, nil
	}
	return StateNormal, fmt.Errorf("unknown state: %q", s)
}

//----------

type LabelState struct {
	Text  string
	Font  *fontutil.Font
	Image image.Image // optional

	BorderRadius int
	BorderWidth  int

	Foreground      color.Color
	Background      color.Color
	HoverForeground color.Color
	HoverBackground color.Color
	BorderColor     color.Color

	State State

	// Kept and exposed through the config, not used when drawing.
	Underline bool
	Wrap      bool
}

// Rounded and bordered box with centered text, an optional image on the left, and a hover color state.
type Label struct {
	EmbedNode
	Hover Hover
	st    LabelState
}

// Style values not given in opts are resolved from theme with the "Label" key. Both the normal and hovered styles must resolve.
func NewLabel(parent *Frame, theme StyleResolver, width, height int, text string, opts ...LabelOption) (*Label, error) {
	li := labelInit{}
	li.st.Wrap = true
	for _, o := range opts {
		o(&li)
	}

	normal, err := theme.Resolve(LabelType, NormalStyle)
	if err != nil {
		return nil, err
	}
	hovered, err := theme.Resolve(LabelType, HoveredStyle)
	if err != nil {
		return nil, err
	}

	st := li.st
	st.Text = text
	if !li.has(optFont) {
		if fr, ok := theme.(FontResolver); ok {
			st.Font = fr.DefaultFont()
		} else {
			st.Font = defaultThemeFont()
		}
	}
	if !li.has(optBorderRadius) {
		st.BorderRadius = normal.BorderRadius
	}
	if !li.has(optBorderWidth) {
		st.BorderWidth = normal.BorderWidth
	}
	if !li.has(optForeground) {
		st.Foreground = normal.Foreground
	}
	if !li.has(optBackground) {
		st.Background = normal.Background
	}
	if !li.has(optHoverForeground) {
		st.HoverForeground = hovered.Foreground
	}
	if !li.has(optHoverBackground) {
		st.HoverBackground = hovered.Background
	}
	if !li.has(optBorderColor) {
		st.BorderColor = normal.BorderColor
	}

	l := &Label{st: st}
	l.EmbedNode = NewEmbedNode(width, height)
	l.Cursor = li.cursor
	if parent != nil {
		parent.Append(l)
	}
	return l, nil
}

//----------

func (l *Label) GetText() string {
	v, _ := l.ConfigGet(ConfigText)
	return v.(string)
}

func (l *Label) SetText(s string) {
	l.st.Text = s
}

// Copy of the current attributes.
func (l *Label) LabelState() LabelState {
	return l.st
}

func (l *Label) State() State {
	return l.st.State
}

// Stores s until the next update derives the state from hover again.
func (l *Label) SetState(s State) {
	l.st.State = s
}

func (l *Label) RefreshState() {
	if l.Hover.Hovered() {
		l.st.State = StateHovered
	} else {
		l.st.State = StateNormal
	}
}

func (l *Label) StateForeground() color.Color {
	if l.st.State == StateHovered {
		return l.st.HoverForeground
	}
	return l.st.Foreground
}

func (l *Label) StateBackground() color.Color {
	if l.st.State == StateHovered {
		return l.st.HoverBackground
	}
	return l.st.Background
}

//----------

func (l *Label) HandleEvent(ev interface{}) {
	l.Hover.Check(ev, l.Bounds)
}

func (l *Label) Update(dt time.Duration) {
	l.RefreshState()
}

func (l *Label) Draw(c Canvas) error {
	fg := l.StateForeground()
	bg := l.StateBackground()
	b := l.Bounds

	if err := c.FillRoundRect(b, l.st.BorderRadius, bg); err != nil {
		return err
	}
	// always called, a zero width strokes nothing
	if err := c.StrokeRoundRect(b, l.st.BorderRadius, l.st.BorderWidth, l.st.BorderColor); err != nil {
		return err
	}
	if err := c.DrawText(l.st.Font, l.st.Text, l.Center(), fg); err != nil {
		return err
	}
	if l.st.Image != nil {
		if err := c.DrawImage(l.st.Image, l.imagePoint()); err != nil {
			return err
		}
	}
	return nil
}

// Image top-left: vertically centered, padded from the left edge. Doesn't avoid the text.
func (l *Label) imagePoint() image.Point {
	size := l.st.Image.Bounds().Size()
	return image.Point{
		X: l.Bounds.Min.X + LabelImagePad,
		Y: l.Center().Y - size.Y/2,
	}
}

//----------

func (l *Label) ConfigGet(name string) (interface{}, error) {
	switch name {
	case ConfigText:
		return l.st.Text, nil
	case ConfigFont:
		return l.st.Font, nil
	case ConfigImage:
		return l.st.Image, nil
	case ConfigState:
		return l.st.State, nil
	case ConfigUnderline:
		return l.st.Underline, nil
	case ConfigWrap:
		return l.st.Wrap, nil
	case ConfigForeground:
		return l.st.Foreground, nil
	case ConfigBackground:
		return l.st.Background, nil
	case ConfigHoverForeground:
		return l.st.HoverForeground, nil
	case ConfigHoverBackground:
		return l.st.HoverBackground, nil
	case ConfigBorderColor:
		return l.st.BorderColor, nil
	case ConfigBorderWidth:
		return l.st.BorderWidth, nil
	case ConfigBorderRadius:
		return l.st.BorderRadius, nil
	}
	return l.EmbedNode.ConfigGet(name)
}

// Sets all names or none. Unknown names and values of the wrong type are errors.
func (l *Label) Configure(cfg Config) error {
	st, en := l.st, l.EmbedNode
	err := configureEach(cfg, l.configSet)
	if err != nil {
		l.st, l.EmbedNode = st, en // restore
	}
	return err
}

func (l *Label) configSet(name string, v interface{}) (bool, error) {
	var err error
	switch name {
	case ConfigText:
		l.st.Text, err = configString(name, v)
	case ConfigFont:
		if v == nil {
			l.st.Font = nil
			break
		}
		f, ok := v.(*fontutil.Font)
		if !ok {
			return true, configTypeErr(name, v, "*fontutil.Font")
		}
		l.st.Font = f
	case ConfigImage:
		if v == nil {
			l.st.Image = nil
			break
		}
		img, ok := v.(image.Image)
		if !ok {
			return true, configTypeErr(name, v, "image.Image")
		}
		if imageutil.IsNilImage(img) {
			img = nil
		}
		l.st.Image = img
	case ConfigState:
		switch t := v.(type) {
		case State:
			l.st.State = t
		case string:
			l.st.State, err = ParseState(t)
		default:
			return true, configTypeErr(name, v, "State")
		}
	case ConfigUnderline:
		l.st.Underline, err = configBool(name, v)
	case ConfigWrap:
		l.st.Wrap, err = configBool(name, v)
	case ConfigForeground:
		l.st.Foreground, err = configColor(name, v)
	case ConfigBackground:
		l.st.Background, err = configColor(name, v)
	case ConfigHoverForeground:
		l.st.HoverForeground, err = configColor(name, v)
	case ConfigHoverBackground:
		l.st.HoverBackground, err = configColor(name, v)
	case ConfigBorderColor:
		l.st.BorderColor, err = configColor(name, v)
	case ConfigBorderWidth:
		l.st.BorderWidth, err = configInt(name, v)
	case ConfigBorderRadius:
		l.st.BorderRadius, err = configInt(name, v)
	default:
		return l.EmbedNode.configSet(name, v)
	}
	return true, err
}

//----------

type LabelOption func(*labelInit)

type labelInit struct {
	st     LabelState
	cursor Cursor
	set    uint16
}

const (
	optFont uint16 = 1 << iota
	optForeground
	optBackground
	optHoverForeground
	optHoverBackground
	optBorderColor
	optBorderWidth
	optBorderRadius
)

func (li *labelInit) has(o uint16) bool {
	return li.set&o != 0
}

// A nil font is kept and fails when drawing.
func WithFont(f *fontutil.Font) LabelOption {
	return func(li *labelInit) {
		li.st.Font = f
		li.set |= optFont
	}
}
func WithImage(img image.Image) LabelOption {
	if imageutil.IsNilImage(img) {
		img = nil
	}
	return func(li *labelInit) { li.st.Image = img }
}
func WithForeground(c color.Color) LabelOption {
	return func(li *labelInit) {
		li.st.Foreground = c
		li.set |= optForeground
	}
}
func WithBackground(c color.Color) LabelOption {
	return func(li *labelInit) {
		li.st.Background = c
		li.set |= optBackground
	}
}
func WithHoverForeground(c color.Color) LabelOption {
	return func(li *labelInit) {
		li.st.HoverForeground = c
		li.set |= optHoverForeground
	}
}
func WithHoverBackground(c color.Color) LabelOption {
	return func(li *labelInit) {
		li.st.HoverBackground = c
		li.set |= optHoverBackground
	}
}
func WithBorderColor(c color.Color) LabelOption {
	return func(li *labelInit) {
		li.st.BorderColor = c
		li.set |= optBorderColor
	}
}
func WithBorderWidth(w int) LabelOption {
	return func(li *labelInit) {
		li.st.BorderWidth = w
		li.set |= optBorderWidth
	}
}
func WithBorderRadius(r int) LabelOption {
	return func(li *labelInit) {
		li.st.BorderRadius = r
		li.set |= optBorderRadius
	}
}
func WithState(s State) LabelOption {
	return func(li *labelInit) { li.st.State = s }
}
func WithUnderline(v bool) LabelOption {
	return func(li *labelInit) { li.st.Underline = v }
}
func WithWrap(v bool) LabelOption {
	return func(li *labelInit) { li.st.Wrap = v }
}
func WithCursor(c Cursor) LabelOption {
	return func(li *labelInit) { li.cursor = c }
}
