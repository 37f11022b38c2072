package widget

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
	"time"
)

// Per-frame entry points. A container calls them on every child once per frame, in this order: all pending events, update, draw.
type Widget interface {
	Embed() *EmbedNode
	HandleEvent(ev interface{})
	Update(dt time.Duration)
	Draw(c Canvas) error
}

//----------

// Named values for the configure bridge.
type Config map[string]interface{}

var (
	ErrUnknownConfig = errors.New("unknown config name")
	ErrConfigType    = errors.New("bad config value type")
)

// Names owned by EmbedNode.
const (
	ConfigX      = "x"
	ConfigY      = "y"
	ConfigWidth  = "width"
	ConfigHeight = "height"
	ConfigCursor = "cursor"
)

//----------

// Geometry and the base of the configure bridge. Widgets embed it and handle the config names they own, forwarding the rest here.
type EmbedNode struct {
	Bounds image.Rectangle
	Cursor Cursor
	Parent *EmbedNode
}

func NewEmbedNode(width, height int) EmbedNode {
	return EmbedNode{Bounds: image.Rect(0, 0, width, height)}
}

func (en *EmbedNode) Embed() *EmbedNode {
	return en
}

//----------

// Moves the top-left corner to (x,y), keeping the size.
func (en *EmbedNode) Place(x, y int) {
	en.Bounds = en.Bounds.Sub(en.Bounds.Min).Add(image.Point{x, y})
}

func (en *EmbedNode) Resize(width, height int) {
	en.Bounds.Max = en.Bounds.Min.Add(image.Point{width, height})
}

func (en *EmbedNode) Center() image.Point {
	b := en.Bounds
	return image.Point{b.Min.X + b.Dx()/2, b.Min.Y + b.Dy()/2}
}

//----------

func (en *EmbedNode) ConfigGet(name string) (interface{}, error) {
	switch name {
	case ConfigX:
		return en.Bounds.Min.X, nil
	case ConfigY:
		return en.Bounds.Min.Y, nil
	case ConfigWidth:
		return en.Bounds.Dx(), nil
	case ConfigHeight:
		return en.Bounds.Dy(), nil
	case ConfigCursor:
		return en.Cursor, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownConfig, name)
}

func (en *EmbedNode) Configure(cfg Config) error {
	u := *en
	err := configureEach(cfg, en.configSet)
	if err != nil {
		*en = u // restore
	}
	return err
}

// Returns false if the name is not owned by this node.
func (en *EmbedNode) configSet(name string, v interface{}) (bool, error) {
	switch name {
	case ConfigX, ConfigY, ConfigWidth, ConfigHeight:
		i, err := configInt(name, v)
		if err != nil {
			return true, err
		}
		switch name {
		case ConfigX:
			en.Place(i, en.Bounds.Min.Y)
		case ConfigY:
			en.Place(en.Bounds.Min.X, i)
		case ConfigWidth:
			en.Resize(i, en.Bounds.Dy())
		case ConfigHeight:
			en.Resize(en.Bounds.Dx(), i)
		}
		return true, nil
	case ConfigCursor:
		c, ok := v.(Cursor)
		if !ok {
			return true, configTypeErr(name, v, "Cursor")
		}
		en.Cursor = c
		return true, nil
	}
	return false, nil
}

//----------

// Runs set on each name in sorted order, stopping at the first error or at a name nobody owns.
func configureEach(cfg Config, set func(string, interface{}) (bool, error)) error {
	names := make([]string, 0, len(cfg))
	for k := range cfg {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		handled, err := set(name, cfg[name])
		if err != nil {
			return err
		}
		if !handled {
			return fmt.Errorf("%w: %q", ErrUnknownConfig, name)
		}
	}
	return nil
}

func configTypeErr(name string, v interface{}, want string) error {
	return fmt.Errorf("%w: %q: %T, expecting %s", ErrConfigType, name, v, want)
}

func configInt(name string, v interface{}) (int, error) {
	i, ok := v.(int)
	if !ok {
		return 0, configTypeErr(name, v, "int")
	}
	return i, nil
}

func configBool(name string, v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, configTypeErr(name, v, "bool")
	}
	return b, nil
}

func configString(name string, v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", configTypeErr(name, v, "string")
	}
	return s, nil
}

func configColor(name string, v interface{}) (color.Color, error) {
	c, ok := v.(color.Color)
	if !ok || c == nil {
		return nil, configTypeErr(name, v, "color.Color")
	}
	return c, nil
}
