package encode

import (
	"github.com/signadot/serpent-format/go-serpent/ir"

	"github.com/fatih/color"
)

// Colorable selects a color by the type of the value being written and
// the role of the text within it.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

var (
	numberColor = color.RGB(128, 216, 236)
	sepColor    = color.RGB(255, 0, 196)

	palette = map[Colorable]*color.Color{
		{ir.IntType, ValueColor}:     numberColor,
		{ir.FloatType, ValueColor}:   numberColor,
		{ir.ComplexType, ValueColor}: color.RGB(96, 176, 236),
		{ir.NoneType, ValueColor}:    color.RGB(168, 0, 196),
		{ir.BoolType, ValueColor}:    color.New(color.FgCyan),
		{ir.StringType, ValueColor}:  color.RGB(8, 196, 16),
		{ir.BytesType, ValueColor}:   color.RGB(198, 198, 46),
		{ir.DictType, FieldColor}:    color.RGB(128, 168, 196),
		{ir.DictType, SepColor}:      color.RGB(196, 128, 128),
	}
)

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		colors.set(Colorable{t, CommentColor}, color.New(color.FgBlue))
		colors.set(Colorable{t, SepColor}, sepColor)
	}
	for able, c := range palette {
		colors.set(able, c)
	}
	return colors
}

// set installs c for able. The text is never treated as a format.
func (c *Colors) set(able Colorable, cc *color.Color) {
	sprint := cc.SprintFunc()
	c.Map[able] = func(v string, _ ...any) string {
		return sprint(v)
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	if f := c.Map[Colorable{Type: t, Attr: a}]; f != nil {
		return f
	}
	return c.Default
}
