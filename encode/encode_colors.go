package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/fbx-format/go-fbx/token"
)

type Colorable struct {
	Type token.ValueType
	Attr token.ColorAttr
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

var valueTypes = []token.ValueType{
	token.ValueNone,
	token.ValueBool,
	token.ValueByte,
	token.ValueShort,
	token.ValueInteger,
	token.ValueLong,
	token.ValueFloat,
	token.ValueDouble,
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range valueTypes {
		able := Colorable{Type: t, Attr: token.SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = token.ArrayColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	}
	able := Colorable{Type: token.ValueNone}
	able.Attr = token.HeaderColor
	colors.Map[able] = color.BlueString
	able.Attr = token.IdentifierColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = token.StringColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Attr = token.ValueColor
	able.Type = token.ValueBool
	colors.Map[able] = color.CyanString
	for _, t := range []token.ValueType{token.ValueByte, token.ValueShort, token.ValueInteger, token.ValueLong} {
		able.Type = t
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	for _, t := range []token.ValueType{token.ValueFloat, token.ValueDouble} {
		able.Type = t
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// Color has the signature of token.ColorFunc.
func (c *Colors) Color(t token.ValueType, a token.ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t token.ValueType, a token.ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
