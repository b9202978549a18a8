package report

import (
	"strings"

	"github.com/fatih/color"

	"github.com/mdpcardoso/ribs/record"
)

type Colorable struct {
	Kind record.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	PosColor ColorAttr = iota
	OrgColor
	KindColor
	DetailColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range record.Kinds() {
		able := Colorable{Kind: k, Attr: PosColor}
		colors.Map[able] = color.New(color.Faint).SprintfFunc()
		able.Attr = OrgColor
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	able := Colorable{Kind: record.KindLiteral, Attr: KindColor}
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Attr = DetailColor
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()

	able = Colorable{Kind: record.KindFill, Attr: KindColor}
	colors.Map[able] = color.CyanString
	able.Attr = DetailColor
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k record.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k record.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
