package properties

import (
	"strings"

	"cssprop/css"
)

// WithLength accepts dimensions with known length units and unitless zero.
func WithLength() Converter[Length] {
	return ConverterFunc[Length](convertLength)
}

// WithLengthOrPercent accepts lengths and percentages.
func WithLengthOrPercent() Converter[Length] {
	return ConverterFunc[Length](func(v css.Value) (Length, bool) {
		if u, ok := css.AsUnit(v); ok && u.Kind == css.KindPercentage {
			return Length{Value: u.Number, Unit: UnitPercent}, true
		}
		return convertLength(v)
	})
}

// NonNegative rejects negative lengths.
func NonNegative(inner Converter[Length]) Converter[Length] {
	return Where(inner, func(l Length) bool { return l.Value >= 0 })
}

func convertLength(v css.Value) (Length, bool) {
	u, ok := css.AsUnit(v)
	if !ok {
		return Length{}, false
	}
	switch u.Kind {
	case css.KindNumber:
		if u.Number == 0 {
			return Zero, true
		}
	case css.KindDimension:
		if unit, ok := ParseLengthUnit(u.Dimension); ok && unit != UnitPercent {
			return Length{Value: u.Number, Unit: unit}, true
		}
	}
	return Length{}, false
}

// cssWideKeywords may never be used as custom identifiers.
var cssWideKeywords = map[string]bool{
	"initial": true,
	"inherit": true,
	"unset":   true,
	"revert":  true,
	"default": true,
}

// WithIdentifier accepts any identifier and returns it lowercased.
func WithIdentifier() Converter[string] {
	return ConverterFunc[string](func(v css.Value) (string, bool) {
		u, ok := css.AsUnit(v)
		if !ok || u.Kind != css.KindIdent {
			return "", false
		}
		return strings.ToLower(u.Data), true
	})
}

// WithAnimatableIdentifier accepts "all" and property names. Unknown names are
// allowed, CSS-wide keywords and "none" are not.
func WithAnimatableIdentifier() Converter[string] {
	return Where(WithIdentifier(), func(s string) bool {
		return s != "none" && !cssWideKeywords[s]
	})
}

// Color is a CSS color in canonical textual form.
type Color string

const (
	ColorCurrent     Color = "currentcolor"
	ColorTransparent Color = "transparent"
)

// String returns the color text.
func (c Color) String() string {
	return string(c)
}

var namedColors = map[string]bool{
	"black": true, "silver": true, "gray": true, "grey": true, "white": true,
	"maroon": true, "red": true, "purple": true, "fuchsia": true, "green": true,
	"lime": true, "olive": true, "yellow": true, "navy": true, "blue": true,
	"teal": true, "aqua": true, "orange": true,
	"currentcolor": true, "transparent": true,
}

var colorFunctions = []string{"rgb(", "rgba(", "hsl(", "hsla(", "hwb(", "lab(", "lch(", "color("}

// WithColor accepts named colors, hex colors and color functions.
func WithColor() Converter[Color] {
	return ConverterFunc[Color](func(v css.Value) (Color, bool) {
		u, ok := css.AsUnit(v)
		if !ok {
			return "", false
		}
		switch u.Kind {
		case css.KindIdent:
			name := strings.ToLower(u.Data)
			if namedColors[name] {
				return Color(name), true
			}
		case css.KindHash:
			if isHexColor(u.Data) {
				return Color(strings.ToLower(u.Data)), true
			}
		case css.KindFunction:
			lower := strings.ToLower(u.Data)
			for _, fn := range colorFunctions {
				if strings.HasPrefix(lower, fn) {
					return Color(lower), true
				}
			}
		}
		return "", false
	})
}

func isHexColor(s string) bool {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return false
	}
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// TextDecorationStyle is the style of text decoration lines.
type TextDecorationStyle int

const (
	TextDecorationStyleSolid TextDecorationStyle = iota
	TextDecorationStyleDouble
	TextDecorationStyleDotted
	TextDecorationStyleDashed
	TextDecorationStyleWavy
)

var (
	textDecorationStyleNames = [...]string{"solid", "double", "dotted", "dashed", "wavy"}
	textDecorationStyles     = keywordTable[TextDecorationStyle](textDecorationStyleNames[:])
)

func (s TextDecorationStyle) String() string {
	return keywordName(textDecorationStyleNames[:], s)
}

// TextDecorationLine is a kind of text decoration line.
type TextDecorationLine int

const (
	TextDecorationLineUnderline TextDecorationLine = iota
	TextDecorationLineOverline
	TextDecorationLineThrough
	TextDecorationLineBlink
)

var (
	textDecorationLineNames = [...]string{"underline", "overline", "line-through", "blink"}
	textDecorationLines     = keywordTable[TextDecorationLine](textDecorationLineNames[:])
)

func (l TextDecorationLine) String() string {
	return keywordName(textDecorationLineNames[:], l)
}

// BorderStyle is the line style of a border side.
type BorderStyle int

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleHidden
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

var (
	borderStyleNames = [...]string{
		"none", "hidden", "dotted", "dashed", "solid",
		"double", "groove", "ridge", "inset", "outset",
	}
	borderStyles = keywordTable[BorderStyle](borderStyleNames[:])
)

func (s BorderStyle) String() string {
	return keywordName(borderStyleNames[:], s)
}

// BorderWidth is a border side width, either a keyword or explicit length.
type BorderWidth struct {
	Keyword string // thin, medium, thick or empty for explicit lengths
	Length  Length
}

var (
	BorderWidthThin   = BorderWidth{Keyword: "thin", Length: Px(1)}
	BorderWidthMedium = BorderWidth{Keyword: "medium", Length: Px(3)}
	BorderWidthThick  = BorderWidth{Keyword: "thick", Length: Px(5)}
)

var borderWidths = map[string]BorderWidth{
	"thin":   BorderWidthThin,
	"medium": BorderWidthMedium,
	"thick":  BorderWidthThick,
}

// String returns the keyword if any, or the length.
func (w BorderWidth) String() string {
	if w.Keyword != "" {
		return w.Keyword
	}
	return w.Length.String()
}

// WithBorderWidth accepts width keywords and non-negative lengths.
func WithBorderWidth() Converter[BorderWidth] {
	return Or(
		From(borderWidths),
		Map(NonNegative(WithLength()), func(l Length) BorderWidth { return BorderWidth{Length: l} }),
	)
}

// keywordTable maps names to enum values, names are indexed by value.
func keywordTable[T ~int](names []string) map[string]T {
	table := make(map[string]T, len(names))
	for i, name := range names {
		table[name] = T(i)
	}
	return table
}

func keywordName[T ~int](names []string, v T) string {
	if v < 0 || int(v) >= len(names) {
		return ""
	}
	return names[v]
}
