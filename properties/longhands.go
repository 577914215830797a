package properties

import (
	"slices"
	"strings"
)

// Property names.
const (
	NameLetterSpacing       = "letter-spacing"
	NameWordSpacing         = "word-spacing"
	NameTextDecoration      = "text-decoration"
	NameTextDecorationLine  = "text-decoration-line"
	NameTextDecorationStyle = "text-decoration-style"
	NameTextDecorationColor = "text-decoration-color"
	NameTransitionProperty  = "transition-property"
	NameMargin              = "margin"
	NamePadding             = "padding"
	NameBorderWidth         = "border-width"
	NameBorderStyle         = "border-style"
	NameBorderColor         = "border-color"
)

// Side is a box side.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

func (s Side) String() string {
	return sideNames[s]
}

// Spacing is letter-spacing or word-spacing: "normal" or an extra length.
type Spacing struct {
	*Longhand[*Length]
}

var spacingConverter = Or(Keyword[*Length]("normal", nil), Nullable(WithLength()))

func formatSpacing(l *Length) string {
	if l == nil {
		return "normal"
	}
	return l.String()
}

// NewLetterSpacing creates letter-spacing property.
func NewLetterSpacing() *Spacing {
	return &Spacing{newLonghand(NameLetterSpacing, FlagInherited|FlagUnitless|FlagAnimatable, nil, spacingConverter, formatSpacing)}
}

// NewWordSpacing creates word-spacing property.
func NewWordSpacing() *Spacing {
	return &Spacing{newLonghand(NameWordSpacing, FlagInherited|FlagUnitless|FlagAnimatable, nil, spacingConverter, formatSpacing)}
}

// IsNormal reports whether spacing is the font default. Normal spacing may be
// altered to justify text, which is the difference from zero length.
func (p *Spacing) IsNormal() bool {
	return p.Value() == nil
}

// Spacing returns custom spacing, nil when normal.
func (p *Spacing) Spacing() *Length {
	return p.Value()
}

// TextDecorationStyleProperty is text-decoration-style.
type TextDecorationStyleProperty struct {
	*Longhand[TextDecorationStyle]
}

// NewTextDecorationStyle creates text-decoration-style property.
func NewTextDecorationStyle() *TextDecorationStyleProperty {
	return &TextDecorationStyleProperty{newLonghand(NameTextDecorationStyle, FlagNone,
		TextDecorationStyleSolid, From(textDecorationStyles), TextDecorationStyle.String)}
}

// DecorationStyle returns selected style.
func (p *TextDecorationStyleProperty) DecorationStyle() TextDecorationStyle {
	return p.Value()
}

// TextDecorationLineProperty is text-decoration-line.
type TextDecorationLineProperty struct {
	*Longhand[[]TextDecorationLine]
}

var textDecorationLineConverter = Or(
	Keyword("none", []TextDecorationLine{}),
	Where(Many(From(textDecorationLines)), func(lines []TextDecorationLine) bool {
		// each line kind at most once
		seen := make(map[TextDecorationLine]bool, len(lines))
		for _, l := range lines {
			if seen[l] {
				return false
			}
			seen[l] = true
		}
		return len(lines) > 0
	}),
)

// NewTextDecorationLine creates text-decoration-line property.
func NewTextDecorationLine() *TextDecorationLineProperty {
	return &TextDecorationLineProperty{newLonghand(NameTextDecorationLine, FlagNone,
		[]TextDecorationLine{}, textDecorationLineConverter, formatLines)}
}

func formatLines(lines []TextDecorationLine) string {
	if len(lines) == 0 {
		return "none"
	}
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}

// Lines returns selected decoration lines.
func (p *TextDecorationLineProperty) Lines() []TextDecorationLine {
	return slices.Clone(p.Value())
}

// ColorProperty is a longhand holding a color.
type ColorProperty struct {
	*Longhand[Color]
}

func newColorProperty(name string, flags Flags) *ColorProperty {
	return &ColorProperty{newLonghand(name, flags|FlagHashless|FlagAnimatable, ColorCurrent, WithColor(), Color.String)}
}

// NewTextDecorationColor creates text-decoration-color property.
func NewTextDecorationColor() *ColorProperty {
	return newColorProperty(NameTextDecorationColor, FlagNone)
}

// Color returns the current color.
func (p *ColorProperty) Color() Color {
	return p.Value()
}

// TransitionPropertyProperty is transition-property.
type TransitionPropertyProperty struct {
	*Longhand[[]string]
}

var transitionPropertyConverter = Or(
	Keyword("none", []string{}),
	CommaList(WithAnimatableIdentifier()),
)

// NewTransitionProperty creates transition-property property.
func NewTransitionProperty() *TransitionPropertyProperty {
	return &TransitionPropertyProperty{newLonghand(NameTransitionProperty, FlagNone,
		[]string{"all"}, transitionPropertyConverter, formatIdentifiers)}
}

func formatIdentifiers(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// Properties returns names of transitioned properties.
func (p *TransitionPropertyProperty) Properties() []string {
	return slices.Clone(p.Value())
}

// MarginSide is one of margin-top/right/bottom/left, nil value means auto.
type MarginSide struct {
	*Longhand[*Length]
	side Side
}

var marginConverter = Or(Keyword[*Length]("auto", nil), Nullable(WithLengthOrPercent()))

func formatMargin(l *Length) string {
	if l == nil {
		return "auto"
	}
	return l.String()
}

// NewMarginSide creates margin longhand for the side.
func NewMarginSide(side Side) *MarginSide {
	zero := Zero
	return &MarginSide{
		Longhand: newLonghand("margin-"+side.String(), FlagUnitless|FlagAnimatable, &zero, marginConverter, formatMargin),
		side:     side,
	}
}

// Side returns the box side.
func (p *MarginSide) Side() Side { return p.side }

// IsAuto reports whether margin is auto.
func (p *MarginSide) IsAuto() bool { return p.Value() == nil }

// PaddingSide is one of padding-top/right/bottom/left.
type PaddingSide struct {
	*Longhand[Length]
	side Side
}

// NewPaddingSide creates padding longhand for the side.
func NewPaddingSide(side Side) *PaddingSide {
	return &PaddingSide{
		Longhand: newLonghand("padding-"+side.String(), FlagUnitless|FlagAnimatable, Zero,
			NonNegative(WithLengthOrPercent()), Length.String),
		side: side,
	}
}

// Side returns the box side.
func (p *PaddingSide) Side() Side { return p.side }

// BorderWidthSide is one of border-*-width.
type BorderWidthSide struct {
	*Longhand[BorderWidth]
	side Side
}

// NewBorderWidthSide creates border width longhand for the side.
func NewBorderWidthSide(side Side) *BorderWidthSide {
	return &BorderWidthSide{
		Longhand: newLonghand("border-"+side.String()+"-width", FlagUnitless|FlagAnimatable, BorderWidthMedium,
			WithBorderWidth(), BorderWidth.String),
		side: side,
	}
}

// Side returns the box side.
func (p *BorderWidthSide) Side() Side { return p.side }

// BorderStyleSide is one of border-*-style.
type BorderStyleSide struct {
	*Longhand[BorderStyle]
	side Side
}

// NewBorderStyleSide creates border style longhand for the side.
func NewBorderStyleSide(side Side) *BorderStyleSide {
	return &BorderStyleSide{
		Longhand: newLonghand("border-"+side.String()+"-style", FlagNone, BorderStyleNone,
			From(borderStyles), BorderStyle.String),
		side: side,
	}
}

// Side returns the box side.
func (p *BorderStyleSide) Side() Side { return p.side }

// BorderColorSide is one of border-*-color.
type BorderColorSide struct {
	*ColorProperty
	side Side
}

// NewBorderColorSide creates border color longhand for the side.
func NewBorderColorSide(side Side) *BorderColorSide {
	return &BorderColorSide{
		ColorProperty: newColorProperty("border-"+side.String()+"-color", FlagNone),
		side:          side,
	}
}

// Side returns the box side.
func (p *BorderColorSide) Side() Side { return p.side }
