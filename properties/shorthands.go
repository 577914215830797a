package properties

import "cssprop/css"

// boxPeriodic maps longhands created in top, right, bottom, left order.
var boxPeriodic = periodic{top: 0, right: 1, bottom: 2, left: 3}

// Box is a periodic shorthand over four side longhands of type P.
type Box[P Property] struct {
	*Shorthand
	sides [4]P
}

func newBox[P Property](name string, flags Flags, create func(Side) P) *Box[P] {
	var sides [4]P
	longhands := make([]Property, 0, len(sides))
	for i := range sides {
		sides[i] = create(Side(i))
		longhands = append(longhands, sides[i])
	}
	return &Box[P]{
		Shorthand: newShorthand(name, flags, boxPeriodic, longhands...),
		sides:     sides,
	}
}

// Side returns owned longhand for the side.
func (b *Box[P]) Side(side Side) P { return b.sides[side] }

func (b *Box[P]) Top() P    { return b.sides[SideTop] }
func (b *Box[P]) Right() P  { return b.sides[SideRight] }
func (b *Box[P]) Bottom() P { return b.sides[SideBottom] }
func (b *Box[P]) Left() P   { return b.sides[SideLeft] }

// NewMargin creates margin shorthand.
func NewMargin() *Box[*MarginSide] {
	return newBox(NameMargin, FlagUnitless|FlagAnimatable, NewMarginSide)
}

// NewPadding creates padding shorthand.
func NewPadding() *Box[*PaddingSide] {
	return newBox(NamePadding, FlagUnitless|FlagAnimatable, NewPaddingSide)
}

// NewBorderWidth creates border-width shorthand.
func NewBorderWidth() *Box[*BorderWidthSide] {
	return newBox(NameBorderWidth, FlagUnitless|FlagAnimatable, NewBorderWidthSide)
}

// NewBorderStyle creates border-style shorthand.
func NewBorderStyle() *Box[*BorderStyleSide] {
	return newBox(NameBorderStyle, FlagNone, NewBorderStyleSide)
}

// NewBorderColor creates border-color shorthand.
func NewBorderColor() *Box[*BorderColorSide] {
	return newBox(NameBorderColor, FlagHashless|FlagAnimatable, NewBorderColorSide)
}

// TextDecoration is text-decoration shorthand: "none" or any combination of
// line, style and color.
type TextDecoration struct {
	*Shorthand
	line  *TextDecorationLineProperty
	style *TextDecorationStyleProperty
	color *ColorProperty
}

// NewTextDecoration creates text-decoration shorthand.
func NewTextDecoration() *TextDecoration {
	td := &TextDecoration{
		line:  NewTextDecorationLine(),
		style: NewTextDecorationStyle(),
		color: NewTextDecorationColor(),
	}
	none := sentinel{
		keyword: "none",
		values: []css.Value{
			css.Ident("none"),
			css.Ident(TextDecorationStyleSolid.String()),
			css.Ident(ColorCurrent.String()),
		},
		inner: composite{},
	}
	td.Shorthand = newShorthand(NameTextDecoration, FlagNone, none, td.line, td.style, td.color)
	return td
}

func (t *TextDecoration) Line() *TextDecorationLineProperty   { return t.line }
func (t *TextDecoration) Style() *TextDecorationStyleProperty { return t.style }
func (t *TextDecoration) Color() *ColorProperty               { return t.color }
