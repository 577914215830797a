package properties

import (
	"strconv"
	"strings"
)

// LengthUnit is the unit of a Length.
type LengthUnit int

const (
	UnitNone LengthUnit = iota // unitless, only legal for zero
	UnitPx
	UnitEm
	UnitEx
	UnitRem
	UnitCh
	UnitVw
	UnitVh
	UnitVmin
	UnitVmax
	UnitCm
	UnitMm
	UnitIn
	UnitPt
	UnitPc
	UnitPercent
)

var (
	lengthUnitNames = [...]string{
		"", "px", "em", "ex", "rem", "ch", "vw", "vh",
		"vmin", "vmax", "cm", "mm", "in", "pt", "pc", "%",
	}
	lengthUnits = keywordTable[LengthUnit](lengthUnitNames[:])
)

// String returns CSS name of the unit.
func (u LengthUnit) String() string {
	return keywordName(lengthUnitNames[:], u)
}

// ParseLengthUnit returns unit by its CSS name (case-insensitive).
func ParseLengthUnit(name string) (LengthUnit, bool) {
	if name == "" {
		return UnitNone, false
	}
	u, ok := lengthUnits[strings.ToLower(name)]
	return u, ok
}

// Length is a dimension or percentage.
type Length struct {
	Value float64
	Unit  LengthUnit
}

// Zero is the unitless zero length.
var Zero = Length{}

// Px is a shortcut for pixel lengths.
func Px(v float64) Length {
	return Length{Value: v, Unit: UnitPx}
}

// IsZero reports whether length is zero regardless of unit.
func (l Length) IsZero() bool {
	return l.Value == 0
}

// IsPercent reports whether length is a percentage.
func (l Length) IsPercent() bool {
	return l.Unit == UnitPercent
}

// String returns canonical CSS text, shortest decimal form of the number
// followed by the unit. Unitless zero serializes as "0".
func (l Length) String() string {
	if l.Value == 0 && l.Unit == UnitNone {
		return "0"
	}
	v := l.Value
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + l.Unit.String()
}
