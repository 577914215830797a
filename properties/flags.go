package properties

import "strings"

// Flags describe static metadata of a property.
type Flags uint8

const FlagNone Flags = 0

const (
	FlagInherited  Flags = 1 << iota // Value is inherited by default
	FlagUnitless                     // Unitless numbers are accepted in quirks mode
	FlagShorthand                    // Property is a shorthand for a set of longhands
	FlagHashless                     // Colors without leading # are accepted in quirks mode
	FlagAnimatable                   // Property can be animated
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagInherited, "inherited"},
	{FlagUnitless, "unitless"},
	{FlagShorthand, "shorthand"},
	{FlagHashless, "hashless"},
	{FlagAnimatable, "animatable"},
}

// Has reports whether all bits of other are set.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// String returns names of set flags joined with "|", or "none".
func (f Flags) String() string {
	if f == FlagNone {
		return "none"
	}
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}
