package css

import (
	"strconv"
	"strings"
)

// Kind identifies the token a Unit was built from.
type Kind int

const (
	KindIdent      Kind = iota // auto, solid, underline
	KindNumber                 // 0, 1.5
	KindPercentage             // 50%
	KindDimension              // 12px, 1.2em
	KindString                 // "quoted"
	KindHash                   // #ff0000
	KindFunction               // rgb(0, 0, 0) - whole balanced text
	KindURL                    // url(image.png)
	KindDelim                  // / or any other single delimiter
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIdent:
		return "ident"
	case KindNumber:
		return "number"
	case KindPercentage:
		return "percentage"
	case KindDimension:
		return "dimension"
	case KindString:
		return "string"
	case KindHash:
		return "hash"
	case KindFunction:
		return "function"
	case KindURL:
		return "url"
	case KindDelim:
		return "delim"
	default:
		return "unknown"
	}
}

// Separator tells how items of a List were separated in the source.
type Separator int

const (
	SeparatorSpace Separator = iota
	SeparatorComma
)

// Value is a parsed CSS property value: either a single Unit or a List of values.
// Values are immutable once built and may be shared freely.
type Value interface {
	// String returns canonical text of the value.
	String() string
	isValue()
}

// Unit is a single component value.
type Unit struct {
	Kind      Kind
	Data      string  // Original token text (e.g. "12px", "Solid", "#fff")
	Number    float64 // Numeric part for number, percentage and dimension units
	Dimension string  // Lowercased unit for dimension units (e.g. "px")
}

func (Unit) isValue() {}

// String returns canonical text of the unit. Identifiers are lowercased.
func (u Unit) String() string {
	switch u.Kind {
	case KindIdent:
		return strings.ToLower(u.Data)
	case KindNumber:
		return formatNumber(u.Number)
	case KindPercentage:
		return formatNumber(u.Number) + "%"
	case KindDimension:
		return formatNumber(u.Number) + u.Dimension
	default:
		return u.Data
	}
}

// List is an ordered sequence of values.
type List struct {
	Separator Separator
	Items     []Value
}

func (List) isValue() {}

// String returns items joined with the list separator.
func (l List) String() string {
	sep := " "
	if l.Separator == SeparatorComma {
		sep = ", "
	}
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.String()
	}
	return strings.Join(parts, sep)
}

// Ident builds an identifier unit.
func Ident(name string) Unit {
	return Unit{Kind: KindIdent, Data: name}
}

// Number builds a plain number unit.
func Number(n float64) Unit {
	return Unit{Kind: KindNumber, Data: formatNumber(n), Number: n}
}

// Percentage builds a percentage unit.
func Percentage(n float64) Unit {
	return Unit{Kind: KindPercentage, Data: formatNumber(n) + "%", Number: n}
}

// Dimension builds a dimension unit, unit is lowercased.
func Dimension(n float64, unit string) Unit {
	unit = strings.ToLower(unit)
	return Unit{Kind: KindDimension, Data: formatNumber(n) + unit, Number: n, Dimension: unit}
}

// SpaceList builds a space separated list.
func SpaceList(items ...Value) List {
	return List{Separator: SeparatorSpace, Items: items}
}

// CommaList builds a comma separated list.
func CommaList(items ...Value) List {
	return List{Separator: SeparatorComma, Items: items}
}

// Items returns the space separated components of v. A bare unit (or a comma
// list) is a one element sequence.
func Items(v Value) []Value {
	if l, ok := v.(List); ok && l.Separator == SeparatorSpace {
		return l.Items
	}
	if v == nil {
		return nil
	}
	return []Value{v}
}

// AsUnit returns v as a single unit.
func AsUnit(v Value) (Unit, bool) {
	if u, ok := v.(Unit); ok {
		return u, true
	}
	// single element list is as good as a unit
	if l, ok := v.(List); ok && len(l.Items) == 1 {
		return AsUnit(l.Items[0])
	}
	return Unit{}, false
}

// IsIdent reports whether v is exactly the given identifier (ASCII case-insensitive).
func IsIdent(v Value, keyword string) bool {
	u, ok := AsUnit(v)
	return ok && u.Kind == KindIdent && strings.EqualFold(u.Data, keyword)
}

func formatNumber(n float64) string {
	if n == 0 {
		// no negative zero
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Declaration is a single "name: value" entry of a declaration block.
type Declaration struct {
	Name      string // Lowercased property name
	Value     Value
	Important bool // true if "!important" followed the value
}

// Rule represents a single CSS rule (selector + declarations in source order).
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Stylesheet represents a parsed CSS stylesheet.
type Stylesheet struct {
	Rules    []Rule   // Plain rules in source order
	Warnings []string // Warnings for skipped constructs
}

// RulesBySelector returns all rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, r := range s.Rules {
		if r.Selector == selector {
			matches = append(matches, r)
		}
	}
	return matches
}
