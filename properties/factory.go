package properties

import (
	"maps"
	"slices"

	"github.com/maruel/natural"
)

// Factory creates property instances by name. Factory is read-only after
// construction and may be shared.
type Factory struct {
	longhands  map[string]func() Property
	shorthands map[string]func() *Shorthand
	members    map[string][]string // shorthand -> longhand names
	owners     map[string][]string // longhand -> shorthand names
}

// NewFactory creates factory knowing every supported property.
func NewFactory() *Factory {
	f := &Factory{
		longhands:  make(map[string]func() Property),
		shorthands: make(map[string]func() *Shorthand),
		members:    make(map[string][]string),
		owners:     make(map[string][]string),
	}

	f.longhand(func() Property { return NewLetterSpacing() })
	f.longhand(func() Property { return NewWordSpacing() })
	f.longhand(func() Property { return NewTextDecorationLine() })
	f.longhand(func() Property { return NewTextDecorationStyle() })
	f.longhand(func() Property { return NewTextDecorationColor() })
	f.longhand(func() Property { return NewTransitionProperty() })
	for side := SideTop; side <= SideLeft; side++ {
		f.longhand(func() Property { return NewMarginSide(side) })
		f.longhand(func() Property { return NewPaddingSide(side) })
		f.longhand(func() Property { return NewBorderWidthSide(side) })
		f.longhand(func() Property { return NewBorderStyleSide(side) })
		f.longhand(func() Property { return NewBorderColorSide(side) })
	}

	f.shorthand(func() *Shorthand { return NewMargin().Shorthand })
	f.shorthand(func() *Shorthand { return NewPadding().Shorthand })
	f.shorthand(func() *Shorthand { return NewBorderWidth().Shorthand })
	f.shorthand(func() *Shorthand { return NewBorderStyle().Shorthand })
	f.shorthand(func() *Shorthand { return NewBorderColor().Shorthand })
	f.shorthand(func() *Shorthand { return NewTextDecoration().Shorthand })

	return f
}

func (f *Factory) longhand(create func() Property) {
	f.longhands[create().Name()] = create
}

func (f *Factory) shorthand(create func() *Shorthand) {
	s := create()
	f.shorthands[s.Name()] = create
	for _, p := range s.Properties() {
		f.members[s.Name()] = append(f.members[s.Name()], p.Name())
		f.owners[p.Name()] = append(f.owners[p.Name()], s.Name())
	}
}

// Create returns new instance of named property.
func (f *Factory) Create(name string) (Property, bool) {
	if create, ok := f.longhands[name]; ok {
		return create(), true
	}
	if create, ok := f.shorthands[name]; ok {
		return create(), true
	}
	return nil, false
}

// CreateShorthand returns new instance of named shorthand.
func (f *Factory) CreateShorthand(name string) (*Shorthand, bool) {
	if create, ok := f.shorthands[name]; ok {
		return create(), true
	}
	return nil, false
}

// CreateLonghandsFor returns new standalone instances of longhands the named
// shorthand is composed of, nil for unknown shorthands.
func (f *Factory) CreateLonghandsFor(name string) []Property {
	names, ok := f.members[name]
	if !ok {
		return nil
	}
	res := make([]Property, 0, len(names))
	for _, n := range names {
		res = append(res, f.longhands[n]())
	}
	return res
}

// IsShorthand reports whether name is a known shorthand.
func (f *Factory) IsShorthand(name string) bool {
	_, ok := f.shorthands[name]
	return ok
}

// IsKnown reports whether name is a known property.
func (f *Factory) IsKnown(name string) bool {
	_, ok := f.longhands[name]
	return ok || f.IsShorthand(name)
}

// LonghandsOf returns longhand names of the named shorthand in canonical order.
func (f *Factory) LonghandsOf(name string) []string {
	return slices.Clone(f.members[name])
}

// ShorthandsFor returns names of shorthands containing the longhand.
func (f *Factory) ShorthandsFor(longhand string) []string {
	return slices.Clone(f.owners[longhand])
}

// Names returns all known property names in natural order.
func (f *Factory) Names() []string {
	names := slices.Collect(maps.Keys(f.longhands))
	names = append(names, slices.Collect(maps.Keys(f.shorthands))...)
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		default:
			return 0
		}
	})
	return names
}
