package properties

import (
	"fmt"
	"slices"

	"cssprop/css"
)

// strategy distributes a shorthand value over longhands and reconstructs
// shorthand text from longhand texts.
type strategy interface {
	// plan stages one value per longhand (in longhand order) or fails as a whole.
	plan(longhands []Property, v css.Value) ([]staged, bool)
	// render builds shorthand text from serialized longhand values.
	render(longhands []Property, texts []string) string
}

// Shorthand is a property composed of a fixed ordered set of longhands it
// exclusively owns. It has no value of its own.
type Shorthand struct {
	name      string
	flags     Flags
	longhands []Property
	strategy  strategy
}

func newShorthand(name string, flags Flags, strategy strategy, longhands ...Property) *Shorthand {
	s := &Shorthand{
		name:      name,
		flags:     flags | FlagShorthand,
		longhands: longhands,
		strategy:  strategy,
	}
	s.Reset()
	return s
}

func (s *Shorthand) Name() string { return s.name }
func (s *Shorthand) Flags() Flags { return s.flags }

// Properties returns owned longhands in canonical order.
func (s *Shorthand) Properties() []Property {
	return slices.Clone(s.longhands)
}

// Longhand returns owned longhand by name.
func (s *Shorthand) Longhand(name string) (Property, bool) {
	for _, p := range s.longhands {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Find returns the first owned longhand of type P.
func Find[P Property](s *Shorthand) (P, bool) {
	for _, p := range s.longhands {
		if typed, ok := p.(P); ok {
			return typed, true
		}
	}
	var zero P
	return zero, false
}

// Reset resets every owned longhand.
func (s *Shorthand) Reset() {
	for _, p := range s.longhands {
		p.Reset()
	}
}

// TrySetValue distributes v over longhands. Either all longhands are updated
// or none is.
func (s *Shorthand) TrySetValue(v css.Value) bool {
	st, ok := s.probe(v)
	if !ok {
		return false
	}
	st.commit()
	return true
}

// SerializeValue returns minimal shorthand text for current longhand values.
func (s *Shorthand) SerializeValue() string {
	return s.SerializeSubset(s.longhands)
}

// SerializeSubset serializes the shorthand using only given longhands. Empty
// string is returned when the subset can not form a shorthand value.
func (s *Shorthand) SerializeSubset(subset []Property) string {
	if !s.IsComplete(subset) {
		return ""
	}
	texts := make([]string, len(s.longhands))
	for i, p := range s.longhands {
		texts[i] = p.SerializeValue()
	}
	return s.strategy.render(s.longhands, texts)
}

// IsComplete reports whether subset contains every owned longhand. Order and
// duplicates in subset do not matter.
func (s *Shorthand) IsComplete(subset []Property) bool {
	for _, p := range s.longhands {
		if !slices.Contains(subset, p) {
			return false
		}
	}
	return true
}

func (s *Shorthand) probe(v css.Value) (staged, bool) {
	if v == nil {
		return staged{}, false
	}
	plan, ok := s.strategy.plan(s.longhands, v)
	if !ok {
		return staged{}, false
	}
	return s.combine(plan), true
}

func (s *Shorthand) initial() staged {
	plan := make([]staged, len(s.longhands))
	for i, p := range s.longhands {
		plan[i] = p.initial()
	}
	return s.combine(plan)
}

func (s *Shorthand) defaultText() string {
	texts := make([]string, len(s.longhands))
	for i, p := range s.longhands {
		texts[i] = p.defaultText()
	}
	return s.strategy.render(s.longhands, texts)
}

func (s *Shorthand) combine(plan []staged) staged {
	if len(plan) != len(s.longhands) {
		panic(fmt.Sprintf("shorthand %s: staged %d values for %d longhands", s.name, len(plan), len(s.longhands)))
	}
	texts := make([]string, len(plan))
	for i, st := range plan {
		texts[i] = st.text
	}
	return staged{
		text: s.strategy.render(s.longhands, texts),
		commit: func() {
			for _, st := range plan {
				st.commit()
			}
		},
	}
}

// periodic is the box model 1-4 value distribution over top, right, bottom
// and left longhands.
type periodic struct {
	top, right, bottom, left int
}

func (b periodic) sides(longhands []Property) [4]Property {
	return [4]Property{longhands[b.top], longhands[b.right], longhands[b.bottom], longhands[b.left]}
}

func (b periodic) plan(longhands []Property, v css.Value) ([]staged, bool) {
	items := css.Items(v)
	if len(items) == 0 || len(items) > 4 {
		return nil, false
	}

	sides := b.sides(longhands)

	// find a home for every value: first empty side accepting it
	var slots [4]css.Value
	for _, item := range items {
		placed := false
		for i, side := range sides {
			if slots[i] == nil && CanStore(side, item) {
				slots[i] = item
				placed = true
				break
			}
		}
		if !placed {
			return nil, false
		}
	}

	// right defaults to top, bottom to top, left to (possibly defaulted) right
	if slots[1] == nil {
		slots[1] = slots[0]
	}
	if slots[2] == nil {
		slots[2] = slots[0]
	}
	if slots[3] == nil {
		slots[3] = slots[1]
	}

	plan := make([]staged, len(longhands))
	for i, idx := range [4]int{b.top, b.right, b.bottom, b.left} {
		st, ok := sides[i].probe(slots[i])
		if !ok {
			return nil, false
		}
		plan[idx] = st
	}
	return plan, true
}

func (b periodic) render(_ []Property, texts []string) string {
	top, right, bottom, left := texts[b.top], texts[b.right], texts[b.bottom], texts[b.left]
	switch {
	case left != right:
		return top + " " + right + " " + bottom + " " + left
	case bottom != top:
		return top + " " + right + " " + bottom
	case right != top:
		return top + " " + right
	default:
		return top
	}
}

// sentinel maps a single keyword to fixed longhand values and serializes back
// to the keyword when every longhand holds its sentinel value. Everything
// else is handled by inner strategy.
type sentinel struct {
	keyword string
	values  []css.Value // one per longhand
	inner   strategy
}

func (k sentinel) plan(longhands []Property, v css.Value) ([]staged, bool) {
	if !css.IsIdent(v, k.keyword) {
		return k.inner.plan(longhands, v)
	}
	plan := make([]staged, len(longhands))
	for i, p := range longhands {
		st, ok := p.probe(k.values[i])
		if !ok {
			return nil, false
		}
		plan[i] = st
	}
	return plan, true
}

func (k sentinel) render(longhands []Property, texts []string) string {
	matches := true
	for i, p := range longhands {
		st, ok := p.probe(k.values[i])
		if !ok || st.text != texts[i] {
			matches = false
			break
		}
	}
	if matches {
		return k.keyword
	}
	return k.inner.render(longhands, texts)
}

// composite accepts longhand values in any order ("a || b || c"). A longhand
// may take several consecutive components; omitted longhands are reset.
type composite struct{}

func (composite) plan(longhands []Property, v css.Value) ([]staged, bool) {
	items := css.Items(v)
	if len(items) == 0 {
		return nil, false
	}

	plan := make([]staged, len(longhands))
	filled := make([]bool, len(longhands))

	for pos := 0; pos < len(items); {
		taken := 0
		for i, p := range longhands {
			if filled[i] {
				continue
			}
			// longest run of components this longhand accepts
			for n := len(items) - pos; n > 0; n-- {
				var candidate css.Value = items[pos]
				if n > 1 {
					candidate = css.SpaceList(items[pos : pos+n]...)
				}
				if st, ok := p.probe(candidate); ok {
					plan[i], filled[i], taken = st, true, n
					break
				}
			}
			if taken > 0 {
				break
			}
		}
		if taken == 0 {
			return nil, false
		}
		pos += taken
	}

	for i, p := range longhands {
		if !filled[i] {
			plan[i] = p.initial()
		}
	}
	return plan, true
}

func (composite) render(longhands []Property, texts []string) string {
	var out string
	for i, p := range longhands {
		if texts[i] == p.defaultText() {
			continue
		}
		if out != "" {
			out += " "
		}
		out += texts[i]
	}
	if out == "" && len(texts) > 0 {
		return texts[0]
	}
	return out
}
