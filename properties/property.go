package properties

import "cssprop/css"

// Property is a named, resettable cell holding one typed value. A property
// instance is owned by a single declaration block and is not safe for
// concurrent mutation.
type Property interface {
	Name() string
	Flags() Flags
	// Reset returns the property to its default value.
	Reset()
	// TrySetValue converts v and commits it on success. On failure the
	// current value is left untouched.
	TrySetValue(v css.Value) bool
	// SerializeValue renders the current value as canonical CSS text.
	SerializeValue() string

	// probe converts v without committing it.
	probe(v css.Value) (staged, bool)
	// initial stages the default value.
	initial() staged
	// defaultText is serialized default value.
	defaultText() string
}

// staged is a converted but not yet committed value.
type staged struct {
	text   string
	commit func()
}

// Longhand is a property storing exactly one value of type T.
type Longhand[T any] struct {
	name   string
	flags  Flags
	def    T
	conv   Converter[T]
	format func(T) string
	value  T
}

func newLonghand[T any](name string, flags Flags, def T, conv Converter[T], format func(T) string) *Longhand[T] {
	p := &Longhand[T]{
		name:   name,
		flags:  flags,
		def:    def,
		conv:   conv,
		format: format,
	}
	p.Reset()
	return p
}

func (p *Longhand[T]) Name() string { return p.name }
func (p *Longhand[T]) Flags() Flags { return p.flags }

// Value returns current value.
func (p *Longhand[T]) Value() T { return p.value }

// Default returns value the property is reset to.
func (p *Longhand[T]) Default() T { return p.def }

// Set stores already typed value bypassing conversion.
func (p *Longhand[T]) Set(v T) { p.value = v }

// IsDefault reports whether current value serializes the same as default.
func (p *Longhand[T]) IsDefault() bool {
	return p.format(p.value) == p.format(p.def)
}

func (p *Longhand[T]) Reset() {
	p.value = p.def
}

func (p *Longhand[T]) TrySetValue(v css.Value) bool {
	s, ok := p.probe(v)
	if !ok {
		return false
	}
	s.commit()
	return true
}

func (p *Longhand[T]) SerializeValue() string {
	return p.format(p.value)
}

func (p *Longhand[T]) probe(v css.Value) (staged, bool) {
	if v == nil {
		return staged{}, false
	}
	res, ok := p.conv.Convert(v)
	if !ok {
		return staged{}, false
	}
	return staged{
		text:   p.format(res),
		commit: func() { p.value = res },
	}, true
}

func (p *Longhand[T]) initial() staged {
	return staged{text: p.defaultText(), commit: p.Reset}
}

func (p *Longhand[T]) defaultText() string {
	return p.format(p.def)
}

// CanStore reports whether v would be accepted without changing the property.
func CanStore(p Property, v css.Value) bool {
	_, ok := p.probe(v)
	return ok
}
