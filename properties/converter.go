package properties

import (
	"strings"

	"cssprop/css"
)

// Converter attempts to interpret a parsed value as T. Rejection is a normal
// outcome reported by false, never an error. Converters hold no per-call
// state and may be shared between properties and goroutines.
type Converter[T any] interface {
	Convert(v css.Value) (T, bool)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc[T any] func(v css.Value) (T, bool)

// Convert calls f(v).
func (f ConverterFunc[T]) Convert(v css.Value) (T, bool) {
	return f(v)
}

type keywordConverter[T any] struct {
	keyword string
	result  T
}

// Keyword succeeds only for the designated identifier and returns fixed result.
func Keyword[T any](keyword string, result T) Converter[T] {
	return keywordConverter[T]{keyword: keyword, result: result}
}

func (c keywordConverter[T]) Convert(v css.Value) (T, bool) {
	if css.IsIdent(v, c.keyword) {
		return c.result, true
	}
	var zero T
	return zero, false
}

type mapConverter[T any] struct {
	table map[string]T
}

// From succeeds for identifiers present in the keyword table. Table keys must
// be lowercase.
func From[T any](table map[string]T) Converter[T] {
	return mapConverter[T]{table: table}
}

func (c mapConverter[T]) Convert(v css.Value) (T, bool) {
	var zero T
	u, ok := css.AsUnit(v)
	if !ok || u.Kind != css.KindIdent {
		return zero, false
	}
	res, ok := c.table[strings.ToLower(u.Data)]
	if !ok {
		return zero, false
	}
	return res, true
}

type orConverter[T any] struct {
	alternatives []Converter[T]
}

// Or tries converters in order and returns the first success.
func Or[T any](alternatives ...Converter[T]) Converter[T] {
	return orConverter[T]{alternatives: alternatives}
}

func (c orConverter[T]) Convert(v css.Value) (T, bool) {
	for _, alt := range c.alternatives {
		if res, ok := alt.Convert(v); ok {
			return res, true
		}
	}
	var zero T
	return zero, false
}

type manyConverter[T any] struct {
	single Converter[T]
}

// Many converts every space separated component with single converter. A bare
// unit is a one element sequence. Conversion fails if any component fails.
func Many[T any](single Converter[T]) Converter[[]T] {
	return manyConverter[T]{single: single}
}

func (c manyConverter[T]) Convert(v css.Value) ([]T, bool) {
	if v == nil {
		return nil, false
	}
	return convertAll(css.Items(v), c.single)
}

type listConverter[T any] struct {
	single Converter[T]
}

// CommaList converts every comma separated item with single converter.
// Anything which is not a comma list is a one element list.
func CommaList[T any](single Converter[T]) Converter[[]T] {
	return listConverter[T]{single: single}
}

func (c listConverter[T]) Convert(v css.Value) ([]T, bool) {
	if v == nil {
		return nil, false
	}
	items := []css.Value{v}
	if l, ok := v.(css.List); ok && l.Separator == css.SeparatorComma {
		items = l.Items
	}
	return convertAll(items, c.single)
}

func convertAll[T any](items []css.Value, single Converter[T]) ([]T, bool) {
	res := make([]T, 0, len(items))
	for _, it := range items {
		t, ok := single.Convert(it)
		if !ok {
			return nil, false
		}
		res = append(res, t)
	}
	return res, true
}

type nullableConverter[T any] struct {
	inner Converter[T]
}

// Nullable wraps converter so success produces a non-nil pointer, leaving nil
// to express "unset" distinct from any real value.
func Nullable[T any](inner Converter[T]) Converter[*T] {
	return nullableConverter[T]{inner: inner}
}

func (c nullableConverter[T]) Convert(v css.Value) (*T, bool) {
	res, ok := c.inner.Convert(v)
	if !ok {
		return nil, false
	}
	return &res, true
}

// Map transforms result of successful conversion.
func Map[T, U any](inner Converter[T], fn func(T) U) Converter[U] {
	return ConverterFunc[U](func(v css.Value) (U, bool) {
		res, ok := inner.Convert(v)
		if !ok {
			var zero U
			return zero, false
		}
		return fn(res), true
	})
}

// Where rejects results for which accept returns false.
func Where[T any](inner Converter[T], accept func(T) bool) Converter[T] {
	return ConverterFunc[T](func(v css.Value) (T, bool) {
		res, ok := inner.Convert(v)
		if !ok || !accept(res) {
			var zero T
			return zero, false
		}
		return res, true
	})
}
