// Package properties implements the CSS property value model.
//
// Every property is a named cell holding one typed value, gated by a
// Converter which turns a parsed css.Value into the typed representation or
// rejects it. Rejected values never change property state.
//
// # Converters
//
// Converters are small immutable values composed by nesting:
//
//   - Keyword: one identifier mapped to a fixed result
//   - From: identifier looked up in a keyword table
//   - Or: first successful alternative
//   - Many: space separated components, all must convert
//   - CommaList: comma separated items, all must convert
//   - Nullable: success becomes a non-nil pointer, nil means "unset"
//
// # Shorthands
//
// A Shorthand owns an ordered, fixed set of longhands and has no value of its
// own. Three strategies are supported:
//
//   - periodic: box model 1-4 values over top, right, bottom, left
//     (margin, padding, border-width, border-style, border-color)
//   - sentinel: a keyword standing for fixed longhand values
//     (text-decoration: none)
//   - composite: longhand values in any order (text-decoration: underline dotted)
//
// Serialization collapses longhand texts into the shortest form, using
// textual equality of serialized longhands.
//
// # Usage
//
//	margin := properties.NewMargin()
//	v, _ := css.NewParser(log).ParseValue("1px 2px 1px 2px")
//	if margin.TrySetValue(v) {
//	    fmt.Println(margin.SerializeValue()) // 1px 2px
//	}
//
// Property instances are not safe for concurrent mutation, converters and
// Factory are.
package properties
