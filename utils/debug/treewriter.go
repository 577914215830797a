// Package debug renders parsed CSS as indented text trees for troubleshooting.
package debug

import (
	"fmt"
	"strconv"
	"strings"

	"cssprop/css"
)

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Value writes value structure: lists with their separator and every unit
// with its kind.
func (tw TreeWriter) Value(depth int, v css.Value) {
	switch v := v.(type) {
	case nil:
		tw.Line(depth, "<nil>")
	case css.List:
		sep := "space"
		if v.Separator == css.SeparatorComma {
			sep = "comma"
		}
		tw.Line(depth, "list %s [%d]", sep, len(v.Items))
		for _, item := range v.Items {
			tw.Value(depth+1, item)
		}
	case css.Unit:
		switch v.Kind {
		case css.KindNumber, css.KindPercentage:
			tw.Line(depth, "%s %s", v.Kind, formatFloat(v.Number))
		case css.KindDimension:
			tw.Line(depth, "%s %s %s", v.Kind, formatFloat(v.Number), v.Dimension)
		default:
			tw.Line(depth, "%s %s", v.Kind, encodeText(v.Data))
		}
	}
}

// Declarations writes every declaration with its parsed value.
func (tw TreeWriter) Declarations(depth int, decls []css.Declaration) {
	for _, d := range decls {
		if d.Important {
			tw.Line(depth, "%s !important", d.Name)
		} else {
			tw.Line(depth, "%s", d.Name)
		}
		tw.Value(depth+1, d.Value)
	}
}

// Stylesheet returns tree of parsed rules followed by collected warnings.
func Stylesheet(sheet *css.Stylesheet) string {
	tw := NewTreeWriter()
	for _, r := range sheet.Rules {
		tw.TextBlock(0, "rule", r.Selector)
		tw.Declarations(1, r.Declarations)
	}
	for _, w := range sheet.Warnings {
		tw.TextBlock(0, "warning", w)
	}
	return tw.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
