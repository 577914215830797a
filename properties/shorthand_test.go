package properties

import (
	"testing"
)

func sideTexts[P Property](b *Box[P]) [4]string {
	return [4]string{
		b.Top().SerializeValue(),
		b.Right().SerializeValue(),
		b.Bottom().SerializeValue(),
		b.Left().SerializeValue(),
	}
}

func TestPeriodic_Distribution(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sides [4]string
		want  string
	}{
		{"one value", "1px", [4]string{"1px", "1px", "1px", "1px"}, "1px"},
		{"two values", "1px 2px", [4]string{"1px", "2px", "1px", "2px"}, "1px 2px"},
		{"three values", "1px 2px 3px", [4]string{"1px", "2px", "3px", "2px"}, "1px 2px 3px"},
		{"four values", "1px 2px 3px 4px", [4]string{"1px", "2px", "3px", "4px"}, "1px 2px 3px 4px"},
		{"collapse to two", "1px 2px 1px 2px", [4]string{"1px", "2px", "1px", "2px"}, "1px 2px"},
		{"collapse to one", "1px 1px 1px 1px", [4]string{"1px", "1px", "1px", "1px"}, "1px"},
		{"collapse to three", "1px 2px 3px 2px", [4]string{"1px", "2px", "3px", "2px"}, "1px 2px 3px"},
		{"auto side", "1px auto", [4]string{"1px", "auto", "1px", "auto"}, "1px auto"},
		{"textual equality", "0 0px", [4]string{"0", "0px", "0", "0px"}, "0 0px"},
		{"unitless zero", "0", [4]string{"0", "0", "0", "0"}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMargin()
			if !m.TrySetValue(mustParse(t, tt.input)) {
				t.Fatalf("TrySetValue(%q) failed", tt.input)
			}
			if got := sideTexts(m); got != tt.sides {
				t.Errorf("sides = %v, want %v", got, tt.sides)
			}
			if got := m.SerializeValue(); got != tt.want {
				t.Errorf("SerializeValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPeriodic_SerializeFromLonghands(t *testing.T) {
	p := NewPadding()

	p.Left().Set(Px(4))
	if got := p.SerializeValue(); got != "0 0 0 4px" {
		t.Errorf("SerializeValue() = %q", got)
	}
	p.Right().Set(Px(4))
	if got := p.SerializeValue(); got != "0 4px" {
		t.Errorf("SerializeValue() = %q", got)
	}
	p.Bottom().Set(Length{Value: 1, Unit: UnitEm})
	if got := p.SerializeValue(); got != "0 4px 1em" {
		t.Errorf("SerializeValue() = %q", got)
	}

	// serialize(set(v)) is idempotent
	v := mustParse(t, p.SerializeValue())
	q := NewPadding()
	if !q.TrySetValue(v) {
		t.Fatal("serialized text must be accepted")
	}
	if sideTexts(q) != sideTexts(p) {
		t.Errorf("round trip mismatch %v != %v", sideTexts(q), sideTexts(p))
	}
}

func TestPeriodic_RejectionKeepsState(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"five values", "5px 6px 7px 8px 9px"},
		{"bad component", "5px solid"},
		{"bad single value", "solid"},
		{"comma list", "5px, 6px"},
		{"string", `"5px"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMargin()
			if !m.TrySetValue(mustParse(t, "1px 2px 3px 4px")) {
				t.Fatal("initial set failed")
			}
			if m.TrySetValue(mustParse(t, tt.input)) {
				t.Fatalf("TrySetValue(%q) must fail", tt.input)
			}
			if got := sideTexts(m); got != [4]string{"1px", "2px", "3px", "4px"} {
				t.Errorf("sides changed to %v", got)
			}
		})
	}

	p := NewPadding()
	if p.TrySetValue(mustParse(t, "1px -2px")) {
		t.Error("negative padding must be rejected")
	}
	if got := sideTexts(p); got != [4]string{"0", "0", "0", "0"} {
		t.Errorf("rejected value mutated sides: %v", got)
	}
	if p.TrySetValue(nil) {
		t.Error("nil value must be rejected")
	}
}

func TestPeriodic_OtherBoxes(t *testing.T) {
	bw := NewBorderWidth()
	if got := bw.SerializeValue(); got != "medium" {
		t.Errorf("border-width default = %q", got)
	}
	if !bw.TrySetValue(mustParse(t, "thin 2px")) {
		t.Fatal("thin 2px must be accepted")
	}
	if bw.Bottom().Value() != BorderWidthThin || bw.Left().SerializeValue() != "2px" {
		t.Errorf("unexpected sides %v", sideTexts(bw))
	}

	bs := NewBorderStyle()
	if got := bs.SerializeValue(); got != "none" {
		t.Errorf("border-style default = %q", got)
	}
	if !bs.TrySetValue(mustParse(t, "solid dotted none")) {
		t.Fatal("solid dotted none must be accepted")
	}
	if got := bs.SerializeValue(); got != "solid dotted none" {
		t.Errorf("SerializeValue() = %q", got)
	}
	if bs.Left().Value() != BorderStyleDotted {
		t.Errorf("left must default to right, got %v", bs.Left().Value())
	}

	bc := NewBorderColor()
	if got := bc.SerializeValue(); got != "currentcolor" {
		t.Errorf("border-color default = %q", got)
	}
	if !bc.TrySetValue(mustParse(t, "red #00F")) {
		t.Fatal("red #00F must be accepted")
	}
	if got := bc.SerializeValue(); got != "red #00f" {
		t.Errorf("SerializeValue() = %q", got)
	}

	bc.Reset()
	if got := bc.SerializeValue(); got != "currentcolor" {
		t.Errorf("after Reset() = %q", got)
	}
}

func TestShorthand_IsComplete(t *testing.T) {
	m := NewMargin()
	top, right, bottom, left := m.Top(), m.Right(), m.Bottom(), m.Left()

	tests := []struct {
		name   string
		subset []Property
		want   bool
	}{
		{"canonical order", []Property{top, right, bottom, left}, true},
		{"any order", []Property{left, bottom, top, right}, true},
		{"duplicates", []Property{left, top, top, right, bottom, left}, true},
		{"missing side", []Property{top, right, bottom}, false},
		{"empty", nil, false},
		{"foreign instances", []Property{NewMarginSide(SideTop), right, bottom, left}, false},
		{"extra property", []Property{top, right, bottom, left, NewPaddingSide(SideTop)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsComplete(tt.subset); got != tt.want {
				t.Errorf("IsComplete() = %v, want %v", got, tt.want)
			}
		})
	}

	m.TrySetValue(mustParse(t, "1px 2px"))
	if got := m.SerializeSubset([]Property{left, right, bottom, top}); got != "1px 2px" {
		t.Errorf("SerializeSubset(complete) = %q", got)
	}
	if got := m.SerializeSubset([]Property{top, right}); got != "" {
		t.Errorf("SerializeSubset(incomplete) = %q, want empty", got)
	}
}

func TestShorthand_Lookup(t *testing.T) {
	m := NewMargin()

	if !m.Flags().Has(FlagShorthand) {
		t.Errorf("shorthand flag missing: %v", m.Flags())
	}
	if got := len(m.Properties()); got != 4 {
		t.Fatalf("expected 4 longhands, got %d", got)
	}

	names := []string{"margin-top", "margin-right", "margin-bottom", "margin-left"}
	for i, p := range m.Properties() {
		if p.Name() != names[i] {
			t.Errorf("longhand %d = %s, want %s", i, p.Name(), names[i])
		}
	}

	if p, ok := m.Longhand("margin-left"); !ok || p != Property(m.Left()) {
		t.Errorf("Longhand(margin-left) = %v, %v", p, ok)
	}
	if _, ok := m.Longhand("padding-left"); ok {
		t.Error("foreign longhand must not be found")
	}

	if p, ok := Find[*MarginSide](m.Shorthand); !ok || p != m.Top() {
		t.Errorf("Find[*MarginSide] = %v, %v", p, ok)
	}
	if _, ok := Find[*PaddingSide](m.Shorthand); ok {
		t.Error("Find[*PaddingSide] must fail on margin")
	}

	td := NewTextDecoration()
	if p, ok := Find[*ColorProperty](td.Shorthand); !ok || p != td.Color() {
		t.Errorf("Find[*ColorProperty] = %v, %v", p, ok)
	}

	// returned slice is a copy
	props := m.Properties()
	props[0] = NewPaddingSide(SideTop)
	if m.Properties()[0] != Property(m.Top()) {
		t.Error("Properties() must return a copy")
	}
}

func TestTextDecoration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
		style string
		color string
		want  string
	}{
		{"none", "none", "none", "solid", "currentcolor", "none"},
		{"line only", "underline", "underline", "solid", "currentcolor", "underline"},
		{"all parts", "underline dotted red", "underline", "dotted", "red", "underline dotted red"},
		{"any order", "red wavy overline underline", "overline underline", "wavy", "red", "overline underline wavy red"},
		{"style only", "double", "none", "double", "currentcolor", "double"},
		{"explicit initial values", "none solid currentcolor", "none", "solid", "currentcolor", "none"},
		{"none with style", "none dotted", "none", "dotted", "currentcolor", "dotted"},
		{"case", "UNDERLINE Blue", "underline", "solid", "blue", "underline blue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := NewTextDecoration()
			if !td.TrySetValue(mustParse(t, tt.input)) {
				t.Fatalf("TrySetValue(%q) failed", tt.input)
			}
			if got := td.Line().SerializeValue(); got != tt.line {
				t.Errorf("line = %q, want %q", got, tt.line)
			}
			if got := td.Style().SerializeValue(); got != tt.style {
				t.Errorf("style = %q, want %q", got, tt.style)
			}
			if got := td.Color().SerializeValue(); got != tt.color {
				t.Errorf("color = %q, want %q", got, tt.color)
			}
			if got := td.SerializeValue(); got != tt.want {
				t.Errorf("SerializeValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextDecoration_OmittedPartsReset(t *testing.T) {
	td := NewTextDecoration()
	if got := td.SerializeValue(); got != "none" {
		t.Fatalf("default = %q, want none", got)
	}

	if !td.TrySetValue(mustParse(t, "underline dotted red")) {
		t.Fatal("set failed")
	}
	if !td.TrySetValue(mustParse(t, "overline")) {
		t.Fatal("set failed")
	}
	if td.Style().DecorationStyle() != TextDecorationStyleSolid || td.Color().Color() != ColorCurrent {
		t.Errorf("omitted parts must be reset, got %q", td.SerializeValue())
	}

	if !td.TrySetValue(mustParse(t, "none")) {
		t.Fatal("none must be accepted")
	}
	if lines := td.Line().Lines(); len(lines) != 0 {
		t.Errorf("none must clear lines, got %v", lines)
	}
}

func TestShorthand_DefaultText(t *testing.T) {
	td := NewTextDecoration()
	if got := td.defaultText(); got != "none" {
		t.Errorf("text-decoration default = %q, want none", got)
	}
	if got := NewMargin().defaultText(); got != "0" {
		t.Errorf("margin default = %q, want 0", got)
	}

	td.Style().Set(TextDecorationStyleWavy)
	if got := td.SerializeValue(); got != "wavy" {
		t.Errorf("SerializeValue() = %q, want wavy", got)
	}
	td.Style().Reset()
	td.Color().Set(ColorCurrent)
	if got := td.SerializeValue(); got != "none" {
		t.Errorf("SerializeValue() = %q, want none", got)
	}
}

func TestTextDecoration_Rejected(t *testing.T) {
	for _, input := range []string{"dotted dotted", "underline bogus", "red blue", "1px", "none none", "underline, red"} {
		t.Run(input, func(t *testing.T) {
			td := NewTextDecoration()
			td.TrySetValue(mustParse(t, "underline red"))
			if td.TrySetValue(mustParse(t, input)) {
				t.Fatalf("TrySetValue(%q) must fail", input)
			}
			if got := td.SerializeValue(); got != "underline red" {
				t.Errorf("state changed to %q", got)
			}
		})
	}
}
