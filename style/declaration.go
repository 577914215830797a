package style

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssprop/css"
	"cssprop/properties"
)

var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrInvalidValue    = errors.New("invalid property value")
	ErrInvalidPriority = errors.New("invalid property priority")
)

// PriorityImportant is the only non-empty declaration priority.
const PriorityImportant = "important"

// Option changes declaration block behavior.
type Option func(*Declaration)

// WithLonghandsOnly disables shorthand output in CSSText.
func WithLonghandsOnly() Option {
	return func(d *Declaration) { d.shorthands = false }
}

// WithNaturalOrder makes CSSText emit properties in natural name order
// instead of insertion order.
func WithNaturalOrder() Option {
	return func(d *Declaration) { d.natural = true }
}

// WithSeparator sets text placed between declarations in CSSText.
func WithSeparator(sep string) Option {
	return func(d *Declaration) { d.separator = sep }
}

type entry struct {
	prop      properties.Property
	important bool
}

// Declaration is a block of longhand declarations. Shorthands are never
// stored, setting one records all of its longhands. Declaration is not safe
// for concurrent use.
type Declaration struct {
	factory *properties.Factory
	parser  *css.Parser
	log     *zap.Logger

	entries    []entry // insertion order
	shorthands bool
	natural    bool
	separator  string
}

// NewDeclaration creates empty declaration block.
func NewDeclaration(factory *properties.Factory, log *zap.Logger, opts ...Option) *Declaration {
	if log == nil {
		log = zap.NewNop()
	}
	if factory == nil {
		factory = properties.NewFactory()
	}
	d := &Declaration{
		factory:    factory,
		parser:     css.NewParser(log),
		log:        log.Named("style"),
		shorthands: true,
		separator:  " ",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetProperty parses value and sets the named property. Empty value removes
// the property. On error the block is left unchanged.
func (d *Declaration) SetProperty(name, value, priority string) error {
	name = normalizeName(name)
	if !d.factory.IsKnown(name) {
		return fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}

	var important bool
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case "":
	case PriorityImportant:
		important = true
	default:
		return fmt.Errorf("%w: %s: %q", ErrInvalidPriority, name, priority)
	}

	if strings.TrimSpace(value) == "" {
		d.RemoveProperty(name)
		return nil
	}

	v, err := d.parser.ParseValue(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidValue, name, err)
	}
	return d.set(name, v, important)
}

func (d *Declaration) set(name string, v css.Value, important bool) error {
	if d.factory.IsShorthand(name) {
		sh, _ := d.factory.CreateShorthand(name)
		if !d.accept(sh, v) {
			return fmt.Errorf("%w: %s: %q", ErrInvalidValue, name, v.String())
		}
		for _, p := range sh.Properties() {
			d.store(p, important)
		}
		return nil
	}

	prop, ok := d.factory.Create(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	if !d.accept(prop, v) {
		return fmt.Errorf("%w: %s: %q", ErrInvalidValue, name, v.String())
	}
	d.store(prop, important)
	return nil
}

func (d *Declaration) accept(p properties.Property, v css.Value) bool {
	if !p.TrySetValue(v) {
		d.log.Debug("Value rejected", zap.String("property", p.Name()), zap.Stringer("value", v))
		return false
	}
	d.log.Debug("Value accepted", zap.String("property", p.Name()), zap.String("value", p.SerializeValue()))
	return true
}

// store replaces existing longhand in place or appends a new one.
func (d *Declaration) store(p properties.Property, important bool) {
	if i := d.find(p.Name()); i >= 0 {
		d.entries[i] = entry{prop: p, important: important}
		return
	}
	d.entries = append(d.entries, entry{prop: p, important: important})
}

func (d *Declaration) find(name string) int {
	return slices.IndexFunc(d.entries, func(e entry) bool { return e.prop.Name() == name })
}

// GetPropertyValue returns serialized value of the property, or empty string
// when it is not set. Shorthands have value only when every longhand is set
// with the same priority.
func (d *Declaration) GetPropertyValue(name string) string {
	name = normalizeName(name)
	if d.factory.IsShorthand(name) {
		text, _, _ := d.shorthandText(name)
		return text
	}
	if i := d.find(name); i >= 0 {
		return d.entries[i].prop.SerializeValue()
	}
	return ""
}

// GetPropertyPriority returns "important" or empty string.
func (d *Declaration) GetPropertyPriority(name string) string {
	name = normalizeName(name)
	var important bool
	if d.factory.IsShorthand(name) {
		_, important, _ = d.shorthandText(name)
	} else if i := d.find(name); i >= 0 {
		important = d.entries[i].important
	}
	if important {
		return PriorityImportant
	}
	return ""
}

// RemoveProperty removes the property (all longhands for shorthands) and
// returns its previous value.
func (d *Declaration) RemoveProperty(name string) string {
	name = normalizeName(name)
	old := d.GetPropertyValue(name)

	names := []string{name}
	if d.factory.IsShorthand(name) {
		names = d.factory.LonghandsOf(name)
	}
	d.entries = slices.DeleteFunc(d.entries, func(e entry) bool {
		return slices.Contains(names, e.prop.Name())
	})
	return old
}

// Length returns number of declared longhands.
func (d *Declaration) Length() int {
	return len(d.entries)
}

// Item returns name of the i-th declared longhand or empty string.
func (d *Declaration) Item(i int) string {
	if i < 0 || i >= len(d.entries) {
		return ""
	}
	return d.entries[i].prop.Name()
}

// Longhands returns declared longhands in insertion order.
func (d *Declaration) Longhands() []properties.Property {
	res := make([]properties.Property, len(d.entries))
	for i, e := range d.entries {
		res[i] = e.prop
	}
	return res
}

// Clear removes all declarations.
func (d *Declaration) Clear() {
	d.entries = nil
}

// SetCSSText replaces block content with parsed declarations. Declarations
// which could not be parsed or set are skipped and all problems are returned
// combined, the rest is applied.
func (d *Declaration) SetCSSText(text string) error {
	d.Clear()

	decls, err := d.parser.ParseDeclarations(text)
	return multierr.Append(err, d.Apply(decls))
}

// Apply sets already parsed declarations in order. Failing declarations are
// skipped, all problems are returned combined.
func (d *Declaration) Apply(decls []css.Declaration) (err error) {
	for _, decl := range decls {
		if !d.factory.IsKnown(decl.Name) {
			err = multierr.Append(err, fmt.Errorf("%w: %s", ErrUnknownProperty, decl.Name))
			continue
		}
		err = multierr.Append(err, d.set(decl.Name, decl.Value, decl.Important))
	}
	if err != nil {
		d.log.Debug("Declarations applied with errors", zap.Int("declared", len(d.entries)), zap.Error(err))
	}
	return err
}

// CSSText returns the block serialized. Longhands forming a complete
// shorthand with equal priority are folded into the shorthand.
func (d *Declaration) CSSText() string {
	order := slices.Clone(d.entries)
	if d.natural {
		slices.SortStableFunc(order, func(a, b entry) int {
			switch {
			case natural.Less(a.prop.Name(), b.prop.Name()):
				return -1
			case natural.Less(b.prop.Name(), a.prop.Name()):
				return 1
			default:
				return 0
			}
		})
	}

	var (
		parts   []string
		emitted = make(map[string]bool, len(order))
		folded  = make(map[string]bool)
	)
	for _, e := range order {
		name := e.prop.Name()
		if emitted[name] {
			continue
		}
		if d.shorthands {
			for _, sh := range d.factory.ShorthandsFor(name) {
				if folded[sh] {
					continue
				}
				text, important, ok := d.shorthandText(sh)
				if !ok {
					continue
				}
				folded[sh] = true
				parts = append(parts, declarationText(sh, text, important))
				for _, member := range d.factory.LonghandsOf(sh) {
					emitted[member] = true
				}
				break
			}
			if emitted[name] {
				continue
			}
		}
		emitted[name] = true
		parts = append(parts, declarationText(name, e.prop.SerializeValue(), e.important))
	}
	return strings.Join(parts, d.separator)
}

// shorthandText transfers declared longhands into a fresh shorthand and
// serializes it. ok is false when the declared longhands can not form the
// shorthand.
func (d *Declaration) shorthandText(name string) (text string, important, ok bool) {
	sh, found := d.factory.CreateShorthand(name)
	if !found {
		return "", false, false
	}

	var subset []properties.Property
	first := true
	for _, p := range sh.Properties() {
		i := d.find(p.Name())
		if i < 0 {
			continue
		}
		e := d.entries[i]
		if first {
			important, first = e.important, false
		} else if important != e.important {
			return "", false, false
		}
		v, err := d.parser.ParseValue(e.prop.SerializeValue())
		if err != nil || !p.TrySetValue(v) {
			d.log.Warn("Unable to transfer longhand value", zap.String("property", p.Name()),
				zap.String("value", e.prop.SerializeValue()), zap.Error(err))
			continue
		}
		subset = append(subset, p)
	}
	if !sh.IsComplete(subset) {
		return "", false, false
	}
	if text = sh.SerializeSubset(subset); text == "" {
		return "", false, false
	}
	return text, important, true
}

func declarationText(name, value string, important bool) string {
	if important {
		return name + ": " + value + " !important;"
	}
	return name + ": " + value + ";"
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
