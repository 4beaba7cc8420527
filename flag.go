package flagset

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Flag is one named, typed setting: a canonical name, an optional
// single-character shorthand, a fixed default value and a mutable current
// value of the same kind.
//
// Flags are created with New, refined with the fluent With* methods and
// registered into exactly one FlagSet. They are mutated in place during
// loading and read any number of times afterward.
type Flag struct {
	name         string
	shorthand    byte // 0 means no shorthand
	description  string
	envDelimiter string
	hidden       bool

	def   Value
	value Value
}

// New creates a flag with the given name and default value. The name must
// match ^[a-z0-9-]+$; a violation is a programmer error and panics.
func New(name string, def Value) *Flag {
	if !namePattern.MatchString(name) {
		panic(fmt.Sprintf("flagset: invalid flag name %q: must be lowercase letters, digits and dashes only", name))
	}
	return &Flag{
		name:  name,
		def:   def.clone(),
		value: def.clone(),
	}
}

// WithShorthand sets a single-character alias for the flag. The character
// must be ASCII alphanumeric; anything else panics.
func (f *Flag) WithShorthand(c byte) *Flag {
	if !isAlnum(c) {
		panic(fmt.Sprintf("flagset: invalid shorthand %q for flag %q: must be A-Z, a-z or 0-9", string(c), f.name))
	}
	f.shorthand = c
	return f
}

// WithDescription sets the description used by the usage renderer. Flags
// without a description are omitted from usage output.
func (f *Flag) WithDescription(d string) *Flag {
	f.description = d
	return f
}

// WithEnvDelimiter sets the delimiter used to split the flag's environment
// variable into array elements. Array flags without a delimiter cannot be
// set from the environment. Setting a delimiter on a scalar flag panics.
func (f *Flag) WithEnvDelimiter(d string) *Flag {
	if !f.value.kind.IsArray() {
		panic(fmt.Sprintf("flagset: env delimiter set on non-array flag %q (kind %s)", f.name, f.value.kind))
	}
	f.envDelimiter = d
	return f
}

// Hidden excludes the flag from usage output.
func (f *Flag) Hidden() *Flag {
	f.hidden = true
	return f
}

// Name returns the canonical flag name.
func (f *Flag) Name() string { return f.name }

// Shorthand returns the single-character alias and whether one is set.
func (f *Flag) Shorthand() (byte, bool) { return f.shorthand, f.shorthand != 0 }

// Description returns the usage description.
func (f *Flag) Description() string { return f.description }

// Kind returns the variant tag shared by the flag's default and current
// values.
func (f *Flag) Kind() Kind { return f.value.kind }

// Default returns a copy of the default value fixed at creation.
func (f *Flag) Default() Value { return f.def.clone() }

// Value returns a copy of the current value.
func (f *Flag) Value() Value { return f.value.clone() }

// EnvVarName derives the environment variable key for the flag: the name
// uppercased with dashes replaced by underscores (max-size -> MAX_SIZE).
func (f *Flag) EnvVarName() string {
	return strings.ToUpper(strings.ReplaceAll(f.name, "-", "_"))
}

// setTrue sets a boolean flag. Only the argument parser calls this, for
// long and short boolean forms that consume no value token.
func (f *Flag) setTrue() {
	f.value.data = true
}

// setParsed parses one textual value and applies it to the flag. Scalar
// kinds are overwritten; array kinds parse a single element and follow the
// reset-vs-append rule against the touched set.
func (f *Flag) setParsed(text string, touched map[string]bool) error {
	elem, err := parseElem(f.value.kind.elem(), text)
	if err != nil {
		return fmt.Errorf("%w: flag %q: %v", ErrParse, f.name, err)
	}
	if !f.value.kind.IsArray() {
		f.value.data = elem
		return nil
	}
	f.appendElems([]any{elem}, touched)
	return nil
}

// setCoerced applies a value coerced from a config file. The value's kind
// is guaranteed to match by coerceValue; arrays follow the reset-vs-append
// rule so that a later file in the same phase appends rather than replaces.
func (f *Flag) setCoerced(v Value, touched map[string]bool) {
	if !f.value.kind.IsArray() {
		f.value = v
		return
	}
	switch f.value.kind {
	case KindStrings:
		elems := v.data.([]string)
		anys := make([]any, len(elems))
		for i, e := range elems {
			anys[i] = e
		}
		f.appendElems(anys, touched)
	case KindInt64s:
		elems := v.data.([]int64)
		anys := make([]any, len(elems))
		for i, e := range elems {
			anys[i] = e
		}
		f.appendElems(anys, touched)
	case KindWides:
		elems := v.data.([]*big.Int)
		anys := make([]any, len(elems))
		for i, e := range elems {
			anys[i] = e
		}
		f.appendElems(anys, touched)
	case KindFloat64s:
		elems := v.data.([]float64)
		anys := make([]any, len(elems))
		for i, e := range elems {
			anys[i] = e
		}
		f.appendElems(anys, touched)
	}
}

// appendElems applies elements to an array flag. The first write within a
// phase replaces the current array entirely; subsequent writes in the same
// phase append. The touched set is scoped to a single load phase.
func (f *Flag) appendElems(elems []any, touched map[string]bool) {
	reset := !touched[f.name]
	touched[f.name] = true

	switch f.value.kind {
	case KindStrings:
		cur := f.value.data.([]string)
		if reset {
			cur = nil
		}
		for _, e := range elems {
			cur = append(cur, e.(string))
		}
		f.value.data = cur
	case KindInt64s:
		cur := f.value.data.([]int64)
		if reset {
			cur = nil
		}
		for _, e := range elems {
			cur = append(cur, e.(int64))
		}
		f.value.data = cur
	case KindWides:
		cur := f.value.data.([]*big.Int)
		if reset {
			cur = nil
		}
		for _, e := range elems {
			cur = append(cur, e.(*big.Int))
		}
		f.value.data = cur
	case KindFloat64s:
		cur := f.value.data.([]float64)
		if reset {
			cur = nil
		}
		for _, e := range elems {
			cur = append(cur, e.(float64))
		}
		f.value.data = cur
	default:
		panic(fmt.Sprintf("flagset: appendElems called on non-array flag %q", f.name))
	}
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
