package flagset

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Kind identifies which of the nine supported variants a Value holds.
// The set of variants is closed: Bool, String, Int64, Wide (128-bit signed
// integer), Float64, and the four corresponding array variants.
type Kind int

const (
	KindBool Kind = iota
	KindString
	KindInt64
	KindWide
	KindFloat64
	KindStrings
	KindInt64s
	KindWides
	KindFloat64s
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt64:
		return "int64"
	case KindWide:
		return "wide"
	case KindFloat64:
		return "float64"
	case KindStrings:
		return "[]string"
	case KindInt64s:
		return "[]int64"
	case KindWides:
		return "[]wide"
	case KindFloat64s:
		return "[]float64"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsArray reports whether the kind is one of the array variants.
func (k Kind) IsArray() bool {
	return k >= KindStrings
}

// elem maps an array kind to its element kind. Scalar kinds map to
// themselves.
func (k Kind) elem() Kind {
	switch k {
	case KindStrings:
		return KindString
	case KindInt64s:
		return KindInt64
	case KindWides:
		return KindWide
	case KindFloat64s:
		return KindFloat64
	default:
		return k
	}
}

// Wide integers are stored as *big.Int but constrained to the 128-bit
// signed range, matching the widest integer a config value may carry.
var (
	maxWide = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minWide = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

func fitsWide(v *big.Int) bool {
	return v.Cmp(minWide) >= 0 && v.Cmp(maxWide) <= 0
}

// Value is a tagged union over the nine supported variants. Once created
// with a given kind, every subsequent value written to the same flag must
// carry the same kind.
type Value struct {
	kind Kind
	data any
}

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBool, data: v} }

// String returns a string Value.
func String(v string) Value { return Value{kind: KindString, data: v} }

// Int64 returns a 64-bit integer Value.
func Int64(v int64) Value { return Value{kind: KindInt64, data: v} }

// Wide returns a 128-bit integer Value. It panics if v exceeds the
// 128-bit signed range.
func Wide(v *big.Int) Value {
	if !fitsWide(v) {
		panic(fmt.Sprintf("flagset: wide value %s exceeds the 128-bit signed range", v))
	}
	return Value{kind: KindWide, data: new(big.Int).Set(v)}
}

// Float64 returns a 64-bit float Value.
func Float64(v float64) Value { return Value{kind: KindFloat64, data: v} }

// Strings returns a string-array Value.
func Strings(vs ...string) Value {
	return Value{kind: KindStrings, data: append([]string(nil), vs...)}
}

// Int64s returns a 64-bit integer array Value.
func Int64s(vs ...int64) Value {
	return Value{kind: KindInt64s, data: append([]int64(nil), vs...)}
}

// Wides returns a 128-bit integer array Value. It panics if any element
// exceeds the 128-bit signed range.
func Wides(vs ...*big.Int) Value {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		if !fitsWide(v) {
			panic(fmt.Sprintf("flagset: wide value %s exceeds the 128-bit signed range", v))
		}
		out[i] = new(big.Int).Set(v)
	}
	return Value{kind: KindWides, data: out}
}

// Float64s returns a 64-bit float array Value.
func Float64s(vs ...float64) Value {
	return Value{kind: KindFloat64s, data: append([]float64(nil), vs...)}
}

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind { return v.kind }

// String renders the value as text. Scalars are stringified with their
// canonical textual form; arrays render as "[a, b, c]".
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.data.(bool))
	case KindString:
		return v.data.(string)
	case KindInt64:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindWide:
		return v.data.(*big.Int).String()
	case KindFloat64:
		return strconv.FormatFloat(v.data.(float64), 'g', -1, 64)
	case KindStrings:
		return "[" + strings.Join(v.data.([]string), ", ") + "]"
	case KindInt64s:
		elems := v.data.([]int64)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = strconv.FormatInt(e, 10)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindWides:
		elems := v.data.([]*big.Int)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindFloat64s:
		elems := v.data.([]float64)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = strconv.FormatFloat(e, 'g', -1, 64)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v.data)
	}
}

// clone returns a deep copy so that default values stay immutable while
// current values are mutated in place during loading.
func (v Value) clone() Value {
	switch v.kind {
	case KindWide:
		return Value{kind: v.kind, data: new(big.Int).Set(v.data.(*big.Int))}
	case KindStrings:
		return Value{kind: v.kind, data: append([]string(nil), v.data.([]string)...)}
	case KindInt64s:
		return Value{kind: v.kind, data: append([]int64(nil), v.data.([]int64)...)}
	case KindWides:
		src := v.data.([]*big.Int)
		out := make([]*big.Int, len(src))
		for i, e := range src {
			out[i] = new(big.Int).Set(e)
		}
		return Value{kind: v.kind, data: out}
	case KindFloat64s:
		return Value{kind: v.kind, data: append([]float64(nil), v.data.([]float64)...)}
	default:
		return v
	}
}

// native exposes the underlying Go representation for struct scanning.
func (v Value) native() any { return v.data }

// parseWide parses a base-10 integer into the 128-bit signed range.
func parseWide(text string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", text)
	}
	if !fitsWide(n) {
		return nil, fmt.Errorf("integer %q exceeds the 128-bit signed range", text)
	}
	return n, nil
}

// parseElem parses one textual element for a scalar kind. Booleans accept
// exactly "true" and "false".
func parseElem(kind Kind, text string) (any, error) {
	switch kind {
	case KindBool:
		switch text {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, fmt.Errorf("invalid bool %q", text)
		}
	case KindString:
		return text, nil
	case KindInt64:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid int64 %q", text)
		}
		return n, nil
	case KindWide:
		return parseWide(text)
	case KindFloat64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float64 %q", text)
		}
		return f, nil
	default:
		panic(fmt.Sprintf("flagset: parseElem called with non-scalar kind %s", kind))
	}
}

// coerceValue strictly matches a decoded config value (JSON, TOML or YAML)
// against the requested kind and returns the resulting Value. Array
// coercion is all-or-nothing: either every element matches or an error is
// returned and nothing is assigned.
func coerceValue(kind Kind, raw any) (Value, error) {
	if kind.IsArray() {
		list, ok := raw.([]any)
		if !ok {
			return Value{}, fmt.Errorf("%w: expected array of %s, got %T", ErrTypeMismatch, kind.elem(), raw)
		}
		elems := make([]any, len(list))
		for i, item := range list {
			elem, err := coerceScalar(kind.elem(), item)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			elems[i] = elem
		}
		return buildArray(kind, elems), nil
	}

	elem, err := coerceScalar(kind, raw)
	if err != nil {
		return Value{}, err
	}
	return Value{kind: kind, data: elem}, nil
}

// coerceScalar converts a decoded scalar to the requested element kind.
// JSON numbers arrive as json.Number (decoded with UseNumber), TOML
// integers as int64 and YAML integers as int or uint64.
func coerceScalar(kind Kind, raw any) (any, error) {
	switch kind {
	case KindBool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case KindString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case KindInt64:
		switch n := raw.(type) {
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		case uint64:
			if n > uint64(maxInt64) {
				return nil, fmt.Errorf("%w: integer %d overflows int64", ErrTypeMismatch, n)
			}
			return int64(n), nil
		case json.Number:
			i, err := strconv.ParseInt(n.String(), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: number %s is not an int64", ErrTypeMismatch, n)
			}
			return i, nil
		}
	case KindWide:
		switch n := raw.(type) {
		case int:
			return big.NewInt(int64(n)), nil
		case int64:
			return big.NewInt(n), nil
		case uint64:
			return new(big.Int).SetUint64(n), nil
		case json.Number:
			w, err := parseWide(n.String())
			if err != nil {
				return nil, fmt.Errorf("%w: number %s is not a wide integer", ErrTypeMismatch, n)
			}
			return w, nil
		}
	case KindFloat64:
		switch n := raw.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case uint64:
			return float64(n), nil
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("%w: number %s is not a float64", ErrTypeMismatch, n)
			}
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: expected %s, got %T", ErrTypeMismatch, kind, raw)
}

const maxInt64 = int64(^uint64(0) >> 1)

// buildArray assembles a typed array Value from coerced elements.
func buildArray(kind Kind, elems []any) Value {
	switch kind {
	case KindStrings:
		out := make([]string, len(elems))
		for i, e := range elems {
			out[i] = e.(string)
		}
		return Value{kind: kind, data: out}
	case KindInt64s:
		out := make([]int64, len(elems))
		for i, e := range elems {
			out[i] = e.(int64)
		}
		return Value{kind: kind, data: out}
	case KindWides:
		out := make([]*big.Int, len(elems))
		for i, e := range elems {
			out[i] = e.(*big.Int)
		}
		return Value{kind: kind, data: out}
	case KindFloat64s:
		out := make([]float64, len(elems))
		for i, e := range elems {
			out[i] = e.(float64)
		}
		return Value{kind: kind, data: out}
	default:
		panic(fmt.Sprintf("flagset: buildArray called with non-array kind %s", kind))
	}
}
