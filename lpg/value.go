package lpg

import "fmt"

// Kind enumerates the scalar types a property Value can hold.
type Kind uint8

const (
	// KindNull is the explicit null value (distinct from an absent key).
	KindNull Kind = iota
	// KindString holds a UTF-8 string.
	KindString
	// KindInt holds a signed 64-bit integer.
	KindInt
	// KindFloat holds a 64-bit float.
	KindFloat
	// KindBool holds a boolean.
	KindBool
)

// Value is a typed scalar stored under a property key on a node or edge.
// The zero Value is null.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

// Null returns the null Value.
func Null() Value { return Value{} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a float Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports the scalar type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string payload and whether v is a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsInt returns the integer payload and whether v is an integer.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsBool returns the boolean payload and whether v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsFloat returns v as a float64. Both KindFloat and KindInt decode;
// the second result is false for every other kind. Weighted algorithms
// rely on this to accept integer-valued weight properties.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// GoString renders v for test failure messages and debugging.
func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("lpg.String(%q)", v.s)
	case KindInt:
		return fmt.Sprintf("lpg.Int(%d)", v.i)
	case KindFloat:
		return fmt.Sprintf("lpg.Float(%g)", v.f)
	case KindBool:
		return fmt.Sprintf("lpg.Bool(%t)", v.b)
	default:
		return "lpg.Null()"
	}
}
