package jsonbuild

import (
	"encoding/json"
	"math"
	"math/big"
	"slices"
	"strconv"
)

// DefaultPlaceholder is the replacement text used by Mask.
const DefaultPlaceholder = "***masked***"

var (
	nullNode  = &NullLiteral{}
	emptyPair = &Pair{empty: true}
)

// Null returns the shared null node.
func Null() *NullLiteral { return nullNode }

// Value lifts a raw Go value into a renderable node. Supported inputs are
// nil, Node (returned as-is), string, *string, bool, all integer kinds,
// float32/float64, *int, *int64, *float64, json.Number, *big.Int, and
// *big.Float.
// Absent inputs (nil, nil pointers — typed-nil node pointers included — and
// the empty json.Number) and values outside this set become the null node;
// Value never fails.
//
// Floats format with the host's shortest round-trip conversion, so 1.01
// renders as 1.01. NaN and infinities have no JSON representation and become
// null.
func Value(v any) Node {
	switch v := v.(type) {
	case nil:
		return nullNode
	case Node:
		return normalize(v)
	case string:
		return &StringLiteral{value: v}
	case *string:
		if v == nil {
			return nullNode
		}
		return &StringLiteral{value: *v}
	case bool:
		return &BooleanLiteral{value: v}
	case int:
		return &NumberLiteral{literal: strconv.FormatInt(int64(v), 10)}
	case int8:
		return &NumberLiteral{literal: strconv.FormatInt(int64(v), 10)}
	case int16:
		return &NumberLiteral{literal: strconv.FormatInt(int64(v), 10)}
	case int32:
		return &NumberLiteral{literal: strconv.FormatInt(int64(v), 10)}
	case int64:
		return &NumberLiteral{literal: strconv.FormatInt(v, 10)}
	case uint:
		return &NumberLiteral{literal: strconv.FormatUint(uint64(v), 10)}
	case uint8:
		return &NumberLiteral{literal: strconv.FormatUint(uint64(v), 10)}
	case uint16:
		return &NumberLiteral{literal: strconv.FormatUint(uint64(v), 10)}
	case uint32:
		return &NumberLiteral{literal: strconv.FormatUint(uint64(v), 10)}
	case uint64:
		return &NumberLiteral{literal: strconv.FormatUint(v, 10)}
	case float32:
		return floatNode(float64(v), 32)
	case float64:
		return floatNode(v, 64)
	case *int:
		if v == nil {
			return nullNode
		}
		return &NumberLiteral{literal: strconv.FormatInt(int64(*v), 10)}
	case *int64:
		if v == nil {
			return nullNode
		}
		return &NumberLiteral{literal: strconv.FormatInt(*v, 10)}
	case *float64:
		if v == nil {
			return nullNode
		}
		return floatNode(*v, 64)
	case json.Number:
		if v == "" {
			return nullNode
		}
		return &NumberLiteral{literal: string(v)}
	case *big.Int:
		if v == nil {
			return nullNode
		}
		return &NumberLiteral{literal: v.String()}
	case *big.Float:
		if v == nil || v.IsInf() {
			return nullNode
		}
		return &NumberLiteral{literal: v.Text('g', -1)}
	default:
		return nullNode
	}
}

// floatNode formats f the way encoding/json does: fixed notation for the
// common range, exponent notation with a trimmed exponent outside it.
func floatNode(f float64, bits int) Node {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nullNode
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	s := strconv.FormatFloat(f, format, -1, bits)
	if format == 'e' {
		if n := len(s); n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}
	return &NumberLiteral{literal: s}
}

// KeyValue builds an object member. The value is lifted via Value, so an
// absent value yields a pair that renders as "key":null — the pair itself is
// not suppressed. Only KeyValueFunc produces the fully-suppressed sentinel.
func KeyValue(key string, value any) *Pair {
	return &Pair{key: key, value: Value(value)}
}

// Object builds an object from the given pairs. Keys are unique: when the
// same key is supplied more than once, the first occurrence fixes its
// position in the output and the latest value wins.
func Object(pairs ...*Pair) *ObjectLiteral {
	o := &ObjectLiteral{}
	for _, p := range pairs {
		o.insert(p)
	}
	return o
}

// Put returns a new object equal to o with p inserted. An existing key keeps
// its position and takes the new value; o itself is unchanged.
func (o *ObjectLiteral) Put(p *Pair) *ObjectLiteral {
	res := &ObjectLiteral{pairs: slices.Clone(o.pairs)}
	res.insert(p)
	return res
}

func (o *ObjectLiteral) insert(p *Pair) {
	if p == nil {
		p = emptyPair
	}
	if !p.empty {
		for i, q := range o.pairs {
			if !q.empty && q.key == p.key {
				o.pairs[i] = p
				return
			}
		}
	}
	o.pairs = append(o.pairs, p)
}

// Array builds an array of heterogeneous values, each lifted via Value.
func Array(values ...any) *ArrayLiteral {
	a := &ArrayLiteral{elems: make([]Node, 0, len(values))}
	for _, v := range values {
		a.elems = append(a.elems, Value(v))
	}
	return a
}

// Add returns a new array equal to a with the given values appended at the
// end, in call-site order; a itself is unchanged.
func (a *ArrayLiteral) Add(values ...any) *ArrayLiteral {
	res := &ArrayLiteral{elems: make([]Node, 0, len(a.elems)+len(values))}
	res.elems = append(res.elems, a.elems...)
	for _, v := range values {
		res.elems = append(res.elems, Value(v))
	}
	return res
}

// Strings builds an array of string values.
func Strings(values ...string) *ArrayLiteral {
	a := &ArrayLiteral{elems: make([]Node, 0, len(values))}
	for _, v := range values {
		a.elems = append(a.elems, Value(v))
	}
	return a
}

// Ints builds an array of integer values.
func Ints(values ...int64) *ArrayLiteral {
	a := &ArrayLiteral{elems: make([]Node, 0, len(values))}
	for _, v := range values {
		a.elems = append(a.elems, Value(v))
	}
	return a
}

// Floats builds an array of float values.
func Floats(values ...float64) *ArrayLiteral {
	a := &ArrayLiteral{elems: make([]Node, 0, len(values))}
	for _, v := range values {
		a.elems = append(a.elems, Value(v))
	}
	return a
}

// Bools builds an array of boolean values.
func Bools(values ...bool) *ArrayLiteral {
	a := &ArrayLiteral{elems: make([]Node, 0, len(values))}
	for _, v := range values {
		a.elems = append(a.elems, Value(v))
	}
	return a
}

// Numbers builds an array of arbitrary-precision number literals.
func Numbers(values ...json.Number) *ArrayLiteral {
	a := &ArrayLiteral{elems: make([]Node, 0, len(values))}
	for _, v := range values {
		a.elems = append(a.elems, Value(v))
	}
	return a
}

// Mask wraps value with the default placeholder. Raw scalars are lifted via
// Value, so Mask("secret") and Mask(Value("secret")) are equivalent.
func Mask(value any) *MaskedValue {
	return MaskWith(value, DefaultPlaceholder)
}

// MaskWith wraps value with a custom placeholder emitted verbatim (quoted)
// when rendering with masking enabled.
func MaskWith(value any, placeholder string) *MaskedValue {
	return &MaskedValue{value: Value(value), placeholder: placeholder}
}

// ValueFunc invokes fn once, synchronously, and returns its result. A nil fn
// or a nil result (typed-nil node pointers included) yields the null node.
func ValueFunc(fn func() Node) Node {
	if fn == nil {
		return nullNode
	}
	return Value(fn())
}

// KeyValueFunc invokes fn once, synchronously, and returns its result. A nil
// fn or a nil result yields the suppressed sentinel pair, which renders as
// zero characters inside its parent object.
func KeyValueFunc(fn func() *Pair) *Pair {
	if fn == nil {
		return emptyPair
	}
	if p := fn(); p != nil {
		return p
	}
	return emptyPair
}

// ArrayFunc invokes fn once, synchronously, and returns its result. A nil fn
// or a nil result yields an empty array.
func ArrayFunc(fn func() *ArrayLiteral) *ArrayLiteral {
	if fn == nil {
		return &ArrayLiteral{}
	}
	if a := fn(); a != nil {
		return a
	}
	return &ArrayLiteral{}
}

// ObjectFunc invokes fn once, synchronously, and returns its result. A nil fn
// or a nil result yields an empty object.
func ObjectFunc(fn func() *ObjectLiteral) *ObjectLiteral {
	if fn == nil {
		return &ObjectLiteral{}
	}
	if o := fn(); o != nil {
		return o
	}
	return &ObjectLiteral{}
}
