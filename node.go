package jsonbuild

import "strings"

// Node is the base interface for all value-tree nodes. The variant set is
// closed: only the types in this package implement it.
type Node interface {
	// String returns the compact, unmasked JSON text of the node.
	String() string
	node()
}

// NullLiteral represents the JSON literal null. The shared instance returned
// by Null is stateless and safe to reuse anywhere in a tree.
type NullLiteral struct{}

func (n *NullLiteral) node()          {}
func (n *NullLiteral) String() string { return nodeString(n) }

// StringLiteral represents a JSON string. Its contents are rendered verbatim
// between double quotes with no escaping; see the package documentation.
type StringLiteral struct {
	value string
}

func (s *StringLiteral) node()          {}
func (s *StringLiteral) String() string { return nodeString(s) }

// Value returns the raw, unquoted text of the string.
func (s *StringLiteral) Value() string { return s.value }

// NumberLiteral represents a JSON number. The decimal literal is fixed at
// construction time, so values of arbitrary precision (json.Number, big.Int)
// render exactly as supplied.
type NumberLiteral struct {
	literal string
}

func (n *NumberLiteral) node()          {}
func (n *NumberLiteral) String() string { return nodeString(n) }

// BooleanLiteral represents a JSON boolean.
type BooleanLiteral struct {
	value bool
}

func (b *BooleanLiteral) node()          {}
func (b *BooleanLiteral) String() string { return nodeString(b) }

// Value returns the boolean value.
func (b *BooleanLiteral) Value() bool { return b.value }

// Pair represents a key-value member of an object, rendered as "key":value.
// The empty sentinel produced by KeyValueFunc renders as nothing at all and
// is excluded from its parent's comma-separated member list.
type Pair struct {
	key   string
	value Node
	empty bool
}

func (p *Pair) node()          {}
func (p *Pair) String() string { return nodeString(p) }

// Key returns the pair's key. It is empty for the suppressed sentinel.
func (p *Pair) Key() string { return p.key }

// Value returns the pair's value node, or nil for the suppressed sentinel.
func (p *Pair) Value() Node { return p.value }

// ObjectLiteral represents a JSON object: an insertion-ordered set of pairs
// with unique keys. The zero value renders as {}.
type ObjectLiteral struct {
	pairs []*Pair
}

func (o *ObjectLiteral) node()          {}
func (o *ObjectLiteral) String() string { return nodeString(o) }

// Get returns the value for key and whether the key is present.
func (o *ObjectLiteral) Get(key string) (Node, bool) {
	for _, p := range o.pairs {
		if !p.empty && p.key == key {
			return p.value, true
		}
	}
	return nil, false
}

// Len returns the number of members that will appear in the rendered output.
func (o *ObjectLiteral) Len() int {
	n := 0
	for _, p := range o.pairs {
		if !p.empty {
			n++
		}
	}
	return n
}

// ArrayLiteral represents a JSON array: an ordered sequence of heterogeneous
// values, duplicates allowed. The zero value renders as [].
type ArrayLiteral struct {
	elems []Node
}

func (a *ArrayLiteral) node()          {}
func (a *ArrayLiteral) String() string { return nodeString(a) }

// Len returns the number of elements in the array.
func (a *ArrayLiteral) Len() int { return len(a.elems) }

// MaskedValue wraps a single node together with a replacement string. When a
// render call has masking enabled it emits the replacement as a quoted string;
// otherwise it delegates entirely to the wrapped node, structure included.
type MaskedValue struct {
	value       Node
	placeholder string
}

func (m *MaskedValue) node()          {}
func (m *MaskedValue) String() string { return nodeString(m) }

// Unwrap returns the wrapped node.
func (m *MaskedValue) Unwrap() Node { return m.value }

// Placeholder returns the replacement text emitted when masking is enabled.
func (m *MaskedValue) Placeholder() string { return m.placeholder }

// nodeString renders a node unmasked into an in-memory buffer. Writes to a
// strings.Builder cannot fail.
func nodeString(n Node) string {
	var sb strings.Builder
	r := &renderer{w: &sb}
	_ = r.writeNode(normalize(n))
	return sb.String()
}

// normalize maps nil and typed-nil node pointers to the shared null node, so
// no tree reachable through the public API can make the renderer dereference
// a nil pointer.
func normalize(n Node) Node {
	switch v := n.(type) {
	case nil:
		return nullNode
	case *NullLiteral:
		if v == nil {
			return nullNode
		}
	case *StringLiteral:
		if v == nil {
			return nullNode
		}
	case *NumberLiteral:
		if v == nil {
			return nullNode
		}
	case *BooleanLiteral:
		if v == nil {
			return nullNode
		}
	case *Pair:
		if v == nil {
			return nullNode
		}
	case *ObjectLiteral:
		if v == nil {
			return nullNode
		}
	case *ArrayLiteral:
		if v == nil {
			return nullNode
		}
	case *MaskedValue:
		if v == nil {
			return nullNode
		}
	}
	return n
}
