package jsonbuild

import "io"

// renderer writes the JSON text of a value tree to an output sink.
type renderer struct {
	w      io.Writer
	masked bool
}

func (r *renderer) write(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

// writeNode is a depth-first, pre-order walk over the closed variant set.
// Trees are acyclic by construction, so the walk always terminates.
func (r *renderer) writeNode(n Node) error {
	switch n := n.(type) {
	case *NullLiteral:
		return r.write("null")
	case *StringLiteral:
		return r.writeQuoted(n.value)
	case *NumberLiteral:
		return r.write(n.literal)
	case *BooleanLiteral:
		if n.value {
			return r.write("true")
		}
		return r.write("false")
	case *Pair:
		return r.writePair(n)
	case *ObjectLiteral:
		return r.writeObject(n)
	case *ArrayLiteral:
		return r.writeArray(n)
	case *MaskedValue:
		if r.masked {
			return r.writeQuoted(n.placeholder)
		}
		return r.writeNode(n.value)
	default:
		// nil or a typed-nil Node smuggled in through an interface.
		return r.write("null")
	}
}

// writeQuoted writes s between double quotes with no escaping.
func (r *renderer) writeQuoted(s string) error {
	return r.write(`"` + s + `"`)
}

func (r *renderer) writePair(p *Pair) error {
	if p.empty {
		return nil
	}
	if err := r.writeQuoted(p.key); err != nil {
		return err
	}
	if err := r.write(":"); err != nil {
		return err
	}
	return r.writeNode(p.value)
}

func (r *renderer) writeObject(o *ObjectLiteral) error {
	if err := r.write("{"); err != nil {
		return err
	}
	wrote := false
	for _, p := range o.pairs {
		if p.empty {
			continue
		}
		if wrote {
			if err := r.write(","); err != nil {
				return err
			}
		}
		if err := r.writePair(p); err != nil {
			return err
		}
		wrote = true
	}
	return r.write("}")
}

func (r *renderer) writeArray(a *ArrayLiteral) error {
	if err := r.write("["); err != nil {
		return err
	}
	wrote := false
	for _, el := range a.elems {
		// A suppressed pair contributes nothing to any sibling list.
		if p, ok := el.(*Pair); ok && p.empty {
			continue
		}
		if wrote {
			if err := r.write(","); err != nil {
				return err
			}
		}
		if err := r.writeNode(el); err != nil {
			return err
		}
		wrote = true
	}
	return r.write("]")
}
