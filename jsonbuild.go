package jsonbuild

import (
	"io"
	"strings"
)

// Render writes the compact JSON encoding of n to w. The renderer issues only
// sequential writes; any error returned by w aborts the render immediately
// and is returned to the caller unmodified.
func Render(n Node, w io.Writer, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return err
		}
	}
	r := &renderer{w: w, masked: o.masked}
	return r.writeNode(normalize(n))
}

// ToJSON renders n into an in-memory buffer and returns the text. The same
// tree may be rendered any number of times, with any combination of options,
// without being mutated.
func ToJSON(n Node, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Render(n, &sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}
