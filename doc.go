/*
Package jsonbuild provides a fluent builder for constructing compact JSON text
from immutable value trees, with optional render-time masking of sensitive
values.

The package offers two primary workflows depending on the use case:

1. Building and Rendering JSON

Trees are assembled bottom-up from constructor calls and rendered to text with
ToJSON (in-memory) or Render (any io.Writer):

	doc := jsonbuild.Object(
		jsonbuild.KeyValue("name", "value"),
		jsonbuild.KeyValue("isOpen", true),
		jsonbuild.KeyValue("primes", jsonbuild.Ints(2, 3, 5, 7, 11)),
	)

	s, err := jsonbuild.ToJSON(doc)
	// s is `{"name":"value","isOpen":true,"primes":[2,3,5,7,11]}`

Every node is immutable. "Modifying" an object or array with Put or Add
returns a new node and leaves the receiver unchanged, so partially-built trees
can be shared freely across call sites and goroutines.

Construction never fails: absent inputs (nil, nil pointers, values outside the
documented set accepted by Value) become the JSON null node rather than an
error. The deferred forms (ValueFunc, KeyValueFunc, ArrayFunc, ObjectFunc)
invoke their callback once, synchronously, at call time; a nil result
substitutes a typed default. KeyValueFunc is the only form whose default is
fully suppressed: the resulting pair contributes zero characters to its
enclosing object, including the separating comma.

2. Masking Sensitive Values

Mask wraps any value so that the same tree renders differently depending on a
flag passed at render time. With masking disabled the wrapped value renders in
full; with masking enabled a quoted placeholder is emitted instead:

	doc := jsonbuild.Object(
		jsonbuild.KeyValue("user", "alice"),
		jsonbuild.KeyValue("password", jsonbuild.Mask("hunter2")),
	)

	plain, _ := jsonbuild.ToJSON(doc)
	// `{"user":"alice","password":"hunter2"}`

	safe, _ := jsonbuild.ToJSON(doc, jsonbuild.Masked(true))
	// `{"user":"alice","password":"***masked***"}`

Masking is metadata consulted during rendering, not baked into the tree, so a
single shared tree can serve both an audit trail (unmasked) and a user-facing
log (masked) without being rebuilt.

# No String Escaping

The renderer writes string contents verbatim between double quotes. It does
NOT escape embedded quotes, backslashes, or control characters. Callers are
responsible for ensuring string values and keys are JSON-safe; passing
untrusted text produces invalid JSON. This is a deliberate non-feature, not an
oversight.

Output is always compact: no whitespace between tokens and no pretty-printing
option. Rendering fails only if the supplied io.Writer fails, and such errors
are returned to the caller unmodified.
*/
package jsonbuild
