package jsonbuild

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderer(t *testing.T) {
	sample := Object(
		KeyValue("string", "hello"),
		KeyValue("nested", Object(KeyValue("a", 1))),
		KeyValue("array", Array(true, nil)),
	)

	testCases := []struct {
		name     string
		node     Node
		opts     []Option
		expected string
	}{
		{
			name:     "compact object",
			node:     sample,
			expected: `{"string":"hello","nested":{"a":1},"array":[true,null]}`,
		},
		{
			name:     "empty object",
			node:     Object(),
			expected: "{}",
		},
		{
			name:     "empty array",
			node:     Array(),
			expected: "[]",
		},
		{
			name:     "suppressed pair leaves no comma behind",
			node:     Object(KeyValue("a", "v1"), KeyValueFunc(func() *Pair { return nil })),
			expected: `{"a":"v1"}`,
		},
		{
			name: "suppressed pair between members",
			node: Object(
				KeyValue("a", 1),
				KeyValueFunc(nil),
				KeyValue("b", 2),
			),
			expected: `{"a":1,"b":2}`,
		},
		{
			name:     "only suppressed pairs",
			node:     Object(KeyValueFunc(nil), KeyValueFunc(nil)),
			expected: "{}",
		},
		{
			name:     "suppressed pair in array sibling list",
			node:     Array(1, KeyValueFunc(nil), 2),
			expected: "[1,2]",
		},
		{
			name:     "explicit null value is kept",
			node:     Object(KeyValue("a", nil)),
			expected: `{"a":null}`,
		},
		{
			name:     "mask disabled delegates",
			node:     Object(KeyValue("key1", Mask("value1"))),
			expected: `{"key1":"value1"}`,
		},
		{
			name:     "mask enabled substitutes placeholder",
			node:     Object(KeyValue("key1", Mask("value1"))),
			opts:     []Option{Masked(true)},
			expected: `{"key1":"***masked***"}`,
		},
		{
			name:     "nil root renders null",
			node:     nil,
			expected: "null",
		},
		{
			name:     "typed-nil root renders null",
			node:     (*ObjectLiteral)(nil),
			expected: "null",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Render(tc.node, &buf, tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.expected, buf.String())
		})
	}
}

// failWriter fails every write after the first n calls succeed.
type failWriter struct {
	n   int
	err error
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	w.n--
	return len(p), nil
}

func TestRender_SinkErrorPropagates(t *testing.T) {
	sinkErr := errors.New("sink: connection closed")
	node := Object(KeyValue("a", 1), KeyValue("b", 2))

	t.Run("immediate failure", func(t *testing.T) {
		err := Render(node, &failWriter{n: 0, err: sinkErr})
		require.ErrorIs(t, err, sinkErr)
	})

	t.Run("mid-render failure aborts", func(t *testing.T) {
		err := Render(node, &failWriter{n: 3, err: sinkErr})
		require.ErrorIs(t, err, sinkErr)
	})
}

func BenchmarkRender(b *testing.B) {
	b.ReportAllocs()

	node := Object(
		KeyValue("name", "value"),
		KeyValue("isOpen", true),
		KeyValue("primes", Ints(2, 3, 5, 7, 11)),
		KeyValue("secret", Mask("hunter2")),
		KeyValue("nested", Object(
			KeyValue("decimals", Floats(1.01, 2.5)),
			KeyValue("flags", Bools(true, false)),
		)),
	)

	var buf bytes.Buffer
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := Render(node, &buf, Masked(true)); err != nil {
			b.Fatalf("Render failed during benchmark: %v", err)
		}
		buf.Reset()
	}
}
