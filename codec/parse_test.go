package codec

import (
	"strings"
	"testing"
	"time"

	"github.com/juju/loggo"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/pillow/errs"
	"github.com/arloliu/pillow/node"
)

func TestParse(t *testing.T) {
	t.Run("scalars", func(t *testing.T) {
		tests := []struct {
			input string
			kind  node.Kind
		}{
			{"null", node.Null},
			{"true", node.Boolean},
			{"42", node.Integer},
			{"-7", node.Integer},
			{"5.5", node.Double},
			{"1e3", node.Double},
			{"2E-2", node.Double},
			{"9223372036854775808", node.Double},
			{`"s"`, node.String},
			{" \n 1 \t", node.Integer},
		}

		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				n, err := Parse([]byte(tt.input))
				require.NoError(t, err)
				require.NotNil(t, n)
				require.Equal(t, tt.kind, n.Kind())
			})
		}
	})

	t.Run("values", func(t *testing.T) {
		n, err := Parse([]byte(`[99,5.5,"string",{"hello":"world"},false,null]`))
		require.NoError(t, err)
		require.Equal(t, node.Array, n.Kind())
		require.Equal(t, 6, n.Len())
		require.Equal(t, int64(99), n.Index(0).IntValue())
		require.Equal(t, 5.5, n.Index(1).DoubleValue())
		s, ok := n.Index(2).StringValue()
		require.True(t, ok)
		require.Equal(t, "string", s)
		s, _ = n.Index(3).Get("hello").StringValue()
		require.Equal(t, "world", s)
		require.Equal(t, node.Boolean, n.Index(4).Kind())
		require.False(t, n.Index(4).BoolValue())
		require.Equal(t, node.Null, n.Index(5).Kind())
		require.NotNil(t, n.Index(5))
	})

	t.Run("map keys keep document order", func(t *testing.T) {
		n, err := Parse([]byte(`{"z":1,"a":{"y":2,"b":3},"m":[{"k":"v"}]}`))
		require.NoError(t, err)
		require.Equal(t, []string{"z", "a", "m"}, n.Keys())
		require.Equal(t, []string{"y", "b"}, n.Get("a").Keys())
		require.Equal(t, "v", mustString(t, n.Get("m").Index(0).Get("k")))
	})

	t.Run("string values that look like keys", func(t *testing.T) {
		n, err := Parse([]byte(`{"a":"b","c":["d","e"],"f":{"g":"h"},"i":"j"}`))
		require.NoError(t, err)
		require.Equal(t, []string{"a", "c", "f", "i"}, n.Keys())
		require.Equal(t, "j", mustString(t, n.Get("i")))
		require.Equal(t, "e", mustString(t, n.Get("c").Index(1)))
	})

	t.Run("escapes", func(t *testing.T) {
		n, err := Parse([]byte(`{"k\"ey":"line\nbreak é <tag>"}`))
		require.NoError(t, err)
		require.Equal(t, "line\nbreak é <tag>", mustString(t, n.Get(`k"ey`)))
	})

	t.Run("empty input", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\n\t"} {
			n, err := Parse([]byte(input))
			require.NoError(t, err)
			require.Nil(t, n)
		}
	})
}

func TestParse_Malformed(t *testing.T) {
	t.Run("trailing data keeps the first value", func(t *testing.T) {
		n, err := Parse([]byte(`{}}`))
		require.ErrorIs(t, err, errs.ErrSyntax)
		require.Equal(t, node.Map, n.Kind())
		require.Equal(t, 0, n.Len())
	})

	t.Run("second value", func(t *testing.T) {
		n, err := Parse([]byte(`1 2`))
		require.ErrorIs(t, err, errs.ErrSyntax)
		require.Equal(t, int64(1), n.IntValue())
	})

	t.Run("unquoted key keeps partial tree", func(t *testing.T) {
		n, err := Parse([]byte(`{"test":{hello:"world"}}`))
		require.ErrorIs(t, err, errs.ErrSyntax)
		require.NotNil(t, n)
		require.True(t, n.Has("test"))
		require.Equal(t, node.Map, n.Get("test").Kind())
		require.Equal(t, 0, n.Get("test").Len())
	})

	t.Run("truncated input", func(t *testing.T) {
		n, err := Parse([]byte(`[1,2,`))
		require.ErrorIs(t, err, errs.ErrSyntax)
		require.Equal(t, 2, n.Len())

		_, err = Parse([]byte(`{"a":"unterminated`))
		require.ErrorIs(t, err, errs.ErrSyntax)
	})

	t.Run("garbage", func(t *testing.T) {
		n, err := Parse([]byte(`nope`))
		require.ErrorIs(t, err, errs.ErrSyntax)
		require.Nil(t, n)
	})
}

func TestParse_DeepNesting(t *testing.T) {
	const depth = 50000
	input := strings.Repeat("[", depth) + strings.Repeat("]", depth)

	start := time.Now()
	root, err := Parse([]byte(input))
	require.NoError(t, err)
	require.Less(t, time.Since(start), 2*time.Second)

	levels := 0
	for n := root; n.Len() > 0; n = n.Index(0) {
		levels++
	}
	require.Equal(t, depth-1, levels)
}

func TestParseReader(t *testing.T) {
	n, err := ParseReader(strings.NewReader(`{"hello":"world"}`))
	require.NoError(t, err)
	require.Equal(t, "world", mustString(t, n.Get("hello")))
}

func TestFromJSON(t *testing.T) {
	var tw loggo.TestWriter
	require.NoError(t, loggo.RegisterWriter("codec-test", &tw))
	defer func() { _, _ = loggo.RemoveWriter("codec-test") }()

	prev := logger.LogLevel()
	logger.SetLogLevel(loggo.DEBUG)
	defer logger.SetLogLevel(prev)

	n := FromJSON(`{"hello":"world"}`)
	require.Equal(t, "world", mustString(t, n.Get("hello")))
	require.Empty(t, tw.Log())

	bad := FromJSON(`{"test":{hello:"world"}}`)
	require.True(t, bad.Has("test"))

	entries := tw.Log()
	require.Len(t, entries, 1)
	require.Equal(t, loggo.DEBUG, entries[0].Level)
	require.Contains(t, entries[0].Message, "parsing JSON document")
}

func mustString(t *testing.T, n *node.Node) string {
	t.Helper()
	s, ok := n.StringValue()
	require.True(t, ok, "expected a String node, got %s", n.Kind())

	return s
}
