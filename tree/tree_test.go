package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pillow/codec"
	"github.com/arloliu/pillow/errs"
	"github.com/arloliu/pillow/node"
)

func mustParse(t *testing.T, s string) *node.Node {
	t.Helper()
	n, err := codec.Parse([]byte(s))
	require.NoError(t, err)
	require.NotNil(t, n)

	return n
}

// collect returns every node reachable from n, including n.
func collect(n *node.Node) []*node.Node {
	out := []*node.Node{n}
	for _, child := range n.All() {
		out = append(out, collect(child)...)
	}

	return out
}

func TestClone(t *testing.T) {
	docs := []string{
		`null`,
		`true`,
		`42`,
		`-2.5`,
		`"text"`,
		`[]`,
		`{}`,
		`[99,5.5,"string",{"hello":"world"}]`,
		`{"z":1,"a":[1,2,{"deep":[true,false,null]}],"m":{"k":"v"}}`,
	}

	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			orig := mustParse(t, doc)
			clone := Clone(orig)

			require.Equal(t, string(codec.ToJSON(orig, false)), string(codec.ToJSON(clone, false)))
			require.True(t, Equal(orig, clone))

			seen := make(map[*node.Node]bool)
			for _, n := range collect(orig) {
				seen[n] = true
			}
			for _, n := range collect(clone) {
				require.False(t, seen[n], "clone shares a node with the original")
			}
		})
	}

	t.Run("nil", func(t *testing.T) {
		require.Nil(t, Clone(nil))
	})

	t.Run("clone is independent", func(t *testing.T) {
		orig := mustParse(t, `{"list":[1,2]}`)
		clone := Clone(orig)
		clone.Get("list").PushBack(node.NewInt(3))
		clone.Set("extra", node.NewBool(true))

		require.Equal(t, `{"list":[1,2]}`, string(codec.ToJSON(orig, false)))
		require.Equal(t, `{"list":[1,2,3],"extra":true}`, string(codec.ToJSON(clone, false)))
	})
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name      string
		root      string
		additions string
		want      string
		conflict  bool
	}{
		{
			name:      "adds missing key",
			root:      `{"name":"Curtis","favorite_food":"Bread"}`,
			additions: `{"favorite_game":"Street Fighter II"}`,
			want:      `{"name":"Curtis","favorite_food":"Bread","favorite_game":"Street Fighter II"}`,
		},
		{
			name:      "kind mismatch",
			root:      `{"a":1}`,
			additions: `{"a":{"b":2}}`,
			want:      `{"a":1}`,
			conflict:  true,
		},
		{
			name:      "replaces scalars in place",
			root:      `{"a":1,"b":"x"}`,
			additions: `{"a":2}`,
			want:      `{"a":2,"b":"x"}`,
		},
		{
			name:      "merges nested maps",
			root:      `{"user":{"name":"a","age":1}}`,
			additions: `{"user":{"age":2,"email":"a@example.com"}}`,
			want:      `{"user":{"name":"a","age":2,"email":"a@example.com"}}`,
		},
		{
			name:      "replaces arrays wholesale",
			root:      `{"tags":[1,2,3]}`,
			additions: `{"tags":[4]}`,
			want:      `{"tags":[4]}`,
		},
		{
			name:      "integer and double are different kinds",
			root:      `{"n":1}`,
			additions: `{"n":1.5}`,
			want:      `{"n":1}`,
			conflict:  true,
		},
		{
			name:      "no rollback of earlier keys",
			root:      `{"a":1,"b":"x"}`,
			additions: `{"a":2,"b":false,"c":3}`,
			want:      `{"a":2,"b":"x"}`,
			conflict:  true,
		},
		{
			name:      "nested conflict stops the merge",
			root:      `{"m":{"x":1},"after":1}`,
			additions: `{"m":{"y":2,"x":"s"},"after":2}`,
			want:      `{"m":{"x":1,"y":2},"after":1}`,
			conflict:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, tt.root)
			additions := mustParse(t, tt.additions)

			err := Update(root, additions, false)
			if tt.conflict {
				require.ErrorIs(t, err, errs.ErrMergeConflict)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, string(codec.ToJSON(root, false)))
		})
	}

	t.Run("append flag does not change arrays", func(t *testing.T) {
		root := mustParse(t, `{"tags":[1,2]}`)
		require.NoError(t, Update(root, mustParse(t, `{"tags":[3]}`), true))
		require.Equal(t, `{"tags":[3]}`, string(codec.ToJSON(root, false)))
	})

	t.Run("additions are copied", func(t *testing.T) {
		root := node.NewMap()
		additions := mustParse(t, `{"m":{"k":1}}`)
		require.NoError(t, Update(root, additions, false))

		additions.Get("m").Set("k", node.NewInt(2))
		require.Equal(t, int64(1), root.Get("m").Get("k").IntValue())
	})

	t.Run("invalid arguments", func(t *testing.T) {
		m := mustParse(t, `{"a":1}`)
		arr := mustParse(t, `[1]`)

		require.ErrorIs(t, Update(nil, m, false), errs.ErrMergeConflict)
		require.ErrorIs(t, Update(m, nil, false), errs.ErrMergeConflict)
		require.ErrorIs(t, Update(arr, m, false), errs.ErrMergeConflict)
		require.ErrorIs(t, Update(m, arr, false), errs.ErrMergeConflict)
		require.Equal(t, `{"a":1}`, string(codec.ToJSON(m, false)))
	})
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{"same scalars", `1`, `1`, true},
		{"different ints", `1`, `2`, false},
		{"int vs double", `1`, `1.0`, false},
		{"map order ignored", `{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{"array order matters", `[1,2]`, `[2,1]`, false},
		{"different key sets", `{"a":1}`, `{"b":1}`, false},
		{"extra key", `{"a":1}`, `{"a":1,"b":1}`, false},
		{"nested", `{"a":[{"b":null}]}`, `{"a":[{"b":null}]}`, true},
		{"strings", `"x"`, `"y"`, false},
		{"bools", `true`, `false`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.equal, Equal(mustParse(t, tt.a), mustParse(t, tt.b)))
		})
	}

	require.True(t, Equal(nil, nil))
	require.False(t, Equal(nil, node.NewNull()))
}
