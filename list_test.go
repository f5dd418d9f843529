package decexpr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsList(t *testing.T) {
	cases := []struct {
		name string
		v    interface{}
		l    []interface{}
		ok   bool
	}{
		{"iface", []interface{}{"+", 1}, []interface{}{"+", 1}, true},
		{"strings", []string{"a", "b"}, []interface{}{"a", "b"}, true},
		{"ints", []int{1, 2}, []interface{}{1, 2}, true},
		{"array", [2]float64{1.5, 2}, []interface{}{1.5, 2.0}, true},
		{"empty", []interface{}{}, []interface{}{}, true},
		{"string", "abc", nil, false},
		{"number", 1.5, nil, false},
		{"nil", nil, nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l, ok := asList(c.v)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.l, l)
		})
	}
}

func TestRender(t *testing.T) {
	v := []interface{}{"+", 1, 0.5, []interface{}{"*", "2", OpDiv}, nil}
	assert.Equal(t, "[+ 1 0.5 [* 2 /] NaN]", render(v))
	assert.Equal(t, "+ 1 0.5 [* 2 /] NaN", renderList(v))
	assert.Equal(t, "7", render(7))
}

func TestDecodeLists(t *testing.T) {
	src := `["+", 1, 2, 3, 4, ["*", 2, 3]]
---
["-", 0.30, "0.1"]
---
- "/"
- 1
- 4
`
	lists, err := DecodeLists(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, lists, 3)
	assert.Equal(t, []interface{}{"+", "1", "2", "3", "4", []interface{}{"*", "2", "3"}}, lists[0])
	assert.Equal(t, []interface{}{"-", "0.30", "0.1"}, lists[1])
	assert.Equal(t, 2, DecimalPlaces(lists[1][1]), "scalar text should keep trailing zeros")

	want := []float64{16, 0.2, 0.25}
	for i, l := range lists {
		r, err := Fold(l)
		require.NoError(t, err)
		assert.Equal(t, want[i], r, "folding %v", l)
	}
}

func TestDecodeListsAlias(t *testing.T) {
	src := `[&two "2", "+", *two]`
	lists, err := DecodeLists(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, []interface{}{"2", "+", "2"}, lists[0])
	r, err := Evaluate(lists[0])
	require.NoError(t, err)
	assert.Equal(t, 4.0, r)
}

func TestDecodeListsErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"mapping", `{"+": [1, 2]}`},
		{"nested-mapping", `["+", 1, {a: 2}]`},
		{"scalar", `5`},
		{"syntax", `["+", 1`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeLists(strings.NewReader(c.src))
			assert.Error(t, err)
		})
	}
}

func TestDecodeListsEmpty(t *testing.T) {
	lists, err := DecodeLists(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lists)
}
