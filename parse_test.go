package decexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		rpn  string
	}{
		{"num", "1", "1"},
		{"decimal", "0.25", "0.25"},
		{"add", "1+2", "1 2 +"},
		{"sub", "1-2", "1 2 -"},
		{"mul", "1*2", "1 2 *"},
		{"div", "1/2", "1 2 /"},
		{"space", " 1 +\t2 ", "1 2 +"},
		{"left-add", "1+2+3", "1 2 + 3 +"},
		{"left-sub", "1-2-3", "1 2 - 3 -"},
		{"left-mixed", "1-2+3", "1 2 - 3 +"},
		{"left-div", "8/4/2", "8 4 / 2 /"},
		{"left-muldiv", "8/4*2", "8 4 / 2 *"},
		{"prec", "1+2*3", "1 2 3 * +"},
		{"prec-left", "1*2+3", "1 2 * 3 +"},
		{"prec-div", "1-6/3", "1 6 3 / -"},
		{"paren", "(1+2)*3", "1 2 + 3 *"},
		{"paren-right", "3*(1+2)", "3 1 2 + *"},
		{"nested", "((1+2)*(3-4))/5", "1 2 + 3 4 - * 5 /"},
		{"redundant", "((1))", "1"},
		{"empty", "", ""},
		{"empty-parens", "()", ""},
		{"ops-only", "+*", "* +"},
		{"garbage", "x = 1 + 2;", "1 2 +"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			require.NoError(t, err, "parsing %q", c.src)
			assert.Equal(t, c.rpn, e.String(), "parsing %q", c.src)
			assert.Equal(t, c.src, e.Source())
		})
	}
}

func TestParseBrackets(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		col   int
		paren string
	}{
		{"open", "(1+2", 1, "("},
		{"open-inner", "1*(2+(3)", 3, "("},
		{"open-end", "1+2(", 4, "("},
		{"close", "1+2)", 4, ")"},
		{"close-first", ")1", 1, ")"},
		{"close-extra", "(1))", 4, ")"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.src)
			var b *BracketError
			require.ErrorAs(t, err, &b, "parsing %q", c.src)
			assert.Equal(t, c.col, b.Col, "parsing %q", c.src)
			assert.Equal(t, c.paren, b.Paren, "parsing %q", c.src)
			assert.Equal(t, b.Col, b.Pos())
		})
	}
}

func TestParseList(t *testing.T) {
	cases := []struct {
		name string
		toks []interface{}
		rpn  string
		src  string
	}{
		{"nums", []interface{}{1, "+", 2.5}, "1 2.5 +", "1 + 2.5"},
		{"strings", []interface{}{"0.1", "+", "0.2"}, "0.1 0.2 +", "0.1 + 0.2"},
		{"ops", []interface{}{1, OpAdd, 2, OpMul, 3}, "1 2 3 * +", "1 + 2 * 3"},
		{"parens", []interface{}{"(", 1, "+", 2, ")", "*", 3}, "1 2 + 3 *", "( 1 + 2 ) * 3"},
		{"nested", []interface{}{[]interface{}{1, "+", 2}, "*", 3}, "[1 2 +] 3 *", "[1 + 2] * 3"},
		{"nested-typed", []interface{}{2, "*", []string{"1", "+", "2"}}, "2 [1 2 +] *", "2 * [1 + 2]"},
		{"operand-text", []interface{}{"abc", "+", 1}, "abc 1 +", "abc + 1"},
		{"multichar", []interface{}{"12.5", "/", "0.5"}, "12.5 0.5 /", "12.5 / 0.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := ParseList(c.toks)
			require.NoError(t, err, "parsing %v", c.toks)
			assert.Equal(t, c.rpn, e.String(), "parsing %v", c.toks)
			assert.Equal(t, c.src, e.Source(), "parsing %v", c.toks)
		})
	}
}

func TestParseListBrackets(t *testing.T) {
	_, err := ParseList([]interface{}{"(", 1, "+", 2})
	var b *BracketError
	require.ErrorAs(t, err, &b)
	assert.Equal(t, 1, b.Col)

	// Errors in nested lists carry the nested list's text.
	_, err = ParseList([]interface{}{1, "+", []interface{}{2, ")"}})
	var ee *EvalError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "2 )", ee.Expr)
	require.ErrorAs(t, err, &b)
	assert.Equal(t, 2, b.Col)
}

func TestOpTable(t *testing.T) {
	cases := []struct {
		sym  string
		op   Op
		prec int8
	}{
		{"+", OpAdd, 1},
		{"-", OpSub, 1},
		{"*", OpMul, 2},
		{"/", OpDiv, 2},
		{"^", OpNone, 0},
		{"", OpNone, 0},
	}
	for _, c := range cases {
		op := LookupOp(c.sym)
		assert.Equal(t, c.op, op, "LookupOp(%q)", c.sym)
		if op != OpNone {
			assert.Equal(t, c.sym, op.String())
		}
		assert.Equal(t, c.prec, op.prec(), "%v.prec()", op)
	}
}
