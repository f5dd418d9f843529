package decexpr

import (
	"math"
	"regexp"
)

// Calculator evaluates expressions. The zero-option Calculator returned by
// New computes with float64 values scaled by the decimal places of their
// operands, and lets invalid operands become NaN. A Calculator is immutable,
// so it is safe to use concurrently.
type Calculator struct {
	// strict requires every operand and result to be a decimal number.
	strict bool
	// exact computes with decimal coefficients instead of float64.
	exact bool
}

// Option is an option used when creating a Calculator.
type Option interface {
	calcOption(*Calculator)
}

type (
	strictopt struct{}
	exactopt  struct{}
)

func (strictopt) calcOption(c *Calculator) {
	c.strict = true
}

func (exactopt) calcOption(c *Calculator) {
	c.strict = true
	c.exact = true
}

// Strict makes the calculator reject operands that are not decimal numbers,
// i.e. text not matching -?\d+(\.\d+)?, with a *NumberError instead of
// producing NaN. Division by zero returns a *DomainError.
func Strict() Option {
	return strictopt{}
}

// Exact makes the calculator compute with exact decimals. Addition,
// subtraction, and multiplication are exact up to 19 significant digits, and
// division is rounded to 19 significant digits. Exact implies Strict. Results
// are converted to float64 only at the end of evaluation.
func Exact() Option {
	return exactopt{}
}

// New creates a Calculator with the given options.
func New(opts ...Option) *Calculator {
	var c Calculator
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.calcOption(&c)
	}
	return &c
}

// IsStrict returns whether the calculator rejects invalid operands.
func (c *Calculator) IsStrict() bool {
	return c.strict
}

// IsExact returns whether the calculator computes with exact decimals.
func (c *Calculator) IsExact() bool {
	return c.exact
}

var defaultCalc = New()

// Evaluate is a shortcut to evaluate an infix expression with a default
// Calculator.
func Evaluate(src interface{}) (float64, error) {
	return defaultCalc.Evaluate(src)
}

// Evaluate parses and evaluates an infix expression. If src is a list, it is
// parsed with ParseList; otherwise, its text is parsed with Parse. Any error
// is returned as an *EvalError that carries the text of the expression.
func (c *Calculator) Evaluate(src interface{}) (float64, error) {
	var (
		e   *Expr
		err error
	)
	if l, ok := asList(src); ok {
		e, err = ParseList(l)
		if err != nil {
			return math.NaN(), &EvalError{Expr: renderList(l), Err: err}
		}
	} else {
		text := numtext(src)
		e, err = Parse(text)
		if err != nil {
			return math.NaN(), &EvalError{Expr: text, Err: err}
		}
	}
	return c.Eval(e)
}

// Eval evaluates a parsed expression. If evaluation fails, the result is NaN
// and the error is an *EvalError carrying the expression's text.
func (c *Calculator) Eval(e *Expr) (float64, error) {
	r, err := c.eval(e)
	if err != nil {
		return math.NaN(), &EvalError{Expr: e.src, Err: err}
	}
	return atof(r), nil
}

// eval reduces e's postfix queue to the text of a single value.
func (c *Calculator) eval(e *Expr) (string, error) {
	stack := make([]string, 0, len(e.rpn)/2+1)
	for _, tok := range e.rpn {
		switch tok.kind {
		case tokenNum:
			stack = append(stack, tok.text)
		case tokenSub:
			r, err := c.eval(tok.sub)
			if err != nil {
				return "", &EvalError{Expr: tok.sub.src, Err: err}
			}
			stack = append(stack, c.normal(r))
		case tokenOp:
			if len(stack) < 2 {
				return "", &StackError{Col: tok.pos, Operator: tok.text, Len: len(stack)}
			}
			x, y := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			r, err := c.apply(LookupOp(tok.text), x, y)
			if err != nil {
				return "", err
			}
			stack = append(stack, r)
		default:
			panic("decexpr: invalid token in postfix queue: " + tok.String())
		}
	}
	if len(stack) != 1 {
		return "", &ExpressionError{Len: len(stack)}
	}
	return c.result(stack[0])
}

// apply computes x op y and returns the text of the result.
func (c *Calculator) apply(op Op, x, y string) (string, error) {
	if !c.strict {
		return ftoa(optab[op].fn(x, y)), nil
	}
	if !isnum(x) {
		return "", &NumberError{Text: x}
	}
	if !isnum(y) {
		return "", &NumberError{Text: y}
	}
	if c.exact {
		return exact(op, x, y)
	}
	if op == OpDiv && atof(y) == 0 {
		return "", &DomainError{X: x, Y: y, Op: op}
	}
	return ftoa(optab[op].fn(x, y)), nil
}

// result checks the final value of an evaluation.
func (c *Calculator) result(r string) (string, error) {
	if c.strict && !isnum(r) {
		return "", &NumberError{Text: r}
	}
	return r, nil
}

// normal converts the result of a subexpression to the text of its value.
// Outside exact mode, a subexpression's value is a float64, so its text
// loses any trailing zeros of a single literal.
func (c *Calculator) normal(r string) string {
	if c.exact {
		return r
	}
	return ftoa(atof(r))
}

var numre = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// isnum reports whether s is decimal number text.
func isnum(s string) bool {
	return numre.MatchString(s)
}
