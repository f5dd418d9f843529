package decexpr

import "strconv"

// Op is one of the four arithmetic operators.
type Op int8

const (
	// OpNone is the zero Op. It is not an operator.
	OpNone Op = iota

	OpAdd // a + b
	OpSub // a - b
	OpMul // a * b
	OpDiv // a / b
)

// Operators contains the symbols of the supported operators.
const Operators = "+-*/"

type opinfo struct {
	sym string
	// prec is the binding precedence. Higher is more binding.
	prec int8
	fn   func(x, y string) float64
}

var optab = [...]opinfo{
	OpNone: {sym: "", prec: 0},
	OpAdd:  {sym: "+", prec: 1, fn: add},
	OpSub:  {sym: "-", prec: 1, fn: sub},
	OpMul:  {sym: "*", prec: 2, fn: mul},
	OpDiv:  {sym: "/", prec: 2, fn: div},
}

// LookupOp gets the operator for a symbol. If sym is not an operator, the
// result is OpNone.
func LookupOp(sym string) Op {
	switch sym {
	case "+":
		return OpAdd
	case "-":
		return OpSub
	case "*":
		return OpMul
	case "/":
		return OpDiv
	default:
		return OpNone
	}
}

// String returns the operator's symbol.
func (op Op) String() string {
	if op < 0 || int(op) >= len(optab) {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return optab[op].sym
}

// prec is the operator's precedence. Operators that bind more tightly have
// higher precedence. OpNone has the lowest.
func (op Op) prec() int8 {
	return optab[op].prec
}

// Apply computes x op y with the decimal arithmetic of Add, Sub, Mul, and
// Div. Applying OpNone panics.
func (op Op) Apply(x, y interface{}) float64 {
	if op <= OpNone || int(op) >= len(optab) {
		panic("decexpr: Apply on invalid operator " + op.String())
	}
	return optab[op].fn(numtext(x), numtext(y))
}
