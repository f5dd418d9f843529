// Package decexpr implements a calculator for decimal arithmetic that avoids
// the drift of binary floating-point: 0.1+0.2 is exactly 0.3.
//
// Each operation scales its operands to integers by counting the digits after
// the decimal point in their text, computes with those integers, and scales
// back. Values are float64 at the boundaries, so precision is bounded by the
// number of decimal places in the operands, not unlimited.
//
// Expressions come in two forms. Infix expressions like "(1+2)*3" are
// parsed into postfix order and evaluated with a stack; they may also be given
// as lists of tokens, like []interface{}{"(", 1, "+", 2, ")", "*", 3}.
// Functional-form lists like []interface{}{"+", 1, 2, 3} name an operator
// once and fold it across the operands left to right.
package decexpr
