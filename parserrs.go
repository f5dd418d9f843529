package decexpr

import (
	"strconv"
)

// MalformedError is an error indicating a functional-form list that is too
// short to hold an operator and two operands.
type MalformedError struct {
	// Expr is the text of the list.
	Expr string
	// Len is the length of the list.
	Len int
}

func (err *MalformedError) Error() string {
	return err.Expr + " is not valid: need an operator and at least two operands, have " + strconv.Itoa(err.Len) + " elements"
}

// OperatorError is an error indicating a symbol in operator position that is
// not one of the supported operators. It implements InputError.
type OperatorError struct {
	// Index is the 1-based index of the symbol in its list.
	Index int
	// Operator is the text of the symbol.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Index, strconv.Quote(err.Operator)+" is not an operator")
}

func (err *OperatorError) Pos() int {
	return err.Index
}

// BracketError is an error indicating an unmatched parenthesis. It implements
// InputError.
type BracketError struct {
	// Col is the position of the parenthesis: a column for parsed text or an
	// index for token lists.
	Col int
	// Paren is the unmatched parenthesis.
	Paren string
}

func (err *BracketError) Error() string {
	if err.Paren == "(" {
		return errpos(err.Col, "unmatched (: open parenthesis with no close parenthesis")
	}
	return errpos(err.Col, "unmatched ): close parenthesis with no open parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// StackError is an error indicating an operator applied when fewer than two
// operands are available. It implements InputError.
type StackError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator's text.
	Operator string
	// Len is the number of operands that were available.
	Len int
}

func (err *StackError) Error() string {
	return errpos(err.Col, "invalid stack length: "+strconv.Quote(err.Operator)+" needs 2 operands, have "+strconv.Itoa(err.Len))
}

func (err *StackError) Pos() int {
	return err.Col
}

// ExpressionError is an error indicating that evaluation did not reduce an
// expression to exactly one value.
type ExpressionError struct {
	// Len is the number of values left after evaluation.
	Len int
}

func (err *ExpressionError) Error() string {
	return "invalid expression: " + strconv.Itoa(err.Len) + " values remain"
}

// NumberError is an error indicating an operand that is not a decimal number.
// Only strict and exact calculators return it.
type NumberError struct {
	// Text is the operand's text.
	Text string
}

func (err *NumberError) Error() string {
	return "invalid number " + strconv.Quote(err.Text)
}

// DomainError is an error indicating an operation outside its domain, i.e.
// division by zero. Only strict and exact calculators return it.
type DomainError struct {
	// X and Y are the operands.
	X, Y string
	// Op is the operator.
	Op Op
}

func (err *DomainError) Error() string {
	return binexpr(err.X, err.Op, err.Y) + " outside domain of " + err.Op.String()
}

// EvalError is an error from evaluating an infix expression. It attaches the
// text of the expression to the error that stopped evaluation.
type EvalError struct {
	// Expr is the text of the expression.
	Expr string
	// Err is the underlying error.
	Err error
}

func (err *EvalError) Error() string {
	return err.Err.Error() + " by exp:{" + err.Expr + "}"
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

// Cause returns the underlying error for github.com/pkg/errors.Cause.
func (err *EvalError) Cause() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// binexpr renders a binary operation for messages.
func binexpr(x string, op Op, y string) string {
	return x + " " + op.String() + " " + y
}

// InputError is an error with position information. Errors from the parser
// and evaluator that can be traced to one token implement InputError.
type InputError interface {
	error
	// Pos returns the position of the token that caused the error. For text,
	// it is the number of runes up to and including the start of the token.
	// For lists, it is the 1-based index of the element.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*StackError)(nil)
)
