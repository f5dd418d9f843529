package decexpr

import (
	"github.com/govalues/decimal"
	"github.com/pkg/errors"
)

// exact computes x op y with decimal coefficients. x and y must be number
// text.
func exact(op Op, x, y string) (string, error) {
	d, err := decimal.Parse(x)
	if err != nil {
		return "", &NumberError{Text: x}
	}
	e, err := decimal.Parse(y)
	if err != nil {
		return "", &NumberError{Text: y}
	}
	var r decimal.Decimal
	switch op {
	case OpAdd:
		r, err = d.Add(e)
	case OpSub:
		r, err = d.Sub(e)
	case OpMul:
		r, err = d.Mul(e)
	case OpDiv:
		if e.IsZero() {
			return "", &DomainError{X: x, Y: y, Op: op}
		}
		r, err = d.Quo(e)
	default:
		panic("decexpr: exact on invalid operator " + op.String())
	}
	if err != nil {
		return "", errors.Wrapf(err, "computing %s", binexpr(x, op, y))
	}
	return r.String(), nil
}
