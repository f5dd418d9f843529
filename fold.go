package decexpr

import "math"

// Fold is a shortcut to evaluate a functional-form expression with a default
// Calculator.
func Fold(list interface{}) (float64, error) {
	return defaultCalc.Fold(list)
}

// Fold evaluates a functional-form expression: a list whose first element is
// an operator and whose remaining elements, at least two, are operands. Every
// element that is itself a list is folded first. Then the operator is applied
// left to right across the operands, so
//
//	[+, 1, 2, 3, 4, [*, 2, 3]]
//
// is ((((1+2)+3)+4)+6), or 16. The operator may be an Op or its symbol.
//
// A list that is too short gives a *MalformedError. An operator that is not
// one of the four supported gives an *OperatorError.
func (c *Calculator) Fold(list interface{}) (float64, error) {
	r, err := c.fold(list)
	if err != nil {
		return math.NaN(), err
	}
	return atof(r), nil
}

func (c *Calculator) fold(list interface{}) (string, error) {
	l, ok := asList(list)
	if !ok {
		return "", &MalformedError{Expr: render(list)}
	}
	if len(l) < 3 {
		return "", &MalformedError{Expr: render(l), Len: len(l)}
	}
	vals := make([]string, len(l))
	for i, v := range l {
		sub, ok := asList(v)
		if !ok {
			vals[i] = numtext(v)
			continue
		}
		r, err := c.fold(sub)
		if err != nil {
			return "", err
		}
		vals[i] = c.normal(r)
	}
	op := OpNone
	if _, ok := asList(l[0]); !ok {
		op = opOf(l[0])
	}
	if op == OpNone {
		return "", &OperatorError{Index: 1, Operator: vals[0]}
	}
	acc := vals[1]
	for _, v := range vals[2:] {
		var err error
		acc, err = c.apply(op, acc, v)
		if err != nil {
			return "", err
		}
	}
	return c.result(acc)
}

// opOf gets the operator named by an element in operator position.
func opOf(v interface{}) Op {
	switch v := v.(type) {
	case Op:
		if v <= OpNone || int(v) >= len(optab) {
			return OpNone
		}
		return v
	case string:
		return LookupOp(v)
	default:
		return OpNone
	}
}
