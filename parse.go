package decexpr

import (
	"strings"
)

// Expr = num | Expr op Expr | '(' Expr ')'
// op = '+' | '-' | '*' | '/'
// num = digit { digit } [ '.' digit { digit } ]
//
// '*' and '/' bind more tightly than '+' and '-'. All four are
// left-associative. There are no unary operators.

// Expr is a parsed infix expression that can be evaluated with a Calculator.
// It holds the expression's tokens in postfix order.
type Expr struct {
	// rpn is the postfix token queue. It contains no parentheses.
	rpn []lexToken
	// src is the text of the expression.
	src string
}

// Parse parses an infix expression. Numbers are unsigned decimal literals
// like 12 or 0.5; runes that are not part of a number, an operator, or a
// parenthesis are ignored. Since a minus sign is always a binary operator,
// negative literals cannot be written.
func Parse(src string) (*Expr, error) {
	scan := lex(strings.NewReader(src))
	var toks []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			break
		}
		toks = append(toks, tok)
	}
	rpn, err := postfix(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn, src: src}, nil
}

// ParseList parses an infix expression that is already split into tokens.
// Elements that are the strings "+", "-", "*", "/", "(", or ")", or an Op,
// are operators and parentheses; every other element is an operand. An
// element that is itself a list is parsed with ParseList on its own and
// becomes a single operand whose value is the result of that expression.
func ParseList(toks []interface{}) (*Expr, error) {
	lt := make([]lexToken, 0, len(toks))
	for i, v := range toks {
		if l, ok := asList(v); ok {
			sub, err := ParseList(l)
			if err != nil {
				return nil, &EvalError{Expr: renderList(l), Err: err}
			}
			lt = append(lt, lexToken{text: sub.src, kind: tokenSub, pos: i + 1, sub: sub})
			continue
		}
		text := numtext(v)
		lt = append(lt, lexToken{text: text, kind: classify(text), pos: i + 1})
	}
	rpn, err := postfix(lt)
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn, src: renderList(toks)}, nil
}

// postfix reorders infix tokens into postfix order using an operator stack.
func postfix(toks []lexToken) ([]lexToken, error) {
	out := make([]lexToken, 0, len(toks))
	var ops []lexToken
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum, tokenSub:
			out = append(out, tok)
		case tokenOpen:
			ops = append(ops, tok)
		case tokenClose:
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Col: tok.pos, Paren: tok.text}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		case tokenOp:
			// Pop operators that bind at least as tightly. Equal precedence
			// pops, which makes the operators left-associative.
			prec := LookupOp(tok.text).prec()
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != tokenOp || LookupOp(top.text).prec() < prec {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			panic("decexpr: unexpected token: " + tok.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokenOpen {
			return nil, &BracketError{Col: top.pos, Paren: top.text}
		}
		out = append(out, top)
	}
	return out, nil
}

// Len returns the number of tokens in the postfix form of the expression.
func (e *Expr) Len() int {
	return len(e.rpn)
}

// Source returns the text the expression was parsed from. For token lists,
// it is the elements separated by spaces, with nested lists in brackets.
func (e *Expr) Source() string {
	return e.src
}

// String renders the expression in postfix order. Nested subexpressions are
// rendered in brackets.
func (e *Expr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *Expr) fmt(b *strings.Builder) {
	for i, tok := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		if tok.kind == tokenSub {
			b.WriteByte('[')
			tok.sub.fmt(b)
			b.WriteByte(']')
			continue
		}
		b.WriteString(tok.text)
	}
}
