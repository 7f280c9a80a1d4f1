package stepcalc

import "strconv"

// Expr = num | Add | Sub | Mul | Div | '(' Expr ')'
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr

type operator struct {
	// sym is the operator rune, or '(' for an open bracket.
	sym rune
	// prec is the precedence value. Higher is more binding. Brackets have
	// precedence 0 so that no operator is ever applied across one.
	prec int8
	// col is the position of the operator in the input.
	col int
}

// moreBinding reports whether p must be applied before than when p follows
// than. Every operator is left-associative, so equal precedence is less
// binding.
func (p operator) moreBinding(than operator) bool {
	return p.prec > than.prec
}

// binop gets the binary operator for an operator token. Panics if the token is
// not an operator the lexer produces.
func binop(tok lexToken) operator {
	switch tok.text {
	case "+":
		return operator{'+', 1, tok.pos}
	case "-":
		return operator{'-', 1, tok.pos}
	case "*":
		return operator{'*', 2, tok.pos}
	case "/":
		return operator{'/', 2, tok.pos}
	default:
		panic("stepcalc: unknown operator token: " + tok.String())
	}
}

// scan evaluates the tokens of an expression from left to right. Each operand
// is pushed to the value stack. Each operator first applies every pending
// operator at least as binding as itself, then waits on the operator stack
// until something less binding or the end of its bracket arrives. Malformed
// input is found only when an operator lacks operands or the end of the input
// leaves other than one value.
func (e *Evaluator) scan(l *lexer, p *evalctx) (float64, error) {
	for {
		tok, err := l.next(p.wseof)
		if err != nil {
			return 0, err
		}
		switch tok.kind {
		case tokenNum:
			v, err := tok.value()
			if err != nil {
				return 0, err
			}
			e.vals = append(e.vals, v)
		case tokenOpen:
			e.ops = append(e.ops, operator{sym: '(', col: tok.pos})
		case tokenClose:
			if err := e.closeBracket(tok); err != nil {
				return 0, err
			}
		case tokenOp:
			op := binop(tok)
			for len(e.ops) > 0 && !op.moreBinding(e.ops[len(e.ops)-1]) {
				if err := e.reduce(); err != nil {
					return 0, err
				}
			}
			e.ops = append(e.ops, op)
		case tokenEOF:
			return e.finish(tok)
		default:
			panic("stepcalc: unknown token: " + tok.String())
		}
	}
}

// closeBracket applies operators back to the nearest open bracket and removes
// it.
func (e *Evaluator) closeBracket(tok lexToken) error {
	for {
		if len(e.ops) == 0 {
			return &BracketError{Col: tok.pos, Right: tok.text}
		}
		if e.ops[len(e.ops)-1].sym == '(' {
			break
		}
		if err := e.reduce(); err != nil {
			return err
		}
	}
	e.ops = e.ops[:len(e.ops)-1]
	return nil
}

// finish applies all pending operators at the end of the input and returns
// the single remaining value.
func (e *Evaluator) finish(tok lexToken) (float64, error) {
	for len(e.ops) > 0 {
		if top := e.ops[len(e.ops)-1]; top.sym == '(' {
			return 0, &BracketError{Col: top.col, Left: "("}
		}
		if err := e.reduce(); err != nil {
			return 0, err
		}
	}
	switch len(e.vals) {
	case 0:
		return 0, &ExprError{Col: tok.pos, Reason: "no expression"}
	case 1:
		return e.pop(), nil
	default:
		return 0, &ExprError{Col: tok.pos, Reason: strconv.Itoa(len(e.vals)) + " values left at end"}
	}
}
