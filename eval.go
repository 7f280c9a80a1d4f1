package stepcalc

import (
	"io"
	"strconv"
	"strings"
)

// Evaluator evaluates expressions and logs each operation it performs. The
// zero value is ready to use. It is not safe to use an Evaluator concurrently;
// use one Evaluator per goroutine instead.
type Evaluator struct {
	vals  []float64
	ops   []operator
	steps []Step
}

// Eval evaluates an expression and returns the result. Each operation
// performed is appended to the step log. The log is not cleared first; call
// ResetSteps between evaluations to see only the steps of the latest.
//
// If the expression is invalid, the result is 0 and the error implements
// InputError. The step log may then contain the operations performed before
// the error was found. With StopOn, the rest of the invalid expression up to
// the stop character is discarded.
func (e *Evaluator) Eval(src io.RuneScanner, opts ...EvalOption) (float64, error) {
	var p evalctx
	for _, opt := range opts {
		p = opt.evalOption(p)
	}
	e.vals = e.vals[:0]
	e.ops = e.ops[:0]
	scan := lex(src)
	r, err := e.scan(scan, &p)
	if err != nil {
		if p.wseof != "" {
			// Leave src at the start of the next expression. An error
			// reading is less interesting than the one we already have.
			_ = scan.skip(p.wseof)
		}
		return 0, err
	}
	return r, nil
}

// EvalString is a shortcut to evaluate a string expression.
func (e *Evaluator) EvalString(src string, opts ...EvalOption) (float64, error) {
	return e.Eval(strings.NewReader(src), opts...)
}

// Steps returns a copy of the step log in the order the steps were performed.
func (e *Evaluator) Steps() []Step {
	return append(([]Step)(nil), e.steps...)
}

// ResetSteps clears the step log.
func (e *Evaluator) ResetSteps() {
	e.steps = e.steps[:0]
}

// Reset clears the step log along with any state left over from an
// evaluation that failed.
func (e *Evaluator) Reset() {
	e.vals = e.vals[:0]
	e.ops = e.ops[:0]
	e.steps = e.steps[:0]
}

// pop removes the top of the value stack and returns it.
func (e *Evaluator) pop() float64 {
	r := e.vals[len(e.vals)-1]
	e.vals = e.vals[:len(e.vals)-1]
	return r
}

// reduce applies the operator on top of the operator stack to the top two
// values, replaces them with the result, and logs the step.
func (e *Evaluator) reduce() error {
	if len(e.vals) < 2 || len(e.ops) == 0 {
		if len(e.ops) == 0 {
			return &ExprError{Reason: "not enough operands"}
		}
		op := e.ops[len(e.ops)-1]
		return &ExprError{Col: op.col, Reason: "missing operand for " + strconv.QuoteRune(op.sym)}
	}
	op := e.ops[len(e.ops)-1]
	e.ops = e.ops[:len(e.ops)-1]
	r := e.pop()
	l := e.vals[len(e.vals)-1]
	x, err := op.apply(l, r)
	if err != nil {
		return err
	}
	e.vals[len(e.vals)-1] = x
	e.steps = append(e.steps, Step{Left: l, Op: op.sym, Right: r, Result: x})
	return nil
}

// apply computes l op r.
func (op operator) apply(l, r float64) (float64, error) {
	switch op.sym {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		// Either sign of zero.
		if r == 0 {
			return 0, &DivisionError{Col: op.col, X: l}
		}
		return l / r, nil
	default:
		panic("stepcalc: cannot apply " + strconv.QuoteRune(op.sym))
	}
}

// Eval is a shortcut to evaluate an expression with a new Evaluator and
// return its result and steps. If an error occurs, the steps are nil.
func Eval(src io.RuneScanner, opts ...EvalOption) (float64, []Step, error) {
	var e Evaluator
	r, err := e.Eval(src, opts...)
	if err != nil {
		return 0, nil, err
	}
	return r, e.steps, nil
}

// EvalString is a shortcut to evaluate a string expression with a new
// Evaluator.
func EvalString(src string, opts ...EvalOption) (float64, []Step, error) {
	return Eval(strings.NewReader(src), opts...)
}
