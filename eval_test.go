package stepcalc_test

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/alecthomas/repr"

	"github.com/zephyrtronium/stepcalc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"spaces", " \t 42  ", 42},
		{"decimal", "1.5", 1.5},
		{"leading-dot", ".5 + .25", 0.75},
		{"trailing-dot", "3. * 2", 6},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "1 - 2 - 3", -4},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "8 / 4 / 2", 1},
		{"div-frac", "7 / 2", 3.5},
		{"prec", "2 + 3 * 4", 14},
		{"prec-div", "10 - 6 / 2", 7},
		{"paren", "(2 + 3) * 4", 20},
		{"paren-sub", "1 - (2 - 3)", 2},
		{"nested", "((2+3)*(4+5))", 45},
		{"redundant", "(((7)))", 7},
		{"mixed", "2 * (3 + 4) - 1", 13},
		{"chain", "1 + 2 * 3 - 4", 3},
		{"neg-result", "2 - 5 * 3", -13},
		{"no-spaces", "12*(3+4)/6", 14},
		// Operators apply to whatever operands are stacked, wherever
		// they appear.
		{"postfix", "1 2 +", 3},
		{"prefix", "* 1 2", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var e stepcalc.Evaluator
			r, err := e.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("wrong result: want %g, got %g", c.r, r)
			}
		})
	}
}

func TestEvalSteps(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		steps []stepcalc.Step
	}{
		{"num", "5", nil},
		{"prec", "2 + 3 * 4", []stepcalc.Step{
			{Left: 3, Op: '*', Right: 4, Result: 12},
			{Left: 2, Op: '+', Right: 12, Result: 14},
		}},
		{"left-assoc", "1 - 2 - 3", []stepcalc.Step{
			{Left: 1, Op: '-', Right: 2, Result: -1},
			{Left: -1, Op: '-', Right: 3, Result: -4},
		}},
		{"paren", "(2 + 3) * 4", []stepcalc.Step{
			{Left: 2, Op: '+', Right: 3, Result: 5},
			{Left: 5, Op: '*', Right: 4, Result: 20},
		}},
		{"mul-first", "2 * 3 + 4", []stepcalc.Step{
			{Left: 2, Op: '*', Right: 3, Result: 6},
			{Left: 6, Op: '+', Right: 4, Result: 10},
		}},
		{"chain", "1 + 2 * 3 - 4", []stepcalc.Step{
			{Left: 2, Op: '*', Right: 3, Result: 6},
			{Left: 1, Op: '+', Right: 6, Result: 7},
			{Left: 7, Op: '-', Right: 4, Result: 3},
		}},
		{"div-chain", "8 / 4 / 2", []stepcalc.Step{
			{Left: 8, Op: '/', Right: 4, Result: 2},
			{Left: 2, Op: '/', Right: 2, Result: 1},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, steps, err := stepcalc.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if len(steps) == 0 && len(c.steps) == 0 {
				return
			}
			if !reflect.DeepEqual(steps, c.steps) {
				t.Errorf("wrong steps for %q:\nwant %s\ngot  %s", c.src, repr.String(c.steps), repr.String(steps))
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind stepcalc.ErrorKind
		col  int
	}{
		{"div-zero", "5 / 0", stepcalc.DivisionByZero, 3},
		{"div-zero-expr", "1 / (2 - 2)", stepcalc.DivisionByZero, 3},
		{"div-zero-frac", "1 + 2 / 0.0", stepcalc.DivisionByZero, 7},
		{"unclosed", "(1 + 2", stepcalc.UnbalancedParens, 1},
		{"unclosed-inner", "(1 + (2 * 3)", stepcalc.UnbalancedParens, 1},
		{"unopened", "1 + 2)", stepcalc.UnbalancedParens, 6},
		{"close-only", ")", stepcalc.UnbalancedParens, 1},
		{"char", "1 + a", stepcalc.InvalidCharacter, 5},
		{"caret", "2 ^ 3", stepcalc.InvalidCharacter, 3},
		{"dots", "1.2.3", stepcalc.InvalidNumber, 1},
		{"dot", "1 + .", stepcalc.InvalidNumber, 5},
		{"huge", "1" + strings.Repeat("9", 400), stepcalc.InvalidNumber, 1},
		{"empty", "", stepcalc.MalformedExpression, 1},
		{"blank", "   ", stepcalc.MalformedExpression, 4},
		{"trailing-op", "1 +", stepcalc.MalformedExpression, 3},
		{"leading-op", "+ 1", stepcalc.MalformedExpression, 1},
		{"unary-minus", "-1", stepcalc.MalformedExpression, 1},
		{"double-op", "1 * * 2", stepcalc.MalformedExpression, 3},
		{"two-nums", "1 2", stepcalc.MalformedExpression, 4},
		{"empty-parens", "()", stepcalc.MalformedExpression, 3},
		{"implicit-mul", "2 (3)", stepcalc.MalformedExpression, 6},
		{"op-before-close", "(1 +)", stepcalc.MalformedExpression, 4},
		{"open-only", "(", stepcalc.UnbalancedParens, 1},
		// The first problem the scan reaches decides the kind.
		{"char-after-nums", "1 2 a", stepcalc.InvalidCharacter, 5},
		{"div-zero-after-nums", "2 3 / 0", stepcalc.DivisionByZero, 5},
		{"op-then-close", "1 +)", stepcalc.MalformedExpression, 3},
		{"nums-then-close", "1 2)", stepcalc.UnbalancedParens, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, steps, err := stepcalc.EvalString(c.src)
			if err == nil {
				t.Fatalf("%q evaluated to %g with no error", c.src, r)
			}
			if r != 0 || steps != nil {
				t.Errorf("partial result from failed evaluation: %g, %v", r, steps)
			}
			if !errors.Is(err, c.kind) {
				t.Errorf("wrong error kind: want %v, got %v (%v)", c.kind, stepcalc.KindOf(err), err)
			}
			var ie stepcalc.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("error %#v is not an InputError", err)
			}
			if ie.Pos() != c.col {
				t.Errorf("wrong position: want %d, got %d (%v)", c.col, ie.Pos(), err)
			}
		})
	}
}

func TestEvalErrorSteps(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		kind  stepcalc.ErrorKind
		steps []stepcalc.Step
	}{
		{"unopened", "1 + 2)", stepcalc.UnbalancedParens, []stepcalc.Step{
			{Left: 1, Op: '+', Right: 2, Result: 3},
		}},
		{"unclosed", "(1 + 2", stepcalc.UnbalancedParens, []stepcalc.Step{
			{Left: 1, Op: '+', Right: 2, Result: 3},
		}},
		{"div-zero", "2 * 3 / (4 - 4)", stepcalc.DivisionByZero, []stepcalc.Step{
			{Left: 2, Op: '*', Right: 3, Result: 6},
			{Left: 4, Op: '-', Right: 4, Result: 0},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var e stepcalc.Evaluator
			_, err := e.EvalString(c.src)
			if !errors.Is(err, c.kind) {
				t.Fatalf("wrong error: want %v, got %v", c.kind, err)
			}
			if steps := e.Steps(); !reflect.DeepEqual(steps, c.steps) {
				t.Errorf("wrong steps for %q:\nwant %s\ngot  %s", c.src, repr.String(c.steps), repr.String(steps))
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		src string
		re  string
	}{
		{"5 / 0", `^3: division by zero: 5 / 0$`},
		{"1 + a", `^5: invalid character "a"$`},
		{"1.2.3", `^1: invalid number "1\.2\."$`},
		{"(1 + 2", `^1: open bracket \( with no close bracket$`},
		{"1 + 2)", `^6: close bracket \) with no open bracket$`},
		{"1 +", `^3: malformed expression: missing operand for '\+'$`},
		{"1 2", `^4: malformed expression: 2 values left at end$`},
		{"", `^1: malformed expression: no expression$`},
	}
	for _, c := range cases {
		_, _, err := stepcalc.EvalString(c.src)
		if err == nil {
			t.Errorf("%q: no error", c.src)
			continue
		}
		if !regexp.MustCompile(c.re).MatchString(err.Error()) {
			t.Errorf("%q: message %q doesn't match %s", c.src, err.Error(), c.re)
		}
	}
}

func TestErrorKind(t *testing.T) {
	kinds := []stepcalc.ErrorKind{
		stepcalc.InvalidNumber,
		stepcalc.InvalidCharacter,
		stepcalc.UnbalancedParens,
		stepcalc.MalformedExpression,
		stepcalc.DivisionByZero,
	}
	for _, k := range kinds {
		if k.Error() == "" || strings.HasPrefix(k.Error(), "unknown") {
			t.Errorf("%v has no message", k)
		}
		if k.String() == "" || strings.HasPrefix(k.String(), "ErrorKind(") {
			t.Errorf("%d has no name", int(k))
		}
		for _, j := range kinds {
			if j != k && errors.Is(k, j) {
				t.Errorf("%v is %v", k, j)
			}
		}
	}
	if got := stepcalc.KindOf(nil); got != 0 {
		t.Errorf("KindOf(nil) = %v", got)
	}
	if got := stepcalc.KindOf(errors.New("other")); got != 0 {
		t.Errorf("KindOf(other) = %v", got)
	}
}

func TestStepString(t *testing.T) {
	cases := []struct {
		step stepcalc.Step
		want string
		verb string
		alt  string
	}{
		{stepcalc.Step{Left: 3, Op: '*', Right: 4, Result: 12}, "3 * 4 = 12", "%g", "3 * 4 = 12"},
		{stepcalc.Step{Left: 1, Op: '/', Right: 3, Result: 1.0 / 3}, "1 / 3 = 0.3333333333333333", "%.2f", "1.00 / 3.00 = 0.33"},
		{stepcalc.Step{Left: -1.5, Op: '-', Right: 0.25, Result: -1.75}, "-1.5 - 0.25 = -1.75", "%v", "-1.5 - 0.25 = -1.75"},
		{stepcalc.Step{Left: 1e300, Op: '*', Right: 1e300, Result: math.Inf(1)}, "1e+300 * 1e+300 = +Inf", "%g", "1e+300 * 1e+300 = +Inf"},
	}
	for _, c := range cases {
		if got := c.step.String(); got != c.want {
			t.Errorf("String: want %q, got %q", c.want, got)
		}
		if got := c.step.Render(c.verb); got != c.alt {
			t.Errorf("Render(%q): want %q, got %q", c.verb, c.alt, got)
		}
	}
}
