package stepcalc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies the ways evaluating an expression can fail. Each kind
// is itself an error, so errors.Is(err, DivisionByZero) reports whether err
// is a division by zero.
type ErrorKind int8

const (
	// InvalidNumber is a token that starts like a number but is not one.
	InvalidNumber ErrorKind = iota + 1
	// InvalidCharacter is a rune that cannot start any token.
	InvalidCharacter
	// UnbalancedParens is a bracket with no partner.
	UnbalancedParens
	// MalformedExpression is an operator or operand where it cannot be
	// applied, or an input that does not reduce to exactly one value.
	MalformedExpression
	// DivisionByZero is a division whose right operand is exactly zero.
	DivisionByZero
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=ErrorKind
//go:generate go mod tidy

func (k ErrorKind) Error() string {
	switch k {
	case InvalidNumber:
		return "invalid number"
	case InvalidCharacter:
		return "invalid character"
	case UnbalancedParens:
		return "unbalanced parentheses"
	case MalformedExpression:
		return "malformed expression"
	case DivisionByZero:
		return "division by zero"
	default:
		return "unknown error kind " + strconv.Itoa(int(k))
	}
}

// KindOf returns the kind of an error returned from this package. If err is
// nil or did not come from an evaluation, the result is 0.
func KindOf(err error) ErrorKind {
	for k := InvalidNumber; k <= DivisionByZero; k++ {
		if errors.Is(err, k) {
			return k
		}
	}
	return 0
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, including the invalid rune.
	Text string
	// Kind is InvalidNumber or InvalidCharacter.
	Kind ErrorKind
	// Col is the position of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, err.Kind.Error()+" "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Is(target error) bool {
	return target == err.Kind
}

// BracketError is an error indicating an unmatched bracket. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket, or empty if a close bracket has no opening
	// bracket.
	Left string
	// Right is the closing bracket, or empty if an open bracket is never
	// closed.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Is(target error) bool {
	return target == UnbalancedParens
}

// ExprError is an error indicating tokens that do not form an expression. It
// implements InputError.
type ExprError struct {
	// Col is the position of the token where the problem was found.
	Col int
	// Reason describes the problem.
	Reason string
}

func (err *ExprError) Error() string {
	return errpos(err.Col, "malformed expression: "+err.Reason)
}

func (err *ExprError) Pos() int {
	return err.Col
}

func (err *ExprError) Is(target error) bool {
	return target == MalformedExpression
}

// DivisionError is an error indicating a division by zero. It implements
// InputError.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X float64
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division by zero: "+formatFloat(err.X)+" / 0")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

func (err *DivisionError) Is(target error) bool {
	return target == DivisionByZero
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of
	// the token that caused it.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*ExprError)(nil)
	_ InputError = (*DivisionError)(nil)
)
