package stepcalc

import (
	"strconv"
	"unicode"
)

// EvalOption is an option for evaluation.
type EvalOption interface {
	evalOption(evalctx) evalctx
}

type eofopt struct {
	ws string
}

// evalctx holds the options for one evaluation.
type evalctx struct {
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
}

// StopOn tells the evaluator to treat a list of whitespace characters as
// ending the expression. The rest of the input is left unread, so e.g.
// StopOn('\n') evaluates one line of a larger stream. Panics if any rune is
// not whitespace.
//
// StopOn overrides the effect of any previous StopOn in the options. With no
// arguments, StopOn produces the default termination behavior, which is to
// evaluate to EOF.
func StopOn(chars ...rune) EvalOption {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("stepcalc: cannot stop on " + strconv.QuoteRune(r))
		}
		if have(r) {
			continue
		}
		v = append(v, r)
	}
	return &eofopt{ws: string(v)}
}

func (o *eofopt) evalOption(p evalctx) evalctx {
	p.wseof = o.ws
	return p
}
