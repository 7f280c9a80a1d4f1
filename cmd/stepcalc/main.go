package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/davecgh/go-spew/spew"

	"github.com/zephyrtronium/stepcalc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run runs the calculator and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	lg := log.New(stderr, "", 0)
	fs := flag.NewFlagSet("stepcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		verb, mode string
		nl, dump   bool
	)
	fs.StringVar(&verb, "fmt", "%g", "number formatting string")
	fs.StringVar(&mode, "mode", "u", "display mode for -n or arguments: u for results, r for steps and results")
	fs.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	fs.BoolVar(&dump, "dump", false, "dump each step log to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	c := calc{out: stdout, dump: stderr, verb: verb}
	if !dump {
		c.dump = nil
	}
	in := bufio.NewReader(stdin)
	if fs.NArg() == 0 && !nl {
		return c.interactive(in, lg)
	}

	m, err := parseMode(mode)
	if err != nil {
		lg.Print(err)
		return 1
	}
	if fs.NArg() > 0 {
		if !c.show(strings.NewReader(strings.Join(fs.Args(), " ")), m) {
			return 1
		}
		return 0
	}
	status := 0
	for {
		// First check whether we're done with the input.
		r, _, err := in.ReadRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			lg.Print(err)
			return 1
		}
		if r == '\n' {
			continue
		}
		in.UnreadRune()
		if !c.show(in, m, stepcalc.StopOn('\n')) {
			status = 1
		}
	}
	return status
}

// dumper prints steps field by field rather than with Step.String.
var dumper = spew.ConfigState{Indent: "\t", DisableMethods: true, DisablePointerAddresses: true}

// calc evaluates expressions and prints their results.
type calc struct {
	e    stepcalc.Evaluator
	out  io.Writer
	dump io.Writer
	verb string
}

// show evaluates one expression and prints the steps if mode is 'r', then the
// result. Returns false if the expression is invalid.
func (c *calc) show(src io.RuneScanner, mode rune, opts ...stepcalc.EvalOption) bool {
	c.e.ResetSteps()
	r, err := c.e.Eval(src, opts...)
	if err != nil {
		fmt.Fprintln(c.out, "error:", err)
		return false
	}
	steps := c.e.Steps()
	if mode == 'r' {
		fmt.Fprintln(c.out, "Steps:")
		for _, s := range steps {
			fmt.Fprintln(c.out, s.Render(c.verb))
		}
	}
	if c.dump != nil {
		dumper.Fdump(c.dump, steps)
	}
	fmt.Fprintf(c.out, c.verb+"\n", r)
	return true
}

// interactive prompts for one expression line and then a display mode.
func (c *calc) interactive(in *bufio.Reader, lg *log.Logger) int {
	fmt.Fprint(c.out, "expression: ")
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		lg.Print(err)
		return 1
	}
	fmt.Fprint(c.out, "mode (u = result, r = steps and result): ")
	m, err := readMode(in)
	if err != nil {
		fmt.Fprintln(c.out)
		lg.Print(err)
		return 1
	}
	if !c.show(strings.NewReader(line), m) {
		return 1
	}
	return 0
}

// readMode reads the first non-space rune of the input as a display mode.
func readMode(in io.RuneReader) (rune, error) {
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if err == io.EOF {
				return 0, errors.New("no mode given")
			}
			return 0, err
		}
		if unicode.IsSpace(r) {
			continue
		}
		return parseMode(string(r))
	}
}

func parseMode(s string) (rune, error) {
	switch s {
	case "u":
		return 'u', nil
	case "r":
		return 'r', nil
	default:
		return 0, fmt.Errorf("unknown mode %s (want u or r)", strconv.Quote(s))
	}
}
