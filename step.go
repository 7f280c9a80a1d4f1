package stepcalc

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is one application of a binary operator during evaluation.
type Step struct {
	Left   float64
	Op     rune
	Right  float64
	Result float64
}

// String formats the step as "left op right = result", using the shortest
// representation of each number that reads back exactly.
func (s Step) String() string {
	var b strings.Builder
	b.WriteString(formatFloat(s.Left))
	b.WriteByte(' ')
	b.WriteRune(s.Op)
	b.WriteByte(' ')
	b.WriteString(formatFloat(s.Right))
	b.WriteString(" = ")
	b.WriteString(formatFloat(s.Result))
	return b.String()
}

// Render formats the step like String, but formats each number with the fmt
// verb, e.g. "%g" or "%.3f".
func (s Step) Render(verb string) string {
	return fmt.Sprintf(verb+" %c "+verb+" = "+verb, s.Left, s.Op, s.Right, s.Result)
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
