// Package stepcalc implements a four-function calculator that shows its work.
//
// An expression is a single line of decimal numbers, the operators + - * /,
// and round brackets. "2 + 3 * 4" is 14, because multiplication and division
// bind more tightly than addition and subtraction, and "1 - 2 - 3" is -4,
// because operators of equal precedence group from the left.
//
// An Evaluator scans the expression once from left to right, keeping operands
// and pending operators on two stacks. Each time it applies an operator to two
// operands, it records a Step, so the order in which the expression was
// actually computed can be displayed afterward.
//
package stepcalc
