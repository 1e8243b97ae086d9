// Package bnb is a parser combinator library. Grammars are built by composing
// Parser values directly in Go, with no separate grammar compilation step.
//
// A Parser is applied to an in-memory string. Every result tracks the
// furthest location at which any alternative failed, together with what was
// expected there, so that errors point at the deepest point the parse
// reached even after backtracking through many failed alternatives.
//
// Here's a parser for a comma separated list of integers in brackets:
//
//	var (
//		number = bnb.Map(bnb.Match(`[0-9]+`), func(s string) int {
//			n, _ := strconv.Atoi(s)
//			return n
//		})
//		list = bnb.Wrap(bnb.Text("["), bnb.SepBy(number, bnb.Text(","), 0, bnb.Unbounded), bnb.Text("]"))
//	)
//
//	values, err := list.TryParse("[1,2,3]")
//
// Rejected input is reported at the furthest point reached. For "[1,x]" the
// error reads:
//
//	parse error at line 1 column 4: expected /[0-9]+/
//
// Grammar mistakes such as an invalid repetition range, an unsupported regexp
// flag, or repeating a parser that matches the empty string are reported by
// panicking with a *GrammarError.
package bnb
