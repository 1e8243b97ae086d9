package bnb

import (
	"fmt"
	"strings"
)

// Error is returned by TryParse and Result.Err when the input is rejected.
type Error struct {
	Location SourceLocation
	// Expected is sorted and de-duplicated.
	Expected []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at line %d column %d: %s", e.Location.Line, e.Location.Column, e.Message())
}

// Message returns the error without positional information.
func (e *Error) Message() string {
	return "expected " + strings.Join(e.Expected, ", ")
}

// Position returns the location of the furthest failure.
func (e *Error) Position() SourceLocation { return e.Location }

// GrammarError is the panic value used when a grammar is ill-formed: an
// invalid repetition range, a disallowed regexp flag, or a repetition of a
// parser that succeeded without consuming input.
//
// These are programming errors, not input errors, and are never converted
// into a failed Result.
type GrammarError struct {
	Op      string
	Message string
}

func (g *GrammarError) Error() string {
	return g.Op + ": " + g.Message
}

func grammarPanicf(op, format string, args ...any) {
	panic(&GrammarError{Op: op, Message: fmt.Sprintf(format, args...)})
}
