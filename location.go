package bnb

import "fmt"

// SourceLocation is a point in the input.
//
// Index is a byte offset suitable for slicing the input. Line and Column are
// 1-based and intended for display; Column counts runes, and only '\n' starts
// a new line.
type SourceLocation struct {
	Index  int
	Line   int
	Column int
}

// noLocation marks the absence of a furthest failure.
var noLocation = SourceLocation{Index: -1, Line: -1, Column: -1}

var startLocation = SourceLocation{Index: 0, Line: 1, Column: 1}

func (l SourceLocation) GoString() string {
	return fmt.Sprintf("SourceLocation{Index: %d, Line: %d, Column: %d}", l.Index, l.Line, l.Column)
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// advance returns the location reached by consuming input from l.Index up to
// (but not including) index.
func (l SourceLocation) advance(input string, index int) SourceLocation {
	if index < l.Index {
		panic(fmt.Sprintf("bnb: cannot move backwards from offset %d to %d", l.Index, index))
	}
	if index > len(input) {
		index = len(input)
	}
	for i := l.Index; i < index; i++ {
		ch := input[i]
		switch {
		case ch == '\n':
			l.Line++
			l.Column = 1
		case ch&0xC0 == 0x80:
			// UTF-8 continuation byte, same rune.
		default:
			l.Column++
		}
	}
	l.Index = index
	return l
}
