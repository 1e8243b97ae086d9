package bnb

import "unicode/utf8"

// Context is the state a Parser is applied to: the full input and the
// current location within it.
//
// A Context is a value; moving it produces a new Context and never affects
// the one it was derived from. Backtracking is therefore just reusing an
// earlier Context.
type Context struct {
	input    string
	location SourceLocation
	tracer   *tracer
	runes    *runeCursor
}

func newContext(input string, tracer *tracer) Context {
	return Context{input: input, location: startLocation, tracer: tracer, runes: &runeCursor{input: input}}
}

// Input returns the complete input being parsed.
func (c Context) Input() string { return c.input }

// Location returns the current location.
func (c Context) Location() SourceLocation { return c.location }

// Remaining returns the unconsumed input.
func (c Context) Remaining() string { return c.input[c.location.Index:] }

// AtEOF reports whether the whole input has been consumed.
func (c Context) AtEOF() bool { return c.location.Index >= len(c.input) }

// At returns a Context positioned at the byte offset index, recomputing line
// and column from every byte in between.
//
// index must not be less than the current offset.
func (c Context) At(index int) Context {
	c.location = c.location.advance(c.input, index)
	return c
}

// MoveTo returns a Context positioned at a location previously produced by a
// parse of the same input.
func (c Context) MoveTo(location SourceLocation) Context {
	c.location = location
	return c
}

// runeCursor converts byte offsets of one input into offsets in its rune
// slice, which is what regexp2 matches against. Each conversion counts from
// the previous one, so a parse moving forward stays linear.
//
// A runeCursor is shared by every Context derived from a single Parse call
// and is not safe for concurrent use.
type runeCursor struct {
	input     string
	runes     []rune
	byteIndex int
	runeIndex int
}

func (c *runeCursor) at(index int) ([]rune, int) {
	if c.runes == nil {
		c.runes = []rune(c.input)
	}
	if index >= c.byteIndex {
		c.runeIndex += utf8.RuneCountInString(c.input[c.byteIndex:index])
	} else {
		c.runeIndex -= utf8.RuneCountInString(c.input[index:c.byteIndex])
	}
	c.byteIndex = index
	return c.runes, c.runeIndex
}
