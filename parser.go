package bnb

import "io"

// A Parser consumes a prefix of its input and produces a value of type A.
//
// Parsers are immutable values built once at grammar definition time and
// safe to share between goroutines. The zero Parser is not usable.
type Parser[A any] struct {
	action func(ctx Context) ActionResult[A]
}

// New creates a Parser from a parsing action.
//
// The action must not advance past the input, and must report failures with
// Failure rather than by panicking.
func New[A any](action func(ctx Context) ActionResult[A]) Parser[A] {
	return Parser[A]{action: action}
}

// Apply runs the parser against ctx.
//
// This is mainly useful when writing custom parsers with New.
func (p Parser[A]) Apply(ctx Context) ActionResult[A] {
	return p.action(ctx)
}

// Result is the public outcome of Parser.Parse.
type Result[A any] struct {
	OK    bool
	Value A
	// Location of the furthest failure. Only set when OK is false.
	Location SourceLocation
	// Expected descriptions at Location, sorted and de-duplicated.
	Expected []string
}

// Err returns nil for successful results, or an *Error describing the
// failure.
func (r Result[A]) Err() error {
	if r.OK {
		return nil
	}
	return &Error{Location: r.Location, Expected: r.Expected}
}

// Parse applies the parser to the whole of input.
//
// Unless AllowTrailing is given, the parser must consume the input to its
// end. Rejected input is reported through the Result, never by panicking.
func (p Parser[A]) Parse(input string, options ...ParseOption) Result[A] {
	config := &parseConfig{}
	for _, option := range options {
		option(config)
	}
	var tr *tracer
	if config.trace != nil {
		tr = &tracer{w: config.trace}
	}
	ctx := newContext(input, tr)

	result := p.action(ctx)
	if result.ok && !config.allowTrailing {
		// Checked inline: building Skip(p, EOF) here would instantiate
		// Parser[Pair[A, string]] from a method of Parser[A].
		value := result.value
		end := EOF.action(ctx.MoveTo(result.location))
		result = Merge(result, mapResult(end, func(string) A { return value }))
	}
	if result.ok {
		return Result[A]{OK: true, Value: result.value}
	}
	return Result[A]{
		Location: result.furthest,
		Expected: result.expected,
	}
}

// TryParse is like Parse but returns the value directly, or an *Error.
func (p Parser[A]) TryParse(input string, options ...ParseOption) (A, error) {
	result := p.Parse(input, options...)
	return result.Value, result.Err()
}

// MustParse is like TryParse but panics if the input is rejected.
func (p Parser[A]) MustParse(input string, options ...ParseOption) A {
	value, err := p.TryParse(input, options...)
	if err != nil {
		panic(err)
	}
	return value
}

// Or tries p and, if it fails, q at the same location.
func (p Parser[A]) Or(q Parser[A]) Parser[A] {
	return Choice(p, q)
}

// Desc replaces the expectations reported when p fails with expected.
//
// The furthest failure location is preserved. This lets a complex rule report
// a single meaningful description such as "<object>" rather than every token
// its alternatives tried.
func (p Parser[A]) Desc(expected ...string) Parser[A] {
	expected = normaliseExpected(expected)
	label := "desc(" + joinQuoted(expected) + ")"
	return New(func(ctx Context) ActionResult[A] {
		ctx.tracer.enter(ctx, label)
		result := p.action(ctx)
		if !result.ok {
			result = ActionResult[A]{
				location: ctx.location,
				furthest: result.furthest,
				expected: expected,
			}
		}
		ctx.tracer.leave(label, result.ok, result.location)
		return result
	})
}

type parseConfig struct {
	allowTrailing bool
	trace         io.Writer
}

// A ParseOption modifies how Parse drives a Parser.
type ParseOption func(c *parseConfig)

// AllowTrailing lets Parse succeed without consuming the whole input.
func AllowTrailing() ParseOption {
	return func(c *parseConfig) {
		c.allowTrailing = true
	}
}
