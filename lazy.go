package bnb

import "sync"

// Lazy defers building a parser until it is first applied, so that a rule can
// refer to itself or to rules declared after it.
//
// fn is called at most once; the parser it returns is used for every
// application.
//
//	var value bnb.Parser[any]
//	value = bnb.Lazy(func() bnb.Parser[any] {
//		return bnb.Choice(number, bnb.Erase(bnb.Wrap(open, bnb.Many(value), close)))
//	})
func Lazy[A any](fn func() Parser[A]) Parser[A] {
	resolve := sync.OnceValue(fn)
	return New(func(ctx Context) ActionResult[A] {
		return resolve().action(ctx)
	})
}

// Span is the value produced by Node: a named value with the source range it
// was parsed from.
type Span[A any] struct {
	Name  string
	Value A
	Start SourceLocation
	End   SourceLocation
}

// Node wraps the value of p with name and the locations where p started and
// stopped.
func Node[A any](name string, p Parser[A]) Parser[Span[A]] {
	return Named(name, Map(All3(CurrentLocation, p, CurrentLocation), func(v Tuple3[SourceLocation, A, SourceLocation]) Span[A] {
		return Span[A]{Name: name, Value: v.Second, Start: v.First, End: v.Third}
	}))
}

// Named labels p in traces. It does not alter what p parses or reports.
func Named[A any](name string, p Parser[A]) Parser[A] {
	return New(func(ctx Context) ActionResult[A] {
		ctx.tracer.enter(ctx, name)
		result := p.action(ctx)
		ctx.tracer.leave(name, result.ok, result.location)
		return result
	})
}
