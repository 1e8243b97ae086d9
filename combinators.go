package bnb

// Pair is the value produced by And and All2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Tuple3 is the value produced by All3.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple4 is the value produced by All4.
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Tuple5 is the value produced by All5.
type Tuple5[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

// Maybe is the value produced by Optional.
type Maybe[A any] struct {
	Value A
	Valid bool
}

// All applies each parser in turn, each starting where the previous one
// stopped, and yields their values in order. It fails as soon as any parser
// fails.
func All[A any](parsers ...Parser[A]) Parser[[]A] {
	return New(func(ctx Context) ActionResult[[]A] {
		values := make([]A, 0, len(parsers))
		report := ActionResult[struct{}]{furthest: noLocation}
		for _, parser := range parsers {
			next := parser.action(ctx)
			report = Merge(report, retypeAll[A, struct{}](next))
			if !next.ok {
				return retype[struct{}, []A](report)
			}
			values = append(values, next.value)
			ctx = ctx.MoveTo(next.location)
		}
		return Merge(report, Success(ctx, values))
	})
}

// retypeAll keeps the outcome and diagnostics of r but discards its value.
func retypeAll[A, B any](r ActionResult[A]) ActionResult[B] {
	out := retype[A, B](r)
	out.ok = r.ok
	return out
}

// Choice tries each parser at the same location and yields the value of the
// first that succeeds. Once an alternative succeeds the rest are never tried.
//
// Expectations from alternatives that failed are kept, so that if the overall
// parse later fails the report includes them.
func Choice[A any](parsers ...Parser[A]) Parser[A] {
	return New(func(ctx Context) ActionResult[A] {
		report := ActionResult[A]{location: ctx.location, furthest: noLocation}
		for _, parser := range parsers {
			next := parser.action(ctx)
			report = Merge(report, next)
			if next.ok {
				return report
			}
		}
		if report.furthest.Index < 0 {
			return Failure[A](ctx)
		}
		return report
	})
}

// Map transforms the value of a successful parse.
func Map[A, B any](p Parser[A], fn func(A) B) Parser[B] {
	return New(func(ctx Context) ActionResult[B] {
		return mapResult(p.action(ctx), fn)
	})
}

// Chain applies p, then the parser returned by fn for p's value, starting
// where p stopped.
//
// This makes context sensitive grammars possible, eg. requiring a closing tag
// to repeat the name of its opening tag.
func Chain[A, B any](p Parser[A], fn func(A) Parser[B]) Parser[B] {
	return New(func(ctx Context) ActionResult[B] {
		a := p.action(ctx)
		if !a.ok {
			return retype[A, B](a)
		}
		b := fn(a.value).action(ctx.MoveTo(a.location))
		return Merge(a, b)
	})
}

// Erase converts p into a Parser of any, for mixing differently typed parsers
// in All or Choice.
func Erase[A any](p Parser[A]) Parser[any] {
	return Map(p, func(a A) any { return a })
}

// And applies a then b, yielding both values.
func And[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return All2(a, b)
}

// Skip applies a then b, yielding a's value.
func Skip[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Map(All2(a, b), func(v Pair[A, B]) A { return v.First })
}

// Next applies a then b, yielding b's value.
func Next[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(All2(a, b), func(v Pair[A, B]) B { return v.Second })
}

// Wrap applies before, p and after, yielding p's value.
func Wrap[A, B, C any](before Parser[B], p Parser[A], after Parser[C]) Parser[A] {
	return Skip(Next(before, p), after)
}

// Trim is Wrap with the same parser on both sides.
func Trim[A, B any](p Parser[A], around Parser[B]) Parser[A] {
	return Wrap(around, p, around)
}

// Optional applies p, succeeding without consuming input if p fails.
func Optional[A any](p Parser[A]) Parser[Maybe[A]] {
	return Choice(
		Map(p, func(a A) Maybe[A] { return Maybe[A]{Value: a, Valid: true} }),
		Ok(Maybe[A]{}),
	)
}

// All2 applies a and b in sequence.
func All2[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return New(func(ctx Context) ActionResult[Pair[A, B]] {
		first := a.action(ctx)
		if !first.ok {
			return retype[A, Pair[A, B]](first)
		}
		second := b.action(ctx.MoveTo(first.location))
		return Merge(first, mapResult(second, func(v B) Pair[A, B] {
			return Pair[A, B]{first.value, v}
		}))
	})
}

// All3 applies a, b and c in sequence.
func All3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Tuple3[A, B, C]] {
	return Map(All2(All2(a, b), c), func(v Pair[Pair[A, B], C]) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{v.First.First, v.First.Second, v.Second}
	})
}

// All4 applies four parsers in sequence.
func All4[A, B, C, D any](a Parser[A], b Parser[B], c Parser[C], d Parser[D]) Parser[Tuple4[A, B, C, D]] {
	return Map(All2(All3(a, b, c), d), func(v Pair[Tuple3[A, B, C], D]) Tuple4[A, B, C, D] {
		return Tuple4[A, B, C, D]{v.First.First, v.First.Second, v.First.Third, v.Second}
	})
}

// All5 applies five parsers in sequence.
func All5[A, B, C, D, E any](a Parser[A], b Parser[B], c Parser[C], d Parser[D], e Parser[E]) Parser[Tuple5[A, B, C, D, E]] {
	return Map(All2(All4(a, b, c, d), e), func(v Pair[Tuple4[A, B, C, D], E]) Tuple5[A, B, C, D, E] {
		return Tuple5[A, B, C, D, E]{v.First.First, v.First.Second, v.First.Third, v.First.Fourth, v.Second}
	})
}
