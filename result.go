package bnb

import "sort"

// ActionResult is the outcome of applying a Parser to a Context.
//
// Besides success or failure, every result remembers the furthest location
// at which any attempted parse failed and what was expected there. This is
// carried through successful results too, so that a parse which fails late
// can report the deepest point any alternative reached.
type ActionResult[A any] struct {
	ok       bool
	value    A
	location SourceLocation
	furthest SourceLocation
	expected []string
}

// Success returns a successful result at the Context's location.
func Success[A any](ctx Context, value A) ActionResult[A] {
	return ActionResult[A]{
		ok:       true,
		value:    value,
		location: ctx.location,
		furthest: noLocation,
	}
}

// Failure returns a failed result at the Context's location, expecting any of
// the given descriptions.
func Failure[A any](ctx Context, expected ...string) ActionResult[A] {
	return ActionResult[A]{
		location: ctx.location,
		furthest: ctx.location,
		expected: normaliseExpected(expected),
	}
}

// OK reports whether the parse succeeded.
func (r ActionResult[A]) OK() bool { return r.ok }

// Value returns the parsed value. It is the zero value for failures.
func (r ActionResult[A]) Value() A { return r.value }

// Location returns the point reached on success, or where failure was
// detected.
func (r ActionResult[A]) Location() SourceLocation { return r.location }

// Furthest returns the deepest failure location seen, with Index -1 if no
// failure was observed.
func (r ActionResult[A]) Furthest() SourceLocation { return r.furthest }

// Expected returns the sorted, de-duplicated expectations at Furthest().
func (r ActionResult[A]) Expected() []string { return r.expected }

// Merge combines two sequentially produced results.
//
// The outcome, value and location are b's. The furthest failure is whichever
// of a and b reached further, with expectations unioned when both reached the
// same offset.
func Merge[A, B any](a ActionResult[A], b ActionResult[B]) ActionResult[B] {
	switch {
	case a.furthest.Index > b.furthest.Index:
		b.furthest = a.furthest
		b.expected = a.expected
	case a.furthest.Index == b.furthest.Index:
		b.expected = unionExpected(a.expected, b.expected)
	}
	return b
}

// mapResult converts the value of a successful result.
func mapResult[A, B any](r ActionResult[A], fn func(A) B) ActionResult[B] {
	out := ActionResult[B]{
		ok:       r.ok,
		location: r.location,
		furthest: r.furthest,
		expected: r.expected,
	}
	if r.ok {
		out.value = fn(r.value)
	}
	return out
}

// retype carries a failure across to a result of a different value type.
func retype[A, B any](r ActionResult[A]) ActionResult[B] {
	return ActionResult[B]{
		location: r.location,
		furthest: r.furthest,
		expected: r.expected,
	}
}

func normaliseExpected(expected []string) []string {
	if len(expected) == 0 {
		return nil
	}
	out := make([]string, len(expected))
	copy(out, expected)
	sort.Strings(out)
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}

// unionExpected merges two sorted, de-duplicated slices. Neither input is
// modified.
func unionExpected(a, b []string) []string {
	switch {
	case len(a) == 0:
		return b
	case len(b) == 0:
		return a
	}
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
