package bnb

import "strconv"

// Unbounded may be passed as the max argument of Repeat and SepBy to allow
// any number of items.
const Unbounded = -1

func checkRange(op string, min, max int) {
	if min < 0 || (max != Unbounded && (max < 0 || min > max)) {
		grammarPanicf(op, "bad range (%d to %s)", min, formatMax(max))
	}
}

func formatMax(max int) string {
	if max == Unbounded {
		return "unbounded"
	}
	return strconv.Itoa(max)
}

func below(count, max int) bool {
	return max == Unbounded || count < max
}

// Repeat applies p between min and max times, yielding the values in order.
//
// Repeat panics with a *GrammarError if the range is invalid, and while
// parsing if p succeeds without consuming input, as repeating such a parser
// would never terminate.
func Repeat[A any](p Parser[A], min, max int) Parser[[]A] {
	checkRange("repeat", min, max)
	return New(func(ctx Context) ActionResult[[]A] {
		values := []A{}
		report := ActionResult[A]{furthest: noLocation}
		for below(len(values), max) {
			report = Merge(report, p.action(ctx))
			if !report.ok {
				break
			}
			if report.location.Index == ctx.location.Index {
				grammarPanicf("repeat", "infinite loop detected at %s; don't repeat parsers that can accept zero characters", ctx.location)
			}
			ctx = ctx.MoveTo(report.location)
			values = append(values, report.value)
		}
		if len(values) < min {
			return Merge(report, Failure[[]A](ctx))
		}
		return Merge(report, Success(ctx, values))
	})
}

// Many applies p zero or more times.
func Many[A any](p Parser[A]) Parser[[]A] {
	return Repeat(p, 0, Unbounded)
}

// AtLeast applies p min or more times.
func AtLeast[A any](p Parser[A], min int) Parser[[]A] {
	return Repeat(p, min, Unbounded)
}

// SepBy applies p between min and max times, with sep between each pair of
// items, yielding the items in order.
//
// A separator is only consumed together with the item following it. If a
// separator matches but no item follows, SepBy fails.
func SepBy[A, B any](p Parser[A], sep Parser[B], min, max int) Parser[[]A] {
	checkRange("sepBy", min, max)
	return New(func(ctx Context) ActionResult[[]A] {
		values := []A{}
		report := ActionResult[A]{furthest: noLocation}
		for below(len(values), max) {
			if len(values) == 0 {
				report = Merge(report, p.action(ctx))
				if !report.ok {
					break
				}
			} else {
				s := sep.action(ctx)
				report = Merge(report, retypeAll[B, A](s))
				if !s.ok {
					break
				}
				report = Merge(report, p.action(ctx.MoveTo(s.location)))
				if !report.ok {
					// Dangling separator.
					return retype[A, []A](report)
				}
				if report.location.Index == ctx.location.Index {
					grammarPanicf("sepBy", "infinite loop detected at %s; separator and item both accepted zero characters", ctx.location)
				}
			}
			ctx = ctx.MoveTo(report.location)
			values = append(values, report.value)
		}
		if len(values) < min {
			return Merge(report, Failure[[]A](ctx))
		}
		return Merge(report, Success(ctx, values))
	})
}
