package bnb

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// EOF succeeds without consuming input when the whole input has been
// consumed, yielding an empty string.
var EOF = New(func(ctx Context) ActionResult[string] {
	if !ctx.AtEOF() {
		return Failure[string](ctx, "<EOF>")
	}
	return Success(ctx, "")
})

// CurrentLocation yields the current location without consuming input.
var CurrentLocation = New(func(ctx Context) ActionResult[SourceLocation] {
	return Success(ctx, ctx.location)
})

// Text matches s exactly.
func Text(s string) Parser[string] {
	return New(func(ctx Context) ActionResult[string] {
		if !strings.HasPrefix(ctx.Remaining(), s) {
			return Failure[string](ctx, s)
		}
		return Success(ctx.At(ctx.location.Index+len(s)), s)
	})
}

// Match matches the regular expression pattern starting exactly at the
// current location, yielding the matched text.
//
// Patterns use regexp2's syntax in RE2 compatibility mode, so lookaround and
// backreferences are available. The whole input is visible to the
// expression: ^ only matches at the start of the input (or of a line with
// the m flag), and \b and lookbehind see the text before the current
// location.
//
// Only the inline flags i, m, s and u are permitted. Match panics with a
// *GrammarError if pattern uses any other flag, and with regexp2's error if
// it does not compile.
func Match(pattern string) Parser[string] {
	return MatchWith(pattern, regexp2.RE2)
}

// allowedOptions may be passed to MatchWith.
const allowedOptions = regexp2.IgnoreCase | regexp2.Multiline | regexp2.Singleline | regexp2.Unicode |
	regexp2.RE2 | regexp2.ECMAScript | regexp2.Compiled

// MatchWith is like Match but compiles pattern with the given regexp2
// options, eg. regexp2.ECMAScript|regexp2.IgnoreCase. Options that change
// the direction or meaning of a match, such as RightToLeft or
// IgnorePatternWhitespace, panic with a *GrammarError.
func MatchWith(pattern string, options regexp2.RegexOptions) Parser[string] {
	if unsupported := options &^ allowedOptions; unsupported != 0 {
		panic(&GrammarError{Op: "match", Message: fmt.Sprintf("unsupported regexp options %#x for %q", int32(unsupported), pattern)})
	}
	if err := checkFlags(pattern); err != nil {
		panic(err)
	}
	// \G pins the match to the position the search starts at.
	sticky := regexp2.MustCompile(`\G(?:`+pattern+`)`, options)
	expected := "/" + pattern + "/"
	return New(func(ctx Context) ActionResult[string] {
		start := ctx.location.Index
		runes, runeStart := ctx.runes.at(start)
		m, err := sticky.FindRunesMatchStartingAt(runes, runeStart)
		if err != nil || m == nil || m.Index != runeStart {
			return Failure[string](ctx, expected)
		}
		end := start
		for n := 0; n < m.Length; n++ {
			_, size := utf8.DecodeRuneInString(ctx.input[end:])
			end += size
		}
		return Success(ctx.At(end), ctx.input[start:end])
	})
}

// checkFlags rejects inline option groups such as (?x) or (?n:...) using
// flags other than i, m, s and u.
func checkFlags(pattern string) error {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '[':
			i = skipClass(pattern, i)
		case '(':
			if !strings.HasPrefix(pattern[i:], "(?") {
				continue
			}
			if strings.HasPrefix(pattern[i:], "(?#") {
				// Comment.
				if end := strings.IndexByte(pattern[i:], ')'); end >= 0 {
					i += end
				}
				continue
			}
			if flags, ok := optionGroup(pattern[i+2:]); ok {
				for _, ch := range flags {
					if !strings.ContainsRune("imsuIMSU+-", ch) {
						return &GrammarError{Op: "match", Message: fmt.Sprintf("only the regexp flags 'imsu' are supported, not %q in %q", ch, pattern)}
					}
				}
			}
		}
	}
	return nil
}

// optionGroup reports whether s, the text after "(?", starts an option group
// like "im-s)" or "i:...", returning its flag letters. Other constructs such
// as lookaround or named groups are not option groups.
func optionGroup(s string) (string, bool) {
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == ':' || ch == ')':
			return s[:i], i > 0
		case ch == '+' || ch == '-':
		case strings.IndexByte("imnsxrdeuIMNSXRDEU", ch) >= 0:
		default:
			return "", false
		}
	}
	return "", false
}

// skipClass returns the index of the ']' closing the character class opened
// at pattern[start].
func skipClass(pattern string, start int) int {
	i := start + 1
	if i < len(pattern) && pattern[i] == '^' {
		i++
	}
	// A leading ']' is a literal.
	if i < len(pattern) && pattern[i] == ']' {
		i++
	}
	for ; i < len(pattern); i++ {
		switch {
		case pattern[i] == '\\':
			i++
		case pattern[i] == '[' && i+1 < len(pattern) && pattern[i+1] == ':':
			if end := strings.Index(pattern[i:], ":]"); end >= 0 {
				i += end + 1
			}
		case pattern[i] == ']':
			return i
		}
	}
	return i
}

// Ok yields value without consuming input.
func Ok[A any](value A) Parser[A] {
	return New(func(ctx Context) ActionResult[A] {
		return Success(ctx, value)
	})
}

// Fail always fails without consuming input, expecting any of expected.
func Fail[A any](expected ...string) Parser[A] {
	return New(func(ctx Context) ActionResult[A] {
		return Failure[A](ctx, expected...)
	})
}

// Lookahead succeeds with p's value if p succeeds, but never consumes input.
func Lookahead[A any](p Parser[A]) Parser[A] {
	return New(func(ctx Context) ActionResult[A] {
		result := p.action(ctx)
		if !result.ok {
			return Merge(result, Failure[A](ctx))
		}
		return Merge(result, Success(ctx, result.value))
	})
}

// NotFollowing succeeds without consuming input only if p fails at the
// current location.
func NotFollowing[A any](p Parser[A]) Parser[struct{}] {
	return New(func(ctx Context) ActionResult[struct{}] {
		result := p.action(ctx)
		if result.ok {
			return Failure[struct{}](ctx, fmt.Sprintf("not '%v'", result.value))
		}
		return Success(ctx, struct{}{})
	})
}
