package bnb

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"
)

func failAt(input string, index int, expected ...string) ActionResult[int] {
	return Failure[int](newContext(input, nil).At(index), expected...)
}

func okAt(input string, index int, value int) ActionResult[int] {
	return Success(newContext(input, nil).At(index), value)
}

func TestSuccessHasNoFurthest(t *testing.T) {
	r := okAt("abc", 1, 7)
	require.True(t, r.OK())
	require.Equal(t, 7, r.Value())
	require.Equal(t, -1, r.Furthest().Index)
	require.Empty(t, r.Expected())
}

func TestFailureExpectedIsASet(t *testing.T) {
	r := failAt("abc", 2, "b", "a", "b")
	require.False(t, r.OK())
	require.Equal(t, 2, r.Furthest().Index)
	require.Equal(t, r.Location(), r.Furthest())
	require.Equal(t, []string{"a", "b"}, r.Expected())
}

func TestMergeKeepsRightOutcome(t *testing.T) {
	merged := Merge(failAt("abcdef", 4, "x"), okAt("abcdef", 2, 9))
	require.True(t, merged.OK())
	require.Equal(t, 9, merged.Value())
	require.Equal(t, 2, merged.Location().Index)
	require.Equal(t, 4, merged.Furthest().Index)
	require.Equal(t, []string{"x"}, merged.Expected())
}

func TestMergePrefersFurthest(t *testing.T) {
	near := failAt("abcdef", 1, "near")
	far := failAt("abcdef", 3, "far")
	require.Equal(t, []string{"far"}, Merge(near, far).Expected())
	require.Equal(t, []string{"far"}, Merge(far, near).Expected())
	require.Equal(t, 3, Merge(far, near).Furthest().Index)
	require.Equal(t, 1, Merge(far, near).Location().Index)
}

func TestMergeUnionsAtSameOffset(t *testing.T) {
	a := failAt("abcdef", 2, "b", "c")
	b := failAt("abcdef", 2, "a", "b")
	require.Equal(t, []string{"a", "b", "c"}, Merge(a, b).Expected())
	require.Equal(t, []string{"a", "b", "c"}, Merge(b, a).Expected())
}

func TestMergeAssociative(t *testing.T) {
	results := []ActionResult[int]{
		okAt("abcdef", 0, 1),
		failAt("abcdef", 2, "x"),
		failAt("abcdef", 2, "y"),
		failAt("abcdef", 4, "z"),
		failAt("abcdef", 1, "w"),
		okAt("abcdef", 5, 2),
	}
	for _, a := range results {
		for _, b := range results {
			for _, c := range results {
				left := Merge(Merge(a, b), c)
				right := Merge(a, Merge(b, c))
				require.Equal(t, left.Furthest(), right.Furthest(), repr.String([]ActionResult[int]{a, b, c}))
				require.Equal(t, left.Expected(), right.Expected(), repr.String([]ActionResult[int]{a, b, c}))
				require.Equal(t, c.Location(), left.Location())
				require.Equal(t, c.OK(), left.OK())

				maxIndex := a.Furthest().Index
				if b.Furthest().Index > maxIndex {
					maxIndex = b.Furthest().Index
				}
				if c.Furthest().Index > maxIndex {
					maxIndex = c.Furthest().Index
				}
				require.Equal(t, maxIndex, left.Furthest().Index)
			}
		}
	}
}

func TestMergeDoesNotAliasInputs(t *testing.T) {
	a := failAt("abc", 1, "a", "c")
	b := failAt("abc", 1, "b")
	_ = Merge(a, b)
	require.Equal(t, []string{"a", "c"}, a.Expected())
	require.Equal(t, []string{"b"}, b.Expected())
}

func TestUnionExpected(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c", "d"}, unionExpected([]string{"a", "c"}, []string{"b", "c", "d"}))
	require.Equal(t, []string{"a"}, unionExpected(nil, []string{"a"}))
	require.Nil(t, unionExpected(nil, nil))
}
