package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tychoish/listsort"
	"github.com/tychoish/listsort/ers"
	"github.com/tychoish/listsort/seq"
	"github.com/tychoish/listsort/testt"
	"github.com/tychoish/listsort/verify"
)

func build(t *testing.T, c Case, n int) *seq.List[int] {
	t.Helper()
	list, err := c.Build(n, NewSource())
	require.NoError(t, err)
	require.NoError(t, list.Validate())
	require.Equal(t, n, list.Len())
	if c != Worst {
		require.Equal(t, testt.Ascending(n).Seqs(), list.Seqs())
	}
	return list
}

func replaced(list *seq.List[int]) int {
	count := 0
	for idx, v := range list.Slice() {
		if v != idx {
			count++
		}
	}
	return count
}

func TestCase(t *testing.T) {
	t.Run("Names", func(t *testing.T) {
		for _, c := range Cases() {
			out, err := c.MarshalText()
			require.NoError(t, err)

			var parsed Case
			require.NoError(t, parsed.UnmarshalText(out))
			require.Equal(t, c, parsed)
		}
		require.Len(t, Cases(), 6)

		var c Case
		require.ErrorIs(t, c.UnmarshalText([]byte("sorted")), ers.ErrInvalidInput)
		_, err := Case(12).MarshalText()
		require.ErrorIs(t, err, ers.ErrInvalidInput)
		require.Equal(t, "Case(12)", Case(12).String())
	})
	t.Run("Build", func(t *testing.T) {
		t.Run("Worst", func(t *testing.T) {
			list := build(t, Worst, 8)
			require.Equal(t, []int{0, 4, 2, 6, 1, 5, 3, 7}, list.Slice())
			// elements move with their tags
			require.Equal(t, list.Slice(), list.Seqs())
		})
		t.Run("RandomThree", func(t *testing.T) {
			require.LessOrEqual(t, replaced(build(t, RandomThree, 300)), 3)
			require.Equal(t, []int{0, 1}, build(t, RandomThree, 2).Seqs())
		})
		t.Run("RandomTail", func(t *testing.T) {
			list := build(t, RandomTail, 100)
			require.Equal(t, testt.Ascending(90).Slice(), list.Slice()[:90])
			require.LessOrEqual(t, replaced(list), 10)

			for v := range build(t, RandomTail, 5).Values() {
				require.Less(t, v, verify.MaxLen)
			}
		})
		t.Run("RandomPercent", func(t *testing.T) {
			list := build(t, RandomPercent, 1000)
			require.LessOrEqual(t, replaced(list), 10)
			require.Zero(t, replaced(build(t, RandomPercent, 99)))
		})
		t.Run("Duplicates", func(t *testing.T) {
			for v := range build(t, Duplicates, 500).Values() {
				require.GreaterOrEqual(t, v, 12300)
				require.LessOrEqual(t, v, 12303)
			}
		})
		t.Run("Random", func(t *testing.T) {
			for v := range build(t, Random, 500).Values() {
				require.GreaterOrEqual(t, v, 0)
				require.Less(t, v, verify.MaxLen)
			}
		})
		t.Run("Empty", func(t *testing.T) {
			for _, c := range Cases() {
				require.Zero(t, build(t, c, 0).Len())
			}
		})
		t.Run("Errors", func(t *testing.T) {
			_, err := Case(40).Build(10, NewSource())
			require.ErrorIs(t, err, ers.ErrInvalidInput)
			_, err = Random.Build(-1, NewSource())
			require.ErrorIs(t, err, ers.ErrInvalidInput)
			_, err = Random.Build(verify.MaxLen+1, NewSource())
			require.ErrorIs(t, err, ers.ErrLimitExceeded)
		})
	})
	t.Run("Deterministic", func(t *testing.T) {
		src := NewSource()
		first, err := Random.Build(200, src)
		require.NoError(t, err)
		second, err := Random.Build(200, src)
		require.NoError(t, err)
		require.NotEqual(t, first.Slice(), second.Slice())

		Reset(src)
		again, err := Random.Build(200, src)
		require.NoError(t, err)
		require.Equal(t, first.Slice(), again.Slice())
		require.Equal(t, first.Slice(), build(t, Random, 200).Slice())
	})
	t.Run("SortsAgree", func(t *testing.T) {
		sorts := []verify.SortFunc[int]{
			listsort.ListSort[int],
			listsort.TimsortMerge[int],
			listsort.TimsortLinear[int],
			listsort.TimsortBinary[int],
			listsort.TimsortGallop[int],
			listsort.TimsortBinaryGallop[int],
			listsort.TimsortExpGallop[int],
			listsort.TimsortBinaryExpGallop[int],
		}
		for _, c := range Cases() {
			t.Run(c.String(), func(t *testing.T) {
				list := build(t, c, 4096)
				counts, err := verify.Equivalent(testt.Context(t), list, seq.CompareNative[int], sorts...)
				require.NoError(t, err)
				require.Len(t, counts, len(sorts))
			})
		}
	})
}
