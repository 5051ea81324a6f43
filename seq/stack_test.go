package seq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tychoish/listsort/ers"
)

func ascendingRun(start, length int) run[int] {
	values := make([]int, length)
	for idx := range values {
		values[idx] = start + idx
	}
	return run[int]{head: chain(values...), length: length}
}

func stackSizes(s *sorter[int]) []int {
	out := make([]int, 0, s.stack.depth())
	for _, r := range s.stack.runs {
		out = append(out, r.length)
	}
	return out
}

func requireStackInvariant(t *testing.T, s *sorter[int]) {
	t.Helper()
	st := &s.stack
	for i := 0; i+1 < st.depth(); i++ {
		require.Greater(t, st.size(i), st.size(i+1), "stack %v", stackSizes(s))
		if i+2 < st.depth() {
			require.Greater(t, st.size(i), st.size(i+1)+st.size(i+2), "stack %v", stackSizes(s))
		}
	}
}

func TestMergeStack(t *testing.T) {
	t.Run("CollapseOrder", func(t *testing.T) {
		s := newTestSorter(SortOptions{})
		for _, step := range []struct {
			length   int
			expected []int
		}{
			{length: 50, expected: []int{50}},
			{length: 25, expected: []int{50, 25}},
			{length: 20, expected: []int{50, 25, 20}},
			{length: 10, expected: []int{105}},
		} {
			s.push(ascendingRun(1000-10*len(s.stack.runs), step.length))
			s.collapse()
			require.Equal(t, step.expected, stackSizes(s))
		}

		require.Equal(t, 4, s.stats.Runs)
		require.Equal(t, 3, s.stats.Merges)
		require.Equal(t, 4, s.stats.MaxDepth)

		merged := chainValues(s.stack.runs[0].head)
		require.Len(t, merged, 105)
		for idx := 1; idx < len(merged); idx++ {
			require.LessOrEqual(t, merged[idx-1], merged[idx])
		}
	})
	t.Run("InvariantHolds", func(t *testing.T) {
		rng := newRand(t)
		for _, ext := range []Extension{ExtendNone, ExtendLinear} {
			list := randomList(rng, 20000, 1000)
			s := newTestSorter(SortOptions{Extension: ext})
			s.minrun = MinRun(list.Len())

			root := list.root
			for rest := detach(root); rest != nil; {
				var r run[int]
				r, rest = s.findRun(rest)
				s.push(r)
				s.collapse()
				requireStackInvariant(t, s)
			}

			s.forceCollapse()
			require.LessOrEqual(t, s.stack.depth(), 2)
			s.finalize(root)
			require.Equal(t, 0, s.stack.depth())
			requireSortedList(t, list, 20000)
			require.Equal(t, s.stats.Runs-1, s.stats.Merges)
		}
	})
	t.Run("ForceCollapse", func(t *testing.T) {
		s := newTestSorter(SortOptions{})
		s.stack.runs = []run[int]{
			ascendingRun(0, 40),
			ascendingRun(100, 30),
			ascendingRun(200, 20),
			ascendingRun(300, 5),
		}
		s.forceCollapse()
		require.Equal(t, []int{40, 55}, stackSizes(s))
		require.Equal(t, 2, s.stats.Merges)
	})
	t.Run("FinalizeSingleRun", func(t *testing.T) {
		list := NewList(1, 2, 3)
		root := list.root
		s := newTestSorter(SortOptions{})
		s.push(run[int]{head: detach(root), length: 3})
		s.finalize(root)
		require.NoError(t, list.Validate())
		require.Equal(t, []int{1, 2, 3}, list.Slice())
		require.Equal(t, 0, s.stats.Merges)
	})
	t.Run("Invariants", func(t *testing.T) {
		s := newTestSorter(SortOptions{})
		err := ers.WithRecoverCall(func() { s.mergeAt(0) })
		require.ErrorIs(t, err, ers.ErrInvariantViolation)
		require.ErrorIs(t, err, ers.ErrRecoveredPanic)

		s.push(ascendingRun(0, 3))
		err = ers.WithRecoverCall(func() { s.mergeAt(0) })
		require.ErrorIs(t, err, ers.ErrInvariantViolation)

		err = ers.WithRecoverCall(func() { newTestSorter(SortOptions{}).finalize(&Element[int]{root: true}) })
		require.ErrorIs(t, err, ers.ErrInvariantViolation)
	})
}
