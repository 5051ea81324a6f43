package seq

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

type sortFunc func(*List[int], Compare[int], SortOptions) SortStats

type sortCase struct {
	name string
	opts SortOptions
	sort sortFunc
}

func timsortCases() []sortCase {
	var out []sortCase
	for _, ext := range []Extension{ExtendNone, ExtendLinear, ExtendBinary} {
		for _, merge := range []MergeStrategy{MergePlain, MergeThresholdGallop, MergeExponentialGallop} {
			out = append(out, sortCase{
				name: fmt.Sprintf("%s/%s", ext, merge),
				opts: SortOptions{Extension: ext, Merge: merge},
				sort: Timsort[int],
			})
		}
	}
	return out
}

func allSortCases() []sortCase {
	return append(timsortCases(), sortCase{name: "listsort", sort: ListSort[int]})
}

func newRand(t testing.TB) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(314159265, 1618033989))
}

func randomList(rng *rand.Rand, size, limit int) *List[int] {
	list := &List[int]{}
	for i := 0; i < size; i++ {
		list.PushBack(rng.IntN(limit))
	}
	return list
}

func ascendingList(size int) *List[int] {
	list := &List[int]{}
	for i := 0; i < size; i++ {
		list.PushBack(i)
	}
	return list
}

// chain detaches a list built from the values and returns its first
// element; the list's root is left open.
func chain(values ...int) *Element[int] {
	list := NewList(values...)
	if list.Len() == 0 {
		return nil
	}
	return detach(list.root)
}

func chainValues[T any](head *Element[T]) []T {
	var out []T
	for ; head != nil; head = head.next {
		out = append(out, head.item)
	}
	return out
}

func chainSeqs[T any](head *Element[T]) []int {
	var out []int
	for ; head != nil; head = head.next {
		out = append(out, head.seq)
	}
	return out
}

func requireSortedList(t testing.TB, list *List[int], size int) {
	t.Helper()
	require.NoError(t, list.Validate())
	require.Equal(t, size, list.Len())
	require.True(t, IsSorted(list, CompareNative[int]), "unsorted: %v", list.Slice())
	require.True(t, IsStable(list, CompareNative[int]), "unstable: %v", list.Seqs())
}

// splitChain builds one list from both halves, so that every element
// of a carries a smaller sequence tag than every element of b, and
// returns the two halves as separate chains.
func splitChain(a, b []int) (*Element[int], *Element[int]) {
	head := detach(NewList(append(slices.Clone(a), b...)...).root)
	if len(a) == 0 {
		return nil, head
	}
	last := walk(head, len(a)-1)
	rest := last.next
	last.next = nil
	return head, rest
}

// stableOrder reports the values and sequence tags that a stable sort
// of the values must produce.
func stableOrder(values []int) ([]int, []int) {
	type tagged struct{ value, seq int }
	items := make([]tagged, len(values))
	for idx, v := range values {
		items[idx] = tagged{value: v, seq: idx}
	}
	slices.SortStableFunc(items, func(a, b tagged) int { return cmp.Compare(a.value, b.value) })

	vals, seqs := make([]int, len(items)), make([]int, len(items))
	for idx, it := range items {
		vals[idx], seqs[idx] = it.value, it.seq
	}
	return vals, seqs
}

func sortedValues(rng *rand.Rand, size, limit int) []int {
	out := make([]int, size)
	for idx := range out {
		out[idx] = rng.IntN(limit)
	}
	slices.Sort(out)
	return out
}

func newTestSorter(opts SortOptions) *sorter[int] {
	return newSorter(CompareNative[int], opts)
}
