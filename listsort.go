// Package listsort sorts circular doubly linked lists in place with a
// family of stable merge sorts: the bottom-up merge sort of the Linux
// kernel's list_sort, and timsort variants that differ in how they
// pad short runs and how they merge.
//
// Each variant has an entry point with the same shape, which takes an
// optional comparison counter, the list, and the comparison function,
// and leaves the list sorted. Sort provides the same algorithms behind
// a configuration, and reports the work done.
//
// The list types and the sort engines live in the seq package.
package listsort

import (
	"github.com/tychoish/listsort/ers"
	"github.com/tychoish/listsort/seq"
)

// Sort sorts the list in place with the configured variant and
// reports the work it did. Configuration errors are returned before
// the list is touched.
func Sort[T any](list *seq.List[T], cmp seq.Compare[T], opts ...OptionProvider[*Config]) (seq.SortStats, error) {
	conf := &Config{}
	if err := ApplyOptions(conf, opts...); err != nil {
		return seq.SortStats{}, err
	}

	if list == nil {
		return seq.SortStats{}, seq.ErrUninitialized
	}

	return sortWith(conf.Variant, list, cmp, conf.SortOptions()), nil
}

func sortWith[T any](v Variant, list *seq.List[T], cmp seq.Compare[T], opts seq.SortOptions) seq.SortStats {
	if v == VariantListSort {
		return seq.ListSort(list, cmp, opts)
	}
	return seq.Timsort(list, cmp, opts)
}

// Run sorts the list with the preset of the variant. The counter, when
// non-nil, is incremented once for every comparison that does not
// report equality.
func Run[T any](v Variant, counter *uint64, list *seq.List[T], cmp seq.Compare[T]) {
	ers.Invariant(v.Valid(), "sort with ", v)
	sortWith(v, list, cmp, seq.SortOptions{
		Extension: v.Extension(),
		Merge:     v.Merge(),
		Counter:   counter,
	})
}

// ListSort sorts the list with the kernel's bottom-up list sort.
func ListSort[T any](counter *uint64, list *seq.List[T], cmp seq.Compare[T]) {
	Run(VariantListSort, counter, list, cmp)
}

// TimsortMerge sorts the list with timsort, using natural runs and
// plain merges.
func TimsortMerge[T any](counter *uint64, list *seq.List[T], cmp seq.Compare[T]) {
	Run(VariantTimsortMerge, counter, list, cmp)
}

// TimsortLinear sorts the list with timsort, padding short runs by
// linear insertion, with plain merges.
func TimsortLinear[T any](counter *uint64, list *seq.List[T], cmp seq.Compare[T]) {
	Run(VariantTimsortLinear, counter, list, cmp)
}

// TimsortBinary sorts the list with timsort, padding short runs by
// binary insertion, with plain merges.
func TimsortBinary[T any](counter *uint64, list *seq.List[T], cmp seq.Compare[T]) {
	Run(VariantTimsortBinary, counter, list, cmp)
}

// TimsortGallop sorts the list with timsort, padding short runs by
// linear insertion, with the adaptive threshold galloping merge.
func TimsortGallop[T any](counter *uint64, list *seq.List[T], cmp seq.Compare[T]) {
	Run(VariantTimsortGallop, counter, list, cmp)
}

// TimsortBinaryGallop sorts the list with timsort, padding short runs
// by binary insertion, with the adaptive threshold galloping merge.
func TimsortBinaryGallop[T any](counter *uint64, list *seq.List[T], cmp seq.Compare[T]) {
	Run(VariantTimsortBinaryGallop, counter, list, cmp)
}

// TimsortExpGallop sorts the list with timsort, padding short runs by
// linear insertion, with the exponential galloping merge.
func TimsortExpGallop[T any](counter *uint64, list *seq.List[T], cmp seq.Compare[T]) {
	Run(VariantTimsortExpGallop, counter, list, cmp)
}

// TimsortBinaryExpGallop sorts the list with timsort, padding short
// runs by binary insertion, with the exponential galloping merge.
func TimsortBinaryExpGallop[T any](counter *uint64, list *seq.List[T], cmp seq.Compare[T]) {
	Run(VariantTimsortBinaryExpGallop, counter, list, cmp)
}

// WorstCase reorders the list into the permutation that maximizes
// the comparisons of a bottom-up merge sort. It does not compare
// elements.
func WorstCase[T any](list *seq.List[T]) { seq.WorstCase(list) }
