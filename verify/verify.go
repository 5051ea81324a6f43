// Package verify checks the output of list sorts: order, stability,
// element counts, and agreement between several sorts of the same
// input.
package verify

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/multierr"

	"github.com/tychoish/listsort/ers"
	"github.com/tychoish/listsort/seq"
)

const (
	ErrWrongOrder    ers.Error = ers.Error("wrong order")
	ErrUnstable      ers.Error = ers.Error("unstable order of equal elements")
	ErrCountMismatch ers.Error = ers.Error("inconsistent number of elements")
	ErrOutOfBounds   ers.Error = ers.Error("number of elements out of bounds")
	ErrDiverged      ers.Error = ers.Error("sorts disagree")
)

// Bounds on the length of the lists used for benchmarking sorts.
const (
	MinLen = 4
	MaxLen = 1<<20 + 20
)

// SortFunc is the shape shared by the sort entry points of the
// listsort package.
type SortFunc[T any] func(counter *uint64, list *seq.List[T], cmp seq.Compare[T])

// Checker validates sorted lists. When either bound is non-zero, the
// length of the list must also lie within [Min, Max].
type Checker[T any] struct {
	Min int
	Max int
}

// DefaultChecker returns a checker that enforces MinLen and MaxLen.
func DefaultChecker[T any]() Checker[T] { return Checker[T]{Min: MinLen, Max: MaxLen} }

// Check reports every way in which the list is not the stable, sorted
// output of a sort of expected elements. A structurally broken list is
// reported on its own, since nothing else about it can be trusted.
// Only the first out of order pair is reported; unstable pairs are
// counted.
func (c Checker[T]) Check(list *seq.List[T], cmp seq.Compare[T], expected int) error {
	if err := list.Validate(); err != nil {
		return err
	}

	var err error
	count := list.Len()
	if count != expected {
		err = multierr.Append(err, fmt.Errorf("%w: have %d, expected %d", ErrCountMismatch, count, expected))
	}
	if (c.Min != 0 || c.Max != 0) && (count < c.Min || count > c.Max) {
		err = multierr.Append(err, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfBounds, count, c.Min, c.Max))
	}

	var prev *seq.Element[T]
	idx, unstable := 0, 0
	ordered := true
	for e := range list.Elements() {
		if prev != nil {
			switch r := cmp(prev.Value(), e.Value()); {
			case r > 0 && ordered:
				ordered = false
				err = multierr.Append(err, fmt.Errorf("%w: %s before %s at position %d", ErrWrongOrder, prev, e, idx))
			case r == 0 && prev.Seq() > e.Seq():
				unstable++
			}
		}
		prev = e
		idx++
	}

	if unstable > 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d pairs", ErrUnstable, unstable))
	}

	return err
}

// Equivalent sorts a separate clone of the list with each of the
// sorts, concurrently, and checks that every output is correct and
// has the same order of sequence tags as the output of the first sort
// that ran. The input list is not modified. Equivalent returns the
// number of unequal comparisons made by each sort, in the order of
// the sorts.
//
// Sorts that have not started when the context is canceled are
// skipped; running sorts are never interrupted.
func Equivalent[T any](ctx context.Context, list *seq.List[T], cmp seq.Compare[T], sorts ...SortFunc[T]) ([]uint64, error) {
	if list == nil {
		return nil, seq.ErrUninitialized
	}
	if len(sorts) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(min(len(sorts), runtime.NumCPU()))
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	outputs := make([]*seq.List[T], len(sorts))
	counters := make([]uint64, len(sorts))
	errs := make([]error, len(sorts))

	wg := &sync.WaitGroup{}
	for idx := range sorts {
		if ctx.Err() != nil {
			errs[idx] = ctx.Err()
			continue
		}

		outputs[idx] = list.Clone()
		wg.Add(1)
		if serr := pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				errs[idx] = ctx.Err()
				return
			}
			errs[idx] = ers.WithRecoverCall(func() { sorts[idx](&counters[idx], outputs[idx], cmp) })
		}); serr != nil {
			wg.Done()
			errs[idx] = serr
		}
	}
	wg.Wait()

	check := Checker[T]{}
	first := -1
	for idx := range sorts {
		if errs[idx] != nil {
			err = multierr.Append(err, ers.Wrapf(errs[idx], "sort %d", idx))
			continue
		}
		if cerr := check.Check(outputs[idx], cmp, list.Len()); cerr != nil {
			err = multierr.Append(err, ers.Wrapf(cerr, "sort %d", idx))
		}

		if first < 0 {
			first = idx
			continue
		}
		if pos, ok := firstDifference(outputs[first].Seqs(), outputs[idx].Seqs()); !ok {
			err = multierr.Append(err, fmt.Errorf("%w: sorts %d and %d differ at position %d", ErrDiverged, first, idx, pos))
		}
	}

	return counters, err
}

func firstDifference(a, b []int) (int, bool) {
	for idx := range min(len(a), len(b)) {
		if a[idx] != b[idx] {
			return idx, false
		}
	}
	if len(a) != len(b) {
		return min(len(a), len(b)), false
	}
	return 0, true
}
