package seq

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SortOptions configures a single sort invocation. The zero value
// sorts with natural runs and plain merges, counts nothing, and logs
// nothing.
type SortOptions struct {
	Extension Extension
	Merge     MergeStrategy
	// MinGallop is the initial gallop threshold for the galloping
	// merge strategies. Values less than 1 use MinGallop.
	MinGallop int
	// Counter, when non-nil, is incremented once for every
	// comparison that does not report equality.
	Counter *uint64
	// Logger receives a debug summary of every sort, and a debug
	// event for every merge. Nil loggers are replaced with a no-op
	// logger.
	Logger *zap.Logger
}

// SortStats reports the work done by one sort invocation.
type SortStats struct {
	Length      int
	MinRun      int
	Runs        int
	Merges      int
	Gallops     int
	MaxDepth    int
	Comparisons uint64
}

func (s SortStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("length", s.Length)
	enc.AddInt("minrun", s.MinRun)
	enc.AddInt("runs", s.Runs)
	enc.AddInt("merges", s.Merges)
	enc.AddInt("gallops", s.Gallops)
	enc.AddInt("max_depth", s.MaxDepth)
	enc.AddUint64("comparisons", s.Comparisons)
	return nil
}

// sorter is the state of one sort invocation. Nothing in it outlives
// the call, which keeps the engines reentrant.
type sorter[T any] struct {
	cmp       Compare[T]
	counter   *uint64
	logger    *zap.Logger
	minrun    int
	minGallop int
	trigger   int
	stack     mergeStack[T]
	stats     SortStats

	extend func(r run[T], rest *Element[T]) (run[T], *Element[T])
	merge  func(a, b *Element[T]) *Element[T]
}

func newSorter[T any](cmp Compare[T], opts SortOptions) *sorter[T] {
	s := &sorter[T]{
		cmp:       cmp,
		counter:   opts.Counter,
		logger:    opts.Logger,
		minGallop: opts.MinGallop,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.minGallop < 1 {
		s.minGallop = MinGallop
	}
	s.trigger = s.minGallop

	switch opts.Extension {
	case ExtendLinear:
		s.extend = s.extendLinear
	case ExtendBinary:
		s.extend = s.extendBinary
	default:
		s.extend = nil
	}

	switch opts.Merge {
	case MergeThresholdGallop:
		s.merge = s.mergeThresholdGallop
	case MergeExponentialGallop:
		s.merge = s.mergeExponentialGallop
	default:
		s.merge = s.mergePlain
	}

	return s
}

func (s *sorter[T]) compare(a, b *Element[T]) int {
	s.stats.Comparisons++
	r := s.cmp(a.item, b.item)
	if r != 0 && s.counter != nil {
		*s.counter++
	}
	return r
}

// Timsort sorts the list in place with the adaptive run-merging sort
// described by the options, and reports the work it did. The sort is
// stable: elements with equal keys keep their relative order.
//
// The elements themselves are never copied or reallocated; only their
// links change. The list must not be used by any other goroutine
// until Timsort returns.
func Timsort[T any](list *List[T], cmp Compare[T], opts SortOptions) SortStats {
	s := newSorter(cmp, opts)
	s.timsort(list)
	s.log("timsort", opts)
	return s.stats
}

func (s *sorter[T]) timsort(list *List[T]) {
	s.stats.Length = list.Len()
	s.minrun = MinRun(list.Len())
	s.stats.MinRun = s.minrun

	if list.Len() < 2 {
		return
	}

	root := list.root
	rest := detach(root)

	for rest != nil {
		var r run[T]
		r, rest = s.findRun(rest)
		s.push(r)
		s.collapse()
	}

	s.forceCollapse()
	s.finalize(root)
}

func (s *sorter[T]) log(algo string, opts SortOptions) {
	if ce := s.logger.Check(zap.DebugLevel, "sorted list"); ce != nil {
		ce.Write(
			zap.String("algorithm", algo),
			zap.Stringer("extension", opts.Extension),
			zap.Stringer("merge", opts.Merge),
			zap.Int("final_min_gallop", s.minGallop),
			zap.Object("stats", s.stats),
		)
	}
}
