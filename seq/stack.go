package seq

import (
	"go.uber.org/zap"

	"github.com/tychoish/listsort/ers"
)

// mergeStack holds the runs that have been found but not yet merged,
// oldest first. After every collapse, counting from the top, each run
// is longer than the run above it, and longer than the two runs above
// it combined, which keeps the depth of the stack logarithmic in the
// length of the input and the total merge cost O(n log n).
type mergeStack[T any] struct {
	runs []run[T]
}

func (st *mergeStack[T]) depth() int     { return len(st.runs) }
func (st *mergeStack[T]) size(i int) int { return st.runs[i].length }

func (s *sorter[T]) push(r run[T]) {
	s.stack.runs = append(s.stack.runs, r)
	s.stats.Runs++
	s.stats.MaxDepth = max(s.stats.MaxDepth, s.stack.depth())
}

// mergeAt merges the runs at positions i and i+1 of the stack. The run
// at i is older (closer to the front of the input) and is passed as
// the first argument of the merge, which keeps the merge stable.
func (s *sorter[T]) mergeAt(i int) {
	st := &s.stack
	ers.Invariant(i >= 0 && i+1 < st.depth(), "merge at ", i, " with stack depth ", st.depth())

	a, b := st.runs[i], st.runs[i+1]
	if ce := s.logger.Check(zap.DebugLevel, "merge runs"); ce != nil {
		ce.Write(zap.Int("position", i), zap.Int("left", a.length), zap.Int("right", b.length))
	}

	st.runs[i] = run[T]{head: s.merge(a.head, b.head), length: a.length + b.length}
	st.runs = append(st.runs[:i+1], st.runs[i+2:]...)
	s.stats.Merges++
}

// collapse merges runs at the top of the stack until the length
// invariants hold again. When the run below the top two is too short,
// the smaller of its two neighbouring pairs is merged first.
func (s *sorter[T]) collapse() {
	st := &s.stack
	for n := st.depth(); n >= 2; n = st.depth() {
		switch {
		case n >= 3 && st.size(n-3) <= st.size(n-2)+st.size(n-1),
			n >= 4 && st.size(n-4) <= st.size(n-3)+st.size(n-2):
			if st.size(n-3) < st.size(n-1) {
				s.mergeAt(n - 3)
			} else {
				s.mergeAt(n - 2)
			}
		case st.size(n-2) <= st.size(n-1):
			s.mergeAt(n - 2)
		default:
			return
		}
	}
}

// forceCollapse merges runs at the end of input until at most two
// remain, preferring the smaller neighbour of the top run. The
// finalizer performs the last merge.
func (s *sorter[T]) forceCollapse() {
	st := &s.stack
	for n := st.depth(); n >= 3; n = st.depth() {
		if st.size(n-3) < st.size(n-1) {
			s.mergeAt(n - 3)
		} else {
			s.mergeAt(n - 2)
		}
	}
}

// finalize performs the closing merge of the (at most two) remaining
// runs, writing prev links as it goes, and closes the circle through
// root. A single remaining run is relinked without merging.
func (s *sorter[T]) finalize(root *Element[T]) {
	st := &s.stack
	ers.Invariant(st.depth() == 1 || st.depth() == 2, "finalize with stack depth ", st.depth())

	if st.depth() == 1 {
		relink(root, root, st.runs[0].head)
	} else {
		s.stats.Merges++
		s.mergeFinal(root, st.runs[0].head, st.runs[1].head)
	}
	st.runs = st.runs[:0]
}
