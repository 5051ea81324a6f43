// Package gen builds the sample inputs used to benchmark list sorts:
// the worst case of a bottom-up merge sort, nearly sorted lists with a
// few random values, lists of duplicates, and random lists.
package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/tychoish/listsort/ers"
	"github.com/tychoish/listsort/seq"
	"github.com/tychoish/listsort/verify"
)

// Source is a seedable source of random numbers. *rand.PCG
// satisfies it.
type Source interface {
	Seed(a, b uint64)
	Uint64() uint64
}

const (
	seedA = 314159265
	seedB = 1618033989
)

// NewSource returns a PCG source with the fixed seed used for all
// benchmark inputs.
func NewSource() Source { return rand.NewPCG(seedA, seedB) }

// Reset reseeds the source with the fixed seed, so that the next
// input built from it is the same as the first one built from a new
// source.
func Reset(src Source) { src.Seed(seedA, seedB) }

// Case names a kind of benchmark input.
type Case uint8

const (
	// Worst is the worst case permutation of 0, 1, ..., n-1.
	Worst Case = iota
	// RandomThree is 0, 1, ..., n-1 with three values replaced by
	// random ones.
	RandomThree
	// RandomTail is 0, 1, ..., n-1 with the last ten values replaced
	// by random ones.
	RandomTail
	// RandomPercent is 0, 1, ..., n-1 with about one in a hundred
	// values replaced by random ones.
	RandomPercent
	// Duplicates draws every value from a set of four.
	Duplicates
	// Random draws every value at random.
	Random
)

var caseNames = [...]string{
	Worst:         "worst",
	RandomThree:   "random_3",
	RandomTail:    "random_last_10",
	RandomPercent: "random_1_percent",
	Duplicates:    "duplicate",
	Random:        "random",
}

// Cases returns every case, in the order of their values.
func Cases() []Case {
	out := make([]Case, len(caseNames))
	for idx := range caseNames {
		out[idx] = Case(idx)
	}
	return out
}

func (c Case) Valid() bool { return int(c) < len(caseNames) }

func (c Case) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Case(%d)", c)
	}
	return caseNames[c]
}

func (c Case) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%s: %w", c, ers.ErrInvalidInput)
	}
	return []byte(c.String()), nil
}

func (c *Case) UnmarshalText(in []byte) error {
	for idx, name := range caseNames {
		if name == string(in) {
			*c = Case(idx)
			return nil
		}
	}
	return fmt.Errorf("unknown input case %q: %w", in, ers.ErrInvalidInput)
}

// Build returns a list of n values of the case, drawing random values
// from src. Random values lie in [0, verify.MaxLen), as does n. Every
// element is tagged with its position.
func (c Case) Build(n int, src Source) (*seq.List[int], error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%s: %w", c, ers.ErrInvalidInput)
	}
	if n < 0 {
		return nil, fmt.Errorf("negative length %d: %w", n, ers.ErrInvalidInput)
	}
	if n > verify.MaxLen {
		return nil, fmt.Errorf("length %d over %d: %w", n, verify.MaxLen, ers.ErrLimitExceeded)
	}

	rng := rand.New(src)
	random := func() int { return rng.IntN(verify.MaxLen) }
	list := &seq.List[int]{}

	switch c {
	case Worst:
		for i := 0; i < n; i++ {
			list.PushBack(i)
		}
		seq.WorstCase(list)
	case RandomThree, RandomPercent:
		// each random value lands at a random offset within the
		// next section of the list
		count, section := 3, max(1, n/3)
		if c == RandomPercent {
			count, section = n/100, 100
		}

		next := rng.IntN(section)
		for i, cnt := 0, 0; i < n; i, cnt = i+1, cnt+1 {
			if cnt == next && count > 0 {
				list.PushBack(random())
				next = rng.IntN(section)
				cnt = -1
				count--
				continue
			}
			list.PushBack(i)
		}
	case RandomTail:
		for i := 0; i < n; i++ {
			if i < n-10 {
				list.PushBack(i)
			} else {
				list.PushBack(random())
			}
		}
	case Duplicates:
		dups := [4]int{12300, 12301, 12302, 12303}
		for i := 0; i < n; i++ {
			list.PushBack(dups[rng.IntN(len(dups))])
		}
	case Random:
		for i := 0; i < n; i++ {
			list.PushBack(random())
		}
	}

	return list, nil
}
