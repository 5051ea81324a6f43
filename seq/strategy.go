package seq

import (
	"fmt"

	"github.com/tychoish/listsort/ers"
)

// Extension selects how the timsort engine pads natural runs that are
// shorter than the minimum run length.
type Extension uint8

const (
	// ExtendNone pushes natural runs as they are found.
	ExtendNone Extension = iota
	// ExtendLinear inserts each padding element by walking backward
	// from the tail of the run, two elements at a time. Nearly sorted
	// input costs about one comparison per element.
	ExtendLinear
	// ExtendBinary inserts each padding element at the position found
	// by a binary search over the run: O(log n) comparisons and O(n)
	// pointer moves per element.
	ExtendBinary
)

// MergeStrategy selects how the timsort engine merges two adjacent
// runs. Every strategy is stable and produces the same output; they
// differ in the number of comparisons.
type MergeStrategy uint8

const (
	// MergePlain is the two-pointer merge.
	MergePlain MergeStrategy = iota
	// MergeThresholdGallop gallops once one side has won minGallop
	// times in a row. The threshold adapts over the course of a sort:
	// productive gallops lower it, and leaving gallop mode raises it.
	MergeThresholdGallop
	// MergeExponentialGallop gallops after MinGallop consecutive wins,
	// probing at doubling distances and scanning linearly inside the
	// final bracket, then returns to pairwise merging.
	MergeExponentialGallop
)

// MinGallop is the initial number of consecutive wins from one run
// that triggers galloping.
const MinGallop = 7

var extensionNames = [...]string{
	ExtendNone:   "none",
	ExtendLinear: "linear",
	ExtendBinary: "binary",
}

var mergeNames = [...]string{
	MergePlain:             "plain",
	MergeThresholdGallop:   "threshold-gallop",
	MergeExponentialGallop: "exponential-gallop",
}

func (e Extension) Valid() bool { return int(e) < len(extensionNames) }

func (e Extension) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Extension(%d)", e)
	}
	return extensionNames[e]
}

func (e Extension) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%s: %w", e, ers.ErrInvalidInput)
	}
	return []byte(e.String()), nil
}

func (e *Extension) UnmarshalText(in []byte) error {
	for idx, name := range extensionNames {
		if name == string(in) {
			*e = Extension(idx)
			return nil
		}
	}
	return fmt.Errorf("unknown run extension %q: %w", in, ers.ErrInvalidInput)
}

func (m MergeStrategy) Valid() bool { return int(m) < len(mergeNames) }

func (m MergeStrategy) String() string {
	if !m.Valid() {
		return fmt.Sprintf("MergeStrategy(%d)", m)
	}
	return mergeNames[m]
}

func (m MergeStrategy) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%s: %w", m, ers.ErrInvalidInput)
	}
	return []byte(m.String()), nil
}

func (m *MergeStrategy) UnmarshalText(in []byte) error {
	for idx, name := range mergeNames {
		if name == string(in) {
			*m = MergeStrategy(idx)
			return nil
		}
	}
	return fmt.Errorf("unknown merge strategy %q: %w", in, ers.ErrInvalidInput)
}
