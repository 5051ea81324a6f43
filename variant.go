package listsort

import (
	"fmt"

	"github.com/tychoish/listsort/ers"
	"github.com/tychoish/listsort/seq"
)

// Variant names one of the sort algorithms provided by the package:
// the kernel's bottom-up list sort, or the timsort engine with a
// fixed run extension and merge strategy.
type Variant uint8

const (
	VariantListSort Variant = iota
	VariantTimsortMerge
	VariantTimsortLinear
	VariantTimsortBinary
	VariantTimsortGallop
	VariantTimsortBinaryGallop
	VariantTimsortExpGallop
	VariantTimsortBinaryExpGallop
)

type preset struct {
	name      string
	extension seq.Extension
	merge     seq.MergeStrategy
}

var presets = [...]preset{
	VariantListSort:               {name: "listsort"},
	VariantTimsortMerge:           {name: "timsort_merge"},
	VariantTimsortLinear:          {name: "timsort_linear", extension: seq.ExtendLinear},
	VariantTimsortBinary:          {name: "timsort_binary", extension: seq.ExtendBinary},
	VariantTimsortGallop:          {name: "timsort_gallop", extension: seq.ExtendLinear, merge: seq.MergeThresholdGallop},
	VariantTimsortBinaryGallop:    {name: "timsort_b_gallop", extension: seq.ExtendBinary, merge: seq.MergeThresholdGallop},
	VariantTimsortExpGallop:       {name: "timsort_exp_gallop", extension: seq.ExtendLinear, merge: seq.MergeExponentialGallop},
	VariantTimsortBinaryExpGallop: {name: "timsort_b_exp_gallop", extension: seq.ExtendBinary, merge: seq.MergeExponentialGallop},
}

// Variants returns every variant, in the order of their values.
func Variants() []Variant {
	out := make([]Variant, len(presets))
	for idx := range presets {
		out[idx] = Variant(idx)
	}
	return out
}

// ParseVariant resolves a variant by name. Unknown names produce an
// error rooted in ers.ErrInvalidInput.
func ParseVariant(name string) (Variant, error) {
	for idx := range presets {
		if presets[idx].name == name {
			return Variant(idx), nil
		}
	}
	return 0, fmt.Errorf("unknown sort variant %q: %w", name, ers.ErrInvalidInput)
}

func (v Variant) Valid() bool { return int(v) < len(presets) }

// IsTimsort is true for every variant that runs the timsort engine.
func (v Variant) IsTimsort() bool { return v.Valid() && v != VariantListSort }

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", v)
	}
	return presets[v].name
}

// Extension reports the run extension of the variant's preset.
func (v Variant) Extension() seq.Extension { return presets[v].extension }

// Merge reports the merge strategy of the variant's preset.
func (v Variant) Merge() seq.MergeStrategy { return presets[v].merge }

func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%s: %w", v, ers.ErrInvalidInput)
	}
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(in []byte) error {
	parsed, err := ParseVariant(string(in))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
