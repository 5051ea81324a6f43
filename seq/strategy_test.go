package seq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tychoish/listsort/ers"
)

func TestStrategyNames(t *testing.T) {
	t.Run("Extension", func(t *testing.T) {
		for _, ext := range []Extension{ExtendNone, ExtendLinear, ExtendBinary} {
			out, err := ext.MarshalText()
			require.NoError(t, err)

			var parsed Extension
			require.NoError(t, parsed.UnmarshalText(out))
			require.Equal(t, ext, parsed)
		}

		ext := ExtendBinary
		require.ErrorIs(t, ext.UnmarshalText([]byte("quadratic")), ers.ErrInvalidInput)
		require.Equal(t, ExtendBinary, ext)

		require.False(t, Extension(3).Valid())
		require.Equal(t, "Extension(3)", Extension(3).String())
		_, err := Extension(3).MarshalText()
		require.ErrorIs(t, err, ers.ErrInvalidInput)
	})
	t.Run("Merge", func(t *testing.T) {
		for _, m := range []MergeStrategy{MergePlain, MergeThresholdGallop, MergeExponentialGallop} {
			out, err := m.MarshalText()
			require.NoError(t, err)

			var parsed MergeStrategy
			require.NoError(t, parsed.UnmarshalText(out))
			require.Equal(t, m, parsed)
		}
		require.Equal(t, "threshold-gallop", MergeThresholdGallop.String())

		var m MergeStrategy
		require.ErrorIs(t, m.UnmarshalText([]byte("gallop")), ers.ErrInvalidInput)
		require.Equal(t, "MergeStrategy(7)", MergeStrategy(7).String())
		_, err := MergeStrategy(7).MarshalText()
		require.ErrorIs(t, err, ers.ErrInvalidInput)
	})
}
