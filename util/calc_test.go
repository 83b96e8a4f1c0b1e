package util

import (
	"math"
	"testing"

	"cosmossdk.io/errors"
	"github.com/stretchr/testify/require"

	"github.com/g25-tools/g25-averager/g25/types"
)

func filled(x float64) types.Vector {
	var v types.Vector
	for i := range v {
		v[i] = x
	}
	return v
}

func TestCalcMean(t *testing.T) {
	t.Run("when no vectors are given", func(t *testing.T) {
		_, err := CalcMean(nil)
		require.Error(t, err)
		require.True(t, errors.IsOf(err, types.ErrEmptyInput))
	})

	t.Run("when a single vector is given", func(t *testing.T) {
		v := filled(0.125)
		v[7] = -0.031
		mean, err := CalcMean([]types.Vector{v})
		require.NoError(t, err)
		require.InDeltaSlice(t, v.Slice(), mean.Slice(), 1e-12)
	})

	t.Run("when vectors differ per dimension", func(t *testing.T) {
		a, b, c := filled(1), filled(3), filled(3)
		a[0], b[0], c[0] = 0.1, 0.2, 0.6
		mean, err := CalcMean([]types.Vector{a, b, c})
		require.NoError(t, err)
		require.InDelta(t, 0.3, mean[0], 1e-9)
		for i := 1; i < types.Dims; i++ {
			require.InDelta(t, 7.0/3.0, mean[i], 1e-9)
		}
	})
}

func TestCalcStandardDeviation(t *testing.T) {
	_, err := CalcStandardDeviation(nil)
	require.Error(t, err)

	stdDev, err := CalcStandardDeviation([]types.Vector{filled(1), filled(3)})
	require.NoError(t, err)
	for _, x := range stdDev {
		require.InDelta(t, 1.0, x, 1e-9)
	}

	stdDev, err = CalcStandardDeviation([]types.Vector{filled(0.5)})
	require.NoError(t, err)
	require.Equal(t, types.Vector{}, stdDev)
}

func TestCalcMeanNearMaxFloat(t *testing.T) {
	big := filled(math.MaxFloat64)
	mean, err := CalcMean([]types.Vector{big, big, filled(1e308)})
	require.NoError(t, err)
	require.True(t, mean.IsFinite())
	require.InDelta(t, (2*(math.MaxFloat64/3))+1e308/3, mean[0], 1e295)
}
