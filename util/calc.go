package util

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/g25-tools/g25-averager/g25/types"
)

// CalcMean returns the per-dimension arithmetic mean of vectors.
func CalcMean(vectors []types.Vector) (types.Vector, error) {
	var mean types.Vector
	if len(vectors) == 0 {
		return mean, types.ErrEmptyInput.Wrap("no vectors to average")
	}

	// sum accumulates v/n, so |sum| never exceeds the largest |v|.
	var (
		sum   = make([]float64, types.Dims)
		scale = 1 / float64(len(vectors))
	)
	for _, v := range vectors {
		floats.AddScaled(sum, scale, v[:])
	}

	copy(mean[:], sum)
	return mean, nil
}

// CalcStandardDeviation returns the per-dimension population standard
// deviation of vectors around their mean.
func CalcStandardDeviation(vectors []types.Vector) (types.Vector, error) {
	var stdDev types.Vector
	mean, err := CalcMean(vectors)
	if err != nil {
		return stdDev, err
	}

	var (
		variance = make([]float64, types.Dims)
		diff     = make([]float64, types.Dims)
	)
	for _, v := range vectors {
		floats.SubTo(diff, v[:], mean[:])
		floats.Mul(diff, diff)
		floats.Add(variance, diff)
	}
	floats.Scale(1/float64(len(vectors)), variance)

	for i, x := range variance {
		stdDev[i] = math.Sqrt(x)
	}
	return stdDev, nil
}
