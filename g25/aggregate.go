package g25

import (
	"github.com/g25-tools/g25-averager/g25/types"
	"github.com/g25-tools/g25-averager/util"
)

type (
	// GroupMean is the average of every sample sharing one group key.
	GroupMean struct {
		Key    string
		Count  int
		Vector types.Vector
	}

	// Result is the outcome of averaging a set of samples.
	Result struct {
		Mode    types.Mode
		Samples int
		// Groups is populated in grouped mode only, in order of first appearance.
		Groups []GroupMean
		Vector types.Vector
		// Spread is the per-dimension standard deviation of the vectors that
		// were averaged into Vector: samples in simple mode, group means in
		// grouped mode.
		Spread types.Vector
	}
)

// Average combines samples according to mode.
func Average(samples []types.Sample, mode types.Mode) (Result, error) {
	switch mode {
	case types.ModeSimple:
		return AverageSimple(samples)
	case types.ModeGrouped:
		return AverageGrouped(samples)
	default:
		return Result{}, types.ErrUsage.Wrapf("unknown mode %q", mode)
	}
}

// AverageSimple weights every sample equally.
func AverageSimple(samples []types.Sample) (Result, error) {
	return combine(types.ModeSimple, len(samples), sampleVectors(samples), nil)
}

// AverageGrouped averages each group, then averages the group means with
// equal weight so that heavily sampled groups do not dominate the result.
func AverageGrouped(samples []types.Sample) (Result, error) {
	groups := Partition(samples)

	var (
		means   = make([]GroupMean, 0, len(groups))
		vectors = make([]types.Vector, 0, len(groups))
	)
	for _, g := range groups {
		mean, err := util.CalcMean(g.Vectors())
		if err != nil {
			return Result{}, err
		}
		means = append(means, GroupMean{Key: g.Key, Count: len(g.Samples), Vector: mean})
		vectors = append(vectors, mean)
	}

	return combine(types.ModeGrouped, len(samples), vectors, means)
}

func combine(mode types.Mode, n int, vectors []types.Vector, groups []GroupMean) (Result, error) {
	if len(vectors) == 0 {
		return Result{}, types.ErrEmptyInput.Wrapf("nothing to average in %s mode", mode)
	}

	mean, err := util.CalcMean(vectors)
	if err != nil {
		return Result{}, err
	}
	if !mean.IsFinite() {
		return Result{}, types.ErrParse.Wrapf("%s mean is not finite", mode)
	}
	spread, err := util.CalcStandardDeviation(vectors)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Mode:    mode,
		Samples: n,
		Groups:  groups,
		Vector:  mean,
		Spread:  spread,
	}, nil
}
