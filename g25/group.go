package g25

import (
	"strings"

	"github.com/g25-tools/g25-averager/g25/types"
)

// GroupKey derives the population label of a sample name: the text before
// the first ':' if present, otherwise the text before the first '_',
// otherwise the whole name.
//
//	"German_Hamburg:GSM1031510" -> "German_Hamburg"
//	"Ukrainian_Lviv"            -> "Ukrainian"
func GroupKey(name string) string {
	if before, _, ok := strings.Cut(name, ":"); ok {
		return strings.TrimSpace(before)
	}
	if before, _, ok := strings.Cut(name, "_"); ok {
		return strings.TrimSpace(before)
	}
	return strings.TrimSpace(name)
}

// Group is the set of samples sharing a group key.
type Group struct {
	Key     string
	Samples []types.Sample
}

// Partition splits samples by GroupKey. Groups are returned in order of
// first appearance.
func Partition(samples []types.Sample) []Group {
	var (
		groups []Group
		index  = make(map[string]int)
	)

	for _, s := range samples {
		key := GroupKey(s.Name)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Samples = append(groups[i].Samples, s)
	}

	return groups
}

// Vectors returns the coordinates of every member of g.
func (g Group) Vectors() []types.Vector {
	return sampleVectors(g.Samples)
}

func sampleVectors(samples []types.Sample) []types.Vector {
	vectors := make([]types.Vector, len(samples))
	for i, s := range samples {
		vectors[i] = s.Vector
	}
	return vectors
}
