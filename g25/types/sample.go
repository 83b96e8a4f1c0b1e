package types

import (
	"fmt"
	"math"
)

// Dims is the number of coordinates in a G25 vector.
const Dims = 25

// Vector is a single G25 coordinate set.
type Vector [Dims]float64

// Slice returns the coordinates as a slice sharing no memory with v.
func (v Vector) Slice() []float64 {
	s := make([]float64, Dims)
	copy(s, v[:])
	return s
}

// NewVector copies values into a Vector. It fails unless exactly Dims
// values are given.
func NewVector(values []float64) (Vector, error) {
	var v Vector
	if len(values) != Dims {
		return v, fmt.Errorf("expected %d coordinates, got %d", Dims, len(values))
	}
	copy(v[:], values)
	return v, nil
}

// IsFinite reports whether no coordinate is NaN or infinite.
func (v Vector) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Sample defines one named coordinate set read from an input file.
type Sample struct {
	Name   string
	Vector Vector
}
