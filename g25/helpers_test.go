package g25_test

import (
	"strconv"
	"strings"

	"github.com/g25-tools/g25-averager/g25/types"
)

// line builds a coordinate line with every coordinate set to x.
func line(name string, x float64, n int) string {
	fields := make([]string, 0, n+1)
	fields = append(fields, name)
	for i := 0; i < n; i++ {
		fields = append(fields, strconv.FormatFloat(x, 'f', -1, 64))
	}
	return strings.Join(fields, ",")
}

func filled(x float64) types.Vector {
	var v types.Vector
	for i := range v {
		v[i] = x
	}
	return v
}

func sample(name string, x float64) types.Sample {
	return types.Sample{Name: name, Vector: filled(x)}
}
