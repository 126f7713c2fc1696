package seam

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of values in a grid.
type Summary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Zeros  int     `json:"zeros"`
}

// Summarize computes distribution statistics over every cell of g.
// An empty grid yields the zero Summary.
func Summarize(g *Grid) Summary {
	if g == nil || g.Empty() {
		return Summary{}
	}

	data := make([]float64, len(g.cells))
	zeros := 0
	for i, v := range g.cells {
		data[i] = float64(v)
		if v == 0 {
			zeros++
		}
	}

	mean, std := stat.MeanStdDev(data, nil)
	if len(data) < 2 || math.IsNaN(std) {
		std = 0
	}
	return Summary{
		Min:    floats.Min(data),
		Max:    floats.Max(data),
		Mean:   mean,
		StdDev: std,
		Zeros:  zeros,
	}
}
