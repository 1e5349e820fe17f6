package experiment

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ConfidenceLevel is the two-sided level used for Summary.HalfWidth.
const ConfidenceLevel = 0.95

// Summary captures the spread of one metric across replications.
type Summary struct {
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"std_dev"` // sample standard deviation
	Min       float64 `json:"min"`
	Median    float64 `json:"median"`
	Max       float64 `json:"max"`
	HalfWidth float64 `json:"ci_half_width"` // Student-t half-width at ConfidenceLevel
	Count     int     `json:"count"`
}

// NewSummary computes a Summary from raw values.
// Returns zero-value Summary for empty input; a single value has zero spread.
func NewSummary(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s := Summary{
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Count:  len(sorted),
	}
	if len(sorted) == 1 {
		s.Mean = sorted[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(sorted, nil)
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(len(sorted) - 1)}
	s.HalfWidth = t.Quantile(1-(1-ConfidenceLevel)/2) * s.StdDev / math.Sqrt(float64(len(sorted)))
	return s
}

// Contains reports whether v lies in the confidence interval.
func (s Summary) Contains(v float64) bool {
	return v >= s.Mean-s.HalfWidth && v <= s.Mean+s.HalfWidth
}
