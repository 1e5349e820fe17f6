package sim

import "math"

// UniformSource is a stream of uniform variates on [0, 1).
// *rand.Rand satisfies it.
type UniformSource interface {
	Float64() float64
}

// Exponential draws an exponentially distributed duration with the given
// mean by inversion: -mean * ln(u). Draws outside the open interval (0, 1)
// are discarded and redrawn, so the result is finite and strictly positive.
//
// src is advanced by at least one draw. A non-positive or non-finite mean
// returns an *InvalidConfigError.
func Exponential(mean float64, src UniformSource) (float64, error) {
	if !(mean > 0) || math.IsInf(mean, 1) {
		return 0, &InvalidConfigError{Field: "mean", Value: mean, Reason: "must be a positive finite number"}
	}
	u := src.Float64()
	for !(u > 0 && u < 1) {
		u = src.Float64()
	}
	return -mean * math.Log(u), nil
}
