// Package ambiguity generates the synthetic delay/scale-rate sample used by
// the gallery and derives the magnitude views each plot encodes.
//
// The sample is
//
//	waf(τ, α) = exp(-(τ² + α²)) · cos(2π·τ·α)
//
// evaluated on 100 delays in [-2, 2] and 50 scale rates in [-1, 1]. Rows
// of every matrix follow the scale axis and columns follow the delay axis.
//
// Log and dB views clamp magnitudes below Floor so that exact zeros map
// to finite values (DBMagnitude of 0 is -200 dB).
package ambiguity
