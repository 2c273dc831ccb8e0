package ambiguity

import (
	"math"

	"github.com/iburimskiy/waf-visualization/internal/config"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sample is one freshly generated parameter grid together with the complex
// sample array evaluated on it.
type Sample struct {
	Delay  []float64   // τ, increasing
	Scale  []float64   // α, increasing
	Values *mat.CDense // len(Scale) × len(Delay)
}

// Generate evaluates the synthetic function on the fixed delay and scale
// grids.
func Generate() Sample {
	delay := Linspace(config.DelayMin, config.DelayMax, config.DelayPoints)
	scale := Linspace(config.ScaleMin, config.ScaleMax, config.ScalePoints)
	tau, alpha := Meshgrid(delay, scale)

	rows, cols := tau.Dims()
	values := mat.NewCDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			values.Set(i, j, complex(Eval(tau.At(i, j), alpha.At(i, j)), 0))
		}
	}
	return Sample{Delay: delay, Scale: scale, Values: values}
}

// Eval is the synthetic function at a single (τ, α) point.
func Eval(tau, alpha float64) float64 {
	return math.Exp(-(tau*tau + alpha*alpha)) * math.Cos(2*math.Pi*tau*alpha)
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// Both endpoints are exact. n < 2 yields lo alone (or nothing for n <= 0).
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	out := floats.Span(make([]float64, n), lo, hi)
	out[n-1] = hi
	return out
}

// Meshgrid broadcasts delay along columns and scale along rows. Both
// returned matrices are len(scale) × len(delay).
func Meshgrid(delay, scale []float64) (tau, alpha *mat.Dense) {
	rows, cols := len(scale), len(delay)
	tau = mat.NewDense(rows, cols, nil)
	alpha = mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		tau.SetRow(i, delay)
		for j := 0; j < cols; j++ {
			alpha.Set(i, j, scale[i])
		}
	}
	return tau, alpha
}

// Extent returns the (xmin, xmax, ymin, ymax) box covered by the sample.
func (s Sample) Extent() (xmin, xmax, ymin, ymax float64) {
	return s.Delay[0], s.Delay[len(s.Delay)-1], s.Scale[0], s.Scale[len(s.Scale)-1]
}
