package ambiguity

import (
	"math"
	"math/cmplx"

	"github.com/iburimskiy/waf-visualization/internal/config"
	"gonum.org/v1/gonum/mat"
)

// Floor is the smallest magnitude passed to a logarithm.
const Floor = config.MagnitudeFloor

// Magnitude returns the elementwise absolute value of z.
func Magnitude(z *mat.CDense) *mat.Dense {
	r, c := z.Dims()
	m := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, cmplx.Abs(z.At(i, j)))
		}
	}
	return m
}

// MagnitudeAsComplex lifts a real matrix into the complex plane with zero
// imaginary part.
func MagnitudeAsComplex(m mat.Matrix) *mat.CDense {
	r, c := m.Dims()
	z := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			z.Set(i, j, complex(m.At(i, j), 0))
		}
	}
	return z
}

// Clamp returns a copy of m with every value below Floor, and every NaN,
// replaced by Floor.
func Clamp(m mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return clamp(v)
	}, m)
	return &out
}

func clamp(v float64) float64 {
	if !(v >= Floor) {
		return Floor
	}
	return v
}

// LogMagnitude returns log10 of the floored magnitude of z.
func LogMagnitude(z *mat.CDense) *mat.Dense {
	m := Clamp(Magnitude(z))
	m.Apply(func(_, _ int, v float64) float64 {
		return math.Log10(v)
	}, m)
	return m
}

// DBMagnitude returns the floored magnitude of z in decibels,
// 20·log10(max(|z|, Floor)).
func DBMagnitude(z *mat.CDense) *mat.Dense {
	m := LogMagnitude(z)
	m.Scale(20, m)
	return m
}

// Range returns the smallest and largest finite values of m.
func Range(m mat.Matrix) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}
