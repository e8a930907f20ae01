// Package stability classifies the local behavior of a vector field at
// an equilibrium: a finite-difference Jacobian and the extremes of its
// eigenvalue spectrum. A negative max real part means the equilibrium
// attracts; a nonzero max imaginary part means the approach (or
// departure) oscillates.
package stability

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/ecodyn/internal/ecomod"
	"github.com/san-kum/ecodyn/internal/steady"
)

// DefaultStep is the base finite-difference perturbation, scaled per
// dimension by the state magnitude.
const DefaultStep = 1e-6

// Jacobian evaluates the partial derivatives of f at x by central
// differences, one column per state dimension. step <= 0 selects
// DefaultStep.
func Jacobian(f ecomod.Field, x ecomod.State, p ecomod.Params, step float64) *mat.Dense {
	if step <= 0 {
		step = DefaultStep
	}
	n := len(x)
	j := mat.NewDense(n, n, nil)

	for col := 0; col < n; col++ {
		h := step * math.Max(1, math.Abs(x[col]))

		fwd := x.Clone()
		fwd[col] += h
		bwd := x.Clone()
		bwd[col] -= h

		dfwd := f.Derive(fwd, p, 0)
		dbwd := f.Derive(bwd, p, 0)

		for row := 0; row < n; row++ {
			j.Set(row, col, (dfwd[row]-dbwd[row])/(2*h))
		}
	}
	return j
}

// EigenSummary returns the maximum real part and maximum imaginary
// part across the eigenvalues of j, taken independently: the sign
// convention only needs the largest real part, whichever eigenvalue
// carries it. A failed factorization yields (NaN, NaN).
func EigenSummary(j *mat.Dense) (maxRe, maxIm float64) {
	var eig mat.Eigen
	if !eig.Factorize(j, mat.EigenNone) {
		return math.NaN(), math.NaN()
	}

	maxRe = math.Inf(-1)
	maxIm = math.Inf(-1)
	for _, v := range eig.Values(nil) {
		maxRe = math.Max(maxRe, real(v))
		maxIm = math.Max(maxIm, imag(v))
	}
	return maxRe, maxIm
}

// Analyze computes the eigen summary of f linearized at an equilibrium
// search result. A failed result short-circuits to (NaN, NaN): there
// is no equilibrium to linearize around, and that is a defined outcome
// of a sweep, not an error.
func Analyze(f ecomod.Field, res steady.Result, p ecomod.Params) (maxRe, maxIm float64) {
	if !res.Converged || !res.State.IsValid() {
		return math.NaN(), math.NaN()
	}
	return EigenSummary(Jacobian(f, res.State, p, DefaultStep))
}
