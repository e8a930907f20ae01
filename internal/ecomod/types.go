package ecomod

import "math"

// State holds species abundances in the order given by the owning
// Field's StateNames.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Params maps rate-parameter names to values. Missing names read as
// zero, so callers must run Validate before handing a Params to a Field.
type Params map[string]float64

func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Field is an autonomous vector field dx/dt = f(x; p). Implementations
// must be pure: no mutation of x or p, identical inputs produce
// identical outputs, and any point of R^n is accepted (negative or zero
// abundances included; the arithmetic result is the caller's concern).
type Field interface {
	Name() string
	StateNames() []string
	ParamNames() []string
	Derive(x State, p Params, t float64) State
}
