package steady

import (
	"math"

	"github.com/san-kum/ecodyn/internal/ecomod"
)

// blowupLimit is the state norm beyond which a trajectory is treated
// as divergent rather than relaxing.
const blowupLimit = 1e12

// Options bound the relaxation. Horizon is simulated time, not wall
// time; it is the only deadline a row gets. Extinct is the abundance
// below which a converged component counts as a species that dropped
// out, demoting the boundary equilibrium to a failure; a negative
// value disables the check.
type Options struct {
	Horizon float64
	Tol     float64
	Dt      float64
	MinDt   float64
	MaxDt   float64
	Extinct float64
}

func DefaultOptions() Options {
	return Options{
		Horizon: 1000.0,
		Tol:     1e-4,
		Dt:      0.1,
		MinDt:   1e-9,
		MaxDt:   10.0,
		Extinct: 1e-2,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Horizon > 0 {
		d.Horizon = o.Horizon
	}
	if o.Tol > 0 {
		d.Tol = o.Tol
	}
	if o.Dt > 0 {
		d.Dt = o.Dt
	}
	if o.MinDt > 0 {
		d.MinDt = o.MinDt
	}
	if o.MaxDt > 0 {
		d.MaxDt = o.MaxDt
	}
	if o.Extinct != 0 {
		d.Extinct = o.Extinct
	}
	return d
}

// classify demotes boundary equilibria: parameters that drive a
// species below Extinct admit no interior steady state, and the row
// reports the failure sentinel rather than the survivors' densities.
func (o Options) classify(x ecomod.State) Result {
	for _, v := range x {
		if v < o.Extinct {
			return Failed(len(x))
		}
	}
	return Result{State: x, Converged: true}
}

// Result is an equilibrium search outcome. A failed search carries an
// all-NaN state so downstream columns stay shape-compatible.
type Result struct {
	State     ecomod.State
	Converged bool
}

// Failed builds the sentinel result for an n-dimensional state.
func Failed(n int) Result {
	x := make(ecomod.State, n)
	for i := range x {
		x[i] = math.NaN()
	}
	return Result{State: x, Converged: false}
}

// Solve relaxes f from x0 toward an equilibrium, declaring convergence
// when the derivative norm drops below Tol and failure when Horizon
// elapses first, the state leaves the finite floats, or the adaptive
// step underflows MinDt. Numerical infeasibility is absorbed here and
// returned as data, never as an error: large sweeps are expected to
// contain infeasible rows.
func Solve(f ecomod.Field, x0 ecomod.State, p ecomod.Params, opts Options) Result {
	o := opts.withDefaults()
	n := len(x0)

	x := x0.Clone()
	t := 0.0
	dt := o.Dt

	for t < o.Horizon {
		if x.Norm() > blowupLimit {
			return Failed(n)
		}
		dx := f.Derive(x, p, t)
		if !dx.IsValid() {
			return Failed(n)
		}
		if dx.Norm() < o.Tol {
			return o.classify(x)
		}

		// Step-doubling error control: one full step vs two halves.
		x1 := rk4(f, x, p, t, dt)
		xh := rk4(f, x, p, t, dt/2)
		x2 := rk4(f, xh, p, t+dt/2, dt/2)

		if !x2.IsValid() {
			if dt/2 < o.MinDt {
				return Failed(n)
			}
			dt /= 2
			continue
		}

		// A full step that leaves the finite floats carries no usable
		// error estimate; treat it like an oversized one.
		if !x1.IsValid() {
			if dt/2 < o.MinDt {
				return Failed(n)
			}
			dt /= 2
			continue
		}

		errEst := 0.0
		for i := 0; i < n; i++ {
			errEst += (x1[i] - x2[i]) * (x1[i] - x2[i])
		}
		errEst = math.Sqrt(errEst)

		if errEst > o.Tol {
			if dt/2 < o.MinDt {
				return Failed(n)
			}
			dt /= 2
			continue
		}

		x = x2
		t += dt

		if errEst < o.Tol/10 && dt < o.MaxDt {
			dt = math.Min(dt*2, o.MaxDt)
		}
	}

	// Horizon elapsed; accept only if we happen to sit on the
	// equilibrium already.
	dx := f.Derive(x, p, t)
	if dx.IsValid() && dx.Norm() < o.Tol {
		return o.classify(x)
	}
	return Failed(n)
}

func rk4(f ecomod.Field, x ecomod.State, p ecomod.Params, t, dt float64) ecomod.State {
	n := len(x)

	k1 := f.Derive(x, p, t)

	scratch := make(ecomod.State, n)
	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt*0.5*k1[i]
	}
	k2 := f.Derive(scratch, p, t+dt*0.5)

	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt*0.5*k2[i]
	}
	k3 := f.Derive(scratch, p, t+dt*0.5)

	for i := 0; i < n; i++ {
		scratch[i] = x[i] + dt*k3[i]
	}
	k4 := f.Derive(scratch, p, t+dt)

	result := make(ecomod.State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return result
}
