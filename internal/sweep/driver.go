// Package sweep runs batches of independent parameter/initial-state
// rows through the steady-state solver and stability analyzer,
// producing one result row per input row in input order.
package sweep

import (
	"fmt"

	"github.com/san-kum/ecodyn/internal/ecomod"
	"github.com/san-kum/ecodyn/internal/stability"
	"github.com/san-kum/ecodyn/internal/steady"
)

// Row pairs one parameter set with one initial state.
type Row struct {
	Params ecomod.Params
	Init   ecomod.State
}

// ResultRow is the per-row output: the input parameters, the resolved
// equilibrium value per state name (NaN throughout on failure), and
// the eigenvalue summary of the linearization there.
type ResultRow struct {
	Params     ecomod.Params
	States     map[string]float64
	MaxRealEig float64
	MaxImagEig float64
	Converged  bool
}

// validate fails fast on any malformed row before work starts: a
// missing parameter or mismatched state length is a sweep/model bug,
// not an infeasible corner of parameter space.
func validate(f ecomod.Field, rows []Row) error {
	for i, row := range rows {
		if err := ecomod.Validate(f, row.Params); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if err := ecomod.ValidateState(f, row.Init); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

func solveRow(f ecomod.Field, row Row, opts steady.Options) ResultRow {
	res := steady.Solve(f, row.Init, row.Params, opts)
	maxRe, maxIm := stability.Analyze(f, res, row.Params)

	states := make(map[string]float64, len(res.State))
	for i, name := range f.StateNames() {
		states[name] = res.State[i]
	}

	return ResultRow{
		Params:     row.Params.Clone(),
		States:     states,
		MaxRealEig: maxRe,
		MaxImagEig: maxIm,
		Converged:  res.Converged,
	}
}

// Run processes rows sequentially. Row failures surface as NaN entries
// in that row alone; the returned error covers only malformed input,
// detected before any row executes.
func Run(f ecomod.Field, rows []Row, opts steady.Options) ([]ResultRow, error) {
	if err := validate(f, rows); err != nil {
		return nil, err
	}

	out := make([]ResultRow, len(rows))
	for i, row := range rows {
		out[i] = solveRow(f, row, opts)
	}
	return out, nil
}
