package ecomod

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownModel indicates a registry lookup for a name that has
	// no registered variant.
	ErrUnknownModel = errors.New("ecomod: unknown model")

	// ErrMissingParam indicates a parameter set lacking a name the
	// chosen field requires.
	ErrMissingParam = errors.New("ecomod: missing parameter")

	// ErrStateDim indicates a state vector whose length does not match
	// the field's state names.
	ErrStateDim = errors.New("ecomod: state dimension mismatch")
)

// Validate checks p against f's declared parameter names. A missing
// name is a sweep/model mismatch and must fail fast rather than leak
// zeros into the arithmetic.
func Validate(f Field, p Params) error {
	for _, name := range f.ParamNames() {
		if _, ok := p[name]; !ok {
			return fmt.Errorf("%w: %s requires %q", ErrMissingParam, f.Name(), name)
		}
	}
	return nil
}

// ValidateState checks that x has one entry per state name of f.
func ValidateState(f Field, x State) error {
	if len(x) != len(f.StateNames()) {
		return fmt.Errorf("%w: %s has %d states, got %d",
			ErrStateDim, f.Name(), len(f.StateNames()), len(x))
	}
	return nil
}
