// Package thermal provides Arrhenius temperature scaling for
// biological rate parameters: rate = baseline * exp(-Ea/(k*T)) with k
// the Boltzmann constant in eV/K.
//
// Every forward scaling has a baseline-recovery inverse satisfying the
// round-trip law Scale(Unscale(x, Ea, T), Ea, T) == x, so an observed
// rate at a reference temperature pins down the baseline used across a
// temperature sweep.
package thermal
