package thermal

import "math"

// Boltzmann is the Boltzmann constant in eV/K.
const Boltzmann = 8.6173303e-5

// CelsiusToKelvin converts a Celsius temperature to Kelvin.
func CelsiusToKelvin(c float64) float64 { return c + 273.15 }

// Scale applies Arrhenius temperature scaling to a baseline rate:
// baseline * exp(-Ea/(k*T)). A zero or negative T yields a degenerate
// floating-point result rather than an error; keeping T physical is
// the caller's responsibility.
func Scale(baseline, ea, kelvin float64) float64 {
	return baseline * math.Exp(-ea/(Boltzmann*kelvin))
}

// Unscale recovers the temperature-independent baseline from a rate
// observed at the given temperature. Inverse of Scale:
// Scale(Unscale(x, ea, T), ea, T) == x.
func Unscale(rate, ea, kelvin float64) float64 {
	return rate * math.Exp(ea/(Boltzmann*kelvin))
}

// GrowthRate scales a baseline intrinsic growth rate to temperature.
func GrowthRate(baseline, ea, kelvin float64) float64 {
	return Scale(baseline, ea, kelvin)
}

// GrowthBaseline recovers the growth baseline from a rate observed at
// a reference temperature.
func GrowthBaseline(rate, ea, kelvin float64) float64 {
	return Unscale(rate, ea, kelvin)
}

// Mortality scales a baseline mortality rate to temperature.
func Mortality(baseline, ea, kelvin float64) float64 {
	return Scale(baseline, ea, kelvin)
}

// MortalityBaseline recovers the mortality baseline from a rate
// observed at a reference temperature.
func MortalityBaseline(rate, ea, kelvin float64) float64 {
	return Unscale(rate, ea, kelvin)
}

// CarryingCapacity scales carrying capacity to temperature. K is the
// ratio of resource supply to per-capita metabolic demand, so it
// carries the inverted exponent, exp(+(Em-Es)/(k*T)): K falls with
// warming when metabolism outpaces supply.
func CarryingCapacity(baseline, eaMetabolic, eaSupply, kelvin float64) float64 {
	return Unscale(baseline, eaMetabolic-eaSupply, kelvin)
}

// CarryingBaseline recovers the carrying-capacity baseline from a
// value observed at a reference temperature. Inverse of
// CarryingCapacity.
func CarryingBaseline(capacity, eaMetabolic, eaSupply, kelvin float64) float64 {
	return Scale(capacity, eaMetabolic-eaSupply, kelvin)
}

// velocityNorm is the Euclidean norm of the consumer and resource body
// velocities, each Arrhenius-scaled; squaring a velocity doubles its
// activation energy in the exponent.
func velocityNorm(vC, vR, eaC, eaR, kelvinC, kelvinR float64) float64 {
	return math.Sqrt(vC*vC*math.Exp(-2*eaC/(Boltzmann*kelvinC)) +
		vR*vR*math.Exp(-2*eaR/(Boltzmann*kelvinR)))
}

// AttackRate scales a baseline attack rate to temperature. Encounter
// rate grows with the relative speed of consumer and resource, so the
// baseline is multiplied by the norm of the two scaled velocities.
func AttackRate(baseline, vC, vR, eaC, eaR, kelvinC, kelvinR float64) float64 {
	return baseline * velocityNorm(vC, vR, eaC, eaR, kelvinC, kelvinR)
}

// AttackBaseline recovers the attack-rate baseline from a rate
// observed at reference temperatures. Inverse of AttackRate.
func AttackBaseline(rate, vC, vR, eaC, eaR, kelvinC, kelvinR float64) float64 {
	return rate / velocityNorm(vC, vR, eaC, eaR, kelvinC, kelvinR)
}
