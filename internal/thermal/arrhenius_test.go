package thermal

import (
	"math"
	"testing"
)

func TestCelsiusToKelvin(t *testing.T) {
	if got := CelsiusToKelvin(0); got != 273.15 {
		t.Errorf("expected 273.15, got %f", got)
	}
	if got := CelsiusToKelvin(20); math.Abs(got-293.15) > 1e-12 {
		t.Errorf("expected 293.15, got %f", got)
	}
}

func TestScaleUnscaleRoundTrip(t *testing.T) {
	baselines := []float64{1e-3, 0.05, 1.0, 42.0}
	energies := []float64{0.0, 0.32, 0.65, 1.2}
	kelvins := []float64{278.15, 293.15, 310.0}

	for _, b := range baselines {
		for _, ea := range energies {
			for _, kelvin := range kelvins {
				got := Scale(Unscale(b, ea, kelvin), ea, kelvin)
				if math.Abs(got-b)/b > 1e-12 {
					t.Errorf("round trip b=%g ea=%g T=%g: got %g", b, ea, kelvin, got)
				}
			}
		}
	}
}

func TestScaleMonotoneInTemperature(t *testing.T) {
	prev := Scale(1.0, 0.65, 278.15)
	for kelvin := 279.15; kelvin <= 308.15; kelvin++ {
		cur := Scale(1.0, 0.65, kelvin)
		if cur <= prev {
			t.Fatalf("expected strict increase at T=%f: %g <= %g", kelvin, cur, prev)
		}
		prev = cur
	}
}

func TestScaleZeroEnergy(t *testing.T) {
	// Zero activation energy means no temperature dependence.
	if got := Scale(3.0, 0, 300); got != 3.0 {
		t.Errorf("expected 3.0, got %g", got)
	}
}

func TestCarryingCapacityUsesEnergyDifference(t *testing.T) {
	// Equal metabolic and supply energies cancel.
	if got := CarryingCapacity(10.0, 0.65, 0.65, 293.15); got != 10.0 {
		t.Errorf("expected 10.0, got %g", got)
	}

	got := CarryingCapacity(10.0, 0.65, 0.32, 293.15)
	want := Unscale(10.0, 0.33, 293.15)
	if math.Abs(got-want)/want > 1e-12 {
		t.Errorf("expected %g, got %g", want, got)
	}
}

func TestCarryingCapacityFallsWithWarming(t *testing.T) {
	// Metabolic demand outpacing resource supply shrinks K as the
	// system warms.
	prev := CarryingCapacity(10.0, 0.65, 0.32, 278.15)
	for kelvin := 279.15; kelvin <= 308.15; kelvin++ {
		cur := CarryingCapacity(10.0, 0.65, 0.32, kelvin)
		if cur >= prev {
			t.Fatalf("expected strict decrease at T=%f: %g >= %g", kelvin, cur, prev)
		}
		prev = cur
	}
}

func TestCarryingBaselineRoundTrip(t *testing.T) {
	b := CarryingBaseline(10.0, 0.65, 0.32, 293.15)
	got := CarryingCapacity(b, 0.65, 0.32, 293.15)
	if math.Abs(got-10.0) > 1e-9 {
		t.Errorf("expected 10.0, got %g", got)
	}
}

func TestAttackRoundTrip(t *testing.T) {
	const (
		vC, vR   = 1.0, 0.2
		eaC, eaR = 0.46, 0.46
		tC, tR   = 293.15, 293.15
	)
	b := AttackBaseline(0.1, vC, vR, eaC, eaR, tC, tR)
	got := AttackRate(b, vC, vR, eaC, eaR, tC, tR)
	if math.Abs(got-0.1) > 1e-12 {
		t.Errorf("expected 0.1, got %g", got)
	}
}

func TestAttackRateMonotoneInTemperature(t *testing.T) {
	prev := AttackRate(0.1, 1.0, 0.2, 0.46, 0.46, 278.15, 278.15)
	for kelvin := 279.15; kelvin <= 308.15; kelvin++ {
		cur := AttackRate(0.1, 1.0, 0.2, 0.46, 0.46, kelvin, kelvin)
		if cur <= prev {
			t.Fatalf("expected strict increase at T=%f", kelvin)
		}
		prev = cur
	}
}
