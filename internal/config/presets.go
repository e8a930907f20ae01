package config

// Presets are ready-made sweeps per model variant. Activation energies
// follow the usual metabolic-theory values: ~0.32 eV for photosynthesis
// -limited processes, ~0.65 eV for respiration-limited ones.
var Presets = map[string]map[string]*Config{
	"rosmac": {
		// Neutral forcing: every rate shares one activation energy, so
		// temperature only rescales time. The equilibrium itself is
		// invariant and every row stays feasible.
		"neutral": {
			Model:  "rosmac",
			Solver: SolverConfig{Horizon: DefaultHorizon, Tol: DefaultTol},
			Thermal: ThermalConfig{
				RefC: 20, MinC: 5, MaxC: 30, StepC: 1,
				Er: 0.46, Em: 0.46, EKMetabolic: 0.46, EKSupply: 0.46,
				EvConsumer: 0.46, EvResource: 0.46,
				VConsumer: 1.0, VResource: 0.2,
				Growth: 1.0, Capacity: 10.0, Attack: 0.1, Mortality: 0.05,
			},
			Fixed: map[string]float64{"e": 0.5},
			Init:  map[string]float64{"R": 5, "C": 1},
		},
		// Mismatched energies: mortality outruns attack with warming
		// while K shrinks, so the break-even density crosses K partway
		// up the sweep and the consumer starves out at the hot end.
		"mismatch": {
			Model:  "rosmac",
			Solver: SolverConfig{Horizon: DefaultHorizon, Tol: DefaultTol},
			Thermal: ThermalConfig{
				RefC: 20, MinC: 5, MaxC: 30, StepC: 1,
				Er: 0.32, Em: 0.85, EKMetabolic: 0.65, EKSupply: 0.32,
				EvConsumer: 0.46, EvResource: 0.46,
				VConsumer: 1.0, VResource: 0.2,
				Growth: 1.0, Capacity: 10.0, Attack: 0.1, Mortality: 0.3,
			},
			Fixed: map[string]float64{"e": 0.5},
			Init:  map[string]float64{"R": 5, "C": 1},
		},
	},
	"rosmac2": {
		"neutral": {
			Model:  "rosmac2",
			Solver: SolverConfig{Horizon: DefaultHorizon, Tol: DefaultTol},
			Thermal: ThermalConfig{
				RefC: 20, MinC: 5, MaxC: 30, StepC: 1,
				Er: 0.46, Em: 0.46, EKMetabolic: 0.46, EKSupply: 0.46,
				EvConsumer: 0.46, EvResource: 0.46,
				VConsumer: 1.0, VResource: 0.2,
				Growth: 1.0, Capacity: 10.0, Attack: 0.1, Mortality: 0.05,
			},
			Fixed: map[string]float64{"e": 0.5, "h": 0.5},
			Init:  map[string]float64{"R": 5, "C": 1},
		},
	},
	"tworesource": {
		"balanced": {
			Model:  "tworesource",
			Solver: SolverConfig{Horizon: DefaultHorizon, Tol: DefaultTol},
			Thermal: ThermalConfig{
				RefC: 20, MinC: 5, MaxC: 30, StepC: 1,
				Er: 0.32, Em: 0.65, EKMetabolic: 0.65, EKSupply: 0.32,
				EvConsumer: 0.46, EvResource: 0.46,
				VConsumer: 1.0, VResource: 0.2,
				Growth: 1.0, Capacity: 10.0, Attack: 0.1, Mortality: 0.05,
			},
			Fixed: map[string]float64{"e1": 0.5, "e2": 0.5, "w": 0.5},
			Init:  map[string]float64{"R1": 5, "R2": 5, "C": 1},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
