package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ecodyn/internal/ecomod"
	"github.com/san-kum/ecodyn/internal/steady"
	"github.com/san-kum/ecodyn/internal/sweep"
	"github.com/san-kum/ecodyn/internal/thermal"
)

const (
	DefaultHorizon = 1000.0
	DefaultTol     = 1e-4
	DefaultRefC    = 20.0
	DefaultMinC    = 5.0
	DefaultMaxC    = 30.0
	DefaultStepC   = 1.0
)

// Config describes one temperature sweep: the model variant, solver
// bounds, the thermal forcing, and the non-thermal parameters and
// initial abundances keyed by name.
type Config struct {
	Model   string             `yaml:"model"`
	Solver  SolverConfig       `yaml:"solver"`
	Thermal ThermalConfig      `yaml:"thermal"`
	Fixed   map[string]float64 `yaml:"fixed"`
	Init    map[string]float64 `yaml:"init_state"`
}

type SolverConfig struct {
	Horizon float64 `yaml:"horizon"`
	Tol     float64 `yaml:"tol"`
	Dt      float64 `yaml:"dt"`
}

// ThermalConfig carries the sweep range, the reference temperature at
// which rates were observed, activation energies, and the observed
// reference rates that pin down the Arrhenius baselines.
type ThermalConfig struct {
	RefC  float64 `yaml:"ref_celsius"`
	MinC  float64 `yaml:"min_celsius"`
	MaxC  float64 `yaml:"max_celsius"`
	StepC float64 `yaml:"step_celsius"`

	Er          float64 `yaml:"er"`           // growth
	Em          float64 `yaml:"em"`           // mortality
	EKMetabolic float64 `yaml:"ek_metabolic"` // carrying capacity, metabolic
	EKSupply    float64 `yaml:"ek_supply"`    // carrying capacity, supply
	EvConsumer  float64 `yaml:"ev_consumer"`  // attack, consumer velocity
	EvResource  float64 `yaml:"ev_resource"`  // attack, resource velocity

	VConsumer float64 `yaml:"v_consumer"`
	VResource float64 `yaml:"v_resource"`

	Growth    float64 `yaml:"growth"`    // r observed at RefC
	Capacity  float64 `yaml:"capacity"`  // K observed at RefC
	Attack    float64 `yaml:"attack"`    // a observed at RefC
	Mortality float64 `yaml:"mortality"` // m observed at RefC
}

func DefaultConfig() *Config {
	return &Config{
		Model: "rosmac",
		Solver: SolverConfig{
			Horizon: DefaultHorizon,
			Tol:     DefaultTol,
		},
		Thermal: ThermalConfig{
			RefC:        DefaultRefC,
			MinC:        DefaultMinC,
			MaxC:        DefaultMaxC,
			StepC:       DefaultStepC,
			Er:          0.32,
			Em:          0.65,
			EKMetabolic: 0.65,
			EKSupply:    0.32,
			EvConsumer:  0.46,
			EvResource:  0.46,
			VConsumer:   1.0,
			VResource:   0.2,
			Growth:      1.0,
			Capacity:    10.0,
			Attack:      0.1,
			Mortality:   0.05,
		},
		Fixed: map[string]float64{"e": 0.5},
		Init:  map[string]float64{"R": 5.0, "C": 1.0},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Temperatures expands the sweep range into Celsius values, inclusive
// of both ends.
func (c *Config) Temperatures() []float64 {
	step := c.Thermal.StepC
	if step <= 0 {
		step = DefaultStepC
	}
	temps := make([]float64, 0)
	for t := c.Thermal.MinC; t <= c.Thermal.MaxC+step/1e6; t += step {
		temps = append(temps, t)
	}
	return temps
}

// SolverOptions translates the solver section, leaving zero values to
// the solver's own defaults.
func (c *Config) SolverOptions() steady.Options {
	return steady.Options{
		Horizon: c.Solver.Horizon,
		Tol:     c.Solver.Tol,
		Dt:      c.Solver.Dt,
	}
}

// paramBase strips a trailing species index: "a12" -> "a", "K2" -> "K".
func paramBase(name string) string {
	return strings.TrimRight(name, "0123456789")
}

// scaledParam maps a thermally forced parameter to its value at the
// given Celsius temperature, recovering the baseline from the observed
// reference rate first. Returns false for names the thermal model does
// not cover.
func (tc ThermalConfig) scaledParam(base string, celsius float64) (float64, bool) {
	ref := thermal.CelsiusToKelvin(tc.RefC)
	kelvin := thermal.CelsiusToKelvin(celsius)
	switch base {
	case "r":
		b := thermal.GrowthBaseline(tc.Growth, tc.Er, ref)
		return thermal.GrowthRate(b, tc.Er, kelvin), true
	case "K":
		b := thermal.CarryingBaseline(tc.Capacity, tc.EKMetabolic, tc.EKSupply, ref)
		return thermal.CarryingCapacity(b, tc.EKMetabolic, tc.EKSupply, kelvin), true
	case "a":
		b := thermal.AttackBaseline(tc.Attack, tc.VConsumer, tc.VResource,
			tc.EvConsumer, tc.EvResource, ref, ref)
		return thermal.AttackRate(b, tc.VConsumer, tc.VResource,
			tc.EvConsumer, tc.EvResource, kelvin, kelvin), true
	case "m":
		b := thermal.MortalityBaseline(tc.Mortality, tc.Em, ref)
		return thermal.Mortality(b, tc.Em, kelvin), true
	}
	return 0, false
}

// BuildRows assembles one sweep row per temperature. Growth, carrying
// capacity, attack, and mortality parameters (any species index) are
// Arrhenius-forced; every other name the field requires must appear in
// Fixed. The returned temperatures parallel the rows.
func BuildRows(cfg *Config, f ecomod.Field) ([]sweep.Row, []float64, error) {
	temps := cfg.Temperatures()
	if len(temps) == 0 {
		return nil, nil, fmt.Errorf("config: empty temperature range [%g, %g]",
			cfg.Thermal.MinC, cfg.Thermal.MaxC)
	}

	init := make(ecomod.State, len(f.StateNames()))
	for i, name := range f.StateNames() {
		v, ok := cfg.Init[name]
		if !ok {
			return nil, nil, fmt.Errorf("config: init_state missing %q for model %s", name, f.Name())
		}
		init[i] = v
	}

	rows := make([]sweep.Row, 0, len(temps))
	for _, celsius := range temps {
		params := make(ecomod.Params, len(f.ParamNames()))
		for _, name := range f.ParamNames() {
			if v, ok := cfg.Thermal.scaledParam(paramBase(name), celsius); ok {
				params[name] = v
				continue
			}
			v, ok := cfg.Fixed[name]
			if !ok {
				return nil, nil, fmt.Errorf("config: fixed params missing %q for model %s", name, f.Name())
			}
			params[name] = v
		}
		rows = append(rows, sweep.Row{Params: params, Init: init.Clone()})
	}
	return rows, temps, nil
}
