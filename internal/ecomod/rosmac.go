package ecomod

// RosMac is the Rosenzweig-MacArthur skeleton with a linear (type-I)
// functional response: one consumer on one logistically growing
// resource.
//
//	dR/dt = r*R*(1 - R/K) - a*R*C
//	dC/dt = C*(e*a*R - m)
type RosMac struct{}

func NewRosMac() *RosMac { return &RosMac{} }

func (*RosMac) Name() string         { return "rosmac" }
func (*RosMac) StateNames() []string { return []string{"R", "C"} }
func (*RosMac) ParamNames() []string { return []string{"r", "K", "a", "e", "m"} }

func (*RosMac) Derive(x State, p Params, t float64) State {
	R, C := x[0], x[1]
	capture := p["a"] * R
	return State{
		p["r"]*R*(1-R/p["K"]) - capture*C,
		C * (p["e"]*capture - p["m"]),
	}
}

// RosMac2 replaces the linear response with a saturating (type-II)
// one; h is the handling time per unit resource.
//
//	F = a*R / (1 + a*h*R)
//	dR/dt = r*R*(1 - R/K) - F*C
//	dC/dt = C*(e*F - m)
type RosMac2 struct{}

func NewRosMac2() *RosMac2 { return &RosMac2{} }

func (*RosMac2) Name() string         { return "rosmac2" }
func (*RosMac2) StateNames() []string { return []string{"R", "C"} }
func (*RosMac2) ParamNames() []string { return []string{"r", "K", "a", "h", "e", "m"} }

func (*RosMac2) Derive(x State, p Params, t float64) State {
	R, C := x[0], x[1]
	F := p["a"] * R / (1 + p["a"]*p["h"]*R)
	return State{
		p["r"]*R*(1-R/p["K"]) - F*C,
		C * (p["e"]*F - p["m"]),
	}
}
