package ecomod

// TwoResource is one consumer on two logistic resources with a linear
// functional response and a fixed foraging preference: w on R1, 1-w on
// R2, independent of resource densities.
type TwoResource struct{}

func NewTwoResource() *TwoResource { return &TwoResource{} }

func (*TwoResource) Name() string         { return "tworesource" }
func (*TwoResource) StateNames() []string { return []string{"R1", "R2", "C"} }
func (*TwoResource) ParamNames() []string {
	return []string{"r1", "r2", "K1", "K2", "a1", "a2", "e1", "e2", "w", "m"}
}

func (*TwoResource) Derive(x State, p Params, t float64) State {
	R1, R2, C := x[0], x[1], x[2]
	w := p["w"]
	f1 := w * p["a1"] * R1
	f2 := (1 - w) * p["a2"] * R2
	return State{
		p["r1"]*R1*(1-R1/p["K1"]) - f1*C,
		p["r2"]*R2*(1-R2/p["K2"]) - f2*C,
		C * (p["e1"]*f1 + p["e2"]*f2 - p["m"]),
	}
}

// TwoResource2 is one consumer on two logistic resources with a
// multi-resource type-II response and density-dependent preference:
// each resource's effective weight is its share of the weighted
// abundance sum, so the consumer shifts effort toward whichever
// resource is currently abundant.
//
//	W_j = w_j*R_j / (w_1*R_1 + w_2*R_2)
//	F_j = W_j*a_j*R_j / (1 + sum_k W_k*a_k*h_k*R_k)
type TwoResource2 struct{}

func NewTwoResource2() *TwoResource2 { return &TwoResource2{} }

func (*TwoResource2) Name() string         { return "tworesource2" }
func (*TwoResource2) StateNames() []string { return []string{"R1", "R2", "C"} }
func (*TwoResource2) ParamNames() []string {
	return []string{"r1", "r2", "K1", "K2", "a1", "a2", "h1", "h2", "e1", "e2", "w", "m"}
}

func (*TwoResource2) Derive(x State, p Params, t float64) State {
	R1, R2, C := x[0], x[1], x[2]
	w := p["w"]
	sum := w*R1 + (1-w)*R2
	W1 := w * R1 / sum
	W2 := (1 - w) * R2 / sum
	den := 1 + W1*p["a1"]*p["h1"]*R1 + W2*p["a2"]*p["h2"]*R2
	F1 := W1 * p["a1"] * R1 / den
	F2 := W2 * p["a2"] * R2 / den
	return State{
		p["r1"]*R1*(1-R1/p["K1"]) - F1*C,
		p["r2"]*R2*(1-R2/p["K2"]) - F2*C,
		C * (p["e1"]*F1 + p["e2"]*F2 - p["m"]),
	}
}
