package ecomod

// TwoConsumer is two consumers competing for two logistic resources,
// each consumer with its own type-II response and density-dependent
// preference. w1 and w2 are consumer 1's and consumer 2's weights on
// R1; the complement goes to R2.
type TwoConsumer struct{}

func NewTwoConsumer() *TwoConsumer { return &TwoConsumer{} }

func (*TwoConsumer) Name() string         { return "twoconsumer" }
func (*TwoConsumer) StateNames() []string { return []string{"R1", "R2", "C1", "C2"} }
func (*TwoConsumer) ParamNames() []string {
	return []string{
		"r1", "r2", "K1", "K2",
		"a11", "a12", "a21", "a22",
		"h11", "h12", "h21", "h22",
		"e11", "e12", "e21", "e22",
		"w1", "w2", "m1", "m2",
	}
}

// response computes consumer i's type-II intake of each resource.
// wi is that consumer's weight on R1.
func response(R1, R2, wi, a1, a2, h1, h2 float64) (f1, f2 float64) {
	sum := wi*R1 + (1-wi)*R2
	W1 := wi * R1 / sum
	W2 := (1 - wi) * R2 / sum
	den := 1 + W1*a1*h1*R1 + W2*a2*h2*R2
	return W1 * a1 * R1 / den, W2 * a2 * R2 / den
}

func (*TwoConsumer) Derive(x State, p Params, t float64) State {
	R1, R2, C1, C2 := x[0], x[1], x[2], x[3]

	f11, f12 := response(R1, R2, p["w1"], p["a11"], p["a12"], p["h11"], p["h12"])
	f21, f22 := response(R1, R2, p["w2"], p["a21"], p["a22"], p["h21"], p["h22"])

	return State{
		p["r1"]*R1*(1-R1/p["K1"]) - f11*C1 - f21*C2,
		p["r2"]*R2*(1-R2/p["K2"]) - f12*C1 - f22*C2,
		C1 * (p["e11"]*f11 + p["e12"]*f12 - p["m1"]),
		C2 * (p["e21"]*f21 + p["e22"]*f22 - p["m2"]),
	}
}
