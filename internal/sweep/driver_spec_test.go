package sweep_test

import (
	"context"
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ecodyn/internal/config"
	"github.com/san-kum/ecodyn/internal/ecomod"
	"github.com/san-kum/ecodyn/internal/steady"
	"github.com/san-kum/ecodyn/internal/sweep"
)

func feasibleRow() sweep.Row {
	return sweep.Row{
		Params: ecomod.Params{"r": 1, "K": 10, "a": 0.1, "e": 0.5, "m": 0.05},
		Init:   ecomod.State{5, 1},
	}
}

func divergentRow() sweep.Row {
	return sweep.Row{
		Params: ecomod.Params{"r": 1, "K": 10, "a": 0.1, "e": 0.5, "m": -1},
		Init:   ecomod.State{5, 1},
	}
}

var _ = Describe("Driver", func() {
	var (
		field ecomod.Field
		opts  steady.Options
	)

	BeforeEach(func() {
		field = ecomod.NewRosMac()
		opts = steady.DefaultOptions()
	})

	It("isolates a failed row from its neighbours", func() {
		rows := []sweep.Row{feasibleRow(), divergentRow(), feasibleRow()}

		out, err := sweep.Run(field, rows, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HaveLen(3))

		Expect(out[0].Converged).To(BeTrue())
		Expect(out[2].Converged).To(BeTrue())

		Expect(out[1].Converged).To(BeFalse())
		Expect(math.IsNaN(out[1].MaxRealEig)).To(BeTrue())
		Expect(math.IsNaN(out[1].MaxImagEig)).To(BeTrue())
		for _, name := range field.StateNames() {
			Expect(math.IsNaN(out[1].States[name])).To(BeTrue())
		}
	})

	It("preserves row order under permutation", func() {
		rows := make([]sweep.Row, 8)
		for i := range rows {
			row := feasibleRow()
			row.Params["m"] = 0.03 + 0.005*float64(i)
			rows[i] = row
		}

		base, err := sweep.Run(field, rows, opts)
		Expect(err).NotTo(HaveOccurred())

		perm := rand.New(rand.NewSource(7)).Perm(len(rows))
		shuffled := make([]sweep.Row, len(rows))
		for i, j := range perm {
			shuffled[i] = rows[j]
		}

		got, err := sweep.Run(field, shuffled, opts)
		Expect(err).NotTo(HaveOccurred())

		for i, j := range perm {
			Expect(got[i].States).To(Equal(base[j].States))
			Expect(got[i].MaxRealEig).To(Equal(base[j].MaxRealEig))
			Expect(got[i].MaxImagEig).To(Equal(base[j].MaxImagEig))
		}
	})

	It("produces identical results in parallel", func() {
		rows := []sweep.Row{feasibleRow(), divergentRow(), feasibleRow(), feasibleRow()}

		serial, err := sweep.Run(field, rows, opts)
		Expect(err).NotTo(HaveOccurred())

		parallel, err := sweep.RunParallel(context.Background(), field, rows, opts, 4)
		Expect(err).NotTo(HaveOccurred())

		Expect(parallel).To(HaveLen(len(serial)))
		for i := range serial {
			Expect(parallel[i].Converged).To(Equal(serial[i].Converged))
			for _, name := range field.StateNames() {
				if serial[i].Converged {
					Expect(parallel[i].States[name]).To(Equal(serial[i].States[name]))
				} else {
					Expect(math.IsNaN(parallel[i].States[name])).To(BeTrue())
				}
			}
		}
	})

	It("stops feeding rows once the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := sweep.RunParallel(ctx, field, []sweep.Row{feasibleRow(), feasibleRow()}, opts, 1)
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Temperature sweep end to end", func() {
	It("yields one finite, stable row per degree under neutral forcing", func() {
		cfg := config.GetPreset("rosmac", "neutral")
		Expect(cfg).NotTo(BeNil())

		field, err := ecomod.Lookup(cfg.Model)
		Expect(err).NotTo(HaveOccurred())

		rows, temps, err := config.BuildRows(cfg, field)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(26))
		Expect(temps[0]).To(Equal(5.0))
		Expect(temps[25]).To(Equal(30.0))

		out, err := sweep.Run(field, rows, cfg.SolverOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HaveLen(26))

		for i, row := range out {
			// Neutral forcing scales every rate in lockstep, so warming
			// only rescales time: the equilibrium exists and attracts at
			// every temperature.
			Expect(row.Converged).To(BeTrue(), "row %d (%.0f degC)", i, temps[i])
			for _, name := range field.StateNames() {
				Expect(math.IsNaN(row.States[name])).To(BeFalse())
				Expect(row.States[name]).To(BeNumerically(">", 0))
			}
			Expect(row.MaxRealEig).To(BeNumerically("<", 0))
		}
	})

	It("reports NaN rows once warming pushes the break-even density past K", func() {
		cfg := config.GetPreset("rosmac", "mismatch")
		Expect(cfg).NotTo(BeNil())

		field, err := ecomod.Lookup(cfg.Model)
		Expect(err).NotTo(HaveOccurred())

		rows, temps, err := config.BuildRows(cfg, field)
		Expect(err).NotTo(HaveOccurred())

		out, err := sweep.Run(field, rows, cfg.SolverOptions())
		Expect(err).NotTo(HaveOccurred())

		finite, starved := 0, 0
		for i, row := range out {
			// A row is feasible exactly when the consumer's break-even
			// density m/(e*a) sits below the carrying capacity at that
			// row's temperature.
			feasible := row.Params["m"]/(row.Params["e"]*row.Params["a"]) < row.Params["K"]
			if feasible {
				finite++
				Expect(row.Converged).To(BeTrue(), "row %d (%.0f degC)", i, temps[i])
				for _, name := range field.StateNames() {
					Expect(row.States[name]).To(BeNumerically(">", 0))
				}
				Expect(row.MaxRealEig).To(BeNumerically("<", 0))
			} else {
				starved++
				Expect(row.Converged).To(BeFalse(), "row %d (%.0f degC)", i, temps[i])
				for _, name := range field.StateNames() {
					Expect(math.IsNaN(row.States[name])).To(BeTrue())
				}
				Expect(math.IsNaN(row.MaxRealEig)).To(BeTrue())
				Expect(math.IsNaN(row.MaxImagEig)).To(BeTrue())
			}
		}

		// The crossover lands inside the sweep: cold rows persist, hot
		// rows starve.
		Expect(finite).To(BeNumerically(">", 0))
		Expect(starved).To(BeNumerically(">", 0))
		Expect(out[0].Converged).To(BeTrue())
		Expect(out[len(out)-1].Converged).To(BeFalse())
	})
})
