package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ecodyn/internal/config"
	"github.com/san-kum/ecodyn/internal/ecomod"
	"github.com/san-kum/ecodyn/internal/export"
	"github.com/san-kum/ecodyn/internal/sweep"
)

const version = "0.3.0"

var (
	configFile string
	preset     string
	model      string
	outFile    string
	format     string
	plot       bool
	workers    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ecodyn",
		Short: "temperature-forced consumer-resource dynamics",
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a temperature sweep and export the result table",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&configFile, "config", "", "sweep config file (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset sweep configuration")
	sweepCmd.Flags().StringVar(&model, "model", "rosmac", "model variant")
	sweepCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")
	sweepCmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	sweepCmd.Flags().BoolVar(&plot, "plot", false, "chart max real eigenvalue vs temperature")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = serial)")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list model variants",
		Run:   listModels,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list preset sweeps",
		Args:  cobra.MaximumNArgs(1),
		Run:   listPresets,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ecodyn %s\n", version)
		},
	}

	rootCmd.AddCommand(sweepCmd, modelsCmd, presetsCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(model, preset)
		if cfg == nil {
			return nil, fmt.Errorf("no preset %q for model %q", preset, model)
		}
		return cfg, nil
	}
	cfg := config.DefaultConfig()
	cfg.Model = model
	return cfg, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	field, err := ecomod.Lookup(cfg.Model)
	if err != nil {
		return err
	}

	rows, temps, err := config.BuildRows(cfg, field)
	if err != nil {
		return err
	}

	opts := cfg.SolverOptions()
	var results []sweep.ResultRow
	if workers > 0 {
		results, err = sweep.RunParallel(context.Background(), field, rows, opts, workers)
	} else {
		results, err = sweep.Run(field, rows, opts)
	}
	if err != nil {
		return err
	}

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		err = export.WriteJSON(out, cfg.Model, temps, results)
	case "csv":
		err = export.WriteCSV(out, field, temps, results)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}

	if plot {
		plotEigenvalues(temps, results)
	}
	return nil
}

func plotEigenvalues(temps []float64, results []sweep.ResultRow) {
	series := make([]float64, 0, len(results))
	for _, r := range results {
		if !math.IsNaN(r.MaxRealEig) {
			series = append(series, r.MaxRealEig)
		}
	}
	if len(series) < 2 {
		fmt.Fprintln(os.Stderr, "too few converged rows to plot")
		return
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Caption(fmt.Sprintf("max Re(eig), %.0f..%.0f degC (converged rows)",
			temps[0], temps[len(temps)-1]))))
}

func listModels(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATES\tPARAMS")
	for _, name := range ecomod.Names() {
		f, _ := ecomod.Lookup(name)
		fmt.Fprintf(w, "%s\t%d\t%d\n", name, len(f.StateNames()), len(f.ParamNames()))
	}
	w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) {
	models := ecomod.Names()
	if len(args) == 1 {
		models = []string{args[0]}
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tPRESET")
	for _, m := range models {
		for _, p := range config.ListPresets(m) {
			fmt.Fprintf(w, "%s\t%s\n", m, p)
		}
	}
	w.Flush()
}
