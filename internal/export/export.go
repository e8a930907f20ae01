// Package export writes the sweep result table for the plotting and
// report collaborators: JSON for structured consumers, CSV for
// spreadsheet-shaped ones.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/ecodyn/internal/ecomod"
	"github.com/san-kum/ecodyn/internal/sweep"
)

// jsonFloat marshals NaN as null; encoding/json rejects NaN outright
// and failed rows are full of it.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

type jsonRow struct {
	Params     map[string]float64   `json:"params"`
	States     map[string]jsonFloat `json:"states"`
	MaxRealEig jsonFloat            `json:"max_real_eig"`
	MaxImagEig jsonFloat            `json:"max_imag_eig"`
	Converged  bool                 `json:"converged"`
}

type jsonTable struct {
	Model        string    `json:"model"`
	Temperatures []float64 `json:"temperatures_celsius,omitempty"`
	Rows         []jsonRow `json:"rows"`
}

// WriteJSON encodes the result table. temps may be nil when the sweep
// was not a temperature sweep.
func WriteJSON(w io.Writer, model string, temps []float64, rows []sweep.ResultRow) error {
	table := jsonTable{
		Model:        model,
		Temperatures: temps,
		Rows:         make([]jsonRow, len(rows)),
	}
	for i, row := range rows {
		states := make(map[string]jsonFloat, len(row.States))
		for name, v := range row.States {
			states[name] = jsonFloat(v)
		}
		table.Rows[i] = jsonRow{
			Params:     row.Params,
			States:     states,
			MaxRealEig: jsonFloat(row.MaxRealEig),
			MaxImagEig: jsonFloat(row.MaxImagEig),
			Converged:  row.Converged,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(table)
}

// WriteCSV writes one row per sweep row: optional temperature column,
// the field's parameters and states in declared order, the eigenvalue
// summary, and the convergence flag. NaN cells read "NaN". A non-nil
// temps must carry one temperature per row.
func WriteCSV(w io.Writer, f ecomod.Field, temps []float64, rows []sweep.ResultRow) error {
	if temps != nil && len(temps) != len(rows) {
		return fmt.Errorf("export: %d temperatures for %d rows", len(temps), len(rows))
	}

	cw := csv.NewWriter(w)

	header := make([]string, 0)
	if temps != nil {
		header = append(header, "temp_celsius")
	}
	header = append(header, f.ParamNames()...)
	header = append(header, f.StateNames()...)
	header = append(header, "max_real_eig", "max_imag_eig", "converged")
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, row := range rows {
		record := make([]string, 0, len(header))
		if temps != nil {
			record = append(record, formatFloat(temps[i]))
		}
		for _, name := range f.ParamNames() {
			record = append(record, formatFloat(row.Params[name]))
		}
		for _, name := range f.StateNames() {
			record = append(record, formatFloat(row.States[name]))
		}
		record = append(record,
			formatFloat(row.MaxRealEig),
			formatFloat(row.MaxImagEig),
			strconv.FormatBool(row.Converged))
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
