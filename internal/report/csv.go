package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"PivotPeers/internal/model"
)

// csvHeader is the canonical flat-table column order.
var csvHeader = []string{
	"Group", "Ticker", "Date", "High", "Low", "Close", "PrevClose",
	"% Chg", "Pivot P", "S1", "S2", "R1", "R2",
}

// WriteCSV writes all groups as one flat CSV table.
func WriteCSV(groups []*model.Group, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, g := range groups {
		for _, r := range g.Rows {
			rec := []string{
				g.Label(),
				r.Symbol,
				r.Date,
				fmt.Sprintf("%.2f", r.High),
				fmt.Sprintf("%.2f", r.Low),
				fmt.Sprintf("%.2f", r.Close),
				fmt.Sprintf("%.2f", r.PrevClose),
				fmt.Sprintf("%.2f", r.ChangePct),
				fmt.Sprintf("%.2f", r.Pivot.P),
				fmt.Sprintf("%.2f", r.Pivot.S1),
				fmt.Sprintf("%.2f", r.Pivot.S2),
				fmt.Sprintf("%.2f", r.Pivot.R1),
				fmt.Sprintf("%.2f", r.Pivot.R2),
			}
			if err := w.Write(rec); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	w.Flush()
	return w.Error()
}
