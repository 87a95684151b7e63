package recorder

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"PivotPeers/internal/model"
)

func TestSQLiteRecorder_RecordRun(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	dbPath := filepath.Join(t.TempDir(), "history.db")
	rec, err := NewSQLiteRecorder(dbPath, log.WithField("component", "recorder"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer rec.Close()

	groups := []*model.Group{
		{
			Seed: "NVDA",
			Rows: []model.Row{
				{Symbol: "NVDA", Date: "2026-08-28", High: 110, Low: 90, Close: 100,
					PrevClose: 95, ChangePct: 5.26,
					Pivot:  model.PivotLevels{P: 100, S1: 90, S2: 80, R1: 110, R2: 120},
					IsSeed: true},
				{Symbol: "AMD", Date: "2026-08-28", High: 50, Low: 48, Close: 49,
					PrevClose: 49, ChangePct: 0,
					Pivot: model.PivotLevels{P: 49, S1: 48, S2: 47, R1: 50, R2: 51}},
			},
		},
	}
	summary := &RunSummary{
		Seeds:      []string{"NVDA"},
		GroupCount: 1,
		RowCount:   2,
		Status:     "ok",
	}
	if err := rec.RecordRun(summary, groups); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	var runs, rows int
	if err := rec.db.QueryRow(`SELECT COUNT(*) FROM report_runs`).Scan(&runs); err != nil {
		t.Fatal(err)
	}
	if err := rec.db.QueryRow(`SELECT COUNT(*) FROM report_rows`).Scan(&rows); err != nil {
		t.Fatal(err)
	}
	if runs != 1 {
		t.Errorf("expected 1 run, got %d", runs)
	}
	if rows != 2 {
		t.Errorf("expected 2 rows, got %d", rows)
	}

	var isSeed int
	var symbol string
	err = rec.db.QueryRow(`SELECT symbol, is_seed FROM report_rows WHERE is_seed = 1`).Scan(&symbol, &isSeed)
	if err != nil {
		t.Fatal(err)
	}
	if symbol != "NVDA" {
		t.Errorf("expected seed row NVDA, got %s", symbol)
	}
}

func TestSQLiteRecorder_RecordRunIsAtomic(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	dbPath := filepath.Join(t.TempDir(), "history.db")
	rec, err := NewSQLiteRecorder(dbPath, log.WithField("component", "recorder"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer rec.Close()

	// Break the row insert so only the run-summary insert could succeed.
	if _, err := rec.db.Exec(`DROP TABLE report_rows`); err != nil {
		t.Fatal(err)
	}

	groups := []*model.Group{
		{Seed: "NVDA", Rows: []model.Row{{Symbol: "NVDA", Date: "2026-08-28", IsSeed: true}}},
	}
	summary := &RunSummary{Seeds: []string{"NVDA"}, GroupCount: 1, RowCount: 1, Status: "ok"}

	if err := rec.RecordRun(summary, groups); err == nil {
		t.Fatal("expected error when row insert fails")
	}

	var runs int
	if err := rec.db.QueryRow(`SELECT COUNT(*) FROM report_runs`).Scan(&runs); err != nil {
		t.Fatal(err)
	}
	if runs != 0 {
		t.Errorf("expected run insert rolled back, found %d runs", runs)
	}
}
