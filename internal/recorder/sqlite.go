package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"PivotPeers/internal/model"
)

// SQLiteRecorder persists report history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log *logrus.Entry
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log *logrus.Entry) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Infof("sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS report_runs (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			seeds        TEXT,
			group_count  INTEGER,
			row_count    INTEGER,
			status       TEXT,
			note       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON report_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS report_rows (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      INTEGER NOT NULL,
			seed        TEXT,
			symbol      TEXT,
			trade_date  TEXT,
			high        REAL,
			low         REAL,
			close       REAL,
			prev_close  REAL,
			change_pct  REAL,
			pivot_p     REAL,
			s1          REAL,
			s2          REAL,
			r1          REAL,
			r2          REAL,
			is_seed     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rows_run ON report_rows(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_rows_symbol ON report_rows(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun inserts a run summary and one row per computed pivot row, as a
// single transaction so a failed insert never leaves a partial run behind.
func (r *SQLiteRecorder) RecordRun(run *RunSummary, groups []*model.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO report_runs
		(timestamp, seeds, group_count, row_count, status, note)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), strings.Join(run.Seeds, ","),
		run.GroupCount, run.RowCount, run.Status, run.Note,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, g := range groups {
		for _, row := range g.Rows {
			isSeed := 0
			if row.IsSeed {
				isSeed = 1
			}
			if _, err := tx.Exec(`INSERT INTO report_rows
				(run_id, seed, symbol, trade_date, high, low, close, prev_close,
				 change_pct, pivot_p, s1, s2, r1, r2, is_seed)
				VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
				runID, g.Seed, row.Symbol, row.Date,
				row.High, row.Low, row.Close, row.PrevClose, row.ChangePct,
				row.Pivot.P, row.Pivot.S1, row.Pivot.S2, row.Pivot.R1, row.Pivot.R2,
				isSeed,
			); err != nil {
				return fmt.Errorf("insert row %s: %w", row.Symbol, err)
			}
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}
