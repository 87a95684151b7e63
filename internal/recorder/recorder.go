package recorder

import "PivotPeers/internal/model"

// RunSummary describes one report run for the history log.
type RunSummary struct {
	Seeds      []string
	GroupCount int
	RowCount   int
	Status     string // "ok" or "failed"
	Note       string
}

// Recorder persists report history for later inspection. Recording failures
// are logged by callers and never fail a run.
type Recorder interface {
	RecordRun(run *RunSummary, groups []*model.Group) error
	Close() error
}
