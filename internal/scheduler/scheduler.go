package scheduler

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"PivotPeers/internal/config"
	"PivotPeers/internal/model"
	"PivotPeers/internal/notifier"
	"PivotPeers/internal/recorder"
	"PivotPeers/internal/report"
)

// Scheduler runs the report pipeline, either once or on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Builder   *report.Builder
	Cfg       *config.Config
	Notifiers []notifier.Notifier
	Recorder  recorder.Recorder
	Ctx       context.Context
	log       *logrus.Entry
}

// NewScheduler creates a Scheduler.
func NewScheduler(ctx context.Context, builder *report.Builder, cfg *config.Config,
	notifiers []notifier.Notifier, rec recorder.Recorder, log *logrus.Entry) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Builder:   builder,
		Cfg:       cfg,
		Notifiers: notifiers,
		Recorder:  rec,
		Ctx:       ctx,
		log:       log,
	}
}

// Register registers the daily report task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, func() {
		if err := s.RunOnce(s.Ctx); err != nil {
			s.log.Errorf("scheduled run failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.log.Info("scheduler stopped")
}

// RunOnce executes the full pipeline: build all groups, write the three
// outputs, push notifications and record the run. Writer and notification
// failures are logged but do not fail the run; zero successful groups does.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	s.log.Infof("running report for seeds %v", s.Cfg.Tickers)

	groups, err := s.Builder.Build(ctx, s.Cfg.Tickers)
	if err != nil {
		s.recordRun(nil, "failed", err.Error())
		return fmt.Errorf("build report: %w", err)
	}

	out := s.Cfg.Output
	csvPath := filepath.Join(out.Dir, out.CSVName)
	pdfPath := filepath.Join(out.Dir, out.PDFName)
	htmlPath := filepath.Join(out.Dir, out.HTMLName)

	reportURL := out.ReportURL
	if reportURL == "" {
		reportURL = out.PDFName
	}

	if err := report.WriteCSV(groups, csvPath); err != nil {
		s.log.Errorf("write csv: %v", err)
	} else {
		s.log.Infof("wrote %s", csvPath)
	}
	if err := report.WritePDF(groups, out.Title, pdfPath); err != nil {
		s.log.Errorf("write pdf: %v", err)
	} else {
		s.log.Infof("wrote %s", pdfPath)
	}
	if err := report.WriteHTML(groups, out.Title, reportURL, out.CSVName, htmlPath); err != nil {
		s.log.Errorf("write html: %v", err)
	} else {
		s.log.Infof("wrote %s", htmlPath)
	}

	msg := notifier.Message{
		Title:     "Daily Pivot Levels",
		SiteURL:   out.SiteURL,
		ReportURL: reportURL,
	}
	for _, n := range s.Notifiers {
		if err := n.Push(ctx, msg); err != nil {
			s.log.Warnf("notify via %s: %v", n.Name(), err)
		} else {
			s.log.Infof("notified via %s", n.Name())
		}
	}

	s.recordRun(groups, "ok", "")
	return nil
}

func (s *Scheduler) recordRun(groups []*model.Group, status, note string) {
	rowCount := 0
	for _, g := range groups {
		rowCount += len(g.Rows)
	}
	err := s.Recorder.RecordRun(&recorder.RunSummary{
		Seeds:      s.Cfg.Tickers,
		GroupCount: len(groups),
		RowCount:   rowCount,
		Status:     status,
		Note:       note,
	}, groups)
	if err != nil {
		s.log.Errorf("record run: %v", err)
	}
}
