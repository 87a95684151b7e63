package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"PivotPeers/internal/collector"
	"PivotPeers/internal/config"
	"PivotPeers/internal/logger"
	"PivotPeers/internal/notifier"
	"PivotPeers/internal/peers"
	"PivotPeers/internal/recorder"
	"PivotPeers/internal/report"
	"PivotPeers/internal/scheduler"
)

// app holds the assembled components for one invocation.
type app struct {
	cfg   *config.Config
	log   *logrus.Logger
	sched *scheduler.Scheduler
	rec   recorder.Recorder
}

// setup loads configuration and wires all components together.
func setup(ctx context.Context) (*app, error) {
	path := cfgPath
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	fetcher := collector.NewYahooFetcher(time.Duration(cfg.Data.TimeoutSeconds)*time.Second, cfg.Proxy)
	log.Infof("data source: %s", fetcher.Name())

	resolver := peers.NewResolver(
		cfg.Peers.APIKey, cfg.Peers.Limit,
		time.Duration(cfg.Peers.TimeoutSeconds)*time.Second, cfg.Proxy,
		logger.WithComponent(log, "peers"),
	)

	builder := report.NewBuilder(fetcher, resolver, cfg.Data.LookbackDays,
		logger.WithComponent(log, "report"))

	var notifiers []notifier.Notifier
	if cfg.Notify.ServerChanKey != "" {
		notifiers = append(notifiers, notifier.NewServerChan(cfg.Notify.ServerChanKey))
	}
	if cfg.Notify.PushPlusToken != "" {
		notifiers = append(notifiers, notifier.NewPushPlus(cfg.Notify.PushPlusToken))
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, logger.WithComponent(log, "recorder"))
		if err != nil {
			log.Warnf("init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	sched := scheduler.NewScheduler(ctx, builder, cfg, notifiers, rec,
		logger.WithComponent(log, "scheduler"))

	return &app{cfg: cfg, log: log, sched: sched, rec: rec}, nil
}

func (a *app) close() {
	if err := a.rec.Close(); err != nil {
		a.log.Errorf("close recorder: %v", err)
	}
}
