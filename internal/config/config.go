package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"PivotPeers/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Tickers []string `yaml:"tickers"`
	Peers   struct {
		APIKey         string `yaml:"api_key"`
		Limit          int    `yaml:"limit"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"peers"`
	Data struct {
		LookbackDays   int `yaml:"lookback_days"`
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"data"`
	Output struct {
		Dir       string `yaml:"dir"`
		CSVName   string `yaml:"csv_name"`
		PDFName   string `yaml:"pdf_name"`
		HTMLName  string `yaml:"html_name"`
		ReportURL string `yaml:"report_url"`
		SiteURL   string `yaml:"site_url"`
		Title     string `yaml:"title"`
	} `yaml:"output"`
	Notify struct {
		ServerChanKey string `yaml:"serverchan_sendkey"`
		PushPlusToken string `yaml:"pushplus_token"`
	} `yaml:"notify"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; env alone is a
// valid configuration. A .env file in the working directory is loaded first
// if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Seed precedence: TICKERS env, then config file, then DEFAULT_TICKERS
	// env, then the hardcoded fallback.
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Tickers = model.SplitSymbolList(v)
	}
	cfg.Tickers = model.DedupeSymbols(cfg.Tickers)
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = model.SplitSymbolList(os.Getenv("DEFAULT_TICKERS"))
	}
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = []string{"NVDA"}
	}

	// Environment variable overrides
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		cfg.Peers.APIKey = v
	}
	if v := os.Getenv("REPORT_URL"); v != "" {
		cfg.Output.ReportURL = v
	}
	if v := os.Getenv("SITE_URL"); v != "" {
		cfg.Output.SiteURL = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("WECHAT_SCT_SENDKEY"); v != "" {
		cfg.Notify.ServerChanKey = v
	}
	if v := os.Getenv("PUSHPLUS_TOKEN"); v != "" {
		cfg.Notify.PushPlusToken = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Peers.Limit == 0 {
		cfg.Peers.Limit = 10
	}
	if cfg.Peers.TimeoutSeconds == 0 {
		cfg.Peers.TimeoutSeconds = 12
	}
	if cfg.Data.LookbackDays == 0 {
		cfg.Data.LookbackDays = 10
	}
	if cfg.Data.TimeoutSeconds == 0 {
		cfg.Data.TimeoutSeconds = 15
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	if cfg.Output.CSVName == "" {
		cfg.Output.CSVName = "table.csv"
	}
	if cfg.Output.PDFName == "" {
		cfg.Output.PDFName = "report.pdf"
	}
	if cfg.Output.HTMLName == "" {
		cfg.Output.HTMLName = "index.html"
	}
	if cfg.Output.Title == "" {
		cfg.Output.Title = "Daily Pivot Levels (Ticker + Peers)"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 22 * * 1-5"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	return cfg, nil
}

// Validate checks that all required fields are usable.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("no seed tickers configured")
	}
	if c.Peers.Limit < 1 {
		return fmt.Errorf("peers.limit must be positive")
	}
	if c.Data.LookbackDays < 2 {
		return fmt.Errorf("data.lookback_days must be at least 2")
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	return nil
}
