package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Provider struct {
		BaseURL  string `yaml:"base_url"`  // chart endpoint, default Yahoo
		QuoteURL string `yaml:"quote_url"` // quote endpoint, default Yahoo
	} `yaml:"provider"`
	Cache struct {
		DirectoryTTLMinutes int    `yaml:"directory_ttl_minutes"`
		SeriesTTLMinutes    int    `yaml:"series_ttl_minutes"`
		SnapshotPath        string `yaml:"snapshot_path"`
	} `yaml:"cache"`
	Sampling struct {
		MaxRows        int `yaml:"max_rows"`
		ChartThreshold int `yaml:"chart_threshold"`
		ChartTarget    int `yaml:"chart_target"`
	} `yaml:"sampling"`
	Search struct {
		Limit          int `yaml:"limit"`
		MaxSuggestions int `yaml:"max_suggestions"`
	} `yaml:"search"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Watch struct {
		PriceCron   string `yaml:"price_cron"`
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"watch"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
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

	// Environment variable overrides
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("PROVIDER_QUOTE_URL"); v != "" {
		cfg.Provider.QuoteURL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SNAPSHOT_PATH"); v != "" {
		cfg.Cache.SnapshotPath = v
	}

	// Defaults
	if cfg.Cache.DirectoryTTLMinutes == 0 {
		cfg.Cache.DirectoryTTLMinutes = 60
	}
	if cfg.Cache.SeriesTTLMinutes == 0 {
		cfg.Cache.SeriesTTLMinutes = 5
	}
	if cfg.Cache.SnapshotPath == "" {
		cfg.Cache.SnapshotPath = "data/stock_symbols.csv"
	}
	if cfg.Sampling.MaxRows == 0 {
		cfg.Sampling.MaxRows = 1000
	}
	if cfg.Sampling.ChartThreshold == 0 {
		cfg.Sampling.ChartThreshold = 2000
	}
	if cfg.Sampling.ChartTarget == 0 {
		cfg.Sampling.ChartTarget = 1500
	}
	if cfg.Search.Limit == 0 {
		cfg.Search.Limit = 10
	}
	if cfg.Search.MaxSuggestions == 0 {
		cfg.Search.MaxSuggestions = 5
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockdash.db"
	}
	if cfg.Watch.PriceCron == "" {
		cfg.Watch.PriceCron = "0 */15 * * * *"
	}
	if cfg.Watch.RefreshCron == "" {
		cfg.Watch.RefreshCron = "0 0 * * * *"
	}

	return cfg, nil
}

// DirectoryTTL returns the symbol directory cache lifetime.
func (c *Config) DirectoryTTL() time.Duration {
	return time.Duration(c.Cache.DirectoryTTLMinutes) * time.Minute
}

// SeriesTTL returns the history/quote cache lifetime.
func (c *Config) SeriesTTL() time.Duration {
	return time.Duration(c.Cache.SeriesTTLMinutes) * time.Minute
}

// Validate checks that all configured values are usable.
func (c *Config) Validate() error {
	if c.Cache.DirectoryTTLMinutes < 0 {
		return fmt.Errorf("cache.directory_ttl_minutes must not be negative")
	}
	if c.Cache.SeriesTTLMinutes < 0 {
		return fmt.Errorf("cache.series_ttl_minutes must not be negative")
	}
	if c.Sampling.MaxRows < 4 {
		return fmt.Errorf("sampling.max_rows must be at least 4")
	}
	if c.Sampling.ChartTarget <= 0 || c.Sampling.ChartThreshold <= 0 {
		return fmt.Errorf("sampling chart threshold and target must be positive")
	}
	if c.Sampling.ChartTarget > c.Sampling.ChartThreshold {
		return fmt.Errorf("sampling.chart_target must not exceed sampling.chart_threshold")
	}
	if c.Search.Limit <= 0 {
		return fmt.Errorf("search.limit must be positive")
	}
	return nil
}
