package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Crawler   CrawlerConfig   `mapstructure:"crawler"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Report    ReportConfig    `mapstructure:"report"`
}

// CrawlerConfig bounds the crawl stage.
type CrawlerConfig struct {
	MaxPages          int           `mapstructure:"max_pages"`
	MaxLinkFollows    int           `mapstructure:"max_link_follows"`
	PageTimeout       time.Duration `mapstructure:"page_timeout"`
	UserAgent         string        `mapstructure:"user_agent"`
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	RespectRobotsTxt  bool          `mapstructure:"respect_robots_txt"`
}

// AnalyticsConfig points the pipeline at an analytics snapshot source.
type AnalyticsConfig struct {
	SnapshotFile string `mapstructure:"snapshot_file"`
	WorkspaceID  string `mapstructure:"workspace_id"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// ReportConfig holds report output defaults.
type ReportConfig struct {
	Format string `mapstructure:"format"` // "json", "markdown" or "html"
}

// Load loads configuration from file and environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.demandlab")
	}

	setDefaults(v)

	v.SetEnvPrefix("DEMANDLAB")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("crawler.max_pages", 12)
	v.SetDefault("crawler.max_link_follows", 8)
	v.SetDefault("crawler.page_timeout", "10s")
	v.SetDefault("crawler.user_agent", "DemandLab/1.0 (+https://kineticbrand.io/demandlab)")
	v.SetDefault("crawler.requests_per_second", 5)
	v.SetDefault("crawler.respect_robots_txt", true)

	v.SetDefault("analytics.snapshot_file", "")
	v.SetDefault("analytics.workspace_id", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("report.format", "json")
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Crawler.MaxPages <= 0 {
		return fmt.Errorf("crawler.max_pages must be positive")
	}
	if c.Crawler.MaxLinkFollows < 0 {
		return fmt.Errorf("crawler.max_link_follows must not be negative")
	}
	if c.Crawler.PageTimeout <= 0 {
		return fmt.Errorf("crawler.page_timeout must be positive")
	}
	if c.Crawler.RequestsPerSecond <= 0 {
		return fmt.Errorf("crawler.requests_per_second must be positive")
	}
	switch c.Report.Format {
	case "json", "markdown", "md", "html":
	default:
		return fmt.Errorf("report.format must be json, markdown or html")
	}
	return nil
}
