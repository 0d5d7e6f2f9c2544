// Package config provides the application configuration, loaded through
// Viper from config file, environment variables, and defaults.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"

	"github.com/jonesrussell/cleverscrape/internal/logger"
)

// Crawler defaults.
const (
	// DefaultStartURL is the catalog entry page the spider starts from.
	DefaultStartURL = "https://www.cleverleben.at/produktauswahl"
	// DefaultAllowedDomain restricts the spider to the catalog host.
	DefaultAllowedDomain = "www.cleverleben.at"
	// DefaultMaxItems caps the number of product records emitted per run.
	DefaultMaxItems = 1000
	// DefaultRateLimit is the delay between requests to the same domain.
	DefaultRateLimit = 2 * time.Second
	// DefaultUserAgent identifies the spider to the target site.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Output defaults.
const (
	DefaultRawOutput   = "output.json"
	DefaultCleanedJSON = "cleaned_output.json"
	DefaultCleanedCSV  = "cleaned_output.csv"
)

// CrawlerConfig holds spider settings.
type CrawlerConfig struct {
	StartURL      string        `mapstructure:"start_url"`
	AllowedDomain string        `mapstructure:"allowed_domain"`
	MaxItems      int           `mapstructure:"max_items"`
	RateLimit     time.Duration `mapstructure:"rate_limit"`
	UserAgent     string        `mapstructure:"user_agent"`
}

// OutputConfig holds the paths of the data artifacts.
type OutputConfig struct {
	Raw         string `mapstructure:"raw"`
	CleanedJSON string `mapstructure:"cleaned_json"`
	CleanedCSV  string `mapstructure:"cleaned_csv"`
}

// Config is the root application configuration.
type Config struct {
	Crawler CrawlerConfig `mapstructure:"crawler"`
	Output  OutputConfig  `mapstructure:"output"`
	Logger  logger.Config `mapstructure:"logger"`
}

// SetDefaults registers every configuration default with Viper.
// Called once from the root command before the config file is read.
func SetDefaults() {
	viper.SetDefault("crawler.start_url", DefaultStartURL)
	viper.SetDefault("crawler.allowed_domain", DefaultAllowedDomain)
	viper.SetDefault("crawler.max_items", DefaultMaxItems)
	viper.SetDefault("crawler.rate_limit", DefaultRateLimit)
	viper.SetDefault("crawler.user_agent", DefaultUserAgent)
	viper.SetDefault("output.raw", DefaultRawOutput)
	viper.SetDefault("output.cleaned_json", DefaultCleanedJSON)
	viper.SetDefault("output.cleaned_csv", DefaultCleanedCSV)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.development", false)
	viper.SetDefault("logger.encoding", "console")
}

// Load unmarshals the current Viper state into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the spider cannot run with.
func (c *Config) Validate() error {
	if c.Crawler.StartURL == "" {
		return errors.New("crawler.start_url must not be empty")
	}
	if _, err := url.ParseRequestURI(c.Crawler.StartURL); err != nil {
		return fmt.Errorf("crawler.start_url is not a valid URL: %w", err)
	}
	if c.Crawler.MaxItems <= 0 {
		return errors.New("crawler.max_items must be positive")
	}
	if c.Output.Raw == "" || c.Output.CleanedJSON == "" || c.Output.CleanedCSV == "" {
		return errors.New("output paths must not be empty")
	}
	return nil
}
