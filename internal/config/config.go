package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Global   GlobalConfig   `yaml:"global" mapstructure:"global"`
	Scrapers ScrapersConfig `yaml:"scrapers" mapstructure:"scrapers"`
	Fetch    FetchConfig    `yaml:"fetch" mapstructure:"fetch"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	Path        string `yaml:"path" mapstructure:"path"`
}

// GlobalConfig holds pipeline-wide settings.
type GlobalConfig struct {
	MaxWorkers int    `yaml:"max_workers" mapstructure:"max_workers"`
	DataDir    string `yaml:"data_dir" mapstructure:"data_dir"`
	UserAgent  string `yaml:"user_agent" mapstructure:"user_agent"`
}

// ScrapersConfig holds per-source scraper settings.
type ScrapersConfig struct {
	Techcabal SourceConfig `yaml:"techcabal" mapstructure:"techcabal"`
	Techpoint SourceConfig `yaml:"techpoint" mapstructure:"techpoint"`
}

// SourceConfig configures one news source.
type SourceConfig struct {
	Enabled   bool    `yaml:"enabled" mapstructure:"enabled"`
	MaxPages  int     `yaml:"max_pages" mapstructure:"max_pages"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	Retries   int     `yaml:"retries" mapstructure:"retries"`
	Priority  int     `yaml:"priority" mapstructure:"priority"`
}

// FetchConfig configures the HTTP fetcher.
type FetchConfig struct {
	TimeoutSecs  int  `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries   int  `yaml:"max_retries" mapstructure:"max_retries"`
	CacheTTLMins int  `yaml:"cache_ttl_mins" mapstructure:"cache_ttl_mins"`
	SkipRobots   bool `yaml:"skip_robots" mapstructure:"skip_robots"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Enabled returns the names of enabled sources in priority order
// (lower priority number runs first).
func (s ScrapersConfig) Enabled() []string {
	type entry struct {
		name     string
		priority int
	}
	var entries []entry
	if s.Techcabal.Enabled {
		entries = append(entries, entry{"techcabal", s.Techcabal.Priority})
	}
	if s.Techpoint.Enabled {
		entries = append(entries, entry{"techpoint", s.Techpoint.Priority})
	}

	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].priority < entries[j-1].priority; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Source returns the config block for a named source.
func (s ScrapersConfig) Source(name string) (SourceConfig, bool) {
	switch name {
	case "techcabal":
		return s.Techcabal, true
	case "techpoint":
		return s.Techpoint, true
	default:
		return SourceConfig{}, false
	}
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEMINA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "data/lemina.db")
	v.SetDefault("global.max_workers", 4)
	v.SetDefault("global.data_dir", "data")
	v.SetDefault("global.user_agent", "startup-cli/1.0 (+https://github.com/lemina/startup-cli)")
	v.SetDefault("scrapers.techcabal.enabled", true)
	v.SetDefault("scrapers.techcabal.max_pages", 3)
	v.SetDefault("scrapers.techcabal.rate_limit", 0.5)
	v.SetDefault("scrapers.techcabal.retries", 3)
	v.SetDefault("scrapers.techcabal.priority", 1)
	v.SetDefault("scrapers.techpoint.enabled", true)
	v.SetDefault("scrapers.techpoint.max_pages", 3)
	v.SetDefault("scrapers.techpoint.rate_limit", 0.5)
	v.SetDefault("scrapers.techpoint.retries", 3)
	v.SetDefault("scrapers.techpoint.priority", 2)
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("fetch.max_retries", 3)
	v.SetDefault("fetch.cache_ttl_mins", 15)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
