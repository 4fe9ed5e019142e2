// Package config loads application configuration from file and
// environment and owns global logger setup.
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
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Serp       SerpConfig       `yaml:"serp" mapstructure:"serp"`
	Anthropic  AnthropicConfig  `yaml:"anthropic" mapstructure:"anthropic"`
	Apollo     ApolloConfig     `yaml:"apollo" mapstructure:"apollo"`
	EmailCheck EmailCheckConfig `yaml:"emailcheck" mapstructure:"emailcheck"`
	Discovery  DiscoveryConfig  `yaml:"discovery" mapstructure:"discovery"`
	Contacts   ContactsConfig   `yaml:"contacts" mapstructure:"contacts"`
	Export     ExportConfig     `yaml:"export" mapstructure:"export"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// SerpConfig holds search broker settings.
type SerpConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// AnthropicConfig holds Anthropic API settings for the company filter.
type AnthropicConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// ApolloConfig holds Apollo.io enrichment settings.
type ApolloConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	RevealPhone bool   `yaml:"reveal_phone" mapstructure:"reveal_phone"`
}

// EmailCheckConfig holds AbstractAPI email validation settings.
type EmailCheckConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// DiscoveryConfig tunes company discovery.
type DiscoveryConfig struct {
	SearchDelayMillis int `yaml:"search_delay_millis" mapstructure:"search_delay_millis"`
	DefaultLimit      int `yaml:"default_limit" mapstructure:"default_limit"`
}

// ContactsConfig tunes contact resolution.
type ContactsConfig struct {
	Roles        []string `yaml:"roles" mapstructure:"roles"`
	SynonymsFile string   `yaml:"synonyms_file" mapstructure:"synonyms_file"`
}

// ExportConfig sets the default export destination.
type ExportConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
	Path   string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PROSPECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

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

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "prospect.db")
	v.SetDefault("serp.base_url", "https://api.brightdata.com/serp")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("apollo.base_url", "https://api.apollo.io/v1")
	v.SetDefault("apollo.reveal_phone", false)
	v.SetDefault("emailcheck.base_url", "https://emailvalidation.abstractapi.com/v1")
	v.SetDefault("discovery.search_delay_millis", 1000)
	v.SetDefault("discovery.default_limit", 10)
	v.SetDefault("contacts.roles", []string{"CEO", "CTO"})
	v.SetDefault("export.format", "csv")
	v.SetDefault("export.path", "prospects.csv")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Validate checks settings needed by every command.
func (c *StoreConfig) Validate() error {
	switch c.Driver {
	case "sqlite", "postgres":
	default:
		return eris.Errorf("config: unknown store driver %q", c.Driver)
	}
	if c.DatabaseURL == "" {
		return eris.New("config: store.database_url is required")
	}
	return nil
}

// Validate checks that the broker is usable.
func (c *SerpConfig) Validate() error {
	if c.Key == "" {
		return eris.New("config: serp.key is required")
	}
	return nil
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
