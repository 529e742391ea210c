package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. JOKEBOARD_COUNT.
const EnvPrefix = "JOKEBOARD"

const (
	DefaultCount    = 5
	DefaultEndpoint = "https://icanhazdadjoke.com"
	DefaultTimeout  = 10 * time.Second
	DefaultLogLevel = "info"
)

// Config holds application-level configuration.
type Config struct {
	Count       int           `mapstructure:"count"`        // Distinct jokes per run
	MaxAttempts int           `mapstructure:"max_attempts"` // Fetch bound per run; 0 means count*10
	Endpoint    string        `mapstructure:"endpoint"`     // Joke API base URL
	Timeout     time.Duration `mapstructure:"timeout"`      // Per-request timeout; 0 disables
	LogFile     string        `mapstructure:"log_file"`     // Empty discards logs in the TUI
	LogLevel    string        `mapstructure:"log_level"`    // debug, info, warn, error
}

// NewViper returns a viper instance with defaults and environment binding.
//
//	JOKEBOARD_COUNT         — jokes per run (default 5)
//	JOKEBOARD_MAX_ATTEMPTS  — fetch bound per run (default count*10)
//	JOKEBOARD_ENDPOINT      — joke API base URL (default https://icanhazdadjoke.com)
//	JOKEBOARD_TIMEOUT       — per-request timeout (default 10s)
//	JOKEBOARD_LOG_FILE      — log destination (default none)
//	JOKEBOARD_LOG_LEVEL     — log level (default info)
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("count", DefaultCount)
	v.SetDefault("max_attempts", 0)
	v.SetDefault("endpoint", DefaultEndpoint)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads an optional config file and unmarshals the merged settings.
// With file empty, jokeboard.yaml is searched in the working directory and
// $HOME/.config/jokeboard; a missing file is not an error.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("jokeboard")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/jokeboard")
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if strings.TrimSpace(c.Endpoint) == "" {
		c.Endpoint = DefaultEndpoint
	}
	c.Endpoint = strings.TrimRight(strings.TrimSpace(c.Endpoint), "/")
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate rejects settings the collector or client cannot run with.
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", c.Count)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("invalid max_attempts %d: must not be negative", c.MaxAttempts)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", c.Timeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	parsed, err := url.Parse(c.Endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid endpoint: must be an absolute URL")
	}
	switch parsed.Scheme {
	case "https":
	case "http":
		if !isLoopback(parsed.Hostname()) {
			return fmt.Errorf("invalid endpoint: http is only allowed for loopback hosts")
		}
	default:
		return fmt.Errorf("invalid endpoint: unsupported scheme %q", parsed.Scheme)
	}
	return nil
}

func isLoopback(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
