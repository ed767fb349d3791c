// Package config loads client and CLI settings from defaults, a YAML or JSON
// file, .env files and TINVEST_* environment variables, in that order.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TINVEST_"

// Config is the complete tinvest configuration.
type Config struct {
	API     APIConfig     `json:"api" yaml:"api"`
	Account string        `json:"account,omitempty" yaml:"account,omitempty" env:"ACCOUNT"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// APIConfig selects the environment and credentials.
type APIConfig struct {
	Token   string `json:"token" yaml:"token" env:"TOKEN"`
	Sandbox bool   `json:"sandbox" yaml:"sandbox" env:"SANDBOX"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" env:"BASE_URL"` // overrides Sandbox
	Timeout string `json:"timeout" yaml:"timeout" env:"TIMEOUT"`                         // e.g. "30s"
}

// TimeoutDuration converts the timeout string to a time.Duration.
func (a APIConfig) TimeoutDuration() (time.Duration, error) {
	if a.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(a.Timeout)
}

// JournalConfig locates the order journal.
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path" env:"JOURNAL_DB"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level" env:"LOG_LEVEL"`    // debug, info, warn, error
	Format string `json:"format" yaml:"format" env:"LOG_FORMAT"` // console or json
}

// Default returns a configuration with sensible defaults. It has no token
// and so does not validate on its own.
func Default() *Config {
	return &Config{
		API: APIConfig{
			Timeout: "30s",
		},
		Journal: JournalConfig{
			DBPath: "tinvest-journal.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds a configuration from Default, the file at path (skipped when
// path is empty), the given .env files and the process environment. Missing
// .env files are ignored. Process variables win over .env values. The result
// is not validated.
func Load(path string, dotenv ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	vars, err := environ(dotenv)
	if err != nil {
		return nil, err
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix, Environment: vars}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads and validates the configuration at path.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.readFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, c); err != nil {
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}
	return nil
}

func environ(dotenv []string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, f := range dotenv {
		m, err := godotenv.Read(f)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range m {
			if _, ok := vars[k]; !ok {
				vars[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		vars[k] = v
	}
	return vars, nil
}

// SaveToFile writes the configuration as YAML for .yaml/.yml paths and as
// JSON otherwise. The file is readable by the owner only since it usually
// holds the token.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is usable by the client.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.Token) == "" {
		return fmt.Errorf("api.token is required")
	}
	d, err := c.API.TimeoutDuration()
	if err != nil {
		return fmt.Errorf("api.timeout: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be 'console' or 'json'")
	}
	return nil
}

// MaskedToken returns the token with all but its last four characters
// hidden, for printing.
func (c *Config) MaskedToken() string {
	tok := c.API.Token
	if tok == "" {
		return ""
	}
	if len(tok) <= 4 {
		return "***"
	}
	return "***" + tok[len(tok)-4:]
}
