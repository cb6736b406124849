package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "FLASHDECK_"

// Config holds all runtime settings of the API server.
type Config struct {
	Port           string `koanf:"port"`
	Environment    string `koanf:"environment"`
	LogLevel       string `koanf:"log_level"`
	DBDriver       string `koanf:"db_driver"`
	DBURL          string `koanf:"db_url"`
	AllowedOrigins string `koanf:"allowed_origins"`
	ShareIDLength  int    `koanf:"share_id_length"`
}

// Flags declares the command line flags understood by Load. Flag defaults
// double as configuration defaults.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("flashdeck", pflag.ContinueOnError)
	fs.String("port", "8080", "HTTP listen port")
	fs.String("environment", "development", "deployment environment (development, production)")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("db-driver", "sqlite", "database driver (postgres, sqlite)")
	fs.String("db-url", "flashdeck.db", "database DSN or SQLite file path")
	fs.String("allowed-origins", "http://localhost:3000,http://localhost:5173", "comma separated CORS origins")
	fs.Int("share-id-length", 10, "length of generated share tokens")
	return fs
}

// Load resolves configuration from FLASHDECK_* environment variables and
// command line flags. Flags that were set explicitly win over the
// environment; unset flags only provide defaults.
func Load(args []string) (Config, error) {
	fs := Flags()
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	err = k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(fs, f)
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported db_driver %q", c.DBDriver)
	}
	if c.DBURL == "" {
		return fmt.Errorf("db_url is required")
	}
	if c.ShareIDLength <= 0 {
		return fmt.Errorf("share_id_length must be positive, got %d", c.ShareIDLength)
	}
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	return nil
}

// Origins splits AllowedOrigins into the list handed to the CORS handler.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return "0.0.0.0:" + c.Port
}
