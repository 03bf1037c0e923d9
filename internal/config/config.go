// Package config loads runtime settings from .env, the environment, and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvDB       = "RECIPEBOOK_DB"
	EnvLogFile  = "RECIPEBOOK_LOG_FILE"
	EnvLogLevel = "RECIPEBOOK_LOG_LEVEL"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath    string // bolt file holding the recipe blob
	LogFile   string // "stderr" logs to the console
	LogLevel  string // off, normal, verbose
	Ephemeral bool   // keep recipes in memory only
}

// Load reads .env (if present), then the environment, then args.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:   getEnv(EnvDB, defaultDBPath()),
		LogFile:  getEnv(EnvLogFile, ".recipebook-logs/recipebook.log"),
		LogLevel: getEnv(EnvLogLevel, "normal"),
	}

	fs := flag.NewFlagSet("recipebook", flag.ContinueOnError)
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the recipe database file")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "file to write logs to (use \"stderr\" to log to console)")
	verbose := fs.Bool("verbose", false, "enable verbose/debug logging")
	quiet := fs.Bool("quiet", false, "disable all logging")
	fs.BoolVar(&cfg.Ephemeral, "ephemeral", false, "keep recipes in memory only; nothing is saved")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *verbose && *quiet {
		return nil, errors.New("-verbose and -quiet are mutually exclusive")
	}
	if *verbose {
		cfg.LogLevel = "verbose"
	}
	if *quiet {
		cfg.LogLevel = "off"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all required configuration is present.
func (c *Config) Validate() error {
	if c.DBPath == "" && !c.Ephemeral {
		return errors.New("database path is required (set -db or " + EnvDB + ")")
	}
	return nil
}

// defaultDBPath puts the database under the user's config directory,
// falling back to the working directory.
func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "recipebook.db"
	}
	return filepath.Join(dir, "recipebook", "recipes.db")
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
