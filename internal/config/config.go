package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabasePath     string
	GeneratorAddress string
	GenerateTimeout  time.Duration
	ShutdownTimeout  time.Duration
}

const (
	defaultRunAddress      = ":5000"
	defaultDatabasePath    = "echocare.db"
	defaultGenerateTimeout = 90 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabasePath:     getString(lookup, "DATABASE_PATH", defaultDatabasePath),
		GeneratorAddress: getString(lookup, "GENERATOR_ADDRESS", ""),
		GenerateTimeout:  getDuration(lookup, "GENERATE_TIMEOUT", defaultGenerateTimeout),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("echocare", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		generateTimeoutStr = cfg.GenerateTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "SQLite database file path")
	fs.StringVar(&cfg.GeneratorAddress, "g", cfg.GeneratorAddress, "Completion backend base URL")
	fs.StringVar(&generateTimeoutStr, "generate-timeout", generateTimeoutStr, "Deadline for a single generation call (0 disables)")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.GenerateTimeout, err = time.ParseDuration(generateTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid generate timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.GenerateTimeout < 0 {
		cfg.GenerateTimeout = defaultGenerateTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("database path must be provided")
	}

	if cfg.GeneratorAddress == "" {
		return nil, fmt.Errorf("generator address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
