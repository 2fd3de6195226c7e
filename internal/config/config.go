// Package config provides functionality for managing configuration options
// for the application using command-line flags, a JSON file and environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"port"`

	// DatabaseDSN holds the database connection string. Empty selects
	// the in-memory user repository.
	DatabaseDSN string `json:"database_dsn"`

	// LogLevel is the minimum zap level to log.
	LogLevel string `json:"log_level"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// Parse parses os.Args and the process environment. It exits the
// process on invalid flags or an unreadable config file.
func Parse() *Options {
	opts, err := ParseArgs(flag.CommandLine, os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return opts
}

// ParseArgs resolves options with increasing precedence: flag defaults,
// the JSON config file, explicitly set flags, then environment variables.
func ParseArgs(fset *flag.FlagSet, args []string, getenv func(string) string) (*Options, error) {
	opts := &Options{}
	fset.StringVar(&opts.Port, "a", "localhost:8080", "run on ip:port server")
	fset.StringVar(&opts.DatabaseDSN, "d", "", "db address")
	fset.StringVar(&opts.LogLevel, "l", "info", "log level")
	fset.StringVar(&opts.Config, "config", "config.json", "path to config file")
	fset.StringVar(&opts.Config, "c", "config.json", "path to config file (shorthand)")

	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if configPath := getenv("CONFIG"); configPath != "" {
		opts.Config = configPath
	}

	if opts.Config != "" {
		if err := loadFile(opts.Config, opts); err != nil {
			return nil, err
		}
		// flags given on the command line win over the file
		if err := fset.Parse(args); err != nil {
			return nil, fmt.Errorf("parse flags: %w", err)
		}
	}

	if serverAddress := getenv("SERVER_ADDRESS"); serverAddress != "" {
		opts.Port = serverAddress
	}
	if dsn := getenv("DATABASE_DSN"); dsn != "" {
		opts.DatabaseDSN = dsn
	}
	if level := getenv("LOG_LEVEL"); level != "" {
		opts.LogLevel = level
	}

	return opts, nil
}

// loadFile merges the JSON file at path into opts. A missing file is ignored.
func loadFile(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error while reading config file: %w", err)
	}
	if err := json.Unmarshal(data, opts); err != nil {
		return fmt.Errorf("error while parsing config file: %w", err)
	}
	return nil
}
