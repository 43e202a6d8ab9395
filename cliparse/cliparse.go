// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort      = 4000
	DefaultSQLiteURL = "file:data.db"
	DefaultAPIURL    = "http://localhost:4000"
	DefaultBioLimit  = 500
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Config is the API server configuration.
type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
}

// ClientConfig is the terminal survey client configuration.
type ClientConfig struct {
	APIURL      string
	DraftDir    string
	CatalogPath string
	BioLimit    int
}

// LoadDotEnv loads KEY=value pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates server flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("waterlily-api", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", DefaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLiteURL
	}

	return cfg, nil
}

// ParseClientFlags reads the terminal client's flags with env fallback.
func ParseClientFlags(args []string) (ClientConfig, error) {
	var cfg ClientConfig

	fs := flag.NewFlagSet("survey", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "api", "", "Survey API base URL")
	fs.StringVar(&cfg.DraftDir, "draft-dir", "", "Directory holding the saved draft")
	fs.StringVar(&cfg.CatalogPath, "catalog", "", "Question catalog file (YAML or JSON)")
	fs.IntVar(&cfg.BioLimit, "bio-limit", 0, "Maximum non-whitespace characters in the bio")

	if err := fs.Parse(args); err != nil {
		return ClientConfig{}, err
	}

	if cfg.APIURL == "" {
		cfg.APIURL = os.Getenv("SURVEY_API_URL")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	if cfg.DraftDir == "" {
		cfg.DraftDir = os.Getenv("SURVEY_DRAFT_DIR")
	}
	if cfg.DraftDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return ClientConfig{}, errors.New("draft directory required (use -draft-dir or SURVEY_DRAFT_DIR env)")
		}
		cfg.DraftDir = filepath.Join(dir, "waterlily")
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("SURVEY_CATALOG")
	}

	if cfg.BioLimit == 0 {
		limit, err := envInt("SURVEY_BIO_LIMIT", DefaultBioLimit)
		if err != nil {
			return ClientConfig{}, err
		}
		cfg.BioLimit = limit
	}
	if cfg.BioLimit < 0 {
		return ClientConfig{}, errors.New("bio limit must be positive")
	}

	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}
