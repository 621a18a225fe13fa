package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/sportscal/db"
)

const (
	DefaultPort      = 5000
	DefaultStaticDir = "frontend"
	DefaultLogLevel  = "info"
)

// DatabaseCandidates are tried in order when no database URL is configured.
// The last entry is used (and created) when none exist.
var DatabaseCandidates = []string{"database/sports.db", "database/app.db"}

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	SchemaPath   string
	SeedPath     string
	StaticDir    string
	LogLevel     string
	ConfigFile   string
}

// fileConfig is the shape of the optional YAML config file
type fileConfig struct {
	Port         int    `yaml:"port"`
	DatabaseURL  string `yaml:"database_url"`
	DatabaseType string `yaml:"database_type"`
	SchemaPath   string `yaml:"schema_path"`
	SeedPath     string `yaml:"seed_path"`
	StaticDir    string `yaml:"static_dir"`
	LogLevel     string `yaml:"log_level"`
}

// ParseFlags builds the configuration.
// Precedence: CLI flag, then environment variable, then config file, then defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("sportscal", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (SQLite file path or PostgreSQL DSN)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.SchemaPath, "schema", "", "Schema SQL file applied on first run")
	fs.StringVar(&cfg.SeedPath, "seed", "", "Seed SQL file applied on first run")
	fs.StringVar(&cfg.StaticDir, "static", "", "Directory with the front end files")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.ConfigFile, "c", "", "YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		}
	}
	fallback(&cfg.DatabaseURL, os.Getenv("DATABASE_URL"))
	fallback(&cfg.DatabaseType, os.Getenv("DATABASE_TYPE"))
	fallback(&cfg.SchemaPath, os.Getenv("SCHEMA_PATH"))
	fallback(&cfg.SeedPath, os.Getenv("SEED_PATH"))
	fallback(&cfg.StaticDir, os.Getenv("STATIC_DIR"))
	fallback(&cfg.LogLevel, os.Getenv("LOG_LEVEL"))
	fallback(&cfg.ConfigFile, os.Getenv("CONFIG_FILE"))

	// Then the config file
	if cfg.ConfigFile != "" {
		fc, err := readConfigFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, err
		}
		if cfg.Port == 0 {
			cfg.Port = fc.Port
		}
		fallback(&cfg.DatabaseURL, fc.DatabaseURL)
		fallback(&cfg.DatabaseType, fc.DatabaseType)
		fallback(&cfg.SchemaPath, fc.SchemaPath)
		fallback(&cfg.SeedPath, fc.SeedPath)
		fallback(&cfg.StaticDir, fc.StaticDir)
		fallback(&cfg.LogLevel, fc.LogLevel)
	}

	// Defaults
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	fallback(&cfg.StaticDir, DefaultStaticDir)
	fallback(&cfg.LogLevel, DefaultLogLevel)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseType = string(dialect)

	if cfg.DatabaseURL == "" {
		if dialect == db.Postgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultDatabasePath()
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return Config{}, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	return cfg, nil
}

// DefaultDatabasePath returns the first existing candidate, or the last one
func DefaultDatabasePath() string {
	for _, p := range DatabaseCandidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return DatabaseCandidates[len(DatabaseCandidates)-1]
}

func readConfigFile(path string) (fileConfig, error) {
	var fc fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc, nil
}

func fallback(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}
