// Package config loads wordladder settings from an optional YAML file and
// WORDLADDER_* environment variables, then validates them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordladder/search"
)

// Store backends.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
)

// Config aggregates application configuration values.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Lengths []int         `yaml:"lengths" validate:"min=1,dive,min=1,max=32"`
	Search  SearchConfig  `yaml:"search"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig locates dictionaries and persisted graphs.
type DataConfig struct {
	DictDir    string `yaml:"dict_dir" validate:"required"`
	GraphDir   string `yaml:"graph_dir" validate:"required_if=Backend file"`
	Backend    string `yaml:"backend" validate:"oneof=file badger"`
	BadgerPath string `yaml:"badger_path" validate:"required_if=Backend badger"`
	// AutoBuild builds a missing graph on first use.
	AutoBuild bool `yaml:"auto_build"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	Algorithm string `yaml:"algorithm" validate:"required,algorithm"`
}

// ServerConfig governs the HTTP server.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required,hostname_port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	// GameTTL drops game sessions idle for longer than this.
	GameTTL         time.Duration `yaml:"game_ttl" validate:"gt=0"`
	MaxGames        int           `yaml:"max_games" validate:"gt=0"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format        string `yaml:"format" validate:"oneof=text json"`
	IncludeCaller bool   `yaml:"include_caller"`
}

const (
	defaultDictDir         = "data/dictionaries"
	defaultGraphDir        = "data/graphs"
	defaultBadgerPath      = "data/badger"
	defaultAlgorithm       = "A*"
	defaultAddr            = "127.0.0.1:8080"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultGameTTL         = 30 * time.Minute
	defaultMaxGames        = 10000
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = "text"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		_, err := search.ParseAlgorithm(fl.Field().String())
		return err == nil
	})

	return v
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data: DataConfig{
			DictDir:    defaultDictDir,
			GraphDir:   defaultGraphDir,
			Backend:    BackendFile,
			BadgerPath: defaultBadgerPath,
		},
		Lengths: []int{3, 5},
		Search:  SearchConfig{Algorithm: defaultAlgorithm},
		Server: ServerConfig{
			Addr:            defaultAddr,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			GameTTL:         defaultGameTTL,
			MaxGames:        defaultMaxGames,
		},
		Logging: LoggingConfig{Level: defaultLoggingLevel, Format: defaultLoggingFormat},
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when
// path is empty), applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: invalid: %w", err)
	}

	return nil
}

// Algorithm returns the configured default search algorithm.
func (c Config) Algorithm() search.Algorithm {
	a, err := search.ParseAlgorithm(c.Search.Algorithm)
	if err != nil {
		return search.AStar
	}

	return a
}

func applyEnv(cfg *Config) error {
	cfg.Data.DictDir = valueOrDefault("WORDLADDER_DICT_DIR", cfg.Data.DictDir)
	cfg.Data.GraphDir = valueOrDefault("WORDLADDER_GRAPH_DIR", cfg.Data.GraphDir)
	cfg.Data.Backend = valueOrDefault("WORDLADDER_STORE", cfg.Data.Backend)
	cfg.Data.BadgerPath = valueOrDefault("WORDLADDER_BADGER_PATH", cfg.Data.BadgerPath)
	cfg.Data.AutoBuild = parseBoolWithDefault("WORDLADDER_AUTO_BUILD", cfg.Data.AutoBuild)
	cfg.Search.Algorithm = valueOrDefault("WORDLADDER_ALGORITHM", cfg.Search.Algorithm)
	cfg.Server.Addr = valueOrDefault("WORDLADDER_ADDR", cfg.Server.Addr)
	cfg.Logging.Level = valueOrDefault("WORDLADDER_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = valueOrDefault("WORDLADDER_LOG_FORMAT", cfg.Logging.Format)

	if v := os.Getenv("WORDLADDER_LENGTHS"); v != "" {
		lengths, err := parseInts(v)
		if err != nil {
			return fmt.Errorf("config: invalid WORDLADDER_LENGTHS: %w", err)
		}
		cfg.Lengths = lengths
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseInts(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}
