// Package config loads mathsprint settings from a YAML file and MATHSPRINT_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/mathsprint/internal/problemgen"
	"github.com/abhisek/mathsprint/internal/session"
	"github.com/abhisek/mathsprint/internal/store/redisstore"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds all mathsprint settings.
type Config struct {
	Store   StoreConfig       `yaml:"store"`
	Round   RoundConfig       `yaml:"round"`
	Drill   problemgen.Config `yaml:"drill"`
	Logging LoggingConfig     `yaml:"logging"`
}

// StoreConfig selects and configures the record store.
type StoreConfig struct {
	// Backend is one of "sqlite", "redis", "memory".
	Backend string `yaml:"backend"`

	// Path is the SQLite database file. Empty uses the data directory.
	Path string `yaml:"path"`

	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// RoundConfig holds round timing as duration strings ("60s", "150ms").
type RoundConfig struct {
	Duration     string `yaml:"duration"`
	Tick         string `yaml:"tick"`
	CorrectDelay string `yaml:"correct_delay"`
	WrongDelay   string `yaml:"wrong_delay"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string `yaml:"level"`

	// File is the log path. Empty uses the data directory.
	File string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Backend: BackendSQLite,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: redisstore.DefaultPrefix,
			},
		},
		Round: RoundConfig{
			Duration:     "60s",
			Tick:         "1s",
			CorrectDelay: "150ms",
			WrongDelay:   "400ms",
		},
		Drill: problemgen.DefaultConfig(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the config file location:
// 1. MATHSPRINT_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/mathsprint/config.yaml
// 3. ~/.config/mathsprint/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("MATHSPRINT_CONFIG"); p != "" {
		return p, nil
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "mathsprint", "config.yaml"), nil
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays MATHSPRINT_* environment variables onto c.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("MATHSPRINT_STORE"); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv("MATHSPRINT_DB"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("MATHSPRINT_REDIS_ADDR"); v != "" {
		c.Store.Redis.Addr = v
	}
	if v := os.Getenv("MATHSPRINT_REDIS_PASSWORD"); v != "" {
		c.Store.Redis.Password = v
	}
	if v := os.Getenv("MATHSPRINT_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MATHSPRINT_REDIS_DB: %w", err)
		}
		c.Store.Redis.DB = db
	}
	if v := os.Getenv("MATHSPRINT_ROUND_DURATION"); v != "" {
		c.Round.Duration = v
	}
	if v := os.Getenv("MATHSPRINT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MATHSPRINT_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	return nil
}

// Validate checks backend, timing, drill and logging settings.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.Store.Redis.Addr == "" {
			return fmt.Errorf("store.redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown store backend: %q", c.Store.Backend)
	}

	if _, err := c.SessionOptions(); err != nil {
		return err
	}
	if err := c.Drill.Validate(); err != nil {
		return fmt.Errorf("drill: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// SessionOptions converts the round timing into engine options. The round
// length is rounded down to whole ticks.
func (c Config) SessionOptions() (session.Options, error) {
	total, err := parsePositive("round.duration", c.Round.Duration)
	if err != nil {
		return session.Options{}, err
	}
	tick, err := parsePositive("round.tick", c.Round.Tick)
	if err != nil {
		return session.Options{}, err
	}
	correct, err := parsePositive("round.correct_delay", c.Round.CorrectDelay)
	if err != nil {
		return session.Options{}, err
	}
	wrong, err := parsePositive("round.wrong_delay", c.Round.WrongDelay)
	if err != nil {
		return session.Options{}, err
	}
	if total < tick {
		return session.Options{}, fmt.Errorf("round.duration %s is shorter than round.tick %s", total, tick)
	}
	return session.Options{
		RoundTicks:   int(total / tick),
		TickInterval: tick,
		CorrectDelay: correct,
		WrongDelay:   wrong,
	}, nil
}

// LogLevel parses the configured level.
func (c Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logging.level: %w", err)
	}
	return lvl, nil
}

func parsePositive(field, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", field, raw)
	}
	return d, nil
}
