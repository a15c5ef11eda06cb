package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/mathsprint/internal/problemgen"
	"github.com/abhisek/mathsprint/internal/session"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	opts, err := cfg.SessionOptions()
	require.NoError(t, err)
	assert.Equal(t, session.DefaultOptions(), opts)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := writeConfig(t, `
store:
  backend: redis
  redis:
    addr: cache:6379
    db: 2
round:
  duration: 30s
drill:
  add: false
  sub: false
  div: false
  negatives: true
  double_digits: true
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "cache:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	assert.Equal(t, "mathsprint:", cfg.Store.Redis.Prefix, "unset fields keep defaults")
	assert.Equal(t, problemgen.Config{Mul: true, Negatives: true, DoubleDigits: true}, cfg.Drill)
	assert.Equal(t, "150ms", cfg.Round.CorrectDelay)

	opts, err := cfg.SessionOptions()
	require.NoError(t, err)
	assert.Equal(t, 30, opts.RoundTicks)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "store: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MATHSPRINT_STORE", "memory")
	t.Setenv("MATHSPRINT_DB", "/tmp/x.db")
	t.Setenv("MATHSPRINT_REDIS_ADDR", "r:1")
	t.Setenv("MATHSPRINT_REDIS_PASSWORD", "secret")
	t.Setenv("MATHSPRINT_REDIS_DB", "4")
	t.Setenv("MATHSPRINT_ROUND_DURATION", "10s")
	t.Setenv("MATHSPRINT_LOG_LEVEL", "warn")
	t.Setenv("MATHSPRINT_LOG_FILE", "/tmp/x.log")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "/tmp/x.db", cfg.Store.Path)
	assert.Equal(t, "r:1", cfg.Store.Redis.Addr)
	assert.Equal(t, "secret", cfg.Store.Redis.Password)
	assert.Equal(t, 4, cfg.Store.Redis.DB)
	assert.Equal(t, "10s", cfg.Round.Duration)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/x.log", cfg.Logging.File)
}

func TestApplyEnv_BadRedisDB(t *testing.T) {
	t.Setenv("MATHSPRINT_REDIS_DB", "two")
	cfg := DefaultConfig()
	assert.Error(t, cfg.ApplyEnv())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Store.Backend = "postgres" }},
		{"redis without addr", func(c *Config) { c.Store.Backend = BackendRedis; c.Store.Redis.Addr = "" }},
		{"bad duration", func(c *Config) { c.Round.Duration = "soon" }},
		{"zero tick", func(c *Config) { c.Round.Tick = "0s" }},
		{"negative delay", func(c *Config) { c.Round.WrongDelay = "-1s" }},
		{"duration shorter than tick", func(c *Config) { c.Round.Duration = "500ms" }},
		{"no operator", func(c *Config) { c.Drill = problemgen.Config{Negatives: true} }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSessionOptions_RoundsDownToTicks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Round.Duration = "2500ms"
	cfg.Round.Tick = "1s"

	opts, err := cfg.SessionOptions()
	require.NoError(t, err)
	assert.Equal(t, 2, opts.RoundTicks)
	assert.Equal(t, time.Second, opts.TickInterval)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("MATHSPRINT_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/cfg", "mathsprint", "config.yaml"), p)

	t.Setenv("MATHSPRINT_CONFIG", "/etc/ms.yaml")
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/ms.yaml", p)
}
