package router

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds router settings. The zero value is not useful; start from
// DefaultConfig or LoadConfig.
type Config struct {
	// Debug enables debug logging to stderr when no Logger is supplied.
	Debug bool `toml:"debug"`
	// LogLevel is one of "debug", "info", "warn", "error". Empty means
	// "warn", or "debug" when Debug is set.
	LogLevel string `toml:"log_level"`
	// PrimaryButton is the mouse button that drives press, release, click
	// and drag.
	PrimaryButton int `toml:"primary_button"`
	// TouchCapture enables the exclusive touch protocol. When false every
	// contact is routed through mouse emulation.
	TouchCapture bool `toml:"touch_capture"`

	// Logger overrides the logger built from Debug and LogLevel.
	Logger *slog.Logger `toml:"-"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		PrimaryButton: 0,
		TouchCapture:  true,
	}
}

// ParseConfig decodes TOML settings on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse router config: %w", err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("parse router config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a TOML file and decodes it on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load router config %s: %w", path, err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("load router config %s: %w", path, err)
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// logger returns cfg.Logger, or builds one. Without Debug or LogLevel the
// router is silent.
func (cfg Config) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	if !cfg.Debug && cfg.LogLevel == "" {
		return slog.New(slog.DiscardHandler)
	}
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	if cfg.Debug && cfg.LogLevel == "" {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("component", "router")
}
