package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pivolan/go_utils"
)

const (
	SinkPNG  = "png"
	SinkSVG  = "svg"
	SinkHTML = "html"
	SinkNone = "none"
)

var sinks = []string{SinkPNG, SinkSVG, SinkHTML, SinkNone}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type Config struct {
	DatasetPath string `envconfig:"DATASET_PATH" default:"healthcare_dataset_1500.csv"`
	ChartSink   string `envconfig:"CHART_SINK" default:"png"`
	ChartDir    string `envconfig:"CHART_DIR" default:"charts"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Currency    string `envconfig:"CURRENCY" default:"₹"`
}

// Load reads the optional .env files and then the process environment.
// A missing .env is fine, anything else godotenv reports is not.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	cfg.ChartSink = strings.ToLower(strings.TrimSpace(cfg.ChartSink))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatasetPath) == "" {
		return errors.New("DATASET_PATH is empty")
	}
	if !go_utils.InArray(c.ChartSink, sinks) {
		return fmt.Errorf("CHART_SINK %q: expected one of %s", c.ChartSink, strings.Join(sinks, ", "))
	}
	if _, ok := levels[c.LogLevel]; !ok {
		return fmt.Errorf("LOG_LEVEL %q: expected debug, info, warn or error", c.LogLevel)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, info when unknown.
func (c *Config) SlogLevel() slog.Level {
	if l, ok := levels[c.LogLevel]; ok {
		return l
	}
	return slog.LevelInfo
}
