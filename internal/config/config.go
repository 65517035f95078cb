package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Log struct {
	Level      string `yaml:"level" schema:"level"`
	File       string `yaml:"file" schema:"file"`
	MaxSize    int    `yaml:"max_size" schema:"max_size"` // megabytes
	MaxBackups int    `yaml:"max_backups" schema:"max_backups"`
	MaxAge     int    `yaml:"max_age" schema:"max_age"` // days
}

type Config struct {
	Mode              string `yaml:"mode" schema:"mode"`
	Output            string `yaml:"output" schema:"output"`
	Workers           int    `yaml:"workers" schema:"workers"`
	CountWorkers      int    `yaml:"count_workers" schema:"count_workers"`
	ParallelThreshold int    `yaml:"parallel_threshold" schema:"parallel_threshold"`
	Log               Log    `yaml:"log" schema:"log"`
}

func Default() *Config {
	return &Config{
		Mode:              "production",
		Output:            "text",
		Workers:           runtime.GOMAXPROCS(0),
		CountWorkers:      runtime.GOMAXPROCS(0),
		ParallelThreshold: 1 << 16,
		Log: Log{
			Level:      "warn",
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

var envKeys = map[string]string{
	"MINEFIELD_MODE":               "mode",
	"MINEFIELD_OUTPUT":             "output",
	"MINEFIELD_WORKERS":            "workers",
	"MINEFIELD_COUNT_WORKERS":      "count_workers",
	"MINEFIELD_PARALLEL_THRESHOLD": "parallel_threshold",
	"MINEFIELD_LOG_LEVEL":          "log.level",
	"MINEFIELD_LOG_FILE":           "log.file",
}

var decoder = schema.NewDecoder()

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then MINEFIELD_* environment variables,
// then key=value overrides such as "log.level=debug".
func Load(path string, overrides []string) (*Config, error) {
	c := Default()

	if path != "" {
		if err := c.readFile(path); err != nil {
			return nil, err
		}
	}

	env := make(map[string][]string)
	for name, key := range envKeys {
		if value, ok := os.LookupEnv(name); ok {
			env[key] = []string{value}
		}
	}
	if err := decoder.Decode(c, env); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if err := c.Apply(overrides); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) readFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return nil
}

// Apply sets fields from key=value pairs. Nested keys use dots.
func (c *Config) Apply(overrides []string) error {
	if len(overrides) == 0 {
		return nil
	}
	src := make(map[string][]string, len(overrides))
	for _, o := range overrides {
		key, value, found := strings.Cut(o, "=")
		if !found || key == "" {
			return fmt.Errorf("invalid override %q, want key=value", o)
		}
		src[strings.TrimSpace(key)] = []string{strings.TrimSpace(value)}
	}
	if err := decoder.Decode(c, src); err != nil {
		return fmt.Errorf("invalid override: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Mode {
	case "production", "development":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Workers < 0 || c.CountWorkers < 0 || c.ParallelThreshold < 0 {
		return fmt.Errorf("workers and parallel_threshold must not be negative")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":               c.Mode,
		"output":             c.Output,
		"workers":            c.Workers,
		"count_workers":      c.CountWorkers,
		"parallel_threshold": c.ParallelThreshold,
		"log_level":          c.Log.Level,
		"log_file":           c.Log.File,
	}
}
