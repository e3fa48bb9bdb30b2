package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

const envPrefix = "GOCALC_"

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type Config struct {
	Prompt       string `yaml:"prompt"`
	HistoryFile  string `yaml:"history_file"`
	ResultFormat string `yaml:"result_format"`
	Banner       bool   `yaml:"banner"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
}

func Default() *Config {
	return &Config{
		Prompt:       "> ",
		ResultFormat: "%v",
		Banner:       true,
		LogLevel:     "warn",
	}
}

// Load builds the configuration from defaults, the optional YAML file at path,
// a .env file in the working directory and GOCALC_* environment variables,
// later sources overriding earlier ones. A missing .env is not an error; an
// unreadable one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := cfg.parse(data); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads a YAML document on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.parse(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parse(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config YAML: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookupEnv("PROMPT"); ok {
		c.Prompt = v
	}
	if v, ok := lookupEnv("HISTORY_FILE"); ok {
		c.HistoryFile = v
	}
	if v, ok := lookupEnv("RESULT_FORMAT"); ok {
		c.ResultFormat = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookupEnv("LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := lookupEnv("BANNER"); ok {
		banner, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sBANNER: %w", envPrefix, err)
		}
		c.Banner = banner
	}
	return nil
}

func lookupEnv(name string) (string, bool) {
	return os.LookupEnv(envPrefix + name)
}

func (c *Config) Validate() error {
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		levels := maps.Keys(logLevels)
		slices.Sort(levels)
		return fmt.Errorf("invalid log level %q: must be one of %s", c.LogLevel, strings.Join(levels, ", "))
	}
	if c.ResultFormat == "" {
		return errors.New("result format must not be empty")
	}
	// a bad verb, a missing verb or extra verbs all render as %!...
	if sample := fmt.Sprintf(c.ResultFormat, 1.5); strings.Contains(sample, "%!") {
		return fmt.Errorf("result format %q must hold exactly one float verb", c.ResultFormat)
	}
	return nil
}

// Level returns the slog level named by LogLevel. Validate must have passed.
func (c *Config) Level() slog.Level {
	return logLevels[strings.ToLower(c.LogLevel)]
}
