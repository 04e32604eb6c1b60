package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ColorMode selects when diagnostics are coloured
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// DefaultMaxDepth bounds parser recursion unless configured otherwise
const DefaultMaxDepth = 512

// Options configures a run of the interpreter
type Options struct {
	LogLevel    string    `yaml:"log_level"`
	Color       ColorMode `yaml:"color"`
	MaxDepth    int       `yaml:"max_depth"`
	HistoryFile string    `yaml:"history_file"`

	// LogOutput receives interpreter logs, os.Stderr when nil
	LogOutput io.Writer `yaml:"-"`
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	history := ".lox_history"
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, history)
	}
	return Options{
		LogLevel:    logrus.WarnLevel.String(),
		Color:       ColorAuto,
		MaxDepth:    DefaultMaxDepth,
		HistoryFile: history,
	}
}

// LoadOptions reads a YAML configuration file on top of the defaults and
// then applies environment overrides. An empty path skips the file.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return opts, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(&opts); err != nil && err != io.EOF {
			return opts, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := opts.applyEnv(os.LookupEnv); err != nil {
		return opts, err
	}
	return opts, opts.Validate()
}

func (o *Options) applyEnv(lookup func(string) (string, bool)) error {
	if level, ok := lookup("LOX_LOG_LEVEL"); ok {
		o.LogLevel = level
	}
	if mode, ok := lookup("LOX_COLOR"); ok {
		o.Color = ColorMode(mode)
	}
	if depth, ok := lookup("LOX_MAX_DEPTH"); ok {
		n, err := strconv.Atoi(depth)
		if err != nil {
			return fmt.Errorf("LOX_MAX_DEPTH: %w", err)
		}
		o.MaxDepth = n
	}
	return nil
}

// Validate checks option values that would otherwise fail late
func (o Options) Validate() error {
	if _, err := logrus.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch o.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color: unknown mode %q", o.Color)
	}
	return nil
}

func (o Options) logger() *logrus.Logger {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	log.Out = os.Stderr
	if o.LogOutput != nil {
		log.Out = o.LogOutput
	}
	level, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	return log
}
