// Package config defines the application configuration and its resolution
// chain: command-line flags first, then FANCYHELLO_-prefixed environment
// variables, then defaults. A Hello World with a configuration surface is a
// Hello World you can operate.
package config

import (
	"flag"
	"io"
	"time"

	apperrors "github.com/viviai0214/fancy-hello-world/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "FANCYHELLO_"

// DefaultDelay matches the original's 30ms dramatic pause per subsystem.
const DefaultDelay = 30 * time.Millisecond

// MaxDelay caps the dramatic pause; past a few seconds the drama stops
// working for the audience.
const MaxDelay = 5 * time.Second

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Quiet suppresses all ceremony and prints only the message.
	Quiet bool
	// Verbose enables debug logging, including per-character events.
	Verbose bool
	// NoColor disables all terminal styling.
	NoColor bool
	// TUI runs the interactive dashboard instead of plain CLI output.
	TUI bool
	// Delay is the dramatic pause inserted before each subsystem.
	Delay time.Duration
	// MetricsListen, when non-empty, exposes Prometheus metrics on this
	// address for the duration of the run.
	MetricsListen string
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment overrides for flags that were not set explicitly and
// validating the result.
//
// Parameters:
//   - programName: The program name for usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: The writer for flag parse errors and usage.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A flag parse error or an apperrors.ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var cfg AppConfig
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the message, no ceremony")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging of character events")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable terminal colors")
	fs.BoolVar(&cfg.TUI, "tui", false, "run the interactive dashboard")
	fs.DurationVar(&cfg.Delay, "delay", DefaultDelay, "dramatic pause per subsystem")
	fs.StringVar(&cfg.MetricsListen, "metrics-listen", "", "expose Prometheus metrics on this address during the run")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	cfg = applyEnvOverrides(fs, cfg)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// applyEnvOverrides fills in values from the environment for flags the user
// did not set explicitly. Flags always win over environment variables.
func applyEnvOverrides(fs *flag.FlagSet, cfg AppConfig) AppConfig {
	if !isFlagSetAny(fs, "quiet", "q") {
		cfg.Quiet = getEnvBool("QUIET", cfg.Quiet)
	}
	if !isFlagSet(fs, "verbose") {
		cfg.Verbose = getEnvBool("VERBOSE", cfg.Verbose)
	}
	if !isFlagSet(fs, "no-color") {
		cfg.NoColor = getEnvBool("NO_COLOR", cfg.NoColor)
	}
	if !isFlagSet(fs, "delay") {
		cfg.Delay = getEnvDuration("DELAY", cfg.Delay)
	}
	if !isFlagSet(fs, "metrics-listen") {
		cfg.MetricsListen = getEnvString("METRICS_LISTEN", cfg.MetricsListen)
	}
	return cfg
}

// Validate checks the configuration for contradictions and out-of-range
// values.
//
// Returns:
//   - error: An apperrors.ConfigError describing the first problem found.
func (c AppConfig) Validate() error {
	if c.Delay < 0 {
		return apperrors.NewConfigError("delay must not be negative, got %s", c.Delay)
	}
	if c.Delay > MaxDelay {
		return apperrors.NewConfigError("delay must be at most %s, got %s", MaxDelay, c.Delay)
	}
	if c.Quiet && c.TUI {
		return apperrors.NewConfigError("-quiet and -tui are mutually exclusive")
	}
	return nil
}
