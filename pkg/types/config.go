package types

import (
	"errors"
	"fmt"
)

// Config holds the reporting and processing options for a run.
type Config struct {
	Verbosity int    `json:"verbose" yaml:"verbose"`
	OutFile   string `json:"out_file,omitempty" yaml:"out_file,omitempty"`
	Format    string `json:"format" yaml:"format"`
	Workers   int    `json:"workers" yaml:"workers"`
	LogLevel  string `json:"log_level" yaml:"log_level"`
}

// Report formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Verbosity bounds. A message tagged with level L is shown only when
// L >= the configured verbosity, so VerbosityMax shows the least.
const (
	VerbosityMin     = 1
	VerbosityMax     = 3
	DefaultVerbosity = VerbosityMax
	DefaultWorkers   = 4
	DefaultLogLevel  = "warn"
)

// Config validation errors.
var (
	ErrVerbosityInvalid = errors.New("verbosity must be between 1 and 3")
	ErrFormatUnknown    = errors.New("unknown report format")
	ErrWorkersInvalid   = errors.New("workers must be positive")
)

// knownFormats lists the formats that Validate accepts.
var knownFormats = map[string]bool{
	FormatText: true,
	FormatYAML: true,
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Verbosity: DefaultVerbosity,
		Format:    FormatText,
		Workers:   DefaultWorkers,
		LogLevel:  DefaultLogLevel,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Verbosity < VerbosityMin || c.Verbosity > VerbosityMax {
		return fmt.Errorf("%w: got %d", ErrVerbosityInvalid, c.Verbosity)
	}
	if !knownFormats[c.Format] {
		return fmt.Errorf("%w: %q", ErrFormatUnknown, c.Format)
	}
	if c.Workers <= 0 {
		return ErrWorkersInvalid
	}
	return nil
}
