// Package config provides configuration for the octad-ofen tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/octad-go/internal/errors"
)

// MaxWorkers bounds the worker pool size.
const MaxWorkers = 64

// Config holds all program configuration.
type Config struct {
	// Processing state
	Verbosity   int // 0=nothing, 1=summary, 2=running commentary
	StopOnError bool
	Workers     int

	// Output options
	KeepLayout bool // echo the layout as read instead of re-encoding it
	JSONFormat bool // write records as a JSON document
	ShowBoards bool // print the raw squares grid after each record
	ShowChecks bool // annotate colours in check
	ShowKings  bool // annotate king squares

	// Filtering
	NegateMatch bool // output the records that do not match

	// Duplicate detection
	SuppressDuplicates bool
	DuplicateCapacity  int // 0 = unlimited

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Counters
	NumRecordsRead     uint
	NumRecordsAccepted uint
	NumRecordsRejected uint
	NumDuplicates      uint
	NumRecordsOutput   uint
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration values are consistent.
func (c *Config) Validate() error {
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got %d: %w", MaxWorkers, c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity must be between 0 and 2, got %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.DuplicateCapacity < 0 {
		return fmt.Errorf("duplicate capacity must not be negative, got %d: %w", c.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log writers are required: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a message to the log file when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity >= level {
		fmt.Fprintf(c.LogFile, format, args...)
	}
}
