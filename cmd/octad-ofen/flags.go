// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/octad-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Log file for rejected records and the summary (default: stderr)")
	keepLayout = flag.Bool("raw", false, "Echo each layout as read instead of re-encoding it")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")

	// Annotations
	showBoards = flag.Bool("boards", false, "Print the 4x4 square grid after each record")
	showChecks = flag.Bool("checks", false, "Report which colours are in check")
	showKings  = flag.Bool("kings", false, "Report both king squares")

	// Filtering
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'KNP:knpp')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")
	recordFilter       = flag.String("Tf", "", "Filter by OFEN position (clocks ignored)")
	patternFilter      = flag.String("Tp", "", "Filter by layout pattern with wildcards (e.g., '*/4/4/?K??')")
	invertFilter       = flag.Bool("invert", false, "Also match the colour-inverted layout pattern")
	negateMatch        = flag.Bool("n", false, "Output records that DON'T match criteria")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	checkFile          = flag.String("c", "", "Check file: its positions count as already seen")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Processing
	stopOnError = flag.Bool("stop", false, "Stop at the first rejected record")
	workers     = flag.Int("workers", 1, "Number of parser goroutines")

	// Verbosity
	silent  = flag.Bool("s", false, "Silent mode: no summary")
	verbose = flag.Bool("v", false, "Report every record on the log")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyVerbosityFlags(cfg)
	applyOutputFlags(cfg)
	applyDuplicateFlags(cfg)
	cfg.NegateMatch = *negateMatch
	cfg.StopOnError = *stopOnError
	cfg.Workers = *workers
}

// applyVerbosityFlags sets the verbosity level. Silent wins over verbose.
func applyVerbosityFlags(cfg *config.Config) {
	switch {
	case *silent:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	default:
		cfg.Verbosity = 1
	}
}

// applyOutputFlags configures how accepted records are written.
func applyOutputFlags(cfg *config.Config) {
	cfg.KeepLayout = *keepLayout
	cfg.JSONFormat = *jsonOutput
	cfg.ShowBoards = *showBoards
	cfg.ShowChecks = *showChecks
	cfg.ShowKings = *showKings
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.SuppressDuplicates = *suppressDuplicates || *checkFile != ""
	cfg.DuplicateCapacity = *duplicateCapacity
}
