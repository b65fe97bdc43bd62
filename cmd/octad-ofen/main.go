// octad-ofen is a tool for validating and normalising Octad positions in OFEN format.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/octad-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("octad-ofen version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx := newProcessingContext(cfg)
	ctx.matcher = setupMatcher()
	loadCheckFile(ctx)

	processAllInputs(ctx, flag.Args())
	if err := ctx.writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
	}

	if cfg.Verbosity > 0 {
		reportStatistics(ctx)
	}
	if cfg.NumRecordsRejected > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// loadCheckFile seeds the duplicate detector from the -c file.
func loadCheckFile(ctx *ProcessingContext) {
	if *checkFile == "" {
		return
	}
	file, err := os.Open(*checkFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening check file %s: %v\n", *checkFile, err)
		os.Exit(1)
	}
	defer file.Close()

	loaded, err := loadCheckRecords(file, ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading check file %s: %v\n", *checkFile, err)
		os.Exit(1)
	}
	ctx.cfg.Logf(1, "Loaded %d positions from check file\n", loaded)
}

// processAllInputs processes all input files, or stdin when none are given.
func processAllInputs(ctx *ProcessingContext, args []string) {
	cfg := ctx.cfg
	if len(args) == 0 {
		processInput(os.Stdin, "stdin", ctx)
		return
	}

	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			continue
		}

		more := processInput(file, filename, ctx)
		file.Close() //nolint:errcheck,gosec // G104: read-only file

		if !more {
			break
		}
	}
}

// reportStatistics prints the final statistics to the log file.
func reportStatistics(ctx *ProcessingContext) {
	cfg := ctx.cfg
	fmt.Fprintf(cfg.LogFile, "%d record(s) accepted, %d rejected out of %d.\n",
		cfg.NumRecordsAccepted, cfg.NumRecordsRejected, cfg.NumRecordsRead)
	if ctx.detector != nil {
		fmt.Fprintf(cfg.LogFile, "%d duplicate(s) suppressed.\n", cfg.NumDuplicates)
	}
	if ctx.detector != nil || ctx.matcher != nil {
		fmt.Fprintf(cfg.LogFile, "%d record(s) output.\n", cfg.NumRecordsOutput)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: octad-ofen [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Validates Octad positions in OFEN format, one record per line,\n")
	fmt.Fprintf(os.Stderr, "and writes each accepted record in canonical form.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nRecord format:\n")
	fmt.Fprintf(os.Stderr, "  <layout> <w|b> <castling> <en passant> <halfmove> <fullmove>\n")
	fmt.Fprintf(os.Stderr, "  e.g. %q\n", "ppkn/4/4/NKPP w NCFncf - 0 1")
}
