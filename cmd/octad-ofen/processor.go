// processor.go - Record reading, parsing and output functions
package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/octad-go/internal/config"
	"github.com/lgbarn/octad-go/internal/errors"
	"github.com/lgbarn/octad-go/internal/hashing"
	"github.com/lgbarn/octad-go/internal/matching"
	"github.com/lgbarn/octad-go/internal/output"
	"github.com/lgbarn/octad-go/internal/worker"
)

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg      *config.Config
	detector hashing.DuplicateChecker
	matcher  matching.StateMatcher
	writer   output.RecordWriter
}

// newProcessingContext creates the context, with a duplicate detector when
// duplicates are suppressed. Parallel runs get the thread-safe detector.
func newProcessingContext(cfg *config.Config) *ProcessingContext {
	ctx := &ProcessingContext{cfg: cfg, writer: output.NewWriter(cfg)}
	if !cfg.SuppressDuplicates {
		return ctx
	}
	if cfg.Workers > 1 {
		ctx.detector = hashing.NewThreadSafeDuplicateDetector(false, cfg.DuplicateCapacity)
	} else {
		ctx.detector = hashing.NewDuplicateDetector(false, cfg.DuplicateCapacity)
	}
	return ctx
}

// loadCheckRecords adds every valid record of r to the duplicate detector
// without writing anything. It returns the number of positions loaded.
func loadCheckRecords(r io.Reader, ctx *ProcessingContext) (int, error) {
	if ctx.detector == nil {
		return 0, nil
	}
	items, err := readRecords(r)
	if err != nil {
		return 0, err
	}
	loaded := 0
	for _, item := range items {
		result := worker.ParseRecord(item)
		if result.Error != nil {
			continue
		}
		ctx.detector.CheckAndAdd(result.State)
		loaded++
	}
	return loaded, nil
}

// readRecords reads one OFEN record per line. Blank lines and lines starting
// with '#' are skipped.
func readRecords(r io.Reader) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, worker.WorkItem{Record: text, Line: line, Index: len(items)})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading records at line %d", line+1)
	}
	return items, nil
}

// parseRecords parses every item, in parallel when more than one worker is
// configured. Results come back in input order.
func parseRecords(items []worker.WorkItem, cfg *config.Config) []worker.ProcessResult {
	if cfg.Workers > 1 {
		pool := worker.NewPool(worker.ParseRecord,
			worker.WithWorkers(cfg.Workers),
			worker.WithBufferSize(cfg.Workers*2))
		return pool.ProcessAll(items)
	}

	results := make([]worker.ProcessResult, 0, len(items))
	for _, item := range items {
		result := worker.ParseRecord(item)
		results = append(results, result)
		if result.Error != nil && cfg.StopOnError {
			break
		}
	}
	return results
}

// processInput reads, parses and outputs the records of one input.
// It returns false once a rejected record should stop processing.
func processInput(r io.Reader, filename string, ctx *ProcessingContext) bool {
	cfg := ctx.cfg
	items, err := readRecords(r)
	if err != nil {
		cfg.Logf(0, "%s: %v\n", filename, err)
		return !cfg.StopOnError
	}

	for _, result := range parseRecords(items, cfg) {
		cfg.NumRecordsRead++
		if result.Error != nil {
			cfg.NumRecordsRejected++
			recErr := &errors.RecordError{
				Err:       result.Error,
				RecordNum: int(cfg.NumRecordsRead),
				Record:    result.Record,
				File:      filename,
				Line:      result.Line,
			}
			cfg.Logf(0, "%v\n", recErr)
			if cfg.StopOnError {
				return false
			}
			continue
		}

		cfg.NumRecordsAccepted++
		if ctx.detector != nil && ctx.detector.CheckAndAdd(result.State) {
			cfg.NumDuplicates++
			cfg.Logf(2, "%s:%d: record %d is a duplicate\n", filename, result.Line, cfg.NumRecordsRead)
			continue
		}
		if ctx.matcher != nil && ctx.matcher.Match(result.State) == cfg.NegateMatch {
			cfg.Logf(2, "%s:%d: record %d filtered out\n", filename, result.Line, cfg.NumRecordsRead)
			continue
		}
		cfg.Logf(2, "%s:%d: record %d accepted\n", filename, result.Line, cfg.NumRecordsRead)
		cfg.NumRecordsOutput++
		entry := output.Entry{State: result.State, Input: result.Record}
		if err := ctx.writer.WriteRecord(entry); err != nil {
			cfg.Logf(0, "%s:%d: writing record: %v\n", filename, result.Line, err)
		}
	}
	return true
}
