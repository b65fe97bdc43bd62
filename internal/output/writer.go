package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/octad-go/internal/config"
)

// RecordWriter is the interface for writing accepted records to output.
// Different implementations handle different output formats (text, JSON).
type RecordWriter interface {
	// WriteRecord writes a single record to the output.
	WriteRecord(e Entry) error

	// Close releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.JSONFormat, writing to cfg.OutputFile.
func NewWriter(cfg *config.Config) RecordWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(cfg.OutputFile, cfg)
	}
	return NewTextWriter(cfg.OutputFile, cfg)
}

// TextWriter writes records one per line.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteRecord writes a record and its annotations.
func (tw *TextWriter) WriteRecord(e Entry) error {
	return OutputRecord(tw.w, e, tw.cfg)
}

// Close closes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes records in JSON format.
// It buffers records and writes them as a JSON document on Close.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	records []*JSONRecord
	single  bool // If true, write each record immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches records and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		records: make([]*JSONRecord, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each record immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteRecord adds a record to the batch, or writes it at once in single mode.
func (jw *JSONWriter) WriteRecord(e Entry) error {
	if jw.single {
		return OutputRecordJSON(jw.w, e, jw.cfg)
	}
	jw.records = append(jw.records, RecordToJSON(e, jw.cfg))
	return nil
}

// Close writes any batched records.
func (jw *JSONWriter) Close() error {
	if jw.single {
		return nil
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Records: jw.records})
	jw.records = jw.records[:0]
	return err
}
