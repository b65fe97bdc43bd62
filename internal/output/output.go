// Package output writes accepted OFEN records as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/octad-go/internal/config"
	"github.com/lgbarn/octad-go/internal/game"
	"github.com/lgbarn/octad-go/internal/octad"
)

// Entry is one accepted record: the parsed state plus the text as read.
type Entry struct {
	State *game.State
	Input string
}

// Record returns the record to output: canonical, or with the input layout
// when cfg.KeepLayout is set.
func (e Entry) Record(cfg *config.Config) string {
	record := e.State.ToOFEN()
	if cfg.KeepLayout {
		record = replaceLayout(record, InputLayout(e.Input))
	}
	return record
}

// InputLayout returns the first field of a record as read.
func InputLayout(record string) string {
	if i := strings.IndexByte(record, ' '); i >= 0 {
		return record[:i]
	}
	return record
}

// replaceLayout swaps the layout field of a well-formed record.
func replaceLayout(record, layout string) string {
	if i := strings.IndexByte(record, ' '); i >= 0 {
		return layout + record[i:]
	}
	return layout
}

// OutputRecord writes a record line followed by any requested annotation
// lines, each prefixed with "; ".
func OutputRecord(w io.Writer, e Entry, cfg *config.Config) error {
	var sb strings.Builder
	sb.WriteString(e.Record(cfg))
	sb.WriteByte('\n')

	if cfg.ShowBoards {
		for _, row := range gridRows(e.State) {
			fmt.Fprintf(&sb, "; %s\n", row)
		}
	}
	if cfg.ShowKings {
		white, black := kingNames(e.State)
		fmt.Fprintf(&sb, "; kings: white %s, black %s\n", white, black)
	}
	if cfg.ShowChecks {
		names := checkNames(e.State)
		if len(names) == 0 {
			names = []string{"none"}
		}
		fmt.Fprintf(&sb, "; check: %s\n", strings.Join(names, ", "))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// gridRows returns the raw squares four to a row, rank 4 first.
func gridRows(s *game.State) []string {
	raw := s.Raw().String()
	rows := make([]string, 0, octad.BoardSize)
	for i := 0; i+octad.BoardSize <= len(raw); i += octad.BoardSize {
		rows = append(rows, raw[i:i+octad.BoardSize])
	}
	return rows
}

// kingNames returns both king squares, "none" where a side has no single king.
func kingNames(s *game.State) (white, black string) {
	return kingName(s.KingSquareOf(octad.White)), kingName(s.KingSquareOf(octad.Black))
}

func kingName(sq octad.Square, err error) string {
	if err != nil {
		return "none"
	}
	return sq.String()
}

// checkNames lists the colours in check in lower case.
func checkNames(s *game.State) []string {
	var names []string
	for _, c := range s.Checked() {
		names = append(names, colourName(c))
	}
	return names
}

func colourName(c octad.Colour) string {
	return strings.ToLower(c.String())
}
