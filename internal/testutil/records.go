package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Well-formed OFEN records used across package tests.
const (
	StartRecord = "ppkn/4/4/NKPP w NCFncf - 0 1"

	// After 1. c2: White pawn from c1 to c2, Black to move.
	AfterC2Record = "ppkn/4/2P1/NK1P b NCFncf - 0 1"

	// Midgame position with partial castling rights.
	MidgameRecord = "ppk1/1n2/4/N1KP w Cc - 4 9"

	NoCastlingRecord = "ppkn/4/4/NKPP b  b2 12 30"
)

// WriteRecordsFile writes one record per line into a temporary file and
// returns its path.
func WriteRecordsFile(t *testing.T, records ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.ofen")
	content := strings.Join(records, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
