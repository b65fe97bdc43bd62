package hashing

import (
	"testing"

	"github.com/lgbarn/octad-go/internal/game"
	"github.com/lgbarn/octad-go/internal/octad"
	"github.com/lgbarn/octad-go/internal/testutil"
)

func mustState(t *testing.T, record string) *game.State {
	t.Helper()
	s, err := game.FromOFEN(record)
	if err != nil {
		t.Fatalf("FromOFEN(%q) error = %v", record, err)
	}
	return s
}

func TestZobristHashConsistency(t *testing.T) {
	hash1 := GenerateZobristHash(game.New())
	hash2 := GenerateZobristHash(mustState(t, testutil.StartRecord))

	if hash1 != hash2 {
		t.Errorf("Identical positions produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"pawn moved", testutil.StartRecord, "ppkn/4/2P1/NK1P w NCFncf - 0 1"},
		{"side to move", testutil.StartRecord, "ppkn/4/4/NKPP b NCFncf - 0 1"},
		{"castling", testutil.StartRecord, "ppkn/4/4/NKPP w Nncf - 0 1"},
		{"en passant", testutil.AfterC2Record, "ppkn/4/2P1/NK1P b NCFncf c2 0 1"},
		{"colour swap", "k3/4/4/K3 w  - 0 1", "K3/4/4/k3 w  - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if GenerateZobristHash(mustState(t, tt.a)) == GenerateZobristHash(mustState(t, tt.b)) {
				t.Errorf("%q and %q produced the same hash", tt.a, tt.b)
			}
		})
	}
}

func TestZobristHashIgnoresClocksAndCastlingOrder(t *testing.T) {
	a := GenerateZobristHash(mustState(t, "ppk1/1n2/4/N1KP w Cc - 4 9"))
	b := GenerateZobristHash(mustState(t, "ppk1/1n2/4/N1KP w cC - 0 1"))
	if a != b {
		t.Errorf("hashes differ: %x != %x", a, b)
	}
}

func TestWeakHash(t *testing.T) {
	s := game.New()
	want := uint32(s.White.StackedPosition())<<16 | uint32(s.Black.StackedPosition())
	testutil.AssertEqual(t, WeakHash(s), want)

	moved := s.Copy()
	moved.White.Set(octad.PawnPosition, octad.C2.Bitboard()|octad.D1.Bitboard())
	if WeakHash(moved) == WeakHash(s) {
		t.Error("moving a pawn did not change the weak hash")
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	s := mustState(t, testutil.StartRecord)

	// First position should not be a duplicate
	if detector.CheckAndAdd(s) {
		t.Error("First position was marked as duplicate")
	}

	// Same position should be a duplicate
	if !detector.CheckAndAdd(s.Copy()) {
		t.Error("Duplicate position was not detected")
	}

	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate, got %d", detector.DuplicateCount())
	}
	if detector.CheckAndAdd(nil) {
		t.Error("nil state was marked as duplicate")
	}
}

func TestDuplicateDetectorDifferentPositions(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)

	if detector.CheckAndAdd(mustState(t, testutil.StartRecord)) {
		t.Error("Position 1 was incorrectly marked as duplicate")
	}
	if detector.CheckAndAdd(mustState(t, testutil.AfterC2Record)) {
		t.Error("Position 2 was incorrectly marked as duplicate")
	}

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("Expected 2 unique positions, got %d", detector.UniqueCount())
	}
}

func TestDuplicateDetectorExactMatch(t *testing.T) {
	first := "ppk1/1n2/4/N1KP w Cc - 4 9"
	second := "ppk1/1n2/4/N1KP w Cc - 0 12"

	loose := NewDuplicateDetector(false, 0)
	loose.CheckAndAdd(mustState(t, first))
	testutil.AssertTrue(t, loose.CheckAndAdd(mustState(t, second)), "clocks should be ignored")

	exact := NewDuplicateDetector(true, 0)
	exact.CheckAndAdd(mustState(t, first))
	testutil.AssertFalse(t, exact.CheckAndAdd(mustState(t, second)), "clocks should be compared")
	testutil.AssertTrue(t, exact.CheckAndAdd(mustState(t, first)))
}

func TestDuplicateDetectorCapacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 1)

	detector.CheckAndAdd(mustState(t, testutil.StartRecord))
	testutil.AssertTrue(t, detector.IsFull())

	// Not stored once full, so never reported as a duplicate.
	after := mustState(t, testutil.AfterC2Record)
	testutil.AssertFalse(t, detector.CheckAndAdd(after))
	testutil.AssertFalse(t, detector.CheckAndAdd(after))
	testutil.AssertEqual(t, detector.UniqueCount(), 1)

	// Stored positions are still detected.
	testutil.AssertTrue(t, detector.CheckAndAdd(mustState(t, testutil.StartRecord)))
}

func TestDuplicateDetectorReset(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	s := game.New()

	detector.CheckAndAdd(s)
	detector.CheckAndAdd(s)

	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate before reset, got %d", detector.DuplicateCount())
	}

	detector.Reset()

	if detector.DuplicateCount() != 0 || detector.UniqueCount() != 0 {
		t.Errorf("Reset left %d duplicates and %d unique", detector.DuplicateCount(), detector.UniqueCount())
	}
	if detector.CheckAndAdd(s) {
		t.Error("Position was marked as duplicate after reset")
	}
}
