// Package hashing provides duplicate detection for Octad positions.
package hashing

import (
	"github.com/lgbarn/octad-go/internal/game"
)

// DuplicateChecker is implemented by the plain and the thread-safe detectors.
type DuplicateChecker interface {
	CheckAndAdd(s *game.State) bool
	DuplicateCount() int
	UniqueCount() int
}

// DuplicateDetector tracks seen positions for duplicate record detection.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]PositionSignature
	// useExactMatch also compares the clocks
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity bounds the number of stored signatures, 0 for unlimited
	maxCapacity int
	size        int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// Halfmove and Fullmove are only compared in exact mode
	Halfmove uint
	Fullmove uint
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of a state.
func Signature(s *game.State) PositionSignature {
	return PositionSignature{
		Hash:     GenerateZobristHash(s),
		WeakHash: WeakHash(s),
		Halfmove: s.HalfmoveClock,
		Fullmove: s.MoveNumber,
	}
}

// CheckAndAdd checks if a position is a duplicate and adds it to the hash table.
// Returns true if the position is a duplicate. Once the detector is full,
// new positions are checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(s *game.State) bool {
	if s == nil {
		return false
	}

	sig := Signature(s)

	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two position signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && (a.Halfmove != b.Halfmove || a.Fullmove != b.Fullmove) {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
	d.size = 0
}
