package octad

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares: bit i set means square i is a member.
type Bitboard uint16

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = 0xFFFF

	// File masks for movement logic. FileH names the rightmost file (d)
	// after the 8x8 convention.
	FileA    Bitboard = 0x1111
	FileH    Bitboard = 0x8888
	NotFileA Bitboard = ^FileA
	NotFileH Bitboard = ^FileH
)

// Has reports whether s is set.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bitboard() != 0
}

// Set returns b with s added.
func (b Bitboard) Set(s Square) Bitboard {
	return b | s.Bitboard()
}

// Clear returns b with s removed.
func (b Bitboard) Clear(s Square) Bitboard {
	return b &^ s.Bitboard()
}

// Empty reports whether no square is set.
func (b Bitboard) Empty() bool {
	return b == EmptyBB
}

// Count returns the number of squares set.
func (b Bitboard) Count() int {
	return bits.OnesCount16(uint16(b))
}

// LowestSquare returns the lowest-index square set, or false when b is empty.
func (b Bitboard) LowestSquare() (Square, bool) {
	if b == EmptyBB {
		return NoSquare, false
	}
	return Square(bits.TrailingZeros16(uint16(b))), true
}

// Squares returns the squares set, lowest index first.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.Count())
	for bb := b; bb != EmptyBB; bb &= bb - 1 {
		squares = append(squares, Square(bits.TrailingZeros16(uint16(bb))))
	}
	return squares
}

// Grid renders b as four rows of 0/1 cells, rank 4 first.
//
//	0 0 1 0
//	0 0 0 0
//	0 0 0 0
//	0 1 0 0
func (b Bitboard) Grid() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			if b.Has(NewSquare(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			if file < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
