package octad

import (
	"fmt"

	"github.com/lgbarn/octad-go/internal/errors"
)

// Square is a bit index on the 4x4 board: a1 = 0, b1 = 1, ... d4 = 15.
// Files run within a rank, ranks ascend.
type Square uint8

// Constants for board dimensions.
const (
	BoardSize  = 4
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	FileBase = 'a'
)

const (
	A1 Square = iota
	B1
	C1
	D1
	A2
	B2
	C2
	D2
	A3
	B3
	C3
	D3
	A4
	B4
	C4
	D4

	// NoSquare marks the absence of a square, e.g. no en passant target.
	NoSquare Square = 0xFF
)

var squareNames = [NumSquares]string{
	"a1", "b1", "c1", "d1",
	"a2", "b2", "c2", "d2",
	"a3", "b3", "c3", "d3",
	"a4", "b4", "c4", "d4",
}

// SquareAt converts a bit index into a Square.
func SquareAt(index int) (Square, error) {
	if index < 0 || index >= NumSquares {
		return NoSquare, fmt.Errorf("index %d: %w", index, errors.ErrInvalidSquareIndex)
	}
	return Square(index), nil
}

// NewSquare returns the square on the given 0-based file and rank.
// Coordinates outside the board give NoSquare.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// ParseSquare converts an algebraic name such as "c4" into a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrUnknownSquareName)
	}
	file := int(name[0]) - FileBase
	rank := int(name[1]) - RankBase
	sq := NewSquare(file, rank)
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrUnknownSquareName)
	}
	return sq, nil
}

// Valid reports whether s is one of the 16 board squares.
func (s Square) Valid() bool {
	return s < NumSquares
}

// File returns the 0-based file (0 = a).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the 0-based rank (0 = rank 1).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Bitboard returns a bitboard with only s set.
func (s Square) Bitboard() Bitboard {
	if !s.Valid() {
		return EmptyBB
	}
	return Bitboard(1) << s
}

// String returns the algebraic name, "-" for NoSquare.
func (s Square) String() string {
	if s.Valid() {
		return squareNames[s]
	}
	if s == NoSquare {
		return "-"
	}
	return "??"
}
