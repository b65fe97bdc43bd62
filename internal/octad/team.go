package octad

import (
	"fmt"

	"github.com/lgbarn/octad-go/internal/errors"
)

// Boards is the full per-team bitboard store, indexed by BoardKind.
type Boards [NumBoardKinds]Bitboard

// PieceBoards holds one bitboard per piece kind in the order King, Knight, Pawn.
type PieceBoards [NumPieceKinds]Bitboard

// Starting bitboards, King/Knight/Pawn each as Position, Attack, Move.
var defaultBoards = [2]Boards{
	White: {
		2, 117, 53,
		1, 576, 576,
		12, 224, 3264,
	},
	Black: {
		16384, 44544, 44032,
		32768, 576, 576,
		12288, 1792, 816,
	},
}

// DefaultBoards returns the starting bitboards for a colour.
func DefaultBoards(colour Colour) Boards {
	return defaultBoards[colour]
}

// Team holds one colour's nine bitboards.
type Team struct {
	colour Colour
	boards Boards
}

// NewTeam creates a team with the starting bitboards for its colour.
func NewTeam(colour Colour) *Team {
	return &Team{colour: colour, boards: DefaultBoards(colour)}
}

// NewTeamWithBoards creates a team with explicit bitboards.
func NewTeamWithBoards(colour Colour, boards Boards) *Team {
	return &Team{colour: colour, boards: boards}
}

// Colour returns the team's colour.
func (t *Team) Colour() Colour {
	return t.colour
}

// Get returns the bitboard of the given kind.
func (t *Team) Get(kind BoardKind) Bitboard {
	return t.boards[kind.Index()]
}

// Set replaces the bitboard of the given kind.
func (t *Team) Set(kind BoardKind, b Bitboard) {
	t.boards[kind.Index()] = b
}

// Bitboards returns a copy of all nine bitboards.
func (t *Team) Bitboards() Boards {
	return t.boards
}

// SetBitboards replaces all nine bitboards.
func (t *Team) SetBitboards(boards Boards) {
	t.boards = boards
}

// PositionBoards returns the King, Knight and Pawn position bitboards.
func (t *Team) PositionBoards() PieceBoards {
	return t.roleBoards(Position)
}

// AttackBoards returns the King, Knight and Pawn attack bitboards.
func (t *Team) AttackBoards() PieceBoards {
	return t.roleBoards(Attack)
}

// MoveBoards returns the King, Knight and Pawn move bitboards.
func (t *Team) MoveBoards() PieceBoards {
	return t.roleBoards(Move)
}

func (t *Team) roleBoards(role BoardRole) PieceBoards {
	var out PieceBoards
	for _, piece := range PieceKinds {
		out[piece] = t.boards[KindOf(piece, role)]
	}
	return out
}

// SetPositionBoards replaces the three position bitboards, leaving the
// attack and move bitboards untouched.
func (t *Team) SetPositionBoards(positions PieceBoards) {
	for _, piece := range PieceKinds {
		t.boards[KindOf(piece, Position)] = positions[piece]
	}
}

// StackedPosition returns every square occupied by the team.
func (t *Team) StackedPosition() Bitboard {
	var stacked Bitboard
	for _, b := range t.PositionBoards() {
		stacked |= b
	}
	return stacked
}

// KingSquare returns the square of the team's king. It fails with
// ErrNoKing on an empty king board and ErrMultipleKings when more than
// one bit is set.
func (t *Team) KingSquare() (Square, error) {
	kings := t.Get(KingPosition)
	switch kings.Count() {
	case 0:
		return NoSquare, fmt.Errorf("%s: %w", t.colour, errors.ErrNoKing)
	case 1:
		sq, _ := kings.LowestSquare()
		return sq, nil
	default:
		return NoSquare, fmt.Errorf("%s has %d kings: %w", t.colour, kings.Count(), errors.ErrMultipleKings)
	}
}
