// Package game provides the Octad game state: both teams plus the move
// metadata carried by an OFEN record.
//
// The state performs no move generation. Code applying moves updates the
// team bitboards through octad.Team setters and maintains the metadata
// fields itself.
package game

import (
	"github.com/lgbarn/octad-go/internal/errors"
	"github.com/lgbarn/octad-go/internal/octad"
	"github.com/lgbarn/octad-go/internal/ofen"
)

// State represents a game of Octad with all state needed for an OFEN record.
type State struct {
	White *octad.Team
	Black *octad.Team

	// Who has the next move.
	ToMove octad.Colour

	// Castling letters as read, a subset of ofen.AllCastlingRights.
	Castling string

	// En passant target square, NoSquare when there is none.
	EnPassant octad.Square

	// The half-move clock since the last capture or pawn advance.
	HalfmoveClock uint

	// The current move number, starting at 1.
	MoveNumber uint
}

// New creates a game in the starting position.
func New() *State {
	return &State{
		White:      octad.NewTeam(octad.White),
		Black:      octad.NewTeam(octad.Black),
		ToMove:     octad.White,
		Castling:   ofen.AllCastlingRights,
		EnPassant:  octad.NoSquare,
		MoveNumber: 1,
	}
}

// FromOFEN creates a game from a six-field OFEN record.
//
// Import only restores piece positions, not derived attack/move data: the
// attack and move bitboards keep their starting values until recomputed by
// move generation.
func FromOFEN(record string) (*State, error) {
	rec, err := ofen.ParseRecord(record)
	if err != nil {
		return nil, errors.Wrap(err, "importing OFEN record")
	}
	return FromRecord(rec), nil
}

// FromRecord creates a game from an already parsed record. Attack and move
// bitboards are left at their starting values, as in FromOFEN.
func FromRecord(rec ofen.Record) *State {
	s := New()
	s.White.SetPositionBoards(rec.White)
	s.Black.SetPositionBoards(rec.Black)
	s.ToMove = rec.ActiveColour
	s.Castling = rec.Castling
	s.EnPassant = rec.EnPassant
	s.HalfmoveClock = rec.Halfmove
	s.MoveNumber = rec.Fullmove
	return s
}

// Record returns the state as an OFEN record value.
func (s *State) Record() ofen.Record {
	white, black := s.White.PositionBoards(), s.Black.PositionBoards()
	return ofen.Record{
		Layout:       ofen.Layout(white, black),
		White:        white,
		Black:        black,
		ActiveColour: s.ToMove,
		Castling:     s.Castling,
		EnPassant:    s.EnPassant,
		Halfmove:     s.HalfmoveClock,
		Fullmove:     s.MoveNumber,
	}
}

// ToOFEN formats the state as an OFEN record.
func (s *State) ToOFEN() string {
	return s.Record().String()
}

// Raw returns the occupied squares as RawSquares.
func (s *State) Raw() ofen.RawSquares {
	return ofen.EncodeRaw(s.White.PositionBoards(), s.Black.PositionBoards())
}

// Layout returns the canonical OFEN layout of the position.
func (s *State) Layout() string {
	return ofen.EncodeLayout(s.Raw())
}

// TeamOf returns the team of the given colour.
func (s *State) TeamOf(colour octad.Colour) *octad.Team {
	if colour == octad.White {
		return s.White
	}
	return s.Black
}

// KingSquareOf returns the square of the given colour's king.
func (s *State) KingSquareOf(colour octad.Colour) (octad.Square, error) {
	return s.TeamOf(colour).KingSquare()
}

// Copy creates a deep copy of the state.
func (s *State) Copy() *State {
	c := *s
	c.White = octad.NewTeamWithBoards(octad.White, s.White.Bitboards())
	c.Black = octad.NewTeamWithBoards(octad.Black, s.Black.Bitboards())
	return &c
}
