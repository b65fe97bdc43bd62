package game

import "github.com/lgbarn/octad-go/internal/octad"

// IsInCheck returns true if the given colour's king is attacked.
// Only pawns and knights can give check, so the king board is tested
// against the opponent's pawn and knight attack boards.
func (s *State) IsInCheck(colour octad.Colour) bool {
	king := s.TeamOf(colour).Get(octad.KingPosition)
	attacker := s.TeamOf(colour.Opposite())

	for _, kind := range []octad.BoardKind{octad.PawnAttack, octad.KnightAttack} {
		if king&attacker.Get(kind) != 0 {
			return true
		}
	}
	return false
}

// Checked returns the colours currently in check, White first.
func (s *State) Checked() []octad.Colour {
	var checked []octad.Colour
	for _, colour := range []octad.Colour{octad.White, octad.Black} {
		if s.IsInCheck(colour) {
			checked = append(checked, colour)
		}
	}
	return checked
}
