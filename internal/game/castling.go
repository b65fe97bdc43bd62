package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/octad-go/internal/errors"
	"github.com/lgbarn/octad-go/internal/octad"
	"github.com/lgbarn/octad-go/internal/ofen"
)

// CastlingRight is one of the six independent castling flags.
type CastlingRight uint8

const (
	WhiteKnightCastle CastlingRight = 1 << iota
	WhiteClosePawnCastle
	WhiteFarPawnCastle
	BlackKnightCastle
	BlackClosePawnCastle
	BlackFarPawnCastle

	NoCastling CastlingRight = 0
)

// CastlingRights is a set of castling flags.
type CastlingRights uint8

// AllCastling grants every right.
const AllCastling CastlingRights = CastlingRights(WhiteKnightCastle | WhiteClosePawnCastle | WhiteFarPawnCastle |
	BlackKnightCastle | BlackClosePawnCastle | BlackFarPawnCastle)

// Letter returns the OFEN letter of a single right.
func (r CastlingRight) Letter() byte {
	for i := 0; i < len(ofen.AllCastlingRights); i++ {
		if r == 1<<i {
			return ofen.AllCastlingRights[i]
		}
	}
	return '?'
}

// ParseCastlingRights converts an OFEN castling field into flags.
func ParseCastlingRights(s string) (CastlingRights, error) {
	if !ofen.ValidCastling(s) {
		return 0, fmt.Errorf("%q: %w", s, errors.ErrInvalidCastling)
	}
	var rights CastlingRights
	for i := 0; i < len(s); i++ {
		rights |= CastlingRights(1 << strings.IndexByte(ofen.AllCastlingRights, s[i]))
	}
	return rights, nil
}

// Has reports whether the right is retained.
func (r CastlingRights) Has(right CastlingRight) bool {
	return right != NoCastling && CastlingRights(right)&r == CastlingRights(right)
}

// Side returns the rights belonging to one colour.
func (r CastlingRights) Side(colour octad.Colour) CastlingRights {
	if colour == octad.White {
		return r & CastlingRights(WhiteKnightCastle|WhiteClosePawnCastle|WhiteFarPawnCastle)
	}
	return r & CastlingRights(BlackKnightCastle|BlackClosePawnCastle|BlackFarPawnCastle)
}

// String returns the letters in canonical NCFncf order.
func (r CastlingRights) String() string {
	var sb strings.Builder
	for i := 0; i < len(ofen.AllCastlingRights); i++ {
		if r&(1<<i) != 0 {
			sb.WriteByte(ofen.AllCastlingRights[i])
		}
	}
	return sb.String()
}

// CastlingRights returns the parsed castling field. A field that fails
// validation, possible only after direct assignment, yields no rights.
func (s *State) CastlingRights() CastlingRights {
	rights, err := ParseCastlingRights(s.Castling)
	if err != nil {
		return 0
	}
	return rights
}

// RevokeCastling removes rights from the castling field, keeping the order
// of the letters that remain.
func (s *State) RevokeCastling(rights ...CastlingRight) {
	for _, right := range rights {
		s.Castling = strings.ReplaceAll(s.Castling, string(right.Letter()), "")
	}
}
