package hashing

import (
	"math/rand"
	"strings"

	"github.com/lgbarn/octad-go/internal/game"
	"github.com/lgbarn/octad-go/internal/octad"
	"github.com/lgbarn/octad-go/internal/ofen"
)

// pieceTokens indexes the Zobrist piece table.
const pieceTokens = "KNPknp"

var (
	pieceKeys     [octad.NumSquares][len(pieceTokens)]uint64
	castlingKeys  [len(ofen.AllCastlingRights)]uint64
	enPassantKeys [octad.NumSquares]uint64
	blackToMove   uint64
)

func init() {
	rnd := rand.New(rand.NewSource(0x4f6374616430))
	for sq := range pieceKeys {
		for p := range pieceKeys[sq] {
			pieceKeys[sq][p] = rnd.Uint64()
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rnd.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rnd.Uint64()
	}
	blackToMove = rnd.Uint64()
}

// GenerateZobristHash hashes the piece placement, side to move, castling
// rights and en passant square of a state. Clocks are not hashed.
func GenerateZobristHash(s *game.State) uint64 {
	var hash uint64

	raw := s.Raw()
	for i, token := range raw {
		p := strings.IndexByte(pieceTokens, token)
		if p < 0 {
			continue
		}
		hash ^= pieceKeys[ofen.RawSquare(i)][p]
	}

	if s.ToMove == octad.Black {
		hash ^= blackToMove
	}
	for i := 0; i < len(s.Castling); i++ {
		if c := strings.IndexByte(ofen.AllCastlingRights, s.Castling[i]); c >= 0 {
			hash ^= castlingKeys[c]
		}
	}
	if s.EnPassant.Valid() {
		hash ^= enPassantKeys[s.EnPassant]
	}
	return hash
}

// WeakHash is a cheap secondary hash of the occupied squares of both sides.
func WeakHash(s *game.State) uint32 {
	white := s.White.StackedPosition()
	black := s.Black.StackedPosition()
	return uint32(white)<<16 | uint32(black)
}
