// Package ofen converts Octad positions between bitboards and OFEN, the
// 4x4 counterpart of FEN.
//
// A position passes through three forms: six position bitboards (three per
// colour), RawSquares (one token per square) and the slash-delimited,
// run-length encoded layout string.
package ofen

import (
	"github.com/lgbarn/octad-go/internal/errors"
	"github.com/lgbarn/octad-go/internal/octad"
)

// EmptyToken marks an unoccupied square in RawSquares.
const EmptyToken = '.'

// RawSquares holds one token per square in display order: rank 4 first,
// files a to d within each rank. Tokens are K, N, P for White, k, n, p for
// Black and '.' for an empty square.
type RawSquares [octad.NumSquares]byte

// String returns the 16 tokens as a string, e.g. "ppkn........NKPP".
func (r RawSquares) String() string {
	return string(r[:])
}

// RawSquare returns the board square described by raw token i.
func RawSquare(i int) octad.Square {
	rank := octad.BoardSize - 1 - i/octad.BoardSize
	return octad.NewSquare(i%octad.BoardSize, rank)
}

// EncodeRaw renders the six position bitboards as RawSquares.
// When boards overlap the first match wins, testing White King, Knight,
// Pawn, then Black King, Knight, Pawn.
func EncodeRaw(white, black octad.PieceBoards) RawSquares {
	var raw RawSquares
	for i := range raw {
		raw[i] = tokenAt(RawSquare(i), white, black)
	}
	return raw
}

func tokenAt(sq octad.Square, white, black octad.PieceBoards) byte {
	for _, piece := range octad.PieceKinds {
		if white[piece].Has(sq) {
			return piece.Letter(octad.White)
		}
	}
	for _, piece := range octad.PieceKinds {
		if black[piece].Has(sq) {
			return piece.Letter(octad.Black)
		}
	}
	return EmptyToken
}

// DecodeRaw sets one position bit per piece token and is the inverse of
// EncodeRaw. Tokens outside K, N, P, k, n, p and '.' fail with
// ErrUnrecognizedToken.
func DecodeRaw(raw RawSquares) (white, black octad.PieceBoards, err error) {
	for i, token := range raw {
		if token == EmptyToken {
			continue
		}
		colour, piece, ok := pieceForToken(token)
		if !ok {
			return octad.PieceBoards{}, octad.PieceBoards{}, &errors.ParseError{
				Err:    errors.ErrUnrecognizedToken,
				Field:  "raw",
				Offset: i,
				Got:    string(token),
			}
		}
		sq := RawSquare(i)
		if colour == octad.White {
			white[piece] = white[piece].Set(sq)
		} else {
			black[piece] = black[piece].Set(sq)
		}
	}
	return white, black, nil
}

func pieceForToken(token byte) (octad.Colour, octad.PieceKind, bool) {
	switch token {
	case 'K':
		return octad.White, octad.King, true
	case 'N':
		return octad.White, octad.Knight, true
	case 'P':
		return octad.White, octad.Pawn, true
	case 'k':
		return octad.Black, octad.King, true
	case 'n':
		return octad.Black, octad.Knight, true
	case 'p':
		return octad.Black, octad.Pawn, true
	default:
		return octad.White, 0, false
	}
}
