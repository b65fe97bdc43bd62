package ofen

import (
	"fmt"
	"strings"

	"github.com/lgbarn/octad-go/internal/errors"
	"github.com/lgbarn/octad-go/internal/octad"
)

// InitialLayout is the layout of the starting position.
const InitialLayout = "ppkn/4/4/NKPP"

const (
	rankSeparator = '/'
	numRanks      = octad.BoardSize
)

// layoutChars is the closed set of characters a layout may contain.
// Bishops, rooks and queens are legal OFEN letters but have no Octad board.
const layoutChars = "pPnNbBrRqQkK1234/"

// EncodeLayout converts RawSquares into an OFEN layout. Each run of empty
// squares within a rank becomes one digit.
func EncodeLayout(raw RawSquares) string {
	var sb strings.Builder
	for rank := 0; rank < numRanks; rank++ {
		emptyCount := 0
		for _, token := range raw[rank*octad.BoardSize : (rank+1)*octad.BoardSize] {
			if token == EmptyToken {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(token)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < numRanks-1 {
			sb.WriteByte(rankSeparator)
		}
	}
	return sb.String()
}

// Layout renders the six position bitboards as a canonical OFEN layout.
func Layout(white, black octad.PieceBoards) string {
	return EncodeLayout(EncodeRaw(white, black))
}

// DecodeLayout expands an OFEN layout into RawSquares. Characters outside
// the grammar fail with ErrInvalidOFENChar; anything other than four ranks
// of exactly four squares fails with ErrMalformedLayout.
func DecodeLayout(layout string) (RawSquares, error) {
	var raw RawSquares

	for i := 0; i < len(layout); i++ {
		if strings.IndexByte(layoutChars, layout[i]) < 0 {
			return RawSquares{}, &errors.ParseError{
				Err:    errors.ErrInvalidOFENChar,
				Field:  "layout",
				Offset: i,
				Got:    string(layout[i]),
			}
		}
	}

	ranks := strings.Split(layout, string(rankSeparator))
	if len(ranks) != numRanks {
		return RawSquares{}, &errors.ParseError{
			Err:      errors.ErrMalformedLayout,
			Field:    "layout",
			Offset:   -1,
			Expected: fmt.Sprintf("%d ranks", numRanks),
			Got:      layout,
		}
	}

	n := 0
	for r, rank := range ranks {
		width := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '4' {
				width += int(c - '0')
			} else {
				width++
			}
			if width > octad.BoardSize {
				break
			}
		}
		if width != octad.BoardSize {
			return RawSquares{}, &errors.ParseError{
				Err:      errors.ErrMalformedLayout,
				Field:    fmt.Sprintf("rank %d", octad.BoardSize-r),
				Offset:   -1,
				Expected: fmt.Sprintf("%d squares", octad.BoardSize),
				Got:      rank,
			}
		}

		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '4' {
				for k := 0; k < int(c-'0'); k++ {
					raw[n] = EmptyToken
					n++
				}
				continue
			}
			raw[n] = c
			n++
		}
	}

	return raw, nil
}

// GenBoards decodes an OFEN layout straight into position bitboards.
func GenBoards(layout string) (white, black octad.PieceBoards, err error) {
	raw, err := DecodeLayout(layout)
	if err != nil {
		return octad.PieceBoards{}, octad.PieceBoards{}, err
	}
	return DecodeRaw(raw)
}
