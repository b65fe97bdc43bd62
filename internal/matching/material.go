package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/octad-go/internal/errors"
	"github.com/lgbarn/octad-go/internal/game"
	"github.com/lgbarn/octad-go/internal/octad"
)

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "KNP:kpp" means white has K+N+P, black has K+2P
	pattern     string
	exactMatch  bool
	whitePieces [octad.NumPieceKinds]int
	blackPieces [octad.NumPieceKinds]int
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "KNP:knp" (white pieces : black pieces).
// Use uppercase for white, lowercase for black: K=King, N=Knight, P=Pawn.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
	}
	white, black, found := strings.Cut(pattern, ":")
	if err := parsePieces(white, octad.White, &mm.whitePieces); err != nil {
		return nil, err
	}
	if found {
		if err := parsePieces(black, octad.Black, &mm.blackPieces); err != nil {
			return nil, err
		}
	}
	return mm, nil
}

// parsePieces counts the piece letters of one side.
func parsePieces(s string, colour octad.Colour, counts *[octad.NumPieceKinds]int) error {
	for i := 0; i < len(s); i++ {
		kind, ok := pieceForLetter(s[i], colour)
		if !ok {
			return &errors.ParseError{
				Err:      errors.ErrInvalidOFENChar,
				Field:    "material " + strings.ToLower(colour.String()),
				Offset:   i,
				Expected: "piece letter",
				Got:      string(s[i]),
			}
		}
		counts[kind]++
	}
	return nil
}

func pieceForLetter(c byte, colour octad.Colour) (octad.PieceKind, bool) {
	for _, kind := range octad.PieceKinds {
		if kind.Letter(colour) == c {
			return kind, true
		}
	}
	return 0, false
}

// Match checks if the position matches the material pattern.
func (mm *MaterialMatcher) Match(s *game.State) bool {
	white := pieceCounts(s.White)
	black := pieceCounts(s.Black)

	for _, kind := range octad.PieceKinds {
		if mm.exactMatch {
			if white[kind] != mm.whitePieces[kind] || black[kind] != mm.blackPieces[kind] {
				return false
			}
			continue
		}
		if white[kind] < mm.whitePieces[kind] || black[kind] < mm.blackPieces[kind] {
			return false
		}
	}
	return true
}

func pieceCounts(t *octad.Team) [octad.NumPieceKinds]int {
	var counts [octad.NumPieceKinds]int
	for kind, bb := range t.PositionBoards() {
		counts[kind] = bb.Count()
	}
	return counts
}

// Name implements StateMatcher.
func (mm *MaterialMatcher) Name() string {
	if mm.exactMatch {
		return fmt.Sprintf("MaterialMatcher(exact %s)", mm.pattern)
	}
	return fmt.Sprintf("MaterialMatcher(%s)", mm.pattern)
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
