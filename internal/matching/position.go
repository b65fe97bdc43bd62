package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/octad-go/internal/errors"
	"github.com/lgbarn/octad-go/internal/game"
	"github.com/lgbarn/octad-go/internal/hashing"
	"github.com/lgbarn/octad-go/internal/octad"
	"github.com/lgbarn/octad-go/internal/ofen"
)

// patternChars are the characters allowed in a layout pattern besides '/'.
const patternChars = "KNPknp?!*Aa_1234"

// LayoutPattern represents a layout pattern to match, rank 4 first.
// Supports wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ matches empty square
type LayoutPattern struct {
	Pattern       string
	Label         string // optional label for matched position
	Hash          uint64 // position hash for exact record matches
	IsExact       bool   // true if this is an exact OFEN record (no wildcards)
	IncludeInvert bool   // also match colour-inverted position
	ranks         []string
}

// PositionMatcher provides position-based record filtering.
type PositionMatcher struct {
	patterns    []*LayoutPattern
	exactHashes map[uint64]*LayoutPattern
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		exactHashes: make(map[uint64]*LayoutPattern),
	}
}

// AddRecord adds an exact OFEN position to match. Clocks are ignored.
func (pm *PositionMatcher) AddRecord(record string, label string) error {
	s, err := game.FromOFEN(record)
	if err != nil {
		return err
	}

	hash := hashing.GenerateZobristHash(s)
	pattern := &LayoutPattern{
		Pattern: record,
		Label:   label,
		Hash:    hash,
		IsExact: true,
	}

	pm.patterns = append(pm.patterns, pattern)
	pm.exactHashes[hash] = pattern

	return nil
}

// AddPattern adds a layout pattern with wildcards.
func (pm *PositionMatcher) AddPattern(pattern string, label string, includeInvert bool) error {
	if err := validatePattern(pattern); err != nil {
		return err
	}

	pm.patterns = append(pm.patterns, &LayoutPattern{
		Pattern:       pattern,
		Label:         label,
		IncludeInvert: includeInvert,
		ranks:         strings.Split(pattern, "/"),
	})

	// If invert requested, also add inverted pattern
	if includeInvert {
		inverted := invertPattern(pattern)
		pm.patterns = append(pm.patterns, &LayoutPattern{
			Pattern: inverted,
			Label:   label,
			ranks:   strings.Split(inverted, "/"),
		})
	}
	return nil
}

// validatePattern checks the characters and the rank count of a pattern.
func validatePattern(pattern string) error {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '/' && strings.IndexByte(patternChars, pattern[i]) < 0 {
			return &errors.ParseError{
				Err:    errors.ErrInvalidOFENChar,
				Field:  "pattern",
				Offset: i,
				Got:    string(pattern[i]),
			}
		}
	}
	if n := strings.Count(pattern, "/") + 1; n != octad.BoardSize {
		return fmt.Errorf("pattern %q has %d ranks: %w", pattern, n, errors.ErrMalformedLayout)
	}
	return nil
}

// MatchState returns the first pattern matching the position, or nil.
func (pm *PositionMatcher) MatchState(s *game.State) *LayoutPattern {
	if len(pm.patterns) == 0 {
		return nil
	}

	if len(pm.exactHashes) > 0 {
		if p, ok := pm.exactHashes[hashing.GenerateZobristHash(s)]; ok {
			return p
		}
	}

	ranks := stateToRanks(s)
	for _, pattern := range pm.patterns {
		if !pattern.IsExact && matchPattern(ranks, pattern) {
			return pattern
		}
	}
	return nil
}

// Match implements StateMatcher.
func (pm *PositionMatcher) Match(s *game.State) bool {
	return pm.MatchState(s) != nil
}

// Name implements StateMatcher.
func (pm *PositionMatcher) Name() string {
	return fmt.Sprintf("PositionMatcher(%d patterns)", len(pm.patterns))
}

// matchPattern checks if the ranks match a layout pattern with wildcards.
func matchPattern(ranks [octad.BoardSize]string, pattern *LayoutPattern) bool {
	if len(pattern.ranks) != octad.BoardSize {
		return false
	}
	for i, patternRank := range pattern.ranks {
		if !matchRank(ranks[i], patternRank) {
			return false
		}
	}
	return true
}

// stateToRanks converts a position to rank strings (rank 4 first), with '_'
// for empty squares.
func stateToRanks(s *game.State) [octad.BoardSize]string {
	var ranks [octad.BoardSize]string
	raw := strings.ReplaceAll(s.Raw().String(), string(ofen.EmptyToken), "_")
	for i := range ranks {
		ranks[i] = raw[i*octad.BoardSize : (i+1)*octad.BoardSize]
	}
	return ranks
}

// matchRank matches a rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi := 0 // board index
	pi := 0 // pattern index

	for pi < len(patternRank) {
		if bi >= len(boardRank) && patternRank[pi] != '*' {
			return false
		}

		c := patternRank[pi]

		switch c {
		case '*':
			pi++
			if pi >= len(patternRank) {
				return true // * at end matches rest
			}
			// Try matching rest of pattern at each position
			for bi <= len(boardRank) {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
				bi++
			}
			return false

		case '?':
			bi++
			pi++

		case '!':
			if boardRank[bi] == '_' {
				return false
			}
			bi++
			pi++

		case 'A':
			if boardRank[bi] < 'A' || boardRank[bi] > 'Z' {
				return false
			}
			bi++
			pi++

		case 'a':
			if boardRank[bi] < 'a' || boardRank[bi] > 'z' {
				return false
			}
			bi++
			pi++

		case '1', '2', '3', '4':
			// Number means N empty squares
			count := int(c - '0')
			for i := 0; i < count; i++ {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}
			pi++

		default:
			// Exact piece match, or '_' for an empty square
			if boardRank[bi] != c {
				return false
			}
			bi++
			pi++
		}
	}

	return bi == len(boardRank)
}

// invertPattern swaps colours in a layout pattern and reverses the rank order.
func invertPattern(pattern string) string {
	var result strings.Builder

	for _, c := range pattern {
		switch {
		case c >= 'A' && c <= 'Z':
			result.WriteRune(c + 32) // to lowercase
		case c >= 'a' && c <= 'z':
			result.WriteRune(c - 32) // to uppercase
		default:
			result.WriteRune(c)
		}
	}

	ranks := strings.Split(result.String(), "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}

	return strings.Join(ranks, "/")
}

// PatternCount returns the number of patterns.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}
