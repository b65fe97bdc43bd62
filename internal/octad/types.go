// Package octad provides the bitboard data model of Octad, a chess variant
// played on a 4x4 board with kings, knights and pawns.
package octad

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceKind represents one of the three Octad piece types.
// The values are part of the BoardKind index and must not change.
type PieceKind int

const (
	King   PieceKind = 0
	Knight PieceKind = 1
	Pawn   PieceKind = 2

	NumPieceKinds = 3
)

// PieceKinds lists every piece kind in storage order.
var PieceKinds = [NumPieceKinds]PieceKind{King, Knight, Pawn}

// String returns the string representation of a piece kind.
func (p PieceKind) String() string {
	names := []string{"King", "Knight", "Pawn"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the OFEN letter for a piece of the given colour:
// uppercase for White, lowercase for Black.
func (p PieceKind) Letter(colour Colour) byte {
	letters := []byte{'K', 'N', 'P'}
	if p < 0 || int(p) >= len(letters) {
		return '?'
	}
	if colour == Black {
		return letters[p] + ('a' - 'A')
	}
	return letters[p]
}

// BoardRole distinguishes the three bitboards kept per piece kind.
type BoardRole int

const (
	Position BoardRole = 0 // squares occupied
	Attack   BoardRole = 1 // squares attacked
	Move     BoardRole = 2 // squares reachable

	NumBoardRoles = 3
)

// String returns the string representation of a board role.
func (r BoardRole) String() string {
	names := []string{"Position", "Attack", "Move"}
	if r >= 0 && int(r) < len(names) {
		return names[r]
	}
	return "Unknown"
}

// BoardKind identifies one of a team's nine bitboards.
//
// The numeric value of a BoardKind is its index into Team storage and is
// fixed: piece kind major, role minor. Index 3*piece + role.
type BoardKind int

const (
	KingPosition   BoardKind = 0
	KingAttack     BoardKind = 1
	KingMove       BoardKind = 2
	KnightPosition BoardKind = 3
	KnightAttack   BoardKind = 4
	KnightMove     BoardKind = 5
	PawnPosition   BoardKind = 6
	PawnAttack     BoardKind = 7
	PawnMove       BoardKind = 8

	NumBoardKinds = 9
)

var boardKindNames = [NumBoardKinds]string{
	"King Position", "King Attack", "King Move",
	"Knight Position", "Knight Attack", "Knight Move",
	"Pawn Position", "Pawn Attack", "Pawn Move",
}

// KindOf returns the BoardKind holding the given role for a piece kind.
func KindOf(piece PieceKind, role BoardRole) BoardKind {
	return BoardKind(int(piece)*NumBoardRoles + int(role))
}

// Index returns the storage index of the board kind.
func (k BoardKind) Index() int {
	return int(k)
}

// Valid reports whether k is one of the nine board kinds.
func (k BoardKind) Valid() bool {
	return k >= 0 && k < NumBoardKinds
}

// Piece returns the piece kind the board describes.
func (k BoardKind) Piece() PieceKind {
	return PieceKind(int(k) / NumBoardRoles)
}

// Role returns whether the board holds positions, attacks or moves.
func (k BoardKind) Role() BoardRole {
	return BoardRole(int(k) % NumBoardRoles)
}

// String returns the human-readable label, e.g. "Knight Attack".
func (k BoardKind) String() string {
	if !k.Valid() {
		return "Unknown"
	}
	return boardKindNames[k]
}
