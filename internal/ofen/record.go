package ofen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lgbarn/octad-go/internal/errors"
	"github.com/lgbarn/octad-go/internal/octad"
)

// InitialRecord is the OFEN record of the starting position.
const InitialRecord = InitialLayout + " w " + AllCastlingRights + " - 0 1"

// NumFields is the number of space-separated fields in an OFEN record.
const NumFields = 6

// AllCastlingRights lists every castling letter in canonical order:
// knight, close pawn and far pawn castles, White then Black.
const AllCastlingRights = "NCFncf"

// Record is a parsed OFEN record.
//
// Only piece positions are carried: attack and move bitboards are derived
// data and are not part of OFEN.
type Record struct {
	Layout       string // layout text as read; String re-encodes White and Black
	White        octad.PieceBoards
	Black        octad.PieceBoards
	ActiveColour octad.Colour
	Castling     string       // subset of AllCastlingRights, kept verbatim
	EnPassant    octad.Square // NoSquare when there is no target
	Halfmove     uint
	Fullmove     uint
}

// recordFields holds the metadata fields for validation.
type recordFields struct {
	ActiveColour string `validate:"oneof=w b"`
	Castling     string `validate:"castling"`
	EnPassant    string `validate:"epsquare"`
	Halfmove     string `validate:"number"`
	Fullmove     string `validate:"number"`
}

type fieldRule struct {
	name     string
	expected string
	err      error
}

var fieldRules = map[string]fieldRule{
	"ActiveColour": {"active colour", "w or b", errors.ErrInvalidActiveColour},
	"Castling":     {"castling", "subset of " + AllCastlingRights, errors.ErrInvalidCastling},
	"EnPassant":    {"en passant", "- or a square a1-d4", errors.ErrUnknownSquareName},
	"Halfmove":     {"halfmove clock", "non-negative integer", errors.ErrNonNumericField},
	"Fullmove":     {"fullmove number", "non-negative integer", errors.ErrNonNumericField},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("castling", func(fl validator.FieldLevel) bool {
		return ValidCastling(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("epsquare", func(fl validator.FieldLevel) bool {
		_, err := parseEnPassant(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidCastling reports whether s is a subset of AllCastlingRights with no
// letter repeated. The empty string means no rights remain.
func ValidCastling(s string) bool {
	seen := 0
	for i := 0; i < len(s); i++ {
		bit := strings.IndexByte(AllCastlingRights, s[i])
		if bit < 0 || seen&(1<<bit) != 0 {
			return false
		}
		seen |= 1 << bit
	}
	return true
}

func parseEnPassant(s string) (octad.Square, error) {
	if s == "-" {
		return octad.NoSquare, nil
	}
	return octad.ParseSquare(s)
}

// ParseRecord parses a six-field OFEN record:
//
//	<layout> <active-colour> <castling> <en-passant> <halfmove> <fullmove>
//
// Fields are separated by single spaces. Any failure rejects the whole record.
func ParseRecord(record string) (Record, error) {
	fields := strings.Split(record, " ")
	if len(fields) != NumFields {
		return Record{}, fmt.Errorf("got %d fields, want %d: %w", len(fields), NumFields, errors.ErrMalformedRecord)
	}

	white, black, err := GenBoards(fields[0])
	if err != nil {
		return Record{}, err
	}

	meta := recordFields{
		ActiveColour: fields[1],
		Castling:     fields[2],
		EnPassant:    fields[3],
		Halfmove:     fields[4],
		Fullmove:     fields[5],
	}
	if err := validate.Struct(meta); err != nil {
		return Record{}, validationError(err)
	}

	halfmove, err := parseCounter("Halfmove", meta.Halfmove)
	if err != nil {
		return Record{}, err
	}
	fullmove, err := parseCounter("Fullmove", meta.Fullmove)
	if err != nil {
		return Record{}, err
	}

	activeColour := octad.White
	if meta.ActiveColour == "b" {
		activeColour = octad.Black
	}
	enPassant, _ := parseEnPassant(meta.EnPassant)

	return Record{
		Layout:       fields[0],
		White:        white,
		Black:        black,
		ActiveColour: activeColour,
		Castling:     meta.Castling,
		EnPassant:    enPassant,
		Halfmove:     halfmove,
		Fullmove:     fullmove,
	}, nil
}

func parseCounter(field, s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		rule := fieldRules[field]
		return 0, &errors.ParseError{
			Err:      errors.ErrNonNumericField,
			Field:    rule.name,
			Offset:   -1,
			Expected: rule.expected,
			Got:      s,
		}
	}
	return uint(n), nil
}

// validationError maps the first failed field to its sentinel error.
func validationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.Wrap(err, "validating OFEN record")
	}
	fe := verrs[0]
	rule, ok := fieldRules[fe.StructField()]
	if !ok {
		return errors.Wrapf(err, "validating OFEN record field %s", fe.StructField())
	}
	return &errors.ParseError{
		Err:      rule.err,
		Field:    rule.name,
		Offset:   -1,
		Expected: rule.expected,
		Got:      fmt.Sprint(fe.Value()),
	}
}

// ColourLetter returns the OFEN active colour letter.
func ColourLetter(c octad.Colour) string {
	if c == octad.Black {
		return "b"
	}
	return "w"
}

// String formats the record with a canonical layout encoded from White
// and Black.
func (r Record) String() string {
	fields := []string{
		Layout(r.White, r.Black),
		ColourLetter(r.ActiveColour),
		r.Castling,
		r.EnPassant.String(),
		strconv.FormatUint(uint64(r.Halfmove), 10),
		strconv.FormatUint(uint64(r.Fullmove), 10),
	}
	return strings.Join(fields, " ")
}
