package ofen

import (
	"testing"

	"github.com/lgbarn/octad-go/internal/errors"
	"github.com/lgbarn/octad-go/internal/octad"
	"github.com/lgbarn/octad-go/internal/testutil"
)

func TestParseRecordInitial(t *testing.T) {
	rec, err := ParseRecord(InitialRecord)
	if err != nil {
		t.Fatalf("ParseRecord(%q) error = %v", InitialRecord, err)
	}

	white, black := defaultPositions()
	testutil.AssertEqual(t, rec.White, white)
	testutil.AssertEqual(t, rec.Black, black)
	testutil.AssertEqual(t, rec.Layout, InitialLayout)
	testutil.AssertEqual(t, rec.ActiveColour, octad.White)
	testutil.AssertEqual(t, rec.Castling, "NCFncf")
	testutil.AssertEqual(t, rec.EnPassant, octad.NoSquare)
	testutil.AssertEqual(t, rec.Halfmove, uint(0))
	testutil.AssertEqual(t, rec.Fullmove, uint(1))
	testutil.AssertEqual(t, rec.String(), InitialRecord)
}

func TestParseRecordFields(t *testing.T) {
	rec, err := ParseRecord("ppk1/1n2/2P1/NK1P b Cnf c2 7 12")
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, rec.ActiveColour, octad.Black)
	testutil.AssertEqual(t, rec.Castling, "Cnf")
	testutil.AssertEqual(t, rec.EnPassant, octad.C2)
	testutil.AssertEqual(t, rec.Halfmove, uint(7))
	testutil.AssertEqual(t, rec.Fullmove, uint(12))
}

func TestParseRecordErrors(t *testing.T) {
	tests := []struct {
		name    string
		record  string
		wantErr error
	}{
		{"too few fields", "ppkn/4/4/NKPP w NCFncf - 0", errors.ErrMalformedRecord},
		{"too many fields", "ppkn/4/4/NKPP w NCFncf - 0 1 x", errors.ErrMalformedRecord},
		{"double space", "ppkn/4/4/NKPP w  NCFncf - 0 1", errors.ErrMalformedRecord},
		{"empty", "", errors.ErrMalformedRecord},
		{"bad layout char", "ppkx/4/4/NKPP w NCFncf - 0 1", errors.ErrInvalidOFENChar},
		{"bad layout width", "ppknn/4/4/NKPP w NCFncf - 0 1", errors.ErrMalformedLayout},
		{"queen in layout", "ppqn/4/4/NKPP w NCFncf - 0 1", errors.ErrUnrecognizedToken},
		{"colour x", "ppkn/4/4/NKPP x NCFncf - 0 1", errors.ErrInvalidActiveColour},
		{"colour W", "ppkn/4/4/NKPP W NCFncf - 0 1", errors.ErrInvalidActiveColour},
		{"colour long", "ppkn/4/4/NKPP wb NCFncf - 0 1", errors.ErrInvalidActiveColour},
		{"castling dash", "ppkn/4/4/NKPP w - - 0 1", errors.ErrInvalidCastling},
		{"castling chess letters", "ppkn/4/4/NKPP w KQkq - 0 1", errors.ErrInvalidCastling},
		{"castling repeated", "ppkn/4/4/NKPP w NN - 0 1", errors.ErrInvalidCastling},
		{"en passant off board", "ppkn/4/4/NKPP w NCFncf e3 0 1", errors.ErrUnknownSquareName},
		{"en passant empty", "ppkn/4/4/NKPP w NCFncf  0 1", errors.ErrUnknownSquareName},
		{"halfmove letters", "ppkn/4/4/NKPP w NCFncf - x 1", errors.ErrNonNumericField},
		{"halfmove negative", "ppkn/4/4/NKPP w NCFncf - -1 1", errors.ErrNonNumericField},
		{"fullmove plus", "ppkn/4/4/NKPP w NCFncf - 0 +1", errors.ErrNonNumericField},
		{"fullmove empty", "ppkn/4/4/NKPP w NCFncf - 0 ", errors.ErrNonNumericField},
		{"fullmove overflow", "ppkn/4/4/NKPP w NCFncf - 0 99999999999999999999999", errors.ErrNonNumericField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseRecord(tt.record)
			testutil.AssertErrorIs(t, err, tt.wantErr, "ParseRecord(%q)", tt.record)
			testutil.AssertEqual(t, rec, Record{}, "partial result")
		})
	}
}

func TestParseRecordEmptyCastling(t *testing.T) {
	rec, err := ParseRecord("ppkn/4/4/NKPP b  b2 3 4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Castling, "")
	testutil.AssertEqual(t, rec.String(), "ppkn/4/4/NKPP b  b2 3 4")
}

func TestRecordStringCanonicalLayout(t *testing.T) {
	rec, err := ParseRecord("ppkn/1111/22/NKPP w fcN - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Layout, "ppkn/1111/22/NKPP")
	testutil.AssertEqual(t, rec.String(), "ppkn/4/4/NKPP w fcN - 0 1")
}

func TestRecordMetadataRoundTrip(t *testing.T) {
	records := []string{
		testutil.StartRecord,
		testutil.AfterC2Record,
		testutil.MidgameRecord,
		testutil.NoCastlingRecord,
		"4/1k2/2K1/4 b f d3 0 0",
	}

	for _, s := range records {
		t.Run(s, func(t *testing.T) {
			first, err := ParseRecord(s)
			testutil.AssertNoError(t, err)
			second, err := ParseRecord(first.String())
			testutil.AssertNoError(t, err)

			testutil.AssertEqual(t, second.ActiveColour, first.ActiveColour)
			testutil.AssertEqual(t, second.Castling, first.Castling)
			testutil.AssertEqual(t, second.EnPassant, first.EnPassant)
			testutil.AssertEqual(t, second.Halfmove, first.Halfmove)
			testutil.AssertEqual(t, second.Fullmove, first.Fullmove)
			testutil.AssertEqual(t, second.White, first.White)
			testutil.AssertEqual(t, second.Black, first.Black)
		})
	}
}

func TestValidCastling(t *testing.T) {
	tests := []struct {
		castling string
		want     bool
	}{
		{"", true},
		{"NCFncf", true},
		{"fcnFCN", true},
		{"C", true},
		{"-", false},
		{"NCFncfN", false},
		{"K", false},
		{"n c", false},
	}
	for _, tt := range tests {
		if got := ValidCastling(tt.castling); got != tt.want {
			t.Errorf("ValidCastling(%q) = %v; want %v", tt.castling, got, tt.want)
		}
	}
}

func TestColourLetter(t *testing.T) {
	testutil.AssertEqual(t, ColourLetter(octad.White), "w")
	testutil.AssertEqual(t, ColourLetter(octad.Black), "b")
}
