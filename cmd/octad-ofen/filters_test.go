package main

import (
	"strings"
	"testing"

	"github.com/lgbarn/octad-go/internal/errors"
	"github.com/lgbarn/octad-go/internal/testutil"
)

func TestBuildMatcher(t *testing.T) {
	t.Run("no criteria", func(t *testing.T) {
		m, err := buildMatcher(filterCriteria{})
		testutil.AssertNoError(t, err)
		if m != nil {
			t.Errorf("buildMatcher() = %v; want nil", m.Name())
		}
	})

	t.Run("all criteria", func(t *testing.T) {
		m, err := buildMatcher(filterCriteria{
			material:      "KN:kn",
			materialExact: "KNPP:knpp",
			record:        testutil.StartRecord,
			pattern:       "*/4/4/?K??",
		})
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, m.Name(), "CompositeMatcher(AND: MaterialMatcher(KN:kn), "+
			"MaterialMatcher(exact KNPP:knpp), PositionMatcher(1 patterns), PositionMatcher(1 patterns))")

		start, err := newStateForTest(testutil.StartRecord)
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, m.Match(start))

		after, err := newStateForTest(testutil.AfterC2Record)
		testutil.AssertNoError(t, err)
		testutil.AssertFalse(t, m.Match(after))
	})

	errorTests := []struct {
		name string
		fc   filterCriteria
		want error
	}{
		{"bad material", filterCriteria{material: "KQ"}, errors.ErrInvalidOFENChar},
		{"bad exact material", filterCriteria{materialExact: "K:kb"}, errors.ErrInvalidOFENChar},
		{"bad record", filterCriteria{record: "ppkn/4/4/NKPP"}, errors.ErrMalformedRecord},
		{"bad pattern", filterCriteria{pattern: "4/4/4"}, errors.ErrMalformedLayout},
	}
	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMatcher(tt.fc)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestProcessInputFilters(t *testing.T) {
	input := strings.Join([]string{
		testutil.StartRecord,
		testutil.AfterC2Record,
		testutil.MidgameRecord,
	}, "\n")

	tests := []struct {
		name   string
		fc     filterCriteria
		negate bool
		want   []string
	}{
		{"white king on b1", filterCriteria{pattern: "*/*/*/?K??"}, false,
			[]string{testutil.StartRecord, testutil.AfterC2Record}},
		{"negated", filterCriteria{pattern: "*/*/*/?K??"}, true,
			[]string{testutil.MidgameRecord}},
		{"single white pawn", filterCriteria{materialExact: "KNP:knpp"}, false,
			[]string{testutil.MidgameRecord}},
		{"exact position", filterCriteria{record: "ppkn/4/2P1/NK1P b NCFncf - 9 9"}, false,
			[]string{testutil.AfterC2Record}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, out, _ := newTestConfig()
			cfg.NegateMatch = tt.negate
			ctx := newProcessingContext(cfg)
			m, err := buildMatcher(tt.fc)
			testutil.AssertNoError(t, err)
			ctx.matcher = m

			processInput(strings.NewReader(input), "stdin", ctx)

			testutil.AssertEqual(t, out.String(), strings.Join(tt.want, "\n")+"\n")
			testutil.AssertEqual(t, cfg.NumRecordsOutput, uint(len(tt.want)))
			testutil.AssertEqual(t, cfg.NumRecordsAccepted, uint(3))
		})
	}
}
