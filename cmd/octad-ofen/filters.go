// filters.go - Position filter setup from command-line criteria
package main

import (
	"fmt"
	"os"

	"github.com/lgbarn/octad-go/internal/matching"
)

// filterCriteria holds the filter flag values.
type filterCriteria struct {
	material      string
	materialExact string
	record        string
	pattern       string
	invert        bool
}

// setupMatcher builds the record matcher from command-line flags.
func setupMatcher() matching.StateMatcher {
	m, err := buildMatcher(filterCriteria{
		material:      *materialMatch,
		materialExact: *materialMatchExact,
		record:        *recordFilter,
		pattern:       *patternFilter,
		invert:        *invertFilter,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing filter: %v\n", err)
		os.Exit(1)
	}
	return m
}

// buildMatcher combines every given criterion with AND logic. It returns nil
// when no criterion is set.
func buildMatcher(fc filterCriteria) (matching.StateMatcher, error) {
	composite := matching.NewCompositeMatcher(matching.MatchAll)

	if fc.material != "" {
		mm, err := matching.NewMaterialMatcher(fc.material, false)
		if err != nil {
			return nil, err
		}
		composite.Add(mm)
	}
	if fc.materialExact != "" {
		mm, err := matching.NewMaterialMatcher(fc.materialExact, true)
		if err != nil {
			return nil, err
		}
		composite.Add(mm)
	}

	if fc.record != "" {
		pm := matching.NewPositionMatcher()
		if err := pm.AddRecord(fc.record, "-Tf"); err != nil {
			return nil, err
		}
		composite.Add(pm)
	}
	if fc.pattern != "" {
		pm := matching.NewPositionMatcher()
		if err := pm.AddPattern(fc.pattern, "-Tp", fc.invert); err != nil {
			return nil, err
		}
		composite.Add(pm)
	}

	if len(composite.Matchers()) == 0 {
		return nil, nil
	}
	return composite, nil
}
