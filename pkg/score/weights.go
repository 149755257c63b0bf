package score

import (
	"errors"
	"fmt"
	"sort"
)

// Weights maps categories to non-negative integer percentages. They
// need not sum to 100: the aggregator renormalizes over the weights
// that actually contribute for a given school.
type Weights map[Category]int

// DefaultWeights returns the standard weighting, academics heaviest.
func DefaultWeights() Weights {
	return Weights{
		CategoryAcademic:            30,
		CategoryProximity:           20,
		CategoryParentSatisfaction:  15,
		CategoryStudentSatisfaction: 10,
		CategoryFacilities:          10,
		CategorySchoolSize:          5,
		CategoryExtracurriculars:    5,
		CategorySpecialPrograms:     5,
	}
}

// Validate rejects weight sets that cannot produce a ranking or that
// name categories the scorers do not know (usually a config typo).
func (w Weights) Validate() error {
	known := make(map[Category]bool, len(AllCategories))
	for _, c := range AllCategories {
		known[c] = true
	}

	keys := make([]string, 0, len(w))
	for c := range w {
		keys = append(keys, string(c))
	}
	sort.Strings(keys)

	total := 0
	for _, k := range keys {
		c := Category(k)
		if !known[c] {
			return fmt.Errorf("unknown scoring category: %s", k)
		}
		if w[c] < 0 {
			return fmt.Errorf("negative weight for %s: %d", k, w[c])
		}
		total += w[c]
	}
	if total <= 0 {
		return errors.New("weights must put a positive weight on at least one category")
	}

	return nil
}

// SizePreference expresses the preferred school size.
type SizePreference string

const (
	SizeSmall  SizePreference = "small"
	SizeMedium SizePreference = "medium"
	SizeLarge  SizePreference = "large"
	SizeAny    SizePreference = "any"
)

// Preferences carries the per-user knobs that shape scoring beyond
// the category weights.
type Preferences struct {
	SchoolSize SizePreference `json:"school_size,omitempty" yaml:"school_size,omitempty"`
}

// DefaultPreferences prefers medium-sized schools.
func DefaultPreferences() Preferences {
	return Preferences{SchoolSize: SizeMedium}
}

// Validate rejects unknown size preferences. Empty is allowed and
// scored as the default.
func (p Preferences) Validate() error {
	switch p.SchoolSize {
	case "", SizeSmall, SizeMedium, SizeLarge, SizeAny:
		return nil
	default:
		return fmt.Errorf("unknown school size preference: %s", p.SchoolSize)
	}
}
