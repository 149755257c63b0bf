package score

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/avdberg/schoolscout/pkg/school"
)

// Scorer ranks an in-memory school collection. It holds no other
// state; the records are treated as immutable inputs.
type Scorer struct {
	schools []*school.Record
}

// NewScorer wraps an already-loaded record collection.
func NewScorer(schools []*school.Record) *Scorer {
	return &Scorer{schools: schools}
}

// Schools returns the wrapped collection in load order.
func (s *Scorer) Schools() []*school.Record {
	return s.schools
}

// School returns the record with the given id, nil when absent.
func (s *Scorer) School(id string) *school.Record {
	for _, r := range s.schools {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Ranked pairs a school with its composite scoring breakdown.
type Ranked struct {
	School    *school.Record `json:"school" yaml:"school"`
	ScoreData *Composite     `json:"score_data" yaml:"score_data"`
}

// Filters narrows the ranked collection. Zero values mean "no
// constraint". MaxCommuteMinutes only excludes schools whose bike
// duration is recorded and exceeds the limit; schools without a bike
// duration always pass it.
type Filters struct {
	City                 string   `json:"city,omitempty" yaml:"city,omitempty"`
	SchoolTypes          []string `json:"school_type,omitempty" yaml:"school_type,omitempty"`
	ReligiousAffiliation string   `json:"religious_affiliation,omitempty" yaml:"religious_affiliation,omitempty"`
	MaxCommuteMinutes    *float64 `json:"max_commute_minutes,omitempty" yaml:"max_commute_minutes,omitempty"`
}

// Matches reports whether a record passes every set filter. A nil
// Filters passes everything.
func (f *Filters) Matches(r *school.Record) bool {
	if f == nil {
		return true
	}

	if f.City != "" && !strings.EqualFold(r.City(), f.City) {
		return false
	}

	if len(f.SchoolTypes) > 0 && !anyTypeMatch(f.SchoolTypes, r.Types()) {
		return false
	}

	if f.ReligiousAffiliation != "" &&
		!strings.Contains(strings.ToLower(r.BasicInfo.ReligiousAffiliation), strings.ToLower(f.ReligiousAffiliation)) {
		return false
	}

	if f.MaxCommuteMinutes != nil {
		if bike := r.BikeMinutes(); bike != nil && *bike > *f.MaxCommuteMinutes {
			return false
		}
	}

	return true
}

func anyTypeMatch(want, have []string) bool {
	for _, w := range want {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}

// Rank filters the collection, computes composite scores, drops
// schools whose composite is nil, and orders the rest by composite
// descending. The sort is stable: ties keep their load order.
func (s *Scorer) Rank(weights Weights, prefs Preferences, filters *Filters) []*Ranked {
	results := make([]*Ranked, 0, len(s.schools))

	for _, r := range s.schools {
		if !filters.Matches(r) {
			continue
		}
		sd := Compute(r, weights, prefs)
		if sd.CompositeScore == nil {
			continue
		}
		results = append(results, &Ranked{School: r, ScoreData: sd})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].ScoreData.CompositeScore > *results[j].ScoreData.CompositeScore
	})

	log.Debug().
		Int("schools", len(s.schools)).
		Int("ranked", len(results)).
		Msg("ranked schools")

	return results
}
