package score

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/avdberg/schoolscout/pkg/school"
)

// classroomsDetailMin is the description length past which the
// classrooms/labs text counts as a real quality signal.
const classroomsDetailMin = 50

// Facilities scores amenities 0-100 from a base of 50: +15 for a
// technology description, +15 for at least one sports facility, +10
// for a substantive classrooms/labs description, +10 for a library
// entry. Never nil; a record with no facilities data keeps the base 50.
func Facilities(r *school.Record) CategoryScore {
	sc := 50.0
	parts := make([]string, 0, 4)

	if f := r.Facilities; f != nil {
		if f.Technology != nil && f.Technology.Description != "" {
			sc += 15
			parts = append(parts, "technology")
		}
		if len(f.SportsFacilities) > 0 {
			sc += 15
			parts = append(parts, "sports")
		}
		if utf8.RuneCountInString(f.ClassroomsLabs) > classroomsDetailMin {
			sc += 10
			parts = append(parts, "specialized classrooms")
		}
		if truthy(f.Library) {
			sc += 10
			parts = append(parts, "library")
		}
	}

	details := "Basic facilities"
	if len(parts) > 0 {
		details = strings.Join(parts, ", ")
	}

	return CategoryScore{
		Score:   ptr(round1(math.Min(sc, 100))),
		Details: details,
	}
}

// truthy reports whether a free-form JSON value carries content. The
// library field shows up as an object, string, or bool depending on
// which enrichment pass produced it.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}
