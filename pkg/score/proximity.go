package score

import (
	"fmt"
	"math"

	"github.com/avdberg/schoolscout/pkg/school"
)

// Proximity scores the commute 0-100, preferring the bike duration and
// falling back to public transport. The curve is piecewise linear:
// losing 1 point per minute up to 10 minutes, 2 per minute up to 30,
// then 1 per minute again, floored at 0.
func Proximity(r *school.Record) CategoryScore {
	bike := r.BikeMinutes()
	transit := r.TransitMinutes()

	if bike == nil && transit == nil {
		return CategoryScore{Details: "No commute data"}
	}

	minutes, method := transit, "transit"
	if bike != nil {
		minutes, method = bike, "bike"
	}

	m := *minutes
	var sc float64
	switch {
	case m <= 10:
		sc = 100 - m
	case m <= 30:
		sc = 90 - (m-10)*2
	default:
		sc = math.Max(50-(m-30), 0)
	}

	return CategoryScore{
		Score:   ptr(round1(sc)),
		Details: fmt.Sprintf("%s mins by %s", fmtMinutes(m), method),
	}
}
