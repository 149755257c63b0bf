package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/avdberg/schoolscout/pkg/school"
)

// Extracurriculars scores listed activities: extracurricular activities
// plus after-school programs, 5 points each above a neutral 50, capped
// at 100. An empty list scores the neutral 50 rather than nil since
// schools rarely publish exhaustive activity lists.
func Extracurriculars(r *school.Record) CategoryScore {
	count := 0
	if r.AcademicPerformance != nil {
		count += len(r.AcademicPerformance.Extracurriculars)
	}
	if r.StudentSupport != nil {
		count += len(r.StudentSupport.AfterSchoolPrograms)
	}

	if count == 0 {
		return CategoryScore{Score: ptr(50), Details: "No data on activities"}
	}

	return CategoryScore{
		Score:   ptr(math.Min(50+float64(count)*5, 100)),
		Details: fmt.Sprintf("%d activities listed", count),
	}
}

// SpecialPrograms scores listed special programs (bilingual streams,
// technasium, and the like): 10 points each above a neutral 50, capped
// at 100. Details name the first three programs.
func SpecialPrograms(r *school.Record) CategoryScore {
	var programs []string
	if r.AcademicPerformance != nil {
		programs = r.AcademicPerformance.SpecialPrograms
	}

	if len(programs) == 0 {
		return CategoryScore{Score: ptr(50), Details: "No special programs listed"}
	}

	details := strings.Join(programs[:min(3, len(programs))], ", ")
	if len(programs) > 3 {
		details += fmt.Sprintf(", +%d more", len(programs)-3)
	}

	return CategoryScore{
		Score:   ptr(math.Min(50+float64(len(programs))*10, 100)),
		Details: details,
	}
}
