package school

import "math"

// Stats summarizes dataset coverage: how many schools carry the data
// the scorers feed on, plus the headline numbers for a quick browse.
type Stats struct {
	Schools            int            `json:"schools" yaml:"schools"`
	WithExamData       int            `json:"with_exam_data" yaml:"with_exam_data"`
	WithParentReviews  int            `json:"with_parent_reviews" yaml:"with_parent_reviews"`
	WithStudentReviews int            `json:"with_student_reviews" yaml:"with_student_reviews"`
	WithOpenDays       int            `json:"with_open_days" yaml:"with_open_days"`
	AvgBikeMinutes     *float64       `json:"avg_bike_minutes,omitempty" yaml:"avg_bike_minutes,omitempty"`
	TotalEnrollment    int            `json:"total_enrollment" yaml:"total_enrollment"`
	Cities             map[string]int `json:"cities" yaml:"cities"`
}

// Summarize computes dataset statistics over the loaded records. The
// average bike commute covers only schools with a recorded duration
// and is nil when no school has one.
func Summarize(records []*Record) *Stats {
	s := &Stats{
		Schools: len(records),
		Cities:  make(map[string]int),
	}

	var bikeSum float64
	bikeCount := 0

	for _, r := range records {
		if r.AcademicPerformance != nil && len(r.AcademicPerformance.ExamScores) > 0 {
			s.WithExamData++
		}
		if len(r.ParentReviews()) > 0 {
			s.WithParentReviews++
		}
		if len(r.StudentReviews()) > 0 {
			s.WithStudentReviews++
		}
		if len(r.OpenDays()) > 0 {
			s.WithOpenDays++
		}
		if m := r.BikeMinutes(); m != nil {
			bikeSum += *m
			bikeCount++
		}
		if total := r.EnrollmentTotal(); total != nil && *total > 0 {
			s.TotalEnrollment += *total
		}
		if city := r.City(); city != "" {
			s.Cities[city]++
		}
	}

	if bikeCount > 0 {
		avg := math.Round(bikeSum/float64(bikeCount)*10) / 10
		s.AvgBikeMinutes = &avg
	}

	return s
}
