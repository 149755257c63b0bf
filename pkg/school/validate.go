package school

import (
	"fmt"
	"sort"
	"time"
)

// Plausibility bounds for the Amsterdam/Amstelveen dataset.
const (
	minLat = 50.0
	maxLat = 54.0
	minLon = 4.0
	maxLon = 6.0

	maxEnrollment    = 5000
	maxBikeMinutes   = 120.0
	maxTransitMinute = 180.0
)

// Issue is one data-quality finding for a record. Issues flag sparse or
// implausible data; they never stop the dataset from loading or scoring.
type Issue struct {
	SchoolID string `json:"school_id" yaml:"school_id"`
	School   string `json:"school,omitempty" yaml:"school,omitempty"`
	Field    string `json:"field" yaml:"field"`
	Message  string `json:"message" yaml:"message"`
}

// Validate runs data-quality checks over the loaded records: unique
// ids, required naming fields, ratings and pass rates within their
// scales, plausible enrollment, commute and coordinate values, and
// well-formed open day dates. A clean dataset yields an empty slice.
func Validate(records []*Record) []Issue {
	issues := make([]Issue, 0)
	seen := make(map[string]string)

	for _, r := range records {
		add := func(field, format string, args ...any) {
			issues = append(issues, Issue{
				SchoolID: r.ID,
				School:   r.BasicInfo.Name,
				Field:    field,
				Message:  fmt.Sprintf(format, args...),
			})
		}

		if r.ID == "" {
			add("id", "missing id")
		} else if prev, dup := seen[r.ID]; dup {
			add("id", "duplicate id, also used by %q", prev)
		} else {
			seen[r.ID] = r.BasicInfo.Name
		}

		if r.BasicInfo.Name == "" {
			add("basic_info.name", "missing name")
		}
		if r.BasicInfo.City == "" {
			add("basic_info.city", "missing city")
		}
		if r.BasicInfo.Address == "" {
			add("basic_info.address", "missing address")
		}
		if len(r.BasicInfo.Types) == 0 {
			add("basic_info.type", "no education levels listed")
		}

		if total := r.EnrollmentTotal(); total != nil {
			if *total <= 0 || *total >= maxEnrollment {
				add("basic_info.enrollment.total", "implausible enrollment: %d", *total)
			}
		}

		validateCoordinates(r, add)
		validateExamScores(r, add)
		validateReviews(r, add)
		validateCommutes(r, add)
		validateOpenDays(r, add)
	}

	return issues
}

func validateCoordinates(r *Record, add func(string, string, ...any)) {
	if r.Location == nil || r.Location.Coordinates == nil {
		return
	}
	c := r.Location.Coordinates
	if c.Lat != nil && (*c.Lat <= minLat || *c.Lat >= maxLat) {
		add("location.coordinates.lat", "latitude %v outside expected range (%v, %v)", *c.Lat, minLat, maxLat)
	}
	if c.Lon != nil && (*c.Lon <= minLon || *c.Lon >= maxLon) {
		add("location.coordinates.lon", "longitude %v outside expected range (%v, %v)", *c.Lon, minLon, maxLon)
	}
}

func validateExamScores(r *Record, add func(string, string, ...any)) {
	if r.AcademicPerformance == nil {
		return
	}
	levels := make([]string, 0, len(r.AcademicPerformance.ExamScores))
	for level := range r.AcademicPerformance.ExamScores {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	for _, level := range levels {
		s := r.AcademicPerformance.ExamScores[level]
		if s == nil {
			continue
		}
		if s.PassRate != nil && (*s.PassRate < 0 || *s.PassRate > 100) {
			add(fmt.Sprintf("academic_performance.exam_scores.%s.pass_rate_2024_2025", level),
				"pass rate %v outside 0-100", *s.PassRate)
		}
		if s.AvgPassRate5yr != nil && (*s.AvgPassRate5yr < 0 || *s.AvgPassRate5yr > 100) {
			add(fmt.Sprintf("academic_performance.exam_scores.%s.average_pass_rate_5yr", level),
				"average pass rate %v outside 0-100", *s.AvgPassRate5yr)
		}
		if s.Candidates != nil && *s.Candidates < 0 {
			add(fmt.Sprintf("academic_performance.exam_scores.%s.candidates_2024_2025", level),
				"negative candidate count: %d", *s.Candidates)
		}
	}
}

func validateReviews(r *Record, add func(string, string, ...any)) {
	check := func(field string, reviews []Review) {
		for i, rev := range reviews {
			ratings := []struct {
				name string
				val  *float64
			}{
				{"overall_rating", rev.OverallRating},
				{"would_recommend", rev.WouldRecommend},
				{"voice_matters", rev.VoiceMatters},
			}
			for _, rt := range ratings {
				if rt.val != nil && (*rt.val < 0 || *rt.val > 10) {
					add(fmt.Sprintf("reviews_reputation.%s[%d].%s", field, i, rt.name),
						"rating %v outside 0-10", *rt.val)
				}
			}
		}
	}
	check("parent_reviews", r.ParentReviews())
	check("student_reviews", r.StudentReviews())
}

func validateCommutes(r *Record, add func(string, string, ...any)) {
	if m := r.BikeMinutes(); m != nil && (*m <= 0 || *m >= maxBikeMinutes) {
		add("location.bike_accessibility.duration_minutes", "suspicious bike time: %v minutes", *m)
	}
	if m := r.TransitMinutes(); m != nil && (*m <= 0 || *m >= maxTransitMinute) {
		add("location.public_transport.commute_from_home.duration_minutes", "suspicious transit time: %v minutes", *m)
	}
}

func validateOpenDays(r *Record, add func(string, string, ...any)) {
	for i, day := range r.OpenDays() {
		if day.Date == "" {
			add(fmt.Sprintf("practical_info.open_days[%d].date", i), "missing date")
			continue
		}
		if _, err := time.Parse("2006-01-02", day.Date); err != nil {
			add(fmt.Sprintf("practical_info.open_days[%d].date", i), "invalid date format: %q", day.Date)
		}
	}
}
