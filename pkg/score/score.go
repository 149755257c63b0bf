package score

import (
	"math"
	"strconv"
)

// Category identifies one scored dimension of a school.
type Category string

const (
	CategoryAcademic            Category = "academic_performance"
	CategoryProximity           Category = "proximity"
	CategoryParentSatisfaction  Category = "parent_satisfaction"
	CategoryStudentSatisfaction Category = "student_satisfaction"
	CategoryFacilities          Category = "facilities"
	CategorySchoolSize          Category = "school_size"
	CategoryExtracurriculars    Category = "extracurriculars"
	CategorySpecialPrograms     Category = "special_programs"
)

// AllCategories lists every category in canonical order. Aggregation
// iterates this slice instead of a map so repeated computations stay
// bit-identical.
var AllCategories = []Category{
	CategoryAcademic,
	CategoryProximity,
	CategoryParentSatisfaction,
	CategoryStudentSatisfaction,
	CategoryFacilities,
	CategorySchoolSize,
	CategoryExtracurriculars,
	CategorySpecialPrograms,
}

// CategoryScore is the result of scoring one category for one school.
// A nil Score means the record lacks the data for this category; nil
// is excluded from aggregation, never treated as zero.
type CategoryScore struct {
	Score   *float64 `json:"score" yaml:"score"`
	Details string   `json:"details" yaml:"details"`
}

func ptr(v float64) *float64 {
	return &v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// fmtMinutes renders a duration the way it appears in the source data:
// whole minutes without a decimal point, fractional ones as-is.
func fmtMinutes(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}
