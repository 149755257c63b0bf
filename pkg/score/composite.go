package score

import (
	"github.com/avdberg/schoolscout/pkg/school"
)

// Composite is the aggregate result for one school: the weighted
// composite (nil when no weighted category had data), every category
// score including the nil ones for display, and the weights that
// actually contributed.
type Composite struct {
	CompositeScore *float64                   `json:"composite_score" yaml:"composite_score"`
	CategoryScores map[Category]CategoryScore `json:"category_scores" yaml:"category_scores"`
	WeightsUsed    Weights                    `json:"weights_used" yaml:"weights_used"`
	TotalWeight    int                        `json:"total_weight" yaml:"total_weight"`
}

// Compute runs all eight category scorers and folds the non-nil
// results into a weighted composite. Categories without data stay out
// of both the weighted sum and the denominator, so the composite is a
// weighted average over the data the school actually has. A nil
// weights map means DefaultWeights; an empty preference means the
// default size preference.
func Compute(r *school.Record, weights Weights, prefs Preferences) *Composite {
	if weights == nil {
		weights = DefaultWeights()
	}

	size := prefs.SchoolSize
	if size == "" {
		size = DefaultPreferences().SchoolSize
	}

	scores := map[Category]CategoryScore{
		CategoryAcademic:            Academic(r),
		CategoryProximity:           Proximity(r),
		CategoryParentSatisfaction:  ParentSatisfaction(r),
		CategoryStudentSatisfaction: StudentSatisfaction(r),
		CategoryFacilities:          Facilities(r),
		CategorySchoolSize:          SchoolSize(r, size),
		CategoryExtracurriculars:    Extracurriculars(r),
		CategorySpecialPrograms:     SpecialPrograms(r),
	}

	var weightedSum float64
	totalWeight := 0

	for _, cat := range AllCategories {
		w, ok := weights[cat]
		if !ok {
			continue
		}
		cs := scores[cat]
		if cs.Score == nil {
			continue
		}
		weightedSum += *cs.Score * float64(w)
		totalWeight += w
	}

	c := &Composite{
		CategoryScores: scores,
		WeightsUsed:    weights,
		TotalWeight:    totalWeight,
	}
	if totalWeight > 0 {
		c.CompositeScore = ptr(round1(weightedSum / float64(totalWeight)))
	}

	return c
}
