package score

import (
	"fmt"
	"math"

	"github.com/avdberg/schoolscout/pkg/school"
)

// Education levels weigh into the academic score by rigor, vwo highest.
var levelWeights = []struct {
	level  string
	weight float64
}{
	{"vmbo", 0.7},
	{"havo", 1.0},
	{"vwo", 1.5},
}

// Academic scores exam results 0-100: a rigor-weighted mean of the
// current pass rates across the levels the school reports, blended
// 70/30 with the 5-year average when one exists, plus a reliability
// bonus of up to 5 points for large candidate counts.
func Academic(r *school.Record) CategoryScore {
	if r.AcademicPerformance == nil || len(r.AcademicPerformance.ExamScores) == 0 {
		return CategoryScore{Details: "No exam data available"}
	}

	var (
		weightedSum, totalLevelWeight float64
		singleRate                    float64
		levels                        int
		histSum                       float64
		histCount                     int
		candidates                    int
	)

	for _, lw := range levelWeights {
		es := r.AcademicPerformance.ExamScores[lw.level]
		if es == nil {
			continue
		}
		if es.PassRate != nil {
			weightedSum += *es.PassRate * lw.weight
			totalLevelWeight += lw.weight
			singleRate = *es.PassRate
			levels++
		}
		if es.AvgPassRate5yr != nil {
			histSum += *es.AvgPassRate5yr
			histCount++
		}
		if es.Candidates != nil {
			candidates += *es.Candidates
		}
	}

	if levels == 0 {
		return CategoryScore{Details: "No pass rate data"}
	}

	// A single reported level is that level's rate untouched; weighting
	// only applies across levels.
	current := singleRate
	if levels > 1 {
		current = weightedSum / totalLevelWeight
	}

	final := current
	if histCount > 0 {
		final = current*0.7 + (histSum/float64(histCount))*0.3
	}

	bonus := math.Min(float64(candidates)/500*5, 5)
	sc := math.Min(final+bonus, 100)

	return CategoryScore{
		Score:   ptr(round1(sc)),
		Details: fmt.Sprintf("%.1f%% pass rate, %d candidates", final, candidates),
	}
}
