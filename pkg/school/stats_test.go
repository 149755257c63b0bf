package school

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iptr(v int) *int {
	return &v
}

func TestSummarize(t *testing.T) {
	records := []*Record{
		{
			ID: "full",
			BasicInfo: BasicInfo{
				Name:       "Full College",
				City:       "Amsterdam",
				Enrollment: &Enrollment{Total: iptr(900)},
			},
			AcademicPerformance: &AcademicPerformance{
				ExamScores: map[string]*ExamScore{"vwo": {PassRate: fptr(90)}},
			},
			Location: &Location{BikeAccess: &Commute{DurationMinutes: fptr(12)}},
			Reviews: &Reviews{
				ParentReviews:  []Review{{OverallRating: fptr(8)}},
				StudentReviews: []Review{{OverallRating: fptr(7)}},
			},
			PracticalInfo: &PracticalInfo{
				OpenDays: []OpenDay{{Date: "2026-01-28"}},
			},
		},
		{
			ID: "biker",
			BasicInfo: BasicInfo{
				Name:       "Biker College",
				City:       "Amstelveen",
				Enrollment: &Enrollment{Total: iptr(400)},
			},
			Location: &Location{BikeAccess: &Commute{DurationMinutes: fptr(17)}},
		},
		{
			ID:        "bare",
			BasicInfo: BasicInfo{Name: "Bare College", City: "Amsterdam"},
		},
	}

	s := Summarize(records)

	assert.Equal(t, 3, s.Schools)
	assert.Equal(t, 1, s.WithExamData)
	assert.Equal(t, 1, s.WithParentReviews)
	assert.Equal(t, 1, s.WithStudentReviews)
	assert.Equal(t, 1, s.WithOpenDays)
	assert.Equal(t, 1300, s.TotalEnrollment)
	assert.Equal(t, map[string]int{"Amsterdam": 2, "Amstelveen": 1}, s.Cities)

	// (12 + 17) / 2, over the two schools with bike data only.
	require.NotNil(t, s.AvgBikeMinutes)
	assert.Equal(t, 14.5, *s.AvgBikeMinutes)
}

func TestSummarize_EmptyDataset(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.Schools)
	assert.Nil(t, s.AvgBikeMinutes)
	assert.Empty(t, s.Cities)
	assert.Equal(t, 0, s.TotalEnrollment)
}
