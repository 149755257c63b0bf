package school

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordAccessors_EmptyRecord(t *testing.T) {
	r := &Record{}

	assert.Empty(t, r.Name())
	assert.Empty(t, r.City())
	assert.Nil(t, r.Types())
	assert.Empty(t, r.Website())
	assert.Nil(t, r.EnrollmentTotal())
	assert.Nil(t, r.BikeMinutes())
	assert.Nil(t, r.TransitMinutes())
	assert.Nil(t, r.ExamScore("vwo"))
	assert.Nil(t, r.ParentReviews())
	assert.Nil(t, r.StudentReviews())
	assert.Nil(t, r.OpenDays())
}

func TestRecordAccessors_PartialSections(t *testing.T) {
	r := &Record{
		BasicInfo: BasicInfo{Enrollment: &Enrollment{}},
		Location:  &Location{PublicTransport: &PublicTransport{}},
	}

	assert.Nil(t, r.EnrollmentTotal())
	assert.Nil(t, r.BikeMinutes())
	assert.Nil(t, r.TransitMinutes())
}

func TestReviewTime_Anchors(t *testing.T) {
	year := 2024

	dated := reviewTime(Review{Date: "2025-03-01"})
	yearly := reviewTime(Review{Year: &year})
	neither := reviewTime(Review{})
	garbage := reviewTime(Review{Date: "not-a-date"})

	assert.True(t, dated.After(yearly))
	assert.True(t, yearly.After(neither))
	assert.True(t, neither.IsZero())
	assert.True(t, garbage.IsZero())
}
