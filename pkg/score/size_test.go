package score

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdberg/schoolscout/pkg/school"
)

func enrolledSchool(total int) *school.Record {
	r := minimalSchool("size")
	r.BasicInfo.Enrollment = &school.Enrollment{Total: iptr(total)}
	return r
}

func TestSchoolSize_NoEnrollment(t *testing.T) {
	cs := SchoolSize(minimalSchool("bare"), SizeMedium)
	assert.Nil(t, cs.Score)
	assert.Equal(t, "No enrollment data", cs.Details)
}

func TestSchoolSize_PreferenceTable(t *testing.T) {
	cases := []struct {
		pref       SizePreference
		enrollment int
		want       float64
	}{
		{SizeSmall, 300, 100},
		{SizeSmall, 1200, 50},
		{SizeSmall, 1600, 30},
		{SizeMedium, 300, 70},
		{SizeMedium, 700, 100},
		{SizeMedium, 1200, 80},
		{SizeMedium, 1600, 60},
		{SizeLarge, 300, 50},
		{SizeLarge, 700, 80},
		{SizeLarge, 1200, 100},
		{SizeLarge, 1600, 90},
		{SizeAny, 300, 80},
		{SizeAny, 700, 80},
		{SizeAny, 1200, 80},
		{SizeAny, 1600, 80},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%d", tc.pref, tc.enrollment), func(t *testing.T) {
			cs := SchoolSize(enrolledSchool(tc.enrollment), tc.pref)
			require.NotNil(t, cs.Score)
			assert.Equal(t, tc.want, *cs.Score)
		})
	}
}

func TestSchoolSize_BucketBoundaries(t *testing.T) {
	cases := []struct {
		enrollment int
		want       float64 // with the medium preference row
		bucket     string
	}{
		{499, 70, "small"},
		{500, 100, "medium"},
		{999, 100, "medium"},
		{1000, 80, "large"},
		{1500, 80, "large"},
		{1501, 60, "very large"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d", tc.enrollment), func(t *testing.T) {
			cs := SchoolSize(enrolledSchool(tc.enrollment), SizeMedium)
			require.NotNil(t, cs.Score)
			assert.Equal(t, tc.want, *cs.Score)
			assert.Equal(t, fmt.Sprintf("%d students (%s)", tc.enrollment, tc.bucket), cs.Details)
		})
	}
}

func TestSchoolSize_UnknownPreferenceFallsBackToAny(t *testing.T) {
	cs := SchoolSize(enrolledSchool(1200), SizePreference("gigantic"))
	require.NotNil(t, cs.Score)
	assert.Equal(t, 80.0, *cs.Score)
}

func TestSchoolSize_NonPositiveEnrollment(t *testing.T) {
	cs := SchoolSize(enrolledSchool(0), SizeMedium)
	assert.Nil(t, cs.Score)
}
