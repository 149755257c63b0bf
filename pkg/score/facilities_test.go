package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdberg/schoolscout/pkg/school"
)

func TestFacilities_NoDataKeepsBase(t *testing.T) {
	cs := Facilities(minimalSchool("bare"))
	require.NotNil(t, cs.Score)
	assert.Equal(t, 50.0, *cs.Score)
	assert.Equal(t, "Basic facilities", cs.Details)
}

func TestFacilities_AllAmenities(t *testing.T) {
	r := minimalSchool("rich")
	r.Facilities = &school.Facilities{
		Technology:       &school.Technology{Description: "Two devices per student"},
		SportsFacilities: []string{"Gym", "Sports field"},
		ClassroomsLabs:   strings.Repeat("Well equipped labs. ", 5),
		Library:          map[string]any{"name": "Mediatheek"},
	}
	cs := Facilities(r)
	require.NotNil(t, cs.Score)
	assert.Equal(t, 100.0, *cs.Score)
	assert.Equal(t, "technology, sports, specialized classrooms, library", cs.Details)
}

func TestFacilities_PartialAmenities(t *testing.T) {
	r := minimalSchool("partial")
	r.Facilities = &school.Facilities{
		SportsFacilities: []string{"Gym"},
	}
	cs := Facilities(r)
	require.NotNil(t, cs.Score)
	assert.Equal(t, 65.0, *cs.Score)
	assert.Equal(t, "sports", cs.Details)
}

func TestFacilities_ShortClassroomsTextDoesNotCount(t *testing.T) {
	r := minimalSchool("short")
	r.Facilities = &school.Facilities{ClassroomsLabs: strings.Repeat("x", 50)}
	cs := Facilities(r)
	require.NotNil(t, cs.Score)
	assert.Equal(t, 50.0, *cs.Score)
	assert.Equal(t, "Basic facilities", cs.Details)
}

func TestFacilities_ClassroomsLengthCountsRunes(t *testing.T) {
	// 51 accented characters are more than 50 bytes either way, but the
	// threshold must count characters, not bytes.
	r := minimalSchool("runes")
	r.Facilities = &school.Facilities{ClassroomsLabs: strings.Repeat("é", 51)}
	cs := Facilities(r)
	require.NotNil(t, cs.Score)
	assert.Equal(t, 60.0, *cs.Score)
}

func TestFacilities_EmptyTechnologyDescriptionDoesNotCount(t *testing.T) {
	r := minimalSchool("empty-tech")
	r.Facilities = &school.Facilities{Technology: &school.Technology{}}
	cs := Facilities(r)
	require.NotNil(t, cs.Score)
	assert.Equal(t, 50.0, *cs.Score)
}

func TestFacilities_LibraryTruthiness(t *testing.T) {
	cases := []struct {
		name    string
		library any
		want    float64
	}{
		{"absent", nil, 50},
		{"empty object", map[string]any{}, 50},
		{"object", map[string]any{"floor": 2.0}, 60},
		{"string", "Mediatheek", 60},
		{"empty string", "", 50},
		{"true", true, 60},
		{"false", false, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := minimalSchool("lib")
			r.Facilities = &school.Facilities{Library: tc.library}
			cs := Facilities(r)
			require.NotNil(t, cs.Score)
			assert.Equal(t, tc.want, *cs.Score)
		})
	}
}
