package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	// Zone lookups must work even where the host has no zoneinfo.
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdberg/schoolscout/pkg/school"
)

func openDaySchool() *school.Record {
	return &school.Record{
		ID: "school-001",
		BasicInfo: school.BasicInfo{
			Name:    "Het Amsterdams Lyceum",
			Address: "Valeriusplein 15",
			City:    "Amsterdam",
			Contact: &school.Contact{Website: "https://example.org"},
		},
		PracticalInfo: &school.PracticalInfo{
			OpenDays: []school.OpenDay{
				{Date: "2025-10-15", Time: "14:30-16:30", Type: "Open Huis", RegistrationRequired: true},
				{Date: "2025-11-12", Type: "Informatieavond"},
				{Time: "10:00-12:00", Type: "Undated"},
			},
		},
	}
}

func TestOpenDaysCalendar(t *testing.T) {
	noDays := &school.Record{
		ID:        "school-002",
		BasicInfo: school.BasicInfo{Name: "Klein College"},
	}

	cal, err := OpenDaysCalendar([]*school.Record{openDaySchool(), noDays})
	require.NoError(t, err)

	out := cal.Serialize()

	// The undated open day is skipped.
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Equal(t, 2, strings.Count(out, "END:VEVENT"))

	assert.Contains(t, out, "UID:2025-10-15-school-001-1430-1630@schoolscout")
	assert.Contains(t, out, "UID:2025-11-12-school-001-no-time@schoolscout")

	// 14:30 CEST on 2025-10-15 is 12:30 UTC.
	assert.Contains(t, out, "DTSTART:20251015T123000Z")
	assert.Contains(t, out, "DTEND:20251015T143000Z")

	// The undated-time event falls back to 10:00-12:00; on 2025-11-12
	// Amsterdam is back on CET, so that is 09:00 UTC.
	assert.Contains(t, out, "DTSTART:20251112T090000Z")
	assert.Contains(t, out, "DTEND:20251112T110000Z")

	assert.Contains(t, out, "X-WR-CALNAME:School Open Days")
	assert.Contains(t, out, "METHOD:PUBLISH")
}

func TestOpenDaysCalendar_EventContent(t *testing.T) {
	cal, err := OpenDaysCalendar([]*school.Record{openDaySchool()})
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	// Unfold the RFC 5545 75-octet line wrapping before matching text
	// that may straddle a fold.
	out := strings.ReplaceAll(cal.Serialize(), "\r\n ", "")
	assert.Contains(t, out, "Het Amsterdams Lyceum - Open Huis")
	assert.Contains(t, out, "Registration required")
	assert.Contains(t, out, "Valeriusplein 15\\, Amsterdam")
	assert.Contains(t, out, "URL:https://example.org")
}

func TestWriteOpenDays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendars", "open_days.ics")

	err := WriteOpenDays(path, []*school.Record{openDaySchool()})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(b)
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "END:VCALENDAR")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		start clockTime
		end   clockTime
	}{
		{"full range", "14:30-16:30", clockTime{14, 30}, clockTime{16, 30}},
		{"spaced range", "09:00 - 11:15", clockTime{9, 0}, clockTime{11, 15}},
		{"empty", "", fallbackStart, fallbackEnd},
		{"no separator", "14:30", fallbackStart, fallbackEnd},
		{"garbage", "afternoon-ish", fallbackStart, fallbackEnd},
		{"half garbage", "14:30-late", fallbackStart, fallbackEnd},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end := parseTimeRange(tc.in)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}
