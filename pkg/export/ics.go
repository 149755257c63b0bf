package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/avdberg/schoolscout/pkg/school"
)

const (
	calendarProdID = "-//schoolscout//Open Days//EN"
	calendarName   = "School Open Days"
	calendarDesc   = "Open days for schools in Amsterdam/Amstelveen"

	// Open day dates and times are local to the schools.
	eventZone = "Europe/Amsterdam"

	openDayDateFormat = "2006-01-02"
)

type clockTime struct {
	hour, min int
}

// Window used for open days whose time range is missing or malformed.
var (
	fallbackStart = clockTime{10, 0}
	fallbackEnd   = clockTime{12, 0}
)

// OpenDaysCalendar builds an RFC 5545 calendar with one event per
// published open day across the given schools. Open days without a
// parsable date are skipped; every kept event gets a stable UID of
// the form <date>-<school id>-<time digits>@schoolscout so re-imports
// update instead of duplicate.
func OpenDaysCalendar(schools []*school.Record) (*ics.Calendar, error) {
	loc, err := time.LoadLocation(eventZone)
	if err != nil {
		return nil, fmt.Errorf("ics: load zone %s: %w", eventZone, err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProdID)
	cal.SetXWRCalName(calendarName)
	cal.SetXWRCalDesc(calendarDesc)

	stamp := time.Now().In(loc)

	for _, r := range schools {
		for _, day := range r.OpenDays() {
			if day.Date == "" {
				continue
			}
			date, err := time.ParseInLocation(openDayDateFormat, day.Date, loc)
			if err != nil {
				continue
			}

			start, end := parseTimeRange(day.Time)

			eventType := day.Type
			if eventType == "" {
				eventType = "Open Day"
			}

			event := cal.AddEvent(eventUID(day, r.ID))
			event.SetDtStampTime(stamp)
			event.SetStartAt(at(date, start))
			event.SetEndAt(at(date, end))
			event.SetSummary(fmt.Sprintf("%s - %s", r.Name(), eventType))
			event.SetDescription(eventDescription(r, eventType, day.RegistrationRequired))
			if l := eventLocation(r); l != "" {
				event.SetLocation(l)
			}
			if w := r.Website(); w != "" {
				event.SetURL(w)
			}
		}
	}

	return cal, nil
}

// WriteOpenDays serializes the open days calendar for the given
// schools to an .ics file at path.
func WriteOpenDays(path string, schools []*school.Record) error {
	cal, err := OpenDaysCalendar(schools)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("ics: create output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ics: create file %q: %w", path, err)
	}

	if err := cal.SerializeTo(file); err != nil {
		_ = file.Close()
		return fmt.Errorf("ics: serialize: %w", err)
	}

	return file.Close()
}

func eventUID(day school.OpenDay, schoolID string) string {
	timePart := strings.ReplaceAll(day.Time, ":", "")
	if timePart == "" {
		timePart = "no-time"
	}
	return fmt.Sprintf("%s-%s-%s@schoolscout", day.Date, schoolID, timePart)
}

func eventDescription(r *school.Record, eventType string, registrationRequired bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "School: %s\n", r.Name())
	fmt.Fprintf(&b, "Event Type: %s\n", eventType)
	if registrationRequired {
		b.WriteString("Registration required\n")
	}
	fmt.Fprintf(&b, "\nAddress: %s", eventLocation(r))
	if w := r.Website(); w != "" {
		fmt.Fprintf(&b, "\nWebsite: %s", w)
	}
	return b.String()
}

func eventLocation(r *school.Record) string {
	parts := make([]string, 0, 2)
	if r.BasicInfo.Address != "" {
		parts = append(parts, r.BasicInfo.Address)
	}
	if r.City() != "" {
		parts = append(parts, r.City())
	}
	return strings.Join(parts, ", ")
}

func at(date time.Time, c clockTime) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.hour, c.min, 0, 0, date.Location())
}

// parseTimeRange splits a "14:30-16:30" style range into start and end
// times, falling back to a two hour window from 10:00 for anything it
// cannot parse.
func parseTimeRange(s string) (clockTime, clockTime) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return fallbackStart, fallbackEnd
	}

	start, ok := parseClock(parts[0])
	if !ok {
		return fallbackStart, fallbackEnd
	}
	end, ok := parseClock(parts[1])
	if !ok {
		return fallbackStart, fallbackEnd
	}

	return start, end
}

func parseClock(s string) (clockTime, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return clockTime{}, false
	}
	return clockTime{t.Hour(), t.Minute()}, true
}
