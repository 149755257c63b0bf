package cli

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/avdberg/schoolscout/pkg/data"
	"github.com/avdberg/schoolscout/pkg/export"
	"github.com/avdberg/schoolscout/pkg/school"
)

var (
	allSchoolsFlag = &cli.BoolFlag{
		Name:  "all",
		Usage: "Include every school, not just the shortlist",
	}

	icsFlag = &cli.StringFlag{
		Name:  "ics",
		Usage: "Also write the open days to an iCalendar file at this path",
	}

	openDaysCmd = &cli.Command{
		Name:    "opendays",
		Aliases: []string{"od"},
		Usage:   "List open day events for shortlisted schools in date order",
		UsageText: `schoolscout opendays                      # events for the shortlist
   schoolscout opendays --all                # events for every school
   schoolscout opendays --ics open_days.ics  # also write a calendar file`,
		HideHelpCommand: true,
		Action:          cmdOpenDays,
		Flags: []cli.Flag{
			allSchoolsFlag,
			icsFlag,
		},
	}
)

// OpenDayEvent is one dated open day, flattened for listing. Events
// without a date are not listable and are skipped.
type OpenDayEvent struct {
	School               string `json:"school" yaml:"school"`
	SchoolID             string `json:"school_id" yaml:"school_id"`
	Date                 string `json:"date" yaml:"date"`
	Time                 string `json:"time,omitempty" yaml:"time,omitempty"`
	Type                 string `json:"type,omitempty" yaml:"type,omitempty"`
	RegistrationRequired bool   `json:"registration_required" yaml:"registration_required"`
}

type OpenDaysResult struct {
	Schools int             `json:"schools" yaml:"schools"`
	Events  []*OpenDayEvent `json:"events" yaml:"events"`
	File    string          `json:"file,omitempty" yaml:"file,omitempty"`
}

func cmdOpenDays(c *cli.Context) error {
	cfg := getConfig(c)

	schools := cfg.Scorer.Schools()
	if !c.Bool(allSchoolsFlag.Name) {
		ids, err := data.FavoriteIDs(cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to list favorites: %w", err)
		}
		shortlisted := make([]*school.Record, 0, len(ids))
		for _, r := range schools {
			if data.Contains(ids, r.ID) {
				shortlisted = append(shortlisted, r)
			}
		}
		schools = shortlisted
	}

	res := &OpenDaysResult{Events: make([]*OpenDayEvent, 0)}

	for _, r := range schools {
		counted := false
		for _, day := range r.OpenDays() {
			if day.Date == "" {
				continue
			}
			if !counted {
				res.Schools++
				counted = true
			}
			res.Events = append(res.Events, &OpenDayEvent{
				School:               r.Name(),
				SchoolID:             r.ID,
				Date:                 day.Date,
				Time:                 day.Time,
				Type:                 day.Type,
				RegistrationRequired: day.RegistrationRequired,
			})
		}
	}

	// YYYY-MM-DD sorts chronologically as a plain string.
	sort.SliceStable(res.Events, func(i, j int) bool {
		return res.Events[i].Date < res.Events[j].Date
	})

	if path := c.String(icsFlag.Name); path != "" {
		if err := export.WriteOpenDays(path, schools); err != nil {
			return fmt.Errorf("writing calendar: %w", err)
		}
		res.File = path
	}

	if err := encode(res); err != nil {
		return fmt.Errorf("error encoding events: %w", err)
	}

	return nil
}
