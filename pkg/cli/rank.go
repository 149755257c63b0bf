package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/avdberg/schoolscout/pkg/export"
	"github.com/avdberg/schoolscout/pkg/score"
)

var (
	cityFlag = &cli.StringFlag{
		Name:  "city",
		Usage: "Only schools in this city (exact, case-insensitive)",
	}

	typeFlag = &cli.StringSliceFlag{
		Name:  "type",
		Usage: "Education level, e.g. HAVO, VWO, Gymnasium (can be specified multiple times)",
	}

	affiliationFlag = &cli.StringFlag{
		Name:  "affiliation",
		Usage: "Religious affiliation substring, e.g. Openbaar",
	}

	maxCommuteFlag = &cli.Float64Flag{
		Name:  "max-commute",
		Usage: "Exclude schools with a known bike commute over this many minutes",
	}

	sizeFlag = &cli.StringFlag{
		Name:  "size",
		Usage: "School size preference [small, medium, large, any] (overrides config)",
	}

	limitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Limits number of results printed (sinks always get the full ranking)",
	}

	csvFlag = &cli.StringFlag{
		Name:  "csv",
		Usage: "Also write the ranking to a CSV file at this path",
	}

	postgresFlag = &cli.StringFlag{
		Name:  "postgres",
		Usage: "Also write the ranking to Postgres (connection string)",
	}

	rankCmd = &cli.Command{
		Name:    "rank",
		Aliases: []string{"r"},
		Usage:   "Rank schools by composite score using the configured weights",
		UsageText: `schoolscout rank                                  # rank everything
   schoolscout rank --city Amsterdam --type VWO      # filter, then rank
   schoolscout rank --max-commute 20 --limit 5       # top 5 within biking range
   schoolscout rank --csv rankings.csv               # print and export`,
		HideHelpCommand: true,
		Action:          cmdRank,
		Flags: []cli.Flag{
			cityFlag,
			typeFlag,
			affiliationFlag,
			maxCommuteFlag,
			sizeFlag,
			limitFlag,
			csvFlag,
			postgresFlag,
		},
	}
)

func cmdRank(c *cli.Context) error {
	cfg := getConfig(c)

	prefs := cfg.Conf.Preferences
	if c.IsSet(sizeFlag.Name) {
		prefs.SchoolSize = score.SizePreference(c.String(sizeFlag.Name))
		if err := prefs.Validate(); err != nil {
			return err
		}
	}

	filters := &score.Filters{
		City:                 c.String(cityFlag.Name),
		SchoolTypes:          c.StringSlice(typeFlag.Name),
		ReligiousAffiliation: c.String(affiliationFlag.Name),
	}
	if c.IsSet(maxCommuteFlag.Name) {
		m := c.Float64(maxCommuteFlag.Name)
		filters.MaxCommuteMinutes = &m
	}

	log.Debug().
		Str("city", filters.City).
		Strs("types", filters.SchoolTypes).
		Str("affiliation", filters.ReligiousAffiliation).
		Str("size", string(prefs.SchoolSize)).
		Msg("rank schools")

	results := cfg.Scorer.Rank(cfg.Conf.Weights, prefs, filters)

	// Sinks get the full ranking; --limit only trims what is printed.
	if path := c.String(csvFlag.Name); path != "" {
		w, err := export.NewCSVWriter(path)
		if err != nil {
			return fmt.Errorf("creating CSV writer: %w", err)
		}
		if err := writeRankings(w, results); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
	}

	if dsn := c.String(postgresFlag.Name); dsn != "" {
		w, err := export.NewPostgresWriter(dsn)
		if err != nil {
			return fmt.Errorf("connecting to Postgres: %w", err)
		}
		if err := writeRankings(w, results); err != nil {
			return fmt.Errorf("writing to Postgres: %w", err)
		}
	}

	if limit := c.Int(limitFlag.Name); limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if err := encode(results); err != nil {
		return fmt.Errorf("error encoding results: %w", err)
	}

	return nil
}

func writeRankings(w export.RankingWriter, results []*score.Ranked) error {
	if err := w.Write(results); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
