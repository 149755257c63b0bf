package cli

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/avdberg/schoolscout/pkg/data"
	"github.com/avdberg/schoolscout/pkg/export"
	"github.com/avdberg/schoolscout/pkg/score"
)

const favoritesCSVDefault = "favorite_schools.csv"

var (
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "Path of the exported CSV file",
		Value: favoritesCSVDefault,
	}

	favoritesCmd = &cli.Command{
		Name:            "favorites",
		Aliases:         []string{"fav"},
		Usage:           "Manage the school shortlist",
		HideHelpCommand: true,
		Subcommands: []*cli.Command{
			{
				Name:    "add",
				Aliases: []string{"a"},
				Usage:   "Add a school to the shortlist",
				Action:  cmdFavoritesAdd,
				Flags: []cli.Flag{
					idFlag,
				},
			},
			{
				Name:    "remove",
				Aliases: []string{"rm"},
				Usage:   "Take a school off the shortlist",
				Action:  cmdFavoritesRemove,
				Flags: []cli.Flag{
					idFlag,
				},
			},
			{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List shortlisted schools with scores, best first",
				Action:  cmdFavoritesList,
			},
			{
				Name:   "clear",
				Usage:  "Empty the shortlist",
				Action: cmdFavoritesClear,
			},
			{
				Name:    "export",
				Aliases: []string{"e"},
				Usage:   "Write the shortlist ranking to a CSV file",
				Action:  cmdFavoritesExport,
				Flags: []cli.Flag{
					outFlag,
				},
			},
		},
	}
)

type FavoriteRemoval struct {
	SchoolID string `json:"school_id" yaml:"school_id"`
	Removed  bool   `json:"removed" yaml:"removed"`
}

type FavoritesCleared struct {
	Removed int64 `json:"removed" yaml:"removed"`
}

type FavoritesExport struct {
	File    string `json:"file" yaml:"file"`
	Schools int    `json:"schools" yaml:"schools"`
}

func cmdFavoritesAdd(c *cli.Context) error {
	id := c.String(idFlag.Name)
	if id == "" {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)

	r := cfg.Scorer.School(id)
	if r == nil {
		return fmt.Errorf("school not found: %s", id)
	}

	fav, err := data.AddFavorite(cfg.DB, id, r.Name())
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	if err := encode(fav); err != nil {
		return fmt.Errorf("error encoding: %+v: %w", fav, err)
	}

	return nil
}

func cmdFavoritesRemove(c *cli.Context) error {
	id := c.String(idFlag.Name)
	if id == "" {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)

	removed, err := data.RemoveFavorite(cfg.DB, id)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if !removed {
		return fmt.Errorf("school not on the shortlist: %s", id)
	}

	return encode(&FavoriteRemoval{SchoolID: id, Removed: true})
}

func cmdFavoritesList(c *cli.Context) error {
	cfg := getConfig(c)

	results, err := favoriteRankings(cfg)
	if err != nil {
		return err
	}

	if err := encode(results); err != nil {
		return fmt.Errorf("error encoding list: %+v: %w", results, err)
	}

	return nil
}

func cmdFavoritesClear(c *cli.Context) error {
	cfg := getConfig(c)

	n, err := data.ClearFavorites(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}

	return encode(&FavoritesCleared{Removed: n})
}

func cmdFavoritesExport(c *cli.Context) error {
	cfg := getConfig(c)

	results, err := favoriteRankings(cfg)
	if err != nil {
		return err
	}

	out := c.String(outFlag.Name)
	w, err := export.NewCSVWriter(out)
	if err != nil {
		return fmt.Errorf("creating CSV writer: %w", err)
	}
	if err := writeRankings(w, results); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}

	return encode(&FavoritesExport{File: out, Schools: len(results)})
}

// favoriteRankings scores the shortlisted schools and orders them best
// composite first. Unlike Rank, a school without a composite stays in
// the list, sorted last as zero. Shortlisted ids no longer present in
// the dataset are dropped.
func favoriteRankings(cfg *appConfig) ([]*score.Ranked, error) {
	ids, err := data.FavoriteIDs(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	results := make([]*score.Ranked, 0, len(ids))
	for _, r := range cfg.Scorer.Schools() {
		if !data.Contains(ids, r.ID) {
			continue
		}
		results = append(results, &score.Ranked{
			School:    r,
			ScoreData: score.Compute(r, cfg.Conf.Weights, cfg.Conf.Preferences),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return compositeOrZero(results[i]) > compositeOrZero(results[j])
	})

	return results, nil
}

func compositeOrZero(r *score.Ranked) float64 {
	if r.ScoreData == nil || r.ScoreData.CompositeScore == nil {
		return 0
	}
	return *r.ScoreData.CompositeScore
}
