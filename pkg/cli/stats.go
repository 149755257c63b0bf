package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/avdberg/schoolscout/pkg/data"
	"github.com/avdberg/schoolscout/pkg/school"
)

var statsCmd = &cli.Command{
	Name:            "stats",
	Usage:           "Summarize the loaded dataset and the shortlist",
	HideHelpCommand: true,
	Action:          cmdStats,
}

type StatsResult struct {
	Dataset   *school.Stats `json:"dataset" yaml:"dataset"`
	Favorites int64         `json:"favorites" yaml:"favorites"`
}

func cmdStats(c *cli.Context) error {
	cfg := getConfig(c)

	favorites, err := data.CountFavorites(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to count favorites: %w", err)
	}

	res := &StatsResult{
		Dataset:   school.Summarize(cfg.Scorer.Schools()),
		Favorites: favorites,
	}

	if err := encode(res); err != nil {
		return fmt.Errorf("error encoding stats: %w", err)
	}

	return nil
}
