package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/avdberg/schoolscout/pkg/score"
)

var (
	idFlag = &cli.StringFlag{
		Name:     "id",
		Usage:    "School id",
		Required: true,
	}

	showCmd = &cli.Command{
		Name:            "show",
		Aliases:         []string{"s"},
		Usage:           "Show one school's full record and score breakdown",
		HideHelpCommand: true,
		Action:          cmdShow,
		Flags: []cli.Flag{
			idFlag,
		},
	}
)

func cmdShow(c *cli.Context) error {
	id := c.String(idFlag.Name)
	if id == "" {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)

	r := cfg.Scorer.School(id)
	if r == nil {
		return fmt.Errorf("school not found: %s", id)
	}

	detail := &score.Ranked{
		School:    r,
		ScoreData: score.Compute(r, cfg.Conf.Weights, cfg.Conf.Preferences),
	}

	if err := encode(detail); err != nil {
		return fmt.Errorf("error encoding: %+v: %w", detail, err)
	}

	return nil
}
