package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/avdberg/schoolscout/pkg/school"
)

var validateCmd = &cli.Command{
	Name:            "validate",
	Aliases:         []string{"v"},
	Usage:           "Report data-quality issues in the loaded school records",
	HideHelpCommand: true,
	Action:          cmdValidate,
}

type ValidationReport struct {
	Schools int            `json:"schools" yaml:"schools"`
	Issues  []school.Issue `json:"issues" yaml:"issues"`
}

func cmdValidate(c *cli.Context) error {
	cfg := getConfig(c)

	records := cfg.Scorer.Schools()
	report := &ValidationReport{
		Schools: len(records),
		Issues:  school.Validate(records),
	}

	if err := encode(report); err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}

	return nil
}
