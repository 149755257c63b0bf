package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/avdberg/schoolscout/pkg/score"
)

const (
	compareMinSchools = 2
	compareMaxSchools = 4
)

var (
	compareIDFlag = &cli.StringSliceFlag{
		Name:  "id",
		Usage: "School id to compare (specify 2 to 4 times)",
	}

	compareCmd = &cli.Command{
		Name:    "compare",
		Aliases: []string{"c"},
		Usage:   "Compare schools side by side, best score per category marked",
		UsageText: `schoolscout compare --id school-001 --id school-014
   schoolscout compare --id school-001 --id school-007 --id school-023`,
		HideHelpCommand: true,
		Action:          cmdCompare,
		Flags: []cli.Flag{
			compareIDFlag,
		},
	}
)

// ComparedSchool is one column of the comparison: identity, the detail
// fields shown next to each school, and its composite.
type ComparedSchool struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	City         string   `json:"city,omitempty" yaml:"city,omitempty"`
	Types        []string `json:"type,omitempty" yaml:"type,omitempty"`
	Enrollment   *int     `json:"enrollment,omitempty" yaml:"enrollment,omitempty"`
	BikeMinutes  *float64 `json:"bike_minutes,omitempty" yaml:"bike_minutes,omitempty"`
	VWOPassRate  *float64 `json:"vwo_pass_rate,omitempty" yaml:"vwo_pass_rate,omitempty"`
	ParentRating *float64 `json:"parent_rating,omitempty" yaml:"parent_rating,omitempty"`
	Website      string   `json:"website,omitempty" yaml:"website,omitempty"`
	Composite    *float64 `json:"composite_score" yaml:"composite_score"`
	Best         bool     `json:"best" yaml:"best"`
}

// ComparedScore is one school's score in one category row.
type ComparedScore struct {
	SchoolID string   `json:"school_id" yaml:"school_id"`
	Score    *float64 `json:"score" yaml:"score"`
	Details  string   `json:"details,omitempty" yaml:"details,omitempty"`
	Best     bool     `json:"best" yaml:"best"`
}

// CategoryComparison is one row of the comparison table.
type CategoryComparison struct {
	Category score.Category   `json:"category" yaml:"category"`
	Scores   []*ComparedScore `json:"scores" yaml:"scores"`
}

type CompareResult struct {
	Schools    []*ComparedSchool     `json:"schools" yaml:"schools"`
	Categories []*CategoryComparison `json:"categories" yaml:"categories"`
}

func cmdCompare(c *cli.Context) error {
	ids := c.StringSlice(compareIDFlag.Name)
	if len(ids) < compareMinSchools || len(ids) > compareMaxSchools {
		return fmt.Errorf("compare takes %d to %d schools, got %d",
			compareMinSchools, compareMaxSchools, len(ids))
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("duplicate school id: %s", id)
		}
		seen[id] = true
	}

	cfg := getConfig(c)

	composites := make([]*score.Composite, 0, len(ids))
	schools := make([]*ComparedSchool, 0, len(ids))

	for _, id := range ids {
		r := cfg.Scorer.School(id)
		if r == nil {
			return fmt.Errorf("school not found: %s", id)
		}

		sd := score.Compute(r, cfg.Conf.Weights, cfg.Conf.Preferences)
		composites = append(composites, sd)

		cs := &ComparedSchool{
			ID:          r.ID,
			Name:        r.Name(),
			City:        r.City(),
			Types:       r.Types(),
			Enrollment:  r.EnrollmentTotal(),
			BikeMinutes: r.BikeMinutes(),
			Website:     r.Website(),
			Composite:   sd.CompositeScore,
		}
		if vwo := r.ExamScore("vwo"); vwo != nil {
			cs.VWOPassRate = vwo.PassRate
		}
		if reviews := r.ParentReviews(); len(reviews) > 0 {
			cs.ParentRating = reviews[0].OverallRating
		}
		schools = append(schools, cs)
	}

	markBestSchools(schools)

	res := &CompareResult{
		Schools:    schools,
		Categories: compareCategories(ids, composites),
	}

	if err := encode(res); err != nil {
		return fmt.Errorf("error encoding comparison: %w", err)
	}

	return nil
}

// compareCategories builds one row per category in canonical order.
// Every school whose score equals the row maximum is marked best, so
// ties produce multiple marks, matching a highlighted max column.
func compareCategories(ids []string, composites []*score.Composite) []*CategoryComparison {
	rows := make([]*CategoryComparison, 0, len(score.AllCategories))

	for _, cat := range score.AllCategories {
		row := &CategoryComparison{
			Category: cat,
			Scores:   make([]*ComparedScore, 0, len(ids)),
		}
		values := make([]*float64, 0, len(ids))
		for i, id := range ids {
			cs := composites[i].CategoryScores[cat]
			row.Scores = append(row.Scores, &ComparedScore{
				SchoolID: id,
				Score:    cs.Score,
				Details:  cs.Details,
			})
			values = append(values, cs.Score)
		}
		for i, best := range bestValues(values) {
			row.Scores[i].Best = best
		}
		rows = append(rows, row)
	}

	return rows
}

func markBestSchools(schools []*ComparedSchool) {
	values := make([]*float64, 0, len(schools))
	for _, s := range schools {
		values = append(values, s.Composite)
	}
	for i, best := range bestValues(values) {
		schools[i].Best = best
	}
}

// bestValues marks every position holding the maximum value. Nil never
// competes; all nil means no best.
func bestValues(values []*float64) []bool {
	best := make([]bool, len(values))

	var top *float64
	for _, v := range values {
		if v == nil {
			continue
		}
		if top == nil || *v > *top {
			top = v
		}
	}
	if top == nil {
		return best
	}

	for i, v := range values {
		if v != nil && *v == *top {
			best[i] = true
		}
	}
	return best
}
