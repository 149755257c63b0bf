package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/avdberg/schoolscout/pkg/score"
)

// csvHeader is the fixed column layout: ranking identity first, then
// one column per scoring category in canonical order.
func csvHeader() []string {
	h := []string{"rank", "id", "name", "city", "types", "composite_score"}
	for _, cat := range score.AllCategories {
		h = append(h, string(cat))
	}
	return h
}

// CSVWriter writes ranked schools to a CSV file, one row per school.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	rank   int
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("csv: create output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader()); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: file, writer: w}, nil
}

// Write appends one row per ranked school, numbering ranks across
// calls. Scores a school has no data for stay empty, never zero.
func (c *CSVWriter) Write(results []*score.Ranked) error {
	for _, res := range results {
		c.rank++
		row := []string{
			strconv.Itoa(c.rank),
			res.School.ID,
			res.School.Name(),
			res.School.City(),
			strings.Join(res.School.Types(), ", "),
			fmtScore(res.ScoreData.CompositeScore),
		}
		for _, cat := range score.AllCategories {
			row = append(row, fmtScore(res.ScoreData.CategoryScores[cat].Score))
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func fmtScore(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
