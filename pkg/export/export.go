// Package export writes scoring results to external sinks: CSV files,
// PostgreSQL, and iCalendar files for open days.
package export

import "github.com/avdberg/schoolscout/pkg/score"

// RankingWriter is the interface any ranking sink must satisfy.
type RankingWriter interface {
	Write(results []*score.Ranked) error
	Close() error
}
