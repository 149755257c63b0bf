package export

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/avdberg/schoolscout/pkg/score"
)

// PostgresWriter persists ranking results to PostgreSQL.
type PostgresWriter struct {
	db   *sql.DB
	rank int
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema
// migrations, and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS school_rankings (
			rank            INT          NOT NULL,
			school_id       VARCHAR(100) PRIMARY KEY,
			name            TEXT         NOT NULL,
			city            TEXT         NOT NULL DEFAULT '',
			types           TEXT         NOT NULL DEFAULT '',
			composite_score NUMERIC(5,1),
			category_scores JSONB        NOT NULL DEFAULT '{}',
			ranked_at       TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_school_rankings_rank ON school_rankings(rank);
		CREATE INDEX IF NOT EXISTS idx_school_rankings_city ON school_rankings(city);
	`)
	return err
}

// Clear deletes all previously stored rankings.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM school_rankings")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write replaces the stored ranking with the given results.
func (pw *PostgresWriter) Write(results []*score.Ranked) error {
	if len(results) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}
	pw.rank = 0

	const batchSize = 50
	for i := 0; i < len(results); i += batchSize {
		end := i + batchSize
		if end > len(results) {
			end = len(results)
		}
		if err := pw.insertBatch(results[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []*score.Ranked) error {
	const cols = 7
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, res := range batch {
		scores, err := json.Marshal(res.ScoreData.CategoryScores)
		if err != nil {
			return fmt.Errorf("postgres: marshal category scores for %s: %w", res.School.ID, err)
		}

		var composite interface{}
		if res.ScoreData.CompositeScore != nil {
			composite = *res.ScoreData.CompositeScore
		}

		pw.rank++
		base := idx * cols
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		valueArgs = append(valueArgs,
			pw.rank, res.School.ID, res.School.Name(), res.School.City(),
			strings.Join(res.School.Types(), ", "), composite, scores)
	}

	query := fmt.Sprintf(`
		INSERT INTO school_rankings (rank, school_id, name, city, types, composite_score, category_scores)
		VALUES %s
		ON CONFLICT (school_id) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

// Close closes the database connection.
func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
