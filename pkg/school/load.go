package school

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const reviewDateFormat = "2006-01-02"

// Load reads every *.json document under dir (recursively, one school
// per file) and returns the records in lexical file-path order so
// repeated loads of the same dataset produce the same slice. Files
// missing the required id or name, unparsable files, and duplicate ids
// fail the whole load; anything else in a record may be absent.
func Load(dir string) ([]*Record, error) {
	if dir == "" {
		return nil, errors.New("schools directory not specified")
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk schools directory: %s", dir)
	}

	seen := make(map[string]string)
	records := make([]*Record, 0, len(paths))

	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read school file: %s", path)
		}

		r := &Record{}
		if err := json.Unmarshal(b, r); err != nil {
			return nil, errors.Wrapf(err, "failed to parse school file: %s", path)
		}

		if r.ID == "" {
			return nil, errors.Errorf("school file missing id: %s", path)
		}
		if r.BasicInfo.Name == "" {
			return nil, errors.Errorf("school file missing name: %s", path)
		}
		if prev, ok := seen[r.ID]; ok {
			return nil, errors.Errorf("duplicate school id %q in %s, already defined in %s", r.ID, path, prev)
		}
		seen[r.ID] = path

		normalizeReviews(r)
		records = append(records, r)
	}

	log.Debug().Int("schools", len(records)).Str("dir", dir).Msg("loaded school records")

	return records, nil
}

// normalizeReviews establishes the ordering the satisfaction scorers
// rely on: most recent review first. The sort is stable, so reviews
// without a usable date keep their document order, after dated ones.
func normalizeReviews(r *Record) {
	if r.Reviews == nil {
		return
	}
	sortReviews(r.Reviews.ParentReviews)
	sortReviews(r.Reviews.StudentReviews)
}

func sortReviews(reviews []Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviewTime(reviews[i]).After(reviewTime(reviews[j]))
	})
}

// reviewTime anchors a review in time: explicit date when it parses,
// year otherwise, zero when neither is usable.
func reviewTime(r Review) time.Time {
	if r.Date != "" {
		if t, err := time.Parse(reviewDateFormat, r.Date); err == nil {
			return t
		}
	}
	if r.Year != nil && *r.Year > 0 {
		return time.Date(*r.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}
