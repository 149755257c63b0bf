package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdberg/schoolscout/pkg/config"
	"github.com/avdberg/schoolscout/pkg/data"
	"github.com/avdberg/schoolscout/pkg/school"
	"github.com/avdberg/schoolscout/pkg/score"
)

func TestFavoriteRankings(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, data.Init(dbPath))

	db, err := data.GetDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	rated := &school.Record{
		ID:        "school-a",
		BasicInfo: school.BasicInfo{Name: "Rated College"},
		AcademicPerformance: &school.AcademicPerformance{
			ExamScores: map[string]*school.ExamScore{
				"vwo": {PassRate: fptr(90)},
			},
		},
	}
	unrated := &school.Record{
		ID:        "school-b",
		BasicInfo: school.BasicInfo{Name: "Unrated College"},
	}

	cfg := &appConfig{
		Conf: &config.Config{
			// all weight on academics, so the unrated school has no composite
			Weights:     score.Weights{score.CategoryAcademic: 100},
			Preferences: score.DefaultPreferences(),
		},
		DB:     db,
		Scorer: score.NewScorer([]*school.Record{unrated, rated}),
	}

	for _, r := range []*school.Record{rated, unrated} {
		_, err := data.AddFavorite(db, r.ID, r.Name())
		require.NoError(t, err)
	}

	// shortlisted id that is no longer part of the dataset
	_, err = data.AddFavorite(db, "school-gone", "Closed College")
	require.NoError(t, err)

	results, err := favoriteRankings(cfg)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "school-a", results[0].School.ID)
	require.NotNil(t, results[0].ScoreData.CompositeScore)

	// nil composite sorts last but stays on the list
	assert.Equal(t, "school-b", results[1].School.ID)
	assert.Nil(t, results[1].ScoreData.CompositeScore)
}

func TestCompositeOrZero(t *testing.T) {
	assert.Zero(t, compositeOrZero(&score.Ranked{ScoreData: &score.Composite{}}))
	assert.Equal(t, 82.5, compositeOrZero(&score.Ranked{
		ScoreData: &score.Composite{CompositeScore: fptr(82.5)},
	}))
}
