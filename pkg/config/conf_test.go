package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdberg/schoolscout/pkg/score"
)

func TestConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	c1, err := ReadOrCreate(dir)
	require.NoError(t, err)
	require.NotNil(t, c1)

	// First run writes the defaults.
	assert.Equal(t, defaultDataDir, c1.DataDir)
	assert.Equal(t, score.DefaultWeights(), c1.Weights)
	assert.Equal(t, score.SizeMedium, c1.Preferences.SchoolSize)

	c1.DataDir = "/tmp/schools"
	c1.Weights[score.CategoryAcademic] = 40
	c1.Preferences.SchoolSize = score.SizeLarge

	err = Save(dir, c1)
	require.NoError(t, err)

	c2, err := ReadOrCreate(dir)
	require.NoError(t, err)
	require.NotNil(t, c2)
	assert.Equal(t, c1.DataDir, c2.DataDir)
	assert.Equal(t, c1.Weights, c2.Weights)
	assert.Equal(t, c1.Preferences, c2.Preferences)
}

func TestConfig_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")

	_, err := ReadOrCreate(dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, configFileName))
	assert.NoError(t, err)
}

func TestConfig_FillsMissingSections(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, configFileName), []byte("data_dir: /data/schools\n"), fileMode)
	require.NoError(t, err)

	c, err := ReadOrCreate(dir)
	require.NoError(t, err)
	assert.Equal(t, "/data/schools", c.DataDir)
	assert.Equal(t, score.DefaultWeights(), c.Weights)
	assert.Equal(t, score.SizeMedium, c.Preferences.SchoolSize)
}

func TestConfig_RejectsInvalidWeights(t *testing.T) {
	dir := t.TempDir()
	body := "weights:\n  academic_performance: -10\n"
	err := os.WriteFile(filepath.Join(dir, configFileName), []byte(body), fileMode)
	require.NoError(t, err)

	_, err = ReadOrCreate(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid weights")
}

func TestConfig_RejectsUnknownSizePreference(t *testing.T) {
	dir := t.TempDir()
	body := "preferences:\n  school_size: enormous\n"
	err := os.WriteFile(filepath.Join(dir, configFileName), []byte(body), fileMode)
	require.NoError(t, err)

	_, err = ReadOrCreate(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid preferences")
}

func TestConfig_EmptyDir(t *testing.T) {
	_, err := ReadOrCreate("")
	assert.Error(t, err)

	err = Save("", &Config{})
	assert.Error(t, err)

	err = Save(t.TempDir(), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := getDefaultConfig()
	assert.NoError(t, c.Validate())

	c.DataDir = ""
	assert.Error(t, c.Validate())
}
