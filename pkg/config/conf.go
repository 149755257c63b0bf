package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/avdberg/schoolscout/pkg/score"
)

const (
	configFileName = "config.yaml"
	dirMode        = 0700
	fileMode       = 0600

	defaultDataDir = "data/schools"
)

// Config is the persisted app configuration: where the school records
// live and how to weigh them. A fresh install gets the default
// weighting; edits to the file survive across runs, replacing the
// per-session sliders of a UI with explicit state.
type Config struct {
	DataDir     string            `yaml:"data_dir"`
	Weights     score.Weights     `yaml:"weights"`
	Preferences score.Preferences `yaml:"preferences"`
}

func getDefaultConfig() *Config {
	return &Config{
		DataDir:     defaultDataDir,
		Weights:     score.DefaultWeights(),
		Preferences: score.DefaultPreferences(),
	}
}

// Validate rejects configs that cannot drive a ranking.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir cannot be empty")
	}
	if err := c.Weights.Validate(); err != nil {
		return errors.Wrap(err, "invalid weights")
	}
	if err := c.Preferences.Validate(); err != nil {
		return errors.Wrap(err, "invalid preferences")
	}
	return nil
}

func Save(dirPath string, c *Config) error {
	if dirPath == "" {
		return errors.New("config directory required")
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	path := filepath.Join(dirPath, configFileName)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", configFileName)
	}
	return nil
}

// ReadOrCreate reads the app config from the directory, creating the
// directory and a default config on first run. Missing weights or
// preferences fall back to the defaults; present-but-invalid values
// are an error.
func ReadOrCreate(dirPath string) (*Config, error) {
	if dirPath == "" {
		return nil, errors.New("config directory required")
	}

	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		err := os.Mkdir(dirPath, dirMode)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create dir: %s", dirPath)
		}
	}

	path := filepath.Join(dirPath, configFileName)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(dirPath, getDefaultConfig()); err != nil {
			return nil, errors.Wrap(err, "failed to create default config")
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening config file: %s", path)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}

	if c.DataDir == "" {
		c.DataDir = defaultDataDir
	}
	if len(c.Weights) == 0 {
		c.Weights = score.DefaultWeights()
	}
	if c.Preferences.SchoolSize == "" {
		c.Preferences = score.DefaultPreferences()
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config: %s", path)
	}

	return &c, nil
}

// GetOrCreateHomeDir returns the app directory under the user home.
// The created flag is set when the directory did not yet exist.
func GetOrCreateHomeDir(name string) (path string, created bool, err error) {
	if name == "" {
		return "", false, errors.New("name cannot be empty")
	}

	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, errors.Wrap(err, "failed to get user home dir")
	}
	log.Debug().Msgf("home dir: %s", home)

	dir := filepath.Join(home, name)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		log.Debug().Msgf("creating dir: %s", dir)
		err := os.Mkdir(dir, dirMode)
		if err != nil {
			return "", false, errors.Wrapf(err, "failed to create dir: %s", dir)
		}
		created = true
	}
	return dir, created, nil
}
