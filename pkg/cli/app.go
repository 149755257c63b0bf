package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/rs/zerolog/log"
	urfave "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/avdberg/schoolscout/pkg/config"
	"github.com/avdberg/schoolscout/pkg/data"
	"github.com/avdberg/schoolscout/pkg/logging"
	"github.com/avdberg/schoolscout/pkg/school"
	"github.com/avdberg/schoolscout/pkg/score"
)

const (
	appName      = "schoolscout"
	appConfigKey = "app-config"

	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatJSON

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	dbFilePathFlag = &urfave.StringFlag{
		Name:  "db",
		Usage: "Path to the Sqlite favorites database file",
	}

	dataDirFlag = &urfave.StringFlag{
		Name:  "data",
		Usage: "Path to the school records directory (overrides config)",
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml]",
		Value: formatJSON,
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.Setup(false)

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("fatal error")
		os.Exit(1)
	}
}

type appConfig struct {
	Conf   *config.Config
	DBPath string
	Debug  bool
	DB     *sql.DB
	Scorer *score.Scorer
}

func getConfig(c *urfave.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *urfave.App {
	return &urfave.App{
		Name:                 appName,
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "CLI for ranking and comparing Dutch secondary schools",
		Flags: []urfave.Flag{
			debugFlag,
			dbFilePathFlag,
			dataDirFlag,
			formatFlag,
		},
		Commands: []*urfave.Command{
			rankCmd,
			showCmd,
			compareCmd,
			favoritesCmd,
			openDaysCmd,
			validateCmd,
			statsCmd,
		},
		Before: func(c *urfave.Context) error {
			if c.Bool(debugFlag.Name) {
				logging.Setup(true)
			}

			f := c.String(formatFlag.Name)
			if f == formatYAML || f == "yml" {
				outputFormat = formatYAML
			}

			home, _, err := config.GetOrCreateHomeDir(appName)
			if err != nil {
				return fmt.Errorf("resolving app home dir: %w", err)
			}

			conf, err := config.ReadOrCreate(home)
			if err != nil {
				return fmt.Errorf("reading config: %w", err)
			}

			if dir := c.String(dataDirFlag.Name); dir != "" {
				conf.DataDir = dir
			}

			dbPath := c.String(dbFilePathFlag.Name)
			if dbPath == "" {
				dbPath = path.Join(home, data.DataFileName)
			}

			if err := data.Init(dbPath); err != nil {
				return fmt.Errorf("initializing database: %w", err)
			}

			db, err := data.GetDB(dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}

			records, err := school.Load(conf.DataDir)
			if err != nil {
				db.Close()
				return fmt.Errorf("loading school records: %w", err)
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				Conf:   conf,
				DBPath: dbPath,
				Debug:  c.Bool(debugFlag.Name),
				DB:     db,
				Scorer: score.NewScorer(records),
			}
			return nil
		},
		After: func(c *urfave.Context) error {
			if cfg, ok := c.App.Metadata[appConfigKey].(*appConfig); ok && cfg.DB != nil {
				cfg.DB.Close()
			}
			return nil
		},
	}
}

func encode(v any) error {
	if outputFormat == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
