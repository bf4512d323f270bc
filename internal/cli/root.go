// Package cli implements the forgelog command surface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jgirmay/forgelog/internal/common/database"
	"github.com/jgirmay/forgelog/internal/common/logging"
	"github.com/jgirmay/forgelog/internal/logbook/export"
	"github.com/jgirmay/forgelog/internal/logbook/repository"
	"github.com/jgirmay/forgelog/internal/logbook/services"
	"github.com/jgirmay/forgelog/pkg/config"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// app holds the wired services for the lifetime of one command run.
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	db        *database.Database
	logger    *services.Logger
	query     *services.Query
	goals     *services.Goals
	formatter *export.Formatter
}

var current *app

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "forgelog",
	Short: "Local activity log (workouts, guitar, study, journaling)",
	Long: `forgelog records discrete life events - workouts, guitar practice,
study sessions, free-form activities - with structured metrics, and
retrieves them over time ranges for listing, goal tracking and JSON
export to downstream summarizers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "version", "help", "completion":
			return nil
		}
		return openApp()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeApp()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("forgelog %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

// openApp loads config, opens the store and wires the services.
func openApp() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	log, err := logging.New(level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return fmt.Errorf("migrating store: %w", err)
	}

	events := repository.NewEventRepository(db.DB())
	goals := repository.NewGoalRepository(db.DB())

	current = &app{
		cfg:       cfg,
		log:       log,
		db:        db,
		logger:    services.NewLogger(events, log),
		query:     services.NewQuery(events),
		goals:     services.NewGoals(goals),
		formatter: export.NewFormatter(),
	}
	return nil
}

func closeApp() error {
	if current == nil {
		return nil
	}
	_ = current.log.Sync()
	err := current.db.Close()
	current = nil
	return err
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
