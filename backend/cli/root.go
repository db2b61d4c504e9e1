// Package cli is the tracker command line: the HTTP server plus offline
// commands that work directly against the store.
package cli

import (
	"fmt"
	"log"
	"time"

	"khelkhatm/backend/config"
	"khelkhatm/backend/repository"
	"khelkhatm/backend/utils"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Options carries global flags and the hooks tests replace.
type Options struct {
	NoColor bool

	// Now defaults to the configured zone's clock.
	Now func() time.Time
	// Config defaults to config.LoadConfig.
	Config func() (*config.Config, error)
	// Open defaults to utils.InitDB on the loaded config.
	Open func(cfg *config.Config) (*repository.Repository, error)
}

// Env is what a store-backed command runs with.
type Env struct {
	Cfg    *config.Config
	Repo   *repository.Repository
	Logger *log.Logger
}

func openRepository(cfg *config.Config) (*repository.Repository, error) {
	db, err := utils.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	return repository.New(db), nil
}

func (o *Options) config() (*config.Config, error) {
	load := o.Config
	if load == nil {
		load = config.LoadConfig
	}
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (o *Options) env() (*Env, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}

	open := o.Open
	if open == nil {
		open = openRepository
	}
	repo, err := open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	logger := utils.InitLogger(utils.LoggerConfig{
		Format:       cfg.LogFormat,
		EnableColors: !o.NoColor,
	})
	return &Env{Cfg: cfg, Repo: repo, Logger: logger}, nil
}

func (o *Options) now(cfg *config.Config) time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return cfg.Now()
}

func NewRootCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tracker",
		Short:         "Khel Khatm interview-prep tracker",
		Long:          "Track DSA questions, CS concepts and daily habits, and serve the dashboard API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.NoColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewMarkCommand(opts))
	cmd.AddCommand(NewActivityCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// Execute runs the tracker with production defaults.
func Execute() error {
	cmd := NewRootCommand(&Options{})
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
