package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/optiruta/core"
	"github.com/katalvlaran/optiruta/internal/config"
	"github.com/katalvlaran/optiruta/internal/logging"
	"github.com/katalvlaran/optiruta/internal/planner"
	"github.com/katalvlaran/optiruta/internal/roadmap"
)

// app carries state shared by subcommands, filled in PersistentPreRunE.
type app struct {
	configPath string
	mapPath    string
	logLevel   string

	cfg     config.Config
	log     *slog.Logger
	planner *planner.Planner
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "optiruta",
		Short:         "Route planner over a weighted road map",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.mapPath, "map", "", "road map file (.yaml, .yml, .toml); default is the built-in demo map")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newCitiesCmd(a),
		newRouteCmd(a),
		newExportCmd(a),
		newServeCmd(a),
	)

	return root
}

// setup loads configuration, builds the logger and the planner.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.mapPath != "" {
		cfg.Map.Path = a.mapPath
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), cfg.Logging)

	m := roadmap.Demo()
	if cfg.Map.Path != "" {
		if m, err = roadmap.Load(cfg.Map.Path); err != nil {
			return err
		}
	}

	var opts []core.GraphOption
	if cfg.Map.Strict {
		opts = append(opts, core.WithStrictWeights())
	}
	a.planner, err = planner.FromMap(m, a.log, opts...)
	if err != nil {
		return err
	}
	a.log.Debug("road map loaded", "name", m.Name, "cities", len(m.Cities), "roads", len(m.Roads))

	return nil
}
