package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/optiruta/internal/planner"
	"github.com/katalvlaran/optiruta/internal/roadmap"
	"github.com/katalvlaran/optiruta/internal/server"
)

func newCitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List cities alphabetically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, c := range a.planner.Cities() {
				fmt.Fprintln(out, c)
			}
			return nil
		},
	}
}

func newRouteCmd(a *app) *cobra.Command {
	var (
		metric string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Find the best route between two cities",
		Example: `  optiruta route "La Paz" Tarija
  optiruta route "La Paz" Tarija --metric hops --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := planner.ParseMetric(metric)
			if err != nil {
				return err
			}
			r, err := a.planner.Route(args[0], args[1], m)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}
			_, err = fmt.Fprintln(out, r.String())
			return err
		},
	}
	cmd.Flags().StringVarP(&metric, "metric", "m", "km", "cost to minimize: km (distance) or hops (stops)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the route as JSON")

	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the road map as DOT, interactive HTML, YAML or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			var err error
			switch strings.ToLower(format) {
			case "dot":
				err = a.planner.WriteDOT(w)
			case "html":
				err = a.planner.WriteHTML(w)
			case "yaml", "yml":
				err = a.planner.Snapshot().Encode(w, roadmap.FormatYAML)
			case "toml":
				err = a.planner.Snapshot().Encode(w, roadmap.FormatTOML)
			default:
				return fmt.Errorf("unknown export format %q (want dot, html, yaml or toml)", format)
			}
			if err != nil {
				return err
			}
			if output != "" && output != "-" {
				a.log.Info("map exported", "format", format, "file", output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "dot, html, yaml or toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			httpCfg := a.cfg.HTTP
			if addr != "" {
				httpCfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(a.planner, httpCfg, a.log).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}
