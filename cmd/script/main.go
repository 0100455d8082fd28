package main

import (
	"context"
	"findash/cmd"
	"findash/internal/app"
	"findash/internal/domain"
	"findash/internal/util"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "findash",
		Short:        "refresh and inspect the financial dashboard",
		SilenceUsage: true,
	}
	root.AddCommand(refreshCmd(), exportCmd(), snapshotCmd(), serveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRefresh(ctx context.Context, periodFlag string) (*app.RefreshResult, error) {
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		return nil, err
	}
	period := deps.Config.Period
	if periodFlag != "" {
		period = domain.Period(periodFlag)
	}
	result := deps.RefreshHandler.Refresh(ctx, period)
	return &result, nil
}

func refreshCmd() *cobra.Command {
	var period string
	var asJson bool

	c := &cobra.Command{
		Use:   "refresh",
		Short: "run one refresh and print the dashboard tables",
		RunE: func(c *cobra.Command, args []string) error {
			result, err := runRefresh(c.Context(), period)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if asJson {
				return util.WriteJSON(out, result)
			}

			for _, t := range result.Tables() {
				printTable(c, t)
			}
			for _, d := range result.Diagnostics {
				fmt.Fprintf(out, "[%s] %s: %s\n", d.Category, d.Group, d.Message)
			}
			return nil
		},
	}
	c.Flags().StringVar(&period, "period", "", "lookback window, e.g. 1mo or 1y")
	c.Flags().BoolVar(&asJson, "json", false, "print the full result as json")
	return c
}

func printTable(c *cobra.Command, t app.Table) {
	out := c.OutOrStdout()
	fmt.Fprintf(out, "\n%s\n", t.Title)
	fmt.Fprintln(out, strings.Join(t.Header, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(out, strings.Join(row, "\t"))
	}
	if t.Footer != "" {
		fmt.Fprintln(out, t.Footer)
	}
}

func exportCmd() *cobra.Command {
	var period string
	var path string

	c := &cobra.Command{
		Use:   "export",
		Short: "refresh and write the portfolio time series as csv",
		RunE: func(c *cobra.Command, args []string) error {
			result, err := runRefresh(c.Context(), period)
			if err != nil {
				return err
			}
			for _, d := range result.Diagnostics {
				log.Printf("[%s] %s: %s", d.Category, d.Group, d.Message)
			}

			if path == "" || path == "-" {
				return result.WriteTimeSeriesCsv(c.OutOrStdout())
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			defer f.Close()
			return result.WriteTimeSeriesCsv(f)
		},
	}
	c.Flags().StringVar(&period, "period", "", "lookback window, e.g. 1mo or 1y")
	c.Flags().StringVar(&path, "out", "-", "output file, - for stdout")
	return c
}

func snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "fetch index levels, upcoming ipos and top coins only",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			snapshot := deps.MarketSnapshotService.Fetch(c.Context())

			return util.WriteJSON(c.OutOrStdout(), snapshot)
		},
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the dashboard api and refresh on the configured schedule",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			if err := deps.Scheduler.Schedule(deps.Config.RefreshSchedule); err != nil {
				return err
			}
			deps.Scheduler.RunNow(c.Context())
			deps.Scheduler.Start()
			defer deps.Scheduler.Stop()

			return deps.ApiHandler.StartApi(deps.Config.Port)
		},
	}
}
