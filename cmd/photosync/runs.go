package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"photosync/internal/service"
)

func newRunsCmd(c *cli) *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent sync runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			a, err := openCache(c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			runs, err := a.gallery.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if format == formatJSON {
				return outputJSON(cmd, runs)
			}

			now := time.Now()
			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Started", "Status", "Elapsed", "Photos +/-", "Videos +/-", "Error"})
			for _, r := range runs {
				t.AppendRow(table.Row{
					r.StartedAt.Local().Format("2006-01-02 15:04:05"),
					r.Status,
					r.Elapsed(now).Round(time.Millisecond),
					counts(r.Report, "photos"),
					counts(r.Report, "videos"),
					r.Error,
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", service.DefaultRunLimit, "Number of runs to show")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table or json")

	return cmd
}

// counts renders the inserted and deleted counters of one kind as "+i/-d".
func counts(report map[string]int64, kind string) string {
	return fmt.Sprintf("+%d/-%d", report[kind+"_inserted"], report[kind+"_deleted"])
}
