package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"photosync/internal/storage"
	"photosync/internal/syncer"
)

func newSyncCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one sync and print its report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := openApp(c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			run, err := a.scheduler.RunNow(ctx, syncer.UniqueWorkName, a.syncer)
			if run != nil {
				printRun(cmd.OutOrStdout(), run)
			}
			return err
		},
	}
}

// printRun writes the report counters of one run.
func printRun(w io.Writer, run *storage.JobRun) {
	fmt.Fprintf(w, "%s %s in %s\n", run.JobKey, run.Status, run.Elapsed(time.Now()).Round(time.Millisecond))

	keys := make([]string, 0, len(run.Report))
	for k := range run.Report {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := newTable(w)
	t.AppendHeader(table.Row{"Counter", "Value"})
	for _, k := range keys {
		t.AppendRow(table.Row{k, humanize.Comma(run.Report[k])})
	}
	t.Render()

	if run.Error != "" {
		fmt.Fprintf(w, "error: %s\n", run.Error)
	}
}
