package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newBucketsCmd(c *cli) *cobra.Command {
	var (
		query  string
		format string
	)

	cmd := &cobra.Command{
		Use:       "buckets <photos|videos>",
		Short:     "Group cached media by directory",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"photos", "videos"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
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

			buckets, err := a.gallery.Buckets(cmd.Context(), kind, query)
			if err != nil {
				return err
			}
			if format == formatJSON {
				return outputJSON(cmd, buckets)
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Name", "Items", "Size", "Modified", "Cover", "Path"})
			for _, b := range buckets {
				t.AppendRow(table.Row{b.Name(), b.Cardinality, humanBytes(b.Size), humanMillis(b.DateModified), b.CoverID, b.Path})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show paths containing this text")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table or json")

	return cmd
}
