package main

import (
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"photosync/internal/mediastore"
)

func newInfoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Summarise the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openCache(c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Kind", "Items", "Size", "Last modified"})
			for _, kind := range []mediastore.Kind{mediastore.KindPhoto, mediastore.KindVideo} {
				info, err := a.gallery.Info(cmd.Context(), kind)
				if err != nil {
					return err
				}
				t.AppendRow(table.Row{kind, humanize.Comma(int64(info.Cardinality)), humanBytes(info.Size), humanMillis(info.DateModified)})
			}
			t.Render()
			return nil
		},
	}
}
