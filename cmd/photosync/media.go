package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"photosync/internal/mediastore"
	"photosync/internal/storage"
)

func newMediaCmd(c *cli, kind mediastore.Kind) *cobra.Command {
	var (
		query  string
		format string
	)

	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: fmt.Sprintf("List cached %s, newest first", kind),
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

			ctx := cmd.Context()
			if kind == mediastore.KindVideo {
				videos, err := a.gallery.ListVideos(ctx, query)
				if err != nil {
					return err
				}
				if format == formatJSON {
					return outputJSON(cmd, videos)
				}
				videoTable(cmd.OutOrStdout(), videos)
				return nil
			}

			photos, err := a.gallery.ListPhotos(ctx, query)
			if err != nil {
				return err
			}
			if format == formatJSON {
				return outputJSON(cmd, photos)
			}
			photoTable(cmd.OutOrStdout(), photos)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show titles containing this text")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table or json")

	return cmd
}

func photoTable(w io.Writer, photos []storage.PhotoRecord) {
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Title", "Size", "Modified", "Location", "Path"})
	for _, p := range photos {
		t.AppendRow(table.Row{p.ID, p.Title, humanBytes(p.Size), humanMillis(p.DateModified), locationString(p.Location), p.Path})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d photos", len(photos))})
	t.Render()
}

func videoTable(w io.Writer, videos []storage.VideoRecord) {
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Title", "Duration", "Size", "Artist", "Year", "Path"})
	for _, v := range videos {
		duration := (time.Duration(v.Duration) * time.Millisecond).Round(time.Second)
		t.AppendRow(table.Row{v.ID, v.Title, duration, humanBytes(v.Size), v.Artist, v.Year, v.Path})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d videos", len(videos))})
	t.Render()
}

func locationString(l storage.Location) string {
	if !l.Valid {
		return "-"
	}
	return fmt.Sprintf("%.5f, %.5f", l.Latitude, l.Longitude)
}
