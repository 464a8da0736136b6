package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"photosync/internal/mediastore"
)

// Output formats for listing commands.
const (
	formatTable = "table"
	formatJSON  = "json"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func outputJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
	}
}

// parseKind accepts the plural kind names used on the command line.
func parseKind(s string) (mediastore.Kind, error) {
	switch s {
	case mediastore.KindPhoto.String():
		return mediastore.KindPhoto, nil
	case mediastore.KindVideo.String():
		return mediastore.KindVideo, nil
	default:
		return 0, fmt.Errorf("invalid kind: %s (valid values: photos, videos)", s)
	}
}

func humanBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// humanMillis renders a Unix millisecond timestamp relative to now.
func humanMillis(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	return humanize.Time(time.UnixMilli(ms))
}
