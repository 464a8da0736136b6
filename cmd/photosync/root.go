package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"photosync/internal/config"
	"photosync/internal/mediastore"
)

// cli carries state shared by every subcommand once the root has run.
type cli struct {
	cfg      *config.Config
	logger   *slog.Logger
	logClose io.Closer
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "photosync",
		Short:        "Mirror a device media index into a local cache",
		Long:         "photosync keeps a local SQLite cache of the photos and videos listed in a MediaStore-style index, and serves it over HTTP.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.logger, c.logClose = newLogger(cfg, cmd.ErrOrStderr())
			slog.SetDefault(c.logger)
			c.logger.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logClose != nil {
				_ = c.logClose.Close()
			}
		},
	}

	root.AddCommand(newServeCmd(c))
	root.AddCommand(newSyncCmd(c))
	root.AddCommand(newMediaCmd(c, mediastore.KindPhoto))
	root.AddCommand(newMediaCmd(c, mediastore.KindVideo))
	root.AddCommand(newBucketsCmd(c))
	root.AddCommand(newInfoCmd(c))
	root.AddCommand(newRunsCmd(c))
	return root
}
