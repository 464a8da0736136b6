package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"photosync/internal/handlers"
	"photosync/internal/http"
	"photosync/internal/watcher"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the cache over HTTP and keep it in sync with the index",
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

			router := http.NewRouter(&http.Deps{
				Gallery: a.gallery,
				Trigger: a.trigger,
				Feed:    a.feed,
				Checks: map[string]handlers.Pinger{
					"cache": a.cache,
					"index": a.index,
				},
			})
			srv := &nethttp.Server{
				Addr:              ":" + c.cfg.APIPort,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
				// Event streams end when the server stops.
				BaseContext: func(net.Listener) context.Context { return ctx },
			}

			g, gctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				c.logger.Info("Starting API server", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
					return fmt.Errorf("API server failed: %w", err)
				}
				return nil
			})

			if c.cfg.WatchIndex {
				w, err := watcher.New(c.cfg.IndexPath, c.cfg.WatchDebounce, a.trigger)
				if err != nil {
					return err
				}
				g.Go(func() error {
					return w.WithLogger(c.logger).Run(gctx)
				})
			}

			g.Go(func() error {
				<-gctx.Done()
				c.logger.Info("Shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
				defer cancel()
				return errors.Join(srv.Shutdown(shutdownCtx), a.scheduler.Shutdown(shutdownCtx))
			})

			a.trigger.CheckForUpdates()
			return g.Wait()
		},
	}
}
