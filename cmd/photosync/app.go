package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"photosync/internal/config"
	"photosync/internal/jobs"
	"photosync/internal/mediastore"
	"photosync/internal/metadata"
	"photosync/internal/service"
	"photosync/internal/storage"
	"photosync/internal/syncer"
)

// app wires the cache, the index and the sync job together.
type app struct {
	cache   *sql.DB
	feed    *storage.ChangeFeed
	photos  *storage.PhotoRepo
	videos  *storage.VideoRepo
	albums  *storage.AlbumRepo
	runs    *storage.RunRepo
	gallery service.GalleryService

	// Set only when the index is opened.
	index     *mediastore.SQLiteIndex
	scheduler *jobs.Scheduler
	syncer    *syncer.Syncer
	trigger   *syncer.Trigger
}

// openCache opens and migrates the local cache. Commands that only read the
// cache use this alone.
func openCache(cfg *config.Config, logger *slog.Logger) (*app, error) {
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Debug("Database initialized", "path", cfg.DBPath)

	a := &app{cache: db, feed: storage.NewChangeFeed()}
	a.photos = storage.NewPhotoRepo(db, a.feed)
	a.videos = storage.NewVideoRepo(db, a.feed)
	a.albums = storage.NewAlbumRepo(db, a.feed)
	a.runs = storage.NewRunRepo(db)
	a.gallery = service.NewGalleryService(a.photos, a.videos, a.albums, a.runs)
	return a, nil
}

// openApp opens the cache and the media index and builds the sync job.
func openApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	a, err := openCache(cfg, logger)
	if err != nil {
		return nil, err
	}

	index, err := mediastore.Open(cfg.IndexPath)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.index = index
	logger.Info("Media index opened", "path", cfg.IndexPath)

	extractor := metadata.NewExtractor(cfg.FFprobePath)
	if cfg.FFprobePath != "" && !extractor.FFprobeAvailable() {
		logger.Warn("ffprobe not found, video location and year fall back to defaults", "ffprobe", cfg.FFprobePath)
	}

	a.scheduler = jobs.NewScheduler(a.runs).WithLogger(logger)
	a.syncer = syncer.New(index, a.photos, a.videos, extractor)
	a.trigger = syncer.NewTrigger(a.scheduler, a.syncer)
	return a, nil
}

// Close releases the index and the cache.
func (a *app) Close() error {
	var errs []error
	if a.index != nil {
		errs = append(errs, a.index.Close())
	}
	errs = append(errs, a.cache.Close())
	return errors.Join(errs...)
}
