// Package metadata turns raw media index rows into cache records. Fields
// the index leaves NULL get fixed defaults, and location, year and rotation
// are read from the media file itself. Reading the file never fails a row.
package metadata

import (
	"context"
	"os/exec"

	"photosync/internal/contextutil"
	"photosync/internal/mediastore"
	"photosync/internal/storage"
)

// DefaultFFprobe is the ffprobe binary looked up on PATH.
const DefaultFFprobe = "ffprobe"

// Extractor normalizes index rows and enriches them with embedded metadata.
type Extractor struct {
	ffprobePath string
	probe       probeFunc
	location    func(path string) (storage.Location, error)
}

// NewExtractor creates an Extractor that probes videos with the given
// ffprobe binary. An empty path disables video probing.
func NewExtractor(ffprobePath string) *Extractor {
	return &Extractor{
		ffprobePath: ffprobePath,
		probe:       runFFprobe,
		location:    exifLocation,
	}
}

// FFprobeAvailable reports whether the configured ffprobe binary resolves.
func (e *Extractor) FFprobeAvailable() bool {
	if e.ffprobePath == "" {
		return false
	}
	_, err := exec.LookPath(e.ffprobePath)
	return err == nil
}

// Photo builds a photo record from an index row.
func (e *Extractor) Photo(ctx context.Context, row mediastore.Row) storage.PhotoRecord {
	rec := storage.PhotoRecord{
		ID:           row.ID,
		Title:        title(row.Title, row.Path),
		DateAdded:    millis(row.DateAdded),
		DateModified: millis(row.DateModified),
		DateTaken:    millis(row.DateTaken),
		Size:         row.Size.Int64,
		MimeType:     stringOr(row.MimeType, ""),
		Description:  stringOr(row.Description, ""),
		Orientation:  intOr0(row.Orientation),
		Height:       intOr0(row.Height),
		Width:        intOr0(row.Width),
		Path:         row.Path,
		Parent:       Parent(row.Path),
	}

	loc, err := e.location(row.Path)
	if err != nil {
		contextutil.LoggerFromContext(ctx).DebugContext(ctx, "no photo location",
			"id", row.ID,
			"path", row.Path,
			"error", err,
		)
		return rec
	}
	rec.Location = loc
	return rec
}

// Video builds a video record from an index row. Orientation comes from the
// probed stream rotation rather than the index.
func (e *Extractor) Video(ctx context.Context, row mediastore.Row) storage.VideoRecord {
	rec := storage.VideoRecord{
		ID:           row.ID,
		Title:        title(row.Title, row.Path),
		DateAdded:    millis(row.DateAdded),
		DateModified: millis(row.DateModified),
		DateTaken:    millis(row.DateTaken),
		Size:         row.Size.Int64,
		MimeType:     stringOr(row.MimeType, ""),
		Description:  stringOr(row.Description, ""),
		Category:     stringOr(row.Category, UnknownString),
		Language:     stringOr(row.Language, UnknownString),
		Tags:         stringOr(row.Tags, ""),
		Duration:     row.Duration.Int64,
		Height:       intOr0(row.Height),
		Width:        intOr0(row.Width),
		Path:         row.Path,
		Parent:       Parent(row.Path),
		Artist:       stringOr(row.Artist, UnknownString),
		Album:        stringOr(row.Album, UnknownString),
		Resolution:   stringOr(row.Resolution, ""),
	}

	logger := contextutil.LoggerFromContext(ctx)
	if e.ffprobePath == "" || row.Path == "" {
		return rec
	}
	out, err := e.probe(ctx, e.ffprobePath, row.Path)
	if err != nil {
		logger.DebugContext(ctx, "video probe failed", "id", row.ID, "path", row.Path, "error", err)
		return rec
	}
	res, err := parseProbe(out)
	if err != nil {
		logger.DebugContext(ctx, "video probe unreadable", "id", row.ID, "path", row.Path, "error", err)
		return rec
	}
	rec.Location = res.Location
	rec.Year = res.Year
	rec.Orientation = res.Rotation
	return rec
}
