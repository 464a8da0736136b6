// Package syncer reconciles the local cache with the external media index.
//
// Each kind is synced independently: ids that left the index are deleted
// from the cache, then every index row modified after the newest cached row
// is re-derived and written. A run succeeds only if both kinds succeed.
package syncer

import (
	"context"
	"errors"
	"fmt"

	"photosync/internal/contextutil"
	"photosync/internal/jobs"
	"photosync/internal/mediastore"
	"photosync/internal/storage"
)

// ErrPanic marks a kind that failed because its sync panicked.
var ErrPanic = errors.New("sync panicked")

// UniqueWorkName is the scheduler key of the sync job.
const UniqueWorkName = "one_time_work"

const msPerSecond = 1000

// Extractor turns index rows into cache records. It never fails; missing
// metadata is replaced by defaults.
type Extractor interface {
	Photo(ctx context.Context, row mediastore.Row) storage.PhotoRecord
	Video(ctx context.Context, row mediastore.Row) storage.VideoRecord
}

// kindStore is the part of a per-kind cache repo the sync writes through.
type kindStore[T any] interface {
	DeleteNotIn(ctx context.Context, ids []int64) (int64, error)
	LastModified(ctx context.Context) (int64, bool, error)
	InsertAll(ctx context.Context, records []T) error
}

// KindError reports that one kind failed to sync.
type KindError struct {
	Kind mediastore.Kind
	Err  error
}

func (e *KindError) Error() string {
	return fmt.Sprintf("sync %s: %v", e.Kind, e.Err)
}

func (e *KindError) Unwrap() error {
	return e.Err
}

// KindResult is the outcome of syncing one kind.
type KindResult struct {
	Kind     mediastore.Kind
	Deleted  int64
	Inserted int
	UpToDate bool
	Err      error
}

// Result is the outcome of one sync run.
type Result struct {
	Photos KindResult
	Videos KindResult
}

// OK reports whether both kinds synced.
func (r Result) OK() bool {
	return r.Photos.Err == nil && r.Videos.Err == nil
}

// Err joins the per-kind failures, or returns nil.
func (r Result) Err() error {
	var errs []error
	for _, k := range []KindResult{r.Photos, r.Videos} {
		if k.Err != nil {
			errs = append(errs, &KindError{Kind: k.Kind, Err: k.Err})
		}
	}
	return errors.Join(errs...)
}

// Report flattens the counters for run history.
func (r Result) Report() jobs.Report {
	report := jobs.Report{}
	for _, k := range []KindResult{r.Photos, r.Videos} {
		report[k.Kind.String()+"_deleted"] = k.Deleted
		report[k.Kind.String()+"_inserted"] = int64(k.Inserted)
	}
	return report
}

// Syncer mirrors the media index into the cache.
// It implements jobs.Job.
type Syncer struct {
	index   mediastore.Index
	photos  storage.PhotoStore
	videos  storage.VideoStore
	extract Extractor
}

// New creates a Syncer.
func New(index mediastore.Index, photos storage.PhotoStore, videos storage.VideoStore, extract Extractor) *Syncer {
	return &Syncer{
		index:   index,
		photos:  photos,
		videos:  videos,
		extract: extract,
	}
}

// Run syncs photos and videos in parallel. The returned error is non-nil
// iff at least one kind failed; writes made by the other kind stand.
func (s *Syncer) Run(ctx context.Context) (Result, error) {
	photoDone := make(chan KindResult, 1)
	videoDone := make(chan KindResult, 1)

	go func() {
		photoDone <- guardKind(mediastore.KindPhoto, func() KindResult {
			return syncKind[storage.PhotoRecord](ctx, s.index, mediastore.KindPhoto, s.photos, s.extract.Photo)
		})
	}()
	go func() {
		videoDone <- guardKind(mediastore.KindVideo, func() KindResult {
			return syncKind[storage.VideoRecord](ctx, s.index, mediastore.KindVideo, s.videos, s.extract.Video)
		})
	}()

	res := Result{Photos: <-photoDone, Videos: <-videoDone}
	return res, res.Err()
}

// DoWork runs a sync as a scheduled job.
func (s *Syncer) DoWork(ctx context.Context) (jobs.Report, error) {
	res, err := s.Run(ctx)
	return res.Report(), err
}

// guardKind runs one kind and turns a panic into that kind's failure.
func guardKind(kind mediastore.Kind, run func() KindResult) (res KindResult) {
	defer func() {
		if r := recover(); r != nil {
			res = KindResult{Kind: kind, Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()
	return run()
}

func syncKind[T any](
	ctx context.Context,
	index mediastore.Index,
	kind mediastore.Kind,
	store kindStore[T],
	transform func(context.Context, mediastore.Row) T,
) KindResult {
	logger := contextutil.LoggerFromContext(ctx).With("kind", kind.String())
	res := KindResult{Kind: kind}

	ids, err := index.IDs(ctx, kind)
	if err != nil {
		res.Err = fmt.Errorf("list index ids: %w", err)
		return res
	}

	// Deletions must land before the cache max is read.
	res.Deleted, err = store.DeleteNotIn(ctx, ids)
	if err != nil {
		res.Err = fmt.Errorf("delete removed rows: %w", err)
		return res
	}
	logger.InfoContext(ctx, "removed stale rows", "deleted", res.Deleted, "index_size", len(ids))

	sourceMax, sourceOK, err := index.MaxModified(ctx, kind)
	if err != nil {
		res.Err = fmt.Errorf("read index max modified: %w", err)
		return res
	}
	cacheMs, cacheOK, err := store.LastModified(ctx)
	if err != nil {
		res.Err = fmt.Errorf("read cache max modified: %w", err)
		return res
	}
	cacheMax := cacheMs / msPerSecond

	if !sourceOK {
		if len(ids) == 0 {
			logger.InfoContext(ctx, "index empty, cache cleared")
			res.UpToDate = true
			return res
		}
		res.Err = fmt.Errorf("%w: no max modified for %d ids", mediastore.ErrIndexUnavailable, len(ids))
		return res
	}
	if cacheOK && cacheMax == sourceMax {
		logger.InfoContext(ctx, "cache up to date", "last_modified", sourceMax)
		res.UpToDate = true
		return res
	}

	var since int64
	if cacheOK {
		since = cacheMax
	}
	rows, err := index.FetchSince(ctx, kind, since)
	if err != nil {
		res.Err = fmt.Errorf("fetch rows since %d: %w", since, err)
		return res
	}

	records := make([]T, 0, len(rows))
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}
		records = append(records, transform(ctx, row))
	}

	if err := store.InsertAll(ctx, records); err != nil {
		res.Err = fmt.Errorf("write rows: %w", err)
		return res
	}
	res.Inserted = len(records)
	logger.InfoContext(ctx, "synced rows", "inserted", res.Inserted, "since", since, "source_max", sourceMax)
	return res
}
